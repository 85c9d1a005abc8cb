package market

import "math"

// Bid is a standing order to buy one unit at no more than Price.
type Bid struct {
	Price   float64
	Account AccID
}

// Ask is a standing order to sell one unit at no less than Price.
type Ask struct {
	Price   float64
	Account AccID
}

// NewBid validates the price and constructs a bid.
func NewBid(acc AccID, price float64) (Bid, error) {
	if err := checkPrice(price); err != nil {
		return Bid{}, err
	}
	return Bid{Price: price, Account: acc}, nil
}

// NewAsk validates the price and constructs an ask.
func NewAsk(acc AccID, price float64) (Ask, error) {
	if err := checkPrice(price); err != nil {
		return Ask{}, err
	}
	return Ask{Price: price, Account: acc}, nil
}

func checkPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrInvalidPrice
	}
	return nil
}
