// Package market implements the exchange core: the per-security order
// books, the per-account holdings ledger, the public facade operations and
// the tick-driven matching engine.
package market

import (
	"github.com/rs/zerolog/log"

	"stok/internal/shardmap"
	"stok/internal/watch"
)

// security is one book: the last executed trade price and the two resting
// order queues. Guarded by its securities map entry.
type security struct {
	lastTrade float64
	bids      *orderQueue
	asks      *orderQueue
}

func newSecurity() *security {
	return &security{
		bids: newBidQueue(),
		asks: newAskQueue(),
	}
}

// holdings maps a security to the number of units an account owns.
// A missing key means zero; quantities never go negative.
type holdings map[SecID]uint64

// Market is the aggregate state. The securities and accounts maps grant
// per-key exclusive access, so callers touching different securities or
// accounts never contend. Multi-key operations take their keys as separate
// sequential critical sections; the matcher is the only nester and always
// locks security before account.
type Market struct {
	securities *shardmap.Map[SecID, *security]
	accounts   *shardmap.Map[AccID, holdings]
	updates    *watch.Broadcaster
}

func New() *Market {
	return &Market{
		securities: shardmap.New[SecID, *security](),
		accounts:   shardmap.New[AccID, holdings](),
		updates:    watch.New(),
	}
}

// CreateAccount allocates a fresh account with empty holdings.
func (m *Market) CreateAccount() AccID {
	id := NewAccID()
	m.accounts.Store(id, holdings{})
	log.Info().Stringer("account", id).Msg("account created")
	return id
}

// CreateSecurity mints a new security: a fresh owner account is credited
// with foundingShares units and one single-unit ask per founding share is
// enqueued at foundingPrice. The last trade price starts at foundingPrice.
func (m *Market) CreateSecurity(foundingShares uint64, foundingPrice float64) (SecID, AccID) {
	secID := NewSecID()
	sec := newSecurity()
	sec.lastTrade = foundingPrice
	m.securities.Store(secID, sec)

	owner := m.CreateAccount()
	m.accounts.Update(owner, func(h holdings) holdings {
		h[secID] = foundingShares
		return h
	})
	m.securities.Update(secID, func(s *security) *security {
		for range foundingShares {
			s.asks.push(owner, foundingPrice)
		}
		return s
	})

	log.Info().
		Stringer("security", secID).
		Stringer("owner", owner).
		Uint64("founding_shares", foundingShares).
		Float64("founding_price", foundingPrice).
		Msg("security created")
	return secID, owner
}

// PlaceBid queues a one-unit buy order. No matching is attempted here;
// matches happen only on the next engine tick.
func (m *Market) PlaceBid(acc AccID, sec SecID, price float64) error {
	bid, err := NewBid(acc, price)
	if err != nil {
		return err
	}
	if !m.accounts.Contains(acc) {
		log.Error().
			Stringer("account", acc).
			Stringer("security", sec).
			Float64("price", price).
			Msg("nonexistent account attempted to place bid")
		return &AccountNotFoundError{Acc: acc}
	}
	placed := m.securities.Update(sec, func(s *security) *security {
		s.bids.push(bid.Account, bid.Price)
		return s
	})
	if !placed {
		log.Error().
			Stringer("account", acc).
			Stringer("security", sec).
			Float64("price", price).
			Msg("bid placed for nonexistent security")
		return &SecurityNotFoundError{Sec: sec}
	}
	log.Info().
		Stringer("account", acc).
		Stringer("security", sec).
		Float64("max_price", price).
		Msg("bid placed")
	return nil
}

// PlaceAsk queues a one-unit sell order; see PlaceBid.
func (m *Market) PlaceAsk(acc AccID, sec SecID, price float64) error {
	ask, err := NewAsk(acc, price)
	if err != nil {
		return err
	}
	if !m.accounts.Contains(acc) {
		log.Error().
			Stringer("account", acc).
			Stringer("security", sec).
			Float64("price", price).
			Msg("nonexistent account attempted to place ask")
		return &AccountNotFoundError{Acc: acc}
	}
	placed := m.securities.Update(sec, func(s *security) *security {
		s.asks.push(ask.Account, ask.Price)
		return s
	})
	if !placed {
		log.Error().
			Stringer("account", acc).
			Stringer("security", sec).
			Float64("price", price).
			Msg("ask placed for nonexistent security")
		return &SecurityNotFoundError{Sec: sec}
	}
	log.Info().
		Stringer("account", acc).
		Stringer("security", sec).
		Float64("min_price", price).
		Msg("ask placed")
	return nil
}

// LowestBidPrice returns the price at the head of the bid queue, which by
// the book's priority rule is the numerically lowest resting bid. An empty
// queue yields NoBidsError.
func (m *Market) LowestBidPrice(sec SecID) (float64, error) {
	var price float64
	var empty bool
	found := m.securities.View(sec, func(s *security) {
		if _, p, ok := s.bids.peek(); ok {
			price = p
		} else {
			empty = true
		}
	})
	if !found {
		return 0, &SecurityNotFoundError{Sec: sec}
	}
	if empty {
		log.Debug().Stringer("security", sec).Msg("no bids placed")
		return 0, &NoBidsError{Sec: sec}
	}
	log.Debug().Stringer("security", sec).Float64("price", price).Msg("current lowest bid price")
	return price, nil
}

// HighestAskPrice returns the price at the head of the ask queue, the
// numerically highest resting ask. An empty queue yields NoAsksError.
func (m *Market) HighestAskPrice(sec SecID) (float64, error) {
	var price float64
	var empty bool
	found := m.securities.View(sec, func(s *security) {
		if _, p, ok := s.asks.peek(); ok {
			price = p
		} else {
			empty = true
		}
	})
	if !found {
		return 0, &SecurityNotFoundError{Sec: sec}
	}
	if empty {
		log.Debug().Stringer("security", sec).Msg("no asks placed")
		return 0, &NoAsksError{Sec: sec}
	}
	log.Debug().Stringer("security", sec).Float64("price", price).Msg("current highest ask price")
	return price, nil
}

// CurrentValue returns the last trade price of the security.
func (m *Market) CurrentValue(sec SecID) (float64, error) {
	var price float64
	if !m.securities.View(sec, func(s *security) { price = s.lastTrade }) {
		return 0, &SecurityNotFoundError{Sec: sec}
	}
	return price, nil
}

// MarketCap returns the last trade price multiplied by the total units of
// the security held across all accounts. The per-account reads are not one
// atomic snapshot; units in flight between a debit and a credit are counted
// on whichever side the scan reaches first.
func (m *Market) MarketCap(sec SecID) (float64, error) {
	price, err := m.CurrentValue(sec)
	if err != nil {
		return 0, err
	}
	var units uint64
	m.accounts.Range(func(_ AccID, h holdings) {
		units += h[sec]
	})
	mcap := float64(units) * price
	log.Debug().Stringer("security", sec).Float64("market_cap", mcap).Msg("market cap computed")
	return mcap, nil
}

// AccountValue returns the holdings of acc in sec priced at the last trade,
// zero if the account holds none.
func (m *Market) AccountValue(acc AccID, sec SecID) (float64, error) {
	shares, err := m.AccountShares(acc, sec)
	if err != nil {
		return 0, err
	}
	price, err := m.CurrentValue(sec)
	if err != nil {
		return 0, err
	}
	return float64(shares) * price, nil
}

// AccountShares returns how many units of sec the account holds. The
// account is validated before the security, matching the facade's check
// order everywhere an operation references both.
func (m *Market) AccountShares(acc AccID, sec SecID) (uint64, error) {
	if !m.accounts.Contains(acc) {
		return 0, &AccountNotFoundError{Acc: acc}
	}
	if !m.securities.Contains(sec) {
		return 0, &SecurityNotFoundError{Sec: sec}
	}
	var shares uint64
	m.accounts.View(acc, func(h holdings) {
		shares = h[sec]
	})
	return shares, nil
}

// ListSecurities returns a snapshot of every security ID, in no particular
// order.
func (m *Market) ListSecurities() []SecID {
	return m.securities.Keys()
}

// Subscribe registers for the tick-completed signal published after every
// matching pass. The caller must Cancel the subscription.
func (m *Market) Subscribe() *watch.Subscription {
	return m.updates.Subscribe()
}
