package market

import (
	"time"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

// Engine drives matching passes on a fixed interval. Exactly one Engine
// runs per Market, and each pass completes before the next tick is
// consumed, so passes never overlap.
type Engine struct {
	market   *Market
	interval time.Duration
}

func NewEngine(m *Market, interval time.Duration) *Engine {
	return &Engine{market: m, interval: interval}
}

// Run blocks until the tomb dies. A pass that overruns the interval simply
// delays the next one; the ticker coalesces missed ticks.
func (e *Engine) Run(t *tomb.Tomb) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.Dying():
			return nil
		case <-ticker.C:
			log.Trace().Msg("market update tick")
			e.market.Match()
		}
	}
}

// Match runs one full matching pass over every security, then publishes a
// single update signal. The engine calls this once per tick; tests call it
// directly for deterministic ticks.
func (m *Market) Match() {
	for _, id := range m.securities.Keys() {
		m.securities.Update(id, func(s *security) *security {
			m.matchSecurity(id, s)
			return s
		})
	}
	m.updates.Publish()
}

// matchSecurity crosses head-of-queue pairs while the lowest resting bid
// still clears the highest resting ask, per the book's priority rule. The
// security entry is locked by the caller for the whole loop; account
// entries are taken one at a time, seller before buyer.
func (m *Market) matchSecurity(id SecID, sec *security) {
	for {
		_, bidPrice, haveBid := sec.bids.peek()
		_, askPrice, haveAsk := sec.asks.peek()
		if !haveBid || !haveAsk || bidPrice < askPrice {
			return
		}

		buyer, price, _ := sec.bids.pop()
		seller, _, _ := sec.asks.pop()

		if !m.settle(id, seller, buyer) {
			// Both orders are already off the book and are not requeued,
			// so a starved seller silently destroys the pair. This
			// reproduces the source system; see DESIGN.md before changing.
			log.Warn().
				Stringer("security", id).
				Stringer("seller", seller).
				Msg("seller has no holdings; matched pair discarded")
			continue
		}

		// The trade executes at the buyer's stated ceiling, never the
		// ask price and never a midpoint.
		sec.lastTrade = price
		log.Info().
			Stringer("security", id).
			Stringer("buyer", buyer).
			Stringer("seller", seller).
			Float64("price", price).
			Msg("trade executed")
	}
}

// settle moves one unit of sec from seller to buyer, reporting false
// without any mutation if the seller holds none. The debit and the credit
// are separate critical sections; nothing observes the in-between state
// because both matched orders are already off the book.
func (m *Market) settle(sec SecID, seller, buyer AccID) bool {
	sold := false
	m.accounts.Update(seller, func(h holdings) holdings {
		if h[sec] < 1 {
			return h
		}
		h[sec]--
		sold = true
		return h
	})
	if !sold {
		return false
	}
	m.accounts.Update(buyer, func(h holdings) holdings {
		h[sec]++
		return h
	})
	return true
}
