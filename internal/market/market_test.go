package market

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSecurityFoundingState(t *testing.T) {
	m := New()
	sec, owner := m.CreateSecurity(100, 10.0)

	shares, err := m.AccountShares(owner, sec)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), shares)

	value, err := m.CurrentValue(sec)
	require.NoError(t, err)
	assert.Equal(t, 10.0, value)

	ask, err := m.HighestAskPrice(sec)
	require.NoError(t, err)
	assert.Equal(t, 10.0, ask)

	// Founding shares are enqueued as individual one-unit asks.
	var asks int
	m.securities.View(sec, func(s *security) { asks = s.asks.len() })
	assert.Equal(t, 100, asks)

	assert.Contains(t, m.ListSecurities(), sec)
}

func TestPricePriority(t *testing.T) {
	m := New()
	sec, _ := m.CreateSecurity(0, 1.0)
	acc := m.CreateAccount()

	for _, price := range []float64{3.0, 1.0, 2.0} {
		require.NoError(t, m.PlaceBid(acc, sec, price))
		require.NoError(t, m.PlaceAsk(acc, sec, price))
	}

	// Head of the bid queue is the minimum, head of the ask queue the
	// maximum: the inverted ordering of this system.
	bid, err := m.LowestBidPrice(sec)
	require.NoError(t, err)
	assert.Equal(t, 1.0, bid)

	ask, err := m.HighestAskPrice(sec)
	require.NoError(t, err)
	assert.Equal(t, 3.0, ask)
}

func TestEmptyQueuesReportNoOrders(t *testing.T) {
	m := New()
	sec, _ := m.CreateSecurity(0, 1.0)

	_, err := m.LowestBidPrice(sec)
	var noBids *NoBidsError
	require.ErrorAs(t, err, &noBids)
	assert.Equal(t, sec, noBids.Sec)

	_, err = m.HighestAskPrice(sec)
	var noAsks *NoAsksError
	require.ErrorAs(t, err, &noAsks)
	assert.Equal(t, sec, noAsks.Sec)
}

func TestQueriesUnknownSecurity(t *testing.T) {
	m := New()
	unknown := NewSecID()
	acc := m.CreateAccount()

	var notFound *SecurityNotFoundError

	_, err := m.LowestBidPrice(unknown)
	assert.ErrorAs(t, err, &notFound)

	_, err = m.HighestAskPrice(unknown)
	assert.ErrorAs(t, err, &notFound)

	_, err = m.CurrentValue(unknown)
	assert.ErrorAs(t, err, &notFound)

	_, err = m.MarketCap(unknown)
	assert.ErrorAs(t, err, &notFound)

	_, err = m.AccountShares(acc, unknown)
	assert.ErrorAs(t, err, &notFound)

	_, err = m.AccountValue(acc, unknown)
	assert.ErrorAs(t, err, &notFound)
}

func TestPlaceOrderUnknownAccount(t *testing.T) {
	m := New()
	sec, _ := m.CreateSecurity(0, 1.0)
	ghost := NewAccID()

	var notFound *AccountNotFoundError
	assert.ErrorAs(t, m.PlaceBid(ghost, sec, 2.0), &notFound)
	assert.Equal(t, ghost, notFound.Acc)
	assert.ErrorAs(t, m.PlaceAsk(ghost, sec, 2.0), &notFound)
}

func TestPlaceOrderUnknownSecurity(t *testing.T) {
	m := New()
	acc := m.CreateAccount()
	unknown := NewSecID()

	var notFound *SecurityNotFoundError
	assert.ErrorAs(t, m.PlaceBid(acc, unknown, 2.0), &notFound)
	assert.Equal(t, unknown, notFound.Sec)
	assert.ErrorAs(t, m.PlaceAsk(acc, unknown, 2.0), &notFound)
}

func TestPlaceOrderInvalidPrice(t *testing.T) {
	m := New()
	sec, _ := m.CreateSecurity(0, 1.0)
	acc := m.CreateAccount()

	assert.ErrorIs(t, m.PlaceBid(acc, sec, math.NaN()), ErrInvalidPrice)
	assert.ErrorIs(t, m.PlaceBid(acc, sec, math.Inf(1)), ErrInvalidPrice)
	assert.ErrorIs(t, m.PlaceAsk(acc, sec, math.Inf(-1)), ErrInvalidPrice)

	// Validation happens before any mutation.
	_, err := m.LowestBidPrice(sec)
	var noBids *NoBidsError
	assert.ErrorAs(t, err, &noBids)
}

func TestAccountValueAndMarketCap(t *testing.T) {
	m := New()
	sec, owner := m.CreateSecurity(100, 10.0)
	b := m.CreateAccount()

	mcap, err := m.MarketCap(sec)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, mcap)

	// No holdings entry means a value of zero, not an error.
	value, err := m.AccountValue(b, sec)
	require.NoError(t, err)
	assert.Equal(t, 0.0, value)

	require.NoError(t, m.PlaceBid(b, sec, 12.0))
	m.Match()

	mcap, err = m.MarketCap(sec)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, mcap)

	value, err = m.AccountValue(b, sec)
	require.NoError(t, err)
	assert.Equal(t, 12.0, value)

	ownerValue, err := m.AccountValue(owner, sec)
	require.NoError(t, err)
	assert.Equal(t, 99.0*12.0, ownerValue)
}
