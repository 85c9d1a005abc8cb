package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBidQueueHeadIsLowestPrice(t *testing.T) {
	q := newBidQueue()
	a := NewAccID()
	for _, price := range []float64{3.0, 1.0, 2.0} {
		q.push(a, price)
	}

	_, price, ok := q.peek()
	require.True(t, ok)
	assert.Equal(t, 1.0, price)

	var popped []float64
	for {
		_, price, ok := q.pop()
		if !ok {
			break
		}
		popped = append(popped, price)
	}
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, popped)
}

func TestAskQueueHeadIsHighestPrice(t *testing.T) {
	q := newAskQueue()
	a := NewAccID()
	for _, price := range []float64{3.0, 1.0, 2.0} {
		q.push(a, price)
	}

	_, price, ok := q.peek()
	require.True(t, ok)
	assert.Equal(t, 3.0, price)

	var popped []float64
	for {
		_, price, ok := q.pop()
		if !ok {
			break
		}
		popped = append(popped, price)
	}
	assert.Equal(t, []float64{3.0, 2.0, 1.0}, popped)
}

func TestQueueFIFOWithinLevel(t *testing.T) {
	q := newBidQueue()
	first, second, third := NewAccID(), NewAccID(), NewAccID()
	q.push(first, 5.0)
	q.push(second, 5.0)
	q.push(third, 5.0)

	for _, want := range []AccID{first, second, third} {
		acc, price, ok := q.pop()
		require.True(t, ok)
		assert.Equal(t, want, acc)
		assert.Equal(t, 5.0, price)
	}
}

func TestQueueEmpty(t *testing.T) {
	q := newAskQueue()
	_, _, ok := q.peek()
	assert.False(t, ok)
	_, _, ok = q.pop()
	assert.False(t, ok)
	assert.Equal(t, 0, q.len())

	q.push(NewAccID(), 1.0)
	assert.Equal(t, 1, q.len())
	q.pop()
	assert.Equal(t, 0, q.len())
	_, _, ok = q.peek()
	assert.False(t, ok)
}
