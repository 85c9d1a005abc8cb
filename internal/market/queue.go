package market

import (
	"github.com/gammazero/deque"
	"github.com/tidwall/btree"
)

// A priceLevel holds every resting order at one price, oldest first. Only
// the account is stored per order; the price is the level's.
type priceLevel struct {
	price  float64
	orders deque.Deque[AccID]
}

// orderQueue is one side of a book: price levels in priority order, FIFO
// arrival order within a level. Which price sits at the head is decided by
// the headFirst function, so the two sides can invert it.
type orderQueue struct {
	levels *btree.BTreeG[*priceLevel]
	length int
}

func newOrderQueue(headFirst func(a, b float64) bool) *orderQueue {
	return &orderQueue{
		levels: btree.NewBTreeG(func(a, b *priceLevel) bool {
			return headFirst(a.price, b.price)
		}),
	}
}

// newBidQueue builds the bid side. The head is the numerically *lowest*
// bid, mirroring the source system rather than the usual best-bid
// convention; see DESIGN.md before changing.
func newBidQueue() *orderQueue {
	return newOrderQueue(func(a, b float64) bool { return a < b })
}

// newAskQueue builds the ask side. The head is the numerically *highest*
// ask; see newBidQueue.
func newAskQueue() *orderQueue {
	return newOrderQueue(func(a, b float64) bool { return a > b })
}

func (q *orderQueue) push(acc AccID, price float64) {
	// Levels compare on price only, so a dummy level works as a search key.
	if level, ok := q.levels.GetMut(&priceLevel{price: price}); ok {
		level.orders.PushBack(acc)
	} else {
		level := &priceLevel{price: price}
		level.orders.PushBack(acc)
		q.levels.Set(level)
	}
	q.length++
}

// peek returns the head order without removing it.
func (q *orderQueue) peek() (acc AccID, price float64, ok bool) {
	level, ok := q.levels.Min()
	if !ok {
		return AccID{}, 0, false
	}
	return level.orders.Front(), level.price, true
}

// pop removes and returns the head order.
func (q *orderQueue) pop() (acc AccID, price float64, ok bool) {
	level, ok := q.levels.MinMut()
	if !ok {
		return AccID{}, 0, false
	}
	acc = level.orders.PopFront()
	if level.orders.Len() == 0 {
		q.levels.Delete(level)
	}
	q.length--
	return acc, level.price, true
}

func (q *orderQueue) len() int {
	return q.length
}
