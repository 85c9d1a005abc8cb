package shardmap

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreViewUpdate(t *testing.T) {
	m := New[string, int]()

	assert.False(t, m.Contains("a"))
	assert.False(t, m.View("a", func(int) {}))
	assert.False(t, m.Update("a", func(v int) int { return v }))

	m.Store("a", 1)
	assert.True(t, m.Contains("a"))

	var got int
	require.True(t, m.View("a", func(v int) { got = v }))
	assert.Equal(t, 1, got)

	require.True(t, m.Update("a", func(v int) int { return v + 41 }))
	m.View("a", func(v int) { got = v })
	assert.Equal(t, 42, got)

	// Store replaces.
	m.Store("a", 7)
	m.View("a", func(v int) { got = v })
	assert.Equal(t, 7, got)
}

func TestKeysAndLen(t *testing.T) {
	m := New[int, string]()
	want := make([]int, 0, 100)
	for i := 0; i < 100; i++ {
		m.Store(i, "x")
		want = append(want, i)
	}
	assert.Equal(t, 100, m.Len())
	assert.ElementsMatch(t, want, m.Keys())
}

func TestRangeVisitsEveryEntry(t *testing.T) {
	m := New[int, int]()
	want := 0
	for i := 1; i <= 50; i++ {
		m.Store(i, i)
		want += i
	}
	sum := 0
	m.Range(func(_ int, v int) { sum += v })
	assert.Equal(t, want, sum)
}

func TestConcurrentUpdatesOneKey(t *testing.T) {
	m := New[string, int]()
	m.Store("counter", 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Update("counter", func(v int) int { return v + 1 })
			}
		}()
	}
	wg.Wait()

	var got int
	m.View("counter", func(v int) { got = v })
	assert.Equal(t, 8000, got)
}

// A held entry lock must not stall accessors of a different key, whatever
// shard the keys land in.
func TestDifferentKeysDoNotBlock(t *testing.T) {
	m := New[string, int]()
	m.Store("held", 0)
	m.Store("free", 0)

	entered := make(chan struct{})
	release := make(chan struct{})
	go m.Update("held", func(v int) int {
		close(entered)
		<-release
		return v
	})
	<-entered
	defer close(release)

	done := make(chan struct{})
	go func() {
		m.Update("free", func(v int) int { return v + 1 })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("access to a different key blocked behind a held entry")
	}
}
