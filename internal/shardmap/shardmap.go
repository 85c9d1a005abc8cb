// Package shardmap provides a concurrent map granting per-key exclusive
// access: an accessor of key K blocks only other accessors of K, never
// accessors of a different key.
package shardmap

import (
	"hash/maphash"
	"sync"
)

const shardCount = 32

// Map is a sharded hash map with a mutex per entry. Callbacks passed to
// View, Update and Range run under that one entry's lock. Callers nesting
// operations on multiple Maps must keep a consistent lock order.
type Map[K comparable, V any] struct {
	seed   maphash.Seed
	shards [shardCount]shard[K, V]
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
}

type entry[V any] struct {
	mu    sync.Mutex
	value V
}

func New[K comparable, V any]() *Map[K, V] {
	m := &Map[K, V]{seed: maphash.MakeSeed()}
	for i := range m.shards {
		m.shards[i].entries = make(map[K]*entry[V])
	}
	return m
}

func (m *Map[K, V]) shard(key K) *shard[K, V] {
	return &m.shards[maphash.Comparable(m.seed, key)%shardCount]
}

// lookup resolves the entry for key, holding the shard lock only for the
// duration of the map access.
func (m *Map[K, V]) lookup(key K) (*entry[V], bool) {
	s := m.shard(key)
	s.mu.Lock()
	e, ok := s.entries[key]
	s.mu.Unlock()
	return e, ok
}

// Store inserts or replaces the value for key.
func (m *Map[K, V]) Store(key K, value V) {
	s := m.shard(key)
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.entries[key] = &entry[V]{value: value}
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	e.mu.Lock()
	e.value = value
	e.mu.Unlock()
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.lookup(key)
	return ok
}

// View runs fn with the value for key under the entry lock. fn must not
// retain the value past its return. Reports whether key was present.
func (m *Map[K, V]) View(key K, fn func(V)) bool {
	e, ok := m.lookup(key)
	if !ok {
		return false
	}
	e.mu.Lock()
	fn(e.value)
	e.mu.Unlock()
	return true
}

// Update runs fn with the value for key under the entry lock and stores
// whatever fn returns. Reports whether key was present.
func (m *Map[K, V]) Update(key K, fn func(V) V) bool {
	e, ok := m.lookup(key)
	if !ok {
		return false
	}
	e.mu.Lock()
	e.value = fn(e.value)
	e.mu.Unlock()
	return true
}

// Range calls fn for every entry, locking one entry at a time. The set of
// visited keys is a snapshot; entries stored concurrently may be missed.
func (m *Map[K, V]) Range(fn func(K, V)) {
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		keys := make([]K, 0, len(s.entries))
		entries := make([]*entry[V], 0, len(s.entries))
		for k, e := range s.entries {
			keys = append(keys, k)
			entries = append(entries, e)
		}
		s.mu.Unlock()

		for j, e := range entries {
			e.mu.Lock()
			fn(keys[j], e.value)
			e.mu.Unlock()
		}
	}
}

// Keys returns a snapshot of the present keys, in no particular order.
func (m *Map[K, V]) Keys() []K {
	var keys []K
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		for k := range s.entries {
			keys = append(keys, k)
		}
		s.mu.Unlock()
	}
	return keys
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	n := 0
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}
