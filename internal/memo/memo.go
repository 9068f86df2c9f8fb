// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package memo

import (
	"github.com/apex/log"
)

// Stats describes how a Table was used during a single solve.
type Stats struct {
	// Number of distinct states stored.
	Entries int `json:"entries" yaml:"entries"`
	// Lookups answered from the table.
	Hits int `json:"hits" yaml:"hits"`
	// Lookups that forced the state to be computed.
	Misses int `json:"misses" yaml:"misses"`
}

// Table maps a recurrence state key to its computed result. Each key is
// stored at most once and nothing is ever evicted.
type Table[K comparable, V any] struct {
	name    string
	entries map[K]V
	hits    int
	misses  int
}

// New returns an empty Table. The name only shows up in log output.
func New[K comparable, V any](name string) *Table[K, V] {
	return &Table[K, V]{
		name:    name,
		entries: make(map[K]V),
	}
}

// Get returns the value stored for key and records a hit or a miss.
func (t *Table[K, V]) Get(key K) (V, bool) {
	v, ok := t.entries[key]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return v, ok
}

// Peek is Get without touching the counters. It is used when walking back
// through a finished table.
func (t *Table[K, V]) Peek(key K) (V, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Put stores value for key. A key that is already present keeps its first
// value.
func (t *Table[K, V]) Put(key K, value V) bool {
	if _, exists := t.entries[key]; exists {
		log.WithFields(log.Fields{"table": t.name, "key": key}).Warn("memo: ignoring second write for key")
		return false
	}
	t.entries[key] = value
	return true
}

// Eval returns the stored value for key, calling compute and storing its
// result on a miss.
func (t *Table[K, V]) Eval(key K, compute func() V) V {
	if v, ok := t.Get(key); ok {
		return v
	}
	v := compute()
	t.Put(key, v)
	return v
}

// Len reports the number of stored states.
func (t *Table[K, V]) Len() int {
	return len(t.entries)
}

// Stats returns a snapshot of the table counters.
func (t *Table[K, V]) Stats() Stats {
	return Stats{
		Entries: len(t.entries),
		Hits:    t.hits,
		Misses:  t.misses,
	}
}

// Log writes the table counters at debug level.
func (t *Table[K, V]) Log() {
	s := t.Stats()
	log.WithFields(log.Fields{
		"table":   t.name,
		"entries": s.Entries,
		"hits":    s.Hits,
		"misses":  s.Misses,
	}).Debug("memo: solve finished")
}
