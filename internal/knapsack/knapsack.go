// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package knapsack

import (
	"errors"

	"github.com/apex/log"

	"github.com/staranto/dpctl/internal/memo"
)

var (
	// ErrLengthMismatch indicates weights and values are not parallel.
	ErrLengthMismatch = errors.New("knapsack: weights and values must have the same length")

	// ErrItemCountMismatch is what the knapsack command reports when the
	// weights or values it read do not match the declared item count.
	ErrItemCountMismatch = errors.New("Error: Number of weights and values must match the number of items.") //nolint:staticcheck
)

// Solution is the best value reachable and the item indices that reach it,
// in ascending order.
type Solution struct {
	Value int
	Items []int
}

type state struct {
	item     int
	capacity int
}

type problem struct {
	weights []int
	values  []int
	table   *memo.Table[state, int]
}

// MaxValue returns the best total value that fits within capacity.
func MaxValue(weights, values []int, capacity int) (int, error) {
	sol, _, err := Solve(weights, values, capacity, nil)
	return sol.Value, err
}

// Solve runs the recurrence from state (0, capacity) with a fresh table and
// walks the finished table back to recover the chosen items.
func Solve(weights, values []int, capacity int, opts *memo.Options) (Solution, memo.Stats, error) {
	if len(weights) != len(values) {
		return Solution{}, memo.Stats{}, ErrLengthMismatch
	}

	p := &problem{
		weights: weights,
		values:  values,
		table:   memo.New[state, int]("knapsack"),
	}

	var value int
	if opts.Mode() == memo.BottomUp {
		value = p.fill(capacity)
	} else {
		value = p.best(0, capacity)
	}
	p.table.Log()

	sol := Solution{Value: value, Items: p.selection(capacity)}
	log.WithFields(log.Fields{
		"items":    len(weights),
		"capacity": capacity,
		"value":    value,
		"taken":    sol.Items,
	}).Debug("knapsack: solved")

	return sol, p.table.Stats(), nil
}

func (p *problem) base(i, capacity int) bool {
	return i == len(p.weights) || capacity <= 0
}

func (p *problem) best(i, capacity int) int {
	if p.base(i, capacity) {
		return 0
	}
	return p.table.Eval(state{i, capacity}, func() int {
		return p.choose(i, capacity, p.best)
	})
}

// choose applies the recurrence at (i, capacity), reading sub-results
// through next.
func (p *problem) choose(i, capacity int, next func(int, int) int) int {
	include := 0
	if p.weights[i] <= capacity {
		include = p.values[i] + next(i+1, capacity-p.weights[i])
	}
	exclude := next(i+1, capacity)
	return max(include, exclude)
}

// fill evaluates every state (i, c) with c in 1..capacity, last item first,
// so both dependencies of a state are already stored.
func (p *problem) fill(capacity int) int {
	read := func(i, c int) int {
		if p.base(i, c) {
			return 0
		}
		v, _ := p.table.Get(state{i, c})
		return v
	}
	for i := len(p.weights) - 1; i >= 0; i-- {
		for c := 1; c <= capacity; c++ {
			p.table.Put(state{i, c}, p.choose(i, c, read))
		}
	}
	return read(0, capacity)
}

// value reads a finished table without touching its counters.
func (p *problem) value(i, capacity int) int {
	if p.base(i, capacity) {
		return 0
	}
	v, _ := p.table.Peek(state{i, capacity})
	return v
}

// selection walks from (0, capacity): an item is taken exactly when skipping
// it would give a different value.
func (p *problem) selection(capacity int) []int {
	items := []int{}
	c := capacity
	for i := 0; i < len(p.weights) && c > 0; i++ {
		if p.value(i, c) != p.value(i+1, c) {
			items = append(items, i)
			c -= p.weights[i]
		}
	}
	return items
}
