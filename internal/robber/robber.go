// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package robber solves the house robber problem: pick houses from a row so
// that no two neighbours are both picked and the total value is as large as
// possible.
//
// f(n) is the best total from houses[0..n]:
//
//	f(-1) = 0
//	f(0)  = houses[0]
//	f(1)  = max(houses[0], houses[1])
//	f(n)  = max(f(n-1), f(n-2) + houses[n])
package robber

import (
	"errors"

	"github.com/apex/log"

	"github.com/staranto/dpctl/internal/memo"
)

// ErrNoHouses is returned for an empty row.
var ErrNoHouses = errors.New("robber: at least one house value is required")

// Plan is the best total and the robbed house indices in ascending order.
type Plan struct {
	Value  int
	Houses []int
}

type problem struct {
	houses []int
	table  *memo.Table[int, int]
}

// MaxValue returns the most that can be robbed from houses.
func MaxValue(houses []int) (int, error) {
	plan, _, err := Solve(houses, nil)
	return plan.Value, err
}

// Solve evaluates f(len(houses)-1) with a fresh table and recovers which
// houses produce it.
func Solve(houses []int, opts *memo.Options) (Plan, memo.Stats, error) {
	if len(houses) == 0 {
		return Plan{}, memo.Stats{}, ErrNoHouses
	}

	p := &problem{
		houses: houses,
		table:  memo.New[int, int]("robber"),
	}

	last := len(houses) - 1
	var value int
	if opts.Mode() == memo.BottomUp {
		value = p.fill(last)
	} else {
		value = p.best(last)
	}
	p.table.Log()

	plan := Plan{Value: value, Houses: p.selection(last)}
	log.WithFields(log.Fields{"houses": len(houses), "value": value, "robbed": plan.Houses}).Debug("robber: solved")
	return plan, p.table.Stats(), nil
}

// base reports f(n) for n <= 1.
func (p *problem) base(n int) (int, bool) {
	switch n {
	case -1:
		return 0, true
	case 0:
		return p.houses[0], true
	case 1:
		return max(p.houses[0], p.houses[1]), true
	}
	return 0, false
}

func (p *problem) best(n int) int {
	if v, ok := p.base(n); ok {
		return v
	}
	return p.table.Eval(n, func() int {
		return max(p.best(n-1), p.best(n-2)+p.houses[n])
	})
}

func (p *problem) fill(last int) int {
	read := func(n int) int {
		if v, ok := p.base(n); ok {
			return v
		}
		v, _ := p.table.Get(n)
		return v
	}
	for n := 2; n <= last; n++ {
		p.table.Put(n, max(read(n-1), read(n-2)+p.houses[n]))
	}
	return read(last)
}

// value reads a finished table without touching its counters.
func (p *problem) value(n int) int {
	if v, ok := p.base(n); ok {
		return v
	}
	v, _ := p.table.Peek(n)
	return v
}

// selection walks back from the last house. House n is robbed when skipping
// it would give a smaller total, after which n-1 is off limits.
func (p *problem) selection(last int) []int {
	var picked []int
	n := last
	for n >= 0 {
		switch {
		case n == 0:
			picked = append(picked, 0)
			n = -1
		case n == 1:
			if p.houses[1] > p.houses[0] {
				picked = append(picked, 1)
			} else {
				picked = append(picked, 0)
			}
			n = -1
		case p.value(n) == p.value(n-1):
			n--
		default:
			picked = append(picked, n)
			n -= 2
		}
	}

	houses := make([]int, 0, len(picked))
	for i := len(picked) - 1; i >= 0; i-- {
		houses = append(houses, picked[i])
	}
	return houses
}
