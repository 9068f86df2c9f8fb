// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package ladder counts the distinct ways to climb a staircase when every
// step covers one or two stairs.
package ladder

import (
	"errors"

	"github.com/apex/log"

	"github.com/staranto/dpctl/internal/memo"
)

// ErrNegativeSteps is returned for a staircase with fewer than zero steps.
var ErrNegativeSteps = errors.New("ladder: number of steps must be non-negative")

// Explanation is printed after the count by the ladder command.
const Explanation = "You can climb either 1 or 2 steps at a time. " +
	"This program uses dynamic programming to efficiently calculate all unique climbing combinations."

// Ways returns the number of distinct 1-or-2 step sequences reaching n.
func Ways(n int) (int, error) {
	v, _, err := Solve(n, nil)
	return v, err
}

// Solve is Ways with a strategy choice and table counters. The base cases
// are f(0)=0, f(1)=1, f(2)=2.
func Solve(n int, opts *memo.Options) (int, memo.Stats, error) {
	if n < 0 {
		return 0, memo.Stats{}, ErrNegativeSteps
	}

	table := memo.New[int, int]("ladder")
	var ways int
	if opts.Mode() == memo.BottomUp {
		ways = bottomUp(n, table)
	} else {
		ways = topDown(n, table)
	}
	table.Log()

	log.WithFields(log.Fields{"steps": n, "ways": ways}).Debug("ladder: solved")
	return ways, table.Stats(), nil
}

func topDown(n int, table *memo.Table[int, int]) int {
	if n <= 2 {
		return n
	}
	return table.Eval(n, func() int {
		return topDown(n-1, table) + topDown(n-2, table)
	})
}

func bottomUp(n int, table *memo.Table[int, int]) int {
	if n <= 2 {
		return n
	}
	table.Put(1, 1)
	table.Put(2, 2)
	for i := 3; i <= n; i++ {
		a, _ := table.Get(i - 1)
		b, _ := table.Get(i - 2)
		table.Put(i, a+b)
	}
	v, _ := table.Peek(n)
	return v
}
