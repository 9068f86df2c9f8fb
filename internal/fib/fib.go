// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package fib computes Fibonacci numbers with a memoized recurrence.
//
//	f(0) = 0
//	f(1) = 1
//	f(n) = f(n-1) + f(n-2)
//
// Values are native ints and wrap past n = 92.
package fib

import (
	"errors"

	"github.com/apex/log"

	"github.com/staranto/dpctl/internal/memo"
)

// ErrNegativeIndex is returned for n < 0.
var ErrNegativeIndex = errors.New("fib: index must be non-negative")

// Number returns the nth Fibonacci number.
func Number(n int) (int, error) {
	v, _, err := Solve(n, nil)
	return v, err
}

// Solve returns the nth Fibonacci number along with the counters of the
// table used to compute it. Every call builds its own table.
func Solve(n int, opts *memo.Options) (int, memo.Stats, error) {
	if n < 0 {
		return 0, memo.Stats{}, ErrNegativeIndex
	}

	table := memo.New[int, int]("fib")
	var value int
	switch opts.Mode() {
	case memo.BottomUp:
		value = bottomUp(n, table)
	default:
		value = topDown(n, table)
	}
	table.Log()

	log.WithFields(log.Fields{"n": n, "strategy": opts.Mode()}).Debug("fib: solved")
	return value, table.Stats(), nil
}

func topDown(n int, table *memo.Table[int, int]) int {
	if n <= 1 {
		return n
	}
	return table.Eval(n, func() int {
		return topDown(n-1, table) + topDown(n-2, table)
	})
}

func bottomUp(n int, table *memo.Table[int, int]) int {
	if n <= 1 {
		return n
	}
	table.Put(0, 0)
	table.Put(1, 1)
	for i := 2; i <= n; i++ {
		a, _ := table.Get(i - 1)
		b, _ := table.Get(i - 2)
		table.Put(i, a+b)
	}
	v, _ := table.Peek(n)
	return v
}
