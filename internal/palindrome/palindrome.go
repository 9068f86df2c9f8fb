// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package palindrome finds the longest palindromic substring of a string.
//
// The state is an inclusive window (i, j) of rune positions. A window that
// reads the same in both directions is its own answer. Otherwise the answer
// is the longer of the answers for (i, j-1) and (i+1, j), and on a tie the
// (i, j-1) answer wins, so the leftmost of equally long palindromes is
// returned. An empty window (i > j) yields "".
package palindrome

import (
	"github.com/apex/log"

	"github.com/staranto/dpctl/internal/memo"
)

type window struct {
	left  int
	right int
}

// span is a half-open rune range [start, end).
type span struct {
	start int
	end   int
}

func (s span) size() int {
	return s.end - s.start
}

type problem struct {
	runes []rune
	table *memo.Table[window, span]
}

// Longest returns the longest palindromic substring of s.
func Longest(s string) string {
	v, _ := Solve(s, nil)
	return v
}

// Solve is Longest with a strategy choice and table counters.
func Solve(s string, opts *memo.Options) (string, memo.Stats) {
	p := &problem{
		runes: []rune(s),
		table: memo.New[window, span]("palindrome"),
	}

	last := len(p.runes) - 1
	var best span
	if opts.Mode() == memo.BottomUp {
		best = p.fill()
	} else {
		best = p.longest(0, last)
	}
	p.table.Log()

	result := string(p.runes[best.start:best.end])
	log.WithFields(log.Fields{"length": len(p.runes), "found": best.size()}).Debug("palindrome: solved")
	return result, p.table.Stats()
}

func (p *problem) isPalindrome(i, j int) bool {
	for i < j {
		if p.runes[i] != p.runes[j] {
			return false
		}
		i++
		j--
	}
	return true
}

func (p *problem) longest(i, j int) span {
	if i > j {
		return span{}
	}
	return p.table.Eval(window{i, j}, func() span {
		return p.shrink(i, j, p.longest)
	})
}

// shrink applies the recurrence to window (i, j), reading smaller windows
// through next.
func (p *problem) shrink(i, j int, next func(int, int) span) span {
	if p.isPalindrome(i, j) {
		return span{i, j + 1}
	}
	left := next(i, j-1)
	right := next(i+1, j)
	if right.size() > left.size() {
		return right
	}
	return left
}

// fill evaluates windows by increasing width so both shrunk windows are
// stored before they are read.
func (p *problem) fill() span {
	n := len(p.runes)
	if n == 0 {
		return span{}
	}
	read := func(i, j int) span {
		if i > j {
			return span{}
		}
		v, _ := p.table.Get(window{i, j})
		return v
	}
	for width := 1; width <= n; width++ {
		for i := 0; i+width <= n; i++ {
			j := i + width - 1
			p.table.Put(window{i, j}, p.shrink(i, j, read))
		}
	}
	return read(0, n-1)
}
