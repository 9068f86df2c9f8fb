// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/dpctl/internal/memo"
)

func TestWays(t *testing.T) {
	tests := []struct {
		name  string
		steps int
		want  int
	}{
		{name: "no steps", steps: 0, want: 0},
		{name: "one step", steps: 1, want: 1},
		{name: "two steps", steps: 2, want: 2},
		{name: "three steps", steps: 3, want: 3},
		{name: "five steps", steps: 5, want: 8},
		{name: "ten steps", steps: 10, want: 89},
		{name: "forty steps", steps: 40, want: 165580141},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Ways(tt.steps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWays_Negative(t *testing.T) {
	_, err := Ways(-3)
	assert.ErrorIs(t, err, ErrNegativeSteps)
}

// countSequences enumerates every 1-or-2 step sequence, skipping n = 0 which
// the recurrence defines as zero ways.
func countSequences(n int) int {
	if n == 0 {
		return 0
	}
	var walk func(left int) int
	walk = func(left int) int {
		switch {
		case left == 0:
			return 1
		case left < 0:
			return 0
		}
		return walk(left-1) + walk(left-2)
	}
	return walk(n)
}

func TestWays_MatchesEnumeration(t *testing.T) {
	for n := 0; n <= 20; n++ {
		got, err := Ways(n)
		require.NoError(t, err)
		assert.Equal(t, countSequences(n), got, "n=%d", n)
	}
}

func TestSolve_StrategiesAgree(t *testing.T) {
	for n := 0; n <= 50; n++ {
		top, _, err := Solve(n, &memo.Options{Strategy: memo.TopDown})
		require.NoError(t, err)
		bottom, _, err := Solve(n, &memo.Options{Strategy: memo.BottomUp})
		require.NoError(t, err)
		assert.Equal(t, top, bottom, "n=%d", n)
	}
}

func TestSolve_EachStateOnce(t *testing.T) {
	_, stats, err := Solve(25, nil)
	require.NoError(t, err)
	assert.Equal(t, 23, stats.Entries)
	assert.Equal(t, stats.Entries, stats.Misses)
}
