// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package knapsack solves the 0/1 knapsack problem with a memoized
// recurrence over (item index, remaining capacity).
//
// At state (i, c) the best value is the larger of skipping item i, f(i+1, c),
// and taking it, values[i] + f(i+1, c-weights[i]). Taking is only considered
// when weights[i] <= c. The value is 0 once every item has been considered
// or the capacity is used up.
//
// Usage:
//
//	sol, stats, err := knapsack.Solve(
//		[]int{1, 3, 4, 5},
//		[]int{1, 4, 5, 7},
//		7,
//		&memo.Options{Strategy: memo.BottomUp},
//	)
//	// sol.Value == 9, sol.Items == []int{1, 2}
package knapsack
