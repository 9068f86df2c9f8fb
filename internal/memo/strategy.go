// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package memo

import (
	"fmt"
	"strings"
)

// Strategy selects how a solver walks its recurrence.
//
//   - TopDown: recurse from the requested state, consulting the table
//     before each call. Only reachable states are stored.
//   - BottomUp: fill the table in dependency order with plain loops. Every
//     state up to the requested one is stored and there is no recursion.
//
// Both strategies evaluate the same recurrence and return the same value.
type Strategy int

const (
	// TopDown is recursion with memoization ("memo").
	TopDown Strategy = iota

	// BottomUp is iterative table filling ("table").
	BottomUp
)

// Strategies lists the accepted names, in flag help order.
var Strategies = []string{"memo", "table"}

func (s Strategy) String() string {
	switch s {
	case TopDown:
		return "memo"
	case BottomUp:
		return "table"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a flag value into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "memo", "topdown", "top-down":
		return TopDown, nil
	case "table", "bottomup", "bottom-up":
		return BottomUp, nil
	default:
		return TopDown, fmt.Errorf("unknown strategy %q, must be one of %v", name, Strategies)
	}
}

// Options configures a single solve. A nil *Options is valid and means
// TopDown.
type Options struct {
	Strategy Strategy
}

// Mode returns the configured strategy, defaulting to TopDown.
func (o *Options) Mode() Strategy {
	if o == nil {
		return TopDown
	}
	return o.Strategy
}
