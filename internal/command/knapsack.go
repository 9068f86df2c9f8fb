// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/staranto/dpctl/internal/knapsack"
	"github.com/staranto/dpctl/internal/memo"
	"github.com/staranto/dpctl/internal/meta"
	"github.com/staranto/dpctl/internal/prompt"
)

type knapsackInput struct {
	Items    int   `json:"items" yaml:"items"`
	Weights  []int `json:"weights" yaml:"weights"`
	Values   []int `json:"values" yaml:"values"`
	Capacity int   `json:"capacity" yaml:"capacity"`
}

// readKnapsack asks for whatever was not supplied by flag, in the order
// item count, weights, values, capacity.
func readKnapsack(cmd *cli.Command, p *prompt.Prompter) (in knapsackInput, err error) {
	if cmd.IsSet("weights") {
		if in.Weights, err = prompt.ParseInts(cmd.String("weights")); err != nil {
			return in, fmt.Errorf("--weights: %w", err)
		}
	}
	if cmd.IsSet("values") {
		if in.Values, err = prompt.ParseInts(cmd.String("values")); err != nil {
			return in, fmt.Errorf("--values: %w", err)
		}
	}

	switch {
	case cmd.IsSet("items"):
		in.Items = cmd.Int("items")
	case cmd.IsSet("weights"):
		in.Items = len(in.Weights)
	default:
		if in.Items, err = p.Int("Enter number of items:"); err != nil {
			return in, err
		}
	}

	if !cmd.IsSet("weights") {
		if in.Weights, err = p.Ints("Enter Weights:"); err != nil {
			return in, err
		}
	}
	if !cmd.IsSet("values") {
		if in.Values, err = p.Ints("Enter Values:"); err != nil {
			return in, err
		}
	}

	if cmd.IsSet("capacity") {
		in.Capacity = cmd.Int("capacity")
	} else if in.Capacity, err = p.Int("Enter Maximum Weight:"); err != nil {
		return in, err
	}

	if len(in.Weights) != in.Items || len(in.Values) != in.Items {
		return in, knapsack.ErrItemCountMismatch
	}
	return in, nil
}

// KnapsackCommandAction is the action handler for the "knapsack" subcommand.
func KnapsackCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &SolverActionRunner[knapsackInput, int]{
		CommandName: "knapsack",
		ReadFn:      readKnapsack,
		SolveFn: func(in knapsackInput, opts *memo.Options) (Solved[int], error) {
			sol, stats, err := knapsack.Solve(in.Weights, in.Values, in.Capacity, opts)
			return Solved[int]{Value: sol.Value, Selection: sol.Items, Stats: stats}, err
		},
		TextFn: func(w io.Writer, cmd *cli.Command, _ knapsackInput, s Solved[int]) error {
			if _, err := fmt.Fprintf(w, "Maximum value in Knapsack = %d\n", s.Value); err != nil {
				return err
			}
			if cmd.Bool("show-items") {
				_, err := fmt.Fprintf(w, "Items taken: %s\n", joinInts(s.Selection))
				return err
			}
			return nil
		},
	}
	return runner.Run(ctx, cmd)
}

// KnapsackCommandBuilder constructs the cli.Command definition for
// "knapsack".
func KnapsackCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SolverCommandBuilder{
		Name:      "knapsack",
		Usage:     "0/1 knapsack maximum value",
		UsageText: `dpctl knapsack [options]`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "capacity",
				Usage: "maximum weight the knapsack holds",
			},
			&cli.IntFlag{
				Name:  "items",
				Usage: "number of items (default: count of --weights)",
			},
			&cli.StringFlag{
				Name:  "values",
				Usage: "item values, separated by spaces or commas",
			},
			&cli.StringFlag{
				Name:  "weights",
				Usage: "item weights, separated by spaces or commas",
			},
			NewShowItemsFlag("knapsack", meta.Config.Source),
		},
		Action: KnapsackCommandAction,
		Meta:   meta,
	}).Build()
}
