// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/staranto/dpctl/internal/memo"
	"github.com/staranto/dpctl/internal/meta"
	"github.com/staranto/dpctl/internal/prompt"
	"github.com/staranto/dpctl/internal/robber"
)

type robInput struct {
	Houses []int `json:"houses" yaml:"houses"`
}

// RobCommandAction is the action handler for the "rob" subcommand. It reads
// the house values and prints the best total that skips neighbours.
func RobCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &SolverActionRunner[robInput, int]{
		CommandName: "rob",
		ReadFn: func(cmd *cli.Command, p *prompt.Prompter) (robInput, error) {
			var (
				houses []int
				err    error
			)
			if arg, ok := positional(cmd); ok {
				houses, err = prompt.ParseInts(arg)
			} else {
				houses, err = p.Ints("Enter the values of the houses separated by space: ")
			}
			return robInput{Houses: houses}, err
		},
		SolveFn: func(in robInput, opts *memo.Options) (Solved[int], error) {
			plan, stats, err := robber.Solve(in.Houses, opts)
			return Solved[int]{Value: plan.Value, Selection: plan.Houses, Stats: stats}, err
		},
		TextFn: func(w io.Writer, cmd *cli.Command, _ robInput, s Solved[int]) error {
			if _, err := fmt.Fprintf(w, "The maximum value that can be robbed is: %d\n", s.Value); err != nil {
				return err
			}
			if cmd.Bool("show-items") {
				_, err := fmt.Fprintf(w, "Houses robbed: %s\n", joinInts(s.Selection))
				return err
			}
			return nil
		},
	}
	return runner.Run(ctx, cmd)
}

// RobCommandBuilder constructs the cli.Command definition for "rob".
func RobCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SolverCommandBuilder{
		Name:      "rob",
		Usage:     "house robber maximum",
		UsageText: `dpctl rob [options] [value...]`,
		Flags: []cli.Flag{
			NewShowItemsFlag("rob", meta.Config.Source),
		},
		Action: RobCommandAction,
		Meta:   meta,
	}).Build()
}
