// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/staranto/dpctl/internal/ladder"
	"github.com/staranto/dpctl/internal/memo"
	"github.com/staranto/dpctl/internal/meta"
	"github.com/staranto/dpctl/internal/prompt"
)

type ladderInput struct {
	Steps int `json:"steps" yaml:"steps"`
}

// LadderCommandAction is the action handler for the "ladder" subcommand. It
// counts the 1-or-2 step sequences that climb N steps.
func LadderCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &SolverActionRunner[ladderInput, int]{
		CommandName: "ladder",
		ReadFn: func(cmd *cli.Command, p *prompt.Prompter) (ladderInput, error) {
			var (
				n   int
				err error
			)
			if arg, ok := positional(cmd); ok {
				n, err = prompt.ParseInt(arg)
			} else {
				n, err = p.Int("\nEnter the number of steps: ")
			}
			return ladderInput{Steps: n}, err
		},
		SolveFn: func(in ladderInput, opts *memo.Options) (Solved[int], error) {
			v, stats, err := ladder.Solve(in.Steps, opts)
			return Solved[int]{Value: v, Stats: stats}, err
		},
		TextFn: func(w io.Writer, _ *cli.Command, in ladderInput, s Solved[int]) error {
			_, err := fmt.Fprintf(w, "\nNumber of distinct ways to climb %d steps: %d\n\n%s\n",
				in.Steps, s.Value, ladder.Explanation)
			return err
		},
	}
	return runner.Run(ctx, cmd)
}

// LadderCommandBuilder constructs the cli.Command definition for "ladder".
func LadderCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SolverCommandBuilder{
		Name:      "ladder",
		Usage:     "ways to climb a staircase 1 or 2 steps at a time",
		UsageText: `dpctl ladder [options] [steps]`,
		Action:    LadderCommandAction,
		Meta:      meta,
	}).Build()
}
