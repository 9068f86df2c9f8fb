// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/staranto/dpctl/internal/fib"
	"github.com/staranto/dpctl/internal/memo"
	"github.com/staranto/dpctl/internal/meta"
	"github.com/staranto/dpctl/internal/prompt"
)

type fibInput struct {
	N int `json:"n" yaml:"n"`
}

// FibCommandAction is the action handler for the "fib" subcommand. It reads
// n from the first argument or a prompt and prints the nth Fibonacci number.
func FibCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &SolverActionRunner[fibInput, int]{
		CommandName: "fib",
		ReadFn: func(cmd *cli.Command, p *prompt.Prompter) (fibInput, error) {
			var (
				n   int
				err error
			)
			if arg, ok := positional(cmd); ok {
				n, err = prompt.ParseInt(arg)
			} else {
				n, err = p.Int("Enter a number: ")
			}
			return fibInput{N: n}, err
		},
		SolveFn: func(in fibInput, opts *memo.Options) (Solved[int], error) {
			v, stats, err := fib.Solve(in.N, opts)
			return Solved[int]{Value: v, Stats: stats}, err
		},
		TextFn: func(w io.Writer, _ *cli.Command, in fibInput, s Solved[int]) error {
			_, err := fmt.Fprintf(w, "The %dth Fibonacci number is: %d\n", in.N, s.Value)
			return err
		},
	}
	return runner.Run(ctx, cmd)
}

// FibCommandBuilder constructs the cli.Command definition for "fib".
func FibCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SolverCommandBuilder{
		Name:      "fib",
		Usage:     "nth Fibonacci number",
		UsageText: `dpctl fib [options] [n]`,
		Action:    FibCommandAction,
		Meta:      meta,
	}).Build()
}
