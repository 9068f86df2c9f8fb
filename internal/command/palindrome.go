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
	"github.com/staranto/dpctl/internal/palindrome"
	"github.com/staranto/dpctl/internal/prompt"
)

type palindromeInput struct {
	Text string `json:"text" yaml:"text"`
}

// PalindromeCommandAction is the action handler for the "palindrome"
// subcommand. The string is taken verbatim from the prompt, or from the
// arguments joined by single spaces.
func PalindromeCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &SolverActionRunner[palindromeInput, string]{
		CommandName: "palindrome",
		ReadFn: func(cmd *cli.Command, p *prompt.Prompter) (palindromeInput, error) {
			if arg, ok := positional(cmd); ok {
				return palindromeInput{Text: arg}, nil
			}
			line, err := p.Line("Enter a string:")
			return palindromeInput{Text: line}, err
		},
		SolveFn: func(in palindromeInput, opts *memo.Options) (Solved[string], error) {
			v, stats := palindrome.Solve(in.Text, opts)
			return Solved[string]{Value: v, Stats: stats}, nil
		},
		TextFn: func(w io.Writer, _ *cli.Command, _ palindromeInput, s Solved[string]) error {
			_, err := fmt.Fprintln(w, s.Value)
			return err
		},
	}
	return runner.Run(ctx, cmd)
}

// PalindromeCommandBuilder constructs the cli.Command definition for
// "palindrome".
func PalindromeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&SolverCommandBuilder{
		Name:      "palindrome",
		Usage:     "longest palindromic substring",
		UsageText: `dpctl palindrome [options] [text...]`,
		Action:    PalindromeCommandAction,
		Meta:      meta,
	}).Build()
}
