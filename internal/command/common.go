// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/dpctl/internal/memo"
	"github.com/staranto/dpctl/internal/meta"
	"github.com/staranto/dpctl/internal/output"
	"github.com/staranto/dpctl/internal/prompt"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// SolverCommandBuilder constructs a cli.Command for solver subcommands using
// a consistent pattern. The builder wires metadata, applies global flags, and
// sets up validators.
type SolverCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (scb *SolverCommandBuilder) Build() *cli.Command {
	flags := append([]cli.Flag{}, scb.Flags...)
	flags = append(flags, NewGlobalFlags(scb.Name, scb.Meta.Config.Source)...)

	return &cli.Command{
		Name:      scb.Name,
		Usage:     scb.Usage,
		UsageText: scb.UsageText,
		Metadata: map[string]any{
			"meta": scb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: scb.Action,
	}
}

// Solved is what a solver hands back to the runner.
type Solved[O any] struct {
	Value     O
	Selection []int
	Stats     memo.Stats
}

// SolverActionRunner[I, O] encapsulates the common action pattern for all
// solver subcommands: read the input of type I from args or prompts, solve it
// with a fresh table, and emit the result of type O.
type SolverActionRunner[I, O any] struct {
	CommandName string
	ReadFn      func(*cli.Command, *prompt.Prompter) (I, error)
	SolveFn     func(I, *memo.Options) (Solved[O], error)
	TextFn      func(io.Writer, *cli.Command, I, Solved[O]) error
}

// Run executes the solver action with the provided context and command.
func (sar *SolverActionRunner[I, O]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	// Step 1: GetMeta + debug.
	m := GetMeta(cmd)
	if len(m.Args) > 1 {
		log.Debugf("Executing action for %v", m.Args[1:])
	}

	// Step 2: Resolve the output options and strategy.
	opts := OutputOptions(cmd)
	strategy, err := memo.ParseStrategy(cmd.String("strategy"))
	if err != nil {
		return err
	}
	log.Debugf("strategy: %s, output: %s", strategy, opts.Format)

	// Step 3: Read the input. Prompts go to stderr when stdout carries a
	// structured document.
	promptOut := Writer(cmd)
	if opts.Format != "text" {
		promptOut = ErrWriter(cmd)
	}
	p := prompt.New(Reader(cmd), promptOut, cmd.Bool("no-prompt"))
	in, err := sar.ReadFn(cmd, p)
	if err != nil {
		return err
	}

	// Step 4: Solve.
	solved, err := sar.SolveFn(in, &memo.Options{Strategy: strategy})
	if err != nil {
		return err
	}

	// Step 5: Emit + return.
	result := output.Result{
		Solver:    sar.CommandName,
		Strategy:  strategy.String(),
		Input:     in,
		Value:     solved.Value,
		Selection: solved.Selection,
		Stats:     &solved.Stats,
	}
	return output.Spit(Writer(cmd), result, opts, func(w io.Writer) error {
		return sar.TextFn(w, cmd, in, solved)
	})
}

// OutputOptions collects the rendering flags. --color follows the terminal
// unless it was set on the command line, in the environment or in config.
func OutputOptions(cmd *cli.Command) output.Options {
	color := cmd.Bool("color")
	if !cmd.IsSet("color") {
		color = output.IsTerminal(Writer(cmd))
	}
	return output.Options{
		Format: cmd.String("output"),
		Color:  color,
		Stats:  cmd.Bool("stats"),
	}
}

// Reader returns the input stream of the root command.
func Reader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

// Writer returns the output stream of the root command.
func Writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// ErrWriter returns the error stream of the root command.
func ErrWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// joinInts renders indices as a space separated list.
func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, " ")
}

// positional returns the positional args joined by a space and whether there
// were any.
func positional(cmd *cli.Command) (string, bool) {
	if !cmd.Args().Present() {
		return "", false
	}
	return strings.Join(cmd.Args().Slice(), " "), true
}

