// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/dpctl/internal/command"
	"github.com/staranto/dpctl/internal/config"
	mylog "github.com/staranto/dpctl/internal/log"
	"github.com/staranto/dpctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	mylog.InitLogger()

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	}

	// Short-circuit --version/-v. Only the flags ahead of the subcommand
	// count, so "dpctl palindrome -v" still reaches the solver.
	for _, a := range args[1:] {
		if !strings.HasPrefix(a, "-") {
			break
		}
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	args = expandArgSets(args)

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// expandArgSets splices a named argument set from config into args, right
// after the subcommand. "@name" anywhere on the line selects <cmd>.name and
// is removed; without one, <cmd>.defaults is used if it exists. Each entry in
// a set is split on whitespace.
func expandArgSets(args []string) []string {
	if len(args) < 2 || strings.HasPrefix(args[1], "-") {
		return args
	}

	// We know the first two args are going to be the executable and command.
	out := make([]string, 2, len(args)+4)
	copy(out, args[:2])

	// Short-circuit for --help/-h.
	for _, a := range args[2:] {
		if a == "--help" || a == "-h" {
			return append(out, "--help")
		}
	}

	set := "defaults"
	rest := make([]string, 0, len(args)-2)
	for _, a := range args[2:] {
		if len(a) > 1 && strings.HasPrefix(a, "@") {
			set = a[1:]
			continue
		}
		rest = append(rest, a)
	}

	setArgs, _ := config.GetStringSlice(args[1] + "." + set)
	for _, arg := range setArgs {
		out = append(out, strings.Fields(arg)...)
	}
	out = append(out, rest...)

	log.Debugf("set=%s, args=%v", set, out)
	return out
}
