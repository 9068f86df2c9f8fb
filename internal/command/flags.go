// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGlobalFlags returns the flags every solver command carries. params[0]
// is the command name used to namespace config keys, params[1] the config
// file.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	ns, path := params[0], ""
	if len(params) > 1 {
		path = params[1]
	}

	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output (default: on for terminals)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(path)),
				yaml.YAML("color", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
		&cli.BoolFlag{
			Name:    "no-prompt",
			Aliases: []string{"q"},
			Usage:   "do not print prompts while reading input",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("DPCTL_NO_PROMPT"),
			),
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("DPCTL_OUTPUT"),
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(path)),
				yaml.YAML("output", altsrc.StringSourcer(path)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "show memo table counters",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"stats", altsrc.StringSourcer(path)),
				yaml.YAML("stats", altsrc.StringSourcer(path)),
			),
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "strategy",
			Aliases: []string{"s"},
			Usage:   "evaluation strategy (memo, table)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("DPCTL_STRATEGY"),
				yaml.YAML(ns+"."+"strategy", altsrc.StringSourcer(path)),
				yaml.YAML("strategy", altsrc.StringSourcer(path)),
			),
			Value: "memo",
			Validator: func(value string) error {
				return FlagValidators(value, StrategyValidator)
			},
		},
	}

	return
}

// NewShowItemsFlag constructs the --show-items flag for solvers that can
// report which elements make up the optimum.
func NewShowItemsFlag(ns string, path string) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "show-items",
		Usage: "also print the chosen indices",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"show-items", altsrc.StringSourcer(path)),
		),
		HideDefault: true,
	}
}
