// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/staranto/dpctl/internal/memo"
	"github.com/staranto/dpctl/internal/output"
)

// GlobalFlagsValidator re-checks the values that may have come from config
// or the environment, where flag Validators are not always applied.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if err := FlagValidators(c.String("output"), OutputValidator); err != nil {
		return fmt.Errorf("invalid --output: %w", err)
	}
	if err := FlagValidators(c.String("strategy"), StrategyValidator); err != nil {
		return fmt.Errorf("invalid --strategy: %w", err)
	}
	return nil
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func StrategyValidator(value any) error {
	s, _ := value.(string)
	if _, err := memo.ParseStrategy(s); err != nil {
		return fmt.Errorf("must be one of %v", memo.Strategies)
	}
	return nil
}

