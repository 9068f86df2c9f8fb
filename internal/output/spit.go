// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/staranto/dpctl/internal/config"
	"github.com/staranto/dpctl/internal/memo"
)

// Formats are the accepted --output values.
var Formats = []string{"text", "json", "yaml"}

// Result is the structured form of one solver run.
type Result struct {
	Solver    string      `json:"solver" yaml:"solver"`
	Strategy  string      `json:"strategy" yaml:"strategy"`
	Input     any         `json:"input" yaml:"input"`
	Value     any         `json:"value" yaml:"value"`
	Selection []int       `json:"selection,omitempty" yaml:"selection,omitempty"`
	Stats     *memo.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Options controls how Spit renders a Result.
type Options struct {
	Format string
	Color  bool
	Stats  bool
}

// TextFunc writes the human readable form of a result.
type TextFunc func(w io.Writer) error

// Spit writes r to w in the requested format. For text output the caller's
// TextFunc produces the body and the stats table follows it when requested.
func Spit(w io.Writer, r Result, opts Options, text TextFunc) error {
	if w == nil {
		w = os.Stdout
	}
	if !opts.Stats {
		r.Stats = nil
	}

	switch opts.Format {
	case "json":
		jsonOutput, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	default:
		if err := text(w); err != nil {
			return err
		}
		if r.Stats != nil {
			StatsTable(w, *r.Stats, opts.Color)
		}
		return nil
	}
}

// StatsTable renders the memo table counters.
func StatsTable(w io.Writer, s memo.Stats, color bool) {
	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle   = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Right)
	)

	if color {
		headerColor, valueColor := getColors("colors")
		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		cellStyle = cellStyle.Foreground(lipgloss.Color(valueColor))
	}

	pad, _ := config.GetInt("padding", 2)
	log.Debugf("padding: %v", pad)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col > 0 {
				style = style.PaddingLeft(pad)
			}
			return style
		}).
		Headers("entries", "hits", "misses").
		BorderHeader(false).
		Rows([]string{
			humanize.Comma(int64(s.Entries)),
			humanize.Comma(int64(s.Hits)),
			humanize.Comma(int64(s.Misses)),
		})

	fmt.Fprintln(w, t)
}

// IsTerminal reports whether w is a terminal, which is when --color turns
// itself on unless it was set explicitly.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, value string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	value, _ = config.GetString(fmt.Sprintf("%s.value", key), "#00c8f0")
	return
}
