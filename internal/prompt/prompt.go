// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package prompt reads the line-oriented answers the solver commands ask
// for and parses them into ints.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apex/log"
)

// ErrNoInput is returned when input ends before an answer was read.
var ErrNoInput = errors.New("input: unexpected end of input")

// Prompter writes a prompt and reads one line of answer per question.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	quiet   bool
}

// New returns a Prompter reading from in. Prompts go to out unless quiet is
// set.
func New(in io.Reader, out io.Writer, quiet bool) *Prompter {
	if out == nil {
		out = io.Discard
	}
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		quiet:   quiet,
	}
}

// Line asks a question and returns the answer without its line ending.
func (p *Prompter) Line(question string) (string, error) {
	if !p.quiet {
		fmt.Fprint(p.out, question)
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("input: %w", err)
		}
		return "", ErrNoInput
	}
	line := strings.TrimRight(p.scanner.Text(), "\r")
	log.Debugf("prompt %q answered %q", question, line)
	return line, nil
}

// Int asks a question whose answer is a single integer.
func (p *Prompter) Int(question string) (int, error) {
	line, err := p.Line(question)
	if err != nil {
		return 0, err
	}
	return ParseInt(line)
}

// Ints asks a question whose answer is a whitespace-separated list of
// integers.
func (p *Prompter) Ints(question string) ([]int, error) {
	line, err := p.Line(question)
	if err != nil {
		return nil, err
	}
	return ParseInts(line)
}

// ParseInt parses a single integer, ignoring surrounding whitespace.
func ParseInt(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("input: invalid integer %q", trimmed)
	}
	return n, nil
}

// ParseInts parses a list of integers separated by whitespace or commas. An
// empty string gives an empty list.
func ParseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := ParseInt(f)
		if err != nil {
			return nil, err
		}
		values = append(values, n)
	}
	return values, nil
}
