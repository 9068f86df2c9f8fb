// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// docgen renders docs/commands/<cmd>.md into
//   - docs/man/share/man1/dpctl-<cmd>.1 via md2man
//   - docs/tldr/dpctl-<cmd>.md from the short description and quick examples

const project = "https://github.com/staranto/dpctl"

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	n, err := generate(repoRoot, writeOnlyIfChanged)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("rendered %d command pages\n", n)
}

// generate renders every command page under root and returns how many were
// processed.
func generate(root string, onlyIfChanged bool) (int, error) {
	commandsDir := filepath.Join(root, "docs", "commands")
	manOutDir := filepath.Join(root, "docs", "man", "share", "man1")
	tldrOutDir := filepath.Join(root, "docs", "tldr")

	for _, dir := range []string{manOutDir, tldrOutDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating output dir: %w", err)
		}
	}

	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		return 0, fmt.Errorf("reading commands dir %s: %w", commandsDir, err)
	}

	var processed int
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		cmd := strings.TrimSuffix(e.Name(), ".md")
		raw, err := os.ReadFile(filepath.Join(commandsDir, e.Name()))
		if err != nil {
			return processed, err
		}

		manPath := filepath.Join(manOutDir, "dpctl-"+cmd+".1")
		if err := writeFileIfChanged(manPath, md2man.Render(raw), onlyIfChanged); err != nil {
			return processed, fmt.Errorf("writing man page for %s: %w", cmd, err)
		}

		tldrPath := filepath.Join(tldrOutDir, "dpctl-"+cmd+".md")
		if err := writeFileIfChanged(tldrPath, []byte(tldrPage(cmd, string(raw))), onlyIfChanged); err != nil {
			return processed, fmt.Errorf("writing tldr page for %s: %w", cmd, err)
		}

		processed++
	}

	if processed == 0 {
		return 0, fmt.Errorf("no command markdown found under %s", commandsDir)
	}
	return processed, nil
}

func writeFileIfChanged(path string, content []byte, onlyIfChanged bool) error {
	if onlyIfChanged {
		old, err := os.ReadFile(path)
		switch {
		case err == nil && bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(content)):
			return nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}
	return os.WriteFile(path, content, 0o644)
}

var h1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// section returns the text that follows the header line containing name.
func section(md, name string) (string, bool) {
	idx := strings.Index(strings.ToLower(md), strings.ToLower(name))
	if idx < 0 {
		return "", false
	}
	rest := md[idx:]
	nl := strings.Index(rest, "\n")
	if nl < 0 {
		return "", true
	}
	return rest[nl+1:], true
}

func shortDescription(md string) string {
	var title string
	if m := h1Re.FindStringSubmatch(md); m != nil {
		title = strings.TrimSpace(m[1])
	}

	body, ok := section(md, "short description")
	if !ok {
		return title
	}

	// First paragraph only.
	var words []string
	for _, ln := range strings.Split(body, "\n") {
		ln = strings.TrimSpace(ln)
		if strings.HasPrefix(ln, "#") {
			break
		}
		if ln == "" {
			if len(words) > 0 {
				break
			}
			continue
		}
		words = append(words, ln)
	}
	if len(words) == 0 {
		return title
	}
	return strings.Join(words, " ")
}

type example struct {
	Desc string
	Cmd  string
}

// quickExamples reads the first fenced block of the quick examples section.
// A "# ..." line describes the command line that follows it.
func quickExamples(md string) []example {
	body, ok := section(md, "quick examples")
	if !ok {
		return nil
	}
	const fence = "```"
	start := strings.Index(body, fence)
	if start < 0 {
		return nil
	}
	body = body[start+len(fence):]
	end := strings.Index(body, fence)
	if end < 0 {
		return nil
	}

	var (
		exs  []example
		desc string
	)
	// The first line is the fence's info string.
	lines := strings.Split(body[:end], "\n")[1:]
	for _, ln := range lines {
		s := strings.TrimSpace(ln)
		switch {
		case s == "":
		case strings.HasPrefix(s, "#"):
			desc = strings.TrimSpace(strings.TrimPrefix(s, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, example{Desc: desc, Cmd: strings.Join(strings.Fields(s), " ")})
			desc = ""
		}
	}
	return exs
}

func tldrPage(cmd, md string) string {
	var b strings.Builder
	b.WriteString("# dpctl-" + cmd + "\n\n")
	if short := shortDescription(md); short != "" {
		b.WriteString("> " + short + "\n")
	} else {
		b.WriteString("> dpctl " + cmd + "\n")
	}
	b.WriteString("> More information: " + project + ".\n\n")

	exs := quickExamples(md)
	if len(exs) == 0 {
		exs = []example{{Desc: "Show help for the command", Cmd: "dpctl " + cmd + " --help"}}
	}
	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + ex.Desc + ":\n\n")
		b.WriteString("`" + ex.Cmd + "`\n")
	}
	return b.String()
}
