// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/dpctl/internal/meta"
)

const bashCompletionScript = `# bash completion for dpctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_dpctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "fib knapsack ladder palindrome rob completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --no-color --no-prompt -q --output -o --stats --strategy -s"

    case "$cmd" in
        knapsack)
            local opts="$common --capacity --items --show-items --values --weights"
            ;;
        rob)
            local opts="$common --show-items"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--strategy" || "$prev" == "-s" ]]; then
        COMPREPLY=( $(compgen -W "memo table" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    fi
    return 0
}

complete -F _dpctl dpctl
`

const zshCompletionScript = `#compdef dpctl

_dpctl() {
  local -a cmds
  cmds=(
    'fib:nth Fibonacci number'
    'knapsack:0/1 knapsack maximum value'
    'ladder:ways to climb a staircase 1 or 2 steps at a time'
    'palindrome:longest palindromic substring'
    'rob:house robber maximum'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color --no-color)'{-c,--color}'[enable colored text]'
  '(-c --color --no-color)--no-color[disable colored text]'
  '(-q --no-prompt)'{-q,--no-prompt}'[do not print prompts]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '--stats[show memo table counters]'
  '(-s --strategy)'{-s,--strategy}'[evaluation strategy]:strategy:(memo table)'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'dpctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    fib)
      _arguments -C $common '::n:'
      ;;
    knapsack)
      _arguments -C \
        $common \
        '--capacity[maximum weight]:capacity' \
        '--items[number of items]:items' \
        '--show-items[print chosen items]' \
        '--values[item values]:values' \
        '--weights[item weights]:weights'
      ;;
    ladder)
      _arguments -C $common '::steps:'
      ;;
    palindrome)
      _arguments -C $common '*::text:'
      ;;
    rob)
      _arguments -C \
        $common \
        '--show-items[print robbed houses]' \
        '*::value:'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _dpctl dpctl
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}
	switch shell {
	case "bash":
		fmt.Fprint(Writer(cmd), bashCompletionScript)
	case "zsh":
		fmt.Fprint(Writer(cmd), zshCompletionScript)
	default:
		fmt.Fprintln(ErrWriter(cmd), "usage: dpctl completion [bash|zsh]")
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "dpctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
