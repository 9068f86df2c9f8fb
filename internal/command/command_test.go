// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/staranto/dpctl/internal/fib"
	"github.com/staranto/dpctl/internal/knapsack"
	"github.com/staranto/dpctl/internal/ladder"
	"github.com/staranto/dpctl/internal/robber"
)

// isolate keeps the host's config file and DPCTL_* variables out of a test.
// cfg, when not empty, is used as DPCTL_CFG.
func isolate(t *testing.T, cfg string) {
	t.Helper()
	for _, k := range []string{"DPCTL_OUTPUT", "DPCTL_STRATEGY", "DPCTL_NO_PROMPT", "SHELL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("APPDATA", dir)
	t.Setenv("DPCTL_CFG", cfg)
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	full := append([]string{"dpctl"}, args...)
	app, err := InitApp(context.Background(), full)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut

	err = app.Run(context.Background(), full)
	return out.String(), errOut.String(), err
}

func TestFibCommand(t *testing.T) {
	isolate(t, "")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "positional",
			args: []string{"fib", "10"},
			want: "The 10th Fibonacci number is: 55\n",
		},
		{
			name:  "prompted",
			stdin: "10\n",
			args:  []string{"fib"},
			want:  "Enter a number: The 10th Fibonacci number is: 55\n",
		},
		{
			name:  "quiet prompt",
			stdin: "7\n",
			args:  []string{"fib", "-q"},
			want:  "The 7th Fibonacci number is: 13\n",
		},
		{
			name: "zero",
			args: []string{"fib", "0"},
			want: "The 0th Fibonacci number is: 0\n",
		},
		{
			name: "table strategy",
			args: []string{"fib", "--strategy", "table", "30"},
			want: "The 30th Fibonacci number is: 832040\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFibCommand_Errors(t *testing.T) {
	isolate(t, "")

	_, _, err := run(t, "abc\n", "fib")
	assert.ErrorContains(t, err, `invalid integer "abc"`)

	_, _, err = run(t, "", "fib", "-1")
	assert.ErrorIs(t, err, fib.ErrNegativeIndex)

	_, _, err = run(t, "", "fib")
	assert.Error(t, err)
}

func TestFibCommand_JSON(t *testing.T) {
	isolate(t, "")

	out, errOut, err := run(t, "10\n", "fib", "-o", "json", "--stats")
	require.NoError(t, err)

	// The prompt moves to stderr so stdout stays a single document.
	assert.Equal(t, "Enter a number: ", errOut)
	assert.True(t, gjson.Valid(out))
	assert.Equal(t, "fib", gjson.Get(out, "solver").String())
	assert.Equal(t, "memo", gjson.Get(out, "strategy").String())
	assert.Equal(t, int64(10), gjson.Get(out, "input.n").Int())
	assert.Equal(t, int64(55), gjson.Get(out, "value").Int())
	assert.Equal(t, int64(9), gjson.Get(out, "stats.entries").Int())
	assert.Equal(t, gjson.Get(out, "stats.entries").Int(), gjson.Get(out, "stats.misses").Int())
}

func TestFibCommand_YAMLFromEnv(t *testing.T) {
	isolate(t, "")
	t.Setenv("DPCTL_OUTPUT", "yaml")

	out, _, err := run(t, "", "fib", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "solver: fib\n")
	assert.Contains(t, out, "value: 55\n")
	assert.NotContains(t, out, "stats:")
}

func TestFibCommand_Stats(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "", "fib", "--stats", "10")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "The 10th Fibonacci number is: 55\n"))
	assert.Contains(t, out, "entries")
	assert.Contains(t, out, "hits")
	assert.Contains(t, out, "misses")
}

func TestKnapsackCommand(t *testing.T) {
	isolate(t, "")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "prompted",
			stdin: "4\n1 3 4 5\n1 4 5 7\n7\n",
			args:  []string{"knapsack"},
			want:  "Enter number of items:Enter Weights:Enter Values:Enter Maximum Weight:Maximum value in Knapsack = 9\n",
		},
		{
			name: "flags",
			args: []string{"knapsack", "--weights", "1,3,4,5", "--values", "1,4,5,7", "--capacity", "7"},
			want: "Maximum value in Knapsack = 9\n",
		},
		{
			name: "flags with selection",
			args: []string{"knapsack", "--weights", "1 3 4 5", "--values", "1 4 5 7", "--capacity", "7", "--show-items"},
			want: "Maximum value in Knapsack = 9\nItems taken: 1 2\n",
		},
		{
			name:  "capacity prompted",
			stdin: "7\n",
			args:  []string{"knapsack", "--weights", "1,3,4,5", "--values", "1,4,5,7"},
			want:  "Enter Maximum Weight:Maximum value in Knapsack = 9\n",
		},
		{
			name:  "nothing fits",
			stdin: "2\n5 6\n10 20\n4\n",
			args:  []string{"knapsack", "--no-prompt"},
			want:  "Maximum value in Knapsack = 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestKnapsackCommand_Mismatch(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "3\n1 2\n1 2\n5\n", "knapsack", "-q")
	require.ErrorIs(t, err, knapsack.ErrItemCountMismatch)
	assert.Equal(t, "Error: Number of weights and values must match the number of items.", err.Error())
	assert.NotContains(t, out, "Maximum value")

	_, _, err = run(t, "", "knapsack", "--items", "3", "--weights", "1,2,3", "--values", "1,2", "--capacity", "4")
	assert.ErrorIs(t, err, knapsack.ErrItemCountMismatch)
}

func TestKnapsackCommand_BadFlag(t *testing.T) {
	isolate(t, "")

	_, _, err := run(t, "", "knapsack", "--weights", "1,x", "--values", "1,2", "--capacity", "4")
	assert.ErrorContains(t, err, "--weights")
}

func TestLadderCommand(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "", "ladder", "5")
	require.NoError(t, err)
	assert.Equal(t, "\nNumber of distinct ways to climb 5 steps: 8\n\n"+ladder.Explanation+"\n", out)

	out, _, err = run(t, "2\n", "ladder")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\nEnter the number of steps: \nNumber of distinct ways to climb 2 steps: 2\n"))

	_, _, err = run(t, "", "ladder", "-3")
	assert.ErrorIs(t, err, ladder.ErrNegativeSteps)
}

func TestPalindromeCommand(t *testing.T) {
	isolate(t, "")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "positional", args: []string{"palindrome", "babad"}, want: "bab\n"},
		{name: "prompted", stdin: "cbbd\n", args: []string{"palindrome"}, want: "Enter a string:bb\n"},
		{name: "empty", stdin: "\n", args: []string{"palindrome", "-q"}, want: "\n"},
		{name: "args joined", args: []string{"palindrome", "never", "odd", "or", "even"}, want: "eve\n"},
		{name: "spaces kept", stdin: "  a  \n", args: []string{"palindrome", "-q"}, want: "  a  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRobCommand(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "", "rob", "2", "7", "9", "3", "1")
	require.NoError(t, err)
	assert.Equal(t, "The maximum value that can be robbed is: 12\n", out)

	out, _, err = run(t, "2 7 9 3 1\n", "rob", "--show-items")
	require.NoError(t, err)
	assert.Equal(t, "Enter the values of the houses separated by space: "+
		"The maximum value that can be robbed is: 12\nHouses robbed: 0 2 4\n", out)

	out, _, err = run(t, "", "rob", "-o", "json", "2", "7", "9", "3", "1")
	require.NoError(t, err)
	assert.Equal(t, "[0,2,4]", gjson.Get(out, "selection").Raw)
	assert.Equal(t, "[2,7,9,3,1]", gjson.Get(out, "input.houses").Raw)
}

func TestRobCommand_Errors(t *testing.T) {
	isolate(t, "")

	_, _, err := run(t, "\n", "rob", "-q")
	assert.ErrorIs(t, err, robber.ErrNoHouses)

	_, _, err = run(t, "1 two 3\n", "rob", "-q")
	assert.ErrorContains(t, err, `invalid integer "two"`)
}

func TestStrategiesAgree(t *testing.T) {
	isolate(t, "")

	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "fib", args: []string{"fib", "40"}},
		{name: "knapsack", args: []string{"knapsack", "--weights", "1 3 4 5", "--values", "1 4 5 7", "--capacity", "7"}},
		{name: "ladder", args: []string{"ladder", "25"}},
		{name: "palindrome", args: []string{"palindrome", "forgeeksskeegfor"}},
		{name: "rob", args: []string{"rob", "5", "1", "1", "5", "9", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var values []string
			for _, s := range []string{"memo", "table"} {
				args := append([]string{tt.args[0], "-o", "json", "-s", s}, tt.args[1:]...)
				out, _, err := run(t, tt.stdin, args...)
				require.NoError(t, err)
				assert.Equal(t, s, gjson.Get(out, "strategy").String())
				values = append(values, gjson.Get(out, "value").Raw)
			}
			assert.Equal(t, values[0], values[1])
		})
	}
}

func TestGlobalFlags_Invalid(t *testing.T) {
	isolate(t, "")

	_, _, err := run(t, "", "fib", "-o", "xml", "10")
	assert.Error(t, err)

	_, _, err = run(t, "", "fib", "-s", "greedy", "10")
	assert.Error(t, err)

	t.Setenv("DPCTL_STRATEGY", "greedy")
	_, _, err = run(t, "", "fib", "10")
	assert.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := filepath.Abs(filepath.Join("testdata", "dpctl.yaml"))
	require.NoError(t, err)
	isolate(t, cfg)

	out, _, err := run(t, "", "fib", "10")
	require.NoError(t, err)
	assert.Equal(t, int64(55), gjson.Get(out, "value").Int())

	// Command line beats config.
	out, _, err = run(t, "", "fib", "-o", "text", "10")
	require.NoError(t, err)
	assert.Equal(t, "The 10th Fibonacci number is: 55\n", out)

	out, _, err = run(t, "", "knapsack", "--weights", "1 3 4 5", "--values", "1 4 5 7", "--capacity", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Items taken: 1 2\n")

	out, _, err = run(t, "", "rob", "2", "7", "9", "3", "1")
	require.NoError(t, err)
	assert.Equal(t, "table", gjson.Get(out, "strategy").String())

	// Config keys for one command do not leak into another.
	out, _, err = run(t, "", "ladder", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Number of distinct ways to climb 5 steps: 8")
}

func TestCompletionCommand(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -F _dpctl dpctl")

	out, _, err = run(t, "", "completion", "zsh")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#compdef dpctl"))

	t.Setenv("SHELL", "/bin/zsh")
	out, _, err = run(t, "", "completion")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#compdef dpctl"))

	out, errOut, err := run(t, "", "completion", "fish")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "usage: dpctl completion [bash|zsh]\n", errOut)
}

func TestInitApp(t *testing.T) {
	isolate(t, "")

	app, err := InitApp(context.Background(), []string{"dpctl", "rob"})
	require.NoError(t, err)

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"fib", "knapsack", "ladder", "palindrome", "rob", "completion"}, names)

	rob := app.Command("rob")
	require.NotNil(t, rob)
	assert.Equal(t, []string{"dpctl", "rob"}, GetMeta(rob).Args)
	for i := 1; i < len(rob.Flags); i++ {
		assert.Less(t, rob.Flags[i-1].Names()[0], rob.Flags[i].Names()[0])
	}
}

func TestGetMeta_Missing(t *testing.T) {
	assert.Empty(t, GetMeta(nil).Args)
	assert.Empty(t, GetMeta(&cli.Command{}).Args)
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "", joinInts(nil))
	assert.Equal(t, "0 2 4", joinInts([]int{0, 2, 4}))
}
