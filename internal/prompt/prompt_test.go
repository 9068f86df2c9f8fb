// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Line(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("first\r\n  second  \n"), &out, false)

	line, err := p.Line("A: ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = p.Line("B: ")
	require.NoError(t, err)
	assert.Equal(t, "  second  ", line)

	assert.Equal(t, "A: B: ", out.String())

	_, err = p.Line("C: ")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestPrompter_Quiet(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("7\n"), &out, true)

	n, err := p.Int("Enter a number: ")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Empty(t, out.String())
}

func TestPrompter_Ints(t *testing.T) {
	p := New(strings.NewReader("1 3  4\t5\n"), nil, false)
	got, err := p.Ints("Enter Weights:")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 5}, got)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain", input: "42", want: 42},
		{name: "padded", input: "  42 ", want: 42},
		{name: "negative", input: "-3", want: -3},
		{name: "plus sign", input: "+8", want: 8},
		{name: "empty", input: "", wantErr: true},
		{name: "text", input: "ten", wantErr: true},
		{name: "float", input: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid integer")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "spaces", input: "2 7 9 3 1", want: []int{2, 7, 9, 3, 1}},
		{name: "commas", input: "2,7,9", want: []int{2, 7, 9}},
		{name: "mixed", input: " 2, 7\t9 ", want: []int{2, 7, 9}},
		{name: "empty", input: "", want: []int{}},
		{name: "blank", input: "   ", want: []int{}},
		{name: "bad entry", input: "1 two 3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInts(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
