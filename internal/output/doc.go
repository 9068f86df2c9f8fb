// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders solver results as text, JSON or YAML, and the
// memo table counters as a table.
package output
