// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// dpctl is the main package for the dpctl command line tool. It wires the
// CLI, delegates to the solver packages under internal, and serves as the
// entry point.
package main
