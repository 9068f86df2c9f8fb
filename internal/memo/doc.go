// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package memo provides the lookup table shared by the dpctl solvers. A Table
// is created by one top-level solver call, filled lazily as the recurrence is
// evaluated, and discarded when the call returns.
package memo
