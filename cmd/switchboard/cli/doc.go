// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command tree behind the switchboard binary.
//
// A [Command] declares its flags as a params struct ([Command.Params],
// bound by [Bind]) and receives its output writers as [Streams], so a
// whole tree can run against buffers in tests. Commands that forward
// arguments to a command table set [Command.Passthrough]: flag parsing
// stops at the first positional argument or "--" and the rest reaches
// Run untouched, switches included.
//
// Unknown subcommands and flags are answered with the closest known
// name within three edits; [Closest] applies the same rule to table
// options. [ExitError] carries a table's failure exit status out to
// main.
package cli
