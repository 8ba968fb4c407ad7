// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package table loads declarative command tables and turns them into
// dispatch consoles.
//
// A command table lists commands the way [dispatch.Definition] does,
// in text: option literals ("-v--verbose"), a match mode name, input
// patterns ("<int>", "deploy"), and an action. Tables are authored as
// YAML (.yaml, .yml) or JSONC (.json, .jsonc: JSON extended with
// comments and trailing commas) and may be compiled to a binary form
// (.swb) that skips text parsing on load.
//
// The typical flow:
//
//  1. [ReadFile] or [Parse]: file bytes -> [Table]
//  2. [Validate]: structural checks, every problem reported at once
//  3. [Build]: Table -> [Dispatcher] holding the built commands
//  4. [Dispatcher.Run]: dispatch an argument vector, printing and
//     chaining action output
//
// [Load] combines the first two steps; [Cache.Load] adds the compiled
// cache keyed by a BLAKE3 digest of the source file.
//
// Actions expand ${...} references against the invocation: ${1}..${N}
// for positional arguments, ${@} for all of them, ${#} for their
// count, ${program} for the table name, and ${name} for the value of
// the option with that long name or flag. ${name:-default} supplies a
// default for unset references.
package table
