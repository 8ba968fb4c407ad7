// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dispatch matches an invocation's options and positional
// arguments against registered command patterns and runs the handlers
// of the commands that match.
//
// A [Command] declares required options, a [MatchMode] relating them
// to the user's options, positional [argument.Pattern]s, and a
// [Handler]. A [Console] holds commands in registration order and
// dispatches one invocation per [Console.Run]:
//
//   - Phase A (only with [RunOptions.FollowUserOrder]) walks the
//     user's options in the order typed and fires Any and Subset
//     commands declaring each option. A Subset command claims all of
//     its options when it fires so a later option cannot fire it again.
//   - Phase B walks commands in registration order. The first command
//     whose options and arguments are valid fires; with
//     [RunOptions.CompleteAll] every valid command fires.
//
// A handler may return a replacement argument list, which later
// commands in the same run are matched against (chaining). After both
// phases the console calls Failure when nothing fired and Completion
// otherwise. Dispatch is synchronous and the console is read-only
// after registration, so Run is safe to call repeatedly.
package dispatch
