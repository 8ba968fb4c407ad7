// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package argument models positional command-line values and the
// patterns a command declares for them.
//
// An [Argument] is a concrete value of one primitive [Kind]: int,
// float, or string. [Parse] builds one from raw text by trying a
// base-10 integer, then a float, then falling back to a string. An
// Argument may also be absent ([Absent]): the slot exists but the
// value is unknown. Absent payloads act as wildcards under [Argument.Equal].
//
// A [Pattern] is what a command accepts at one position: either any
// value of a kind ([AnyInt], [AnyFloat], [AnyString]) or one exact
// literal ([ExactInt], [ExactFloat], [ExactString]).
// [Argument.Represents] is the matching predicate between the two.
//
// This package depends on no other switchboard packages.
package argument
