// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package option models command-line switches: a short flag rune, a
// long name, or both, optionally carrying a value attached with "=".
//
// Identity is deliberately weak. Two options are [Option.Equal] when
// their flags match or their long names match, considering only the
// attributes both sides have, so "-v" equals "--verbose" declared as
// "-v--verbose". Attached values never take part in identity. Because
// the relation is not transitive, option collections are plain slices
// searched with [Contains] rather than map keys.
//
// Three reserved options exist. [Any] and [Subset] mark a command's
// option list with a match mode; they carry a private marker so they
// are equal only to themselves and never to a user option. [Help] is
// an ordinary option for "-h"/"--help" with no special behavior.
//
// [Values] is the option-to-value map handed to command handlers.
package option
