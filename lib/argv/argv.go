// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package argv splits a process argument vector into options and
// positional arguments for the dispatcher. It recognizes switches by
// shape alone: it has no knowledge of which options any command
// declares, so every dash-prefixed token becomes an option.
package argv

import (
	"strings"
	"unicode/utf8"

	"github.com/bureau-foundation/switchboard/lib/argument"
	"github.com/bureau-foundation/switchboard/lib/option"
)

// Split tokenizes args (without the program name):
//
//   - "--" ends option processing; every later token is positional.
//   - "-" alone is the positional string "-".
//   - "--name=value" is a long option with value (split at the first
//     "="), parsed with [argument.Parse]. "--x=value" is the long
//     option x, matching "--x".
//   - "-x=value" is the flag x with value; "-xyz=value" is the long
//     option xyz, since a value attaches to one switch only.
//   - a token whose name before "=" is empty, such as "-=5", is
//     positional.
//   - "--name" is a long option.
//   - "-xyz" is the three flags x, y, z.
//   - any other token is positional, parsed with [argument.Parse].
//
// Options are returned in the order typed, duplicates included.
func Split(args []string) ([]option.Option, []argument.Argument) {
	var options []option.Option
	var arguments []argument.Argument

	for i := 0; i < len(args); i++ {
		token := args[i]

		if token == "--" {
			arguments = append(arguments, argument.ParseAll(args[i+1:])...)
			break
		}

		if !strings.HasPrefix(token, "-") || token == "-" {
			arguments = append(arguments, argument.Parse(token))
			continue
		}

		split, ok := splitOption(token)
		if !ok {
			arguments = append(arguments, argument.Parse(token))
			continue
		}
		options = append(options, split...)
	}

	return options, arguments
}

// splitOption expands one dash-prefixed token into its options. It
// reports false when the token names no switch.
func splitOption(token string) ([]option.Option, bool) {
	long, isLong := strings.CutPrefix(token, "--")
	body := token[1:]
	if isLong {
		body = long
	}

	if name, value, hasValue := strings.Cut(body, "="); hasValue {
		if name == "" {
			return nil, false
		}
		key := option.Long(name)
		if !isLong {
			key = named(name)
		}
		return []option.Option{key.WithValue(argument.Parse(value))}, true
	}

	if isLong {
		return []option.Option{option.Long(long)}, true
	}

	options := make([]option.Option, 0, utf8.RuneCountInString(body))
	for _, flag := range body {
		options = append(options, option.Flag(flag))
	}
	return options, true
}

// named returns a flag option for a one-character name and a long
// option otherwise.
func named(name string) option.Option {
	if utf8.RuneCountInString(name) == 1 {
		flag, _ := utf8.DecodeRuneInString(name)
		return option.Flag(flag)
	}
	return option.Long(name)
}
