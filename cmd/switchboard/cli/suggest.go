// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"unicode/utf8"

	"github.com/spf13/pflag"
)

// suggestionThreshold is the largest edit distance still suggested.
const suggestionThreshold = 3

// Closest returns the candidate nearest to unknown by edit distance,
// or "" if none is within three edits. Ties go to the earlier
// candidate. Table options may use any runes, so distance counts
// runes, not bytes.
func Closest(unknown string, candidates []string) string {
	best := ""
	bestDistance := suggestionThreshold + 1
	for _, candidate := range candidates {
		if distance := levenshtein(unknown, candidate); distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}
	return best
}

// Dashed renders a switch name the way it is typed: "-v" for a
// single rune, "--verbose" otherwise.
func Dashed(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

func suggestCommand(unknown string, commands []*Command) string {
	names := make([]string, len(commands))
	for i, command := range commands {
		names[i] = command.Name
	}
	return Closest(unknown, names)
}

// suggestFlag returns the defined flag closest to name, dashed, or "".
func suggestFlag(name string, flagSet *pflag.FlagSet) string {
	var defined []string
	flagSet.VisitAll(func(flag *pflag.Flag) {
		defined = append(defined, flag.Name)
	})
	if suggestion := Closest(name, defined); suggestion != "" {
		return Dashed(suggestion)
	}
	return ""
}

// levenshtein counts the single-rune insertions, deletions, and
// substitutions that turn a into b.
func levenshtein(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}

	row := make([]int, len(short)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(long); j++ {
		diagonal := row[0]
		row[0] = j
		for i := 1; i <= len(short); i++ {
			cost := 1
			if short[i-1] == long[j-1] {
				cost = 0
			}
			above := row[i]
			row[i] = min(row[i]+1, row[i-1]+1, diagonal+cost)
			diagonal = above
		}
	}
	return row[len(short)]
}
