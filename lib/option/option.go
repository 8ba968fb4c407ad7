// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bureau-foundation/switchboard/lib/argument"
)

// sentinel distinguishes the reserved mode markers from user options.
type sentinel uint8

const (
	sentinelNone sentinel = iota
	sentinelAny
	sentinelSubset
)

// Option is a command-line switch identity plus an optional attached
// value. A zero Flag means no short flag; an empty Long means no long
// name; a zero Value (Kind() == 0) means nothing was attached.
type Option struct {
	Flag  rune
	Long  string
	Value argument.Argument

	sentinel sentinel
}

var (
	// Any marks a command whose options match when the user supplies
	// at least one of them.
	Any = Option{Flag: '*', Long: "{matchAny}", sentinel: sentinelAny}

	// Subset marks a command whose options match when the user
	// supplies all of them, possibly alongside others.
	Subset = Option{Flag: '⊂', Long: "{matchAll}", sentinel: sentinelSubset}

	// Help is the conventional help switch. The dispatcher treats it
	// like any other option.
	Help = Option{Flag: 'h', Long: "help"}
)

// Flag returns an option with only a short flag.
func Flag(flag rune) Option {
	return Option{Flag: flag}
}

// Long returns an option with only a long name.
func Long(name string) Option {
	return Option{Long: name}
}

// New returns an option with both a short flag and a long name.
func New(flag rune, long string) Option {
	return Option{Flag: flag, Long: long}
}

// WithValue returns a copy of o carrying value.
func (o Option) WithValue(value argument.Argument) Option {
	o.Value = value
	return o
}

// HasValue reports whether a value was attached to the option.
func (o Option) HasValue() bool {
	return o.Value.Kind() != 0
}

// Identity returns o without its attached value.
func (o Option) Identity() Option {
	o.Value = argument.Argument{}
	return o
}

// IsAny reports whether o is the [Any] mode marker.
func (o Option) IsAny() bool { return o.sentinel == sentinelAny }

// IsSubset reports whether o is the [Subset] mode marker.
func (o Option) IsSubset() bool { return o.sentinel == sentinelSubset }

// IsSentinel reports whether o is one of the mode markers.
func (o Option) IsSentinel() bool { return o.sentinel != sentinelNone }

// Equal reports whether o and other name the same switch: their
// flags match when both have one, or their long names match when both
// have one. Mode markers are equal only to the same marker.
func (o Option) Equal(other Option) bool {
	if o.sentinel != sentinelNone || other.sentinel != sentinelNone {
		return o.sentinel == other.sentinel
	}
	if o.Flag != 0 && other.Flag != 0 && o.Flag == other.Flag {
		return true
	}
	return o.Long != "" && other.Long != "" && o.Long == other.Long
}

// Name returns the long name if present, else the flag as a string.
func (o Option) Name() string {
	if o.Long != "" {
		return o.Long
	}
	if o.Flag != 0 {
		return string(o.Flag)
	}
	return ""
}

// String renders the option as a user would type it: "-v",
// "--verbose", "-v/--verbose", with "=value" appended when a value is
// attached. Mode markers render as "<any>" and "<subset>".
func (o Option) String() string {
	switch o.sentinel {
	case sentinelAny:
		return "<any>"
	case sentinelSubset:
		return "<subset>"
	}

	var builder strings.Builder
	if o.Flag != 0 {
		builder.WriteByte('-')
		builder.WriteRune(o.Flag)
	}
	if o.Long != "" {
		if builder.Len() > 0 {
			builder.WriteByte('/')
		}
		builder.WriteString("--")
		builder.WriteString(o.Long)
	}
	if o.HasValue() {
		builder.WriteByte('=')
		builder.WriteString(o.Value.Text())
	}
	return builder.String()
}

// Literal renders the option in the declaration syntax accepted by
// [Parse], e.g. "-v--verbose". Attached values are not part of the
// literal.
func (o Option) Literal() string {
	switch o.sentinel {
	case sentinelAny:
		return "<any>"
	case sentinelSubset:
		return "<subset>"
	}
	literal := ""
	if o.Flag != 0 {
		literal = "-" + string(o.Flag)
	}
	if o.Long != "" {
		literal += "--" + o.Long
	}
	return literal
}

// Parse reads the declaration syntax for an option: "-v" (flag),
// "--verbose" or "-verbose" (long name), and "-v--verbose" (both).
// The leading dash may be omitted ("v", "verbose", "v--verbose").
// Long names may themselves contain single dashes ("--dry-run").
// "<any>" and "<subset>" return the mode markers.
func Parse(text string) (Option, error) {
	switch text {
	case "<any>":
		return Any, nil
	case "<subset>":
		return Subset, nil
	case "":
		return Option{}, fmt.Errorf("empty option literal")
	}
	if strings.ContainsAny(text, "= \t") {
		return Option{}, fmt.Errorf("option literal %q: must not contain '=' or whitespace", text)
	}

	var result Option
	body := text
	if long, ok := strings.CutPrefix(body, "--"); ok {
		result.Long = long
	} else {
		body = strings.TrimPrefix(body, "-")
		head, long, hasLong := strings.Cut(body, "--")
		switch {
		case hasLong:
			if utf8.RuneCountInString(head) != 1 {
				return Option{}, fmt.Errorf("option literal %q: short flag must be one character", text)
			}
			result.Flag, _ = utf8.DecodeRuneInString(head)
			result.Long = long
		case utf8.RuneCountInString(body) == 1:
			result.Flag, _ = utf8.DecodeRuneInString(body)
		default:
			result.Long = body
		}
	}

	if result.Long != "" && (strings.HasPrefix(result.Long, "-") || strings.HasSuffix(result.Long, "-")) {
		return Option{}, fmt.Errorf("option literal %q: malformed long name %q", text, result.Long)
	}
	if result.Flag == '-' || (result.Flag == 0 && result.Long == "") {
		return Option{}, fmt.Errorf("option literal %q: no flag or long name", text)
	}
	return result, nil
}

// MustParse is [Parse] for registration sites with constant literals.
// It panics on malformed input.
func MustParse(text string) Option {
	result, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return result
}

// ParseAll parses each literal, stopping at the first error.
func ParseAll(texts []string) ([]Option, error) {
	options := make([]Option, 0, len(texts))
	for _, text := range texts {
		parsed, err := Parse(text)
		if err != nil {
			return nil, err
		}
		options = append(options, parsed)
	}
	return options, nil
}

// Index returns the position of the first element of options equal to
// target, or -1.
func Index(options []Option, target Option) int {
	for i, candidate := range options {
		if candidate.Equal(target) {
			return i
		}
	}
	return -1
}

// Contains reports whether options has an element equal to target.
func Contains(options []Option, target Option) bool {
	return Index(options, target) >= 0
}

// Dedupe returns options with every element that equals an earlier
// element removed. The first occurrence wins, attached value
// included, and order is preserved.
func Dedupe(options []Option) []Option {
	result := make([]Option, 0, len(options))
	for _, candidate := range options {
		if !Contains(result, candidate) {
			result = append(result, candidate)
		}
	}
	return result
}

// Strings renders each option with [Option.String].
func Strings(options []Option) []string {
	rendered := make([]string, len(options))
	for i, o := range options {
		rendered[i] = o.String()
	}
	return rendered
}
