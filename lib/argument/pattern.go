// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argument

import "fmt"

// Pattern is the type or literal a command accepts at one positional
// slot. Patterns are immutable.
type Pattern struct {
	kind    Kind
	exact   bool
	literal Argument
}

// AnyInt matches every integer argument.
func AnyInt() Pattern { return Pattern{kind: KindInt} }

// AnyFloat matches every float argument.
func AnyFloat() Pattern { return Pattern{kind: KindFloat} }

// AnyString matches every string argument.
func AnyString() Pattern { return Pattern{kind: KindString} }

// ExactInt matches only the integer value.
func ExactInt(value int64) Pattern {
	return Pattern{kind: KindInt, exact: true, literal: Int(value)}
}

// ExactFloat matches only the float value.
func ExactFloat(value float64) Pattern {
	return Pattern{kind: KindFloat, exact: true, literal: Float(value)}
}

// ExactString matches only the string value.
func ExactString(value string) Pattern {
	return Pattern{kind: KindString, exact: true, literal: String(value)}
}

// Exact returns the pattern that matches only the given argument. An
// absent argument yields the Any pattern of its kind.
func Exact(literal Argument) Pattern {
	if literal.IsAbsent() {
		return Pattern{kind: literal.kind}
	}
	return Pattern{kind: literal.kind, exact: true, literal: literal}
}

// Any returns the pattern matching every argument of kind.
func Any(kind Kind) Pattern {
	return Pattern{kind: kind}
}

// ParsePattern parses the table-file syntax for a pattern. "<int>",
// "<float>", and "<string>" are the Any patterns; any other text is an
// exact literal, parsed with [Parse]. An angle-bracketed name that is
// not a kind is an error, so typos such as "<strng>" are caught
// instead of silently becoming a string literal.
func ParsePattern(text string) (Pattern, error) {
	if len(text) >= 2 && text[0] == '<' && text[len(text)-1] == '>' {
		kind, err := ParseKind(text[1 : len(text)-1])
		if err != nil {
			return Pattern{}, fmt.Errorf("pattern %q: %w", text, err)
		}
		return Any(kind), nil
	}
	return Exact(Parse(text)), nil
}

// ParsePatterns applies [ParsePattern] to each element, stopping at the
// first error.
func ParsePatterns(texts []string) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(texts))
	for i, text := range texts {
		pattern, err := ParsePattern(text)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i+1, err)
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

// Kind returns the kind the pattern accepts.
func (p Pattern) Kind() Kind {
	return p.kind
}

// IsExact reports whether the pattern is bound to one literal.
func (p Pattern) IsExact() bool {
	return p.exact
}

// Literal returns the bound literal of an exact pattern, and false for
// Any patterns.
func (p Pattern) Literal() (Argument, bool) {
	return p.literal, p.exact
}

// String renders the pattern in table-file syntax: "<int>" for Any
// patterns, the literal text otherwise.
func (p Pattern) String() string {
	if !p.exact {
		return "<" + p.kind.String() + ">"
	}
	return p.literal.Text()
}
