// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argument

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the primitive type of an argument or pattern.
type Kind uint8

const (
	// KindInt is a signed base-10 integer.
	KindInt Kind = iota + 1
	// KindFloat is a 64-bit floating point number.
	KindFloat
	// KindString is any text that parses as neither int nor float.
	KindString
)

// String returns the lower-case kind name used in table files and
// error messages.
func (kind Kind) String() string {
	switch kind {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(kind))
	}
}

// ParseKind parses a kind name as produced by [Kind.String].
func ParseKind(name string) (Kind, error) {
	switch name {
	case "int":
		return KindInt, nil
	case "float":
		return KindFloat, nil
	case "string":
		return KindString, nil
	default:
		return 0, fmt.Errorf("unknown argument kind %q", name)
	}
}

// Argument is a concrete positional value. The zero Argument has no
// kind and is never equal to anything; build values with [Int],
// [Float], [String], [Absent], or [Parse].
type Argument struct {
	kind    Kind
	present bool
	integer int64
	float   float64
	text    string
}

// Int returns an integer argument.
func Int(value int64) Argument {
	return Argument{kind: KindInt, present: true, integer: value}
}

// Float returns a float argument.
func Float(value float64) Argument {
	return Argument{kind: KindFloat, present: true, float: value}
}

// String returns a string argument.
func String(value string) Argument {
	return Argument{kind: KindString, present: true, text: value}
}

// Absent returns an argument of the given kind with no payload.
func Absent(kind Kind) Argument {
	return Argument{kind: kind}
}

// Parse converts raw command-line text into an Argument: a base-10
// integer if it parses as one, else a float, else the text itself.
func Parse(text string) Argument {
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(value)
	}
	if value, err := strconv.ParseFloat(text, 64); err == nil {
		return Float(value)
	}
	return String(text)
}

// ParseAll applies [Parse] to every element of texts.
func ParseAll(texts []string) []Argument {
	if len(texts) == 0 {
		return nil
	}
	arguments := make([]Argument, len(texts))
	for i, text := range texts {
		arguments[i] = Parse(text)
	}
	return arguments
}

// Kind returns the argument's primitive kind.
func (a Argument) Kind() Kind {
	return a.kind
}

// IsAbsent reports whether the argument has no payload.
func (a Argument) IsAbsent() bool {
	return !a.present
}

// IntValue returns the integer payload, or 0 for other kinds and
// absent values.
func (a Argument) IntValue() int64 {
	if a.kind != KindInt || !a.present {
		return 0
	}
	return a.integer
}

// FloatValue returns the float payload, or 0 for other kinds and
// absent values.
func (a Argument) FloatValue() float64 {
	if a.kind != KindFloat || !a.present {
		return 0
	}
	return a.float
}

// StringValue returns the string payload, or "" for other kinds and
// absent values. Use [Argument.Text] for a printable form of any kind.
func (a Argument) StringValue() string {
	if a.kind != KindString || !a.present {
		return ""
	}
	return a.text
}

// Value returns the payload as int64, float64, or string, or nil when
// the argument is absent.
func (a Argument) Value() any {
	if !a.present {
		return nil
	}
	switch a.kind {
	case KindInt:
		return a.integer
	case KindFloat:
		return a.float
	case KindString:
		return a.text
	default:
		return nil
	}
}

// Text renders the payload the way a user would type it. Absent
// values render as "".
func (a Argument) Text() string {
	if !a.present {
		return ""
	}
	switch a.kind {
	case KindInt:
		return strconv.FormatInt(a.integer, 10)
	case KindFloat:
		return strconv.FormatFloat(a.float, 'g', -1, 64)
	case KindString:
		return a.text
	default:
		return ""
	}
}

// String implements fmt.Stringer for logs and test failures, e.g.
// int(42), string("hi"), float(<absent>).
func (a Argument) String() string {
	if !a.present {
		return a.kind.String() + "(<absent>)"
	}
	if a.kind == KindString {
		return "string(" + strconv.Quote(a.text) + ")"
	}
	return a.kind.String() + "(" + a.Text() + ")"
}

// Equal reports whether a and other are the same kind and either
// payload is absent or both payloads are equal. Absence is a
// wildcard, so Equal is not transitive across absent values.
func (a Argument) Equal(other Argument) bool {
	if a.kind == 0 || a.kind != other.kind {
		return false
	}
	if !a.present || !other.present {
		return true
	}
	switch a.kind {
	case KindInt:
		return a.integer == other.integer
	case KindFloat:
		return a.float == other.float
	default:
		return a.text == other.text
	}
}

// Represents reports whether a satisfies pattern: the kinds must
// match, and an exact pattern additionally requires a present payload
// equal to the pattern's literal.
func (a Argument) Represents(pattern Pattern) bool {
	if a.kind == 0 || a.kind != pattern.kind {
		return false
	}
	if !pattern.exact {
		return true
	}
	if !a.present {
		return false
	}
	return a.Equal(pattern.literal)
}

// Texts renders each argument with [Argument.Text].
func Texts(arguments []Argument) []string {
	texts := make([]string, len(arguments))
	for i, argument := range arguments {
		texts[i] = argument.Text()
	}
	return texts
}

// Join renders arguments with [Argument.Text], separated by sep.
func Join(arguments []Argument, sep string) string {
	return strings.Join(Texts(arguments), sep)
}
