// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argument

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Argument
	}{
		{"42", Int(42)},
		{"-7", Int(-7)},
		{"+5", Int(5)},
		{"3.14", Float(3.14)},
		{"1e3", Float(1000)},
		{"hello", String("hello")},
		{"", String("")},
		{"12abc", String("12abc")},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := Parse(test.input)
			if got.Kind() != test.want.Kind() {
				t.Fatalf("Parse(%q) kind = %s, want %s", test.input, got.Kind(), test.want.Kind())
			}
			if !got.Equal(test.want) {
				t.Errorf("Parse(%q) = %s, want %s", test.input, got, test.want)
			}
		})
	}
}

func TestParse_IntegerOverflowFallsBackToFloat(t *testing.T) {
	got := Parse("99999999999999999999")
	if got.Kind() != KindFloat {
		t.Fatalf("kind = %s, want float", got.Kind())
	}
	if got.FloatValue() != 1e20 {
		t.Errorf("FloatValue() = %g, want 1e20", got.FloatValue())
	}
}

func TestArgument_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Argument
		want bool
	}{
		{"same int", Int(1), Int(1), true},
		{"different int", Int(1), Int(2), false},
		{"same string", String("a"), String("a"), true},
		{"different string", String("a"), String("b"), false},
		{"same float", Float(1.5), Float(1.5), true},
		{"int vs float", Int(1), Float(1), false},
		{"int vs string", Int(1), String("1"), false},
		{"absent left is wildcard", Absent(KindInt), Int(9), true},
		{"absent right is wildcard", String("x"), Absent(KindString), true},
		{"both absent", Absent(KindFloat), Absent(KindFloat), true},
		{"absent of other kind", Absent(KindInt), String("x"), false},
		{"zero value", Argument{}, Argument{}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Equal(test.b); got != test.want {
				t.Errorf("%s.Equal(%s) = %v, want %v", test.a, test.b, got, test.want)
			}
			if got := test.b.Equal(test.a); got != test.want {
				t.Errorf("%s.Equal(%s) = %v, want %v (symmetry)", test.b, test.a, got, test.want)
			}
		})
	}
}

func TestArgument_Represents(t *testing.T) {
	tests := []struct {
		name     string
		argument Argument
		pattern  Pattern
		want     bool
	}{
		{"int any", Int(5), AnyInt(), true},
		{"int exact equal", Int(5), ExactInt(5), true},
		{"int exact different", Int(5), ExactInt(6), false},
		{"float any", Float(2.5), AnyFloat(), true},
		{"float exact", Float(2.5), ExactFloat(2.5), true},
		{"string any", String("hi"), AnyString(), true},
		{"string exact", String("hi"), ExactString("hi"), true},
		{"string exact different", String("hi"), ExactString("ho"), false},
		{"int vs any string", Int(42), AnyString(), false},
		{"string vs any int", String("42"), AnyInt(), false},
		{"float vs exact int", Float(1), ExactInt(1), false},
		{"absent matches any", Absent(KindInt), AnyInt(), true},
		{"absent never matches exact", Absent(KindInt), ExactInt(0), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.argument.Represents(test.pattern); got != test.want {
				t.Errorf("%s.Represents(%s) = %v, want %v", test.argument, test.pattern, got, test.want)
			}
		})
	}
}

func TestArgument_Represents_IntProperties(t *testing.T) {
	for _, value := range []int64{math.MinInt64 + 1, -1, 0, 1, 1 << 40, math.MaxInt64 - 1} {
		argument := Int(value)
		if !argument.Represents(ExactInt(value)) {
			t.Errorf("Int(%d) does not represent ExactInt(%d)", value, value)
		}
		if argument.Represents(ExactInt(value + 1)) {
			t.Errorf("Int(%d) represents ExactInt(%d)", value, value+1)
		}
		if !argument.Represents(AnyInt()) {
			t.Errorf("Int(%d) does not represent AnyInt", value)
		}
		for _, other := range []Pattern{AnyFloat(), AnyString(), ExactFloat(float64(value)), ExactString(Int(value).Text())} {
			if argument.Represents(other) {
				t.Errorf("Int(%d) represents %s of another kind", value, other)
			}
		}
	}
}

func TestArgument_Accessors(t *testing.T) {
	if got := Int(3).IntValue(); got != 3 {
		t.Errorf("IntValue() = %d, want 3", got)
	}
	if got := String("x").IntValue(); got != 0 {
		t.Errorf("String.IntValue() = %d, want 0", got)
	}
	if got := Float(0.5).FloatValue(); got != 0.5 {
		t.Errorf("FloatValue() = %g, want 0.5", got)
	}
	if got := String("x").StringValue(); got != "x" {
		t.Errorf("StringValue() = %q, want %q", got, "x")
	}
	if got := Int(1).StringValue(); got != "" {
		t.Errorf("Int.StringValue() = %q, want empty", got)
	}
	if got := Absent(KindString).Value(); got != nil {
		t.Errorf("Absent.Value() = %v, want nil", got)
	}
	if got := Int(7).Value(); got != int64(7) {
		t.Errorf("Int.Value() = %v, want int64(7)", got)
	}
}

func TestArgument_Text(t *testing.T) {
	tests := []struct {
		argument Argument
		want     string
	}{
		{Int(-3), "-3"},
		{Float(2.5), "2.5"},
		{Float(1e21), "1e+21"},
		{String("a b"), "a b"},
		{Absent(KindInt), ""},
	}
	for _, test := range tests {
		if got := test.argument.Text(); got != test.want {
			t.Errorf("%s.Text() = %q, want %q", test.argument, got, test.want)
		}
	}

	if got := Join([]Argument{Int(1), String("two"), Float(3.5)}, " "); got != "1 two 3.5" {
		t.Errorf("Join = %q, want %q", got, "1 two 3.5")
	}
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		input     string
		wantKind  Kind
		wantExact bool
	}{
		{"<int>", KindInt, false},
		{"<float>", KindFloat, false},
		{"<string>", KindString, false},
		{"5", KindInt, true},
		{"2.5", KindFloat, true},
		{"deploy", KindString, true},
		{"int", KindString, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			pattern, err := ParsePattern(test.input)
			if err != nil {
				t.Fatalf("ParsePattern(%q) error: %v", test.input, err)
			}
			if pattern.Kind() != test.wantKind || pattern.IsExact() != test.wantExact {
				t.Errorf("ParsePattern(%q) = (%s, exact=%v), want (%s, exact=%v)",
					test.input, pattern.Kind(), pattern.IsExact(), test.wantKind, test.wantExact)
			}
			if got := pattern.String(); got != test.input {
				t.Errorf("String() = %q, want %q", got, test.input)
			}
		})
	}
}

func TestParsePattern_UnknownKind(t *testing.T) {
	if _, err := ParsePattern("<strng>"); err == nil {
		t.Fatal("expected error for unknown kind, got nil")
	}
	if _, err := ParsePatterns([]string{"<int>", "<bool>"}); err == nil {
		t.Fatal("expected error from ParsePatterns, got nil")
	}
}
