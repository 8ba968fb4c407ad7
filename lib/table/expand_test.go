// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"testing"

	"github.com/bureau-foundation/switchboard/lib/argument"
	"github.com/bureau-foundation/switchboard/lib/option"
)

func TestExpand(t *testing.T) {
	var values option.Values
	values.Set(option.New('v', "verbose"), argument.Int(1))
	values.Set(option.Long("env"), argument.String("prod"))

	scope := Scope{
		Program:   "deploy",
		Arguments: []argument.Argument{argument.String("web"), argument.Int(3)},
		Options:   values,
	}

	tests := []struct {
		template string
		want     string
	}{
		{"plain text", "plain text"},
		{"${1}", "web"},
		{"${2} replicas", "3 replicas"},
		{"${3}", ""},
		{"${3:-none}", "none"},
		{"${0:-zero}", "zero"},
		{"${@}", "web 3"},
		{"${#}", "2"},
		{"${program}", "deploy"},
		{"${env}", "prod"},
		{"${v}/${verbose}", "1/1"},
		{"${missing:-fallback}", "fallback"},
		{"${missing}", ""},
		{"${program}: ${1} to ${env:-dev}", "deploy: web to prod"},
		{"$1 {1}", "$1 {1}"},
	}
	for _, test := range tests {
		if got := Expand(test.template, scope); got != test.want {
			t.Errorf("Expand(%q) = %q, want %q", test.template, got, test.want)
		}
	}
}

func TestExpand_EmptyScope(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"${@}", ""},
		{"${@:-nothing}", "nothing"},
		{"${#}", "0"},
		{"${program:-anonymous}", "anonymous"},
	}
	for _, test := range tests {
		if got := Expand(test.template, Scope{}); got != test.want {
			t.Errorf("Expand(%q) = %q, want %q", test.template, got, test.want)
		}
	}
}

func TestEmit(t *testing.T) {
	scope := Scope{Arguments: []argument.Argument{argument.Int(5), argument.String("x")}}

	got := emit([]string{"${@}", "${1}", "done", "2.5"}, scope)
	want := []argument.Argument{
		argument.Int(5), argument.String("x"),
		argument.Int(5), argument.String("done"), argument.Float(2.5),
	}
	if len(got) != len(want) {
		t.Fatalf("emit() = %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("emit()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
