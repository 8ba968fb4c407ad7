// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/bureau-foundation/switchboard/lib/argument"
	"github.com/bureau-foundation/switchboard/lib/option"
)

// outcome captures which final callback a run invoked.
type outcome struct {
	completed bool
	failed    bool
	final     []argument.Argument
}

func newTestConsole(t *testing.T) (*Console, *outcome) {
	t.Helper()
	result := &outcome{}
	console := NewConsole("test")
	console.Completion = func(invocation Invocation) {
		result.completed = true
		result.final = invocation.Arguments
		if invocation.Options.Len() != 0 {
			t.Errorf("completion received %d option values, want none", invocation.Options.Len())
		}
	}
	console.Failure = func() {
		result.failed = true
	}
	return console, result
}

// recorder returns a handler that appends name to calls.
func recorder(calls *[]string, name string) Handler {
	return func(Invocation) []argument.Argument {
		*calls = append(*calls, name)
		return nil
	}
}

func TestConsole_Run_SingleExactCommand(t *testing.T) {
	console, result := newTestConsole(t)
	console.Command(Definition{Options: []option.Option{option.Flag('v')}})

	console.Run(Input{Options: []option.Option{option.Flag('v')}}, RunOptions{})
	if !result.completed || result.failed {
		t.Errorf("with -v: completed=%v failed=%v, want completion", result.completed, result.failed)
	}

	console, result = newTestConsole(t)
	console.Command(Definition{Options: []option.Option{option.Flag('v')}})

	console.Run(Input{}, RunOptions{})
	if result.completed || !result.failed {
		t.Errorf("without options: completed=%v failed=%v, want failure", result.completed, result.failed)
	}
}

func TestConsole_Run_PositionalKind(t *testing.T) {
	console, result := newTestConsole(t)
	console.Command(Definition{Inputs: []argument.Pattern{argument.AnyString()}})

	run := console.RunArgs([]string{"hello"}, RunOptions{})
	if !run.Matched || !result.completed {
		t.Error(`"hello" did not match <string>`)
	}

	console, result = newTestConsole(t)
	console.Command(Definition{Inputs: []argument.Pattern{argument.AnyString()}})

	run = console.RunArgs([]string{"42"}, RunOptions{})
	if run.Matched || !result.failed {
		t.Error(`"42" (an int) matched <string>`)
	}
}

func TestConsole_Run_Subset(t *testing.T) {
	build := func() (*Console, *outcome) {
		console, result := newTestConsole(t)
		console.Command(Definition{
			Mode:    MatchSubset,
			Options: []option.Option{option.Flag('a'), option.Flag('b')},
		})
		return console, result
	}

	console, result := build()
	console.RunArgs([]string{"-abc"}, RunOptions{})
	if !result.completed {
		t.Error("subset {a, b} did not match {a, b, c}")
	}

	console, result = build()
	console.RunArgs([]string{"-a"}, RunOptions{})
	if !result.failed {
		t.Error("subset {a, b} matched {a}")
	}
}

func TestConsole_Run_FirstRegisteredWins(t *testing.T) {
	var calls []string
	console := NewConsole("test")
	for _, name := range []string{"first", "second"} {
		console.Command(Definition{
			Name:    name,
			Options: []option.Option{option.Flag('x')},
			Run:     recorder(&calls, name),
		})
	}

	result := console.RunArgs([]string{"-x"}, RunOptions{})
	if !slices.Equal(calls, []string{"first"}) {
		t.Errorf("calls = %v, want [first]", calls)
	}
	if len(result.Fired) != 1 || result.Fired[0].Command != "first" {
		t.Errorf("Fired = %+v, want one firing of first", result.Fired)
	}

	calls = nil
	console.RunArgs([]string{"-x"}, RunOptions{CompleteAll: true})
	if !slices.Equal(calls, []string{"first", "second"}) {
		t.Errorf("with CompleteAll calls = %v, want [first second]", calls)
	}
}

func TestConsole_Run_Chaining(t *testing.T) {
	var seen [][]argument.Argument
	console, result := newTestConsole(t)
	console.Command(Definition{
		Name:   "produce",
		Inputs: []argument.Pattern{argument.AnyInt()},
		Run: func(invocation Invocation) []argument.Argument {
			seen = append(seen, invocation.Arguments)
			return []argument.Argument{argument.String("x")}
		},
	})
	console.Command(Definition{
		Name:   "consume",
		Inputs: []argument.Pattern{argument.ExactString("x")},
		Run: func(invocation Invocation) []argument.Argument {
			seen = append(seen, invocation.Arguments)
			return nil
		},
	})
	console.Command(Definition{
		Name:   "original",
		Inputs: []argument.Pattern{argument.AnyInt()},
		Run: func(invocation Invocation) []argument.Argument {
			t.Error("command matching the original arguments fired after they were replaced")
			return nil
		},
	})

	run := console.RunArgs([]string{"7"}, RunOptions{CompleteAll: true})

	if len(seen) != 2 {
		t.Fatalf("handlers fired %d times, want 2", len(seen))
	}
	if !seen[0][0].Equal(argument.Int(7)) {
		t.Errorf("first handler saw %v, want [int(7)]", seen[0])
	}
	if !seen[1][0].Equal(argument.String("x")) {
		t.Errorf("second handler saw %v, want [string(x)]", seen[1])
	}
	if argument.Join(run.Arguments, " ") != "x" {
		t.Errorf("Result.Arguments = %v, want [x]", run.Arguments)
	}
	if !run.Fired[0].Replaced || run.Fired[1].Replaced {
		t.Errorf("Replaced flags = %v, %v; want true, false", run.Fired[0].Replaced, run.Fired[1].Replaced)
	}
	if argument.Join(result.final, " ") != "x" {
		t.Errorf("completion saw %v, want [x]", result.final)
	}
}

func TestConsole_Run_EmptyReplacementKeepsArguments(t *testing.T) {
	console, result := newTestConsole(t)
	console.Command(Definition{
		Inputs: []argument.Pattern{argument.AnyString()},
		Run: func(Invocation) []argument.Argument {
			return []argument.Argument{}
		},
	})

	console.RunArgs([]string{"keep"}, RunOptions{})
	if argument.Join(result.final, " ") != "keep" {
		t.Errorf("final arguments = %v, want [keep]", result.final)
	}
}

func TestConsole_Run_HandlerReceivesOptionValues(t *testing.T) {
	var got option.Values
	console := NewConsole("test")
	console.Command(Definition{
		Mode:    MatchSubset,
		Options: []option.Option{option.New('c', "count")},
		Run: func(invocation Invocation) []argument.Argument {
			got = invocation.Options
			return nil
		},
	})

	console.RunArgs([]string{"--count=5", "-q"}, RunOptions{})

	if value, ok := got.Lookup("c"); !ok || value.IntValue() != 5 {
		t.Errorf("count = %v, %v; want int(5)", value, ok)
	}
	if value, ok := got.Lookup("q"); !ok || value.IntValue() != 1 {
		t.Errorf("q = %v, %v; want int(1)", value, ok)
	}
}

func TestConsole_Run_DuplicateUserOptionsActAsSet(t *testing.T) {
	console, result := newTestConsole(t)
	console.Command(Definition{Options: []option.Option{option.New('v', "verbose")}})

	console.RunArgs([]string{"-v", "-v"}, RunOptions{})
	if !result.completed {
		t.Error("repeated -v did not satisfy an exact {-v} command")
	}
}

func TestConsole_Run_FlagAndLongFormAreDistinctUserOptions(t *testing.T) {
	console, result := newTestConsole(t)
	console.Command(Definition{Options: []option.Option{option.New('v', "verbose")}})

	// Each form equals the declaration but not the other, so the user
	// supplies two options against one required.
	console.RunArgs([]string{"-v", "--verbose"}, RunOptions{})
	if result.completed {
		t.Error("{-v, --verbose} satisfied an exact {-v--verbose} command")
	}
	if !result.failed {
		t.Error("failure callback did not run")
	}
}

func TestConsole_Run_FollowUserOrder(t *testing.T) {
	var calls []string
	console := NewConsole("test")
	console.Command(Definition{
		Name:    "any-ab",
		Mode:    MatchAny,
		Options: []option.Option{option.Flag('a'), option.Flag('b')},
		Run:     recorder(&calls, "any-ab"),
	})
	console.Command(Definition{
		Name:    "subset-bc",
		Mode:    MatchSubset,
		Options: []option.Option{option.Flag('b'), option.Flag('c')},
		Run:     recorder(&calls, "subset-bc"),
	})
	console.Command(Definition{
		Name:    "exact-abc",
		Options: []option.Option{option.Flag('a'), option.Flag('b'), option.Flag('c')},
		Run:     recorder(&calls, "exact-abc"),
	})
	console.Command(Definition{
		Name:    "exact-other",
		Options: []option.Option{option.Flag('z')},
		Run:     recorder(&calls, "exact-other"),
	})

	result := console.RunArgs([]string{"-c", "-a", "-b"}, RunOptions{FollowUserOrder: true})

	// -c fires subset-bc (claiming b and c); -a fires any-ab; -b fires
	// any-ab again but not the already claimed subset-bc. The
	// registration pass then fires only exact commands.
	want := []string{"subset-bc", "any-ab", "any-ab", "exact-abc"}
	if !slices.Equal(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}

	phases := make([]Phase, len(result.Fired))
	for i, firing := range result.Fired {
		phases[i] = firing.Phase
	}
	wantPhases := []Phase{PhaseUserOrder, PhaseUserOrder, PhaseUserOrder, PhaseRegistration}
	if !slices.Equal(phases, wantPhases) {
		t.Errorf("phases = %v, want %v", phases, wantPhases)
	}
}

func TestConsole_Run_FollowUserOrderChecksArguments(t *testing.T) {
	var calls []string
	console := NewConsole("test")
	console.Command(Definition{
		Name:    "needs-int",
		Mode:    MatchAny,
		Options: []option.Option{option.Flag('a')},
		Inputs:  []argument.Pattern{argument.AnyInt()},
		Run:     recorder(&calls, "needs-int"),
	})

	result := console.RunArgs([]string{"-a", "word"}, RunOptions{FollowUserOrder: true})
	if result.Matched || len(calls) != 0 {
		t.Errorf("calls = %v, Matched = %v; want no match for a string argument", calls, result.Matched)
	}
}

func TestConsole_Run_WithoutUserOrderSkipsNothing(t *testing.T) {
	var calls []string
	console := NewConsole("test")
	console.Command(Definition{
		Name:    "any-a",
		Mode:    MatchAny,
		Options: []option.Option{option.Flag('a')},
		Run:     recorder(&calls, "any-a"),
	})

	console.RunArgs([]string{"-a", "-b"}, RunOptions{})
	if !slices.Equal(calls, []string{"any-a"}) {
		t.Errorf("calls = %v, want [any-a]", calls)
	}
}

func TestConsole_Run_IsRepeatable(t *testing.T) {
	var calls []string
	console := NewConsole("test")
	console.Command(Definition{
		Name:   "echo",
		Inputs: []argument.Pattern{argument.AnyInt()},
		Run: func(invocation Invocation) []argument.Argument {
			calls = append(calls, invocation.Arguments[0].Text())
			return []argument.Argument{argument.String("changed")}
		},
	})

	first := console.RunArgs([]string{"1"}, RunOptions{})
	second := console.RunArgs([]string{"2"}, RunOptions{})

	if !first.Matched || !second.Matched {
		t.Fatalf("Matched = %v, %v; want both true", first.Matched, second.Matched)
	}
	if !slices.Equal(calls, []string{"1", "2"}) {
		t.Errorf("calls = %v, want [1 2]", calls)
	}
}

func TestConsole_Run_NilCallbacks(t *testing.T) {
	console := NewConsole("test")
	console.Command(Definition{Options: []option.Option{option.Flag('v')}})

	if console.RunArgs([]string{"-q"}, RunOptions{}).Matched {
		t.Error("Matched = true for an unknown option")
	}
	if !console.RunArgs([]string{"-v"}, RunOptions{}).Matched {
		t.Error("Matched = false for -v")
	}
}

func TestConsole_Run_LogsFirings(t *testing.T) {
	var buffer bytes.Buffer
	console := NewConsole("tool")
	console.Logger = slog.New(slog.NewTextHandler(&buffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	console.Command(Definition{Name: "hello", Inputs: []argument.Pattern{argument.AnyString()}})

	console.RunArgs([]string{"world"}, RunOptions{})
	console.RunArgs(nil, RunOptions{})

	output := buffer.String()
	for _, want := range []string{"command fired", "hello[exact] <string>", "program=tool", "no command matched"} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
}

func TestConsole_Commands(t *testing.T) {
	console := NewConsole("test")
	first := console.Command(Definition{Name: "a"})
	second := NewCommand(Definition{Name: "b"})
	console.Append(second)

	commands := console.Commands()
	if len(commands) != 2 || commands[0] != first || commands[1] != second {
		t.Errorf("Commands() = %v, want [a b] in registration order", commands)
	}
}
