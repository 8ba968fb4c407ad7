// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"fmt"
	"slices"

	"github.com/bureau-foundation/switchboard/lib/argument"
	"github.com/bureau-foundation/switchboard/lib/option"
)

// MatchMode selects how a command's required options relate to the
// options the user supplied.
type MatchMode uint8

const (
	// MatchExact requires the user's options to be exactly the
	// required set.
	MatchExact MatchMode = iota

	// MatchAny requires at least one required option to be present.
	MatchAny

	// MatchSubset requires every required option to be present;
	// unrelated options may accompany them.
	MatchSubset
)

// String returns the mode name used in table files.
func (mode MatchMode) String() string {
	switch mode {
	case MatchExact:
		return "exact"
	case MatchAny:
		return "any"
	case MatchSubset:
		return "subset"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(mode))
	}
}

// ParseMatchMode parses a mode name. The empty string is [MatchExact].
func ParseMatchMode(name string) (MatchMode, error) {
	switch name {
	case "", "exact":
		return MatchExact, nil
	case "any":
		return MatchAny, nil
	case "subset":
		return MatchSubset, nil
	default:
		return 0, fmt.Errorf("unknown match mode %q (want exact, any, or subset)", name)
	}
}

// Invocation is what a handler receives: the current positional
// arguments and the values of the user's options.
type Invocation struct {
	Arguments []argument.Argument
	Options   option.Values
}

// Handler runs a matched command. A non-empty return value replaces
// the argument list seen by commands matched later in the same run;
// nil or empty leaves it unchanged.
type Handler func(invocation Invocation) []argument.Argument

// Definition describes a command to [NewCommand].
type Definition struct {
	// Name identifies the command in logs and dispatch results. It
	// does not take part in matching.
	Name string

	// Mode relates Options to the user's options.
	Mode MatchMode

	// Options are the required options. The [option.Any] and
	// [option.Subset] markers are accepted here for option lists
	// written in marker style and are translated to Mode.
	Options []option.Option

	// Inputs are the positional patterns, one per argument.
	Inputs []argument.Pattern

	// Run is the handler. A nil Run matches but does nothing.
	Run Handler
}

// Command is an immutable registered pattern.
type Command struct {
	name     string
	mode     MatchMode
	required []option.Option
	inputs   []argument.Pattern
	run      Handler
}

// NewCommand builds a command from definition. Mode markers in
// definition.Options are removed from the required set; [option.Any]
// selects [MatchAny] and takes priority over [option.Subset], which
// selects [MatchSubset]. Without markers, definition.Mode is used.
// Slices are copied, so later changes to definition have no effect.
func NewCommand(definition Definition) *Command {
	mode := definition.Mode
	hasAny, hasSubset := false, false
	required := make([]option.Option, 0, len(definition.Options))
	for _, declared := range definition.Options {
		switch {
		case declared.IsAny():
			hasAny = true
		case declared.IsSubset():
			hasSubset = true
		default:
			required = append(required, declared.Identity())
		}
	}
	if hasAny {
		mode = MatchAny
	} else if hasSubset {
		mode = MatchSubset
	}

	return &Command{
		name:     definition.Name,
		mode:     mode,
		required: required,
		inputs:   slices.Clone(definition.Inputs),
		run:      definition.Run,
	}
}

// Name returns the command's name.
func (c *Command) Name() string { return c.name }

// Mode returns the command's match mode.
func (c *Command) Mode() MatchMode { return c.mode }

// Options returns a copy of the required options.
func (c *Command) Options() []option.Option { return slices.Clone(c.required) }

// Inputs returns a copy of the positional patterns.
func (c *Command) Inputs() []argument.Pattern { return slices.Clone(c.inputs) }

// declares reports whether o is one of the required options.
func (c *Command) declares(o option.Option) bool {
	return option.Contains(c.required, o)
}

// ValidArguments reports whether actual satisfies the positional
// patterns: the lengths must be equal and each argument must
// represent the pattern at its position.
func (c *Command) ValidArguments(actual []argument.Argument) bool {
	if len(actual) != len(c.inputs) {
		return false
	}
	for i, pattern := range c.inputs {
		if !actual[i].Represents(pattern) {
			return false
		}
	}
	return true
}

// ValidOptions reports whether the user's options satisfy the
// command's required options under its match mode. actual is treated
// as a set; callers de-duplicate it first (see [option.Dedupe]).
//
// An Any-mode command with no required options never matches.
func (c *Command) ValidOptions(actual []option.Option) bool {
	switch c.mode {
	case MatchAny:
		for _, supplied := range actual {
			if c.declares(supplied) {
				return true
			}
		}
		return false

	case MatchSubset:
		for _, required := range c.required {
			if !option.Contains(actual, required) {
				return false
			}
		}
		return true

	default:
		if len(actual) != len(c.required) {
			return false
		}
		for _, supplied := range actual {
			if !c.declares(supplied) {
				return false
			}
		}
		return true
	}
}

// ResponseOptions builds the values a handler receives. An option
// supplied without a value maps to Int(1). An option supplied with a
// value maps to that value when the command declares it; undeclared
// options with values are dropped. Declared options are keyed by the
// declaration, so a handler can look up "-v" typed by the user under
// either "v" or "verbose" when the command declares "-v--verbose".
func (c *Command) ResponseOptions(actual []option.Option) option.Values {
	var values option.Values
	for _, supplied := range actual {
		index := option.Index(c.required, supplied)
		key := supplied
		if index >= 0 {
			key = c.required[index]
		}
		switch {
		case !supplied.HasValue():
			values.Set(key, argument.Int(1))
		case index >= 0:
			values.Set(key, supplied.Value)
		}
	}
	return values
}

// String renders the command's pattern for logs, e.g.
// `deploy[subset -v/--verbose --env] <string>`.
func (c *Command) String() string {
	rendered := c.name
	if rendered == "" {
		rendered = "command"
	}
	rendered += "[" + c.mode.String()
	for _, required := range c.required {
		rendered += " " + required.String()
	}
	rendered += "]"
	for _, input := range c.inputs {
		rendered += " " + input.String()
	}
	return rendered
}
