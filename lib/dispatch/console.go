// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"log/slog"
	"slices"

	"github.com/bureau-foundation/switchboard/lib/argument"
	"github.com/bureau-foundation/switchboard/lib/argv"
	"github.com/bureau-foundation/switchboard/lib/option"
)

// Phase identifies the dispatch pass in which a command fired.
type Phase uint8

const (
	// PhaseUserOrder is the optional pass over the user's options in
	// the order typed.
	PhaseUserOrder Phase = iota + 1

	// PhaseRegistration is the pass over commands in registration
	// order.
	PhaseRegistration
)

// String returns "user-order" or "registration".
func (phase Phase) String() string {
	switch phase {
	case PhaseUserOrder:
		return "user-order"
	case PhaseRegistration:
		return "registration"
	default:
		return "unknown"
	}
}

// Input is one invocation as produced by a tokenizer such as
// [argv.Split].
type Input struct {
	Options   []option.Option
	Arguments []argument.Argument
}

// RunOptions controls a dispatch run.
type RunOptions struct {
	// CompleteAll fires every valid command in the registration pass
	// instead of stopping after the first.
	CompleteAll bool

	// FollowUserOrder enables the user-order pass for Any and Subset
	// commands. It implies CompleteAll.
	FollowUserOrder bool
}

// Firing records one handler invocation.
type Firing struct {
	Command   string
	Phase     Phase
	Arguments []argument.Argument
	Options   option.Values

	// Replaced is true when the handler returned a replacement
	// argument list.
	Replaced bool
}

// Result is the outcome of a run.
type Result struct {
	// Matched is true when at least one command fired.
	Matched bool

	// Arguments is the argument list after all chaining.
	Arguments []argument.Argument

	// Fired lists handler invocations in the order they happened.
	Fired []Firing
}

// Console holds registered commands and dispatches invocations to
// them. Register every command before the first Run; Run does not
// modify the console.
type Console struct {
	// Name is the program name, used in logs and by callers
	// rendering output.
	Name string

	// Completion is called after a run in which at least one command
	// fired, with the final argument list and no option values.
	Completion func(invocation Invocation)

	// Failure is called after a run in which no command fired.
	Failure func()

	// Logger receives a debug record for every fired command. Nil
	// disables logging.
	Logger *slog.Logger

	commands []*Command
}

// NewConsole returns an empty console for the named program.
func NewConsole(name string) *Console {
	return &Console{Name: name}
}

// Append registers command after every previously registered command.
func (c *Console) Append(command *Command) {
	c.commands = append(c.commands, command)
}

// Command builds a command from definition, registers it, and
// returns it.
func (c *Console) Command(definition Definition) *Command {
	command := NewCommand(definition)
	c.Append(command)
	return command
}

// Commands returns the registered commands in registration order.
func (c *Console) Commands() []*Command {
	return slices.Clone(c.commands)
}

// RunArgs tokenizes args (without the program name) with [argv.Split]
// and runs the result.
func (c *Console) RunArgs(args []string, options RunOptions) Result {
	userOptions, arguments := argv.Split(args)
	return c.Run(Input{Options: userOptions, Arguments: arguments}, options)
}

// Run dispatches one invocation. The user's options are treated as a
// set: repeats of an option already seen are ignored. Exactly one of
// Failure or Completion is called, if set, before Run returns.
func (c *Console) Run(input Input, options RunOptions) Result {
	userOptions := option.Dedupe(input.Options)
	completeAll := options.CompleteAll || options.FollowUserOrder

	state := pipeline{arguments: slices.Clone(input.Arguments)}

	if options.FollowUserOrder {
		var consumed []option.Option
		for _, typed := range userOptions {
			for _, command := range c.commands {
				eligible := false
				switch command.mode {
				case MatchAny:
					eligible = command.declares(typed)
				case MatchSubset:
					eligible = command.declares(typed) &&
						command.ValidOptions(userOptions) &&
						!option.Contains(consumed, typed)
					if eligible {
						consumed = append(consumed, command.required...)
					}
				}
				if !eligible || !command.ValidArguments(state.arguments) {
					continue
				}
				state = c.fire(state, command, PhaseUserOrder, userOptions)
			}
		}
	}

	for _, command := range c.commands {
		if options.FollowUserOrder && command.mode != MatchExact {
			continue
		}
		if !command.ValidOptions(userOptions) || !command.ValidArguments(state.arguments) {
			continue
		}
		state = c.fire(state, command, PhaseRegistration, userOptions)
		if !completeAll {
			break
		}
	}

	result := Result{
		Matched:   len(state.fired) > 0,
		Arguments: state.arguments,
		Fired:     state.fired,
	}

	if !result.Matched {
		c.logger().Debug("no command matched",
			"options", option.Strings(userOptions),
			"arguments", argument.Texts(input.Arguments),
		)
		if c.Failure != nil {
			c.Failure()
		}
		return result
	}

	if c.Completion != nil {
		c.Completion(Invocation{Arguments: slices.Clone(result.Arguments)})
	}
	return result
}

// pipeline is the value folded through a run: the current argument
// list and the firings so far.
type pipeline struct {
	arguments []argument.Argument
	fired     []Firing
}

// fire invokes command's handler against state and returns the next
// state.
func (c *Console) fire(state pipeline, command *Command, phase Phase, userOptions []option.Option) pipeline {
	invocation := Invocation{
		Arguments: slices.Clone(state.arguments),
		Options:   command.ResponseOptions(userOptions),
	}

	var replacement []argument.Argument
	if command.run != nil {
		replacement = command.run(invocation)
	}

	firing := Firing{
		Command:   command.name,
		Phase:     phase,
		Arguments: invocation.Arguments,
		Options:   invocation.Options,
		Replaced:  len(replacement) > 0,
	}

	next := pipeline{
		arguments: state.arguments,
		fired:     append(slices.Clip(state.fired), firing),
	}
	if firing.Replaced {
		next.arguments = slices.Clone(replacement)
	}

	c.logger().Debug("command fired",
		"command", command.String(),
		"phase", phase.String(),
		"arguments", argument.Texts(firing.Arguments),
		"replaced", firing.Replaced,
	)
	return next
}

func (c *Console) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger.With("program", c.Name)
}
