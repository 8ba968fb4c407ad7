// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/bureau-foundation/switchboard/lib/argument"
	"github.com/bureau-foundation/switchboard/lib/argv"
	"github.com/bureau-foundation/switchboard/lib/dispatch"
	"github.com/bureau-foundation/switchboard/lib/option"
)

// BuildOptions configures [Build].
type BuildOptions struct {
	// Output receives print actions. Nil means io.Discard.
	Output io.Writer

	// Logger is passed to every console the dispatcher creates.
	Logger *slog.Logger
}

// Dispatcher runs invocations against a validated table.
type Dispatcher struct {
	table    *Table
	commands []builtCommand
	declared []option.Option
	output   io.Writer
	logger   *slog.Logger
}

// builtCommand is a table command with its patterns parsed.
type builtCommand struct {
	definition dispatch.Definition
	print      string
	emit       []string
}

// Outcome is the result of [Dispatcher.Run].
type Outcome struct {
	Result dispatch.Result

	// ExitCode is 0 when a command fired and the table's failure exit
	// status otherwise.
	ExitCode int

	// Unknown lists user options that no command declares.
	Unknown []option.Option

	// Err is the first error writing output, if any.
	Err error
}

// Build validates table and prepares it for dispatch.
func Build(table *Table, options BuildOptions) (*Dispatcher, error) {
	if err := ValidationError(table); err != nil {
		return nil, err
	}

	output := options.Output
	if output == nil {
		output = io.Discard
	}
	dispatcher := &Dispatcher{
		table:  table,
		output: output,
		logger: options.Logger,
	}

	for index, source := range table.Commands {
		mode, err := dispatch.ParseMatchMode(source.Mode)
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", source.DisplayName(index), err)
		}
		declared, err := option.ParseAll(source.Options)
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", source.DisplayName(index), err)
		}
		inputs, err := argument.ParsePatterns(source.Inputs)
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", source.DisplayName(index), err)
		}

		for _, candidate := range declared {
			if !candidate.IsSentinel() && !option.Contains(dispatcher.declared, candidate) {
				dispatcher.declared = append(dispatcher.declared, candidate.Identity())
			}
		}

		dispatcher.commands = append(dispatcher.commands, builtCommand{
			definition: dispatch.Definition{
				Name:    source.DisplayName(index),
				Mode:    mode,
				Options: declared,
				Inputs:  inputs,
			},
			print: source.Print,
			emit:  slices.Clone(source.Emit),
		})
	}
	return dispatcher, nil
}

// Table returns the table the dispatcher was built from.
func (d *Dispatcher) Table() *Table {
	return d.table
}

// Declared returns every option declared by some command, in
// declaration order, without mode markers.
func (d *Dispatcher) Declared() []option.Option {
	return slices.Clone(d.declared)
}

// Console returns a new console with the table's commands registered,
// whose handlers write print actions to output. Completion and
// Failure are left unset.
func (d *Dispatcher) Console(output io.Writer) *dispatch.Console {
	var errs writeErrors
	return d.console(output, &errs)
}

func (d *Dispatcher) console(output io.Writer, errs *writeErrors) *dispatch.Console {
	console := dispatch.NewConsole(d.table.Name)
	console.Logger = d.logger
	for _, built := range d.commands {
		definition := built.definition
		definition.Run = d.handler(built, output, errs)
		console.Command(definition)
	}
	return console
}

// handler turns a command's print and emit actions into a handler.
func (d *Dispatcher) handler(built builtCommand, output io.Writer, errs *writeErrors) dispatch.Handler {
	if built.print == "" && len(built.emit) == 0 {
		return nil
	}
	return func(invocation dispatch.Invocation) []argument.Argument {
		scope := Scope{
			Program:   d.table.Name,
			Arguments: invocation.Arguments,
			Options:   invocation.Options,
		}
		if built.print != "" {
			errs.record(fmt.Fprintln(output, Expand(built.print, scope)))
		}
		if len(built.emit) == 0 {
			return nil
		}
		return emit(built.emit, scope)
	}
}

// Run tokenizes args, dispatches them, and performs the table's
// completion or failure action.
func (d *Dispatcher) Run(args []string, options dispatch.RunOptions) Outcome {
	return d.run(args, options, d.output)
}

// Check dispatches args like [Dispatcher.Run] but discards all output.
func (d *Dispatcher) Check(args []string, options dispatch.RunOptions) Outcome {
	return d.run(args, options, io.Discard)
}

func (d *Dispatcher) run(args []string, options dispatch.RunOptions, output io.Writer) Outcome {
	userOptions, arguments := argv.Split(args)
	userValues := valuesOf(option.Dedupe(userOptions))

	var errs writeErrors
	console := d.console(output, &errs)
	if completion := d.table.Completion; completion != nil && completion.Print != "" {
		console.Completion = func(invocation dispatch.Invocation) {
			errs.record(fmt.Fprintln(output, Expand(completion.Print, Scope{
				Program:   d.table.Name,
				Arguments: invocation.Arguments,
				Options:   userValues,
			})))
		}
	}
	if failure := d.table.Failure; failure != nil && failure.Print != "" {
		console.Failure = func() {
			errs.record(fmt.Fprintln(output, Expand(failure.Print, Scope{
				Program:   d.table.Name,
				Arguments: arguments,
				Options:   userValues,
			})))
		}
	}

	effective := d.table.RunOptions()
	effective.CompleteAll = effective.CompleteAll || options.CompleteAll
	effective.FollowUserOrder = effective.FollowUserOrder || options.FollowUserOrder

	result := console.Run(dispatch.Input{Options: userOptions, Arguments: arguments}, effective)

	outcome := Outcome{Result: result, Err: errs.first}
	if !result.Matched {
		outcome.ExitCode = d.table.ExitCode()
	}
	for _, supplied := range option.Dedupe(userOptions) {
		if !option.Contains(d.declared, supplied) {
			outcome.Unknown = append(outcome.Unknown, supplied)
		}
	}
	return outcome
}

// writeErrors keeps the first output error of a run.
type writeErrors struct {
	first error
}

func (w *writeErrors) record(_ int, err error) {
	if err != nil && w.first == nil {
		w.first = fmt.Errorf("writing output: %w", err)
	}
}
