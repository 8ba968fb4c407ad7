// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is one node of the switchboard command tree.
type Command struct {
	// Name is the word that selects this command (e.g., "run").
	Name string

	// Summary is the one-line description in the parent's listing.
	Summary string

	// Description is the detailed text of the command's own help.
	Description string

	// Examples follow the flag listing in help.
	Examples []Example

	// Params points to a struct whose tagged fields become the
	// command's flags (see [Bind]). The fields are reset to their
	// defaults and bound again on every Execute. Nil means the
	// command takes no flags.
	Params any

	// Arguments names the positional arguments in the usage line
	// (e.g., "ARGS..."). A command with no Arguments rejects
	// positional arguments before Run is called.
	Arguments string

	// Passthrough stops flag parsing at the first positional argument
	// or at "--", so the remaining arguments reach Run verbatim. The
	// dispatch commands use it to forward switches meant for a
	// command table.
	Passthrough bool

	// Subcommands are selected by the first positional argument.
	Subcommands []*Command

	// Run receives the streams and the arguments left after flag
	// parsing. When Subcommands are also set, Run handles arguments
	// that name no subcommand.
	Run func(streams Streams, args []string) error

	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	Description string
	Command     string
}

// Execute routes args through the tree and runs the selected command.
// Help goes to streams.Err; nil writers discard.
func (c *Command) Execute(streams Streams, args []string) error {
	streams = streams.orDiscard()
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(streams.Err)
		return nil
	}

	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if sub := c.subcommand(args[0]); sub != nil {
			sub.parent = c
			return sub.Execute(streams, args[1:])
		}
		if c.Run == nil {
			return c.unknownCommand(args[0])
		}
	}

	if c.Run == nil {
		c.PrintHelp(streams.Err)
		if len(args) == 0 {
			return errors.New("subcommand required")
		}
		return fmt.Errorf("subcommand required (got flag %q)", args[0])
	}

	args, err := c.parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		c.PrintHelp(streams.Err)
		return nil
	}
	if err != nil {
		return err
	}

	if c.Arguments == "" && len(args) > 0 {
		return fmt.Errorf("unexpected argument %q\n\nRun '%s --help' for usage.", args[0], c.fullName())
	}
	return c.Run(streams, args)
}

func (c *Command) subcommand(name string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

func (c *Command) unknownCommand(name string) error {
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		return fmt.Errorf("unknown command %q (did you mean %q?)\n\nRun '%s --help' for usage.",
			name, suggestion, c.fullName())
	}
	return fmt.Errorf("unknown command %q\n\nRun '%s --help' for usage.", name, c.fullName())
}

// parseFlags binds Params and parses args, returning the positional
// arguments. Unknown flags get a suggestion from the defined set.
func (c *Command) parseFlags(args []string) ([]string, error) {
	flagSet := c.flagSet()
	if flagSet == nil {
		if c.Passthrough {
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			return args, nil
		}
		flagSet = pflag.NewFlagSet(c.Name, pflag.ContinueOnError)
		flagSet.SetOutput(io.Discard)
	}

	err := flagSet.Parse(args)
	if err == nil {
		return flagSet.Args(), nil
	}
	if errors.Is(err, pflag.ErrHelp) {
		return nil, err
	}

	var notExist *pflag.NotExistError
	if errors.As(err, &notExist) {
		if suggestion := suggestFlag(notExist.GetSpecifiedName(), flagSet); suggestion != "" {
			return nil, fmt.Errorf("%v (did you mean %s?)\n\nRun '%s --help' for usage.",
				err, suggestion, c.fullName())
		}
	}
	return nil, fmt.Errorf("%v\n\nRun '%s --help' for usage.", err, c.fullName())
}

// flagSet builds the command's flags from Params, or returns nil.
func (c *Command) flagSet() *pflag.FlagSet {
	if c.Params == nil {
		return nil
	}
	flagSet := pflag.NewFlagSet(c.Name, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.SetInterspersed(!c.Passthrough)
	if err := Bind(c.Params, flagSet); err != nil {
		panic(fmt.Sprintf("cli: %s params: %v", c.fullName(), err))
	}
	return flagSet
}

// usage synthesizes the usage line from the tree and the flags.
func (c *Command) usage() string {
	var builder strings.Builder
	builder.WriteString(c.fullName())
	if len(c.Subcommands) > 0 {
		builder.WriteString(" <command>")
	}
	if c.Params != nil || len(c.Subcommands) > 0 {
		builder.WriteString(" [flags]")
	}
	if c.Arguments != "" {
		if c.Passthrough {
			builder.WriteString(" [--]")
		}
		builder.WriteString(" " + c.Arguments)
	}
	return builder.String()
}

// PrintHelp writes the command's help to w.
func (c *Command) PrintHelp(w io.Writer) {
	switch {
	case c.Description != "":
		fmt.Fprintf(w, "%s\n\n", c.Description)
	case c.Summary != "":
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", c.usage())

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	if flagSet := c.flagSet(); flagSet != nil {
		if usage := flagSet.FlagUsages(); usage != "" {
			fmt.Fprintf(w, "\nFlags:\n%s", usage)
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", c.fullName())
	}
}

// fullName returns the command path, e.g. "switchboard run".
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
