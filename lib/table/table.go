// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"strconv"

	"github.com/bureau-foundation/switchboard/lib/dispatch"
)

// Table is a command table as authored on disk. Field tags serve
// YAML, JSON, and the CBOR compiled form.
type Table struct {
	// Name is the program name reported in logs and ${program}.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Description is shown by "switchboard list".
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// CompleteAll and FollowUserOrder are the table's default run
	// options. The command line can enable them but not disable them.
	CompleteAll     bool `json:"complete_all,omitempty" yaml:"complete_all,omitempty"`
	FollowUserOrder bool `json:"follow_user_order,omitempty" yaml:"follow_user_order,omitempty"`

	// Commands in priority order.
	Commands []Command `json:"commands" yaml:"commands"`

	// Completion runs after a dispatch in which a command fired.
	Completion *Completion `json:"completion,omitempty" yaml:"completion,omitempty"`

	// Failure runs after a dispatch in which nothing fired.
	Failure *Failure `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// Command is one command pattern and its action.
type Command struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Mode is "exact" (the default), "any", or "subset".
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Options are option literals accepted by option.Parse.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`

	// Inputs are pattern literals accepted by argument.ParsePattern.
	Inputs []string `json:"inputs,omitempty" yaml:"inputs,omitempty"`

	// Print is expanded and written, followed by a newline.
	Print string `json:"print,omitempty" yaml:"print,omitempty"`

	// Emit is the replacement argument list. Each element is expanded
	// and parsed with argument.Parse; an element that is exactly
	// "${@}" splices in the current arguments unchanged.
	Emit []string `json:"emit,omitempty" yaml:"emit,omitempty"`
}

// Completion is the action run after a successful dispatch.
type Completion struct {
	Print string `json:"print,omitempty" yaml:"print,omitempty"`
}

// Failure is the action run when no command matched.
type Failure struct {
	Print string `json:"print,omitempty" yaml:"print,omitempty"`

	// Exit is the process exit status reported for the failure,
	// 1..125. Zero means 1.
	Exit int `json:"exit,omitempty" yaml:"exit,omitempty"`

	// Suggest asks the CLI to suggest the closest declared option
	// for options no command declares.
	Suggest bool `json:"suggest,omitempty" yaml:"suggest,omitempty"`
}

// RunOptions returns the table's default run options.
func (t *Table) RunOptions() dispatch.RunOptions {
	return dispatch.RunOptions{
		CompleteAll:     t.CompleteAll,
		FollowUserOrder: t.FollowUserOrder,
	}
}

// ExitCode returns the failure exit status, defaulting to 1.
func (t *Table) ExitCode() int {
	if t.Failure == nil || t.Failure.Exit == 0 {
		return 1
	}
	return t.Failure.Exit
}

// DisplayName returns the command's name, or "#N" (1-based) for
// unnamed commands.
func (c *Command) DisplayName(index int) string {
	if c.Name != "" {
		return c.Name
	}
	return "#" + strconv.Itoa(index+1)
}
