// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/switchboard/lib/argument"
	"github.com/bureau-foundation/switchboard/lib/dispatch"
	"github.com/bureau-foundation/switchboard/lib/option"
)

// Validate checks a table for structural problems and returns a
// description of each one. An empty result means the table can be
// built.
func Validate(table *Table) []string {
	var issues []string

	if len(table.Commands) == 0 {
		issues = append(issues, "commands: at least one command is required")
	}

	seen := make(map[string]int)
	for i := range table.Commands {
		command := &table.Commands[i]
		prefix := fmt.Sprintf("commands[%d]", i)
		if command.Name != "" {
			prefix += " (" + command.Name + ")"
			if first, duplicate := seen[command.Name]; duplicate {
				issues = append(issues, fmt.Sprintf("%s: duplicate name, first used by commands[%d]", prefix, first))
			} else {
				seen[command.Name] = i
			}
		}
		issues = append(issues, validateCommand(command, prefix)...)
	}

	if table.Failure != nil && table.Failure.Exit != 0 && (table.Failure.Exit < 1 || table.Failure.Exit > 125) {
		issues = append(issues, fmt.Sprintf("failure.exit: %d is outside 1..125", table.Failure.Exit))
	}

	return issues
}

func validateCommand(command *Command, prefix string) []string {
	var issues []string

	mode, err := dispatch.ParseMatchMode(command.Mode)
	if err != nil {
		issues = append(issues, fmt.Sprintf("%s: mode: %v", prefix, err))
	}

	var declared []option.Option
	for j, literal := range command.Options {
		parsed, err := option.Parse(literal)
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s: options[%d]: %v", prefix, j, err))
			continue
		}
		if parsed.IsAny() {
			mode = dispatch.MatchAny
			continue
		}
		if parsed.IsSubset() {
			if mode != dispatch.MatchAny {
				mode = dispatch.MatchSubset
			}
			continue
		}
		if option.Contains(declared, parsed) {
			issues = append(issues, fmt.Sprintf("%s: options[%d]: %s is declared twice", prefix, j, literal))
			continue
		}
		declared = append(declared, parsed)
	}

	if mode == dispatch.MatchAny && len(declared) == 0 && err == nil {
		issues = append(issues, fmt.Sprintf("%s: an any-mode command needs at least one option, otherwise it never matches", prefix))
	}

	for j, literal := range command.Inputs {
		if _, err := argument.ParsePattern(literal); err != nil {
			issues = append(issues, fmt.Sprintf("%s: inputs[%d]: %v", prefix, j, err))
		}
	}

	for j, template := range command.Emit {
		if strings.TrimSpace(template) == "" {
			issues = append(issues, fmt.Sprintf("%s: emit[%d]: empty element", prefix, j))
		}
	}

	return issues
}

// ValidationError returns nil for a valid table and otherwise an
// error joining every problem [Validate] reports.
func ValidationError(table *Table) error {
	issues := Validate(table)
	if len(issues) == 0 {
		return nil
	}
	errs := make([]error, len(issues))
	for i, issue := range issues {
		errs[i] = errors.New(issue)
	}
	return fmt.Errorf("invalid table: %w", errors.Join(errs...))
}
