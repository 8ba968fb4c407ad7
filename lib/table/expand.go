// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"regexp"
	"strconv"

	"github.com/bureau-foundation/switchboard/lib/argument"
	"github.com/bureau-foundation/switchboard/lib/option"
)

// Scope is what ${...} references in an action resolve against.
type Scope struct {
	Program   string
	Arguments []argument.Argument
	Options   option.Values
}

// varPattern matches ${NAME} and ${NAME:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// Expand substitutes ${...} references in template. Unset references
// expand to their default, or to the empty string without one.
func Expand(template string, scope Scope) string {
	return varPattern.ReplaceAllStringFunc(template, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value, ok := scope.resolve(parts[1]); ok {
			return value
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}

// resolve looks up one reference name.
func (s Scope) resolve(name string) (string, bool) {
	switch name {
	case "@":
		if len(s.Arguments) == 0 {
			return "", false
		}
		return argument.Join(s.Arguments, " "), true
	case "#":
		return strconv.Itoa(len(s.Arguments)), true
	case "program":
		return s.Program, s.Program != ""
	}

	if index, err := strconv.Atoi(name); err == nil {
		if index < 1 || index > len(s.Arguments) {
			return "", false
		}
		return s.Arguments[index-1].Text(), true
	}

	value, ok := s.Options.Lookup(name)
	if !ok {
		return "", false
	}
	return value.Text(), true
}

// spliceAll is the emit element that passes the current arguments
// through unchanged.
const spliceAll = "${@}"

// emit expands an emit list into a replacement argument list.
func emit(templates []string, scope Scope) []argument.Argument {
	var arguments []argument.Argument
	for _, template := range templates {
		if template == spliceAll {
			arguments = append(arguments, scope.Arguments...)
			continue
		}
		arguments = append(arguments, argument.Parse(Expand(template, scope)))
	}
	return arguments
}

// valuesOf builds option values straight from the user's options,
// for actions that run outside any one command: valueless options
// map to Int(1), others to their attached value.
func valuesOf(options []option.Option) option.Values {
	var values option.Values
	for _, supplied := range options {
		if supplied.HasValue() {
			values.Set(supplied, supplied.Value)
		} else {
			values.Set(supplied, argument.Int(1))
		}
	}
	return values
}
