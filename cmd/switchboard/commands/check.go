// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/argument"
	"github.com/bureau-foundation/switchboard/lib/option"
)

type checkParams struct {
	cli.JSONOutput
	tableParams
	dispatchParams
}

// checkResult is the --json form of a dry run.
type checkResult struct {
	Table     string        `json:"table"`
	Matched   bool          `json:"matched"`
	ExitCode  int           `json:"exit_code"`
	Arguments []string      `json:"arguments"`
	Fired     []firingEntry `json:"fired"`
	Unknown   []string      `json:"unknown,omitempty"`
}

type firingEntry struct {
	Command   string            `json:"command"`
	Phase     string            `json:"phase"`
	Arguments []string          `json:"arguments"`
	Options   map[string]string `json:"options,omitempty"`
	Replaced  bool              `json:"replaced"`
}

func checkCommand() *cli.Command {
	var params checkParams

	return &cli.Command{
		Name:    "check",
		Summary: "Show which commands would fire, without running them",
		Description: `Dispatch the arguments like "switchboard run" with every action's
output discarded, then report each command that fired: the phase it
fired in, the arguments it saw, and the option values it received.
Emit actions still run, so chaining is reported as it would happen.

Always exits 0 unless the table cannot be loaded.`,
		Params:      &params,
		Arguments:   "ARGS...",
		Passthrough: true,
		Examples: []cli.Example{
			{
				Description: "Check a dispatch as JSON",
				Command:     "switchboard check --table tools.yaml --json -- deploy web",
			},
		},
		Run: func(streams cli.Streams, args []string) error {
			session, err := params.open("check", streams)
			if err != nil {
				return err
			}
			dispatcher, err := session.build(&params.tableParams, io.Discard)
			if err != nil {
				return err
			}

			outcome := dispatcher.Check(args, params.runOptions(session))
			result := checkResult{
				Table:     dispatcher.Table().Name,
				Matched:   outcome.Result.Matched,
				ExitCode:  outcome.ExitCode,
				Arguments: argument.Texts(outcome.Result.Arguments),
				Fired:     []firingEntry{},
				Unknown:   option.Strings(outcome.Unknown),
			}
			for _, firing := range outcome.Result.Fired {
				entry := firingEntry{
					Command:   firing.Command,
					Phase:     firing.Phase.String(),
					Arguments: argument.Texts(firing.Arguments),
					Replaced:  firing.Replaced,
				}
				for _, value := range firing.Options.Entries() {
					if entry.Options == nil {
						entry.Options = make(map[string]string)
					}
					entry.Options[value.Option.Name()] = value.Value.Text()
				}
				result.Fired = append(result.Fired, entry)
			}

			return params.Report(streams.Out, result, func(w io.Writer) error {
				return writeCheck(w, result)
			})
		},
	}
}

func writeCheck(w io.Writer, result checkResult) error {
	if len(result.Fired) == 0 {
		fmt.Fprintf(w, "no command matched (exit %d)\n", result.ExitCode)
	} else {
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		fmt.Fprintf(tw, "PHASE\tCOMMAND\tARGUMENTS\tOPTIONS\n")
		for _, entry := range result.Fired {
			arguments := strings.Join(entry.Arguments, " ")
			if entry.Replaced {
				arguments += " (replaced)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", entry.Phase, entry.Command, arguments, formatOptions(entry.Options))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "final arguments: %s\n", strings.Join(result.Arguments, " "))
	}
	for _, unknown := range result.Unknown {
		fmt.Fprintf(w, "undeclared option: %s\n", unknown)
	}
	return nil
}

// formatOptions renders option values as "name=value" pairs, sorted.
func formatOptions(options map[string]string) string {
	pairs := make([]string, 0, len(options))
	for name, value := range options {
		pairs = append(pairs, name+"="+value)
	}
	slices.Sort(pairs)
	return strings.Join(pairs, " ")
}
