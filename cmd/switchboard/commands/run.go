// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/dispatch"
	"github.com/bureau-foundation/switchboard/lib/option"
)

// dispatchParams are the run options shared by run and check. Each
// can only enable its option; the table and configuration may enable
// it too.
type dispatchParams struct {
	CompleteAll bool `flag:"complete-all" desc:"fire every matching command, not just the first"`
	FollowOrder bool `flag:"follow-order" desc:"fire any/subset commands in the order options were typed (implies --complete-all)"`
}

func (p *dispatchParams) runOptions(session *session) dispatch.RunOptions {
	return dispatch.RunOptions{
		CompleteAll:     p.CompleteAll || session.config.Dispatch.CompleteAll,
		FollowUserOrder: p.FollowOrder || session.config.Dispatch.FollowUserOrder,
	}
}

type runParams struct {
	tableParams
	dispatchParams
}

func runCommand() *cli.Command {
	var params runParams

	return &cli.Command{
		Name:    "run",
		Summary: "Dispatch arguments through a command table",
		Description: `Match the arguments against the table's commands and run the
actions of every command selected. Flag parsing stops at the first
argument that is not a switchboard flag, or at "--".

Exits 0 when a command fired. When none did, the table's failure
action runs and the exit status is the table's failure exit code
(default 1).`,
		Params:      &params,
		Arguments:   "ARGS...",
		Passthrough: true,
		Examples: []cli.Example{
			{
				Description: "Dispatch with an explicit table",
				Command:     "switchboard run --table tools.yaml -- deploy web --env=prod",
			},
			{
				Description: "Fire every matching command in typed option order",
				Command:     "switchboard run --table tools.yaml --follow-order -- -b -a",
			},
		},
		Run: func(streams cli.Streams, args []string) error {
			session, err := params.open("run", streams)
			if err != nil {
				return err
			}
			dispatcher, err := session.build(&params.tableParams, streams.Out)
			if err != nil {
				return err
			}

			outcome := dispatcher.Run(args, params.runOptions(session))
			if outcome.Err != nil {
				return outcome.Err
			}
			if outcome.Result.Matched {
				return nil
			}

			if failure := dispatcher.Table().Failure; failure != nil && failure.Suggest {
				printSuggestions(streams.Err, outcome.Unknown, dispatcher.Declared())
			}
			return &cli.ExitError{
				Code:   outcome.ExitCode,
				Reason: fmt.Sprintf("no command in table %q matched", dispatcher.Table().Name),
			}
		},
	}
}

// printSuggestions writes a "did you mean" line for each unknown
// option that is close to a declared one.
func printSuggestions(w io.Writer, unknown, declared []option.Option) {
	var candidates []string
	for _, known := range declared {
		if known.Long != "" {
			candidates = append(candidates, known.Long)
		}
		if known.Flag != 0 {
			candidates = append(candidates, string(known.Flag))
		}
	}

	for _, supplied := range unknown {
		suggestion := cli.Closest(supplied.Name(), candidates)
		if suggestion == "" {
			continue
		}
		fmt.Fprintf(w, "unknown option %s (did you mean %s?)\n", cli.Dashed(supplied.Name()), cli.Dashed(suggestion))
	}
}

