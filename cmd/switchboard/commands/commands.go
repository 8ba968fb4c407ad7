// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the switchboard command tree.
//
// Every subcommand that reads a command table shares [tableParams]:
// --config selects a configuration file (otherwise SWITCHBOARD_CONFIG,
// otherwise defaults), --table names the table (otherwise the config's
// table), and --log-level overrides the configured level. Tables are
// loaded through the compiled-table cache unless the config disables
// it or --no-cache is given.
package commands

import (
	"fmt"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/version"
)

// Root builds the complete command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "switchboard",
		Description: `switchboard: declarative command dispatch.

A command table declares commands as option and argument patterns with
print and emit actions. switchboard matches an argument vector against
the table and runs every command it selects.`,
		Subcommands: []*cli.Command{
			runCommand(),
			checkCommand(),
			listCommand(),
			compileCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(streams cli.Streams, args []string) error {
					_, err := fmt.Fprintf(streams.Out, "switchboard %s\n", version.Full())
					return err
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Dispatch arguments through a table",
				Command:     "switchboard run --table tools.yaml -- deploy web -v",
			},
			{
				Description: "See which commands would fire, without running them",
				Command:     "switchboard check --table tools.yaml -- deploy web -v",
			},
			{
				Description: "Show a table's commands",
				Command:     "switchboard list --table tools.yaml",
			},
			{
				Description: "Compile a table to the binary form",
				Command:     "switchboard compile --table tools.yaml --compression lz4",
			},
		},
	}
}
