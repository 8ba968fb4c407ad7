// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command switchboard dispatches argument vectors through declarative
// command tables. See "switchboard --help".
package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/cmd/switchboard/commands"
)

func main() {
	err := commands.Root().Execute(cli.Standard(), os.Args[1:])
	code, handled := cli.ExitStatus(err)
	if !handled {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(code)
}
