// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/codec"
	"github.com/bureau-foundation/switchboard/lib/table"
)

type compileParams struct {
	tableParams
	Output      string `flag:"output,o" desc:"output path (default: the table path with a .swb extension)"`
	Compression string `flag:"compression" desc:"payload compression: none, lz4, zstd (default: from config)"`
	Diagnose    bool   `flag:"diagnose" desc:"print the CBOR diagnostic notation of the payload instead of writing a file"`
}

func compileCommand() *cli.Command {
	var params compileParams

	return &cli.Command{
		Name:    "compile",
		Summary: "Compile a table to the binary form",
		Description: `Validate a YAML or JSONC table and write its compiled form: a header
carrying the compression algorithm and a BLAKE3 digest of the source,
followed by the table encoded as deterministic CBOR. Compiled tables
load without text parsing and can be passed to --table directly.`,
		Params: &params,
		Examples: []cli.Example{
			{
				Description: "Compile next to the source with lz4",
				Command:     "switchboard compile --table tools.yaml --compression lz4",
			},
			{
				Description: "Inspect the encoded payload",
				Command:     "switchboard compile --table tools.yaml --diagnose",
			},
		},
		Run: func(streams cli.Streams, args []string) error {
			session, err := params.open("compile", streams)
			if err != nil {
				return err
			}
			path, err := session.tablePath(&params.tableParams)
			if err != nil {
				return err
			}

			format, err := table.FormatFromPath(path)
			if err != nil {
				return err
			}
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			if format == table.FormatCompiled || table.IsCompiled(source) {
				return fmt.Errorf("%s is already compiled", path)
			}
			parsed, err := table.Parse(source, format)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if parsed.Name == "" {
				parsed.Name = table.NameFromPath(path)
			}
			if err := table.ValidationError(parsed); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if params.Diagnose {
				payload, err := codec.Marshal(parsed)
				if err != nil {
					return fmt.Errorf("encoding table: %w", err)
				}
				diagnostic, err := codec.Diagnose(payload)
				if err != nil {
					return fmt.Errorf("diagnosing payload: %w", err)
				}
				_, err = fmt.Fprintln(streams.Out, diagnostic)
				return err
			}

			compressionName := params.Compression
			if compressionName == "" {
				compressionName = session.config.Cache.Compression
			}
			compression, err := table.ParseCompression(compressionName)
			if err != nil {
				return err
			}

			compiled, err := table.Compile(parsed, source, compression)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputPath := params.Output
			if outputPath == "" {
				outputPath = strings.TrimSuffix(path, filepath.Ext(path)) + table.CompiledExtension
			}
			if err := table.WriteFile(outputPath, compiled); err != nil {
				return err
			}

			session.logger.Info("compiled table",
				"table", parsed.Name,
				"output", outputPath,
				"bytes", len(compiled),
				"digest", table.SourceDigest(source).String(),
			)
			_, err = fmt.Fprintf(streams.Out, "%s: %d commands, %d bytes\n", outputPath, len(parsed.Commands), len(compiled))
			return err
		},
	}
}
