// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies a table file encoding.
type Format uint8

const (
	// FormatYAML is YAML, parsed with gopkg.in/yaml.v3.
	FormatYAML Format = iota + 1

	// FormatJSONC is JSON with comments and trailing commas.
	FormatJSONC

	// FormatCompiled is the binary form written by [Compile].
	FormatCompiled
)

// String returns "yaml", "jsonc", or "compiled".
func (format Format) String() string {
	switch format {
	case FormatYAML:
		return "yaml"
	case FormatJSONC:
		return "jsonc"
	case FormatCompiled:
		return "compiled"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(format))
	}
}

// FormatFromPath picks the format from a file extension. Compiled
// data is also recognized by content in [Parse], whatever the name.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	case CompiledExtension:
		return FormatCompiled, nil
	default:
		return 0, fmt.Errorf("unrecognized table extension %q (want .yaml, .yml, .json, .jsonc, or %s)",
			filepath.Ext(path), CompiledExtension)
	}
}

// Parse decodes table data in the given format. Data that starts with
// the compiled-table magic is decoded as compiled regardless of
// format.
func Parse(data []byte, format Format) (*Table, error) {
	if IsCompiled(data) {
		compiled, err := Decode(data)
		if err != nil {
			return nil, err
		}
		return compiled.Table, nil
	}

	var table Table
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&table); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parsing table: empty document")
			}
			return nil, fmt.Errorf("parsing table: %w", err)
		}

	case FormatJSONC:
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&table); err != nil {
			return nil, fmt.Errorf("parsing table: %w", err)
		}

	case FormatCompiled:
		return nil, fmt.Errorf("parsing table: %w", ErrNotCompiled)

	default:
		return nil, fmt.Errorf("parsing table: unsupported format %s", format)
	}

	return &table, nil
}

// ReadFile reads a table file and parses it in the format its
// extension names. It does not validate; see [Load].
func ReadFile(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	table, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	table.defaultName(path)
	return table, nil
}

// Load reads a table file and validates it, returning every
// validation problem in one error.
func Load(path string) (*Table, error) {
	table, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ValidationError(table); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// NameFromPath extracts a table name from a file path by stripping
// the directory prefix and the file extension. For example,
// "tables/deploy.yaml" returns "deploy".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// defaultName fills Name from path when the file does not set one.
func (t *Table) defaultName(path string) {
	if t.Name == "" {
		t.Name = NameFromPath(path)
	}
}
