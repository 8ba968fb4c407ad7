// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Cache keeps compiled tables in a directory, one file per distinct
// source, named by the source digest.
type Cache struct {
	// Directory holds the cache entries. It is created on first
	// write.
	Directory string

	// Compression is used for new entries.
	Compression Compression

	// Logger receives cache hits, misses, and write failures. Nil
	// disables logging.
	Logger *slog.Logger
}

// Path returns the entry path for a source digest.
func (c *Cache) Path(digest Digest) string {
	return filepath.Join(c.Directory, digest.String()+CompiledExtension)
}

// Load returns the validated table at path. A cached entry is used
// when one exists for the current source bytes; otherwise the source
// is parsed and validated and a new entry is written. Failing to
// write the entry is logged, not returned. Compiled files are read
// directly and never cached.
func (c *Cache) Load(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if format == FormatCompiled || IsCompiled(source) {
		table, err := Parse(source, format)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		table.defaultName(path)
		if err := ValidationError(table); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return table, nil
	}

	digest := SourceDigest(source)
	entryPath := c.Path(digest)
	logger := c.logger().With("table", path, "entry", entryPath)

	if table, err := c.read(entryPath, source); err == nil {
		logger.Debug("table cache hit")
		table.defaultName(path)
		return table, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("discarding table cache entry", "error", err)
	}

	table, err := Parse(source, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := ValidationError(table); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// Entries are shared by every path with the same bytes, so the
	// file-derived name is applied after compiling.
	compiled, err := Compile(table, source, c.Compression)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	table.defaultName(path)
	if err := os.MkdirAll(c.Directory, 0o755); err != nil {
		logger.Warn("creating table cache directory failed", "error", err)
		return table, nil
	}
	if err := WriteFile(entryPath, compiled); err != nil {
		logger.Warn("writing table cache entry failed", "error", err)
		return table, nil
	}
	logger.Debug("table cache miss", "compression", c.Compression.String())
	return table, nil
}

// read decodes and verifies one cache entry.
func (c *Cache) read(entryPath string, source []byte) (*Table, error) {
	data, err := os.ReadFile(entryPath)
	if err != nil {
		return nil, err
	}
	compiled, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := compiled.Verify(source); err != nil {
		return nil, err
	}
	return compiled.Table, nil
}

func (c *Cache) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// WriteFile atomically replaces path with data by writing a temporary
// file in the same directory and renaming it into place.
func WriteFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "table-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp table file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing table data: %w", err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		tmpFile.Close()
		return fmt.Errorf("setting table file mode: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp table file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming table file to %s: %w", path, err)
	}

	success = true
	return nil
}
