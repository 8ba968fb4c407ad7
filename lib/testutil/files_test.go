// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "table.yaml", "commands: []\n")
	if filepath.Base(path) != "table.yaml" {
		t.Errorf("path = %q, want a table.yaml file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "commands: []\n" {
		t.Errorf("content = %q", data)
	}
}

func TestDirNames(t *testing.T) {
	directory := t.TempDir()
	for _, name := range []string{"b.swb", "a.swb"} {
		if err := os.WriteFile(filepath.Join(directory, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	names := DirNames(t, directory)
	if len(names) != 2 || names[0] != "a.swb" || names[1] != "b.swb" {
		t.Errorf("DirNames() = %v, want [a.swb b.swb]", names)
	}
}
