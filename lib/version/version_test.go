// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfo_UsesLinkerValues(t *testing.T) {
	saved := [...]string{Version, GitCommit, GitDirty, BuildTime}
	t.Cleanup(func() {
		Version, GitCommit, GitDirty, BuildTime = saved[0], saved[1], saved[2], saved[3]
	})

	Version, GitCommit, GitDirty, BuildTime = "1.2.3", "abc1234", "true", "2026-01-02T03:04:05Z"

	want := "1.2.3 (abc1234-dirty, 2026-01-02T03:04:05Z)"
	if got := Info(); got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
	if got := Short(); got != "1.2.3" {
		t.Errorf("Short() = %q, want 1.2.3", got)
	}
	if got := Full(); !strings.HasPrefix(got, want) || !strings.Contains(got, "Go: go") {
		t.Errorf("Full() = %q, want Info() followed by the Go version", got)
	}
}
