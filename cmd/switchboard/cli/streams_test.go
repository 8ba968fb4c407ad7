// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestStreams_Logger(t *testing.T) {
	var errOut bytes.Buffer
	Streams{Err: &errOut}.Logger(slog.LevelInfo).Info("loaded", "table", "tools")
	if !strings.Contains(errOut.String(), `"table":"tools"`) {
		t.Errorf("log output = %q, want a JSON record on a non-terminal", errOut.String())
	}

	var text bytes.Buffer
	newLogger(&text, true, slog.LevelInfo).Info("loaded", "table", "tools")
	if !strings.Contains(text.String(), "table=tools") {
		t.Errorf("terminal output = %q, want key=value", text.String())
	}

	var filtered bytes.Buffer
	Streams{Err: &filtered}.Logger(slog.LevelWarn).Info("hidden")
	if filtered.Len() != 0 {
		t.Errorf("info record written at warn level: %q", filtered.String())
	}

	// A nil stream discards.
	Streams{}.Logger(slog.LevelDebug).Debug("dropped")
}

func TestJSONOutput_Report(t *testing.T) {
	type report struct {
		Inputs []string `json:"inputs"`
	}
	result := report{Inputs: []string{"deploy", "<string>"}}
	text := func(w io.Writer) error {
		_, err := io.WriteString(w, "deploy <string>\n")
		return err
	}

	var plain bytes.Buffer
	if err := (JSONOutput{}).Report(&plain, result, text); err != nil {
		t.Fatalf("Report() error: %v", err)
	}
	if plain.String() != "deploy <string>\n" {
		t.Errorf("text report = %q", plain.String())
	}

	var structured bytes.Buffer
	if err := (JSONOutput{OutputJSON: true}).Report(&structured, result, text); err != nil {
		t.Fatalf("Report() error: %v", err)
	}
	want := "{\n  \"inputs\": [\n    \"deploy\",\n    \"<string>\"\n  ]\n}\n"
	if structured.String() != want {
		t.Errorf("JSON report = %q, want %q", structured.String(), want)
	}
}
