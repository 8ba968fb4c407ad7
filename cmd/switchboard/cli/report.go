// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"io"
)

// JSONOutput adds --json to a params struct by embedding. Commands
// that produce a report build one value and hand it to
// [JSONOutput.Report] with a text renderer.
type JSONOutput struct {
	OutputJSON bool `flag:"json" desc:"write the report as JSON"`
}

// Report writes result as JSON when --json is set, and otherwise
// calls text to render it for people.
func (j JSONOutput) Report(w io.Writer, result any, text func(io.Writer) error) error {
	if j.OutputJSON {
		return WriteJSON(w, result)
	}
	return text(w)
}

// WriteJSON writes value as indented JSON. HTML escaping is off, so
// argument patterns such as "<string>" appear as typed.
func WriteJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}
