// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

type sampleCommand struct {
	Name    string   `json:"name"`
	Mode    string   `json:"mode,omitempty"`
	Options []string `json:"options,omitempty"`
}

func TestMarshal_Deterministic(t *testing.T) {
	first, err := Marshal(map[string]any{"zeta": 1, "alpha": 2, "mid": []string{"a"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Marshal(map[string]any{"mid": []string{"a"}, "alpha": 2, "zeta": 1})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("encodings differ for equal maps:\n%x\n%x", first, second)
	}
}

func TestUnmarshal_JSONTags(t *testing.T) {
	original := sampleCommand{Name: "deploy", Options: []string{"-v--verbose"}}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleCommand
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != original.Name || len(decoded.Options) != 1 || decoded.Options[0] != "-v--verbose" {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}

	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(diagnostic, `"name"`) || strings.Contains(diagnostic, `"mode"`) {
		t.Errorf("diagnostic %s: want a name key and no omitted mode key", diagnostic)
	}
}

func TestUnmarshal_AnyMapsUseStringKeys(t *testing.T) {
	data, err := Marshal(map[string]any{"outer": map[string]any{"inner": "x"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	outer, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded type = %T, want map[string]any", decoded)
	}
	if _, ok := outer["outer"].(map[string]any); !ok {
		t.Errorf("nested type = %T, want map[string]any", outer["outer"])
	}
}
