// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Profile: {
	name:       string & !=""
	modalities: [...("audio" | "image" | "text" | "video" | "other")]
	weight?:    int & >=0
}
`

type testProfile struct {
	Name       string   `json:"name"`
	Modalities []string `json:"modalities"`
	Weight     int      `json:"weight"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	data := []byte(`
name: "vision"
modalities: ["image", "video"]
weight: 3
`)
	result, err := ParseAndDecode[testProfile](testSchema, data, "#Profile", WithFilename("profile.cue"))
	if err != nil {
		t.Fatalf("ParseAndDecode returned error: %v", err)
	}
	if result.Value.Name != "vision" {
		t.Errorf("Name = %q, want %q", result.Value.Name, "vision")
	}
	if len(result.Value.Modalities) != 2 || result.Value.Modalities[1] != "video" {
		t.Errorf("Modalities = %v, want [image video]", result.Value.Modalities)
	}
	if result.Value.Weight != 3 {
		t.Errorf("Weight = %d, want 3", result.Value.Weight)
	}
	if !result.Unified.Exists() {
		t.Error("Unified value should exist")
	}
}

func TestParseAndDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		opts     []Option
		contains []string
	}{
		{
			name:     "schema violation names the path",
			data:     `name: "x", modalities: ["smell"]`,
			contains: []string{"profile.cue", "modalities[0]"},
		},
		{
			name:     "constraint violation",
			data:     `name: "x", modalities: [], weight: -1`,
			contains: []string{"profile.cue", "weight"},
		},
		{
			name:     "syntax error",
			data:     `name: `,
			contains: []string{"profile.cue"},
		},
		{
			name:     "concrete mode requires name",
			data:     `modalities: []`,
			opts:     []Option{WithConcrete(true)},
			contains: []string{"profile.cue", "name"},
		},
		{
			name:     "size limit",
			data:     `name: "a long enough document"`,
			opts:     []Option{WithMaxFileSize(8)},
			contains: []string{"profile.cue", "exceeds maximum 8 bytes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := append([]Option{WithFilename("profile.cue")}, tt.opts...)
			_, err := ParseAndDecode[testProfile](testSchema, []byte(tt.data), "#Profile", opts...)
			if err == nil {
				t.Fatalf("expected error for %q", tt.data)
			}
			for _, want := range tt.contains {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q should contain %q", err.Error(), want)
				}
			}
		})
	}
}

func TestParseAndDecode_MissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecode[testProfile](testSchema, []byte(`name: "x"`), "#Missing")
	if err == nil {
		t.Fatal("expected error for missing schema definition")
	}
	if !strings.Contains(err.Error(), "#Missing") {
		t.Errorf("error should name the definition, got: %v", err)
	}
}

func TestParseAndDecode_DefaultFilename(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecode[testProfile](testSchema, []byte(`name: 1`), "#Profile")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "<input>") {
		t.Errorf("error should use the <input> placeholder, got: %v", err)
	}
}
