// SPDX-License-Identifier: MPL-2.0

package modality

import (
	_ "embed"

	"github.com/modalities/modalities/pkg/cueutil"
)

//go:embed schema.cue
var schema string

// document is the decoded shape of a #Modalities CUE document.
type document struct {
	Modalities []string `json:"modalities"`
}

// ParseCUE validates data against the #Modalities schema and returns the Set it
// lists. filename is only used in error messages.
//
//	modalities: ["audio", "text"]
//
// Unknown names are rejected by the schema with a CUE path in the error, before
// FromNames ever runs.
func ParseCUE(data []byte, filename string) (Set, error) {
	result, err := cueutil.ParseAndDecode[document](
		schema,
		data,
		"#Modalities",
		cueutil.WithFilename(filename),
	)
	if err != nil {
		return None, err
	}
	return FromNames(result.Value.Modalities)
}
