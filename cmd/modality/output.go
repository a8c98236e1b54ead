// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/modalities/modalities/internal/config"
	"github.com/modalities/modalities/pkg/modality"
)

type (
	// setReport describes one modality set.
	setReport struct {
		Display string   `json:"display" toml:"display"`
		Bits    uint32   `json:"bits" toml:"bits"`
		Binary  string   `json:"binary" toml:"binary"`
		Names   []string `json:"names" toml:"names"`
	}

	// containsReport is printed by `modality contains`.
	containsReport struct {
		Set      modality.Set `json:"set" toml:"set"`
		Query    modality.Set `json:"query" toml:"query"`
		Contains bool         `json:"contains" toml:"contains"`
	}

	// flagEntry is one row of `modality list`.
	flagEntry struct {
		Name string `json:"name" toml:"name"`
		Bit  uint32 `json:"bit" toml:"bit"`
	}

	// listReport is printed by `modality list`.
	listReport struct {
		Modalities []flagEntry `json:"modalities" toml:"modalities"`
	}

	// namesReport is printed by `modality names`.
	namesReport struct {
		Names []string `json:"names" toml:"names"`
	}
)

func newSetReport(s modality.Set) setReport {
	return setReport{
		Display: s.String(),
		Bits:    s.Bits(),
		Binary:  binary(s),
		Names:   s.Names(),
	}
}

// binary renders the defined bits of s, most significant flag first.
func binary(s modality.Set) string {
	return fmt.Sprintf("0b%0*b", len(modality.Flags()), s.Bits())
}

// writeReport encodes report as JSON or TOML, or calls text for the text format.
func writeReport(w io.Writer, format config.OutputFormat, report any, text func(io.Writer) error) error {
	switch format {
	case config.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case config.OutputFormatTOML:
		return toml.NewEncoder(w).Encode(report)
	default:
		return text(w)
	}
}
