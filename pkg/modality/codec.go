// SPDX-License-Identifier: MPL-2.0

package modality

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler using the String form.
func (s Set) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseString.
// s is left unchanged on error.
func (s *Set) UnmarshalText(text []byte) error {
	parsed, err := ParseString(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON encodes s as an array of names in declaration order.
// The empty set encodes as [].
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// UnmarshalJSON accepts an array of names, a string in String form, or an
// integer bitmask. Integers with bits outside All are rejected. JSON null
// leaves s unchanged.
func (s *Set) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("decode modality set: empty input")
	}

	var (
		parsed Set
		err    error
	)
	switch data[0] {
	case 'n':
		if string(data) == "null" {
			return nil
		}
		return fmt.Errorf("decode modality set: unexpected input %s", data)
	case '[':
		var names []string
		if err = json.Unmarshal(data, &names); err != nil {
			return fmt.Errorf("decode modality set: %w", err)
		}
		parsed, err = FromNames(names)
	case '"':
		var text string
		if err = json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("decode modality set: %w", err)
		}
		parsed, err = ParseString(text)
	default:
		var bits uint32
		if err = json.Unmarshal(data, &bits); err != nil {
			return fmt.Errorf("decode modality set: %w", err)
		}
		parsed, err = FromBits(bits)
	}
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
