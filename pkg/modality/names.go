// SPDX-License-Identifier: MPL-2.0

package modality

import (
	"fmt"
	"strings"
)

const (
	// NameAudio is the name of Audio.
	NameAudio = "audio"
	// NameImage is the name of Image.
	NameImage = "image"
	// NameText is the name of Text.
	NameText = "text"
	// NameVideo is the name of Video.
	NameVideo = "video"
	// NameOther is the name of Other.
	NameOther = "other"

	// noneLiteral renders the empty set. It is not a modality name, so
	// FromNames rejects it.
	noneLiteral = "none"
	// Separator joins member names in String.
	Separator = " | "
)

// vocabulary is in declaration order, which is also bit order.
var vocabulary = [...]struct {
	flag Set
	name string
}{
	{Audio, NameAudio},
	{Image, NameImage},
	{Text, NameText},
	{Video, NameVideo},
	{Other, NameOther},
}

// ValidNames returns every modality name in declaration order.
func ValidNames() []string {
	out := make([]string, 0, len(vocabulary))
	for _, entry := range vocabulary {
		out = append(out, entry.name)
	}
	return out
}

// Names returns the names of the modalities in s in declaration order
// (audio, image, text, video, other). The result is empty, never nil, iff s
// has no defined modalities.
func (s Set) Names() []string {
	names := make([]string, 0, len(vocabulary))
	for _, entry := range vocabulary {
		if s.Contains(entry.flag) {
			names = append(names, entry.name)
		}
	}
	return names
}

// FromName returns the single-modality Set for name. Matching is exact and
// case-sensitive.
func FromName(name string) (Set, error) {
	for _, entry := range vocabulary {
		if entry.name == name {
			return entry.flag, nil
		}
	}
	return None, &InvalidNameError{Name: name}
}

// FromNames returns the union of the modalities named in names.
//
// The first unrecognized name stops parsing and is reported as an
// *InvalidNameError; no partial set is returned. An empty slice yields None and
// repeated names are harmless.
func FromNames(names []string) (Set, error) {
	set := None
	for _, name := range names {
		flag, err := FromName(name)
		if err != nil {
			return None, err
		}
		set = set.Union(flag)
	}
	return set, nil
}

// MustFromNames is like FromNames but panics on an invalid name.
// It is intended for package-level variables built from literals.
func MustFromNames(names ...string) Set {
	s, err := FromNames(names)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseString parses the String form of a Set: member names separated by '|'.
// Commas are accepted as separators as well and whitespace around names is
// ignored, so "audio|text", "audio, text" and "audio | text" are equivalent.
// The literal "none" and a blank string both yield None.
func ParseString(s string) (Set, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == noneLiteral {
		return None, nil
	}

	fields := strings.FieldsFunc(trimmed, func(r rune) bool { return r == '|' || r == ',' })
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		if name := strings.TrimSpace(field); name != "" {
			names = append(names, name)
		}
	}
	return FromNames(names)
}

// String renders s as its member names joined by " | ", or "none" for the empty
// set. Bits outside All are appended in hex so that no value renders as an
// empty string.
func (s Set) String() string {
	names := s.Names()
	if unknown := uint32(s.Difference(All)); unknown != 0 {
		names = append(names, fmt.Sprintf("%#x", unknown))
	}
	if len(names) == 0 {
		return noneLiteral
	}
	return strings.Join(names, Separator)
}

// GoString implements fmt.GoStringer for %#v.
func (s Set) GoString() string {
	return "modality.Set(" + s.String() + ")"
}
