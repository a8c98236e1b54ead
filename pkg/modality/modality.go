// SPDX-License-Identifier: MPL-2.0

package modality

import (
	"github.com/modalities/modalities/internal/bitflag"
)

// Set is a set of modalities encoded as a bitmask. The zero value is None.
//
// Every valid Set has no bits outside All. Union and Intersect of valid sets are
// always valid; only conversions from raw integers can produce values outside All,
// see FromBits and Validate.
type Set uint32

const (
	// Audio is the audio modality (bit 0).
	Audio Set = 1 << iota
	// Image is the still image modality (bit 1).
	Image
	// Text is the text modality (bit 2).
	Text
	// Video is the video modality (bit 3).
	Video
	// Other covers any modality without a dedicated flag (bit 4).
	Other

	// None is the empty set.
	None Set = 0
	// All is the union of every defined modality.
	All = Audio | Image | Text | Video | Other
)

// Flags returns every single-modality Set in declaration order.
func Flags() []Set {
	out := make([]Set, 0, len(vocabulary))
	for _, entry := range vocabulary {
		out = append(out, entry.flag)
	}
	return out
}

// Union returns the set of modalities present in a or b.
func Union(a, b Set) Set { return a.Union(b) }

// Intersect returns the set of modalities present in both a and b.
func Intersect(a, b Set) Set { return a.Intersect(b) }

// Contains reports whether every modality in query is also in set.
// See Set.Contains for the behavior of an empty query.
func Contains(set, query Set) bool { return set.Contains(query) }

// Union returns the set of modalities present in s or other.
func (s Set) Union(other Set) Set { return bitflag.Add(s, other) }

// Intersect returns the set of modalities present in both s and other.
func (s Set) Intersect(other Set) Set { return bitflag.Mask(s, other) }

// Difference returns the modalities of s that are not in other.
func (s Set) Difference(other Set) Set { return bitflag.Remove(s, other) }

// Contains reports whether query is a subset of s: every modality in query
// must be present in s, so a multi-modality query requires all of its members.
//
// The empty set is a subset of every set, so Contains(None) is always true.
// Callers that want "is this modality enabled" should not pass None.
func (s Set) Contains(query Set) bool { return bitflag.ContainsAll(s, query) }

// Overlaps reports whether s and other share at least one modality.
func (s Set) Overlaps(other Set) bool { return bitflag.ContainsAny(s, other) }

// IsEmpty reports whether s is None.
func (s Set) IsEmpty() bool { return s == None }

// Len returns the number of defined modalities in s.
func (s Set) Len() int { return bitflag.Count(bitflag.Mask(s, All)) }

// Bits returns the underlying integer.
func (s Set) Bits() uint32 { return uint32(s) }

// Insert adds the modalities of other to s in place.
func (s *Set) Insert(other Set) { *s = s.Union(other) }

// Remove clears the modalities of other from s in place.
func (s *Set) Remove(other Set) { *s = s.Difference(other) }

// Validate returns an *InvalidBitsError if s has bits outside All.
func (s Set) Validate() error {
	if !All.Contains(s) {
		return &InvalidBitsError{Bits: uint32(s)}
	}
	return nil
}

// FromBits converts a raw integer to a Set, rejecting bits outside All.
func FromBits(bits uint32) (Set, error) {
	s := Set(bits)
	if err := s.Validate(); err != nil {
		return None, err
	}
	return s, nil
}

// FromBitsTruncate converts a raw integer to a Set, discarding bits outside All.
func FromBitsTruncate(bits uint32) Set {
	return bitflag.Mask(Set(bits), All)
}
