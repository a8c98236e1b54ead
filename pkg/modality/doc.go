// SPDX-License-Identifier: MPL-2.0

// Package modality defines the closed vocabulary of data modalities handled by a
// multimodal system (audio, image, text, video, other) and the Set value type that
// combines them.
//
// A Set is a bitmask: each modality owns one bit, assigned from bit 0 in declaration
// order. Sets are plain values. Union and Intersect return new values, Contains is a
// subset test, and Names renders the members in declaration order regardless of how
// the set was built.
//
//	s := modality.Audio.Union(modality.Text)
//	s.Contains(modality.Audio) // true
//	s.Names()                  // ["audio" "text"]
//	s.String()                 // "audio | text"
//
//	s, err := modality.FromNames([]string{"video", "audio"})
//	// s.Names() == ["audio" "video"]
//
// Only parsing and raw-integer conversion can fail. An unrecognized name yields an
// *InvalidNameError that wraps ErrInvalidName and carries the offending input;
// FromBits reports undefined bits as an *InvalidBitsError.
//
// The package is a leaf dependency: it imports only the standard library, the
// bitflag helpers and the CUE parsing utilities.
package modality
