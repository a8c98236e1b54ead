// SPDX-License-Identifier: MPL-2.0

// Package bitflag provides small generic helpers for unsigned flag words.
//
// All helpers are pure functions over values; none of them mutate their inputs.
package bitflag

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ContainsAll reports whether every bit set in test is also set in flags.
// A zero test value is contained in every flags value.
func ContainsAll[T constraints.Unsigned](flags, test T) bool {
	return flags&test == test
}

// ContainsAny reports whether flags and test share at least one bit.
func ContainsAny[T constraints.Unsigned](flags, test T) bool {
	return flags&test != 0
}

// Add returns flags with every bit of add set.
func Add[T constraints.Unsigned](flags, add T) T {
	return flags | add
}

// Remove returns flags with every bit of remove cleared.
func Remove[T constraints.Unsigned](flags, remove T) T {
	return flags &^ remove
}

// Mask returns the bits of flags that are also set in valid.
func Mask[T constraints.Unsigned](flags, valid T) T {
	return flags & valid
}

// Count returns the number of set bits.
func Count[T constraints.Unsigned](flags T) int {
	return bits.OnesCount64(uint64(flags))
}
