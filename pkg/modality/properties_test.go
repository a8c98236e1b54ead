// SPDX-License-Identifier: MPL-2.0

package modality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionIntersectLaws(t *testing.T) {
	t.Parallel()

	sets := allSets()
	for _, a := range sets {
		assert.Equal(t, a, a.Union(a), "union idempotent for %v", a)
		assert.Equal(t, a, a.Intersect(a), "intersect idempotent for %v", a)
		assert.Equal(t, a, a.Union(None), "None is the union identity for %v", a)
		assert.Equal(t, a, a.Intersect(All), "All is the intersect identity for %v", a)

		for _, b := range sets {
			assert.Equal(t, Union(a, b), Union(b, a), "union commutative")
			assert.Equal(t, Intersect(a, b), Intersect(b, a), "intersect commutative")
			assert.Equal(t, a, Intersect(a, Union(a, b)), "absorption")

			inter := Intersect(a, b)
			assert.True(t, a.Contains(inter), "%v ⊆ %v", inter, a)
			assert.True(t, b.Contains(inter), "%v ⊆ %v", inter, b)

			union := Union(a, b)
			assert.True(t, union.Contains(a), "%v ⊇ %v", union, a)
			assert.True(t, union.Contains(b), "%v ⊇ %v", union, b)
			assert.True(t, All.Contains(union), "union of valid sets stays valid")
		}
	}
}

func TestAssociativity(t *testing.T) {
	t.Parallel()

	sets := allSets()
	for _, a := range sets {
		for _, b := range sets {
			for _, c := range sets {
				if Union(Union(a, b), c) != Union(a, Union(b, c)) {
					t.Fatalf("union not associative for %v, %v, %v", a, b, c)
				}
				if Intersect(Intersect(a, b), c) != Intersect(a, Intersect(b, c)) {
					t.Fatalf("intersect not associative for %v, %v, %v", a, b, c)
				}
			}
		}
	}
}

func TestContainsReflexiveAndEmpty(t *testing.T) {
	t.Parallel()

	for _, x := range allSets() {
		assert.True(t, x.Contains(x), "%v contains itself", x)
		assert.True(t, x.Contains(None), "%v contains the empty set", x)
	}
}

func TestNamesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range allSets() {
		names := s.Names()
		require.NotNil(t, names)
		assert.Len(t, names, s.Len())

		got, err := FromNames(names)
		require.NoError(t, err, "FromNames(%v)", names)
		assert.Equal(t, s, got, "FromNames(Names(%d))", s)

		parsed, err := ParseString(s.String())
		require.NoError(t, err, "ParseString(%q)", s.String())
		assert.Equal(t, s, parsed, "ParseString(String(%d))", s)
	}
}
