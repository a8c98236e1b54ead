// SPDX-License-Identifier: MPL-2.0

package bitflag

import "testing"

func TestContainsAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags uint8
		test  uint8
		want  bool
	}{
		{"zero test is always contained", 0b0110, 0, true},
		{"zero in zero", 0, 0, true},
		{"single bit present", 0b0110, 0b0010, true},
		{"single bit missing", 0b0110, 0b0001, false},
		{"all bits present", 0b0111, 0b0101, true},
		{"one of two missing", 0b0110, 0b0011, false},
		{"identical", 0b1010, 0b1010, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ContainsAll(tt.flags, tt.test); got != tt.want {
				t.Errorf("ContainsAll(%04b, %04b) = %v, want %v", tt.flags, tt.test, got, tt.want)
			}
		})
	}
}

func TestContainsAny(t *testing.T) {
	t.Parallel()

	if ContainsAny(uint16(0b0110), 0) {
		t.Error("ContainsAny with zero test should be false")
	}
	if !ContainsAny(uint16(0b0110), 0b0011) {
		t.Error("ContainsAny should report a shared bit")
	}
	if ContainsAny(uint16(0b0110), 0b1001) {
		t.Error("ContainsAny should be false for disjoint values")
	}
}

func TestAddRemoveMask(t *testing.T) {
	t.Parallel()

	if got := Add(uint32(0b0100), 0b0001); got != 0b0101 {
		t.Errorf("Add = %04b, want 0101", got)
	}
	if got := Add(uint32(0b0101), 0b0001); got != 0b0101 {
		t.Errorf("Add should be idempotent, got %04b", got)
	}
	if got := Remove(uint32(0b0111), 0b0010); got != 0b0101 {
		t.Errorf("Remove = %04b, want 0101", got)
	}
	if got := Remove(uint32(0b0101), 0b1000); got != 0b0101 {
		t.Errorf("Remove of absent bit changed the value: %04b", got)
	}
	if got := Mask(uint32(0b1111_0101), 0b0001_1111); got != 0b0001_0101 {
		t.Errorf("Mask = %08b, want 00010101", got)
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flags uint64
		want  int
	}{
		{0, 0},
		{1, 1},
		{0b1011, 3},
		{^uint64(0), 64},
	}
	for _, tt := range tests {
		if got := Count(tt.flags); got != tt.want {
			t.Errorf("Count(%b) = %d, want %d", tt.flags, got, tt.want)
		}
	}
}
