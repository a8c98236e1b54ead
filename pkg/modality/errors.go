// SPDX-License-Identifier: MPL-2.0

package modality

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
	ErrInvalidName = errors.New("invalid modality name")
	// ErrInvalidBits is the sentinel error wrapped by InvalidBitsError.
	ErrInvalidBits = errors.New("invalid modality bits")
)

type (
	// InvalidNameError is returned when a name is not one of the defined
	// modality names. Name holds the offending input exactly as given.
	InvalidNameError struct {
		Name string
	}

	// InvalidBitsError is returned when a raw integer has bits set outside All.
	InvalidBitsError struct {
		Bits uint32
	}
)

// Error implements the error interface for InvalidNameError.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid modality name %q (valid: %s)", e.Name, strings.Join(ValidNames(), ", "))
}

// Unwrap returns ErrInvalidName for errors.Is() compatibility.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// Error implements the error interface for InvalidBitsError.
func (e *InvalidBitsError) Error() string {
	return fmt.Sprintf("invalid modality bits %#x: bits %#x are outside the defined set %#x",
		e.Bits, e.Bits&^uint32(All), uint32(All))
}

// Unwrap returns ErrInvalidBits for errors.Is() compatibility.
func (e *InvalidBitsError) Unwrap() error { return ErrInvalidBits }
