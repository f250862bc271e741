// SPDX-License-Identifier: MPL-2.0

package name

import (
	"errors"
	"fmt"
)

// Reasons reported by InvalidNameError.
const (
	reasonNoCloseQuote         = "no close quote"
	reasonCloseQuoteMidComp    = "close quote appears before end of component"
	reasonTypevalNoCloseQuote  = "typeval no close quote"
	reasonTypevalCloseQuoteMid = "typeval close quote appears before end of component"
	reasonFlatName             = "a flat name can only have a single component"
)

var (
	// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
	ErrInvalidName = errors.New("invalid name")
	// ErrIndexOutOfRange is the sentinel error wrapped by IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("index out of range")
)

type (
	// InvalidNameError is returned when a string cannot be parsed under a
	// syntax, or when a mutation would break the flat-name invariant.
	// It wraps ErrInvalidName for errors.Is() compatibility.
	InvalidNameError struct {
		// Name is the offending input (or the rejected component).
		Name string
		// Reason describes what is wrong with it.
		Reason string
	}

	// IndexOutOfRangeError is returned when a position falls outside a name.
	// It wraps ErrIndexOutOfRange for errors.Is() compatibility.
	IndexOutOfRangeError struct {
		Index int
		Size  int
	}
)

// Error implements the error interface for InvalidNameError.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Name, e.Reason)
}

// Unwrap returns ErrInvalidName for errors.Is() compatibility.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// Error implements the error interface for IndexOutOfRangeError.
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for name of size %d", e.Index, e.Size)
}

// Unwrap returns ErrIndexOutOfRange for errors.Is() compatibility.
func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }
