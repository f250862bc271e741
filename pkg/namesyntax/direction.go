// SPDX-License-Identifier: MPL-2.0

package namesyntax

import (
	"errors"
	"fmt"
)

const (
	// LeftToRight names list their most significant component first (a/b/c).
	LeftToRight Direction = "left_to_right"
	// RightToLeft names list their most significant component last (c.b.a).
	RightToLeft Direction = "right_to_left"
	// Flat names have at most one component and no hierarchy.
	Flat Direction = "flat"
)

// ErrInvalidDirection is the sentinel error wrapped by InvalidDirectionError.
var ErrInvalidDirection = errors.New("invalid syntax direction")

type (
	// Direction is the order in which components appear in a name string.
	Direction string

	// InvalidDirectionError is returned when a Direction value is not recognized.
	// It wraps ErrInvalidDirection for errors.Is() compatibility.
	InvalidDirectionError struct {
		Value Direction
	}
)

// String returns the string representation of the Direction.
func (d Direction) String() string { return string(d) }

// IsValid returns whether the Direction is one of the defined directions.
func (d Direction) IsValid() (bool, []error) {
	switch d {
	case LeftToRight, RightToLeft, Flat:
		return true, nil
	default:
		return false, []error{&InvalidDirectionError{Value: d}}
	}
}

// Error implements the error interface for InvalidDirectionError.
func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("%q is not a valid value for the %s property (valid: %s, %s, %s)",
		e.Value, PropDirection, LeftToRight, RightToLeft, Flat)
}

// Unwrap returns ErrInvalidDirection for errors.Is() compatibility.
func (e *InvalidDirectionError) Unwrap() error { return ErrInvalidDirection }
