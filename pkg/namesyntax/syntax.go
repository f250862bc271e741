// SPDX-License-Identifier: MPL-2.0

package namesyntax

import (
	"errors"
	"fmt"
	"strings"
)

// Property keys understood by New.
const (
	PropDirection        = "jndi.syntax.direction"
	PropSeparator        = "jndi.syntax.separator"
	PropSeparator2       = "jndi.syntax.separator2"
	PropEscape           = "jndi.syntax.escape"
	PropIgnoreCase       = "jndi.syntax.ignorecase"
	PropTrimBlanks       = "jndi.syntax.trimblanks"
	PropBeginQuote       = "jndi.syntax.beginquote"
	PropEndQuote         = "jndi.syntax.endquote"
	PropBeginQuote2      = "jndi.syntax.beginquote2"
	PropEndQuote2        = "jndi.syntax.endquote2"
	PropAvaSeparator     = "jndi.syntax.separator.ava"
	PropTypevalSeparator = "jndi.syntax.separator.typeval"
)

var (
	// ErrInvalidSyntax is the sentinel error wrapped by InvalidSyntaxError.
	ErrInvalidSyntax = errors.New("invalid name syntax")
	// ErrMissingSeparator is the sentinel error wrapped by MissingSeparatorError.
	ErrMissingSeparator = errors.New("missing separator")
)

type (
	// Syntax is an immutable description of how names are tokenized and
	// compared. The zero value is not usable; build one with New.
	//
	// Optional tokens are represented by the empty string. An empty token
	// never matches.
	Syntax struct {
		direction        Direction
		separator        string
		separator2       string
		escape           string
		beginQuote1      string
		endQuote1        string
		beginQuote2      string
		endQuote2        string
		avaSeparator     string
		typevalSeparator string
		caseInsensitive  bool
		trimBlanks       bool
	}

	// MissingSeparatorError is returned when a hierarchical syntax has no
	// primary separator. It wraps ErrMissingSeparator.
	MissingSeparatorError struct {
		Direction Direction
	}

	// InvalidSyntaxError is returned by New when the properties do not describe
	// a usable syntax. It wraps ErrInvalidSyntax and collects field-level errors.
	InvalidSyntaxError struct {
		FieldErrors []error
	}
)

// New builds a Syntax from a mapping of jndi.syntax.* properties.
//
// The direction defaults to flat. Separators are only read for hierarchical
// directions, where the primary separator is required. When only one side of
// a quote pair is given, the other side defaults to it.
func New(props map[string]string) (*Syntax, error) {
	s := &Syntax{direction: Flat}
	if v, ok := props[PropDirection]; ok {
		s.direction = Direction(v)
	}

	var errs []error
	if valid, fieldErrs := s.direction.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}

	if s.direction != Flat {
		s.separator = props[PropSeparator]
		s.separator2 = props[PropSeparator2]
		if s.separator == "" && len(errs) == 0 {
			errs = append(errs, &MissingSeparatorError{Direction: s.direction})
		}
	}
	if len(errs) > 0 {
		return nil, &InvalidSyntaxError{FieldErrors: errs}
	}

	s.escape = props[PropEscape]
	s.caseInsensitive = toBool(props[PropIgnoreCase])
	s.trimBlanks = toBool(props[PropTrimBlanks])
	s.beginQuote1, s.endQuote1 = quotePair(props[PropBeginQuote], props[PropEndQuote])
	s.beginQuote2, s.endQuote2 = quotePair(props[PropBeginQuote2], props[PropEndQuote2])
	s.avaSeparator = props[PropAvaSeparator]
	s.typevalSeparator = props[PropTypevalSeparator]

	return s, nil
}

// MustNew is like New but panics if the properties are invalid.
// It is intended for package-level syntax definitions.
func MustNew(props map[string]string) *Syntax {
	s, err := New(props)
	if err != nil {
		panic(err)
	}
	return s
}

func quotePair(begin, end string) (string, string) {
	switch {
	case begin != "" && end == "":
		return begin, begin
	case begin == "" && end != "":
		return end, end
	default:
		return begin, end
	}
}

func toBool(v string) bool {
	return strings.EqualFold(v, "true")
}

// Direction returns the component order of the syntax.
func (s *Syntax) Direction() Direction { return s.direction }

// IsFlat reports whether names of this syntax hold at most one component.
func (s *Syntax) IsFlat() bool { return s.direction == Flat }

// Separator returns the primary component separator.
func (s *Syntax) Separator() string { return s.separator }

// Separator2 returns the alternate component separator.
func (s *Syntax) Separator2() string { return s.separator2 }

// Escape returns the escape token.
func (s *Syntax) Escape() string { return s.escape }

// BeginQuote1 returns the opening token of the first quote style.
func (s *Syntax) BeginQuote1() string { return s.beginQuote1 }

// EndQuote1 returns the closing token of the first quote style.
func (s *Syntax) EndQuote1() string { return s.endQuote1 }

// BeginQuote2 returns the opening token of the second quote style.
func (s *Syntax) BeginQuote2() string { return s.beginQuote2 }

// EndQuote2 returns the closing token of the second quote style.
func (s *Syntax) EndQuote2() string { return s.endQuote2 }

// AvaSeparator returns the separator between attribute-value assertions.
func (s *Syntax) AvaSeparator() string { return s.avaSeparator }

// TypevalSeparator returns the separator between an attribute type and its value.
func (s *Syntax) TypevalSeparator() string { return s.typevalSeparator }

// CaseInsensitive reports whether components compare without regard to case.
func (s *Syntax) CaseInsensitive() bool { return s.caseInsensitive }

// TrimBlanks reports whether leading and trailing blanks are ignored when
// components are compared.
func (s *Syntax) TrimBlanks() bool { return s.trimBlanks }

// Properties returns the jndi.syntax.* mapping describing s. Passing the
// result to New yields an equivalent Syntax.
func (s *Syntax) Properties() map[string]string {
	props := map[string]string{PropDirection: string(s.direction)}
	set := func(key, value string) {
		if value != "" {
			props[key] = value
		}
	}
	set(PropSeparator, s.separator)
	set(PropSeparator2, s.separator2)
	set(PropEscape, s.escape)
	set(PropBeginQuote, s.beginQuote1)
	set(PropEndQuote, s.endQuote1)
	set(PropBeginQuote2, s.beginQuote2)
	set(PropEndQuote2, s.endQuote2)
	set(PropAvaSeparator, s.avaSeparator)
	set(PropTypevalSeparator, s.typevalSeparator)
	if s.caseInsensitive {
		props[PropIgnoreCase] = "true"
	}
	if s.trimBlanks {
		props[PropTrimBlanks] = "true"
	}
	return props
}

// Error implements the error interface for MissingSeparatorError.
func (e *MissingSeparatorError) Error() string {
	return fmt.Sprintf("%s property required for %s syntax", PropSeparator, e.Direction)
}

// Unwrap returns ErrMissingSeparator for errors.Is() compatibility.
func (e *MissingSeparatorError) Unwrap() error { return ErrMissingSeparator }

// Error implements the error interface for InvalidSyntaxError.
func (e *InvalidSyntaxError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid name syntax: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid name syntax: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidSyntax followed by the field errors, so both the
// sentinel and the field-level errors are visible to errors.Is and errors.As.
func (e *InvalidSyntaxError) Unwrap() []error {
	return append([]error{ErrInvalidSyntax}, e.FieldErrors...)
}
