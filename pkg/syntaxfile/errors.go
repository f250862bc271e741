// SPDX-License-Identifier: MPL-2.0

package syntaxfile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is the sentinel error wrapped by UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("unsupported syntax file format")
	// ErrInvalidDefinition is the sentinel error wrapped by DefinitionError.
	ErrInvalidDefinition = errors.New("invalid syntax definition")
	// ErrInvalidSyntaxName is reported when a syntax name is not an
	// identifier made of letters, digits, '.', '_' and '-'.
	ErrInvalidSyntaxName = errors.New("syntax name must start with a letter and contain only letters, digits, '.', '_' or '-'")
)

type (
	// UnsupportedFormatError is returned for files whose extension is not
	// .properties, .cue or .toml.
	// It wraps ErrUnsupportedFormat for errors.Is() compatibility.
	UnsupportedFormatError struct {
		Path string
		Ext  string
	}

	// DefinitionError reports a syntax that was read but could not be built.
	// It wraps both ErrInvalidDefinition and the underlying cause.
	DefinitionError struct {
		File   string
		Syntax string
		Err    error
	}
)

// Error implements the error interface for UnsupportedFormatError.
func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("%s: cannot tell the syntax file format without an extension", e.Path)
	}
	return fmt.Sprintf("%s: unsupported syntax file extension %q (want .properties, .cue or .toml)", e.Path, e.Ext)
}

// Unwrap returns ErrUnsupportedFormat for errors.Is() compatibility.
func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// Error implements the error interface for DefinitionError.
func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s: syntax %q: %v", e.File, e.Syntax, e.Err)
}

// Unwrap exposes ErrInvalidDefinition and the cause to errors.Is and errors.As.
func (e *DefinitionError) Unwrap() []error { return []error{ErrInvalidDefinition, e.Err} }
