// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/invowk/namekit/internal/catalog"
	"github.com/invowk/namekit/internal/config"
	"github.com/invowk/namekit/pkg/cueutil"
	"github.com/invowk/namekit/pkg/name"
	"github.com/invowk/namekit/pkg/namesyntax"
	"github.com/invowk/namekit/pkg/syntaxfile"
)

// Process exit codes.
const (
	ExitGeneric       = 1
	ExitInvalidName   = 2
	ExitInvalidSyntax = 3
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE
// handlers.
type ExitError struct {
	Code int
	Err  error
	// Detail, when set, replaces Err's message in Error. It holds the
	// rendered actionable form of Err.
	Detail string
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("exit status %d", e.Code)
	}
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor classifies err into one of the exit codes.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, name.ErrInvalidName):
		return ExitInvalidName
	case errors.Is(err, namesyntax.ErrInvalidSyntax),
		errors.Is(err, syntaxfile.ErrInvalidDefinition),
		errors.Is(err, syntaxfile.ErrUnsupportedFormat),
		errors.Is(err, syntaxfile.ErrInvalidSyntaxName),
		errors.Is(err, catalog.ErrUnknownSyntax),
		errors.Is(err, catalog.ErrDuplicateSyntax),
		errors.Is(err, cueutil.ErrSchemaViolation),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, config.ErrInvalidLogLevel):
		return ExitInvalidSyntax
	default:
		return ExitGeneric
	}
}
