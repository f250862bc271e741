// SPDX-License-Identifier: MPL-2.0

// Package catalog keeps the named syntaxes available to namekit: the
// built-in presets plus any loaded from syntax definition files.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"

	"github.com/invowk/namekit/pkg/namesyntax"
	"github.com/invowk/namekit/pkg/syntaxfile"

	"github.com/charmbracelet/log"
)

// builtinOrigin is the origin recorded for preset syntaxes.
const builtinOrigin = "builtin"

var (
	// ErrUnknownSyntax is the sentinel error wrapped by UnknownSyntaxError.
	ErrUnknownSyntax = errors.New("unknown syntax")
	// ErrDuplicateSyntax is the sentinel error wrapped by DuplicateSyntaxError.
	ErrDuplicateSyntax = errors.New("duplicate syntax")
)

type (
	// Catalog maps syntax names to syntaxes. It is safe for concurrent use.
	Catalog struct {
		mu      sync.RWMutex
		entries map[string]entry
		logger  *log.Logger
	}

	entry struct {
		syntax *namesyntax.Syntax
		origin string
	}

	// UnknownSyntaxError is returned by Lookup for a name with no entry.
	// It wraps ErrUnknownSyntax for errors.Is() compatibility.
	UnknownSyntaxError struct {
		Name  string
		Known []string
	}

	// DuplicateSyntaxError is returned when a file defines a name that is
	// already taken. It wraps ErrDuplicateSyntax for errors.Is() compatibility.
	DuplicateSyntaxError struct {
		Name string
		// Origin is "builtin" or the file that defined the name first.
		Origin string
		// File is the file that tried to define it again.
		File string
	}
)

// New returns a catalog holding the built-in syntaxes. A nil logger
// discards log output.
func New(logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Catalog{entries: make(map[string]entry), logger: logger}
	for name, syn := range namesyntax.Builtins() {
		c.entries[name] = entry{syntax: syn, origin: builtinOrigin}
	}
	return c
}

// LoadFiles adds the syntaxes defined in each file, in order. It stops at
// the first file that cannot be read or that redefines a known name; the
// syntaxes of that file are not added. Cancellation is checked between files.
func (c *Catalog) LoadFiles(ctx context.Context, paths []string) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("loading syntax files canceled: %w", err)
		}

		defs, err := syntaxfile.LoadFile(path)
		if err != nil {
			return err
		}
		if err := c.add(path, defs); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) add(path string, defs map[string]*namesyntax.Syntax) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := slices.Sorted(maps.Keys(defs))
	for _, name := range names {
		if prev, ok := c.entries[name]; ok {
			return &DuplicateSyntaxError{Name: name, Origin: prev.origin, File: path}
		}
	}
	for _, name := range names {
		c.entries[name] = entry{syntax: defs[name], origin: path}
		c.logger.Debug("loaded syntax", "name", name, "file", path, "direction", defs[name].Direction())
	}
	return nil
}

// Lookup returns the syntax registered under name.
func (c *Catalog) Lookup(name string) (*namesyntax.Syntax, error) {
	c.mu.RLock()
	e, ok := c.entries[name]
	c.mu.RUnlock()
	if !ok {
		return nil, &UnknownSyntaxError{Name: name, Known: c.Names()}
	}
	return e.syntax, nil
}

// Origin returns "builtin" or the file a syntax was loaded from.
func (c *Catalog) Origin(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[name]
	return e.origin, ok
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.entries))
}

// Error implements the error interface for UnknownSyntaxError.
func (e *UnknownSyntaxError) Error() string {
	return fmt.Sprintf("unknown syntax %q", e.Name)
}

// Unwrap returns ErrUnknownSyntax for errors.Is() compatibility.
func (e *UnknownSyntaxError) Unwrap() error { return ErrUnknownSyntax }

// Error implements the error interface for DuplicateSyntaxError.
func (e *DuplicateSyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax %q is already defined (%s)", e.File, e.Name, e.Origin)
}

// Unwrap returns ErrDuplicateSyntax for errors.Is() compatibility.
func (e *DuplicateSyntaxError) Unwrap() error { return ErrDuplicateSyntax }
