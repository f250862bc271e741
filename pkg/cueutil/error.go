// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrSchemaViolation is the sentinel error wrapped by SchemaError.
	ErrSchemaViolation = errors.New("document does not match schema")
	// ErrFileTooLarge is the sentinel error wrapped by FileTooLargeError.
	ErrFileTooLarge = errors.New("file too large")
)

type (
	// Problem is one CUE error located at a path inside the document.
	Problem struct {
		// Path is in JSON-path notation, e.g. "syntaxes.ldap.direction" or
		// "syntax_files[1]". It is empty for document-level problems.
		Path    string
		Message string
	}

	// SchemaError lists every problem CUE reported for a document.
	// It wraps ErrSchemaViolation for errors.Is() compatibility.
	SchemaError struct {
		File     string
		Problems []Problem
	}

	// FileTooLargeError is returned when a document exceeds the size limit.
	// It wraps ErrFileTooLarge for errors.Is() compatibility.
	FileTooLargeError struct {
		File    string
		Size    int64
		MaxSize int64
	}
)

// Error implements the error interface for SchemaError.
//
// A single problem reads "<file>: <path>: <message>"; several problems are
// listed one per indented line.
func (e *SchemaError) Error() string {
	lines := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		if p.Path == "" {
			lines = append(lines, p.Message)
			continue
		}
		lines = append(lines, p.Path+": "+p.Message)
	}
	if len(lines) == 1 {
		return fmt.Sprintf("%s: %s", e.File, lines[0])
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.File, strings.Join(lines, "\n  "))
}

// Unwrap returns ErrSchemaViolation for errors.Is() compatibility.
func (e *SchemaError) Unwrap() error { return ErrSchemaViolation }

// Error implements the error interface for FileTooLargeError.
func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: file size %d bytes exceeds maximum %d bytes", e.File, e.Size, e.MaxSize)
}

// Unwrap returns ErrFileTooLarge for errors.Is() compatibility.
func (e *FileTooLargeError) Unwrap() error { return ErrFileTooLarge }

// FormatError turns a CUE error into a *SchemaError naming file. Errors that
// carry no CUE detail are wrapped with the file name instead.
func FormatError(err error, file string) error {
	if err == nil {
		return nil
	}

	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", file, err)
	}

	se := &SchemaError{File: file}
	for _, e := range list {
		path := formatPath(cueerrors.Path(e))
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		// Some messages repeat the path they belong to.
		if path != "" {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		}
		se.Problems = append(se.Problems, Problem{Path: path, Message: msg})
	}
	return se
}

// formatPath renders CUE path selectors ("syntax_files", "1", "name") as
// "syntax_files[1].name".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			b.WriteString("[" + part + "]")
		case i > 0:
			b.WriteString("." + part)
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize reports a *FileTooLargeError when data is larger than
// maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, file string) error {
	if size := int64(len(data)); size > maxSize {
		return &FileTooLargeError{File: file, Size: size, MaxSize: maxSize}
	}
	return nil
}
