// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Result holds a decoded document.
type Result[T any] struct {
	// Value is the decoded Go value.
	Value *T
	// Unified is the document unified with its schema definition.
	Unified cue.Value
}

// Decode validates data against the definition named by definition (for
// example "#Config") inside schema, then decodes it into a T.
//
// Problems in data are reported as *SchemaError. A schema that does not
// compile, or lacks the definition, is a programming error and is reported
// as a plain wrapped error.
func Decode[T any](schema, data []byte, definition string, opts ...Option) (*Result[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return nil, err
	}

	root, err := lookupDefinition(schema, definition)
	if err != nil {
		return nil, err
	}

	doc := root.Context().CompileBytes(data, cue.Filename(o.filename))
	if doc.Err() != nil {
		return nil, FormatError(doc.Err(), o.filename)
	}

	unified := root.Unify(doc)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return nil, FormatError(err, o.filename)
	}

	var value T
	if err := unified.Decode(&value); err != nil {
		return nil, FormatError(err, o.filename)
	}

	return &Result[T]{Value: &value, Unified: unified}, nil
}

func lookupDefinition(schema []byte, definition string) (cue.Value, error) {
	compiled := cuecontext.New().CompileBytes(schema)
	if compiled.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema does not compile: %w", compiled.Err())
	}
	root := compiled.LookupPath(cue.ParsePath(definition))
	if !root.Exists() || root.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema has no definition %s", definition)
	}
	return root, nil
}
