// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema and
// decodes them into Go values.
//
// Every CUE-backed file read by namekit follows the same flow:
//
//  1. Compile the embedded schema and look up its root definition
//  2. Compile the user document and unify it with that definition
//  3. Validate and decode
//
// Usage:
//
//	//go:embed syntax_schema.cue
//	var schema []byte
//
//	res, err := cueutil.Decode[File](schema, data, "#File",
//	    cueutil.WithFilename("syntaxes.cue"))
//	if err != nil {
//	    return nil, err // *cueutil.SchemaError carries JSON-style paths
//	}
//	return res.Value, nil
package cueutil
