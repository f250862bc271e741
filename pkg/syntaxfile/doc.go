// SPDX-License-Identifier: MPL-2.0

// Package syntaxfile reads name syntax definitions from files.
//
// Three formats are understood, chosen by file extension:
//
//   - .properties: one syntax per file, keyed by the jndi.syntax.* property
//     names. The syntax is named after the file's base name.
//   - .cue: any number of syntaxes under a top-level "syntaxes" struct,
//     validated against an embedded schema.
//   - .toml: the same shape as CUE, one [syntaxes.<name>] table per syntax.
//
// A CUE file looks like:
//
//	syntaxes: {
//		"unix-path": {
//			direction:   "left_to_right"
//			separator:   "/"
//			escape:      "\\"
//			begin_quote: "\""
//		}
//	}
package syntaxfile
