// SPDX-License-Identifier: MPL-2.0

// Package name parses, manipulates and formats hierarchical names whose
// shape is described by a namesyntax.Syntax.
//
// A Name is an ordered list of string components. Parse splits a string into
// components honoring the syntax's separators, quotes and escape token;
// String is its inverse. Comparisons (Equal, Compare, Hash, StartsWith,
// EndsWith) normalize components with the receiver's syntax only, so two
// names built from different syntaxes may compare differently depending on
// which one is the receiver.
//
// A Name is not safe for concurrent mutation. Callers that share a Name
// across goroutines must synchronize access themselves.
package name
