// SPDX-License-Identifier: MPL-2.0

// Package namesyntax describes how a hierarchical name string is split into
// components: its direction, separators, quoting and escaping tokens, and the
// normalization applied when components are compared.
//
// A Syntax is built once from a key/value mapping using the JNDI property
// names (jndi.syntax.direction, jndi.syntax.separator, ...) and is immutable
// afterwards, so a single Syntax can be shared by any number of names.
//
// This package is a leaf dependency: it imports only the standard library.
package namesyntax
