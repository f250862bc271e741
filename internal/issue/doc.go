// SPDX-License-Identifier: MPL-2.0

// Package issue turns failures into messages a user can act on.
//
// ActionableError says what failed, on which resource, and what to try next.
// Issue guides are longer markdown explanations, keyed by Id and rendered
// for the terminal with glamour.
package issue
