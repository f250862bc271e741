// SPDX-License-Identifier: MPL-2.0

// Package testutil holds test helpers that fail the test on setup errors
// and hand back a cleanup function restoring the previous state.
package testutil
