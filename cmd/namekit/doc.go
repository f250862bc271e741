// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the namekit CLI commands.
//
// The root command loads configuration and the syntax catalog once, in
// its persistent pre-run hook; subcommands resolve a syntax by name and
// call into pkg/name. Failures are returned as *ExitError carrying the
// rendered message and the process exit code.
package cmd
