// SPDX-License-Identifier: MPL-2.0

// Package config handles namekit configuration using Viper with CUE as the
// file format.
//
// The file is config.cue in ConfigDir (or the current directory, or the
// path given with --config). It is validated against the embedded
// config_schema.cue; every field is optional and falls back to
// DefaultConfig. NAMEKIT_* environment variables override the file, with
// dots in keys replaced by underscores (NAMEKIT_LOG_LEVEL for log.level).
package config
