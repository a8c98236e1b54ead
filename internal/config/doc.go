// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/modality/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/modality/config.cue on macOS, %APPDATA%\modality\config.cue
// on Windows), falling back to ./config.cue. Environment variables prefixed with
// MODALITY_ override file values (e.g. MODALITY_OUTPUT_FORMAT=json).
//
// Files are validated against an embedded CUE schema (config_schema.cue) before they
// reach Viper, and the decoded Config is validated again on the Go side so that
// defaults and environment overrides obey the same rules.
package config
