// SPDX-License-Identifier: MPL-2.0

// Package types defines small cross-cutting value types shared by the CLI and
// the configuration loader. Each type validates itself and reports failures as a
// typed error wrapping a package sentinel.
//
// This package is a leaf dependency: it imports only the standard library.
package types
