// SPDX-License-Identifier: MPL-2.0

// Package issue explains modality CLI failures to the user.
//
// ActionableError pairs a failed operation (parsing a modality set, loading a
// CUE document or the configuration) with the input involved and concrete
// next steps. The issue catalogue holds longer Markdown help per failure kind,
// such as the list of valid modality names, which the CLI renders with glamour
// in verbose mode.
package issue
