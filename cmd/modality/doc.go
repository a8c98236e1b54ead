// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for modality.
//
// Commands parse modality sets from names or display strings, combine them
// with union and intersection, test containment and print the result as
// styled text, JSON or TOML.
package cmd
