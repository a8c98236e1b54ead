// SPDX-License-Identifier: MPL-2.0

// Package cueutil checks CUE documents against an embedded schema and decodes
// them into Go values. Modality name-list documents go through ParseAndDecode;
// the configuration loader shares FormatError and CheckFileSize.
//
// # Usage
//
//	//go:embed schema.cue
//	var schema string
//
//	result, err := cueutil.ParseAndDecode[document](
//	    schema,
//	    userFileBytes,
//	    "#Modalities",
//	    cueutil.WithFilename("inputs.cue"),
//	)
//	if err != nil {
//	    return modality.None, err  // Error includes CUE path for debugging
//	}
//	return modality.FromNames(result.Value.Modalities)
package cueutil
