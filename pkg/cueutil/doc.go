// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The package consolidates the 3-step CUE parsing pattern used by the
// emoji manifest and the settings loader:
//
//  1. Compile the embedded schema
//  2. Compile (or decode from TOML) user data and unify with schema
//  3. Validate and decode to Go values
//
// # Usage
//
//	//go:embed manifest_schema.cue
//	var schema string
//
//	unified, err := cueutil.Parse(
//	    []byte(schema),
//	    userFileBytes,
//	    "#Manifest",
//	    cueutil.WithFilename("emojis.toml"),
//	    cueutil.WithFormat(cueutil.FormatTOML),
//	)
//	if err != nil {
//	    return nil, err  // Error includes CUE path for debugging
//	}
//
// Callers that care about declaration order walk the unified value with
// cue.Value.Fields instead of decoding into a Go map.
package cueutil
