// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema and
// decodes them into Go values.
//
// Both the buildfile and the user configuration go through the same flow:
// compile the schema, unify the document with a root definition, require
// concrete values, then decode.
//
//	//go:embed buildfile_schema.cue
//	var schema []byte
//
//	res, err := cueutil.ParseAndDecode[Buildfile](schema, data, "#Buildfile",
//	    cueutil.WithFilename("libart.cue"))
//	if err != nil {
//	    return nil, err // *ValidationError carries per-field paths
//	}
//	return res.Value, nil
package cueutil
