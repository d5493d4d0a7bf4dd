// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Result holds a decoded document together with the unified CUE value.
type Result[T any] struct {
	Value *T

	// Unified is the schema-unified value. Callers use it to read fields
	// the Go type does not model.
	Unified cue.Value
}

// ParseAndDecode validates data against the definition at schemaPath in
// schema and decodes the unified value into a T.
//
// Oversized input fails with ErrFileTooLarge. Documents that do not compile,
// do not satisfy the schema or cannot be decoded fail with a
// *ValidationError. A schema that does not compile or lacks schemaPath is a
// programming error and is reported as such.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*Result[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("internal error: compile schema: %w", err)
	}
	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("internal error: schema definition %s: %w", schemaPath, err)
	}

	doc := ctx.CompileBytes(data, cue.Filename(o.filename))
	if err := doc.Err(); err != nil {
		return nil, FormatError(err, o.filename)
	}

	unified := root.Unify(doc)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return nil, FormatError(err, o.filename)
	}

	var value T
	if err := unified.Decode(&value); err != nil {
		return nil, FormatError(err, o.filename)
	}
	return &Result[T]{Value: &value, Unified: unified}, nil
}
