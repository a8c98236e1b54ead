// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult holds a decoded document and the CUE value it came from.
type ParseResult[T any] struct {
	Value *T
	// Unified is the document unified with its schema definition.
	Unified cue.Value
}

// ParseAndDecode checks data against the definition schemaPath (e.g.
// "#Modalities") of the CUE source schema and decodes it into T.
//
// A broken schema or a missing definition is reported as an internal error.
// Problems in data are reported through FormatError, prefixed with the
// filename from WithFilename or "<input>".
func ParseAndDecode[T any](schema string, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.filename == "" {
		o.filename = "<input>"
	}

	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()
	def, err := definition(ctx, schema, schemaPath)
	if err != nil {
		return nil, err
	}

	doc := ctx.CompileBytes(data, cue.Filename(o.filename))
	if err := doc.Err(); err != nil {
		return nil, FormatError(err, o.filename)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return nil, FormatError(err, o.filename)
	}

	result := new(T)
	if err := unified.Decode(result); err != nil {
		return nil, FormatError(err, o.filename)
	}
	return &ParseResult[T]{Value: result, Unified: unified}, nil
}

// definition compiles schema in ctx and returns the value at path.
func definition(ctx *cue.Context, schema, path string) (cue.Value, error) {
	compiled := ctx.CompileString(schema)
	if err := compiled.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("internal error: compile schema: %w", err)
	}
	def := compiled.LookupPath(cue.ParsePath(path))
	if err := def.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", path, err)
	}
	return def, nil
}
