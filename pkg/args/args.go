// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package args

import (
	"fmt"
	"maps"
	"slices"
)

// Parser holds a compiled schema and the decoded raw arguments.
// Both are fixed by New; all methods are read-only.
type Parser struct {
	schema Schema
	args   map[rune]string
}

// New compiles schema and decodes arguments against it. It fails only on a
// malformed schema; problems with individual flags surface on lookup.
func New(schema string, arguments []string) (*Parser, error) {
	s, err := ParseSchema(schema)
	if err != nil {
		return nil, err
	}
	return NewWithSchema(s, arguments), nil
}

// NewWithSchema is like New but takes an already compiled schema.
func NewWithSchema(s Schema, arguments []string) *Parser {
	s = maps.Clone(s)
	if s == nil {
		s = Schema{}
	}
	return &Parser{
		schema: s,
		args:   parseArguments(s, arguments),
	}
}

// Schema returns a copy of the compiled schema.
func (p *Parser) Schema() Schema {
	return maps.Clone(p.schema)
}

// Has reports whether id was supplied in the arguments.
func (p *Parser) Has(id rune) bool {
	_, ok := p.args[id]
	return ok
}

// Raw returns the undecoded payload for id.
func (p *Parser) Raw(id rune) (string, bool) {
	s, ok := p.args[id]
	return s, ok
}

// Supplied returns the identifiers present in the arguments, sorted.
func (p *Parser) Supplied() []rune {
	return slices.Sorted(maps.Keys(p.args))
}

// Unknown returns supplied identifiers that the schema does not define.
func (p *Parser) Unknown() []rune {
	var out []rune
	for _, id := range p.Supplied() {
		if _, ok := p.schema[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// Value decodes the payload for id using the kind the schema assigns it.
func (p *Parser) Value(id rune) (Value, error) {
	payload, ok := p.args[id]
	if !ok {
		return Value{}, &Error{
			Kind: UnexpectedArgument,
			Flag: id,
			Msg:  fmt.Sprintf("unexpected argument: -%c", id),
		}
	}
	kind, ok := p.schema[id]
	if !ok {
		return Value{}, &Error{
			Kind:  SchemaMismatch,
			Flag:  id,
			Value: payload,
			Msg:   fmt.Sprintf("argument -%c is not defined by the schema", id),
		}
	}
	return decode(id, kind, payload)
}

// Get is Value with the caller's expected kind; a decoded value of any other
// kind fails with a TypeMismatch error.
func (p *Parser) Get(id rune, want Kind) (Value, error) {
	v, err := p.Value(id)
	if err != nil {
		return Value{}, err
	}
	if v.Kind != want {
		return Value{}, &Error{
			Kind: TypeMismatch,
			Flag: id,
			Want: want,
			Got:  v.Kind,
			Msg:  fmt.Sprintf("invalid argument type for -%c: got %v, want %v", id, v.Kind, want),
		}
	}
	return v, nil
}

// Bool returns the value of boolean flag id.
func (p *Parser) Bool(id rune) (bool, error) {
	v, err := p.Get(id, Bool)
	return v.Bool(), err
}

// Int returns the value of integer flag id.
func (p *Parser) Int(id rune) (int, error) {
	v, err := p.Get(id, Int)
	return v.Int(), err
}

// String returns the value of string flag id.
func (p *Parser) String(id rune) (string, error) {
	v, err := p.Get(id, String)
	return v.Str(), err
}
