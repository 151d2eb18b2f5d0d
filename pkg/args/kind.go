// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package args

import (
	"fmt"
	"strconv"
)

// Kind is the value kind of a flag. It is also the decoder tag stored in a
// compiled Schema.
type Kind uint8

const (
	Bool Kind = iota + 1
	Int
	String
)

// presentPayload is stored for flags given without trailing characters.
const presentPayload = "true"

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case String:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// suffix returns the schema format character for k.
func (k Kind) suffix() string {
	switch k {
	case Int:
		return "#"
	case String:
		return "*"
	}
	return ""
}

// Value is a decoded flag value. Exactly one of the typed fields is
// meaningful, selected by Kind.
type Value struct {
	Kind Kind

	b bool
	i int
	s string
}

// BoolValue returns a Value of kind Bool.
func BoolValue(b bool) Value { return Value{Kind: Bool, b: b} }

// IntValue returns a Value of kind Int.
func IntValue(i int) Value { return Value{Kind: Int, i: i} }

// StringValue returns a Value of kind String.
func StringValue(s string) Value { return Value{Kind: String, s: s} }

// Bool returns the boolean payload, or false if v is not a Bool.
func (v Value) Bool() bool { return v.Kind == Bool && v.b }

// Int returns the integer payload, or 0 if v is not an Int.
func (v Value) Int() int {
	if v.Kind != Int {
		return 0
	}
	return v.i
}

// Str returns the string payload, or "" if v is not a String.
func (v Value) Str() string {
	if v.Kind != String {
		return ""
	}
	return v.s
}

// Any returns the payload as a bool, int or string.
func (v Value) Any() any {
	switch v.Kind {
	case Bool:
		return v.b
	case Int:
		return v.i
	case String:
		return v.s
	}
	return nil
}

// String formats the payload for display.
func (v Value) String() string {
	switch v.Kind {
	case Bool:
		return strconv.FormatBool(v.b)
	case Int:
		return strconv.Itoa(v.i)
	case String:
		return v.s
	}
	return "<invalid>"
}

// decode converts a raw payload into a Value of kind k.
func decode(id rune, k Kind, payload string) (Value, error) {
	switch k {
	case Bool:
		return BoolValue(true), nil
	case Int:
		n, err := strconv.Atoi(payload)
		if err != nil {
			return Value{}, &Error{
				Kind:  ParseError,
				Flag:  id,
				Value: payload,
				Msg:   fmt.Sprintf("invalid integer %q for -%c", payload, id),
				Err:   err,
			}
		}
		return IntValue(n), nil
	case String:
		return StringValue(payload), nil
	}
	return Value{}, &Error{
		Kind: SchemaMismatch,
		Flag: id,
		Msg:  fmt.Sprintf("no decoder for -%c (%v)", id, k),
	}
}
