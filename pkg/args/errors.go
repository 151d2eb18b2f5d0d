// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package args

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an Error.
type ErrorKind int

const (
	// SchemaError reports a malformed schema entry.
	SchemaError ErrorKind = iota + 1
	// ParseError reports a payload that cannot be decoded to its flag's kind.
	ParseError
	// UnexpectedArgument reports a lookup of a flag that was not supplied.
	UnexpectedArgument
	// TypeMismatch reports a lookup asking for the wrong kind.
	TypeMismatch
	// SchemaMismatch reports a supplied flag that the schema does not define.
	SchemaMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case SchemaError:
		return "schema error"
	case ParseError:
		return "parse error"
	case UnexpectedArgument:
		return "unexpected argument"
	case TypeMismatch:
		return "type mismatch"
	case SchemaMismatch:
		return "schema mismatch"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for use with errors.Is. An *Error matches the sentinel of its
// Kind.
var (
	ErrSchema             = errors.New("schema error")
	ErrParse              = errors.New("parse error")
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrSchemaMismatch     = errors.New("schema mismatch")
)

// Error is returned by every failing operation in this package.
// Msg is the user-facing message; Err, when set, is the underlying cause
// (for example a *strconv.NumError).
type Error struct {
	Kind  ErrorKind
	Flag  rune   // flag identifier, 0 if not tied to one flag
	Want  Kind   // requested kind (TypeMismatch)
	Got   Kind   // decoded kind (TypeMismatch)
	Value string // offending schema entry or payload
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case SchemaError:
		return ErrSchema
	case ParseError:
		return ErrParse
	case UnexpectedArgument:
		return ErrUnexpectedArgument
	case TypeMismatch:
		return ErrTypeMismatch
	case SchemaMismatch:
		return ErrSchemaMismatch
	}
	return nil
}

// KindOf returns the ErrorKind of err if it wraps an *Error, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
