// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package args parses single-letter command-line flags against a compact
// schema string.
//
// A schema is a comma-separated list of entries. Each entry is a letter
// optionally followed by a format character:
//
//	l     boolean flag, set when present
//	p#    integer flag
//	d*    string flag
//
// Arguments are tokens of the form -<letter><payload>. Several flags may
// share one token, either separated by '-' ("-l-p3") or, after a boolean
// flag, packed together ("-lpXYZ"). A later occurrence of a flag replaces an
// earlier one.
//
//	p, err := args.New("l,p#,d*", []string{"-l", "-p3", "-dXYZ"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logging, _ := p.Bool('l')
//	port, _ := p.Int('p')
//	dir, _ := p.String('d')
//
// Values are decoded lazily on lookup. A flag that was not supplied yields an
// error matching ErrUnexpectedArgument; asking for the wrong kind yields
// ErrTypeMismatch. A Parser is immutable after New and safe for concurrent
// lookups.
package args
