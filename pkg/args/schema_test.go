// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package args

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSchema(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		want   Schema
	}{
		{name: "empty", schema: "", want: Schema{}},
		{name: "bool", schema: "l", want: Schema{'l': Bool}},
		{name: "all kinds", schema: "l,p#,d*", want: Schema{'l': Bool, 'p': Int, 'd': String}},
		{name: "trailing comma", schema: "l,", want: Schema{'l': Bool}},
		{name: "empty entries", schema: ",,x#,,", want: Schema{'x': Int}},
		{name: "unicode letter", schema: "é*", want: Schema{'é': String}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSchema(tt.schema)
			if err != nil {
				t.Fatalf("ParseSchema(%q) error = %v", tt.schema, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ParseSchema(%q) mismatch (-want +got):\n%s", tt.schema, diff)
			}
		})
	}
}

func TestParseSchemaErrors(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		wantFlag rune
		wantMsg  string
	}{
		{
			name:     "digit id",
			schema:   "1x",
			wantFlag: '1',
			wantMsg:  `invalid schema entry "1x": id '1' is not a letter`,
		},
		{
			name:     "unknown format",
			schema:   "p!",
			wantFlag: 'p',
			wantMsg:  `invalid schema entry "p!": format '!' not found`,
		},
		{
			name:     "bad entry after good ones",
			schema:   "l,p#,d?",
			wantFlag: 'd',
			wantMsg:  `invalid schema entry "d?": format '?' not found`,
		},
		{
			name:     "leading space",
			schema:   "l, p#",
			wantFlag: ' ',
			wantMsg:  `invalid schema entry " p#": id ' ' is not a letter`,
		},
		{
			name:     "trailing characters",
			schema:   "p#x",
			wantFlag: 'p',
			wantMsg:  `invalid schema entry "p#x": trailing characters after id 'p'`,
		},
		{
			name:     "duplicate id",
			schema:   "p#,p*",
			wantFlag: 'p',
			wantMsg:  `invalid schema entry "p*": id 'p' is defined more than once`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSchema(tt.schema)
			if s != nil {
				t.Fatalf("ParseSchema(%q) = %v, want nil schema", tt.schema, s)
			}
			if !errors.Is(err, ErrSchema) {
				t.Fatalf("ParseSchema(%q) error = %v, want ErrSchema", tt.schema, err)
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("error %T is not *Error", err)
			}
			if e.Flag != tt.wantFlag {
				t.Fatalf("Flag = %q, want %q", e.Flag, tt.wantFlag)
			}
			if err.Error() != tt.wantMsg {
				t.Fatalf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestSchemaString(t *testing.T) {
	s, err := ParseSchema("p#,l,d*")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.String(), "d*,l,p#"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	round, err := ParseSchema(s.String())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, round); diff != "" {
		t.Fatalf("reparsed schema mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]rune{'d', 'l', 'p'}, s.Flags()); diff != "" {
		t.Fatalf("Flags() mismatch (-want +got):\n%s", diff)
	}
	if k, ok := s.Kind('p'); !ok || k != Int {
		t.Fatalf("Kind('p') = %v, %v; want int, true", k, ok)
	}
	if _, ok := s.Kind('z'); ok {
		t.Fatalf("Kind('z') reported defined")
	}
}
