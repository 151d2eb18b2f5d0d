// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/args/pkg/args"
)

func TestMarshal(t *testing.T) {
	p, err := args.New("l,p#,d*,q", []string{"-l", "-p3", "-dmy dir's"})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Marshal(&buf, DefaultPrefix, p); err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := "ARG_D='my dir'\\''s'\nARG_L=true\nARG_P=3\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("Marshal mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalParseError(t *testing.T) {
	p, err := args.New("p#", []string{"-pnope"})
	if err != nil {
		t.Fatal(err)
	}
	if err := Marshal(&bytes.Buffer{}, "", p); !errors.Is(err, args.ErrParse) {
		t.Fatalf("Marshal error = %v, want ErrParse", err)
	}
}

func TestVarName(t *testing.T) {
	if got, err := VarName("X_", 'q'); err != nil || got != "X_Q" {
		t.Fatalf("VarName('q') = %q, %v; want X_Q, nil", got, err)
	}
	if _, err := VarName("", 'é'); err == nil {
		t.Fatalf("VarName('é') succeeded, want error")
	}
}

func TestWrite(t *testing.T) {
	p, err := args.New("n#", []string{"-n42"})
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "flags.env")
	if err := Write(name, "", p); err != nil {
		t.Fatalf("Write: %v", err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "N=42\n"; got != want {
		t.Fatalf("file = %q, want %q", got, want)
	}
}
