// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env renders decoded flags as shell variable assignments.
package env

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/yeetrun/args/pkg/args"
)

// DefaultPrefix is prepended to every variable name.
const DefaultPrefix = "ARG_"

// Write writes the assignments for p to the file name.
func Write(name, prefix string, p *args.Parser) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := Marshal(f, prefix, p); err != nil {
		return fmt.Errorf("failed to marshal env: %w", err)
	}
	return f.Close()
}

// Marshal writes NAME=value for every schema flag that was supplied, in
// identifier order. Values are quoted for POSIX shells so the output can be
// passed to eval. Flags that were not supplied are skipped.
func Marshal(w io.Writer, prefix string, p *args.Parser) error {
	s := p.Schema()
	for _, id := range s.Flags() {
		v, err := p.Get(id, s[id])
		if errors.Is(err, args.ErrUnexpectedArgument) {
			continue
		}
		if err != nil {
			return err
		}
		name, err := VarName(prefix, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s=%s\n", name, shellquote.Join(v.String()))
	}
	return nil
}

// VarName returns prefix followed by the upper-cased identifier.
func VarName(prefix string, id rune) (string, error) {
	if !(id >= 'a' && id <= 'z' || id >= 'A' && id <= 'Z') {
		return "", fmt.Errorf("flag %q cannot be used in a variable name", id)
	}
	return prefix + strings.ToUpper(string(id)), nil
}
