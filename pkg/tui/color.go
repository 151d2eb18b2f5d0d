// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var isTerminalFn = term.IsTerminal

// Colorizer wraps text in ANSI colours when Enabled.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only if enabled is true,
// NO_COLOR is unset and TERM names a real terminal.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// ForFile is NewColorizer enabled when f is a terminal.
func ForFile(f *os.File) Colorizer {
	if f == nil {
		return Colorizer{}
	}
	return NewColorizer(isTerminalFn(int(f.Fd())))
}

func (c Colorizer) Red(text string) string    { return c.wrap(color.FgRed, text) }
func (c Colorizer) Green(text string) string  { return c.wrap(color.FgGreen, text) }
func (c Colorizer) Yellow(text string) string { return c.wrap(color.FgYellow, text) }
func (c Colorizer) Cyan(text string) string   { return c.wrap(color.FgCyan, text) }
func (c Colorizer) Dim(text string) string    { return c.wrap(color.FgHiBlack, text) }

func (c Colorizer) wrap(attr color.Attribute, text string) string {
	if !c.Enabled {
		return text
	}
	p := color.New(attr)
	p.EnableColor()
	return p.Sprint(text)
}
