// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"
	"strings"
	"testing"
)

func TestNewColorizer(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		noColor string
		term    string
		want    bool
	}{
		{name: "disabled", enabled: false, term: "xterm", want: false},
		{name: "enabled", enabled: true, term: "xterm", want: true},
		{name: "no color", enabled: true, noColor: "1", term: "xterm", want: false},
		{name: "dumb term", enabled: true, term: "dumb", want: false},
		{name: "no term", enabled: true, term: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			if got := NewColorizer(tt.enabled).Enabled; got != tt.want {
				t.Fatalf("Enabled = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	off := Colorizer{}
	if got := off.Red("boom"); got != "boom" {
		t.Fatalf("disabled Red = %q, want plain text", got)
	}
	on := Colorizer{Enabled: true}
	if got := on.Red("boom"); !strings.HasPrefix(got, "\x1b[31mboom") {
		t.Fatalf("Red = %q, want red escape prefix", got)
	}
	if got := on.Green("ok"); !strings.HasPrefix(got, "\x1b[32mok") {
		t.Fatalf("Green = %q, want green escape prefix", got)
	}
}

func TestForFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm")
	orig := isTerminalFn
	t.Cleanup(func() { isTerminalFn = orig })

	isTerminalFn = func(int) bool { return true }
	if !ForFile(os.Stderr).Enabled {
		t.Fatalf("ForFile on terminal should be enabled")
	}
	isTerminalFn = func(int) bool { return false }
	if ForFile(os.Stderr).Enabled {
		t.Fatalf("ForFile on non-terminal should be disabled")
	}
	if ForFile(nil).Enabled {
		t.Fatalf("ForFile(nil) should be disabled")
	}
}
