// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command args decodes single-letter flags against a schema and prints the
// typed values.
//
//	args --schema 'l,p#,d*' -- -l -p3 -dXYZ
//	args --profile server -- -p9090
//	args                      # built-in demo
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	cwd, err := os.Getwd()
	if err != nil {
		log.Printf("failed to get working directory: %v", err)
		cwd = "."
	}
	os.Exit(run(cliEnv{
		args:   os.Args[1:],
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
		cwd:    cwd,
	}))
}
