// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/shayne/yargs"
	"github.com/yeetrun/args/pkg/args"
	"github.com/yeetrun/args/pkg/env"
	"github.com/yeetrun/args/pkg/profile"
	"github.com/yeetrun/args/pkg/tui"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	demoSchema = "l,p#,d*"
)

var demoArgs = []string{"-l", "-p3", "-dXYZ"}

type globalFlagsParsed struct {
	Schema  string `flag:"schema" help:"Schema string such as l,p#,d* (ARGS_SCHEMA)"`
	Profile string `flag:"profile" help:"Profile from args.toml or args.yaml (ARGS_PROFILE)"`
	Config  string `flag:"config" help:"Path to a profile file instead of searching for one"`
	JSON    bool   `flag:"json" help:"Print decoded values as a JSON object"`
	Env     bool   `flag:"env" help:"Print shell assignments such as ARG_P=3"`
	Prefix  string `flag:"prefix" help:"Variable name prefix for --env (default ARG_)"`
	Verbose bool   `flag:"verbose" help:"Log how the schema and arguments were resolved"`
	Help    bool   `flag:"help" help:"Show help"`
}

type cliEnv struct {
	args   []string
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	cwd    string
	// color overrides terminal detection when set.
	color *tui.Colorizer
}

func parseGlobalFlags(argv []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](argv, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, stripSeparator(result.RemainingArgs), nil
}

// stripSeparator drops the first "--"; everything else is a flag token.
func stripSeparator(argv []string) []string {
	i := slices.Index(argv, "--")
	if i < 0 {
		return argv
	}
	out := make([]string, 0, len(argv)-1)
	out = append(out, argv[:i]...)
	return append(out, argv[i+1:]...)
}

func buildHelpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "args",
			Description: "Decode single-letter flags against a schema (l = bool, p# = int, d* = string).",
			Examples: []string{
				"args --schema 'l,p#,d*' -- -l -p3 -dXYZ",
				"args --profile server -- -p9090",
				"args --json --schema 'v,n#' -- -vn42",
				"eval \"$(args --env --schema 'p#' -- -p8080)\"",
			},
		},
	}
}

func run(e cliEnv) int {
	colors, outColors := tui.ForFile(os.Stderr), tui.ForFile(os.Stdout)
	if e.color != nil {
		colors, outColors = *e.color, *e.color
	}
	logger := log.New(io.Discard, "args: ", 0)

	flags, tokens, err := parseGlobalFlags(e.args)
	if err != nil {
		fmt.Fprintln(e.stderr, colors.Red(err.Error()))
		return exitUsage
	}
	if flags.Help {
		fmt.Fprint(e.stdout, yargs.GenerateGlobalHelp(buildHelpConfig(), globalFlagsParsed{}))
		return exitOK
	}
	if flags.Verbose {
		logger.SetOutput(e.stderr)
	}

	parser, demo, err := resolveParser(e, flags, tokens, logger)
	if err != nil {
		fmt.Fprintln(e.stderr, colors.Red(err.Error()))
		if errors.Is(err, profile.ErrNoProfile) {
			return exitUsage
		}
		return exitError
	}
	for _, id := range parser.Supplied() {
		raw, _ := parser.Raw(id)
		logger.Printf("raw -%c = %q", id, raw)
	}
	for _, id := range parser.Unknown() {
		fmt.Fprintln(e.stderr, colors.Yellow(fmt.Sprintf("warning: -%c is not defined by the schema", id)))
	}

	if flags.Env {
		prefix := flags.Prefix
		if prefix == "" {
			prefix = env.DefaultPrefix
		}
		if err := env.Marshal(e.stdout, prefix, parser); err != nil {
			fmt.Fprintln(e.stderr, colors.Red(err.Error()))
			return exitError
		}
		return exitOK
	}
	if demo && !flags.JSON {
		if err := printDemo(e.stdout, parser); err != nil {
			fmt.Fprintln(e.stderr, colors.Red(err.Error()))
			return exitError
		}
		return exitOK
	}
	if errs := printValues(e.stdout, parser, flags.JSON, outColors); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(e.stderr, colors.Red(err.Error()))
		}
		return exitError
	}
	return exitOK
}

// resolveParser picks the schema source: --schema, ARGS_SCHEMA, a profile
// file, then the built-in demo. demo reports the last case.
func resolveParser(e cliEnv, flags globalFlagsParsed, tokens []string, logger *log.Logger) (parser *args.Parser, demo bool, err error) {
	schema := flags.Schema
	if schema == "" {
		schema = e.getenv("ARGS_SCHEMA")
	}
	name := flags.Profile
	if name == "" {
		name = e.getenv("ARGS_PROFILE")
	}
	if schema != "" {
		if name != "" {
			logger.Printf("ignoring profile %q, schema given explicitly", name)
		}
		logger.Printf("schema %q", schema)
		parser, err = args.New(schema, tokens)
		return parser, false, err
	}

	cfg, path, err := loadConfig(e, flags.Config)
	if err != nil {
		return nil, false, err
	}
	if cfg != nil {
		logger.Printf("using profiles from %s", path)
		if err := cfg.Validate(); err != nil {
			return nil, false, fmt.Errorf("%s: %w", path, err)
		}
		p, err := cfg.Profile(name)
		if err != nil {
			return nil, false, err
		}
		logger.Printf("profile %q schema %q", p.Name, p.Schema)
		parser, err = p.Parser(tokens)
		return parser, false, err
	}
	if name != "" {
		return nil, false, fmt.Errorf("%w: %q (no %s found)", profile.ErrNoProfile, name, profile.ConfigName)
	}

	if len(tokens) == 0 {
		tokens = demoArgs
	}
	logger.Printf("no schema given, using demo schema %q", demoSchema)
	parser, err = args.New(demoSchema, tokens)
	return parser, true, err
}

func loadConfig(e cliEnv, path string) (*profile.Config, string, error) {
	if path != "" {
		cfg, err := profile.LoadFile(path)
		return cfg, path, err
	}
	loc, err := profile.Load(e.cwd)
	if err != nil || loc == nil {
		return nil, "", err
	}
	return loc.Config, loc.Path, nil
}

func printDemo(w io.Writer, p *args.Parser) error {
	logging, err := p.Bool('l')
	if err != nil {
		return err
	}
	port, err := p.Int('p')
	if err != nil {
		return err
	}
	dir, err := p.String('d')
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "logging %t, port: %d, directory: %s\n", logging, port, dir)
	return nil
}

// printValues prints every schema flag in identifier order. Unset flags are
// reported, not treated as errors; decode failures are returned.
func printValues(w io.Writer, p *args.Parser, asJSON bool, colors tui.Colorizer) []error {
	schema := p.Schema()
	values := make(map[string]any)
	var errs []error
	for _, id := range schema.Flags() {
		kind := schema[id]
		v, err := p.Get(id, kind)
		switch {
		case errors.Is(err, args.ErrUnexpectedArgument):
			if !asJSON {
				fmt.Fprintf(w, "%c (%v) %s\n", id, kind, colors.Dim("unset"))
			}
		case err != nil:
			errs = append(errs, err)
		case asJSON:
			values[string(id)] = v.Any()
		default:
			fmt.Fprintf(w, "%c (%v) = %s\n", id, kind, colors.Cyan(v.String()))
		}
	}
	if asJSON && len(errs) == 0 {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(values); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
