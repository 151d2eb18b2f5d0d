// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile loads named argument schemas from a project file.
//
// The file is args.toml (or args.yaml) in the working directory or any of its
// parents:
//
//	version = 1
//	default = "server"
//
//	[[profiles]]
//	name = "server"
//	schema = "l,p#,d*"
//	args = ["-p8080"]
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kballard/go-shellquote"
	"github.com/yeetrun/args/pkg/args"
	"gopkg.in/yaml.v3"
)

const (
	ConfigName     = "args.toml"
	YAMLConfigName = "args.yaml"
	configVersion  = 1
)

// ErrNoProfile is returned when a named profile does not exist.
var ErrNoProfile = errors.New("profile not found")

type Config struct {
	Version  int       `toml:"version,omitempty" yaml:"version,omitempty"`
	Default  string    `toml:"default,omitempty" yaml:"default,omitempty"`
	Profiles []Profile `toml:"profiles,omitempty" yaml:"profiles,omitempty"`
}

// Profile is a schema plus arguments prepended to those given on the
// command line. Line holds further arguments as one shell-quoted string and
// is applied after Args.
type Profile struct {
	Name   string   `toml:"name" yaml:"name"`
	Schema string   `toml:"schema" yaml:"schema"`
	Args   []string `toml:"args,omitempty" yaml:"args,omitempty"`
	Line   string   `toml:"line,omitempty" yaml:"line,omitempty"`
}

// Location is a loaded config and where it was found.
type Location struct {
	Path   string
	Dir    string
	Config *Config
}

// Load finds and loads the config starting at startDir. It returns nil, nil
// if there is no config file.
func Load(startDir string) (*Location, error) {
	path, err := Find(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &Location{Path: path, Dir: filepath.Dir(path), Config: cfg}, nil
}

// Find returns the path of the nearest config file at or above startDir.
func Find(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range []string{ConfigName, YAMLConfigName} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadFile reads a TOML or YAML config, chosen by file extension.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if isYAML(path) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Version == 0 {
		cfg.Version = configVersion
	}
	if cfg.Version != configVersion {
		return nil, fmt.Errorf("%s: unsupported version %d", path, cfg.Version)
	}
	return &cfg, nil
}

// Save writes cfg to path with profiles sorted by name.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return nil
	}
	if cfg.Version == 0 {
		cfg.Version = configVersion
	}
	sort.Slice(cfg.Profiles, func(i, j int) bool {
		return cfg.Profiles[i].Name < cfg.Profiles[j].Name
	})
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if isYAML(path) {
		enc := yaml.NewEncoder(f)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	} else if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return err
	}
	return f.Close()
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Profile returns the named profile. An empty name selects the default.
func (c *Config) Profile(name string) (Profile, error) {
	if c == nil {
		return Profile{}, fmt.Errorf("%w: %q", ErrNoProfile, name)
	}
	if name == "" {
		name = c.Default
	}
	if name == "" && len(c.Profiles) == 1 {
		return c.Profiles[0], nil
	}
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrNoProfile, name)
}

// Validate checks that profile names are unique and every schema compiles.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	var errs []error
	for _, p := range c.Profiles {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			errs = append(errs, errors.New("profile with empty name"))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("duplicate profile %q", name))
			continue
		}
		seen[name] = true
		if _, err := args.ParseSchema(p.Schema); err != nil {
			errs = append(errs, fmt.Errorf("profile %q: %w", name, err))
		}
		if _, err := shellquote.Split(p.Line); err != nil {
			errs = append(errs, fmt.Errorf("profile %q: line: %w", name, err))
		}
	}
	if c.Default != "" && !seen[c.Default] {
		errs = append(errs, fmt.Errorf("default profile %q is not defined", c.Default))
	}
	return errors.Join(errs...)
}

// Arguments returns the profile's own arguments: Args then the words of Line.
func (p Profile) Arguments() ([]string, error) {
	words, err := shellquote.Split(p.Line)
	if err != nil {
		return nil, fmt.Errorf("profile %q: line: %w", p.Name, err)
	}
	return append(slices.Clone(p.Args), words...), nil
}

// Parser builds a parser from the profile schema, decoding the profile's own
// arguments followed by extra.
func (p Profile) Parser(extra []string) (*args.Parser, error) {
	all, err := p.Arguments()
	if err != nil {
		return nil, err
	}
	all = append(all, extra...)
	parser, err := args.New(p.Schema, all)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return parser, nil
}
