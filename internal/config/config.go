// Package config holds the settings of the regexfa command. Values come from
// an optional YAML file; command-line flags that were set explicitly win.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Codegen struct {
	Output  string `yaml:"output"`
	Package string `yaml:"package"`
	Name    string `yaml:"name"`
}

type Config struct {
	Minimize bool    `yaml:"minimize"`
	Verbose  bool    `yaml:"verbose"`
	Graph    string  `yaml:"graph"`
	Codegen  Codegen `yaml:"codegen"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{Codegen: Codegen{Package: "main", Name: "Pattern"}}
}

// Load reads a YAML file on top of Default. Unknown keys are an error and
// an empty file leaves the defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects code generation settings that cannot produce a file.
func (c Config) Validate() error {
	if c.Codegen.Output == "" {
		return nil
	}
	if c.Codegen.Package == "" {
		return fmt.Errorf("%w: codegen.output set without codegen.package", ErrInvalid)
	}
	if c.Codegen.Name == "" {
		return fmt.Errorf("%w: codegen.output set without codegen.name", ErrInvalid)
	}
	return nil
}
