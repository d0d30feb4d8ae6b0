// Package config provides configuration management for roundtrip.
//
// A project configures the checker and the test generator with a
// .roundtrip.yaml file in the package directory. Every field is optional;
// missing fields keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nomagicln/roundtrip/internal/logging"
	"github.com/nomagicln/roundtrip/pkg/checker"
	"github.com/nomagicln/roundtrip/pkg/codegen"
	"github.com/nomagicln/roundtrip/pkg/testdata"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the configuration file looked up in a
	// package directory.
	FileName = ".roundtrip.yaml"

	// EnvConfig overrides the configuration file location.
	EnvConfig = "ROUNDTRIP_CONFIG"
)

// Config represents the roundtrip configuration of a project.
type Config struct {
	// Seed is the base seed of the values handed to setters.
	Seed string `yaml:"seed"`

	// Exclude is a regular expression; pairs whose getter and setter
	// names both fully match it are not checked.
	Exclude string `yaml:"exclude,omitempty"`

	// ItemCount is the number of elements of synthesized slices, lists and sets.
	ItemCount int `yaml:"item_count"`

	// Elements is "synthesized" or "zero".
	Elements string `yaml:"elements"`

	// ImplicitConstructors enables field-wise and zero struct literals for
	// structs without registered constructors. Nil means enabled.
	ImplicitConstructors *bool `yaml:"implicit_constructors,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `yaml:"log"`

	// Codegen contains test generation configuration.
	Codegen CodegenConfig `yaml:"codegen"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	// Level is a logrus level name.
	Level string `yaml:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// CodegenConfig represents test generation configuration.
type CodegenConfig struct {
	// Format is a registered codegen output format.
	Format string `yaml:"format"`

	// Output is the name of the generated file.
	Output string `yaml:"output"`
}

// ValidationError indicates an invalid configuration value.
type ValidationError struct {
	Field   string
	Value   any
	Reason  string
	Wrapped error
}

func (e *ValidationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("invalid %s %v: %s: %v", e.Field, e.Value, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Seed:      checker.DefaultSeed,
		ItemCount: testdata.DefaultItemCount,
		Elements:  string(testdata.ElementsSynthesized),
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
		Codegen: CodegenConfig{
			Format: string(codegen.FormatTesting),
			Output: codegen.DefaultOutput,
		},
	}
}

// Load reads the configuration file at path over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file '%s': %w", path, err)
	}

	return cfg, nil
}

// Locate returns the configuration file for dir: the file named by
// ROUNDTRIP_CONFIG when set, else dir/.roundtrip.yaml when it exists.
func Locate(dir string) (string, bool) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, true
	}

	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}
	return "", false
}

// LoadDir loads the configuration located for dir, or the defaults when
// there is none.
func LoadDir(dir string) (*Config, error) {
	path, ok := Locate(dir)
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Save writes cfg to path.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write atomically by writing to temp file first
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up temp file
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// Validate checks every field and returns all problems joined, each a
// *ValidationError.
func (c *Config) Validate() error {
	var errs []error

	if c.Seed == "" {
		errs = append(errs, &ValidationError{Field: "seed", Value: `""`, Reason: "seed cannot be empty"})
	}
	if _, err := checker.CompileExclusion(c.Exclude); err != nil {
		errs = append(errs, &ValidationError{Field: "exclude", Value: c.Exclude, Reason: "not a regular expression", Wrapped: err})
	}
	if c.ItemCount <= 0 {
		errs = append(errs, &ValidationError{Field: "item_count", Value: c.ItemCount, Reason: "must be positive"})
	}
	if !testdata.ElementMode(c.Elements).Valid() {
		errs = append(errs, &ValidationError{Field: "elements", Value: c.Elements, Reason: "must be synthesized or zero"})
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, &ValidationError{Field: "log.level", Value: c.Log.Level, Reason: "unknown level", Wrapped: err})
		}
	}
	if c.Log.Format != "" && !logging.ValidFormat(c.Log.Format) {
		errs = append(errs, &ValidationError{Field: "log.format", Value: c.Log.Format, Reason: "must be text or json"})
	}
	if !codegen.ValidateFormat(c.Codegen.Format) {
		errs = append(errs, &ValidationError{Field: "codegen.format", Value: c.Codegen.Format, Reason: fmt.Sprintf("must be one of %v", codegen.ListFormats())})
	}
	if c.Codegen.Output == "" || filepath.Ext(c.Codegen.Output) != ".go" {
		errs = append(errs, &ValidationError{Field: "codegen.output", Value: c.Codegen.Output, Reason: "must name a .go file"})
	}

	return errors.Join(errs...)
}

// ImplicitConstructorsEnabled reports whether implicit struct constructors are on.
func (c *Config) ImplicitConstructorsEnabled() bool {
	return c.ImplicitConstructors == nil || *c.ImplicitConstructors
}

// CodegenOptions returns the options of the test generator. The generated
// test builds its provider and check from them.
func (c *Config) CodegenOptions() codegen.Options {
	return codegen.Options{
		Seed:                   c.Seed,
		Exclude:                c.Exclude,
		ItemCount:              c.ItemCount,
		Elements:               testdata.ElementMode(c.Elements),
		NoImplicitConstructors: !c.ImplicitConstructorsEnabled(),
	}
}
