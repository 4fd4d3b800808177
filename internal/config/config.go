// Package config turns a .hspec.yaml file, the HSPEC_OPTIONS environment
// variable and command-line flags into run options. Later sources override
// earlier ones; --match and --skip accumulate.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lehins/hspec/pkg/formatters"
	"github.com/lehins/hspec/pkg/hspec"
)

const (
	// DefaultFile is read when present and no --config flag is given.
	DefaultFile = ".hspec.yaml"

	// EnvOptions holds extra flags, split on whitespace, applied after the
	// file and before the command line.
	EnvOptions = "HSPEC_OPTIONS"
)

// ErrHelp is returned when -h or --help was requested.
var ErrHelp = flag.ErrHelp

// File mirrors the keys accepted in .hspec.yaml.
type File struct {
	Color   *hspec.ColorMode `yaml:"color"`
	Verbose *bool            `yaml:"verbose"`
	Format  string           `yaml:"format"`
	Out     string           `yaml:"out"`
	Match   []string         `yaml:"match"`
	Skip    []string         `yaml:"skip"`
	Tags    string           `yaml:"tags"`
}

// Settings is the merged configuration.
type Settings struct {
	Color   hspec.ColorMode
	Verbose bool
	Format  string
	Out     string
	Match   []string
	Skip    []string
	Tags    string
}

// ReadFile decodes a configuration file. Unknown keys are an error.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return decodeFile(path, data)
}

func decodeFile(path string, data []byte) (File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return f, nil
}

// apply copies the keys present in f over s.
func (f File) apply(s *Settings) {
	if f.Color != nil {
		s.Color = *f.Color
	}
	if f.Verbose != nil {
		s.Verbose = *f.Verbose
	}
	if f.Format != "" {
		s.Format = f.Format
	}
	if f.Out != "" {
		s.Out = f.Out
	}
	if f.Tags != "" {
		s.Tags = f.Tags
	}
	s.Match = append(s.Match, f.Match...)
	s.Skip = append(s.Skip, f.Skip...)
}

// Parse merges the configuration file, EnvOptions and args.
func Parse(args []string) (Settings, error) {
	cmdline := append(strings.Fields(os.Getenv(EnvOptions)), args...)

	fl, err := parseFlags(cmdline)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	switch {
	case fl.config != "":
		file, err := ReadFile(fl.config)
		if err != nil {
			return Settings{}, err
		}
		file.apply(&s)
	default:
		file, err := ReadFile(DefaultFile)
		switch {
		case err == nil:
			file.apply(&s)
		case errors.Is(err, os.ErrNotExist):
		default:
			return Settings{}, err
		}
	}

	fl.apply(&s)
	return s, nil
}

// Load is Parse followed by Settings.Options.
func Load(args []string) ([]hspec.Option, error) {
	s, err := Parse(args)
	if err != nil {
		return nil, err
	}
	return s.Options()
}

// Options converts the settings into run options.
func (s Settings) Options() ([]hspec.Option, error) {
	opts := []hspec.Option{
		hspec.WithColor(s.Color),
		hspec.WithVerbose(s.Verbose),
	}
	if s.Format != "" {
		factory, err := formatters.Lookup(s.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, hspec.WithFormatter(factory))
	}
	if s.Out != "" {
		opts = append(opts, hspec.WithOutputPath(s.Out))
	}
	if len(s.Match) > 0 {
		opts = append(opts, hspec.WithFilter(hspec.Match(s.Match...)))
	}
	if len(s.Skip) > 0 {
		opts = append(opts, hspec.WithFilter(hspec.Skip(s.Skip...)))
	}
	if s.Tags != "" {
		opts = append(opts, hspec.WithTags(s.Tags))
	}
	return opts, nil
}
