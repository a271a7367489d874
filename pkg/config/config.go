// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/walteh/autoexif/pkg/paths"
	"gitlab.com/tozd/go/errors"
)

// Environment variables read by ApplyEnv.
const (
	EnvExiftoolPath = "AUTOEXIF_EXIFTOOL_PATH"
	EnvOutputSuffix = "AUTOEXIF_OUTPUT_SUFFIX"
	EnvDebug        = "AUTOEXIF_DEBUG"
)

var suffixPattern = regexp.MustCompile(`^\.[^/\\]+$`)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes data over cfg
	Parse(ctx context.Context, data []byte, cfg *Config) error

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔧 ExiftoolConfig configures the metadata engine
type ExiftoolConfig struct {
	// Path of the exiftool executable; empty means look it up on $PATH
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// 📁 OutputConfig configures derived output names
type OutputConfig struct {
	// Suffix is inserted before the input's extension
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Suffix,
			validation.Required,
			validation.Match(suffixPattern).Error("must start with '.' and contain no path separator"),
		),
	)
}

// 📚 Config represents the complete configuration
type Config struct {
	Exiftool ExiftoolConfig `json:"exiftool" yaml:"exiftool"`
	Output   OutputConfig   `json:"output" yaml:"output"`
	Debug    bool           `json:"debug,omitempty" yaml:"debug,omitempty"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Suffix: paths.DefaultSuffix},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return errors.Errorf("output: %w", err)
	}
	return nil
}

// 📋 LoadOptions selects the sources Load reads
type LoadOptions struct {
	// File is an optional YAML, JSON or HCL config file
	File string
	// EnvFile is an optional dotenv file loaded into the environment
	EnvFile string
}

// 🎯 Load builds a validated configuration from defaults, the config file and
// the environment.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	cfg := Default()

	if opts.File != "" {
		logger.Debug().Str("path", opts.File).Msg("loading configuration")
		if err := loadFile(ctx, opts.File, cfg); err != nil {
			return nil, err
		}
	}

	if opts.EnvFile != "" {
		logger.Debug().Str("path", opts.EnvFile).Msg("loading env file")
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, errors.Errorf("loading env file %s: %w", opts.EnvFile, err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadFile(ctx context.Context, path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return errors.Errorf("no parser found for file: %s", path)
	}

	expanded := os.ExpandEnv(string(data))
	if err := p.Parse(ctx, []byte(expanded), cfg); err != nil {
		return errors.Errorf("parsing config: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with the AUTOEXIF_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvExiftoolPath); ok {
		cfg.Exiftool.Path = v
	}
	if v, ok := os.LookupEnv(EnvOutputSuffix); ok {
		cfg.Output.Suffix = v
	}
	if v, ok := os.LookupEnv(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Errorf("parsing %s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}
	return nil
}
