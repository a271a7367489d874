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
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		config      string
		env         map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ".out", cfg.Output.Suffix, "suffix should default")
				assert.Empty(t, cfg.Exiftool.Path, "exiftool path should be empty")
				assert.False(t, cfg.Debug, "debug should be off")
			},
		},
		{
			name: "yaml_config",
			file: "autoexif.yaml",
			config: `
exiftool:
  path: /usr/local/bin/exiftool
output:
  suffix: .clean
debug: true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/usr/local/bin/exiftool", cfg.Exiftool.Path)
				assert.Equal(t, ".clean", cfg.Output.Suffix)
				assert.True(t, cfg.Debug)
			},
		},
		{
			name:   "yaml_keeps_defaults",
			file:   "autoexif.yml",
			config: "debug: true\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ".out", cfg.Output.Suffix)
				assert.True(t, cfg.Debug)
			},
		},
		{
			name:   "empty_yaml",
			file:   "autoexif.yaml",
			config: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ".out", cfg.Output.Suffix)
			},
		},
		{
			name:        "yaml_unknown_field",
			file:        "autoexif.yaml",
			config:      "allowlist: [GPSLatitude]\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:   "json_config",
			file:   "autoexif.json",
			config: `{"exiftool": {"path": "/opt/exiftool"}, "output": {"suffix": ".stripped"}}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/opt/exiftool", cfg.Exiftool.Path)
				assert.Equal(t, ".stripped", cfg.Output.Suffix)
			},
		},
		{
			name:        "json_unknown_field",
			file:        "autoexif.json",
			config:      `{"extra": true}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name: "hcl_config",
			file: "autoexif.hcl",
			config: `
debug = true

exiftool {
  path = "/usr/bin/exiftool"
}

output {
  suffix = ".safe"
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/usr/bin/exiftool", cfg.Exiftool.Path)
				assert.Equal(t, ".safe", cfg.Output.Suffix)
				assert.True(t, cfg.Debug)
			},
		},
		{
			name:   "hcl_partial",
			file:   "autoexif.hcl",
			config: "exiftool {\n}\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ".out", cfg.Output.Suffix)
				assert.Empty(t, cfg.Exiftool.Path)
			},
		},
		{
			name:        "hcl_syntax_error",
			file:        "autoexif.hcl",
			config:      "output {",
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "unsupported_extension",
			file:        "autoexif.toml",
			config:      "debug = true",
			wantErr:     true,
			errContains: "no parser found",
		},
		{
			name:   "env_expansion_in_file",
			file:   "autoexif.yaml",
			config: "exiftool:\n  path: ${AUTOEXIF_TEST_HOME}/bin/exiftool\n",
			env:    map[string]string{"AUTOEXIF_TEST_HOME": "/home/tester"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/home/tester/bin/exiftool", cfg.Exiftool.Path)
			},
		},
		{
			name:   "env_overrides_file",
			file:   "autoexif.yaml",
			config: "output:\n  suffix: .file\n",
			env: map[string]string{
				EnvOutputSuffix: ".env",
				EnvExiftoolPath: "/env/exiftool",
				EnvDebug:        "true",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ".env", cfg.Output.Suffix)
				assert.Equal(t, "/env/exiftool", cfg.Exiftool.Path)
				assert.True(t, cfg.Debug)
			},
		},
		{
			name:        "bad_debug_env",
			env:         map[string]string{EnvDebug: "maybe"},
			wantErr:     true,
			errContains: EnvDebug,
		},
		{
			name:        "suffix_without_dot",
			env:         map[string]string{EnvOutputSuffix: "out"},
			wantErr:     true,
			errContains: "validating config",
		},
		{
			name:        "suffix_with_separator",
			env:         map[string]string{EnvOutputSuffix: ".out/x"},
			wantErr:     true,
			errContains: "validating config",
		},
		{
			name:        "empty_suffix",
			env:         map[string]string{EnvOutputSuffix: ""},
			wantErr:     true,
			errContains: "validating config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			opts := LoadOptions{}
			if tt.file != "" {
				opts.File = writeConfig(t, tt.file, tt.config)
			}

			cfg, err := Load(testContext(t), opts)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	// register cleanup for variables the env file sets
	t.Setenv(EnvOutputSuffix, "")
	os.Unsetenv(EnvOutputSuffix)
	t.Setenv(EnvExiftoolPath, "")
	os.Unsetenv(EnvExiftoolPath)

	envFile := writeConfig(t, ".env", "AUTOEXIF_OUTPUT_SUFFIX=.dotenv\nAUTOEXIF_EXIFTOOL_PATH=/dotenv/exiftool\n")

	cfg, err := Load(testContext(t), LoadOptions{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, ".dotenv", cfg.Output.Suffix)
	assert.Equal(t, "/dotenv/exiftool", cfg.Exiftool.Path)
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(testContext(t), LoadOptions{File: filepath.Join(dir, "missing.yaml")})
	assert.ErrorContains(t, err, "reading config file")

	_, err = Load(testContext(t), LoadOptions{EnvFile: filepath.Join(dir, "missing.env")})
	assert.ErrorContains(t, err, "loading env file")
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, GetParser("a.yaml"))
	assert.IsType(t, &YAMLParser{}, GetParser("a.YML"))
	assert.IsType(t, &JSONParser{}, GetParser("a.json"))
	assert.IsType(t, &HCLParser{}, GetParser("dir/a.hcl"))
	assert.Nil(t, GetParser("a.ini"))
}
