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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/autoexif/pkg/config"
	"github.com/walteh/autoexif/pkg/engine"
	"gitlab.com/tozd/go/errors"
)

// 🧪 stubEngine serves a fixed snapshot and records writes
type stubEngine struct {
	fields   engine.Fields
	writeErr error
	writes   []engine.Fields
	closes   int
}

func (s *stubEngine) Read(_ context.Context, path string) (*engine.Snapshot, error) {
	return engine.NewSnapshot(path, s.fields), nil
}

func (s *stubEngine) Write(_ context.Context, _ string, fields engine.Fields) error {
	s.writes = append(s.writes, fields)
	return s.writeErr
}

func (s *stubEngine) Close() error {
	s.closes++
	return nil
}

func useEngine(t *testing.T, e engine.Engine) {
	t.Helper()
	prev := newEngine
	newEngine = func(*config.Config) engine.Engine { return e }
	t.Cleanup(func() { newEngine = prev })
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run(context.Background(), args, stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(input, []byte("jpeg bytes"), 0644))

	eng := &stubEngine{fields: engine.Fields{"ISO": 100, "SerialNumber": "123"}}
	useEngine(t, eng)

	code, stdout, stderr := execute(t, "-i", input)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	want := filepath.Join(dir, "photo.out.jpg")
	assert.Equal(t, want+"\n", stdout, "stdout should hold only the output path")
	assert.FileExists(t, want)
	assert.Equal(t, 1, eng.closes)
	require.Len(t, eng.writes, 2)
	assert.Equal(t, engine.ClearAllFields(), eng.writes[0])
	assert.Equal(t, engine.Fields{"ISO": 100, "XMPToolkit": ""}, eng.writes[1])
	assert.Contains(t, stderr, "dropped 1")
}

func TestRunCommandOptions(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(input, []byte("jpeg bytes"), 0644))

	t.Run("explicit_output", func(t *testing.T) {
		useEngine(t, &stubEngine{fields: engine.Fields{}})
		out := filepath.Join(dir, "clean.jpg")
		code, stdout, _ := execute(t, "--input", input, "--output", out)
		require.Equal(t, 0, code)
		assert.Equal(t, out+"\n", stdout)
	})

	t.Run("suffix_flag", func(t *testing.T) {
		useEngine(t, &stubEngine{fields: engine.Fields{}})
		code, stdout, _ := execute(t, "-i", input, "--suffix", ".safe")
		require.Equal(t, 0, code)
		assert.Equal(t, filepath.Join(dir, "photo.safe.jpg")+"\n", stdout)
	})

	t.Run("suffix_from_config", func(t *testing.T) {
		useEngine(t, &stubEngine{fields: engine.Fields{}})
		cfg := filepath.Join(t.TempDir(), "autoexif.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("output:\n  suffix: .cfg\n"), 0644))
		code, stdout, _ := execute(t, "-i", input, "-c", cfg)
		require.Equal(t, 0, code)
		assert.Equal(t, filepath.Join(dir, "photo.cfg.jpg")+"\n", stdout)
	})

	t.Run("summary", func(t *testing.T) {
		useEngine(t, &stubEngine{fields: engine.Fields{"FNumber": 1.8}})
		code, _, stderr := execute(t, "-i", input, "--summary")
		require.Equal(t, 0, code)
		assert.Contains(t, stderr, "FNumber")
		assert.Contains(t, stderr, "1.8")
	})
}

func TestRunCommandErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(input, []byte("jpeg bytes"), 0644))

	tests := []struct {
		name        string
		args        []string
		engine      *stubEngine
		errContains string
		noOutput    string
		rolledBack  string
	}{
		{
			name:        "missing_input_flag",
			args:        []string{},
			errContains: `required flag(s) "input" not set`,
		},
		{
			name:        "input_not_found",
			args:        []string{"-i", filepath.Join(dir, "missing.jpg")},
			errContains: "input not found",
			noOutput:    filepath.Join(dir, "missing.out.jpg"),
		},
		{
			name:        "same_path",
			args:        []string{"-i", input, "-o", input},
			errContains: "input and output are the same file",
		},
		{
			name:        "write_failure_rolls_back",
			args:        []string{"-i", input},
			engine:      &stubEngine{fields: engine.Fields{}, writeErr: errors.New("exiftool refused")},
			errContains: "exiftool refused",
			noOutput:    filepath.Join(dir, "photo.out.jpg"),
			rolledBack:  "photo.out.jpg",
		},
		{
			name:        "write_failure_rolls_back_explicit_output",
			args:        []string{"-i", input, "-o", filepath.Join(dir, "clean.jpg")},
			engine:      &stubEngine{fields: engine.Fields{}, writeErr: errors.New("exiftool refused")},
			errContains: "exiftool refused",
			noOutput:    filepath.Join(dir, "clean.jpg"),
			rolledBack:  "clean.jpg",
		},
		{
			name:        "invalid_suffix",
			args:        []string{"-i", input, "--suffix", "out"},
			errContains: "validating flags",
		},
		{
			name:        "unexpected_argument",
			args:        []string{"-i", input, "extra"},
			errContains: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := tt.engine
			if eng == nil {
				eng = &stubEngine{fields: engine.Fields{}}
			}
			useEngine(t, eng)

			code, stdout, stderr := execute(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.errContains)
			if tt.noOutput != "" {
				assert.NoFileExists(t, tt.noOutput)
			}
			if tt.rolledBack != "" {
				assert.Regexp(t, `✗ `+regexp.QuoteMeta(tt.rolledBack)+`\s+output\s+ROLLED BACK`, stderr)
			} else {
				assert.NotContains(t, stderr, "ROLLED BACK")
			}

			content, err := os.ReadFile(input)
			require.NoError(t, err)
			assert.Equal(t, "jpeg bytes", string(content))
		})
	}
}

func TestVersionCommand(t *testing.T) {
	code, stdout, _ := execute(t, "version")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "version")
	assert.Contains(t, stdout, runtime.Version())
	assert.Contains(t, stdout, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestReadBuildDetails(t *testing.T) {
	tests := []struct {
		name string
		bi   *debug.BuildInfo
		want [][]string
	}{
		{
			name: "no_build_info",
			want: [][]string{{"module", "autoexif"}, {"version", "dev"}},
		},
		{
			name: "devel_build",
			bi: &debug.BuildInfo{
				Main: debug.Module{Path: "github.com/walteh/autoexif", Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.modified", Value: "true"},
					{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
				},
			},
			want: [][]string{
				{"module", "github.com/walteh/autoexif"},
				{"version", "dev"},
				{"revision", "0123456789ab-dirty"},
				{"built", "2025-01-02T03:04:05Z"},
			},
		},
		{
			name: "tagged_release",
			bi: &debug.BuildInfo{
				Main: debug.Module{Path: "github.com/walteh/autoexif", Version: "v1.2.0"},
			},
			want: [][]string{{"module", "github.com/walteh/autoexif"}, {"version", "v1.2.0"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := readBuildDetails(tt.bi).rows()
			require.Len(t, rows, len(tt.want)+2, "go and platform rows always follow")
			assert.Equal(t, tt.want, rows[:len(tt.want)])
		})
	}
}
