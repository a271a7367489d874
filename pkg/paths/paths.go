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

// Package paths resolves and validates the input and output locations of a run.
package paths

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultSuffix is inserted before the input's extension when no output is given.
const DefaultSuffix = ".out"

var (
	// ErrInputNotFound means the input is missing, unreadable or not a regular file.
	ErrInputNotFound = errors.Base("input not found")
	// ErrSamePath means the output would overwrite the input.
	ErrSamePath = errors.Base("input and output are the same file")
)

// 📍 FilePaths holds the resolved absolute locations of a run.
type FilePaths struct {
	Input  string
	Output string
}

// 🔍 Resolve makes input and output absolute, checks the input is readable and
// derives the output from suffix when output is empty. It never touches the
// filesystem beyond reading.
func Resolve(ctx context.Context, input, output, suffix string) (*FilePaths, error) {
	logger := zerolog.Ctx(ctx)

	absInput, err := filepath.Abs(input)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %w", ErrInputNotFound, input, err)
	}
	if err := checkReadable(absInput); err != nil {
		return nil, errors.Errorf("%w: %s: %w", ErrInputNotFound, absInput, err)
	}

	var absOutput string
	if output != "" {
		absOutput, err = filepath.Abs(output)
		if err != nil {
			return nil, errors.Errorf("resolving output %s: %w", output, err)
		}
	} else {
		absOutput = DefaultOutput(absInput, suffix)
	}

	same, err := samePath(absInput, absOutput)
	if err != nil {
		return nil, err
	}
	if same {
		return nil, errors.Errorf("%w: %s", ErrSamePath, absInput)
	}

	logger.Debug().Str("input", absInput).Str("output", absOutput).Msg("paths resolved")
	return &FilePaths{Input: absInput, Output: absOutput}, nil
}

// DefaultOutput inserts suffix before the extension of input, in input's
// directory: photo.jpg becomes photo.out.jpg.
func DefaultOutput(input, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	dir, base := filepath.Split(input)
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+suffix+ext)
}

func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return errors.New("not a regular file")
	}
	return nil
}

// samePath compares the cleaned paths and, when output exists, the files they
// point at, so links to the input are rejected too.
func samePath(input, output string) (bool, error) {
	if filepath.Clean(input) == filepath.Clean(output) {
		return true, nil
	}

	outInfo, err := os.Stat(output)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Errorf("stat output %s: %w", output, err)
	}
	inInfo, err := os.Stat(input)
	if err != nil {
		return false, errors.Errorf("%w: %s: %w", ErrInputNotFound, input, err)
	}
	return os.SameFile(inInfo, outInfo), nil
}
