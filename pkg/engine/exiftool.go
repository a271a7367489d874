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

package engine

import (
	"context"
	"regexp"
	"sync"

	"github.com/barasher/go-exiftool"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrClosed is returned by an Exiftool engine used after Close.
var ErrClosed = errors.Base("exiftool session closed")

// unchangedResponse matches what exiftool prints when a write leaves the file
// as it was, e.g. clearing a file that carries no metadata. go-exiftool only
// accepts "1 image files updated" and reports anything else as an error.
var unchangedResponse = regexp.MustCompile(`(?m)^\s*0 image files updated\s*\n\s*1 image files unchanged\s*$`)

// session is the subset of *exiftool.Exiftool the engine drives.
type session interface {
	ExtractMetadata(files ...string) []exiftool.FileMetadata
	WriteMetadata(fileMetadata []exiftool.FileMetadata)
	Close() error
}

// 🔧 Exiftool is an Engine backed by a stay-open exiftool process.
//
// The process is started on the first Read or Write, so an Exiftool that is
// never used never spawns one. Writes replace the file in place: the backup
// option of go-exiftool is never enabled, which makes it pass
// -overwrite_original on every write.
type Exiftool struct {
	binaryPath string
	start      func(binaryPath string) (session, error)

	mu     sync.Mutex
	sess   session
	closed bool
}

var _ Engine = (*Exiftool)(nil)

// ExiftoolOption configures an Exiftool engine.
type ExiftoolOption func(*Exiftool)

// WithBinaryPath runs the exiftool executable at path instead of the one on $PATH.
func WithBinaryPath(path string) ExiftoolOption {
	return func(e *Exiftool) {
		e.binaryPath = path
	}
}

// 🏭 NewExiftool creates an engine. No process is started until first use.
func NewExiftool(opts ...ExiftoolOption) *Exiftool {
	e := &Exiftool{start: startExiftool}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func startExiftool(binaryPath string) (session, error) {
	var opts []func(*exiftool.Exiftool) error
	if binaryPath != "" {
		opts = append(opts, exiftool.SetExiftoolBinaryPath(binaryPath))
	}
	et, err := exiftool.NewExiftool(opts...)
	if err != nil {
		return nil, err
	}
	return et, nil
}

// session returns the running process, starting it if needed. Callers hold e.mu.
func (e *Exiftool) session(ctx context.Context) (session, error) {
	if e.closed {
		return nil, ErrClosed
	}
	if e.sess != nil {
		return e.sess, nil
	}

	zerolog.Ctx(ctx).Debug().Str("binary", e.binaryPath).Msg("starting exiftool")
	s, err := e.start(e.binaryPath)
	if err != nil {
		return nil, errors.Errorf("starting exiftool: %w", err)
	}
	e.sess = s
	return s, nil
}

// 📖 Read extracts all metadata of the file at path.
func (e *Exiftool) Read(ctx context.Context, path string) (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.session(ctx)
	if err != nil {
		return nil, err
	}

	fms := s.ExtractMetadata(path)
	if len(fms) != 1 {
		return nil, errors.Errorf("extracting metadata of %s: got %d results", path, len(fms))
	}
	if fms[0].Err != nil {
		return nil, errors.Errorf("extracting metadata of %s: %w", path, fms[0].Err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("fields", len(fms[0].Fields)).Msg("metadata read")
	return NewSnapshot(path, Fields(fms[0].Fields)), nil
}

// ✏️ Write applies fields to the file at path in place.
func (e *Exiftool) Write(ctx context.Context, path string, fields Fields) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.session(ctx)
	if err != nil {
		return err
	}

	fms := []exiftool.FileMetadata{{
		File:   path,
		Fields: map[string]interface{}(fields.Clone()),
	}}
	s.WriteMetadata(fms)
	if err := fms[0].Err; err != nil {
		if !unchangedResponse.MatchString(err.Error()) {
			return errors.Errorf("writing metadata of %s: %w", path, err)
		}
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("metadata already in place")
		return nil
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Strs("fields", fields.Keys()).Msg("metadata written")
	return nil
}

// 🛑 Close stops the exiftool process. Only the first call has an effect.
func (e *Exiftool) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	if e.sess == nil {
		return nil
	}
	if err := e.sess.Close(); err != nil {
		return errors.Errorf("closing exiftool: %w", err)
	}
	return nil
}
