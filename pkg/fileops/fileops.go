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

// Package fileops is the filesystem boundary used to duplicate and roll back
// output files.
package fileops

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🗂️ FS copies and removes files.
type FS interface {
	// Copy duplicates src to dst byte for byte, replacing dst if it exists.
	Copy(ctx context.Context, src, dst string) error
	// Remove deletes path. A missing file is not an error.
	Remove(ctx context.Context, path string) error
}

// OS is the FS of the local operating system.
type OS struct{}

var _ FS = OS{}

// 📋 Copy writes src to a temp file next to dst and renames it into place, so a
// failed copy never leaves a partial file at dst.
func (OS) Copy(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Errorf("stat source: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	n, err := io.Copy(tmp, in)
	if err != nil {
		return errors.Errorf("copying bytes: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return errors.Errorf("setting file mode: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return errors.Errorf("renaming temp file: %w", err)
	}
	success = true

	zerolog.Ctx(ctx).Debug().Str("src", src).Str("dst", dst).Int64("bytes", n).Msg("file copied")
	return nil
}

// 🗑️ Remove deletes path.
func (OS) Remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Errorf("removing %s: %w", path, err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("file removed")
	return nil
}
