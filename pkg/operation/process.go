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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/autoexif/pkg/allowlist"
	"github.com/walteh/autoexif/pkg/engine"
	"github.com/walteh/autoexif/pkg/paths"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Process writes a copy of fp.Input to fp.Output holding only the allowed
// metadata of the input. The input is only ever read. If stripping or
// rewriting the copy fails, the copy is removed before the error is returned.
func (p *Pipeline) Process(ctx context.Context, fp *paths.FilePaths) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("input", fp.Input).Str("output", fp.Output).Logger()

	// metadata is captured before anything destructive happens
	logger.Debug().Msg("reading metadata")
	snap, err := p.engine.Read(ctx, fp.Input)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %w", ErrMetadataRead, fp.Input, err)
	}

	logger.Debug().Msg("copying file")
	if err := p.fs.Copy(ctx, fp.Input, fp.Output); err != nil {
		return nil, errors.Errorf("%w: %s to %s: %w", ErrCopy, fp.Input, fp.Output, err)
	}

	preserved := allowlist.Preserve(snap)
	dropped := countDropped(snap)
	logger.Debug().Strs("preserved", preserved.Keys()).Int("dropped", dropped).Msg("fields selected")

	if err := p.rewrite(ctx, fp.Output, preserved); err != nil {
		logger.Debug().Err(err).Msg("rolling back output")
		if rmErr := p.fs.Remove(ctx, fp.Output); rmErr != nil {
			logger.Error().Err(rmErr).Msg("removing incomplete output")
		}
		return nil, err
	}

	logger.Debug().Msg("metadata transfer complete")
	return &Result{
		OutputPath: fp.Output,
		Preserved:  preserved,
		Dropped:    dropped,
	}, nil
}

// rewrite strips every field from path, then writes back preserved.
func (p *Pipeline) rewrite(ctx context.Context, path string, preserved engine.Fields) error {
	if err := p.engine.Write(ctx, path, engine.ClearAllFields()); err != nil {
		return errors.Errorf("%w: clearing %s: %w", ErrMetadataWrite, path, err)
	}
	if len(preserved) == 0 {
		return nil
	}
	if err := p.engine.Write(ctx, path, preserved); err != nil {
		return errors.Errorf("%w: restoring fields of %s: %w", ErrMetadataWrite, path, err)
	}
	return nil
}

func countDropped(snap *engine.Snapshot) int {
	n := 0
	for _, k := range snap.Keys() {
		if !allowlist.Contains(k) {
			n++
		}
	}
	return n
}
