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
	"github.com/walteh/autoexif/pkg/paths"
	"gitlab.com/tozd/go/errors"
)

// 📋 RunArgs are the user supplied locations of a run
type RunArgs struct {
	// Input is the image to read
	Input string
	// Output is where the copy goes; derived from Input when empty
	Output string
	// Suffix is inserted before the extension of a derived output
	Suffix string
}

// 🎯 Run resolves the paths of args and processes them.
//
// The engine is closed exactly once before Run returns, whatever the outcome.
// A close failure is returned only when nothing else failed first; otherwise
// it is logged and the earlier error wins.
func Run(ctx context.Context, opts Options, args RunArgs) (res *Result, err error) {
	if opts.Engine == nil {
		return nil, errors.Errorf("engine is required")
	}

	defer func() {
		cerr := opts.Engine.Close()
		if cerr == nil {
			return
		}
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(cerr).Msg("shutting down metadata engine")
			return
		}
		res = nil
		err = errors.Errorf("%w: %w", ErrEngineShutdown, cerr)
	}()

	p, err := New(opts)
	if err != nil {
		return nil, err
	}

	fp, err := paths.Resolve(ctx, args.Input, args.Output, args.Suffix)
	if err != nil {
		return nil, err
	}

	return p.Process(ctx, fp)
}
