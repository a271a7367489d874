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

// Package operation runs the metadata transfer pipeline
package operation

import (
	"github.com/walteh/autoexif/pkg/engine"
	"github.com/walteh/autoexif/pkg/fileops"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains the collaborators of a pipeline
type Options struct {
	// Engine reads and rewrites metadata
	Engine engine.Engine
	// FS duplicates and removes files
	FS fileops.FS
}

// 🎮 Pipeline copies a file and reduces the copy's metadata to the allow-list
type Pipeline struct {
	engine engine.Engine
	fs     fileops.FS
}

// 📦 Result describes a completed run
type Result struct {
	// OutputPath is the absolute path of the file written
	OutputPath string
	// Preserved holds the fields written back to the output
	Preserved engine.Fields
	// Dropped counts the input fields that were discarded
	Dropped int
}

// 🏭 New creates a pipeline with the given options
func New(opts Options) (*Pipeline, error) {
	if opts.Engine == nil {
		return nil, errors.Errorf("engine is required")
	}
	if opts.FS == nil {
		return nil, errors.Errorf("filesystem is required")
	}
	return &Pipeline{
		engine: opts.Engine,
		fs:     opts.FS,
	}, nil
}
