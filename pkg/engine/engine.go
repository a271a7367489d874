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

// Package engine is the boundary to the metadata engine that reads and rewrites
// the embedded EXIF/XMP/IPTC blocks of a file.
package engine

import (
	"context"
	"maps"
	"slices"
)

// ClearAll is the field name that, written with a nil value, erases every
// metadata field of the target file.
const ClearAll = "All"

// 📦 Fields maps a metadata field name to its value. A nil value deletes the field.
type Fields map[string]any

// Clone returns a shallow copy of f.
func (f Fields) Clone() Fields {
	if f == nil {
		return Fields{}
	}
	return maps.Clone(f)
}

// Keys returns the field names in sorted order.
func (f Fields) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// ClearAllFields returns the directive that strips all metadata from a file.
func ClearAllFields() Fields {
	return Fields{ClearAll: nil}
}

// 📸 Snapshot is the full metadata of a file captured by a single read.
type Snapshot struct {
	path   string
	fields Fields
}

// NewSnapshot captures a copy of fields read from path.
func NewSnapshot(path string, fields Fields) *Snapshot {
	return &Snapshot{path: path, fields: fields.Clone()}
}

// Path returns the file the snapshot was read from.
func (s *Snapshot) Path() string {
	return s.path
}

// Get returns the value of name and whether it is present and non-nil.
func (s *Snapshot) Get(name string) (any, bool) {
	v, ok := s.fields[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Len returns the number of fields in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.fields)
}

// Keys returns the field names in sorted order.
func (s *Snapshot) Keys() []string {
	return s.fields.Keys()
}

// 🔌 Engine reads and writes file metadata.
type Engine interface {
	// Read returns the full metadata of the file at path.
	Read(ctx context.Context, path string) (*Snapshot, error)
	// Write applies fields to the file at path, overwriting it in place.
	Write(ctx context.Context, path string, fields Fields) error
	// Close releases the engine session.
	Close() error
}
