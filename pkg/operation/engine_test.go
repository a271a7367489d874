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

package operation_test

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/walteh/autoexif/pkg/engine"
	"gitlab.com/tozd/go/errors"
)

// 🧪 jsonEngine is an Engine whose "images" are JSON objects of metadata, so a
// byte copy of a file also copies its metadata.
type jsonEngine struct {
	mu     sync.Mutex
	closes int

	// failWrite makes the n-th Write (1-based) fail
	failWrite int
	writes    int
}

var _ engine.Engine = (*jsonEngine)(nil)

func writeImage(path string, fields engine.Fields) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func readImage(path string) (engine.Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fields := engine.Fields{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (e *jsonEngine) Read(_ context.Context, path string) (*engine.Snapshot, error) {
	fields, err := readImage(path)
	if err != nil {
		return nil, err
	}
	return engine.NewSnapshot(path, fields), nil
}

func (e *jsonEngine) Write(_ context.Context, path string, fields engine.Fields) error {
	e.mu.Lock()
	e.writes++
	n := e.writes
	e.mu.Unlock()

	if n == e.failWrite {
		return errors.New("injected write failure")
	}

	current, err := readImage(path)
	if err != nil {
		return err
	}
	if v, ok := fields[engine.ClearAll]; ok && v == nil {
		current = engine.Fields{}
	}
	for k, v := range fields {
		if k == engine.ClearAll {
			continue
		}
		// exiftool deletes a tag assigned an empty value
		if v == nil || v == "" {
			delete(current, k)
			continue
		}
		current[k] = v
	}
	return writeImage(path, current)
}

func (e *jsonEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closes++
	return nil
}
