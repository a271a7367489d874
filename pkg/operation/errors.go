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
	"github.com/walteh/autoexif/pkg/paths"
	"gitlab.com/tozd/go/errors"
)

// Each failure of a run matches exactly one of these with errors.Is.
var (
	ErrInputNotFound  = paths.ErrInputNotFound
	ErrSamePath       = paths.ErrSamePath
	ErrMetadataRead   = errors.Base("reading metadata failed")
	ErrCopy           = errors.Base("copying file failed")
	ErrMetadataWrite  = errors.Base("writing metadata failed")
	ErrEngineShutdown = errors.Base("shutting down metadata engine failed")
)
