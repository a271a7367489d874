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

// Package allowlist holds the fixed set of technical metadata fields that
// survive stripping.
package allowlist

import (
	"github.com/walteh/autoexif/pkg/engine"
)

// ResetMarker is always written back with an empty value so the engine's own
// container marker does not survive the rewrite.
const ResetMarker = "XMPToolkit"

// Fields lists the exiftool tag names kept in the output, in write order.
// Nothing here identifies a device, owner or location.
var Fields = []string{
	// exposure
	"ExposureTime",
	"FNumber",
	"ISO",
	"ExposureProgram",
	"ExposureMode",
	"ExposureCompensation",
	"ShutterSpeedValue",
	"ApertureValue",
	"BrightnessValue",
	"MaxApertureValue",
	"MeteringMode",
	"Flash",

	// focal length
	"FocalLength",
	"FocalLengthIn35mmFormat",
	"DigitalZoomRatio",

	// color and white balance
	"WhiteBalance",
	"ColorSpace",
	"ColorTemperature",
	"LightSource",
	"Saturation",
	"Contrast",
	"Sharpness",
	"SceneCaptureType",
	"GainControl",

	// resolution
	"XResolution",
	"YResolution",
	"ResolutionUnit",
}

var index = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Fields))
	for _, f := range Fields {
		m[f] = struct{}{}
	}
	return m
}()

// Contains reports whether name is an allowed field.
func Contains(name string) bool {
	_, ok := index[name]
	return ok
}

// Preserve returns the allowed fields that are present and defined in snap,
// plus the reset marker.
func Preserve(snap *engine.Snapshot) engine.Fields {
	out := engine.Fields{ResetMarker: ""}
	for _, name := range Fields {
		if v, ok := snap.Get(name); ok {
			out[name] = v
		}
	}
	return out
}
