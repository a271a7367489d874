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

package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

const shortRevisionLen = 12

// buildDetails describes the running binary
type buildDetails struct {
	module   string
	version  string
	revision string
	dirty    bool
	built    string
}

// readBuildDetails extracts module and vcs data from bi, which may be nil
// when the binary was built without module support.
func readBuildDetails(bi *debug.BuildInfo) buildDetails {
	d := buildDetails{module: "autoexif", version: "dev"}
	if bi == nil {
		return d
	}
	if bi.Main.Path != "" {
		d.module = bi.Main.Path
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		d.version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			d.revision = s.Value
			if len(d.revision) > shortRevisionLen {
				d.revision = d.revision[:shortRevisionLen]
			}
		case "vcs.modified":
			d.dirty = s.Value == "true"
		case "vcs.time":
			d.built = s.Value
		}
	}
	return d
}

// rows lays d out as label/value pairs, skipping what the build did not record
func (d buildDetails) rows() [][]string {
	rows := [][]string{
		{"module", d.module},
		{"version", d.version},
	}
	if d.revision != "" {
		rev := d.revision
		if d.dirty {
			rev += "-dirty"
		}
		rows = append(rows, []string{"revision", rev})
	}
	if d.built != "" {
		rows = append(rows, []string{"built", d.built})
	}
	return append(rows,
		[]string{"go", runtime.Version()},
		[]string{"platform", runtime.GOOS + "/" + runtime.GOARCH},
	)
}

// newVersionCmd creates the version command
func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bi, _ := debug.ReadBuildInfo()
			table, err := pterm.DefaultTable.WithData(readBuildDetails(bi).rows()).Srender()
			if err != nil {
				return errors.Errorf("rendering version: %w", err)
			}
			_, err = fmt.Fprintln(stdout, table)
			return err
		},
	}
}
