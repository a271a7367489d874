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
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/autoexif/cmd/autoexif/opts"
	"github.com/walteh/autoexif/pkg/config"
	"github.com/walteh/autoexif/pkg/engine"
	"github.com/walteh/autoexif/pkg/fileops"
	"github.com/walteh/autoexif/pkg/log"
	"github.com/walteh/autoexif/pkg/operation"
	"github.com/walteh/autoexif/pkg/paths"
	"gitlab.com/tozd/go/errors"
)

const longDescription = `A utility that creates copies of images with decluttered metadata, preserving
only essential technical information like exposure settings while removing
equipment-specific details that might introduce bias. The original file is
never modified.

On success the path of the written copy is printed to standard output.`

// newEngine builds the metadata engine of a run
var newEngine = func(cfg *config.Config) engine.Engine {
	return engine.NewExiftool(engine.WithBinaryPath(cfg.Exiftool.Path))
}

// rootFlags holds the values of the root command's flags
type rootFlags struct {
	input      string
	output     string
	configFile string
	envFile    string
	exiftool   string
	suffix     string
	debug      bool
	summary    bool
}

// newRootCmd creates the autoexif command
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "autoexif",
		Short:         "Copy an image keeping only technical metadata",
		Long:          longDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), stderr, flags.debug)

			rootOpts, err := newRootOpts(ctx, cmd, flags, stderr)
			if err != nil {
				return err
			}
			if rootOpts.Config.Debug && !flags.debug {
				ctx = setupLogging(ctx, stderr, true)
			}

			return runAutoexif(ctx, rootOpts, flags, stdout)
		},
	}

	addRootFlags(cmd, flags)
	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

// addRootFlags adds the flags of the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "path to file containing EXIF data for removal")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "destination path for saving file with EXIF data removed")
	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "config file path (.yaml, .json or .hcl)")
	cmd.Flags().StringVar(&flags.envFile, "env-file", "", "dotenv file to load before reading AUTOEXIF_* variables")
	cmd.Flags().StringVar(&flags.exiftool, "exiftool", "", "path to the exiftool executable")
	cmd.Flags().StringVar(&flags.suffix, "suffix", "", "suffix inserted before the extension of a derived output name")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print the kept fields")
	_ = cmd.MarkFlagRequired("input")
}

// setupLogging attaches a stderr zerolog logger to ctx
func setupLogging(ctx context.Context, stderr io.Writer, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// newRootOpts loads the configuration and applies flag overrides
func newRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags, stderr io.Writer) (*opts.RootOpts, error) {
	cfg, err := config.Load(ctx, config.LoadOptions{
		File:    flags.configFile,
		EnvFile: flags.envFile,
	})
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("exiftool") {
		cfg.Exiftool.Path = flags.exiftool
	}
	if cmd.Flags().Changed("suffix") {
		cfg.Output.Suffix = flags.suffix
	}
	if flags.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating flags: %w", err)
	}

	return &opts.RootOpts{
		Config:     cfg,
		UserLogger: log.New(stderr, *zerolog.Ctx(ctx)),
	}, nil
}

// runAutoexif processes the input and prints the output path
func runAutoexif(ctx context.Context, rootOpts *opts.RootOpts, flags *rootFlags, stdout io.Writer) error {
	ui := rootOpts.UserLogger
	ui.Header(filepath.Base(flags.input))

	res, err := operation.Run(ctx, operation.Options{
		Engine: newEngine(rootOpts.Config),
		FS:     fileops.OS{},
	}, operation.RunArgs{
		Input:  flags.input,
		Output: flags.output,
		Suffix: rootOpts.Config.Output.Suffix,
	})
	if err != nil {
		if errors.Is(err, operation.ErrMetadataWrite) {
			output := flags.output
			if output == "" {
				output = paths.DefaultOutput(flags.input, rootOpts.Config.Output.Suffix)
			}
			ui.LogFileOperation(ctx, log.FileOperation{Path: filepath.Base(output), Role: "output", Status: "ROLLED BACK", IsRemoved: true})
		}
		return err
	}

	ui.LogFileOperation(ctx, log.FileOperation{Path: filepath.Base(flags.input), Role: "input", Status: "UNCHANGED"})
	ui.LogFileOperation(ctx, log.FileOperation{Path: filepath.Base(res.OutputPath), Role: "output", Status: "WRITTEN", IsNew: true})

	if flags.summary {
		if err := ui.FieldSummary(res.Preserved, res.Dropped); err != nil {
			return errors.Errorf("rendering summary: %w", err)
		}
	}

	ui.Successf("wrote %d fields, dropped %d", len(res.Preserved), res.Dropped)
	fmt.Fprintln(stdout, res.OutputPath)
	return nil
}
