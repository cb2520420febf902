// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"fillmore-labs.com/redundantreturn/internal/check"
	"fillmore-labs.com/redundantreturn/internal/report"
	"fillmore-labs.com/redundantreturn/internal/scan"
)

// errFindings signals a successful run with findings or skipped files.
var errFindings = errors.New("redundant returns found")

type rootOptions struct {
	allowReturnInEmptyBodies bool
	config                   string
	exclude                  []string
	jobs                     int
	color                    string
	verbose                  bool
}

func newRootCmd() *cobra.Command {
	var o rootOptions

	cmd := &cobra.Command{
		Use:   "javareturn [paths...]",
		Short: "Report redundant return statements in Java sources",
		Long: `javareturn reports return statements at the end of constructors and void methods,
including the tails of try, catch and finally blocks in tail position.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := o.run(cmd, args)
			if errors.Is(err, errFindings) {
				cmd.SilenceErrors = true
			}

			return err
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&o.allowReturnInEmptyBodies, "allow-return-in-empty-bodies", false,
		"allow a lone return statement as constructor or method body")
	flags.StringVar(&o.config, "config", "", "configuration file (default: nearest "+configName+")")
	flags.StringSliceVar(&o.exclude, "exclude", nil, "doublestar patterns of files to skip")
	flags.IntVar(&o.jobs, "jobs", 0, "number of files checked in parallel (default: GOMAXPROCS)")
	flags.StringVar(&o.color, "color", "auto", "colorize output (auto|on|off)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log progress")

	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if err := o.applyConfig(cmd, logger); err != nil {
		return err
	}

	pathColor, err := newPathColor(o.color, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := scan.Files(args, o.exclude)
	if err != nil {
		return err
	}

	policy := check.Policy{AllowReturnInEmptyBodies: o.allowReturnInEmptyBodies}

	logger.Debug("Checking files", slog.Int("files", len(files)), slog.Bool("allow-return-in-empty-bodies", policy.AllowReturnInEmptyBodies))

	results, err := scan.Run(cmd.Context(), files, scan.Options{Policy: policy, Jobs: o.jobs, Logger: logger})
	if err != nil {
		return err
	}

	if printResults(cmd.OutOrStdout(), pathColor, results) {
		return errFindings
	}

	return nil
}

// applyConfig merges the configuration file into options not set on the command line.
func (o *rootOptions) applyConfig(cmd *cobra.Command, logger *slog.Logger) error {
	path := o.config
	if path == "" {
		found, ok, err := findConfig(".")
		if err != nil || !ok {
			return err
		}

		path = found
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	logger.Debug("Using configuration", slog.String("path", path))

	flags := cmd.Flags()

	if cfg.AllowReturnInEmptyBodies != nil && !flags.Changed("allow-return-in-empty-bodies") {
		o.allowReturnInEmptyBodies = *cfg.AllowReturnInEmptyBodies
	}

	if cfg.Jobs != nil && !flags.Changed("jobs") {
		o.jobs = *cfg.Jobs
	}

	o.exclude = append(o.exclude, cfg.Exclude...)

	return nil
}

func newPathColor(mode string, w io.Writer) (*color.Color, error) {
	c := color.New(color.FgCyan, color.Bold)

	switch mode {
	case "auto":
		if terminal(w) && os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb" {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

	case "on":
		c.EnableColor()

	case "off":
		c.DisableColor()

	default:
		return nil, fmt.Errorf("invalid color mode %q, want auto, on or off", mode)
	}

	return c, nil
}

// terminal reports whether w writes to a terminal.
func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printResults writes findings and file errors, reporting whether there were any.
func printResults(w io.Writer, pathColor *color.Color, results []scan.Result) bool {
	found := false

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintln(w, r.Err) // the error names the file
			found = true

			continue
		}

		for _, f := range r.Findings {
			fmt.Fprintf(w, "%s:%d: %s\n", pathColor.Sprint(r.Path), f.Line, report.Text(f))
			found = true
		}
	}

	return found
}
