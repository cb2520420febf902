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

// Package scan runs the redundant return check over Java source files.
package scan

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/redundantreturn/internal/check"
	"fillmore-labs.com/redundantreturn/internal/javasource"
)

// ErrNoMatch is returned when a path neither exists nor matches any file.
var ErrNoMatch = errors.New("no files match")

// javaFiles selects Java sources below a directory.
const javaFiles = "**/*.java"

// Files expands paths into a sorted list of Java source files.
//
// A path can be a file, a directory (searched recursively for *.java files) or
// a doublestar pattern. Files matching any of the exclude patterns are dropped.
func Files(paths, excludes []string) ([]string, error) {
	for _, ex := range excludes {
		if !doublestar.ValidatePathPattern(ex) {
			return nil, fmt.Errorf("exclude pattern %q: %w", ex, doublestar.ErrBadPattern)
		}
	}

	var files []string

	for _, path := range paths {
		matches, err := expand(path)
		if err != nil {
			return nil, err
		}

		for _, m := range matches {
			if !excluded(m, excludes) {
				files = append(files, filepath.Clean(m))
			}
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)

	switch {
	case err == nil && info.IsDir():
		matches, err := doublestar.Glob(os.DirFS(path), javaFiles, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("error while searching %s: %w", path, err)
		}

		for i, m := range matches {
			matches[i] = filepath.Join(path, filepath.FromSlash(m))
		}

		return matches, nil

	case err == nil:
		return []string{path}, nil

	case errors.Is(err, fs.ErrNotExist):
		matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("error while matching files via pattern %s: %w", path, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrNoMatch)
		}

		return matches, nil

	default:
		return nil, err
	}
}

// excluded matches the path, and for absolute paths the path without leading slash, against the patterns.
func excluded(path string, excludes []string) bool {
	slashed := filepath.ToSlash(path)
	relative := strings.TrimPrefix(slashed, "/")

	for _, ex := range excludes {
		if ok, _ := doublestar.Match(ex, slashed); ok {
			return true
		}

		if ok, _ := doublestar.Match(ex, relative); ok {
			return true
		}
	}

	return false
}

// Options configure a [Run].
type Options struct {
	// Policy is passed to every check.
	Policy check.Policy
	// Jobs limits the number of files checked in parallel, GOMAXPROCS when not positive.
	Jobs int
	// Logger receives per-file progress and errors, [slog.Default] when nil.
	Logger *slog.Logger
}

// Result is the outcome of checking a single file.
type Result struct {
	Path     string
	Findings check.Findings
	// Err is set when the file could not be read or parsed.
	Err error
}

// Run checks all files in parallel. The results are in the order of files.
//
// Read and syntax errors are recorded per file, an invariant violation aborts the run.
func Run(ctx context.Context, files []string, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// token.FileSet is safe for concurrent use
	fset := token.NewFileSet()
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = Result{Path: path}

			findings, err := checkFile(fset, path, opts.Policy)

			switch {
			case errors.Is(err, check.ErrInvariant):
				return fmt.Errorf("%s: %w", path, err)

			case err != nil:
				logger.LogAttrs(gctx, slog.LevelWarn, "Skipping file", slog.String("path", path), slog.Any("error", err))
				results[i].Err = err

			default:
				logger.LogAttrs(gctx, slog.LevelDebug, "Checked file", slog.String("path", path), slog.Int("findings", len(findings)))
				results[i].Findings = findings
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func checkFile(fset *token.FileSet, path string, policy check.Policy) (check.Findings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	p, err := javasource.NewParser()
	if err != nil {
		return nil, err
	}
	defer p.Close()

	f, err := p.Parse(fset, path, content)
	if err != nil {
		return nil, err
	}

	var findings check.Findings
	for _, decl := range f.Decls {
		if err := check.Check(decl, policy, &findings); err != nil {
			return nil, fmt.Errorf("%s in line %d: %w", decl.Name, decl.Line(), err)
		}
	}

	return findings, nil
}
