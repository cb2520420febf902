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

// Package run drives the redundant return check over an analysis pass.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/redundantreturn/internal/astutil"
	"fillmore-labs.com/redundantreturn/internal/check"
	"fillmore-labs.com/redundantreturn/internal/config"
	"fillmore-labs.com/redundantreturn/internal/gosource"
	"fillmore-labs.com/redundantreturn/internal/report"
	"fillmore-labs.com/redundantreturn/internal/syntax"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the redundantreturn analyzer on a package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("redundantreturn: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "RedundantReturn")
	defer task.End()

	if p.Pkg != nil { // not available in syntax-only load mode
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	policy := r.Behavior.Policy()
	conv := gosource.NewConverter(p.Fset)
	reported := 0

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLintFile() {
			continue
		}

		emitter := report.NewPassEmitter(p, currentFile)

		var err error
		trace.WithRegion(ctx, "CheckFile", func() {
			err = checkFile(p, f, conv, policy, emitter)
		})

		if err != nil {
			return nil, fmt.Errorf("redundantreturn: %w", err)
		}

		reported += emitter.Reported()
	}

	trace.Log(ctx, "reported", strconv.Itoa(reported))

	return nil, nil
}

// checkFile checks all function declarations and literals in a file, stopping at the first invariant violation.
func checkFile(p *analysis.Pass, f inspector.Cursor, conv gosource.Converter, policy check.Policy, e check.Emitter) error {
	var err error

	types := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.FuncLit)(nil),
	}

	f.Inspect(types, func(c inspector.Cursor) bool {
		if err != nil {
			return false
		}

		var decl *syntax.Decl

		switch fn := c.Node().(type) {
		case *ast.FuncDecl:
			// Skip functions with nolint comment, including nested literals
			if astutil.HasNoLintDoc(fn.Doc) {
				return false
			}

			decl = conv.FuncDecl(fn)

		case *ast.FuncLit:
			decl = conv.FuncLit(fn)

		default:
			astutil.InternalError(p, fn, "Unexpected node type: %T", fn)

			return false
		}

		if err = check.Check(decl, policy, e); err != nil {
			err = fmt.Errorf("%s: %w", p.Fset.Position(decl.Pos()), err)

			return false
		}

		return true
	})

	return err
}
