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

// Package testsource provides utilities for parsing Go source code in tests.
//
// It is designed to simplify testing of the redundantreturn front-ends by handling common
// boilerplate code for parsing Go source fragments.
package testsource

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// HeaderLines is the number of lines [Parse] adds before the source fragment.
const HeaderLines = 2

// Parse parses Go top level declarations into an AST.
// The provided source `src` is automatically prefixed with `package test`,
// shifting all lines by [HeaderLines].
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()
	srcFile := wrapSource(src)

	f, err := parser.ParseFile(fset, filename, srcFile, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Funcs returns all function declarations and literals of a file in preorder.
func Funcs(f *ast.File) []ast.Node {
	var funcs []ast.Node

	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		funcs = append(funcs, c.Node())
	}

	return funcs
}

func wrapSource(src string) *bytes.Buffer {
	const header = "package " + testpkg + "\n\n"

	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error

	return &srcFile
}
