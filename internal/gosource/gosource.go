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

// Package gosource converts Go function declarations and literals into [syntax] trees.
//
// Every Go function is a method in terms of the check. Go has neither
// constructors nor try statements, so the resulting trees only contain
// return and other statements.
package gosource

import (
	"go/ast"
	"go/token"

	"fillmore-labs.com/redundantreturn/internal/syntax"
)

// Converter builds [syntax] trees for a file set.
type Converter struct {
	fset *token.FileSet
}

// NewConverter creates a [Converter] resolving lines through fset.
func NewConverter(fset *token.FileSet) Converter {
	return Converter{fset: fset}
}

// FuncDecl converts a function or method declaration. Declarations without
// body (implemented in assembly or linked) yield a [syntax.Decl] without body.
func (c Converter) FuncDecl(fn *ast.FuncDecl) *syntax.Decl {
	d := &syntax.Decl{
		Span: c.span(fn),
		Kind: syntax.MethodDecl,
		Name: fn.Name.Name,
		Void: fn.Type.Results.NumFields() == 0,
	}

	if fn.Body != nil {
		d.Body = c.Block(fn.Body)
	}

	return d
}

// FuncLit converts a function literal.
func (c Converter) FuncLit(fn *ast.FuncLit) *syntax.Decl {
	return &syntax.Decl{
		Span: c.span(fn),
		Kind: syntax.MethodDecl,
		Name: "func literal",
		Void: fn.Type.Results.NumFields() == 0,
		Body: c.Block(fn.Body),
	}
}

// Block converts a block statement. The block span starts at the opening
// and ends at the closing brace.
func (c Converter) Block(b *ast.BlockStmt) *syntax.Block {
	block := &syntax.Block{
		Span: syntax.Span{From: b.Lbrace, To: b.Rbrace, StartLine: c.line(b.Lbrace)},
		List: make([]syntax.Stmt, 0, len(b.List)),
	}

	for _, s := range b.List {
		block.List = append(block.List, c.Stmt(s))
	}

	return block
}

// Stmt converts a single statement.
func (c Converter) Stmt(s ast.Stmt) syntax.Stmt {
	span := c.span(s)

	if _, ok := s.(*ast.ReturnStmt); ok {
		return &syntax.ReturnStmt{Span: span}
	}

	return &syntax.OtherStmt{Span: span}
}

func (c Converter) span(n ast.Node) syntax.Span {
	return syntax.Span{From: n.Pos(), To: n.End(), StartLine: c.line(n.Pos())}
}

func (c Converter) line(pos token.Pos) int {
	return c.fset.PositionFor(pos, false).Line
}
