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

// Package syntax defines the language-neutral tree of method and constructor
// bodies the redundant return check operates on.
//
// Front-ends (Go via go/ast, Java via tree-sitter) build these trees; the
// check only reads them.
package syntax

import "go/token"

//go:generate go tool stringer -type Kind,DeclKind -output kind_string.go

// Kind tags the statement variants relevant to the check.
type Kind uint8

const (
	// Other is any statement that is neither a return nor a try statement.
	Other Kind = iota

	// Return is a return statement.
	Return

	// Try is a try statement with its catch and finally clauses.
	Try
)

// DeclKind distinguishes constructors from methods.
type DeclKind uint8

const (
	// InvalidDecl is the zero value and never produced by a front-end.
	InvalidDecl DeclKind = iota

	// ConstructorDecl is a constructor declaration.
	ConstructorDecl

	// MethodDecl is a method or function declaration.
	MethodDecl
)

// Span is the source range of a node.
type Span struct {
	From, To token.Pos
	// StartLine is the 1-based line number of From.
	StartLine int
}

// Pos returns the start position.
func (s Span) Pos() token.Pos { return s.From }

// End returns the end position.
func (s Span) End() token.Pos { return s.To }

// Line returns the 1-based start line.
func (s Span) Line() int { return s.StartLine }

// Stmt is a statement of a [Block].
//
// The set of implementations is closed: [*ReturnStmt], [*TryStmt] and [*OtherStmt].
type Stmt interface {
	Kind() Kind
	Pos() token.Pos
	End() token.Pos
	Line() int
	stmtNode()
}

// ReturnStmt is a return statement.
type ReturnStmt struct{ Span }

// TryStmt is a try statement.
type TryStmt struct {
	Span
	// Body is the try block, never nil in a well-formed tree.
	Body *Block
	// Catches are the catch clause blocks in source order.
	Catches []*Block
	// Finally is the finally block, nil when absent.
	Finally *Block
}

// OtherStmt is a statement not further inspected.
type OtherStmt struct{ Span }

// Kind implements [Stmt].
func (*ReturnStmt) Kind() Kind { return Return }

// Kind implements [Stmt].
func (*TryStmt) Kind() Kind { return Try }

// Kind implements [Stmt].
func (*OtherStmt) Kind() Kind { return Other }

func (*ReturnStmt) stmtNode() {}
func (*TryStmt) stmtNode()    {}
func (*OtherStmt) stmtNode()  {}

// Block is a brace-delimited statement list.
type Block struct {
	// Span covers the braces; To is the position of the closing brace.
	Span
	List []Stmt
}

// Len returns the number of statements in the block, not counting the braces.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}

	return len(b.List)
}

// Decl is a constructor or method declaration.
type Decl struct {
	Span
	Kind DeclKind
	Name string
	// Void reports whether the declared return type carries no value.
	// Always false for constructors.
	Void bool
	// Body is nil for declarations without implementation.
	Body *Block
}

// HasBody reports whether the declaration has an implementation block.
func (d *Decl) HasBody() bool {
	return d.Body != nil
}
