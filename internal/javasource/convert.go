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

package javasource

import (
	"fmt"
	"go/token"

	"fortio.org/safecast"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"fillmore-labs.com/redundantreturn/internal/syntax"
)

// Node kinds of the tree-sitter Java grammar.
const (
	kindMethod             = "method_declaration"
	kindConstructor        = "constructor_declaration"
	kindCompactConstructor = "compact_constructor_declaration"
	kindVoid               = "void_type"
	kindReturn             = "return_statement"
	kindTry                = "try_statement"
	kindTryWithResources   = "try_with_resources_statement"
	kindCatch              = "catch_clause"
	kindFinally            = "finally_clause"
	kindBlock              = "block"
	kindEmpty              = ";"
	kindOpenBrace          = "{"
	kindCloseBrace         = "}"
)

type converter struct {
	file    *token.File
	content []byte
	decls   []*syntax.Decl
	err     error
}

// walk collects declarations in preorder, descending into bodies to find local and anonymous classes.
func (c *converter) walk(n *tree_sitter.Node) {
	switch n.Kind() {
	case kindMethod:
		c.decls = append(c.decls, c.decl(n, syntax.MethodDecl))

	case kindConstructor, kindCompactConstructor:
		c.decls = append(c.decls, c.decl(n, syntax.ConstructorDecl))
	}

	for i := range n.NamedChildCount() {
		if child := n.NamedChild(i); child != nil {
			c.walk(child)
		}
	}
}

func (c *converter) decl(n *tree_sitter.Node, kind syntax.DeclKind) *syntax.Decl {
	d := &syntax.Decl{
		Span: c.span(n),
		Kind: kind,
	}

	if name := n.ChildByFieldName("name"); name != nil {
		d.Name = name.Utf8Text(c.content)
	}

	if kind == syntax.MethodDecl {
		if typ := n.ChildByFieldName("type"); typ != nil {
			d.Void = typ.Kind() == kindVoid
		}
	}

	// abstract, interface and native methods end with a semicolon instead
	if body := n.ChildByFieldName("body"); body != nil {
		d.Body = c.block(body)
	}

	return d
}

// block converts a block or constructor body. Comments are skipped, empty statements kept.
func (c *converter) block(n *tree_sitter.Node) *syntax.Block {
	if n == nil {
		return nil
	}

	b := &syntax.Block{Span: c.span(n)}

	for i := range n.ChildCount() {
		child := n.Child(i)
		if child == nil || child.IsExtra() {
			continue
		}

		switch kind := child.Kind(); {
		case kind == kindOpenBrace:

		case kind == kindCloseBrace:
			b.To = c.pos(child.StartByte())

		case kind == kindEmpty:
			b.List = append(b.List, &syntax.OtherStmt{Span: c.span(child)})

		case child.IsNamed():
			b.List = append(b.List, c.stmt(child))
		}
	}

	return b
}

func (c *converter) stmt(n *tree_sitter.Node) syntax.Stmt {
	switch n.Kind() {
	case kindReturn:
		return &syntax.ReturnStmt{Span: c.span(n)}

	case kindTry, kindTryWithResources:
		return c.try(n)

	default:
		return &syntax.OtherStmt{Span: c.span(n)}
	}
}

func (c *converter) try(n *tree_sitter.Node) *syntax.TryStmt {
	t := &syntax.TryStmt{
		Span: c.span(n),
		Body: c.block(n.ChildByFieldName("body")),
	}

	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}

		switch child.Kind() {
		case kindCatch:
			t.Catches = append(t.Catches, c.block(child.ChildByFieldName("body")))

		case kindFinally:
			t.Finally = c.block(firstNamedChild(child, kindBlock))
		}
	}

	return t
}

func firstNamedChild(n *tree_sitter.Node, kind string) *tree_sitter.Node {
	for i := range n.NamedChildCount() {
		if child := n.NamedChild(i); child != nil && child.Kind() == kind {
			return child
		}
	}

	return nil
}

func (c *converter) span(n *tree_sitter.Node) syntax.Span {
	line, err := startLine(n)
	c.fail(err)

	return syntax.Span{
		From:      c.pos(n.StartByte()),
		To:        c.pos(n.EndByte()),
		StartLine: line,
	}
}

func (c *converter) pos(offset uint) token.Pos {
	o, err := safecast.Conv[int](offset)
	if err != nil {
		c.fail(err)

		return token.NoPos
	}

	return c.file.Pos(o)
}

// fail records the first conversion error.
func (c *converter) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// startLine returns the 1-based line of the node start.
func startLine(n *tree_sitter.Node) (int, error) {
	row, err := safecast.Conv[int](n.StartPosition().Row)
	if err != nil {
		return 0, fmt.Errorf("line of %s node: %w", n.Kind(), err)
	}

	return row + 1, nil
}
