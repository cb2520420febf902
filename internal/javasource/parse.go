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

// Package javasource converts Java compilation units into [syntax] trees.
//
// Sources are parsed with tree-sitter. Constructors (including compact record
// constructors) and methods are converted wherever they appear: in top level,
// nested, local and anonymous classes, interfaces, enums and records.
package javasource

import (
	"errors"
	"fmt"
	"go/token"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"fillmore-labs.com/redundantreturn/internal/syntax"
)

// ErrSyntax is returned for sources tree-sitter can't parse without errors.
var ErrSyntax = errors.New("syntax error")

var language = sync.OnceValue(func() *tree_sitter.Language {
	return tree_sitter.NewLanguage(tree_sitter_java.Language())
})

// Parser parses Java sources. A Parser must not be used concurrently.
type Parser struct {
	parser *tree_sitter.Parser
}

// NewParser creates a Java [Parser]. Call [Parser.Close] to release it.
func NewParser() (*Parser, error) {
	parser := tree_sitter.NewParser()
	if err := parser.SetLanguage(language()); err != nil {
		parser.Close()

		return nil, fmt.Errorf("java grammar: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Close releases the underlying tree-sitter parser.
func (p *Parser) Close() {
	p.parser.Close()
}

// File is a parsed Java compilation unit.
type File struct {
	// Handle maps positions of this file to lines.
	Handle *token.File
	// Decls are all constructor and method declarations in document order.
	Decls []*syntax.Decl
}

// Parse parses content and converts all constructor and method declarations.
// The file is registered in fset, so positions in the result are valid in fset.
func (p *Parser) Parse(fset *token.FileSet, filename string, content []byte) (*File, error) {
	tree := p.parser.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("%s: %w: no syntax tree", filename, ErrSyntax)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%s:%d: %w", filename, firstErrorLine(root), ErrSyntax)
	}

	handle := fset.AddFile(filename, -1, len(content))
	handle.SetLinesForContent(content)

	c := converter{file: handle, content: content}
	c.walk(root)
	if c.err != nil {
		return nil, fmt.Errorf("%s: %w", filename, c.err)
	}

	return &File{Handle: handle, Decls: c.decls}, nil
}

// firstErrorLine returns the 1-based line of the first error or missing node.
func firstErrorLine(n *tree_sitter.Node) int {
	if !n.IsError() && !n.IsMissing() {
		for i := range n.ChildCount() {
			if child := n.Child(i); child != nil && (child.HasError() || child.IsMissing()) {
				return firstErrorLine(child)
			}
		}
	}

	line, _ := startLine(n)

	return line
}
