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

package check_test

import (
	"go/token"

	"fillmore-labs.com/redundantreturn/internal/syntax"
)

// The helpers below build trees with synthetic positions, line*100 for the start of a node.

func span(line int) syntax.Span {
	return syntax.Span{From: token.Pos(line * 100), To: token.Pos(line*100 + 10), StartLine: line}
}

func ret(line int) *syntax.ReturnStmt { return &syntax.ReturnStmt{Span: span(line)} }

func other(line int) *syntax.OtherStmt { return &syntax.OtherStmt{Span: span(line)} }

func block(stmts ...syntax.Stmt) *syntax.Block {
	b := &syntax.Block{List: stmts}
	if len(stmts) > 0 {
		b.Span = syntax.Span{From: stmts[0].Pos() - 1, To: stmts[len(stmts)-1].End() + 1, StartLine: stmts[0].Line()}
	}

	return b
}

func try(body *syntax.Block, catches ...*syntax.Block) *syntax.TryStmt {
	return &syntax.TryStmt{Span: body.Span, Body: body, Catches: catches}
}

func tryFinally(body, finally *syntax.Block, catches ...*syntax.Block) *syntax.TryStmt {
	t := try(body, catches...)
	t.Finally = finally

	return t
}

func method(body *syntax.Block) *syntax.Decl {
	return &syntax.Decl{Span: span(1), Kind: syntax.MethodDecl, Name: "m", Void: true, Body: body}
}
