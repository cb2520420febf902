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

package syntax

import (
	"iter"
	"slices"
)

// LastStatement returns the statement in tail position, the one immediately
// preceding the closing brace of the block.
func LastStatement(b *Block) (Stmt, bool) {
	if b.Len() == 0 {
		return nil, false
	}

	return b.List[len(b.List)-1], true
}

// StatementBefore returns the statement immediately preceding stmt in the block.
// It returns false when stmt is the first statement or not part of the block.
func StatementBefore(b *Block, stmt Stmt) (Stmt, bool) {
	if b.Len() == 0 {
		return nil, false
	}

	i := slices.Index(b.List, stmt)
	if i <= 0 {
		return nil, false
	}

	return b.List[i-1], true
}

// Branches yields the try block, all catch blocks in source order and the
// finally block, if present.
func (t *TryStmt) Branches() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		if !yield(t.Body) {
			return
		}

		for _, c := range t.Catches {
			if !yield(c) {
				return
			}
		}

		if t.Finally != nil {
			yield(t.Finally)
		}
	}
}
