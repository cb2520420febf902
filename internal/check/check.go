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

// Package check implements the redundant return rule on [syntax] trees.
//
// A return statement is redundant when it is the last statement of a
// constructor or void method body, where control would leave the body anyway.
// When the body ends with a try statement, the tails of the try block, every
// catch block and the finally block are checked with the same rule.
//
// A body consisting of nothing but a return statement is exempt when
// [Policy.AllowReturnInEmptyBodies] is set.
package check

import (
	"errors"
	"go/token"
)

// MessageKey identifies redundant return findings.
const MessageKey = "redundant.return"

// ErrInvariant is returned when a tree violates the guarantees of its front-end.
// It indicates a bug, not a property of the analyzed source.
var ErrInvariant = errors.New("invariant violation")

// Policy holds the configuration of a check pass. It is not modified during a pass.
type Policy struct {
	// AllowReturnInEmptyBodies exempts blocks consisting of a single return statement.
	AllowReturnInEmptyBodies bool
}

// Finding is a single redundant return.
type Finding struct {
	// Pos and End delimit the return statement.
	Pos, End token.Pos
	// Line is the 1-based line of the return statement.
	Line int
	// Key is always [MessageKey].
	Key string
	// Closing is the position of the closing brace of the enclosing block.
	Closing token.Pos
}

// Emitter receives findings in discovery order.
type Emitter interface {
	Emit(f Finding)
}

// Findings is an [Emitter] collecting all findings.
type Findings []Finding

// Emit implements [Emitter].
func (f *Findings) Emit(finding Finding) {
	*f = append(*f, finding)
}

// Lines returns the line numbers of all findings.
func (f Findings) Lines() []int {
	lines := make([]int, len(f))
	for i, finding := range f {
		lines[i] = finding.Line
	}

	return lines
}
