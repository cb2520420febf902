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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	. "fillmore-labs.com/redundantreturn/internal/check"
	"fillmore-labs.com/redundantreturn/internal/syntax"
)

type analyzeTest struct {
	name    string
	body    *syntax.Block
	strict  []int // lines reported by default
	lenient []int // lines reported when empty bodies are allowed
}

func analyzeTests() []analyzeTest {
	return []analyzeTest{
		{
			name: "Empty",
			body: block(),
		},
		{
			name:    "TrailingReturn",
			body:    block(other(2), ret(3)),
			strict:  []int{3},
			lenient: []int{3},
		},
		{
			name:    "TrailingReturnLongBody",
			body:    block(other(2), other(3), other(4), ret(5)),
			strict:  []int{5},
			lenient: []int{5},
		},
		{
			name:   "LoneReturn",
			body:   block(ret(2)),
			strict: []int{2},
		},
		{
			name: "ReturnNotInTail",
			body: block(ret(2), other(3)),
		},
		{
			name: "OnlyOther",
			body: block(other(2)),
		},
		{
			name:    "TryCatchTails",
			body:    block(try(block(other(3), ret(4)), block(other(6), ret(7)))),
			strict:  []int{4, 7},
			lenient: []int{4, 7},
		},
		{
			name: "TryFinallyWithoutReturns",
			body: block(tryFinally(block(other(3)), block(other(5)))),
		},
		{
			name:    "TryNotInTail",
			body:    block(try(block(other(3), ret(4))), other(6)),
			strict:  nil,
			lenient: nil,
		},
		{
			name:    "LoneReturnInCatch",
			body:    block(other(2), try(block(other(4)), block(ret(6)))),
			strict:  []int{6},
			lenient: nil,
		},
		{
			name:    "LoneTryBody",
			body:    block(try(block(ret(3)), block(other(5), ret(6)))),
			strict:  []int{3, 6},
			lenient: []int{6},
		},
		{
			name: "CatchesInSourceOrder",
			body: block(other(2), try(
				block(other(4)),
				block(other(6), ret(7)),
				block(ret(9)),
				block(other(11), other(12), ret(13)),
			)),
			strict:  []int{7, 9, 13},
			lenient: []int{7, 13},
		},
		{
			name:    "FinallyTail",
			body:    block(tryFinally(block(other(3), ret(4)), block(other(8), ret(9)), block(other(6)))),
			strict:  []int{4, 9},
			lenient: []int{4, 9},
		},
		{
			name:    "NestedTryInCatch",
			body:    block(try(block(other(3)), block(other(5), try(block(other(7), ret(8)), block(ret(10)))))),
			strict:  []int{8, 10},
			lenient: []int{8},
		},
		{
			name:    "ReturnAfterTry",
			body:    block(try(block(other(3), ret(4)), block(ret(6))), ret(8)),
			strict:  []int{8},
			lenient: []int{8},
		},
		{
			name: "EmptyBranches",
			body: block(tryFinally(block(), block(), block())),
		},
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	for _, tt := range analyzeTests() {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, p := range []struct {
				policy Policy
				want   []int
			}{
				{Policy{}, tt.strict},
				{Policy{AllowReturnInEmptyBodies: true}, tt.lenient},
			} {
				var got Findings
				if err := Analyze(tt.body, p.policy, &got); err != nil {
					t.Fatalf("Analyze(%+v) failed: %v", p.policy, err)
				}

				if diff := cmp.Diff(p.want, got.Lines(), cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("Analyze(%+v) lines mismatch (-want +got):\n%s", p.policy, diff)
				}
			}
		})
	}
}

func TestFinding(t *testing.T) {
	t.Parallel()

	r := ret(3)
	body := block(other(2), r)

	var got Findings
	if err := Analyze(body, Policy{}, &got); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	want := Findings{{Pos: r.Pos(), End: r.End(), Line: 3, Key: MessageKey, Closing: body.End()}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Findings mismatch (-want +got):\n%s", diff)
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	for _, tt := range analyzeTests() {
		var first, second Findings

		if err := Analyze(tt.body, Policy{}, &first); err != nil {
			t.Fatalf("%s: first pass failed: %v", tt.name, err)
		}

		if err := Analyze(tt.body, Policy{}, &second); err != nil {
			t.Fatalf("%s: second pass failed: %v", tt.name, err)
		}

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: passes differ (-first +second):\n%s", tt.name, diff)
		}
	}
}

func TestPolicyMonotonicity(t *testing.T) {
	t.Parallel()

	for _, tt := range analyzeTests() {
		var strict, lenient Findings

		if err := Analyze(tt.body, Policy{}, &strict); err != nil {
			t.Fatalf("%s: strict pass failed: %v", tt.name, err)
		}

		if err := Analyze(tt.body, Policy{AllowReturnInEmptyBodies: true}, &lenient); err != nil {
			t.Fatalf("%s: lenient pass failed: %v", tt.name, err)
		}

		remaining := strict
		for _, f := range lenient {
			i := 0
			for i < len(remaining) && remaining[i] != f {
				i++
			}

			if i == len(remaining) {
				t.Errorf("%s: lenient finding in line %d not reported in strict mode", tt.name, f.Line)

				continue
			}

			remaining = remaining[i+1:]
		}
	}
}

func TestNonInterference(t *testing.T) {
	t.Parallel()

	tail := func(last syntax.Stmt) *syntax.Block {
		return block(try(
			block(other(3), ret(4)),
			block(other(6), last),
			block(other(9), ret(10)),
		))
	}

	var with, without Findings

	if err := Analyze(tail(ret(7)), Policy{}, &with); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if err := Analyze(tail(other(7)), Policy{}, &without); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if diff := cmp.Diff([]int{4, 7, 10}, with.Lines()); diff != "" {
		t.Errorf("With return mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]int{4, 10}, without.Lines()); diff != "" {
		t.Errorf("Without return mismatch (-want +got):\n%s", diff)
	}
}

// unknownStmt satisfies [syntax.Stmt] without being one of the known variants.
type unknownStmt struct{ *syntax.OtherStmt }

func TestAnalyzeInvariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body *syntax.Block
	}{
		{"NilBody", nil},
		{"TryWithoutBody", block(other(2), &syntax.TryStmt{Span: span(3)})},
		{"NilCatch", block(try(block(other(3)), nil))},
		{"UnknownStatement", block(other(2), unknownStmt{other(3)})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got Findings
			if err := Analyze(tt.body, Policy{}, &got); !errors.Is(err, ErrInvariant) {
				t.Errorf("Analyze() = %v, want %v", err, ErrInvariant)
			}
		})
	}
}
