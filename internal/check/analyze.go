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

package check

import (
	"fmt"

	"fillmore-labs.com/redundantreturn/internal/syntax"
)

// Analyze reports every redundant return of a body block to e.
//
// Only the tail position of a block is inspected. A try statement in tail
// position is never reported itself; instead its try, catch and finally blocks
// are analyzed independently, in source order.
func Analyze(body *syntax.Block, policy Policy, e Emitter) error {
	if body == nil {
		return fmt.Errorf("%w: nil body", ErrInvariant)
	}

	a := analyzer{policy: policy, emitter: e}

	return a.block(body)
}

type analyzer struct {
	policy  Policy
	emitter Emitter
}

func (a analyzer) block(b *syntax.Block) error {
	tail, ok := syntax.LastStatement(b)
	if !ok {
		return nil // empty block
	}

	switch s := tail.(type) {
	case *syntax.ReturnStmt:
		if _, preceded := syntax.StatementBefore(b, s); preceded || !a.policy.AllowReturnInEmptyBodies {
			a.report(b, s)
		}

		return nil

	case *syntax.TryStmt:
		return a.try(s)

	case *syntax.OtherStmt:
		return nil

	default:
		return fmt.Errorf("%w: unexpected statement %T in line %d", ErrInvariant, tail, tail.Line())
	}
}

func (a analyzer) try(t *syntax.TryStmt) error {
	if t.Body == nil {
		return fmt.Errorf("%w: try statement without try block in line %d", ErrInvariant, t.Line())
	}

	for b := range t.Branches() {
		if b == nil {
			return fmt.Errorf("%w: missing catch block of try statement in line %d", ErrInvariant, t.Line())
		}

		if err := a.block(b); err != nil {
			return err
		}
	}

	return nil
}

func (a analyzer) report(b *syntax.Block, r *syntax.ReturnStmt) {
	a.emitter.Emit(Finding{
		Pos:     r.Pos(),
		End:     r.End(),
		Line:    r.Line(),
		Key:     MessageKey,
		Closing: b.End(),
	})
}
