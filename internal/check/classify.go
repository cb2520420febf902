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

// Classify returns the body block to check for a declaration.
//
// Constructors are always eligible, methods only when they return no value.
// Declarations without implementation are not eligible. Neither case is an error.
func Classify(decl *syntax.Decl) (body *syntax.Block, eligible bool, err error) {
	if decl == nil {
		return nil, false, fmt.Errorf("%w: nil declaration", ErrInvariant)
	}

	switch decl.Kind {
	case syntax.ConstructorDecl:

	case syntax.MethodDecl:
		if !decl.Void {
			return nil, false, nil
		}

	default:
		return nil, false, fmt.Errorf("%w: unexpected declaration kind %v of %q in line %d",
			ErrInvariant, decl.Kind, decl.Name, decl.Line())
	}

	if !decl.HasBody() {
		return nil, false, nil // abstract, interface or external
	}

	return decl.Body, true, nil
}

// Check classifies the declaration and analyzes eligible bodies.
func Check(decl *syntax.Decl, policy Policy, e Emitter) error {
	body, eligible, err := Classify(decl)
	if err != nil || !eligible {
		return err
	}

	return Analyze(body, policy, e)
}
