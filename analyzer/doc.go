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

// Package analyzer implements the redundantreturn static analysis pass.
//
// # Overview
//
// A return statement is redundant when it is the last statement of a function
// that returns no values: control leaves the function at the closing brace anyway.
//
// # Example
//
//	func cleanup(f *os.File) {
//	    _ = f.Close()
//	    return // redundant
//	}
//
// Function literals are checked like declarations. Functions with results and
// functions without body are never reported.
//
// # Configuration
//
// By default, a body consisting of nothing but a return statement is reported, too:
//
//	func noop() {
//	    return
//	}
//
// Use [WithAllowReturnInEmptyBodies] or the -allow-return-in-empty-bodies flag to exempt these.
//
// A //nolint:redundantreturn comment on the return line, the function doc comment
// or the package doc comment suppresses diagnostics.
package analyzer
