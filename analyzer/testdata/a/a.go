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

package a

import "fmt"

func doStuff() {}

func trailing() {
	doStuff()
	return // want "Redundant return statement"
}

func longer(s string) {
	if s == "" {
		return
	}

	fmt.Println(s)
	doStuff()
	return // want "Redundant return statement"
}

func lone() {
	return // want "Redundant return statement"
}

func empty() {}

func value() int {
	doStuff()
	return 1
}

func named() (n int) {
	n = 1
	return
}

func early(b bool) {
	if b {
		return
	}
	doStuff()
}

func notInTail() {
	return
	doStuff()
}

func nestedBlock() {
	{
		doStuff()
		return
	}
}

func literal() {
	f := func() {
		doStuff()
		return // want "Redundant return statement"
	}
	f()

	g := func() int { return 1 }
	_ = g()

	func() {
		return // want "Redundant return statement"
	}()
}

type T struct{}

func (T) method() {
	doStuff()
	return // want "Redundant return statement"
}

func (*T) pointerMethod(n int) {
	for range n {
		doStuff()
	}
	return // want "Redundant return statement"
}
