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

// Package config holds the behavioral flags of the redundantreturn analyzer.
package config

import "fillmore-labs.com/redundantreturn/internal/check"

// Config represents configuration options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// AllowReturnInEmptyBodies exempts bodies consisting of a single return statement.
	AllowReturnInEmptyBodies
)

// Behavior is a bitmask of [Config] flags.
type Behavior struct {
	value Config
}

// DefaultBehavior returns the default flags: everything disabled.
func DefaultBehavior() Behavior {
	return Behavior{}
}

// NewBehavior creates a new [Behavior] with the specified flags enabled.
func NewBehavior(flags ...Config) Behavior {
	var b Behavior
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// Set enables or disables the specified flag.
func (b *Behavior) Set(flag Config, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable sets the given flag.
func (b *Behavior) Enable(flag Config) {
	b.value |= flag
}

// Disable clears the given flag.
func (b *Behavior) Disable(flag Config) {
	b.value &^= flag
}

// Enabled checks if the specified flag is set.
func (b Behavior) Enabled(flag Config) bool {
	return b.value&flag != 0
}

// Policy returns the [check.Policy] for a pass.
func (b Behavior) Policy() check.Policy {
	return check.Policy{AllowReturnInEmptyBodies: b.Enabled(AllowReturnInEmptyBodies)}
}
