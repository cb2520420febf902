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

package gclplugin

import redundantreturn "fillmore-labs.com/redundantreturn/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// AllowReturnInEmptyBodies exempts function bodies consisting of a single return statement.
	AllowReturnInEmptyBodies *bool `json:"allow-return-in-empty-bodies,omitzero"`
}

// Options converts [Settings] into a list of [redundantreturn.Option] for the redundantreturn analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []redundantreturn.Option {
	var opts []redundantreturn.Option

	opts = appendOption(opts, s.AllowReturnInEmptyBodies, redundantreturn.WithAllowReturnInEmptyBodies)

	return opts
}

// appendOption appends a non-nil setting to a [redundantreturn.Option] list.
func appendOption[T any](opts []redundantreturn.Option, value *T, constructor func(T) redundantreturn.Option) []redundantreturn.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
