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

// Package report turns redundant return findings into diagnostics.
package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/redundantreturn/internal/astutil"
	"fillmore-labs.com/redundantreturn/internal/check"
)

// Message is the human-readable text of a redundant return finding.
const Message = "Redundant return statement"

// Text formats a finding as message and key.
func Text(f check.Finding) string {
	return fmt.Sprintf("%s [%s]", Message, f.Key)
}

// PassEmitter reports findings as diagnostics of an [analysis.Pass].
type PassEmitter struct {
	pass        *analysis.Pass
	currentFile astutil.CurrentFile
	reported    int
}

// NewPassEmitter creates a [PassEmitter] for a single file.
func NewPassEmitter(p *analysis.Pass, currentFile astutil.CurrentFile) *PassEmitter {
	return &PassEmitter{pass: p, currentFile: currentFile}
}

// Emit implements [check.Emitter].
// Findings on a line with a //nolint:redundantreturn comment are suppressed.
func (e *PassEmitter) Emit(f check.Finding) {
	if e.currentFile.NoLintComment(f.Pos) {
		return
	}

	e.pass.Report(Diagnostic(f))
	e.reported++
}

// Reported returns the number of diagnostics reported so far.
func (e *PassEmitter) Reported() int {
	return e.reported
}

// Diagnostic converts a finding to an [analysis.Diagnostic].
func Diagnostic(f check.Finding) analysis.Diagnostic {
	d := analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: f.Key,
		Message:  Message,
	}

	if f.Closing.IsValid() {
		d.Related = []analysis.RelatedInformation{{
			Pos:     f.Closing,
			End:     f.Closing + token.Pos(len("}")),
			Message: "Control leaves the block here anyway",
		}}
	}

	return d
}
