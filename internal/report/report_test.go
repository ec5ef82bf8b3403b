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

package report_test

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/leakguard/internal/astutil"
	"fillmore-labs.com/leakguard/internal/config"
	"fillmore-labs.com/leakguard/internal/engine"
	. "fillmore-labs.com/leakguard/internal/report"
	"fillmore-labs.com/leakguard/internal/testsource"
)

const src = `package test

import "os"

func leak() {
	f, err := os.Open("x")
	if err != nil {
		return
	}
	_ = f.Name()
}

func unbound() {
	os.Open("x")
}

func suppressed() {
	os.Open("x") //nolint:leakguard
}

type closer struct{}

func (*closer) Close() error { return nil }

func newCloser() *closer { return &closer{} }

func consume(*closer) {}

func handed() {
	consume(newCloser())
}
`

func TestProcessDiagnostics(t *testing.T) {
	t.Parallel()

	fset, f, file := testsource.ParseFile(t, src)
	pkg, info := testsource.Check(t, fset, f)

	var diagnostics []analysis.Diagnostic

	p := &analysis.Pass{
		Fset:      fset,
		Files:     []*ast.File{f},
		Pkg:       pkg,
		TypesInfo: info,
		Report:    func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) },
	}

	s := config.Default()
	s.Behavior.Disable(config.AnyMethodMayClose)

	e := engine.New(s, nil)
	currentFile := astutil.NewCurrentFile(fset, f)

	for c := range file.Preorder((*ast.FuncDecl)(nil)) {
		ProcessDiagnostics(t.Context(), p, currentFile, e.Check(t.Context(), info, c))
	}

	require.Len(t, diagnostics, 3)

	leak, unbound, handed := diagnostics[0], diagnostics[1], diagnostics[2]

	assert.Equal(t, "I/O resource *os.File is never closed (lg:io)", leak.Message)
	assert.Equal(t, "io", leak.Category)

	if assert.Len(t, leak.SuggestedFixes, 1) {
		fix := leak.SuggestedFixes[0]
		assert.Equal(t, "Defer f.Close()", fix.Message)

		if assert.Len(t, fix.TextEdits, 1) {
			edit := fix.TextEdits[0]
			assert.Equal(t, "\ndefer f.Close()", string(edit.NewText))
			assert.Equal(t, 9, fset.Position(edit.Pos).Line, "defer is inserted after the error check")
		}
	}

	assert.Equal(t, "I/O resource *os.File is never closed (lg:io)", unbound.Message)
	assert.Empty(t, unbound.SuggestedFixes)

	assert.Equal(t, "closable resource *closer is never closed (lg:generic)", handed.Message)

	if assert.Len(t, handed.Related, 1) {
		assert.Equal(t, "Passed to test.consume, which is not a known closing delegate", handed.Related[0].Message)
	}
}
