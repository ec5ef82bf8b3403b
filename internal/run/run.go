// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/leakguard/internal/astutil"
	"fillmore-labs.com/leakguard/internal/config"
	"fillmore-labs.com/leakguard/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the leakguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	if r.err != nil {
		return nil, fmt.Errorf("leakguard: %w", r.err)
	}

	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("leakguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	r.prepare()

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "LeakGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Remember the current file over all functions declared in it
	var currentFile astutil.CurrentFile

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile = astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Settings.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip excluded files
		if r.exclusions.Excluded(currentFile.Name()) {
			continue
		}

		// Skip files with nolint comment
		if astutil.NoLintDoc(file.Doc) {
			continue
		}

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			if _, ok := p.TypesInfo.Defs[fun.Name]; !ok {
				astutil.InternalError(p, fun.Name, "Function %s without type info", fun.Name.Name)

				continue
			}

			// Skip functions with nolint comment
			if astutil.NoLintDoc(fun.Doc) {
				continue
			}

			// Stage 1: Classify creation sites and decide their verdicts
			findings := r.engine.Check(ctx, p.TypesInfo, c)

			// Stage 2: Generate diagnostics with suggested fixes
			report.ProcessDiagnostics(ctx, p, currentFile, findings)
		}
	}

	return nil, nil
}
