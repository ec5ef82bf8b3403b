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

// Package report turns leaking creation sites into diagnostics.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/leakguard/internal/astutil"
	"fillmore-labs.com/leakguard/internal/engine"
)

// ProcessDiagnostics reports a diagnostic for every finding not suppressed by a nolint comment.
//
// Diagnostics name the family and the static type of the resource. When the resource was handed
// to a call that was not accepted as taking ownership, related information points to that call.
// Locals declared by the creation get a suggested fix deferring their release.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, findings []engine.Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "ProcessDiagnostics").End()

	for _, f := range findings {
		call := f.Site.Expr()
		if call == nil {
			continue
		}

		if currentFile.NoLintComment(call.Pos()) {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:      call.Pos(),
			End:      call.End(),
			Category: f.Site.Family.String(),
			Message:  Message(p.Pkg, f),
			Related:  related(p.TypesInfo, f),
		}

		if edits := deferClose(f); len(edits) > 0 {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message:   "Defer " + f.Binding.Name() + ".Close()",
				TextEdits: edits,
			}}
		}

		p.Report(diagnostic)
	}
}
