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

package closure

import (
	"go/ast"
	"iter"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/leakguard/internal/resource"
)

// Guarded reports whether a defer statement of the site's function, following the creation,
// directly releases the binding:
//
//	f, err := os.Open(name)
//	if err != nil { ... }
//	defer f.Close()
func Guarded(m Matcher, site resource.Site) bool {
	body, ok := site.Body()
	if !ok {
		return false
	}

	created := site.Call.Node().End()

	found := false
	for c := range deferred(body) {
		d := c.Node().(*ast.DeferStmt)
		if d.Pos() >= created && m.IsRelease(d.Call) {
			found = true

			break
		}
	}

	return found
}

// deferred yields the defer statements of a function body, excluding nested function literals.
func deferred(body inspector.Cursor) iter.Seq[inspector.Cursor] {
	return func(yield func(inspector.Cursor) bool) {
		stop := false

		body.Inspect([]ast.Node{(*ast.DeferStmt)(nil), (*ast.FuncLit)(nil)}, func(c inspector.Cursor) bool {
			if stop {
				return false
			}

			switch c.Node().(type) {
			case *ast.FuncLit:
				return false

			case *ast.DeferStmt:
				if !yield(c) {
					stop = true
				}

				return false
			}

			return true
		})
	}
}

// deferredLiteral returns the body of a deferred function literal "defer func() { ... }()".
func deferredLiteral(c inspector.Cursor) (*ast.BlockStmt, bool) {
	d, ok := c.Node().(*ast.DeferStmt)
	if !ok || len(d.Call.Args) != 0 {
		return nil, false
	}

	lit, ok := ast.Unparen(d.Call.Fun).(*ast.FuncLit)
	if !ok {
		return nil, false
	}

	return lit.Body, true
}

// invokedLiteral returns the body of an immediately invoked function literal statement "func() { ... }()".
func invokedLiteral(c inspector.Cursor) (inspector.Cursor, bool) {
	s, ok := c.Node().(*ast.ExprStmt)
	if !ok {
		return inspector.Cursor{}, false
	}

	call, ok := ast.Unparen(s.X).(*ast.CallExpr)
	if !ok {
		return inspector.Cursor{}, false
	}

	if _, ok := ast.Unparen(call.Fun).(*ast.FuncLit); !ok {
		return inspector.Cursor{}, false
	}

	fun := c.ChildAt(edge.ExprStmt_X, -1)
	for {
		if _, ok := fun.Node().(*ast.FuncLit); ok {
			return fun.ChildAt(edge.FuncLit_Body, -1), true
		}

		switch fun.Node().(type) {
		case *ast.CallExpr:
			fun = fun.ChildAt(edge.CallExpr_Fun, -1)

		case *ast.ParenExpr:
			fun = fun.ChildAt(edge.ParenExpr_X, -1)

		default:
			return inspector.Cursor{}, false
		}
	}
}
