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

package resource

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Site is an expression that allocates or obtains a resource handle.
//
// A Site lives for one analysis pass and is never mutated.
type Site struct {
	// Call is the cursor of the creating *[ast.CallExpr].
	Call inspector.Cursor

	// Family is the resource family owning this site.
	Family Family

	// Type is the static type of the resource.
	Type types.Type

	// Callee is the called function or method.
	Callee *types.Func

	// Result is the index of the resource in the call's results.
	Result int

	// Err is the index of the error result, -1 if the call has none.
	Err int

	// Method is true when the resource is acquired through a method call.
	Method bool
}

// Expr returns the creating call expression.
func (s Site) Expr() *ast.CallExpr {
	call, _ := s.Call.Node().(*ast.CallExpr)

	return call
}

// Stmt returns the innermost statement containing the creation.
func (s Site) Stmt() (inspector.Cursor, bool) {
	for c := range s.Call.Enclosing() {
		if _, ok := c.Node().(ast.Stmt); ok {
			return c, true
		}
	}

	return inspector.Cursor{}, false
}

// Func returns the innermost function declaration or literal containing the creation.
func (s Site) Func() (inspector.Cursor, bool) {
	for c := range s.Call.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		return c, true
	}

	return inspector.Cursor{}, false
}

// Body returns the body of the innermost function containing the creation.
func (s Site) Body() (inspector.Cursor, bool) {
	fn, ok := s.Func()
	if !ok {
		return inspector.Cursor{}, false
	}

	return FuncBody(fn)
}

// FuncBody returns the body of a function declaration or literal.
func FuncBody(fn inspector.Cursor) (inspector.Cursor, bool) {
	switch n := fn.Node().(type) {
	case *ast.FuncDecl:
		if n.Body != nil {
			return fn.ChildAt(edge.FuncDecl_Body, -1), true
		}

	case *ast.FuncLit:
		return fn.ChildAt(edge.FuncLit_Body, -1), true
	}

	return inspector.Cursor{}, false
}

// TypeName renders the resource type, qualified by package name outside of pkg.
func (s Site) TypeName(pkg *types.Package) string {
	if s.Type == nil {
		return "<unknown>"
	}

	return types.TypeString(s.Type, func(p *types.Package) string {
		if p == pkg {
			return ""
		}

		return p.Name()
	})
}
