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

// Package binding finds the variable, field or element a creation site's value is written into.
package binding

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/leakguard/internal/resource"
)

// Top walks up from the creation through parentheses and through calls of methods on the
// created value returning the same type, as in NewFoo().Configure(). It returns the outermost
// expression still carrying the created value.
func Top(info *types.Info, site resource.Site) inspector.Cursor {
	c := site.Call
	chain := site.Result == 0 && resultCount(info, site.Expr()) == 1

	for {
		parent := c.Parent()

		switch p := parent.Node().(type) {
		case *ast.ParenExpr:
			c = parent

			continue

		case *ast.SelectorExpr:
			if !chain {
				return c
			}

			if k, _ := c.ParentEdge(); k != edge.SelectorExpr_X {
				return c
			}

			call := parent.Parent()
			if k, _ := parent.ParentEdge(); k != edge.CallExpr_Fun {
				return c
			}

			if t := info.TypeOf(call.Node().(*ast.CallExpr)); t == nil || !types.Identical(t, site.Type) {
				return c
			}

			if _, ok := info.Selections[p]; !ok {
				return c
			}

			c = call

			continue
		}

		return c
	}
}

// Resolve returns the binding of the creation site.
//
// Assignments and variable declarations bind; for a multi-value creation the operand at the
// resource's result index is the binding and the operand at the error index receives the error.
// Blank identifiers, bare statements and arguments do not bind.
func Resolve(info *types.Info, site resource.Site) (resource.Binding, bool) {
	top := Top(info, site)

	owner := top.Parent()
	kind, index := top.ParentEdge()

	var (
		lhs    []ast.Expr
		define bool
	)

	switch n := owner.Node().(type) {
	case *ast.AssignStmt:
		if kind != edge.AssignStmt_Rhs || n.Tok != token.ASSIGN && n.Tok != token.DEFINE {
			return resource.Binding{}, false
		}

		lhs, define = n.Lhs, n.Tok == token.DEFINE
		if len(n.Lhs) != len(n.Rhs) && len(n.Rhs) != 1 {
			return resource.Binding{}, false
		}

	case *ast.ValueSpec:
		if kind != edge.ValueSpec_Values {
			return resource.Binding{}, false
		}

		lhs, define = make([]ast.Expr, len(n.Names)), true
		for i, name := range n.Names {
			lhs[i] = name
		}

	default:
		return resource.Binding{}, false
	}

	resIndex, errIndex := index, -1
	if len(lhs) > 1 && len(lhs) != countValues(owner.Node()) {
		// single multi-value call
		resIndex, errIndex = site.Result, site.Err
	} else if site.Result != 0 {
		return resource.Binding{}, false
	}

	if resIndex < 0 || resIndex >= len(lhs) {
		return resource.Binding{}, false
	}

	b, ok := Operand(info, lhs[resIndex])
	if !ok {
		return resource.Binding{}, false
	}

	b.Owner, b.Define = owner, define && b.Target == resource.Local

	if errIndex >= 0 && errIndex < len(lhs) {
		b.Err = variable(info, lhs[errIndex])
	}

	return b, true
}

// Operand classifies the left-hand operand of an assignment receiving a resource.
func Operand(info *types.Info, lhs ast.Expr) (resource.Binding, bool) {
	switch e := ast.Unparen(lhs).(type) {
	case *ast.Ident:
		if e.Name == "_" {
			return resource.Binding{}, false
		}

		v := variable(info, e)
		if v == nil {
			return resource.Binding{}, false
		}

		target := resource.Local
		if isPackageLevel(v) {
			target = resource.Global
		}

		return resource.Binding{Var: v, Lhs: lhs, Target: target}, true

	case *ast.SelectorExpr:
		if sel, ok := info.Selections[e]; ok {
			v, _ := sel.Obj().(*types.Var)
			if sel.Kind() != types.FieldVal || v == nil {
				return resource.Binding{}, false
			}

			return resource.Binding{Var: v, Lhs: lhs, Target: resource.Field}, true
		}

		// qualified identifier
		v, ok := info.Uses[e.Sel].(*types.Var)
		if !ok {
			return resource.Binding{}, false
		}

		target := resource.Global
		if IsStdStream(v) {
			target = resource.StdStream
		}

		return resource.Binding{Var: v, Lhs: lhs, Target: target}, true

	case *ast.IndexExpr, *ast.IndexListExpr, *ast.StarExpr:
		return resource.Binding{Lhs: lhs, Target: resource.Element}, true

	default:
		return resource.Binding{}, false
	}
}

func variable(info *types.Info, expr ast.Expr) *types.Var {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok || id.Name == "_" {
		return nil
	}

	if v, ok := info.Defs[id].(*types.Var); ok {
		return v
	}

	v, _ := info.Uses[id].(*types.Var)

	return v
}

func isPackageLevel(v *types.Var) bool {
	return v.Pkg() != nil && v.Parent() == v.Pkg().Scope()
}

// IsStdStream reports whether v is one of os.Stdin, os.Stdout or os.Stderr.
func IsStdStream(v *types.Var) bool {
	if v.Pkg() == nil || v.Pkg().Path() != "os" || !isPackageLevel(v) {
		return false
	}

	switch v.Name() {
	case "Stdin", "Stdout", "Stderr":
		return true

	default:
		return false
	}
}

func resultCount(info *types.Info, call *ast.CallExpr) int {
	if call == nil {
		return 0
	}

	switch t := info.TypeOf(call).(type) {
	case nil:
		return 0

	case *types.Tuple:
		return t.Len()

	default:
		return 1
	}
}

func countValues(n ast.Node) int {
	switch n := n.(type) {
	case *ast.AssignStmt:
		return len(n.Rhs)

	case *ast.ValueSpec:
		return len(n.Values)

	default:
		return 0
	}
}
