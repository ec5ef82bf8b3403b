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
	"go/token"
	"go/types"
	"strings"

	"fillmore-labs.com/leakguard/internal/resource"
)

// Matcher recognizes release calls of a bound resource.
type Matcher struct {
	info    *types.Info
	binding resource.Binding
	verbs   []string
}

// NewMatcher creates a [Matcher] for the binding, using the release verbs of the site's family.
func NewMatcher(info *types.Info, site resource.Site, binding resource.Binding) Matcher {
	return Matcher{info: info, binding: binding, verbs: site.Family.Verbs()}
}

// IsRelease reports whether call releases the binding: a method call on the binding whose name
// contains a release verb, or a single-argument call of a function or method whose name contains
// a release verb with the binding as argument.
func (m Matcher) IsRelease(call *ast.CallExpr) bool {
	var name string

	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.SelectorExpr:
		name = fun.Sel.Name
		if m.hasVerb(name) && m.binding.Refers(m.info, fun.X) {
			return true
		}

	case *ast.Ident:
		name = fun.Name

	default:
		return false
	}

	return len(call.Args) == 1 && m.hasVerb(name) && m.binding.Refers(m.info, call.Args[0])
}

// Releases reports whether the statement is a release of the binding:
//
//	v.Close()
//	err = v.Close()
//	if err := v.Close(); err != nil { ... }
//	return v.Close()
func (m Matcher) Releases(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return m.isReleaseExpr(s.X)

	case *ast.AssignStmt:
		return len(s.Rhs) == 1 && m.isReleaseExpr(s.Rhs[0])

	case *ast.ReturnStmt:
		return len(s.Results) == 1 && m.isReleaseExpr(s.Results[0])

	case *ast.IfStmt:
		return s.Init != nil && m.Releases(s.Init)

	default:
		return false
	}
}

// Contains reports whether any call in the subtree of n releases the binding.
func (m Matcher) Contains(n ast.Node) bool {
	found := false

	ast.Inspect(n, func(n ast.Node) bool {
		if found {
			return false
		}

		if call, ok := n.(*ast.CallExpr); ok && m.IsRelease(call) {
			found = true
		}

		return !found
	})

	return found
}

// IsNilCheck reports whether cond is "v != nil" or "nil != v" for the binding.
func (m Matcher) IsNilCheck(cond ast.Expr) bool {
	bin, ok := ast.Unparen(cond).(*ast.BinaryExpr)
	if !ok || bin.Op != token.NEQ {
		return false
	}

	switch {
	case isNil(m.info, bin.Y):
		return m.binding.Refers(m.info, bin.X)

	case isNil(m.info, bin.X):
		return m.binding.Refers(m.info, bin.Y)

	default:
		return false
	}
}

// IsErrCheck reports whether stmt is the "if err != nil" check of the creation's error result.
func (m Matcher) IsErrCheck(stmt ast.Stmt) bool {
	s, ok := stmt.(*ast.IfStmt)
	if !ok || s.Init != nil || m.binding.Err == nil {
		return false
	}

	bin, ok := ast.Unparen(s.Cond).(*ast.BinaryExpr)
	if !ok || bin.Op != token.NEQ {
		return false
	}

	return isNil(m.info, bin.Y) && m.isErr(bin.X) || isNil(m.info, bin.X) && m.isErr(bin.Y)
}

func (m Matcher) isErr(expr ast.Expr) bool {
	id, ok := ast.Unparen(expr).(*ast.Ident)

	return ok && m.info.Uses[id] == m.binding.Err
}

func (m Matcher) isReleaseExpr(expr ast.Expr) bool {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)

	return ok && m.IsRelease(call)
}

func (m Matcher) hasVerb(name string) bool {
	name = strings.ToLower(name)
	for _, verb := range m.verbs {
		if strings.Contains(name, verb) {
			return true
		}
	}

	return false
}

func isNil(info *types.Info, expr ast.Expr) bool {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok {
		return false
	}

	_, ok = info.Uses[id].(*types.Nil)

	return ok
}
