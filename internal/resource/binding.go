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

	"golang.org/x/tools/go/ast/inspector"
)

// Target classifies the storage a resource is written into.
type Target uint8

const (
	// Local is a variable declared inside a function.
	Local Target = iota

	// Field is a struct field.
	Field

	// Global is a package-level variable.
	Global

	// Element is a map or slice element, or a pointer indirection.
	Element

	// StdStream is one of os.Stdin, os.Stdout or os.Stderr.
	StdStream
)

// Binding is the variable, field or element a creation site's value is written into.
type Binding struct {
	// Var is the written variable, nil for [Element] targets.
	Var *types.Var

	// Lhs is the written operand.
	Lhs ast.Expr

	// Target classifies the written operand.
	Target Target

	// Err is the variable receiving the creation's error result, if any.
	Err *types.Var

	// Owner is the *[ast.AssignStmt] or *[ast.ValueSpec] writing the value.
	Owner inspector.Cursor

	// Define is true when the owner declares Var (:= or var).
	Define bool
}

// Name returns the name of the bound variable.
func (b Binding) Name() string {
	if b.Var == nil {
		return ""
	}

	return b.Var.Name()
}

// Refers reports whether expr denotes the bound variable, field or element.
func (b Binding) Refers(info *types.Info, expr ast.Expr) bool {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return b.Var != nil && info.Uses[e] == b.Var

	case *ast.SelectorExpr:
		if b.Target != Field && b.Target != Global && b.Target != StdStream {
			return false
		}

		if sel, ok := info.Selections[e]; ok {
			return sel.Obj() == b.Var && types.ExprString(e) == types.ExprString(ast.Unparen(b.Lhs))
		}

		return b.Var != nil && info.Uses[e.Sel] == b.Var

	case *ast.IndexExpr, *ast.StarExpr:
		return b.Target == Element && types.ExprString(e) == types.ExprString(ast.Unparen(b.Lhs))

	default:
		return false
	}
}
