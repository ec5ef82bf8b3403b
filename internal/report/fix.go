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

package report

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"

	"fillmore-labs.com/leakguard/internal/engine"
	"fillmore-labs.com/leakguard/internal/family"
	"fillmore-labs.com/leakguard/internal/resource"
)

var closeVerb = []string{"close"}

// deferClose inserts "defer v.Close()" after the declaration of v, or after the error check
// immediately following it.
func deferClose(f engine.Finding) []analysis.TextEdit {
	b := f.Binding
	if !f.Bound || !b.Define || b.Target != resource.Local || b.Var == nil {
		return nil
	}

	assign, ok := b.Owner.Node().(*ast.AssignStmt)
	if !ok || assign.Tok != token.DEFINE {
		return nil
	}

	switch k, _ := b.Owner.ParentEdge(); k {
	case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:

	default:
		return nil
	}

	if !family.Releasable(f.Site.Type, closeVerb) {
		return nil
	}

	pos := assign.End()
	if next, ok := b.Owner.NextSibling(); ok && b.Err != nil && isErrCheck(next.Node(), b.Err.Name()) {
		pos = next.Node().End()
	}

	return []analysis.TextEdit{{
		Pos:     pos,
		End:     pos,
		NewText: []byte("\ndefer " + b.Name() + ".Close()"),
	}}
}

// isErrCheck reports whether n is "if err != nil { ... }".
func isErrCheck(n ast.Node, name string) bool {
	s, ok := n.(*ast.IfStmt)
	if !ok || s.Init != nil {
		return false
	}

	bin, ok := s.Cond.(*ast.BinaryExpr)
	if !ok || bin.Op != token.NEQ {
		return false
	}

	x, ok := bin.X.(*ast.Ident)
	if !ok || x.Name != name {
		return false
	}

	y, ok := bin.Y.(*ast.Ident)

	return ok && y.Name == "nil"
}
