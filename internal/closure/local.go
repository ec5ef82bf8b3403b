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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/leakguard/internal/resource"
)

// Checker finds local release of bound resources.
type Checker struct {
	// InsideTry accepts release in deferred function literals of the enclosing function
	// and of immediately invoked function literals.
	InsideTry bool
}

// Closed reports whether the binding is released locally:
//
//  1. A creation in an if initializer is closed when the if body starts with a release.
//     Otherwise, starting at the statement containing the creation, skip declarations and the
//     creation's own error check.
//  2. With InsideTry, a deferred function literal of the enclosing function releasing the
//     binding closes it.
//  3. Scan forward across siblings, climbing out of enclosing blocks up to the function
//     boundary, until a significant statement is found.
//  4. An immediately invoked function literal releases in its deferred statements (with InsideTry),
//     or its first statement is the candidate.
//  5. The candidate is a release, a nil check of the binding whose then-branch starts with a
//     release, or a block starting with a release.
func (k Checker) Closed(m Matcher, site resource.Site) (resource.Reason, bool) {
	stmt, ok := listStmt(site)
	if !ok {
		return 0, false
	}

	if k.InsideTry && closedInFinally(m, site) {
		return resource.ClosedInFinally, true
	}

	if releasedInIfBody(m, site) {
		return resource.ClosedLocally, true
	}

	candidate, ok := next(m, stmt)
	if !ok {
		return 0, false
	}

	if body, ok := invokedLiteral(candidate); ok {
		if k.InsideTry && releasedByDefer(m, body) {
			return resource.ClosedInFinally, true
		}

		candidate, ok = firstNonDefer(body)
		if !ok {
			return 0, false
		}
	}

	if releasesFirst(m, candidate.Node().(ast.Stmt)) {
		return resource.ClosedLocally, true
	}

	return 0, false
}

// listStmt returns the outermost statement containing the creation that is an element of a
// statement list, within the creation's function.
func listStmt(site resource.Site) (inspector.Cursor, bool) {
	stmt, ok := site.Stmt()
	if !ok {
		return inspector.Cursor{}, false
	}

	for c := stmt; ; c = c.Parent() {
		switch c.Node().(type) {
		case *ast.FuncDecl, *ast.FuncLit, *ast.File:
			return inspector.Cursor{}, false

		case *ast.CaseClause, *ast.CommClause:
			continue

		case ast.Stmt:
			if inList(c) {
				return c, true
			}
		}
	}
}

func inList(c inspector.Cursor) bool {
	switch k, _ := c.ParentEdge(); k {
	case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:
		return true

	default:
		return false
	}
}

// releasedInIfBody checks the body of an if statement whose initializer holds the creation.
func releasedInIfBody(m Matcher, site resource.Site) bool {
	stmt, ok := site.Stmt()
	if !ok {
		return false
	}

	if k, _ := stmt.ParentEdge(); k != edge.IfStmt_Init {
		return false
	}

	s := stmt.Parent().Node().(*ast.IfStmt)
	if len(s.Body.List) == 0 {
		return false
	}

	return releasesFirst(m, s.Body.List[0])
}

// closedInFinally searches the deferred function literals of the site's function for a release.
func closedInFinally(m Matcher, site resource.Site) bool {
	body, ok := site.Body()
	if !ok {
		return false
	}

	found := false
	for c := range deferred(body) {
		if lit, ok := deferredLiteral(c); ok && m.Contains(lit) {
			found = true

			break
		}
	}

	return found
}

// releasedByDefer checks the top level defer statements of an immediately invoked function literal.
func releasedByDefer(m Matcher, body inspector.Cursor) bool {
	for c := range body.Children() {
		d, ok := c.Node().(*ast.DeferStmt)
		if !ok {
			continue
		}

		if m.IsRelease(d.Call) {
			return true
		}

		if lit, ok := deferredLiteral(c); ok && m.Contains(lit) {
			return true
		}
	}

	return false
}

func firstNonDefer(body inspector.Cursor) (inspector.Cursor, bool) {
	for c := range body.Children() {
		if _, ok := c.Node().(*ast.DeferStmt); !ok {
			return c, true
		}
	}

	return inspector.Cursor{}, false
}

// next returns the first significant statement following stmt, climbing out of enclosing blocks.
func next(m Matcher, stmt inspector.Cursor) (inspector.Cursor, bool) {
	c := stmt
	for {
		sibling, ok := c.NextSibling()
		if !ok {
			c, ok = climb(c)
			if !ok {
				return inspector.Cursor{}, false
			}

			continue
		}

		c = sibling
		if s := c.Node().(ast.Stmt); !insignificant(s) && !m.IsErrCheck(s) {
			return c, true
		}
	}
}

// climb returns the enclosing statement list element of the block containing c.
func climb(c inspector.Cursor) (inspector.Cursor, bool) {
	for p := c.Parent(); ; p = p.Parent() {
		switch p.Node().(type) {
		case *ast.FuncDecl, *ast.FuncLit, *ast.File:
			return inspector.Cursor{}, false

		case *ast.CaseClause, *ast.CommClause:
			continue

		case ast.Stmt:
			if inList(p) {
				return p, true
			}
		}
	}
}

// insignificant reports whether stmt is a declaration without initializer or an empty statement.
func insignificant(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.EmptyStmt:
		return true

	case *ast.DeclStmt:
		decl, ok := s.Decl.(*ast.GenDecl)
		if !ok {
			return false
		}

		if decl.Tok != token.VAR {
			return true
		}

		for _, spec := range decl.Specs {
			if v, ok := spec.(*ast.ValueSpec); ok && len(v.Values) > 0 {
				return false
			}
		}

		return true

	default:
		return false
	}
}

// releasesFirst checks a candidate statement, descending into nil checks of the binding and blocks.
func releasesFirst(m Matcher, stmt ast.Stmt) bool {
	for {
		if m.Releases(stmt) {
			return true
		}

		switch s := stmt.(type) {
		case *ast.IfStmt:
			if s.Init != nil || !m.IsNilCheck(s.Cond) || len(s.Body.List) == 0 {
				return false
			}

			stmt = s.Body.List[0]

		case *ast.BlockStmt:
			if len(s.List) == 0 {
				return false
			}

			stmt = s.List[0]

		case *ast.LabeledStmt:
			stmt = s.Stmt

		default:
			return false
		}
	}
}
