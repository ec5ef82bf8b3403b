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

// Package escape decides whether a resource is handed off to a caller or container presumed
// responsible for releasing it.
package escape

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/leakguard/internal/astutil"
	"fillmore-labs.com/leakguard/internal/binding"
	"fillmore-labs.com/leakguard/internal/family"
	"fillmore-labs.com/leakguard/internal/resource"
)

// Classifier recognizes resource creating calls.
type Classifier interface {
	Creates(info *types.Info, call *ast.CallExpr) bool
}

// Releaser recognizes release calls of a binding.
type Releaser interface {
	IsRelease(call *ast.CallExpr) bool
}

// Outcome is the result of escape analysis.
type Outcome struct {
	// Event is the first escape found.
	Event resource.EscapeEvent

	// Escaped is true when ownership of the resource is transferred.
	Escaped bool

	// Handoff is the first call the resource was passed to without transferring ownership.
	Handoff *ast.CallExpr
}

// Analyzer finds escapes of resources.
type Analyzer struct {
	classifier Classifier
	delegates  map[string]struct{}
	permissive bool
}

// New creates an [Analyzer].
//
// Resources passed to one of the closing delegates escape. With permissive set, passing a
// resource to any call is an escape.
func New(classifier Classifier, delegates []string, permissive bool) *Analyzer {
	d := make(map[string]struct{}, len(delegates))
	for _, name := range delegates {
		d[name] = struct{}{}
	}

	return &Analyzer{classifier: classifier, delegates: d, permissive: permissive}
}

// Escapes checks the creation site and, when bound to a local variable, every reference to the binding
// or to a local copy of it in the enclosing function, excluding nested function literals and type
// declarations.
func (a *Analyzer) Escapes(info *types.Info, site resource.Site, b resource.Binding, bound bool, rel Releaser) Outcome {
	var o Outcome

	top := binding.Top(info, site)
	if ev, ok := a.use(info, top, rel, &o, false); ok {
		return Outcome{Event: ev, Escaped: true}
	}

	if !bound {
		return o
	}

	switch b.Target {
	case resource.Field, resource.Global, resource.Element:
		return Outcome{Event: resource.StoredToField, Escaped: true}

	case resource.StdStream:
		return Outcome{Event: resource.StoredToStdStream, Escaped: true}
	}

	body, ok := site.Body()
	if !ok || b.Var == nil {
		return o
	}

	vars := map[*types.Var]struct{}{b.Var: {}}

	ev, found := astutil.Walk(body, func(c inspector.Cursor) (resource.EscapeEvent, astutil.Step) {
		switch n := c.Node().(type) {
		case *ast.FuncLit:
			return 0, astutil.Skip

		case *ast.DeclStmt:
			if decl, ok := n.Decl.(*ast.GenDecl); ok && decl.Tok == token.TYPE {
				return 0, astutil.Skip
			}

		case *ast.Ident:
			v, ok := info.Uses[n].(*types.Var)
			if !ok {
				break
			}

			if _, ok := vars[v]; !ok {
				break
			}

			if ev, ok := a.use(info, c, rel, &o, true); ok {
				return ev, astutil.Found
			}

			if alias, ok := aliasOf(info, c); ok {
				vars[alias] = struct{}{}
			}
		}

		return 0, astutil.Continue
	})

	if found {
		return Outcome{Event: ev, Escaped: true}
	}

	return o
}

// aliasOf returns the local variable the value at c is copied into, as in "r := f".
func aliasOf(info *types.Info, c inspector.Cursor) (*types.Var, bool) {
	for {
		if _, ok := c.Parent().Node().(*ast.ParenExpr); !ok {
			break
		}

		c = c.Parent()
	}

	kind, index := c.ParentEdge()

	switch p := c.Parent().Node().(type) {
	case *ast.AssignStmt:
		if kind != edge.AssignStmt_Rhs || len(p.Lhs) != len(p.Rhs) {
			return nil, false
		}

		b, ok := binding.Operand(info, p.Lhs[index])
		if !ok || b.Target != resource.Local || b.Var == nil {
			return nil, false
		}

		return b.Var, true

	case *ast.ValueSpec:
		if kind != edge.ValueSpec_Values || len(p.Names) != len(p.Values) {
			return nil, false
		}

		v, ok := info.Defs[p.Names[index]].(*types.Var)

		return v, ok && v != nil
	}

	return nil, false
}

// use follows the value at c through parentheses, address operators and composite literals
// to its consumer.
func (a *Analyzer) use(info *types.Info, c inspector.Cursor, rel Releaser, o *Outcome, chained bool) (resource.EscapeEvent, bool) {
	var lit *ast.CompositeLit

climb:
	for {
		parent := c.Parent()
		kind, _ := c.ParentEdge()

		switch p := parent.Node().(type) {
		case *ast.ParenExpr:

		case *ast.UnaryExpr:
			if p.Op != token.AND {
				break climb
			}

		case *ast.KeyValueExpr:
			if kind != edge.KeyValueExpr_Value {
				break climb
			}

		case *ast.CompositeLit:
			if kind != edge.CompositeLit_Elts {
				break climb
			}

			if lit == nil {
				lit = p
			}

		default:
			break climb
		}

		c = parent
	}

	kind, index := c.ParentEdge()

	switch p := c.Parent().Node().(type) {
	case *ast.ReturnStmt:
		return resource.Returned, true

	case *ast.AssignStmt:
		if kind != edge.AssignStmt_Rhs || len(p.Lhs) != len(p.Rhs) {
			break
		}

		if b, ok := binding.Operand(info, p.Lhs[index]); ok {
			switch b.Target {
			case resource.Field, resource.Global, resource.Element:
				return resource.StoredToField, true

			case resource.StdStream:
				return resource.StoredToStdStream, true
			}
		}

	case *ast.SendStmt:
		if kind == edge.SendStmt_Value {
			return resource.StoredToField, true
		}

	case *ast.CallExpr:
		if kind == edge.CallExpr_Args {
			if ev, ok := a.argument(info, c.Parent(), rel, o, chained); ok {
				return ev, true
			}
		}
	}

	if lit != nil {
		if t := info.TypeOf(lit); t != nil && (family.Closable(t) || family.Closable(types.NewPointer(t))) {
			return resource.ChainedIntoCreation, true
		}

		if a.permissive {
			return resource.StoredToField, true
		}
	}

	return 0, false
}

// argument checks a call the resource is passed to.
func (a *Analyzer) argument(info *types.Info, c inspector.Cursor, rel Releaser, o *Outcome, chained bool) (resource.EscapeEvent, bool) {
	call := c.Node().(*ast.CallExpr)

	if b, ok := typeutil.Callee(info, call).(*types.Builtin); ok {
		if b.Name() != "append" {
			return 0, false
		}

		if ev, ok := a.use(info, c, rel, o, chained); ok {
			return ev, true
		}

		if a.permissive {
			return resource.PassedToAnyCall, true
		}

		return 0, false
	}

	if rel != nil && rel.IsRelease(call) {
		return 0, false
	}

	if fn, ok := family.Resolve(info, call); ok && a.delegate(fn) {
		return resource.PassedToClosingDelegate, true
	}

	if (chained || a.permissive) && a.classifier.Creates(info, call) {
		return resource.ChainedIntoCreation, true
	}

	if a.permissive {
		return resource.PassedToAnyCall, true
	}

	if o.Handoff == nil {
		o.Handoff = call
	}

	return 0, false
}

func (a *Analyzer) delegate(call family.Call) bool {
	if _, ok := a.delegates[call.Name.String()]; ok {
		return true
	}

	_, ok := a.delegates[call.RecvName().String()]

	return ok
}
