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

package family

import (
	"go/ast"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/leakguard/internal/astutil"
	"fillmore-labs.com/leakguard/internal/resource"
)

// Registry classifies calls by trying its detectors in order.
//
// A Registry is immutable after construction and may be shared by concurrent passes.
type Registry struct {
	detectors   []Detector
	ignored     map[resource.Family]set
	skipMethods bool
}

// Option configures a [Registry].
type Option func(r *Registry)

// WithDetectors replaces the default detectors.
func WithDetectors(detectors ...Detector) Option {
	return func(r *Registry) {
		r.detectors = slices.Clone(detectors)
	}
}

// WithIgnored adds type or callee names never treated as creation sites of a family.
func WithIgnored(family resource.Family, names ...string) Option {
	return func(r *Registry) {
		s, ok := r.ignored[family]
		if !ok {
			s = make(set, len(names))
			r.ignored[family] = s
		}

		for _, name := range names {
			s[name] = struct{}{}
		}
	}
}

// WithoutMethodCalls excludes resources obtained through method calls.
func WithoutMethodCalls(skip bool) Option {
	return func(r *Registry) {
		r.skipMethods = skip
	}
}

// New creates a [Registry] with the [Defaults] detectors.
func New(opts ...Option) *Registry {
	r := &Registry{
		detectors: Defaults(),
		ignored:   make(map[resource.Family]set),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a detector, ahead of the catch-all [Generic] detectors.
// It must be called before the registry is used.
func (r *Registry) Register(d Detector) {
	i := slices.IndexFunc(r.detectors, func(d Detector) bool { return d.Family() == resource.Generic })
	if i < 0 || d.Family() == resource.Generic {
		r.detectors = append(r.detectors, d)

		return
	}

	r.detectors = slices.Insert(r.detectors, i, d)
}

// Classify returns a creation site for every resource result of the call at c.
// Unresolvable callees, conversions, builtins and ignored names yield no sites.
func (r *Registry) Classify(info *types.Info, c inspector.Cursor) []resource.Site {
	expr, ok := c.Node().(*ast.CallExpr)
	if !ok {
		return nil
	}

	call, d, ok := r.match(info, expr)
	if !ok {
		return nil
	}

	ignored := r.ignored[d.Family()]

	errIndex := -1
	for i := range call.Results.Len() {
		if IsError(call.Results.At(i).Type()) {
			errIndex = i

			break
		}
	}

	var sites []resource.Site
	for i := range call.Results.Len() {
		t := call.Results.At(i).Type()
		if !d.Resource(t) {
			continue
		}

		if _, ok := ignored[astutil.QualifiedTypeName(t)]; ok {
			continue
		}

		sites = append(sites, resource.Site{
			Call:   c,
			Family: d.Family(),
			Type:   t,
			Callee: call.Callee,
			Result: i,
			Err:    errIndex,
			Method: call.Method(),
		})
	}

	return sites
}

// Creates reports whether the call expression obtains a new resource handle of any family.
func (r *Registry) Creates(info *types.Info, expr *ast.CallExpr) bool {
	call, d, ok := r.match(info, expr)
	if !ok {
		return false
	}

	ignored := r.ignored[d.Family()]
	for v := range call.Results.Variables() {
		if _, ok := ignored[astutil.QualifiedTypeName(v.Type())]; !ok && d.Resource(v.Type()) {
			return true
		}
	}

	return false
}

func (r *Registry) match(info *types.Info, expr *ast.CallExpr) (Call, Detector, bool) {
	call, ok := Resolve(info, expr)
	if !ok || r.skipMethods && call.Method() {
		return Call{}, nil, false
	}

	for _, d := range r.detectors {
		if !d.Creates(call) {
			continue
		}

		if r.ignoredCall(d.Family(), call) {
			return Call{}, nil, false
		}

		return call, d, true
	}

	return Call{}, nil, false
}

func (r *Registry) ignoredCall(family resource.Family, call Call) bool {
	ignored, ok := r.ignored[family]
	if !ok {
		return false
	}

	if _, ok := ignored[call.Name.String()]; ok {
		return true
	}

	_, ok = ignored[call.RecvName().String()]

	return ok
}

// Resolve returns the statically called function or method of a call expression.
func Resolve(info *types.Info, expr *ast.CallExpr) (Call, bool) {
	callee, ok := typeutil.Callee(info, expr).(*types.Func)
	if !ok {
		return Call{}, false
	}

	sig, ok := types.Unalias(info.TypeOf(expr.Fun)).(*types.Signature)
	if !ok {
		return Call{}, false
	}

	call := Call{
		Expr:    expr,
		Callee:  callee,
		Name:    astutil.FuncNameOf(callee),
		Results: sig.Results(),
	}

	if sel, ok := ast.Unparen(expr.Fun).(*ast.SelectorExpr); ok {
		if selection, ok := info.Selections[sel]; ok && selection.Kind() == types.MethodVal {
			recv := types.Unalias(selection.Recv())
			if ptr, ok := recv.(*types.Pointer); ok {
				recv = types.Unalias(ptr.Elem())
			}

			call.Recv, _ = recv.(*types.Named)
		}
	}

	return call, true
}
