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

	"fillmore-labs.com/leakguard/internal/astutil"
	"fillmore-labs.com/leakguard/internal/resource"
)

// Call is a resolved call expression offered to a [Detector].
type Call struct {
	// Expr is the call expression.
	Expr *ast.CallExpr

	// Callee is the statically called function or method.
	Callee *types.Func

	// Name is the name of the callee.
	Name astutil.FuncName

	// Recv is the named receiver type of the selection for method calls, possibly
	// embedding the type declaring the callee.
	Recv *types.Named

	// Results are the result types of the call.
	Results *types.Tuple
}

// Method reports whether the call is a method call.
func (c Call) Method() bool {
	return c.Name.Method()
}

// RecvName returns the callee name qualified by the receiver type of the selection,
// or the callee name when both are the same.
func (c Call) RecvName() astutil.FuncName {
	if c.Recv == nil {
		return c.Name
	}

	path, name := astutil.TypeNameOf(c.Recv)

	return astutil.FuncName{Path: path, Receiver: name, Name: c.Name.Name}
}

// Detector decides whether a call creates a resource of its family.
type Detector interface {
	// Family returns the resource family this detector owns.
	Family() resource.Family

	// Creates reports whether call obtains a new resource handle.
	Creates(call Call) bool

	// Resource reports whether values of type t are resources of this family.
	Resource(t types.Type) bool
}
