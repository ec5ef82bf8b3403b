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

package astutil

import "go/types"

// FuncName identifies a function or method by package path, receiver type name and name.
type FuncName struct {
	Path, Receiver, Name string
}

// String returns "path.Name" for functions and "(path.Receiver).Name" for methods.
func (f FuncName) String() string {
	switch {
	case f.Receiver == "" && f.Path == "":
		return f.Name

	case f.Receiver == "":
		return f.Path + "." + f.Name

	case f.Path == "":
		return "(" + f.Receiver + ")." + f.Name

	default:
		return "(" + f.Path + "." + f.Receiver + ")." + f.Name
	}
}

// Method reports whether f names a method.
func (f FuncName) Method() bool {
	return f.Receiver != ""
}

// FuncNameOf returns the [FuncName] of a function or method.
// Pointer receivers and aliases are resolved to the named receiver type.
func FuncNameOf(fun *types.Func) FuncName {
	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		var path string
		if pkg := fun.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Name: fun.Name()}
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	switch r := recv.(type) {
	case *types.Named:
		path, name := TypeNameOf(r)

		return FuncName{Path: path, Receiver: name, Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}

// TypeNameOf returns package path and name of a named type.
func TypeNameOf(n *types.Named) (path, name string) {
	obj := n.Origin().Obj()
	if pkg := obj.Pkg(); pkg != nil {
		path = pkg.Path()
	}

	return path, obj.Name()
}

// QualifiedTypeName returns "path.Name" of a named type or a pointer to one, the empty string otherwise.
func QualifiedTypeName(t types.Type) string {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	n, ok := t.(*types.Named)
	if !ok {
		return ""
	}

	path, name := TypeNameOf(n)
	if path == "" {
		return name
	}

	return path + "." + name
}
