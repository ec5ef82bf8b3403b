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

package astutil_test

import (
	"go/token"
	"go/types"
	"testing"

	. "fillmore-labs.com/leakguard/internal/astutil"
)

func TestFuncNameOf(t *testing.T) {
	t.Parallel()

	pkg := types.NewPackage("example.com/testpkg", "testpkg")

	typeName := types.NewTypeName(token.NoPos, pkg, "MyType", nil)
	emptystruct := types.NewStruct(nil, nil)
	named := types.NewNamed(typeName, emptystruct, nil)
	aliasName := types.NewTypeName(token.NoPos, pkg, "MyAlias", nil)
	alias := types.NewAlias(aliasName, types.NewPointer(named))

	tests := [...]struct {
		name         string
		fun          *types.Func
		wantFuncName string
		wantMethod   bool
	}{
		{
			name: "function",
			fun: func() *types.Func {
				sig := types.NewSignatureType(nil, nil, nil, nil, nil, false)

				return types.NewFunc(token.NoPos, pkg, "Open", sig)
			}(),
			wantFuncName: "example.com/testpkg.Open",
		},
		{
			name: "value method",
			fun: func() *types.Func {
				recv := types.NewParam(token.NoPos, pkg, "", named)
				sig := types.NewSignatureType(recv, nil, nil, nil, nil, false)

				return types.NewFunc(token.NoPos, pkg, "Open", sig)
			}(),
			wantFuncName: "(example.com/testpkg.MyType).Open",
			wantMethod:   true,
		},
		{
			name: "pointer method",
			fun: func() *types.Func {
				recv := types.NewParam(token.NoPos, pkg, "", types.NewPointer(named))
				sig := types.NewSignatureType(recv, nil, nil, nil, nil, false)

				return types.NewFunc(token.NoPos, pkg, "Open", sig)
			}(),
			wantFuncName: "(example.com/testpkg.MyType).Open",
			wantMethod:   true,
		},
		{
			name: "alias pointer method",
			fun: func() *types.Func {
				recv := types.NewParam(token.NoPos, pkg, "", alias)
				sig := types.NewSignatureType(recv, nil, nil, nil, nil, false)

				return types.NewFunc(token.NoPos, pkg, "Open", sig)
			}(),
			wantFuncName: "(example.com/testpkg.MyType).Open",
			wantMethod:   true,
		},
		{
			name: "interface method",
			fun: func() *types.Func {
				sig := types.NewSignatureType(nil, nil, nil, nil, nil, false)
				iface := types.NewInterfaceType([]*types.Func{
					types.NewFunc(token.NoPos, pkg, "Close", sig),
				}, nil).Complete()

				return iface.Method(0)
			}(),
			wantFuncName: "(interface).Close",
			wantMethod:   true,
		},
		{
			name: "function without package",
			fun: func() *types.Func {
				sig := types.NewSignatureType(nil, nil, nil, nil, nil, false)

				return types.NewFunc(token.NoPos, nil, "Open", sig)
			}(),
			wantFuncName: "Open",
		},
		{
			name: "method on type without package",
			fun: func() *types.Func {
				return types.Universe.Lookup("error").Type().Underlying().(*types.Interface).Method(0)
			}(),
			wantFuncName: "(error).Error",
			wantMethod:   true,
		},
		{
			name: "invalid pointer method",
			fun: func() *types.Func {
				recv := types.NewParam(token.NoPos, pkg, "", types.NewPointer(emptystruct))
				sig := types.NewSignatureType(recv, nil, nil, nil, nil, false)

				return types.NewFunc(token.NoPos, pkg, "Open", sig)
			}(),
			wantFuncName: "(<invalid>).Open",
			wantMethod:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name := FuncNameOf(tt.fun)
			if got := name.String(); got != tt.wantFuncName {
				t.Errorf("FuncNameOf() = %q, want %q", got, tt.wantFuncName)
			}

			if got := name.Method(); got != tt.wantMethod {
				t.Errorf("Method() = %t, want %t", got, tt.wantMethod)
			}
		})
	}
}

func TestQualifiedTypeName(t *testing.T) {
	t.Parallel()

	pkg := types.NewPackage("example.com/testpkg", "testpkg")
	typeName := types.NewTypeName(token.NoPos, pkg, "File", nil)
	named := types.NewNamed(typeName, types.NewStruct(nil, nil), nil)

	tests := [...]struct {
		name string
		typ  types.Type
		want string
	}{
		{"named", named, "example.com/testpkg.File"},
		{"pointer", types.NewPointer(named), "example.com/testpkg.File"},
		{"universe", types.Universe.Lookup("error").Type(), "error"},
		{"basic", types.Typ[types.Int], ""},
		{"slice", types.NewSlice(named), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := QualifiedTypeName(tt.typ); got != tt.want {
				t.Errorf("QualifiedTypeName() = %q, want %q", got, tt.want)
			}
		})
	}
}
