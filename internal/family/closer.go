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
	"go/types"
	"strings"
)

var errorType = types.Universe.Lookup("error").Type()

// Closable reports whether values of type t have a Close() or Close() error method.
func Closable(t types.Type) bool {
	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, "Close")

	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	sig := fn.Signature()
	if sig.Params().Len() != 0 {
		return false
	}

	switch res := sig.Results(); res.Len() {
	case 0:
		return true

	case 1:
		return types.Identical(res.At(0).Type(), errorType)

	default:
		return false
	}
}

// Releasable reports whether values of type t have a parameterless method named after one of the verbs.
func Releasable(t types.Type, verbs []string) bool {
	ms := types.NewMethodSet(t)
	if _, ok := types.Unalias(t).(*types.Pointer); !ok && !types.IsInterface(t) {
		ms = types.NewMethodSet(types.NewPointer(t))
	}

	for sel := range ms.Methods() {
		fn, ok := sel.Obj().(*types.Func)
		if !ok || !fn.Exported() || fn.Signature().Params().Len() != 0 {
			continue
		}

		name := strings.ToLower(fn.Name())
		for _, verb := range verbs {
			if name == verb {
				return true
			}
		}
	}

	return false
}

// IsError reports whether t is the predeclared error type.
func IsError(t types.Type) bool {
	return types.Identical(t, errorType)
}
