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
	"go/ast"
	"slices"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	. "fillmore-labs.com/leakguard/internal/astutil"
	"fillmore-labs.com/leakguard/internal/testsource"
)

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	_, _, _, body := testsource.Parse(t, `
a := 1
if a > 0 {
	b := 2
	_ = b
}
c := 3
_ = c
`)

	var got []string
	_, found := Walk(body, func(c inspector.Cursor) (struct{}, Step) {
		if id, ok := c.Node().(*ast.Ident); ok && id.Name != "_" {
			got = append(got, id.Name)
		}

		return struct{}{}, Continue
	})

	if found {
		t.Error("Expected walk to complete")
	}

	want := []string{"a", "a", "b", "b", "c", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk() visited %v, want %v", got, want)
	}
}

func TestWalkSkipAndFound(t *testing.T) {
	t.Parallel()

	_, _, _, body := testsource.Parse(t, `
f := func() { x := 1; _ = x }
y := 2
_, _ = f, y
`)

	name, found := Walk(body, func(c inspector.Cursor) (string, Step) {
		switch n := c.Node().(type) {
		case *ast.FuncLit:
			return "", Skip

		case *ast.Ident:
			if n.Name == "x" || n.Name == "y" {
				return n.Name, Found
			}
		}

		return "", Continue
	})

	if !found || name != "y" {
		t.Errorf("Walk() = %q, %t, want %q, true", name, found, "y")
	}
}
