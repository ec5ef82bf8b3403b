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

import (
	"slices"

	"golang.org/x/tools/go/ast/inspector"
)

// Step tells [Walk] how to proceed after visiting a node.
type Step uint8

const (
	// Continue descends into the children of the visited node.
	Continue Step = iota

	// Skip ignores the children of the visited node.
	Skip

	// Found stops the walk with the value of the visit.
	Found
)

// Walk visits root and its descendants in preorder, using an explicit worklist.
// It returns the value of the first visit reporting [Found].
func Walk[T any](root inspector.Cursor, visit func(c inspector.Cursor) (T, Step)) (T, bool) {
	work := []inspector.Cursor{root}
	for len(work) > 0 {
		c := work[len(work)-1]
		work = work[:len(work)-1]

		v, step := visit(c)
		switch step {
		case Found:
			return v, true

		case Skip:
			continue
		}

		mark := len(work)
		for child := range c.Children() {
			work = append(work, child)
		}

		slices.Reverse(work[mark:])
	}

	var zero T

	return zero, false
}
