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

	"fillmore-labs.com/leakguard/internal/astutil"
	"fillmore-labs.com/leakguard/internal/resource"
)

type set = map[string]struct{}

func newSet(names ...string) set {
	s := make(set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}

	return s
}

// Known detects resources of a specific family by constructor and factory names and by result type.
//
// Constructors are package-level functions, factories are methods. Factories match either by the
// declaring type of the method or by the receiver type of the selection, so methods promoted through
// embedding still count. Package-level functions returning one of the family's types are constructors, too.
type Known struct {
	family       resource.Family
	constructors set
	factories    set
	types        set
}

// NewKnown creates a [Known] detector.
func NewKnown(family resource.Family, constructors, factories, types []string) Known {
	return Known{
		family:       family,
		constructors: newSet(constructors...),
		factories:    newSet(factories...),
		types:        newSet(types...),
	}
}

// Family implements [Detector].
func (k Known) Family() resource.Family {
	return k.family
}

// Creates implements [Detector].
func (k Known) Creates(call Call) bool {
	if !call.Method() {
		if _, ok := k.constructors[call.Name.String()]; ok {
			return true
		}

		for v := range call.Results.Variables() {
			if k.isType(v.Type()) {
				return true
			}
		}

		return false
	}

	if _, ok := k.factories[call.Name.String()]; ok {
		return true
	}

	_, ok := k.factories[call.RecvName().String()]

	return ok
}

// Resource implements [Detector].
func (k Known) Resource(t types.Type) bool {
	return !IsError(t) && (k.isType(t) || Releasable(t, k.family.Verbs()))
}

func (k Known) isType(t types.Type) bool {
	name := astutil.QualifiedTypeName(t)
	if name == "" {
		return false
	}

	_, ok := k.types[name]

	return ok
}

// Generic detects calls returning values with a Close() or Close() error method.
type Generic struct{}

// Family implements [Detector].
func (Generic) Family() resource.Family {
	return resource.Generic
}

// Creates implements [Detector].
func (g Generic) Creates(call Call) bool {
	for v := range call.Results.Variables() {
		if g.Resource(v.Type()) {
			return true
		}
	}

	return false
}

// Resource implements [Detector].
func (Generic) Resource(t types.Type) bool {
	return Closable(t)
}
