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

package config

import (
	"log/slog"
	"maps"
	"slices"

	"fillmore-labs.com/leakguard/internal/resource"
)

// Behavior represents boolean configuration options of the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// IgnoreFromMethodCall excludes resources acquired through method calls.
	IgnoreFromMethodCall

	// InsideTryAllowed accepts release in a deferred cleanup function of the enclosing function
	// or of an immediately invoked function literal.
	InsideTryAllowed

	// AnyMethodMayClose treats a resource handed to any call as transferred.
	AnyMethodMayClose
)

// DefaultBehavior returns the default behavior flags.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask(InsideTryAllowed, AnyMethodMayClose)
}

// Settings is the configuration of an analysis pass. It is built before the first pass and
// never mutated while passes run.
type Settings struct {
	// Behavior holds boolean options.
	Behavior BitMask[Behavior]

	// Ignored maps a family to type or callee names never treated as creation sites.
	Ignored map[resource.Family][]string

	// ClosingDelegates lists functions and methods presumed to take ownership of a resource argument.
	ClosingDelegates []string

	// Exclude lists gitignore-style patterns of files to skip.
	Exclude []string
}

// Default returns settings with the default behavior, ignore lists and closing delegates.
func Default() *Settings {
	return &Settings{
		Behavior:         DefaultBehavior(),
		Ignored:          DefaultIgnored(),
		ClosingDelegates: slices.Clone(defaultClosingDelegates),
	}
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	ignored := make(map[resource.Family][]string, len(s.Ignored))
	for family, names := range s.Ignored {
		ignored[family] = slices.Clone(names)
	}

	return &Settings{
		Behavior:         s.Behavior,
		Ignored:          ignored,
		ClosingDelegates: slices.Clone(s.ClosingDelegates),
		Exclude:          slices.Clone(s.Exclude),
	}
}

// Ignore appends names to the ignore list of a family.
func (s *Settings) Ignore(family resource.Family, names ...string) error {
	for _, name := range names {
		if err := ValidName(name); err != nil {
			return err
		}
	}

	if s.Ignored == nil {
		s.Ignored = make(map[resource.Family][]string)
	}

	s.Ignored[family] = appendUnique(s.Ignored[family], names...)

	return nil
}

// AddClosingDelegates appends names to the closing delegate list.
func (s *Settings) AddClosingDelegates(names ...string) error {
	for _, name := range names {
		if err := ValidName(name); err != nil {
			return err
		}
	}

	s.ClosingDelegates = appendUnique(s.ClosingDelegates, names...)

	return nil
}

// LogValue implements [slog.LogValuer].
func (s *Settings) LogValue() slog.Value {
	as := []slog.Attr{
		slog.Bool("generated", s.Behavior.Enabled(IncludeGenerated)),
		slog.Bool("ignore-method-calls", s.Behavior.Enabled(IgnoreFromMethodCall)),
		slog.Bool("inside-try", s.Behavior.Enabled(InsideTryAllowed)),
		slog.Bool("any-method-may-close", s.Behavior.Enabled(AnyMethodMayClose)),
	}

	for _, family := range slices.Sorted(maps.Keys(s.Ignored)) {
		as = append(as, slog.Any("ignore-"+family.String(), s.Ignored[family]))
	}

	as = append(as,
		slog.Any("closing-delegates", s.ClosingDelegates),
		slog.Any("exclude", s.Exclude))

	return slog.GroupValue(as...)
}

func appendUnique(list []string, names ...string) []string {
	for _, name := range names {
		if !slices.Contains(list, name) {
			list = append(list, name)
		}
	}

	return list
}
