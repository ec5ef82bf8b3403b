// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import (
	"maps"
	"slices"

	leakguard "fillmore-labs.com/leakguard/analyzer"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// IgnoreMethodCalls excludes resources obtained through method calls.
	IgnoreMethodCalls *bool `json:"ignore-method-calls,omitzero"`
	// InsideTry accepts release in deferred function literals.
	InsideTry *bool `json:"inside-try,omitzero"`
	// AnyMethodMayClose treats resources passed to any call as transferred.
	AnyMethodMayClose *bool `json:"any-method-may-close,omitzero"`
	// Ignore lists type or callee names per family never treated as creation sites.
	Ignore map[leakguard.Family][]string `json:"ignore,omitzero"`
	// ClosingDelegates lists calls presumed to take ownership of a resource argument.
	ClosingDelegates []string `json:"closing-delegates,omitzero"`
	// Exclude lists gitignore-style patterns of files to skip.
	Exclude []string `json:"exclude,omitzero"`
	// Config names a YAML configuration file.
	Config *string `json:"config,omitzero"`
}

// Options converts [Settings] into a list of [leakguard.Option] for the leakguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []leakguard.Option {
	var opts []leakguard.Option

	// The configuration file is applied first, so explicit settings override it.
	opts = appendOption(opts, s.Config, leakguard.WithConfigFile)
	opts = appendOption(opts, s.IgnoreMethodCalls, leakguard.WithIgnoreMethodCalls)
	opts = appendOption(opts, s.InsideTry, leakguard.WithInsideTry)
	opts = appendOption(opts, s.AnyMethodMayClose, leakguard.WithAnyMethodMayClose)

	for _, family := range slices.Sorted(maps.Keys(s.Ignore)) {
		opts = append(opts, leakguard.WithIgnored(family, s.Ignore[family]...))
	}

	if len(s.ClosingDelegates) > 0 {
		opts = append(opts, leakguard.WithClosingDelegates(s.ClosingDelegates...))
	}

	if len(s.Exclude) > 0 {
		opts = append(opts, leakguard.WithExclude(s.Exclude...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [leakguard.Option] list.
func appendOption[T any](opts []leakguard.Option, value *T, constructor func(T) leakguard.Option) []leakguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
