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

package analyzer

import (
	"flag"

	"fillmore-labs.com/leakguard/internal/config"
	"fillmore-labs.com/leakguard/internal/run"
)

func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	s := r.Settings

	flags.Var(newBehaviorValue(&s.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newBehaviorValue(&s.Behavior, config.IgnoreFromMethodCall), "ignore-method-calls",
		"ignore resources obtained through method calls")
	flags.Var(newBehaviorValue(&s.Behavior, config.InsideTryAllowed), "inside-try",
		"accept release in deferred function literals")
	flags.Var(newBehaviorValue(&s.Behavior, config.AnyMethodMayClose), "any-method-may-close",
		"treat resources passed to any call as transferred")
	flags.Var(ignoreValue{s}, "ignore", "`family:name` never treated as a creation site (repeatable, comma separated)")
	flags.Var(listValue{&s.ClosingDelegates, config.ValidName}, "closing-delegate",
		"`name` of a call taking ownership of a resource argument (repeatable, comma separated)")
	flags.Var(listValue{&s.Exclude, nil}, "exclude", "gitignore-style `pattern` of files to skip (repeatable, comma separated)")
	flags.Var(configValue{s, new(string)}, "config", "YAML configuration `file`")
}
