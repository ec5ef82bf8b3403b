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

import ignore "github.com/sabhiram/go-gitignore"

// Exclusions matches file names against gitignore-style patterns.
type Exclusions struct {
	matcher *ignore.GitIgnore
}

// CompileExclusions compiles the exclude patterns of the settings.
func CompileExclusions(patterns []string) Exclusions {
	if len(patterns) == 0 {
		return Exclusions{}
	}

	return Exclusions{matcher: ignore.CompileIgnoreLines(patterns...)}
}

// Excluded reports whether the file should be skipped.
func (e Exclusions) Excluded(filename string) bool {
	return e.matcher != nil && filename != "" && e.matcher.MatchesPath(filename)
}
