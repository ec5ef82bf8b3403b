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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"
)

// leakguard is the name of the linter.
const leakguard = "leakguard"

// CurrentFile holds the file under analysis together with its suppression comments.
type CurrentFile struct {
	handle    *token.File
	generated bool
	nolint    map[int]struct{} // lines with a //nolint:leakguard comment
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	var nolint map[int]struct{}

	for _, group := range file.Comments {
		for _, comment := range group.List {
			if !CommentHasNoLint(comment) {
				continue
			}

			if nolint == nil {
				nolint = make(map[int]struct{})
			}

			nolint[handle.PositionFor(comment.Pos(), false).Line] = struct{}{}
		}
	}

	return CurrentFile{handle: handle, generated: ast.IsGenerated(file), nolint: nolint}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Name returns the file name.
func (c CurrentFile) Name() string {
	if c.handle == nil {
		return ""
	}

	return c.handle.Name()
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLintComment reports whether the line of pos carries a //nolint:leakguard comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.handle == nil || !pos.IsValid() {
		return false
	}

	_, ok := c.nolint[c.handle.PositionFor(pos, false).Line]

	return ok
}

// NoLintDoc reports whether a doc comment ends with a //nolint:leakguard directive.
func NoLintDoc(doc *ast.CommentGroup) bool {
	return doc != nil && len(doc.List) > 0 && CommentHasNoLint(doc.List[len(doc.List)-1])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:leakguard` or `//nolint:all` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == leakguard || l == "all" {
			return true
		}
	}

	return false
}
