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

package ignored

import (
	"embed"
	"io"
	"strings"
)

type memFile struct{}

func (*memFile) Close() error { return nil }

func newMemFile() *memFile { return &memFile{} }

type diskFile struct{}

func (*diskFile) Close() error { return nil }

func newDiskFile() *diskFile { return &diskFile{} }

var content embed.FS

func use() {
	m := newMemFile()
	_ = m

	d := newDiskFile() // want "closable resource .diskFile is never closed"
	_ = d

	rc := io.NopCloser(strings.NewReader("data"))
	_ = rc

	f, err := content.Open("data.txt")
	if err != nil {
		return
	}
	_ = f
}
