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

package configfile

import "os"

func consume(*os.File) {}

func delegated(name string) {
	f, err := os.Open(name)
	if err != nil {
		return
	}

	consume(f)
}

func describe(*os.File) {}

func passed(name string) {
	f, err := os.Open(name) // want "I/O resource .os.File is never closed"
	if err != nil {
		return
	}

	describe(f)
}

type buffer struct{}

func (*buffer) Close() error { return nil }

func newBuffer() *buffer { return &buffer{} }

func ignored() {
	b := newBuffer()
	_ = b
}
