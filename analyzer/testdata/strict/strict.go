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

package strict

import (
	"compress/gzip"
	"io"
	"os"
)

func tryFinally(name string) {
	f, err := os.Open(name) // want "I/O resource .os.File is never closed"
	if err != nil {
		return
	}

	func() {
		defer f.Close()

		_, _ = f.Stat()
	}()
}

func deferredLiteral(name string) {
	f, err := os.Open(name) // want "I/O resource .os.File is never closed"
	if err != nil {
		return
	}

	defer func() { _ = f.Close() }()
}

func passed(name string) error {
	f, err := os.Open(name) // want "I/O resource .os.File is never closed"
	if err != nil {
		return err
	}

	return process(f)
}

func process(*os.File) error { return nil }

func compressed(name string) (*gzip.Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return gzip.NewReader(f)
}

type closer struct{}

func (closer) Close() error { return nil }

func newCloser() closer { return closer{} }

func wrap(c closer) closer { return c }

func chained() error {
	c := wrap(newCloser()) // want "closable resource closer is never closed"

	return c.Close()
}

func closeQuietly(c io.Closer) { _ = c.Close() }

func helper(name string) {
	f, err := os.Open(name)
	if err != nil {
		return
	}

	closeQuietly(f)
}

func guarded(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer closeQuietly(f)

	_, err = f.Stat()

	return err
}

func nilGuard(name string) {
	f, _ := os.Open(name)
	if nil != f {
		f.Close()
	}
}
