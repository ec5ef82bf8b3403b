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

package a

import (
	"database/sql"
	"net"
	"net/http/httptest"
	"os"
)

func immediate(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}

	return f.Close()
}

func neverClosed(name string) (int64, error) {
	f, err := os.Open(name) // want "I/O resource .os.File is never closed"
	if err != nil {
		return 0, err
	}

	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}

	return fi.Size(), nil
}

func guarded(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Stat()

	return err
}

func nilGuard(name string) {
	f, _ := os.Open(name)
	if f != nil {
		_ = f.Close()
	}
}

func returned(name string) (*os.File, error) {
	return os.Create(name)
}

type holder struct{ conn net.Conn }

func (h *holder) dial(addr string) (err error) {
	h.conn, err = net.Dial("tcp", addr)

	return err
}

func deferredLiteral(name string) {
	f, err := os.Open(name)
	if err != nil {
		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			panic(err)
		}
	}()
}

func invoked(name string) {
	f, _ := os.Open(name)
	func() {
		defer f.Close()
		_, _ = f.Stat()
	}()
}

func rows(db *sql.DB) error {
	rows, err := db.Query("SELECT 1") // want "SQL resource .sql.Rows is never closed"
	if err != nil {
		return err
	}

	if !rows.Next() {
		return sql.ErrNoRows
	}

	return rows.Err()
}

func listener(addr string) error {
	l, err := net.Listen("tcp", addr) // want "socket resource net.Listener is never closed"
	if err != nil {
		return err
	}

	conn, err := l.Accept() // want "socket resource net.Conn is never closed"
	if err != nil {
		return err
	}

	_, err = conn.Write([]byte("hello"))

	return err
}

func handoff(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}

	return process(f)
}

func process(*os.File) error { return nil }

type tempDir struct{ path string }

func (t *tempDir) Close() error { return os.RemoveAll(t.path) }

func newTempDir() (*tempDir, error) {
	dir, err := os.MkdirTemp("", "a")
	if err != nil {
		return nil, err
	}

	return &tempDir{dir}, nil
}

func generic() string {
	d, err := newTempDir() // want "closable resource .tempDir is never closed"
	if err != nil {
		return ""
	}

	return d.path
}

func server() string {
	srv := httptest.NewServer(nil) // want "session resource .httptest.Server is never closed"

	return srv.URL
}

func pipe() (*os.File, error) {
	r, w, err := os.Pipe() // want "channel resource .os.File is never closed"
	if err != nil {
		return nil, err
	}

	_ = w

	return r, nil
}

func root(dir string) (os.FileInfo, error) {
	root, err := os.OpenRoot(dir) // want "directory resource .os.Root is never closed"
	if err != nil {
		return nil, err
	}

	return root.Stat(".")
}
