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
	"io"
	"net"
	"net/smtp"
	"os"
)

func discarded(name string) {
	os.Open(name) // want "I/O resource .os.File is never closed"
}

func blank(name string) {
	_, _ = os.Open(name) // want "I/O resource .os.File is never closed"
}

func assignLater(name string) {
	var f *os.File
	f, _ = os.Open(name) // want "I/O resource .os.File is never closed"
	_ = f
}

var global *os.File

func storeGlobal(name string) {
	global, _ = os.Open(name)
}

func stdout(name string) {
	os.Stdout, _ = os.Create(name)
}

func send(ch chan<- *os.File, name string) {
	f, err := os.Open(name)
	if err != nil {
		return
	}

	ch <- f
}

func ifInit(name string) {
	if f, err := os.Open(name); err == nil {
		f.Close()
	}
}

func alias(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	var r io.ReadCloser = f

	return r, nil
}

func store(files map[string]*os.File, name string) {
	files[name], _ = os.Open(name)
}

type logFile struct{ f *os.File }

func (l *logFile) Close() error { return l.f.Close() }

func openLog(name string) (*logFile, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}

	return &logFile{f: f}, nil
}

func serve(l net.Listener) {
	for {
		conn, err := l.Accept()
		if err != nil {
			return
		}

		go handle(conn)
	}
}

func handle(c net.Conn) { defer c.Close() }

func nested(names []string) {
	for _, name := range names {
		func() {
			f, err := os.Open(name)
			if err != nil {
				return
			}
			defer f.Close()

			_, _ = f.Stat()
		}()
	}
}

func mail(addr string) error {
	c, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer c.Quit()

	return c.Noop()
}

func suppressed(name string) {
	os.Open(name) //nolint:leakguard
}

//nolint:leakguard
func suppressedFunc(name string) {
	os.Open(name)
}
