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

package delegates

import (
	"net"
	"net/http"
)

func serve(c net.Conn) { defer c.Close() }

func run(l net.Listener) {
	for {
		conn, err := l.Accept()
		if err != nil {
			return
		}

		go serve(conn)
	}
}

func logConn(net.Conn) {}

func runOther(l net.Listener) {
	conn, err := l.Accept() // want "socket resource net.Conn is never closed"
	if err != nil {
		return
	}

	go logConn(conn)
}

func httpServe() error {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		return err
	}

	return http.Serve(l, nil)
}
