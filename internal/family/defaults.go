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

package family

import "fillmore-labs.com/leakguard/internal/resource"

// Defaults returns the detectors of all families in registry order.
func Defaults() []Detector {
	return []Detector{
		NewKnown(resource.Channel,
			[]string{"os.Pipe"},
			[]string{
				"(net.TCPConn).File", "(net.UDPConn).File", "(net.UnixConn).File", "(net.IPConn).File",
				"(net.TCPListener).File", "(net.UnixListener).File",
			},
			nil),
		NewKnown(resource.SQL,
			[]string{"database/sql.Open", "database/sql.OpenDB"},
			[]string{
				"(database/sql.DB).Conn", "(database/sql.DB).Prepare", "(database/sql.DB).PrepareContext",
				"(database/sql.DB).Query", "(database/sql.DB).QueryContext",
				"(database/sql.Conn).PrepareContext", "(database/sql.Conn).QueryContext",
				"(database/sql.Tx).Prepare", "(database/sql.Tx).PrepareContext",
				"(database/sql.Tx).Query", "(database/sql.Tx).QueryContext",
				"(database/sql.Tx).Stmt", "(database/sql.Tx).StmtContext",
				"(database/sql.Stmt).Query", "(database/sql.Stmt).QueryContext",
			},
			[]string{"database/sql.DB", "database/sql.Conn", "database/sql.Stmt", "database/sql.Rows"}),
		NewKnown(resource.Socket,
			[]string{
				"net.Dial", "net.DialTimeout", "net.DialTCP", "net.DialUDP", "net.DialUnix", "net.DialIP",
				"net.Listen", "net.ListenPacket", "net.ListenTCP", "net.ListenUDP", "net.ListenUnix",
				"net.ListenUnixgram", "net.ListenIP", "net.ListenMulticastUDP", "net.FileConn", "net.FileListener",
				"crypto/tls.Dial", "crypto/tls.DialWithDialer", "crypto/tls.Listen",
				"crypto/tls.Client", "crypto/tls.Server",
			},
			[]string{
				"(net.Dialer).Dial", "(net.Dialer).DialContext",
				"(net.ListenConfig).Listen", "(net.ListenConfig).ListenPacket",
				"(net.Listener).Accept", "(net.TCPListener).AcceptTCP", "(net.UnixListener).AcceptUnix",
				"(crypto/tls.Dialer).Dial", "(crypto/tls.Dialer).DialContext",
			},
			[]string{
				"net.Conn", "net.Listener", "net.PacketConn", "net.TCPConn", "net.UDPConn", "net.UnixConn",
				"net.IPConn", "net.TCPListener", "net.UnixListener", "crypto/tls.Conn",
			}),
		NewKnown(resource.Directory,
			[]string{"os.OpenRoot"},
			[]string{"(os.Root).OpenRoot"},
			[]string{"os.Root"}),
		NewKnown(resource.Session,
			[]string{
				"net/smtp.Dial", "net/smtp.NewClient",
				"net/rpc.Dial", "net/rpc.DialHTTP", "net/rpc.DialHTTPPath", "net/rpc/jsonrpc.Dial",
				"net/http/httptest.NewServer", "net/http/httptest.NewTLSServer",
				"net/http/httptest.NewUnstartedServer",
			},
			nil,
			[]string{"net/smtp.Client", "net/rpc.Client", "net/http/httptest.Server"}),
		NewKnown(resource.IO,
			[]string{
				"os.Open", "os.Create", "os.OpenFile", "os.CreateTemp", "os.NewFile", "os.OpenInRoot",
				"compress/gzip.NewReader", "compress/gzip.NewWriter", "compress/gzip.NewWriterLevel",
				"compress/zlib.NewReader", "compress/zlib.NewWriter", "compress/zlib.NewWriterLevel",
				"compress/flate.NewReader", "compress/flate.NewWriter",
				"compress/lzw.NewReader", "compress/lzw.NewWriter",
				"archive/zip.OpenReader", "io.Pipe",
			},
			[]string{
				"(os.Root).Open", "(os.Root).Create", "(os.Root).OpenFile",
				"(archive/zip.File).Open", "(io/fs.FS).Open",
			},
			[]string{
				"os.File", "compress/gzip.Reader", "compress/gzip.Writer", "archive/zip.ReadCloser",
				"io.PipeReader", "io.PipeWriter",
			}),
		Generic{},
	}
}
