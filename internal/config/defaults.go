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

import (
	"maps"
	"slices"

	"fillmore-labs.com/leakguard/internal/resource"
)

// defaultIgnored lists per family the types and callees whose release is meaningless.
var defaultIgnored = map[resource.Family][]string{
	resource.Generic: {
		"io.NopCloser",
		"(embed.FS).Open",
		"net/http.MaxBytesReader",
		"(os/exec.Cmd).StdoutPipe",
		"(os/exec.Cmd).StderrPipe",
	},
	resource.IO: {
		"io.NopCloser",
		"bytes.Buffer",
		"bytes.Reader",
		"strings.Reader",
	},
	resource.Socket: {
		"net.Pipe",
	},
}

// defaultClosingDelegates lists calls that take ownership of a resource argument.
var defaultClosingDelegates = []string{
	"net/http.Serve",
	"net/http.ServeTLS",
	"(net/http.Server).Serve",
	"(net/http.Server).ServeTLS",
	"net/http/fcgi.Serve",
	"net/rpc.Accept",
	"(net/rpc.Server).Accept",
	"net/rpc.ServeConn",
	"(net/rpc.Server).ServeConn",
	"net/rpc/jsonrpc.ServeConn",
	"runtime.SetFinalizer",
}

// DefaultIgnored returns a copy of the default ignore lists.
func DefaultIgnored() map[resource.Family][]string {
	ignored := maps.Clone(defaultIgnored)
	for family, names := range ignored {
		ignored[family] = slices.Clone(names)
	}

	return ignored
}

// DefaultClosingDelegates returns a copy of the default closing delegate list.
func DefaultClosingDelegates() []string {
	return slices.Clone(defaultClosingDelegates)
}
