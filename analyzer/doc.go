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

// Package analyzer implements the leakguard static analysis pass.
//
// # Overview
//
// LeakGuard reports resources (files, sockets, database handles, descriptors duplicated from
// connections, directory handles, client sessions and any value with a Close method) that are
// obtained in a function and never closed.
//
// # Example
//
// Before:
//
//	func size(name string) (int64, error) {
//	    f, err := os.Open(name) // I/O resource *os.File is never closed
//	    if err != nil {
//	        return 0, err
//	    }
//	    fi, err := f.Stat()
//	    if err != nil {
//	        return 0, err
//	    }
//	    return fi.Size(), nil
//	}
//
// After applying leakguard's suggested fix:
//
//	func size(name string) (int64, error) {
//	    f, err := os.Open(name)
//	    if err != nil {
//	        return 0, err
//	    }
//	    defer f.Close()
//	    fi, err := f.Stat()
//	    if err != nil {
//	        return 0, err
//	    }
//	    return fi.Size(), nil
//	}
//
// # Safe Resources
//
// A resource is considered safe when it is:
//
//   - released by a deferred call following its creation
//   - released by the next significant statement, possibly guarded by a nil check
//   - released in a deferred function literal (with -inside-try)
//   - returned, stored in a field, package variable, container element or channel
//   - passed to a closing delegate, to another resource constructor, or to any call (with -any-method-may-close)
//
// # Suppression
//
// A //nolint:leakguard comment on the creation line or on the function documentation suppresses
// diagnostics.
package analyzer
