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

// Package closure decides whether a bound resource is released by the function that created it.
//
// A resource is released by a deferred release call following the creation (a scope guard),
// by a deferred function literal of the enclosing function or of an immediately invoked function
// literal, or by a release statement found scanning forward from the creation.
// The scan is lexical and does not build a control flow graph: release calls in idiomatic code are
// the next significant statement, a deferred cleanup, or nested in a nil check.
package closure
