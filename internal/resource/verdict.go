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

package resource

//go:generate go tool stringer -type Verdict,Reason,EscapeEvent -linecomment -output verdict_string.go

// Verdict is the outcome of analyzing a creation site.
type Verdict uint8

const (
	// Safe means the resource is released or its ownership is transferred.
	Safe Verdict = iota // safe

	// Leaked means the resource may be lost without being released.
	Leaked // leaked
)

// Reason records which rule proved a site [Safe].
type Reason uint8

const (
	// ScopeGuarded means the resource is released by a deferred call.
	ScopeGuarded Reason = iota // scope-guarded

	// ClosedLocally means a lexical successor of the creation releases the resource.
	ClosedLocally // closed-locally

	// ClosedInFinally means a deferred cleanup function releases the resource.
	ClosedInFinally // closed-in-finally

	// Escaped means ownership of the resource is transferred.
	Escaped // escaped
)

// EscapeEvent describes how ownership of a resource is transferred.
type EscapeEvent uint8

const (
	// Returned means the resource is returned to the caller.
	Returned EscapeEvent = iota // returned

	// StoredToField means the resource is stored in a field, package variable or container.
	StoredToField // stored-to-field

	// StoredToStdStream means the resource replaces os.Stdin, os.Stdout or os.Stderr.
	StoredToStdStream // stored-to-std-stream

	// PassedToClosingDelegate means the resource is handed to a configured closing delegate.
	PassedToClosingDelegate // passed-to-closing-delegate

	// PassedToAnyCall means the resource is handed to a call while any call may close it.
	PassedToAnyCall // passed-to-any-call

	// ChainedIntoCreation means the resource is wrapped by another resource.
	ChainedIntoCreation // chained-into-creation
)
