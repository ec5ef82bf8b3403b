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

// Package resource holds the data model shared by the analysis stages: resource families,
// creation sites, bindings and verdicts.
package resource

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type Family -linecomment

// Family is a category of resource with its own creation-site predicate and exceptions.
type Family uint8

const (
	// Generic is the catch-all family for values of any closable type.
	Generic Family = iota // generic

	// IO covers files, pipes and compression streams.
	IO // io

	// Socket covers network connections and listeners.
	Socket // socket

	// Channel covers file descriptors duplicated from sockets and OS pipes.
	Channel // channel

	// SQL covers database handles, connections, statements and result sets.
	SQL // sql

	// Directory covers directory handles.
	Directory // directory

	// Session covers client sessions of request/response protocols.
	Session // session
)

// Families lists all resource families in registry order: specific families first, [Generic] last.
var Families = [...]Family{Channel, SQL, Socket, Directory, Session, IO, Generic}

// ErrUnknownFamily is returned when a family name can't be parsed.
var ErrUnknownFamily = errors.New("unknown resource family")

// Label returns the name used in diagnostics.
func (f Family) Label() string {
	switch f {
	case Generic:
		return "closable"
	case IO:
		return "I/O"
	case SQL:
		return "SQL"
	default:
		return f.String()
	}
}

// Verbs returns the lower-case release verbs of this family.
func (f Family) Verbs() []string {
	if f == Session {
		return []string{"close", "quit"}
	}

	return []string{"close"}
}

// MarshalText implements [encoding.TextMarshaler].
func (f Family) MarshalText() ([]byte, error) {
	if f > Session {
		return nil, fmt.Errorf("%w %d", ErrUnknownFamily, f)
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Family) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))

	for _, family := range Families {
		if family.String() == name {
			*f = family
			return nil
		}
	}

	return fmt.Errorf("%w %q", ErrUnknownFamily, string(text))
}
