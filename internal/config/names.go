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
	"errors"
	"fmt"
	"strings"

	"fillmore-labs.com/leakguard/internal/resource"
)

// ErrInvalidName is returned for malformed type or function names.
var ErrInvalidName = errors.New("invalid name")

// ValidName checks that name has the form "path.Name" or "(path.Type).Name".
func ValidName(name string) error {
	rest := name
	if strings.HasPrefix(name, "(") {
		recv, method, ok := strings.Cut(name[1:], ").")
		if !ok || method == "" || strings.ContainsAny(method, "(). /") {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}

		rest = recv
	}

	dot := strings.LastIndexByte(rest, '.')
	if dot <= 0 || dot == len(rest)-1 || strings.ContainsAny(rest, "() ") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}

// ParseIgnore parses an ignore entry of the form "family:name".
func ParseIgnore(entry string) (resource.Family, string, error) {
	f, name, ok := strings.Cut(entry, ":")
	if !ok {
		return 0, "", fmt.Errorf("%w: %q, want family:name", ErrInvalidName, entry)
	}

	var family resource.Family
	if err := family.UnmarshalText([]byte(f)); err != nil {
		return 0, "", err
	}

	name = strings.TrimSpace(name)
	if err := ValidName(name); err != nil {
		return 0, "", err
	}

	return family, name, nil
}
