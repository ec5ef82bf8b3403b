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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/leakguard/internal/resource"
)

// File is the YAML representation of the configuration. Unset fields keep their current value.
type File struct {
	IncludeGenerated     *bool                        `yaml:"generated"`
	IgnoreFromMethodCall *bool                        `yaml:"ignore-method-calls"`
	InsideTryAllowed     *bool                        `yaml:"inside-try"`
	AnyMethodMayClose    *bool                        `yaml:"any-method-may-close"`
	Ignore               map[resource.Family][]string `yaml:"ignore"`
	ClosingDelegates     []string                     `yaml:"closing-delegates"`
	Exclude              []string                     `yaml:"exclude"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML configuration data. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &f, nil
}

// Apply merges the file into the settings. List entries are appended to the existing lists.
func (f *File) Apply(s *Settings) error {
	setBool(&s.Behavior, IncludeGenerated, f.IncludeGenerated)
	setBool(&s.Behavior, IgnoreFromMethodCall, f.IgnoreFromMethodCall)
	setBool(&s.Behavior, InsideTryAllowed, f.InsideTryAllowed)
	setBool(&s.Behavior, AnyMethodMayClose, f.AnyMethodMayClose)

	for _, family := range resource.Families {
		names, ok := f.Ignore[family]
		if !ok {
			continue
		}

		if err := s.Ignore(family, names...); err != nil {
			return fmt.Errorf("ignore %s: %w", family, err)
		}
	}

	if err := s.AddClosingDelegates(f.ClosingDelegates...); err != nil {
		return fmt.Errorf("closing-delegates: %w", err)
	}

	s.Exclude = appendUnique(s.Exclude, f.Exclude...)

	return nil
}

func setBool(b *BitMask[Behavior], flag Behavior, value *bool) {
	if value != nil {
		b.Set(flag, *value)
	}
}
