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

package analyzer

import (
	"slices"
	"strconv"
	"strings"

	"fillmore-labs.com/leakguard/internal/config"
)

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

func newBehaviorValue(flags *config.BitMask[config.Behavior], value config.Behavior) boolValue[config.Behavior, *config.BitMask[config.Behavior]] {
	return boolValue[config.Behavior, *config.BitMask[config.Behavior]]{flags: flags, value: value}
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// listValue appends comma separated entries to a list.
type listValue struct {
	list     *[]string
	validate func(string) error
}

// Set implements [flag.Value].
func (l listValue) Set(s string) error {
	for entry := range splitList(s) {
		if l.validate != nil {
			if err := l.validate(entry); err != nil {
				return err
			}
		}

		if !slices.Contains(*l.list, entry) {
			*l.list = append(*l.list, entry)
		}
	}

	return nil
}

// String implements [flag.Value].
func (l listValue) String() string {
	if l.list == nil {
		return ""
	}

	return strings.Join(*l.list, ",")
}

// ignoreValue adds family:name entries to the ignore lists.
type ignoreValue struct {
	settings *config.Settings
}

// Set implements [flag.Value].
func (v ignoreValue) Set(s string) error {
	for entry := range splitList(s) {
		family, name, err := config.ParseIgnore(entry)
		if err != nil {
			return err
		}

		if err := v.settings.Ignore(family, name); err != nil {
			return err
		}
	}

	return nil
}

// String implements [flag.Value].
func (v ignoreValue) String() string {
	return ""
}

// configValue reads a YAML configuration file into the settings.
type configValue struct {
	settings *config.Settings
	path     *string
}

// Set implements [flag.Value].
func (v configValue) Set(path string) error {
	if err := loadConfig(v.settings, path); err != nil {
		return err
	}

	*v.path = path

	return nil
}

// String implements [flag.Value].
func (v configValue) String() string {
	if v.path == nil {
		return ""
	}

	return *v.path
}

func splitList(s string) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for entry := range strings.SplitSeq(s, ",") {
			if entry = strings.TrimSpace(entry); entry == "" {
				continue
			}

			if !yield(entry) {
				return
			}
		}
	}
}
