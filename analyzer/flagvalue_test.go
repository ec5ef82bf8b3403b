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

package analyzer_test

import (
	"flag"
	"io"
	"strings"
	"testing"

	. "fillmore-labs.com/leakguard/analyzer"
)

func TestFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		flag string
		want any
	}{
		{
			name: "DefaultInsideTry",
			flag: "inside-try",
			want: true,
		},
		{
			name: "DisableInsideTry",
			args: []string{"-inside-try=false"},
			flag: "inside-try",
			want: false,
		},
		{
			name: "EnableGenerated",
			args: []string{"-generated"},
			flag: "generated",
			want: true,
		},
		{
			name: "DisableAnyMethod",
			args: []string{"-any-method-may-close=off"},
			flag: "any-method-may-close",
			want: false,
		},
		{
			name: "IgnoreMethodCalls",
			args: []string{"-ignore-method-calls=1"},
			flag: "ignore-method-calls",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()
			if err := a.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			f := a.Flags.Lookup(tt.flag)
			if f == nil {
				t.Fatalf("Flag %q not registered", tt.flag)
			}

			g, ok := f.Value.(flag.Getter)
			if !ok {
				t.Fatalf("Flag %q is not a flag.Getter", tt.flag)
			}

			if got := g.Get(); got != tt.want {
				t.Errorf("Flag %s = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestListFlags(t *testing.T) {
	t.Parallel()

	a := New()
	a.Flags.Init("test", flag.ContinueOnError)

	args := []string{
		"-closing-delegate", "example.com/pkg.Consume, (example.com/pkg.Pool).Put",
		"-closing-delegate", "example.com/pkg.Consume",
		"-exclude", "*_test.go",
	}
	if err := a.Flags.Parse(args); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := a.Flags.Lookup("exclude").Value.String(); got != "*_test.go" {
		t.Errorf("exclude = %q, want %q", got, "*_test.go")
	}

	if got := a.Flags.Lookup("closing-delegate").Value.String(); !strings.Contains(got, "example.com/pkg.Consume,(example.com/pkg.Pool).Put") {
		t.Errorf("closing-delegate = %q, want user entries appended", got)
	}
}

func TestFlagErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"InvalidBool", []string{"-inside-try=maybe"}},
		{"InvalidDelegate", []string{"-closing-delegate", "consume"}},
		{"UnknownFamily", []string{"-ignore", "jdbc:database/sql.DB"}},
		{"MissingFamily", []string{"-ignore", "bytes.Buffer"}},
		{"MissingConfig", []string{"-config", "testdata/missing.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()
			a.Flags.Init("test", flag.ContinueOnError)
			a.Flags.SetOutput(io.Discard)

			if err := a.Flags.Parse(tt.args); err == nil {
				t.Errorf("Expected error parsing %v", tt.args)
			}
		})
	}
}
