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

package run

import (
	"log/slog"
	"sync"

	"fillmore-labs.com/leakguard/internal/config"
	"fillmore-labs.com/leakguard/internal/engine"
)

// Options represent configuration runOptions for the leakguard analyzer.
type Options struct {
	// Settings hold the analysis configuration.
	Settings *config.Settings

	// Logger receives debug output of the verdicts, nil discards it.
	Logger *slog.Logger

	err        error
	once       sync.Once
	engine     *engine.Engine
	exclusions config.Exclusions
}

// Fail records a configuration error, returned by every subsequent [Options.Run].
func (r *Options) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{Settings: config.Default()}
}

// prepare builds the engine from the settings on first use. Settings must not change afterwards.
func (r *Options) prepare() {
	r.once.Do(func() {
		r.engine = engine.New(r.Settings, r.Logger)
		r.exclusions = config.CompileExclusions(r.Settings.Exclude)
	})
}
