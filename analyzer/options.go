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
	"log/slog"

	"fillmore-labs.com/leakguard/internal/config"
	"fillmore-labs.com/leakguard/internal/resource"
	"fillmore-labs.com/leakguard/internal/run"
)

// Family is a category of resource, used to scope ignore lists.
type Family = resource.Family

// Resource families.
const (
	Generic   = resource.Generic
	IO        = resource.IO
	Socket    = resource.Socket
	Channel   = resource.Channel
	SQL       = resource.SQL
	Directory = resource.Directory
	Session   = resource.Session
)

// Option configures specific behavior of the leakguard [analysis.Analyzer].
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that also implements the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

// apply implements [Option].
func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr implements [Option].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics for generated files.
func WithGenerated(generated bool) Option {
	return behaviorOption{"generated", config.IncludeGenerated, generated}
}

// WithIgnoreMethodCalls is an [Option] to exclude resources obtained through method calls.
func WithIgnoreMethodCalls(ignore bool) Option {
	return behaviorOption{"ignore-method-calls", config.IgnoreFromMethodCall, ignore}
}

// WithInsideTry is an [Option] to accept release in deferred function literals.
func WithInsideTry(insideTry bool) Option {
	return behaviorOption{"inside-try", config.InsideTryAllowed, insideTry}
}

// WithAnyMethodMayClose is an [Option] to treat resources passed to any call as transferred.
func WithAnyMethodMayClose(anyMethod bool) Option {
	return behaviorOption{"any-method-may-close", config.AnyMethodMayClose, anyMethod}
}

type behaviorOption struct {
	name  string
	flag  config.Behavior
	value bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Settings.Behavior.Set(o.flag, o.value)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.value)
}

// WithIgnored is an [Option] to add type or callee names never treated as creation sites of a family.
// Names have the form "path.Name" or "(path.Type).Method".
func WithIgnored(family Family, names ...string) Option {
	return ignoredOption{family: family, names: names}
}

type ignoredOption struct {
	family Family
	names  []string
}

func (o ignoredOption) apply(r *run.Options) {
	if err := r.Settings.Ignore(o.family, o.names...); err != nil {
		r.Fail(err)
	}
}

func (o ignoredOption) LogAttr() slog.Attr {
	return slog.Any("ignore-"+o.family.String(), o.names)
}

// WithClosingDelegates is an [Option] to add calls presumed to take ownership of a resource argument.
func WithClosingDelegates(names ...string) Option { return delegatesOption{names: names} }

type delegatesOption struct{ names []string }

func (o delegatesOption) apply(r *run.Options) {
	if err := r.Settings.AddClosingDelegates(o.names...); err != nil {
		r.Fail(err)
	}
}

func (o delegatesOption) LogAttr() slog.Attr {
	return slog.Any("closing-delegates", o.names)
}

// WithExclude is an [Option] to skip files matching gitignore-style patterns.
func WithExclude(patterns ...string) Option { return excludeOption{patterns: patterns} }

type excludeOption struct{ patterns []string }

func (o excludeOption) apply(r *run.Options) {
	r.Settings.Exclude = append(r.Settings.Exclude, o.patterns...)
}

func (o excludeOption) LogAttr() slog.Attr {
	return slog.Any("exclude", o.patterns)
}

// WithConfigFile is an [Option] to read settings from a YAML file.
func WithConfigFile(path string) Option { return configFileOption{path: path} }

type configFileOption struct{ path string }

func (o configFileOption) apply(r *run.Options) {
	if err := loadConfig(r.Settings, o.path); err != nil {
		r.Fail(err)
	}
}

func (o configFileOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}

// WithLogger is an [Option] to receive debug output of the analysis.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}

func loadConfig(s *config.Settings, path string) error {
	f, err := config.Load(path)
	if err != nil {
		return err
	}

	return f.Apply(s)
}
