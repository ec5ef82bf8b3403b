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

// Package engine orchestrates resource safety checks per creation site.
package engine

import (
	"context"
	"go/ast"
	"go/types"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/leakguard/internal/binding"
	"fillmore-labs.com/leakguard/internal/closure"
	"fillmore-labs.com/leakguard/internal/config"
	"fillmore-labs.com/leakguard/internal/escape"
	"fillmore-labs.com/leakguard/internal/family"
	"fillmore-labs.com/leakguard/internal/resource"
)

// Finding is a creation site whose resource leaks.
type Finding struct {
	Site    resource.Site
	Binding resource.Binding
	Bound   bool

	// Handoff is the first call the resource was passed to without transferring ownership, if any.
	Handoff *ast.CallExpr
}

// Engine checks creation sites against scope guards, local closure and escapes, in that order.
//
// An Engine holds read-only configuration and no state between checks.
type Engine struct {
	registry *family.Registry
	closure  closure.Checker
	escape   *escape.Analyzer
	logger   *slog.Logger
}

// New creates an [Engine] from the settings. A nil logger discards log output.
func New(s *config.Settings, logger *slog.Logger) *Engine {
	opts := []family.Option{
		family.WithoutMethodCalls(s.Behavior.Enabled(config.IgnoreFromMethodCall)),
	}
	for f, names := range s.Ignored {
		opts = append(opts, family.WithIgnored(f, names...))
	}

	registry := family.New(opts...)

	return NewWithRegistry(registry, s, logger)
}

// NewWithRegistry creates an [Engine] using the given registry for classification.
func NewWithRegistry(registry *family.Registry, s *config.Settings, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		registry: registry,
		closure:  closure.Checker{InsideTry: s.Behavior.Enabled(config.InsideTryAllowed)},
		escape: escape.New(registry, s.ClosingDelegates,
			s.Behavior.Enabled(config.AnyMethodMayClose)),
		logger: logger,
	}
}

// Check returns the leaking creation sites of a function declaration in source order, including
// sites in nested function literals. Each site is checked against its innermost function.
func (e *Engine) Check(ctx context.Context, info *types.Info, fn inspector.Cursor) []Finding {
	defer trace.StartRegion(ctx, "Check").End()

	var findings []Finding

	for c := range fn.Preorder((*ast.CallExpr)(nil)) {
		for _, site := range e.registry.Classify(info, c) {
			verdict, finding := e.Verdict(ctx, info, site)
			if verdict == resource.Leaked {
				findings = append(findings, finding)
			}
		}
	}

	return findings
}

// Verdict decides whether the resource of a single creation site leaks.
func (e *Engine) Verdict(ctx context.Context, info *types.Info, site resource.Site) (resource.Verdict, Finding) {
	b, bound := binding.Resolve(info, site)

	finding := Finding{Site: site, Binding: b, Bound: bound}

	var rel escape.Releaser

	if bound {
		m := closure.NewMatcher(info, site, b)
		rel = m

		if closure.Guarded(m, site) {
			e.log(ctx, site, resource.Safe, slog.String("reason", resource.ScopeGuarded.String()))

			return resource.Safe, finding
		}

		if reason, ok := e.closure.Closed(m, site); ok {
			e.log(ctx, site, resource.Safe, slog.String("reason", reason.String()))

			return resource.Safe, finding
		}
	}

	o := e.escape.Escapes(info, site, b, bound, rel)
	if o.Escaped {
		e.log(ctx, site, resource.Safe,
			slog.String("reason", resource.Escaped.String()), slog.String("event", o.Event.String()))

		return resource.Safe, finding
	}

	finding.Handoff = o.Handoff

	e.log(ctx, site, resource.Leaked, slog.Bool("bound", bound))

	return resource.Leaked, finding
}

func (e *Engine) log(ctx context.Context, site resource.Site, verdict resource.Verdict, attrs ...slog.Attr) {
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	attrs = append([]slog.Attr{
		slog.String("family", site.Family.String()),
		slog.String("type", site.TypeName(nil)),
		slog.String("callee", site.Callee.FullName()),
		slog.String("verdict", verdict.String()),
	}, attrs...)

	e.logger.LogAttrs(ctx, slog.LevelDebug, "creation site", attrs...)
}
