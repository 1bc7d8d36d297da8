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

	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/internal/config"
	"fillmore-labs.com/bugpattern/internal/run"
)

// Option configures specific behavior of a [New] bugpattern analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
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

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.NoFixes, !o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fixes", o.fixes)
}

// WithSelfCompare is an [Option] to configure whether self-comparisons are reported.
func WithSelfCompare(enabled bool) Option {
	return checkOption{name: "selfcompare", check: config.SelfCompare, enabled: enabled}
}

// WithSelfAssign is an [Option] to configure whether self-assignments are reported.
func WithSelfAssign(enabled bool) Option {
	return checkOption{name: "selfassign", check: config.SelfAssign, enabled: enabled}
}

// WithErrorfWrap is an [Option] to configure whether non-wrapping fmt.Errorf calls are reported.
func WithErrorfWrap(enabled bool) Option {
	return checkOption{name: "errorfwrap", check: config.ErrorfWrap, enabled: enabled}
}

// WithReplaceAll is an [Option] to configure whether Replace calls with n = -1 are reported.
func WithReplaceAll(enabled bool) Option {
	return checkOption{name: "replaceall", check: config.ReplaceAll, enabled: enabled}
}

// WithIoutil is an [Option] to configure whether io/ioutil imports are reported.
func WithIoutil(enabled bool) Option {
	return checkOption{name: "ioutil", check: config.IoutilMigration, enabled: enabled}
}

// WithDeprecated is an [Option] to configure whether calls of deprecated functions are reported.
func WithDeprecated(enabled bool) Option {
	return checkOption{name: "deprecated", check: config.Deprecated, enabled: enabled}
}

type checkOption struct {
	name    string
	check   config.Check
	enabled bool
}

func (o checkOption) apply(r *run.Options) {
	r.Checks.Set(o.check, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithCheckers is an [Option] adding checkers to the bundled ones.
func WithCheckers(checkers ...bugpattern.Checker) Option {
	return checkersOption{checkers: checkers}
}

type checkersOption struct{ checkers []bugpattern.Checker }

func (o checkersOption) apply(r *run.Options) {
	r.Extra = append(r.Extra, o.checkers...)
}

func (o checkersOption) LogAttr() slog.Attr {
	names := make([]string, 0, len(o.checkers))
	for _, c := range o.checkers {
		names = append(names, c.Info().Name)
	}

	return slog.Any("checkers", names)
}
