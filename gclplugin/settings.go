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

package gclplugin

import "fillmore-labs.com/bugpattern/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// SelfCompare enables reporting comparisons of a variable with itself.
	SelfCompare *bool `json:"selfcompare,omitzero"`
	// SelfAssign enables reporting assignments of a variable to itself.
	SelfAssign *bool `json:"selfassign,omitzero"`
	// ErrorfWrap enables reporting fmt.Errorf calls not wrapping errors.
	ErrorfWrap *bool `json:"errorfwrap,omitzero"`
	// ReplaceAll enables reporting Replace calls with n = -1.
	ReplaceAll *bool `json:"replaceall,omitzero"`
	// Ioutil enables reporting io/ioutil imports.
	Ioutil *bool `json:"ioutil,omitzero"`
	// Deprecated enables reporting calls of deprecated functions.
	Deprecated *bool `json:"deprecated,omitzero"`
	// Fixes enables suggested fixes.
	Fixes *bool `json:"fixes,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the bugpattern analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.SelfCompare, analyzer.WithSelfCompare)
	opts = appendOption(opts, s.SelfAssign, analyzer.WithSelfAssign)
	opts = appendOption(opts, s.ErrorfWrap, analyzer.WithErrorfWrap)
	opts = appendOption(opts, s.ReplaceAll, analyzer.WithReplaceAll)
	opts = appendOption(opts, s.Ioutil, analyzer.WithIoutil)
	opts = appendOption(opts, s.Deprecated, analyzer.WithDeprecated)
	opts = appendOption(opts, s.Fixes, analyzer.WithFixes)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
