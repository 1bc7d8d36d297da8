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
	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/internal/checks"
	"fillmore-labs.com/bugpattern/internal/config"
)

// Options represent the configuration of the bugpattern analyzer.
type Options struct {
	// Checks are the enabled checkers.
	Checks config.Checks

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Extra are additional checkers, run regardless of Checks.
	Extra []bugpattern.Checker
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Checks: config.DefaultChecks(),
	}
}

// checkers returns the enabled checkers.
func (r *Options) checkers() []bugpattern.Checker {
	return append(checks.Select(r.Checks), r.Extra...)
}
