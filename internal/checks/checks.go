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

package checks

import (
	"slices"

	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/internal/config"
)

const baseURL = "https://pkg.go.dev/fillmore-labs.com/bugpattern/internal/checks#"

// Entry binds a bundled checker to its configuration flag.
type Entry struct {
	Flag    config.Check
	Checker bugpattern.Checker
}

// All returns the bundled checkers in reporting order.
func All() []Entry {
	return []Entry{
		{config.SelfCompare, SelfCompare},
		{config.SelfAssign, SelfAssign},
		{config.ErrorfWrap, ErrorfWrap},
		{config.ReplaceAll, ReplaceAll},
		{config.IoutilMigration, IoutilMigration},
		{config.Deprecated, Deprecated},
	}
}

// Select returns the checkers enabled in checks.
func Select(checks config.Checks) []bugpattern.Checker {
	if checks.Empty() {
		return nil
	}

	all := All()

	var selected []bugpattern.Checker
	for flag := range checks.All() {
		if i := slices.IndexFunc(all, func(e Entry) bool { return e.Flag == flag }); i >= 0 {
			selected = append(selected, all[i].Checker)
		}
	}

	return selected
}

// Lookup returns the flag of the checker named name.
func Lookup(name string) (config.Check, bool) {
	for _, e := range All() {
		if e.Checker.Info().Name == name {
			return e.Flag, true
		}
	}

	return 0, false
}
