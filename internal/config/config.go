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

package config

// Check selects one of the bundled bug pattern checkers.
type Check uint16

const (
	// SelfCompare reports comparisons of a variable with itself.
	SelfCompare Check = 1 << iota

	// SelfAssign reports assignments of a variable to itself.
	SelfAssign

	// ErrorfWrap reports fmt.Errorf calls formatting errors with %v instead of wrapping them.
	ErrorfWrap

	// ReplaceAll reports strings.Replace and bytes.Replace calls with n = -1.
	ReplaceAll

	// IoutilMigration reports imports of the deprecated io/ioutil package.
	IoutilMigration

	// Deprecated reports calls of deprecated functions and methods.
	Deprecated
)

// Checks is the set of enabled checkers.
type Checks = BitMask[Check]

// DefaultChecks returns the checkers enabled without explicit configuration.
func DefaultChecks() Checks {
	return NewBitMask(SelfCompare, SelfAssign, ErrorfWrap, ReplaceAll, IoutilMigration, Deprecated)
}

// Config holds behavior flags of the driver.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// NoFixes suppresses suggested fixes, reporting diagnostics only.
	NoFixes
)

// Behavior is the set of enabled behavior flags.
type Behavior = BitMask[Config]
