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

// Package analyzer implements the bugpattern static analysis pass.
//
// # Overview
//
// The analyzer runs a set of bug pattern checkers over each package and
// reports their findings as diagnostics, together with suggested fixes.
// The bundled checkers are:
//
//   - selfcompare: comparison of a variable with itself
//   - selfassign: assignment of a variable to itself
//   - errorfwrap: fmt.Errorf formatting an error without wrapping it
//   - replaceall: strings.Replace and bytes.Replace with n = -1
//   - ioutil: imports of the deprecated io/ioutil package
//   - deprecated: calls of deprecated functions and methods
//
// Each checker can be disabled with a flag of the same name, like -ioutil=false.
// Additional checkers are added with [WithCheckers].
//
// # Example
//
// Before:
//
//	if err != nil {
//	    return fmt.Errorf("can't read config: %v", err)
//	}
//
// After applying the suggested fix:
//
//	if err != nil {
//	    return fmt.Errorf("can't read config: %w", err)
//	}
//
// # Suppression
//
// Findings are suppressed by a //nolint:bugpattern or //nolint:<checker>
// comment on the reported line, in the documentation of the enclosing
// function or in the file comment.
package analyzer
