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

// Package checks contains the bug pattern checkers bundled with the analyzer.
//
// # selfcompare
//
// Reports comparisons of a variable with itself, like x == x. For floating-point
// operands the comparison is a NaN test, and the suggested fix uses [math.IsNaN].
//
// # selfassign
//
// Reports assignments of a variable to itself, like x = x or s.f = s.f.
// The suggested fix removes the statement.
//
// # errorfwrap
//
// Reports [fmt.Errorf] calls formatting an error with %v or %s. The suggested
// fix uses %w, so the error stays available to [errors.Is] and [errors.As].
//
// # replaceall
//
// Reports [strings.Replace] and [bytes.Replace] calls with n = -1.
// The suggested fix uses [strings.ReplaceAll] or [bytes.ReplaceAll].
//
// # ioutil
//
// Reports imports of the deprecated io/ioutil package. The suggested fix
// replaces all uses in the file with their io and os equivalents.
//
// # deprecated
//
// Reports uses of functions and methods marked "Deprecated:", including
// methods implementing or overriding a deprecated method. Uses inside
// deprecated functions are not reported.
package checks
