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

// Package bugpattern defines checkers for bug patterns and the findings they
// describe.
//
// A [Checker] inspects nodes of selected kinds and returns a [Description]
// for each match, optionally with suggested fixes. Checkers are typically
// written with the matchers of package [fillmore-labs.com/bugpattern/match]
// and the fix builder of package [fillmore-labs.com/bugpattern/fix].
package bugpattern

import (
	"go/ast"

	"fillmore-labs.com/bugpattern/visitor"
)

// Info describes a checker.
type Info struct {
	// Name identifies the checker in diagnostics, flags and nolint comments.
	Name string
	// Summary is a one-line description.
	Summary string
	// URL links to documentation of the bug pattern.
	URL string
}

// Checker matches a bug pattern.
type Checker interface {
	// Info describes the checker.
	Info() Info

	// NodeTypes returns the kinds of nodes to inspect, as typed nil pointers like (*ast.CallExpr)(nil).
	NodeTypes() []ast.Node

	// Check inspects n and returns a description when it matches, nil otherwise.
	// A non-nil error signals a defect of the checker, like conflicting fix edits,
	// and is reported separately. The description is still reported, if present.
	Check(n ast.Node, s visitor.State) (*Description, error)
}
