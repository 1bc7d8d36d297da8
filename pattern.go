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

package bugpattern

import (
	"go/ast"

	"fillmore-labs.com/bugpattern/fix"
	"fillmore-labs.com/bugpattern/match"
	"fillmore-labs.com/bugpattern/visitor"
)

// Pattern is a [Checker] built from a matcher, with an optional message and fix.
type Pattern struct {
	// Meta describes the checker.
	Meta Info
	// Kinds are the node types to inspect.
	Kinds []ast.Node
	// Matcher selects the reported nodes.
	Matcher match.Matcher
	// Message returns the message for a matched node. The summary is used when nil.
	Message func(n ast.Node, s visitor.State) string
	// Fix returns a suggested fix for a matched node. A nil fix is fine.
	Fix func(n ast.Node, s visitor.State) (*fix.Fix, error)
}

var _ Checker = (*Pattern)(nil)

// Info implements [Checker].
func (p *Pattern) Info() Info {
	return p.Meta
}

// NodeTypes implements [Checker].
func (p *Pattern) NodeTypes() []ast.Node {
	return p.Kinds
}

// Check implements [Checker].
func (p *Pattern) Check(n ast.Node, s visitor.State) (*Description, error) {
	if !p.Matcher.Matches(n, s) {
		return nil, nil
	}

	b := Describe(p.Meta, n)
	if p.Message != nil {
		b.SetMessage(p.Message(n, s))
	}

	if p.Fix == nil {
		return b.Build(), nil
	}

	f, err := p.Fix(n, s)
	if err != nil {
		return b.Build(), err
	}

	return b.AddFix(f).Build(), nil
}
