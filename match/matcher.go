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

// Package match provides composable predicates over syntax nodes.
//
// A [Matcher] inspects a node in the context of a [visitor.State]. Matchers
// never fail: nodes of the wrong kind, missing type information or
// unresolvable names simply don't match. Combinators evaluate their operands
// left to right and short-circuit.
package match

import (
	"go/ast"

	"fillmore-labs.com/bugpattern/visitor"
)

// Matcher is a predicate over syntax nodes.
type Matcher interface {
	Matches(n ast.Node, s visitor.State) bool
}

// Func adapts a function to a [Matcher].
type Func func(n ast.Node, s visitor.State) bool

// Matches calls f.
func (f Func) Matches(n ast.Node, s visitor.State) bool {
	return f(n, s)
}

// For adapts a predicate over a concrete node type. Nodes of other types don't match.
func For[N ast.Node](f func(n N, s visitor.State) bool) Func {
	return func(n ast.Node, s visitor.State) bool {
		node, ok := n.(N)

		return ok && f(node, s)
	}
}

// Anything matches every node.
func Anything() Matcher {
	return Func(func(ast.Node, visitor.State) bool { return true })
}

// Nothing matches no node.
func Nothing() Matcher {
	return Func(func(ast.Node, visitor.State) bool { return false })
}

// AllOf matches when every matcher does. An empty list matches everything.
func AllOf(matchers ...Matcher) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		for _, m := range matchers {
			if !m.Matches(n, s) {
				return false
			}
		}

		return true
	})
}

// AnyOf matches when at least one matcher does. An empty list matches nothing.
func AnyOf(matchers ...Matcher) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		for _, m := range matchers {
			if m.Matches(n, s) {
				return true
			}
		}

		return false
	})
}

// Not inverts m.
func Not(m Matcher) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		return !m.Matches(n, s)
	})
}

// at applies m to a child of the node at s, positioning the state at the child when possible.
func at(m Matcher, child ast.Node, s visitor.State) bool {
	if child == nil {
		return false
	}

	cs, _ := s.Locate(child)

	return m.Matches(child, cs)
}
