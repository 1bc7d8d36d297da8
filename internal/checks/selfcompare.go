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
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/fix"
	"fillmore-labs.com/bugpattern/match"
	"fillmore-labs.com/bugpattern/visitor"
)

// SelfCompare reports comparisons of a variable with itself.
var SelfCompare bugpattern.Checker = &bugpattern.Pattern{
	Meta: bugpattern.Info{
		Name:    "selfcompare",
		Summary: "Comparison of a variable with itself",
		URL:     baseURL + "hdr-selfcompare",
	},
	Kinds: []ast.Node{(*ast.BinaryExpr)(nil)},
	Matcher: match.AllOf(
		match.BinaryOp(token.EQL, token.NEQ),
		match.SameOperands(),
		match.LeftOperand(match.AnyOf(match.IsFloat(), match.TypeMatches(reflexive))),
	),
	Message: selfCompareMessage,
	Fix:     selfCompareFix,
}

// reflexive reports whether values of t always compare equal to themselves.
// Floating-point values, and aggregates that may contain them, do not.
func reflexive(t types.Type, _ visitor.State) bool {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		return u.Info()&(types.IsFloat|types.IsComplex) == 0

	case *types.Pointer, *types.Chan:
		return true

	default:
		return false
	}
}

func selfCompareMessage(n ast.Node, s visitor.State) string {
	bin := n.(*ast.BinaryExpr)
	x := types.ExprString(bin.X)

	result := bin.Op == token.EQL
	if match.IsFloat().Matches(bin.X, s) {
		if result {
			return fmt.Sprintf("Comparison of %s with itself is false only for NaN, use !math.IsNaN(%s)", x, x)
		}

		return fmt.Sprintf("Comparison of %s with itself is true only for NaN, use math.IsNaN(%s)", x, x)
	}

	return fmt.Sprintf("Comparison of %s with itself is always %t", x, result)
}

func selfCompareFix(n ast.Node, s visitor.State) (*fix.Fix, error) {
	bin := n.(*ast.BinaryExpr)
	if !match.IsFloat().Matches(bin.X, s) {
		return nil, nil
	}

	name, missing, ok := s.Qualifier("math", bin.Pos())
	if !ok {
		return nil, nil
	}

	operand := s.SourceFor(bin.X)
	if operand == "" {
		operand = types.ExprString(bin.X)
	}

	if !types.Identical(s.TypeOf(bin.X), types.Typ[types.Float64]) {
		operand = "float64(" + operand + ")"
	}

	text := name + ".IsNaN(" + operand + ")"
	if bin.Op == token.EQL {
		text = "!" + text
	}

	b := s.FixBuilder().SetDescription("Use " + name + ".IsNaN").ReplaceNode(bin, text)
	if missing {
		b.AddImport("math")
	}

	return b.Build()
}
