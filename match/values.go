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

package match

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"regexp"

	"fillmore-labs.com/bugpattern/visitor"
)

// constantOf returns the constant value of an expression, or nil.
func constantOf(n ast.Node, s visitor.State) constant.Value {
	e, ok := n.(ast.Expr)
	if !ok {
		return nil
	}

	return s.Info().Types[e].Value
}

// IsConstant matches constant expressions.
func IsConstant() Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		return constantOf(n, s) != nil
	})
}

// ConstantValue matches constant expressions equal to v.
// Values of incomparable kinds, like a string and a number, never match.
func ConstantValue(v constant.Value) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		c := constantOf(n, s)

		return c != nil && comparableKinds(c.Kind(), v.Kind()) && constant.Compare(c, token.EQL, v)
	})
}

func comparableKinds(a, b constant.Kind) bool {
	numeric := func(k constant.Kind) bool {
		return k == constant.Int || k == constant.Float || k == constant.Complex
	}

	return a != constant.Unknown && (a == b || numeric(a) && numeric(b))
}

// IntLiteral matches constant expressions with the integer value v, like -1.
func IntLiteral(v int64) Matcher {
	return ConstantValue(constant.MakeInt64(v))
}

// StringLiteral matches constant string expressions with the value v.
func StringLiteral(v string) Matcher {
	return ConstantValue(constant.MakeString(v))
}

// StringLiteralMatching matches constant string expressions matching re.
func StringLiteralMatching(re *regexp.Regexp) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		c := constantOf(n, s)

		return c != nil && c.Kind() == constant.String && re.MatchString(constant.StringVal(c))
	})
}

// BoolConstant matches constant boolean expressions with the value b.
func BoolConstant(b bool) Matcher {
	return ConstantValue(constant.MakeBool(b))
}

// IsNil matches the predeclared nil.
func IsNil() Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		e, ok := n.(ast.Expr)

		return ok && s.Info().Types[e].IsNil()
	})
}

// SameVariable matches expressions denoting the same variable as e.
func SameVariable(e ast.Expr) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		x, ok := n.(ast.Expr)

		return ok && s.SameVariable(x, e)
	})
}

// ReceiverSameAsArgument matches method calls whose receiver denotes the
// same variable as argument i.
func ReceiverSameAsArgument(i int) Matcher {
	return For(func(call *ast.CallExpr, s visitor.State) bool {
		sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
		if !ok || 0 > i || i >= len(call.Args) {
			return false
		}

		if selection, ok := s.Info().Selections[sel]; !ok || selection.Kind() != types.MethodVal {
			return false
		}

		return s.SameVariable(sel.X, call.Args[i])
	})
}

// SameArgument matches calls whose arguments i and j denote the same variable.
func SameArgument(i, j int) Matcher {
	return For(func(call *ast.CallExpr, s visitor.State) bool {
		n := len(call.Args)

		return 0 <= i && i < n && 0 <= j && j < n && s.SameVariable(call.Args[i], call.Args[j])
	})
}
