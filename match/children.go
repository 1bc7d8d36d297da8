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
	"go/token"
	"slices"

	"fillmore-labs.com/bugpattern/visitor"
)

//go:generate go tool stringer -type MatchType

// MatchType selects which children a multi-child matcher must match.
type MatchType uint8

const (
	// AtLeastOne requires at least one child to match.
	AtLeastOne MatchType = iota

	// All requires every child to match. It is vacuously true for no children.
	All

	// Last requires the last child to match.
	Last
)

func (t MatchType) matches(children []ast.Expr, m Matcher, s visitor.State) bool {
	switch t {
	case AtLeastOne:
		return slices.ContainsFunc(children, func(c ast.Expr) bool { return at(m, c, s) })

	case All:
		for _, c := range children {
			if !at(m, c, s) {
				return false
			}
		}

		return true

	case Last:
		return len(children) > 0 && at(m, children[len(children)-1], s)

	default:
		return false
	}
}

// Argument matches calls whose i-th argument matches m.
func Argument(i int, m Matcher) Matcher {
	return For(func(call *ast.CallExpr, s visitor.State) bool {
		return 0 <= i && i < len(call.Args) && at(m, call.Args[i], s)
	})
}

// HasArguments matches calls whose arguments match m according to t.
func HasArguments(t MatchType, m Matcher) Matcher {
	return For(func(call *ast.CallExpr, s visitor.State) bool {
		return t.matches(call.Args, m, s)
	})
}

// ArgumentCount matches calls with exactly n syntactic arguments.
func ArgumentCount(n int) Matcher {
	return For(func(call *ast.CallExpr, _ visitor.State) bool {
		return len(call.Args) == n
	})
}

// Receiver matches method calls and selector expressions whose receiver
// expression matches m. Package-qualified identifiers have no receiver.
func Receiver(m Matcher) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		if call, ok := n.(*ast.CallExpr); ok {
			n = call.Fun
		}

		e, ok := n.(ast.Expr)
		if !ok {
			return false
		}

		sel, ok := ast.Unparen(e).(*ast.SelectorExpr)
		if !ok {
			return false
		}

		if _, ok := s.Info().Selections[sel]; !ok {
			return false
		}

		return at(m, sel.X, s)
	})
}

// BinaryOp matches binary expressions with one of the operators ops.
func BinaryOp(ops ...token.Token) Matcher {
	return For(func(b *ast.BinaryExpr, _ visitor.State) bool {
		return slices.Contains(ops, b.Op)
	})
}

// Binary matches binary expressions with operator op whose operands match
// left and right, in either order when op is commutative.
func Binary(op token.Token, left, right Matcher) Matcher {
	return For(func(b *ast.BinaryExpr, s visitor.State) bool {
		if b.Op != op {
			return false
		}

		if at(left, b.X, s) && at(right, b.Y, s) {
			return true
		}

		return commutative(op) && at(left, b.Y, s) && at(right, b.X, s)
	})
}

func commutative(op token.Token) bool {
	switch op {
	case token.EQL, token.NEQ, token.ADD, token.MUL, token.AND, token.OR, token.XOR, token.LAND, token.LOR:
		return true

	default:
		return false
	}
}

// LeftOperand matches binary expressions whose left operand matches m.
func LeftOperand(m Matcher) Matcher {
	return For(func(b *ast.BinaryExpr, s visitor.State) bool {
		return at(m, b.X, s)
	})
}

// RightOperand matches binary expressions whose right operand matches m.
func RightOperand(m Matcher) Matcher {
	return For(func(b *ast.BinaryExpr, s visitor.State) bool {
		return at(m, b.Y, s)
	})
}

// Operand matches binary expressions with at least one operand matching m.
func Operand(m Matcher) Matcher {
	return AnyOf(LeftOperand(m), RightOperand(m))
}

// SameOperands matches binary expressions whose operands denote the same variable.
func SameOperands() Matcher {
	return For(func(b *ast.BinaryExpr, s visitor.State) bool {
		return s.SameVariable(b.X, b.Y)
	})
}

// Assignment matches plain assignments with a single left and right hand
// side matching lhs and rhs.
func Assignment(lhs, rhs Matcher) Matcher {
	return For(func(a *ast.AssignStmt, s visitor.State) bool {
		return a.Tok == token.ASSIGN && len(a.Lhs) == 1 && len(a.Rhs) == 1 &&
			at(lhs, a.Lhs[0], s) && at(rhs, a.Rhs[0], s)
	})
}
