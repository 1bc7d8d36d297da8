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
	"reflect"
	"slices"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bugpattern/visitor"
)

// KindIs matches nodes whose dynamic type is one of kinds, given as typed nil
// pointers like (*ast.CallExpr)(nil).
func KindIs(kinds ...ast.Node) Matcher {
	ts := make([]reflect.Type, len(kinds))
	for i, k := range kinds {
		ts[i] = reflect.TypeOf(k)
	}

	return Func(func(n ast.Node, _ visitor.State) bool {
		return n != nil && slices.Contains(ts, reflect.TypeOf(n))
	})
}

// IgnoreParens applies m to n with enclosing parentheses removed.
func IgnoreParens(m Matcher) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		e, ok := n.(ast.Expr)
		if !ok {
			return m.Matches(n, s)
		}

		inner := ast.Unparen(e)
		if inner == e {
			return m.Matches(n, s)
		}

		return at(m, inner, s)
	})
}

// ParentNode matches when m matches the parent of n.
func ParentNode(m Matcher) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		cs, ok := s.Locate(n)
		if !ok {
			return false
		}

		p, ok := cs.Parent()

		return ok && m.Matches(p.Node(), p)
	})
}

// ParentEdgeIs matches nodes stored in a field of their parent of the given kind,
// for example edge.CallExpr_Args for call arguments.
func ParentEdgeIs(kinds ...edge.Kind) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		cs, ok := s.Locate(n)
		if !ok {
			return false
		}

		k, _ := cs.Cursor().ParentEdge()

		return slices.Contains(kinds, k)
	})
}

// Enclosing matches when m matches a proper ancestor of n of one of kinds,
// or of any kind when none are given.
func Enclosing(m Matcher, kinds ...ast.Node) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		cs, ok := s.Locate(n)
		if !ok {
			return false
		}

		for a := range ancestors(cs.Cursor(), kinds...) {
			if m.Matches(a.Node(), cs.WithPath(a)) {
				return true
			}
		}

		return false
	})
}

// EnclosingFunc matches when m matches the innermost function declaration or
// literal containing n.
func EnclosingFunc(m Matcher) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		cs, ok := s.Locate(n)
		if !ok {
			return false
		}

		for a := range ancestors(cs.Cursor(), (*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
			return m.Matches(a.Node(), cs.WithPath(a))
		}

		return false
	})
}

// InLoop matches nodes inside the body of a for or range statement of the
// same function.
func InLoop() Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		cs, ok := s.Locate(n)
		if !ok {
			return false
		}

		for a := range ancestors(cs.Cursor()) {
			switch a.Node().(type) {
			case *ast.FuncDecl, *ast.FuncLit:
				return false

			case *ast.BlockStmt:
				if k, _ := a.ParentEdge(); k == edge.ForStmt_Body || k == edge.RangeStmt_Body {
					return true
				}
			}
		}

		return false
	})
}

// Contains matches when m matches n or any node in its subtree.
func Contains(m Matcher) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		cs, ok := s.Locate(n)
		if !ok {
			found := false

			ast.Inspect(n, func(c ast.Node) bool {
				found = found || c != nil && m.Matches(c, s)

				return !found
			})

			return found
		}

		for c := range cs.Cursor().Preorder() {
			if m.Matches(c.Node(), cs.WithPath(c)) {
				return true
			}
		}

		return false
	})
}

// NextStatement matches when m matches the statement following n in its block.
func NextStatement(m Matcher) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		cs, ok := statementCursor(n, s)
		if !ok {
			return false
		}

		next, ok := cs.Cursor().NextSibling()

		return ok && m.Matches(next.Node(), cs.WithPath(next))
	})
}

// PreviousStatement matches when m matches the statement preceding n in its block.
func PreviousStatement(m Matcher) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		cs, ok := statementCursor(n, s)
		if !ok {
			return false
		}

		prev, ok := cs.Cursor().PrevSibling()

		return ok && m.Matches(prev.Node(), cs.WithPath(prev))
	})
}

// IsLastStatementInBlock matches statements without a successor in their block.
func IsLastStatementInBlock() Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		cs, ok := statementCursor(n, s)
		if !ok {
			return false
		}

		_, ok = cs.Cursor().NextSibling()

		return !ok
	})
}

// statementCursor locates a statement that is an element of a statement list.
func statementCursor(n ast.Node, s visitor.State) (visitor.State, bool) {
	if _, ok := n.(ast.Stmt); !ok {
		return s, false
	}

	cs, ok := s.Locate(n)
	if !ok {
		return s, false
	}

	switch k, _ := cs.Cursor().ParentEdge(); k {
	case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:
		return cs, true

	default:
		return s, false
	}
}

// ancestors iterates over the proper ancestors of c of the given kinds, innermost first.
func ancestors(c inspector.Cursor, kinds ...ast.Node) func(yield func(inspector.Cursor) bool) {
	return func(yield func(inspector.Cursor) bool) {
		for a := range c.Enclosing(kinds...) {
			if a == c {
				continue
			}

			if !yield(a) {
				return
			}
		}
	}
}
