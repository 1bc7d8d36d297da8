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

package visitor

import (
	"go/ast"
	"go/types"
	"slices"
)

// SameVariable reports whether a and b denote the same variable or field.
//
// Both must be identifiers or selector chains rooted at a variable, possibly
// parenthesized or dereferenced. Fields compare by their index path, so a
// promoted field s.x and its explicit form s.inner.x are the same. A pointer p
// and its dereference *p differ, while (*p).x and p.x are the same. Anything
// involving calls, indexing or unresolved symbols is never the same variable.
func SameVariable(info *types.Info, a, b ast.Expr) bool {
	ra, pa, ok := variablePath(info, a)
	if !ok {
		return false
	}

	rb, pb, ok := variablePath(info, b)
	if !ok {
		return false
	}

	return ra == rb && slices.Equal(pa, pb)
}

// SameVariable reports whether a and b denote the same variable or field.
func (s State) SameVariable(a, b ast.Expr) bool {
	return SameVariable(s.Info(), a, b)
}

// deref marks an explicit pointer indirection in a variable path.
const deref = -1

// variablePath returns the root variable and the field index path of e.
func variablePath(info *types.Info, e ast.Expr) (*types.Var, []int, bool) {
	switch e := ast.Unparen(e).(type) {
	case *ast.Ident:
		if e.Name == "_" {
			return nil, nil, false
		}

		v, ok := info.ObjectOf(e).(*types.Var)

		return v, nil, ok

	case *ast.StarExpr:
		root, path, ok := variablePath(info, e.X)
		if !ok {
			return nil, nil, false
		}

		return root, append(slices.Clip(path), deref), true

	case *ast.SelectorExpr:
		sel, ok := info.Selections[e]
		if !ok {
			// qualified identifier
			v, ok := info.Uses[e.Sel].(*types.Var)

			return v, nil, ok
		}

		if sel.Kind() != types.FieldVal {
			return nil, nil, false
		}

		// field selection dereferences implicitly, so (*p).f is p.f
		x := ast.Unparen(e.X)
		if star, ok := x.(*ast.StarExpr); ok {
			x = star.X
		}

		root, path, ok := variablePath(info, x)
		if !ok {
			return nil, nil, false
		}

		return root, append(slices.Clip(path), sel.Index()...), true
	}

	return nil, nil, false
}
