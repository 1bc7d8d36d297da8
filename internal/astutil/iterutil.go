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

package astutil

import (
	"go/ast"
	"go/token"
	"iter"
)

// AssignedPairs yields the corresponding left and right hand sides of a
// plain or operator assignment. Nothing is yielded for definitions or when
// the sides differ in length, like for multi-value calls.
func AssignedPairs(stmt *ast.AssignStmt) iter.Seq2[ast.Expr, ast.Expr] {
	if stmt.Tok == token.DEFINE || len(stmt.Lhs) != len(stmt.Rhs) {
		return func(func(ast.Expr, ast.Expr) bool) {}
	}

	return func(yield func(ast.Expr, ast.Expr) bool) {
		for i, lhs := range stmt.Lhs {
			if id, ok := lhs.(*ast.Ident); ok && id.Name == "_" {
				continue // blank identifier
			}

			if !yield(lhs, stmt.Rhs[i]) {
				return
			}
		}
	}
}
