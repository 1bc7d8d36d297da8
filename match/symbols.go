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
	"go/types"
	"slices"

	"fillmore-labs.com/bugpattern/visitor"
)

// Symbol matches nodes whose object satisfies pred.
// For calls the object is the callee, for declarations the declared object.
func Symbol(pred func(obj types.Object, s visitor.State) bool) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		obj := s.ObjectOf(n)

		return obj != nil && pred(obj, s)
	})
}

// IsField matches references to struct fields.
func IsField() Matcher {
	return Symbol(func(obj types.Object, _ visitor.State) bool {
		v, ok := obj.(*types.Var)

		return ok && v.IsField()
	})
}

// IsVariable matches references to variables that are not struct fields.
func IsVariable() Matcher {
	return Symbol(func(obj types.Object, _ visitor.State) bool {
		v, ok := obj.(*types.Var)

		return ok && !v.IsField()
	})
}

// IsPackageLevel matches references to objects declared at package level.
func IsPackageLevel() Matcher {
	return Symbol(func(obj types.Object, _ visitor.State) bool {
		return obj.Pkg() != nil && obj.Parent() == obj.Pkg().Scope()
	})
}

// Visibility is the accessibility of a symbol from other packages.
type Visibility uint8

const (
	// Unexported symbols are only accessible from their own package.
	Unexported Visibility = iota

	// Exported symbols are accessible from other packages.
	Exported
)

// HasVisibility matches references to objects with visibility v.
func HasVisibility(v Visibility) Matcher {
	return Symbol(func(obj types.Object, _ visitor.State) bool {
		return obj.Exported() == (v == Exported)
	})
}

// IsExported matches references to exported objects.
func IsExported() Matcher {
	return HasVisibility(Exported)
}

// HasDirective matches references to objects whose declaration carries the
// directive name, for example "go:noinline" or "deprecated".
func HasDirective(name string) Matcher {
	return Symbol(func(obj types.Object, s visitor.State) bool {
		return slices.Contains(s.Directives(obj), name)
	})
}

// HasDirectiveOnAnySuperMethod matches references to objects carrying the
// directive name, or methods where any overridden method carries it.
func HasDirectiveOnAnySuperMethod(name string) Matcher {
	return Symbol(func(obj types.Object, s visitor.State) bool {
		if slices.Contains(s.Directives(obj), name) {
			return true
		}

		fn, ok := obj.(*types.Func)
		if !ok {
			return false
		}

		return slices.ContainsFunc(s.SuperMethods(fn), func(m *types.Func) bool {
			return slices.Contains(s.Directives(m), name)
		})
	})
}
