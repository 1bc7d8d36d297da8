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

	"fillmore-labs.com/bugpattern/visitor"
)

// typeOfNode returns the type of an expression, or of the object a declaration defines.
func typeOfNode(n ast.Node, s visitor.State) types.Type {
	if e, ok := n.(ast.Expr); ok {
		return s.TypeOf(e)
	}

	if obj := s.ObjectOf(n); obj != nil {
		return obj.Type()
	}

	return nil
}

// TypeMatches matches nodes whose type satisfies pred.
func TypeMatches(pred func(t types.Type, s visitor.State) bool) Matcher {
	return Func(func(n ast.Node, s visitor.State) bool {
		t := typeOfNode(n, s)

		return t != nil && pred(t, s)
	})
}

// IsSubtypeOf matches nodes whose type is assignable to the type named name.
// See [visitor.State.ResolveType] for the accepted names.
func IsSubtypeOf(name string) Matcher {
	return TypeMatches(func(t types.Type, s visitor.State) bool {
		return s.IsSubtype(t, s.ResolveType(name))
	})
}

// IsSubtypeOfType matches nodes whose type is assignable to target.
func IsSubtypeOfType(target types.Type) Matcher {
	return TypeMatches(func(t types.Type, s visitor.State) bool {
		return s.IsSubtype(t, target)
	})
}

// IsSameType matches nodes whose type is identical to the type named name.
func IsSameType(name string) Matcher {
	return TypeMatches(func(t types.Type, s visitor.State) bool {
		return s.IsSameType(t, s.ResolveType(name))
	})
}

// IsFloat matches expressions of floating-point type, including untyped float constants.
func IsFloat() Matcher {
	return TypeMatches(func(t types.Type, _ visitor.State) bool {
		b, ok := t.Underlying().(*types.Basic)

		return ok && b.Info()&types.IsFloat != 0
	})
}

// IsError matches expressions whose type implements error. The untyped nil does not.
func IsError() Matcher {
	errorType := types.Universe.Lookup("error").Type()

	return TypeMatches(func(t types.Type, _ visitor.State) bool {
		if b, ok := t.(*types.Basic); ok && b.Kind() == types.UntypedNil {
			return false
		}

		return types.Implements(t, errorType.Underlying().(*types.Interface))
	})
}

// IsPointer matches expressions of pointer type.
func IsPointer() Matcher {
	return TypeMatches(func(t types.Type, _ visitor.State) bool {
		_, ok := t.Underlying().(*types.Pointer)

		return ok
	})
}

// IsTypeParam matches expressions whose type is a type parameter.
func IsTypeParam() Matcher {
	return TypeMatches(func(t types.Type, _ visitor.State) bool {
		_, ok := types.Unalias(t).(*types.TypeParam)

		return ok
	})
}

// HasMethod matches expressions whose type, or a pointer to it, has a method named name.
func HasMethod(name string) Matcher {
	return TypeMatches(func(t types.Type, s visitor.State) bool {
		return s.HasMethod(t, name)
	})
}
