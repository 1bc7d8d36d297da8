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
	"go/types"
	"strings"

	"golang.org/x/tools/go/types/typeutil"
)

// ResolveType returns the type named by name, or nil if the analyzed package
// can't refer to it.
//
// Names are predeclared ("int", "error"), qualified by package path
// ("io.Reader", "net/http.Handler") or built from those with "*", "[]" and
// "..." prefixes. Only packages imported by the analyzed package, directly
// or indirectly, can be resolved.
func (s State) ResolveType(name string) types.Type {
	c := s.unit.cache
	if t, ok := c.types[name]; ok {
		return t
	}

	t := s.resolve(name)
	c.types[name] = t

	return t
}

func (s State) resolve(name string) types.Type {
	switch {
	case strings.HasPrefix(name, "*"):
		if elem := s.ResolveType(name[1:]); elem != nil {
			return types.NewPointer(elem)
		}

		return nil

	case strings.HasPrefix(name, "[]"):
		if elem := s.ResolveType(name[2:]); elem != nil {
			return types.NewSlice(elem)
		}

		return nil

	case strings.HasPrefix(name, "..."):
		return s.ResolveType("[]" + name[3:])
	}

	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		if tn, ok := types.Universe.Lookup(name).(*types.TypeName); ok {
			return tn.Type()
		}

		return nil
	}

	pkg := s.findPackage(name[:i])
	if pkg == nil {
		return nil
	}

	if tn, ok := pkg.Scope().Lookup(name[i+1:]).(*types.TypeName); ok {
		return tn.Type()
	}

	return nil
}

// findPackage returns the analyzed package or one of its transitive imports by path.
func (s State) findPackage(path string) *types.Package {
	c := s.unit.cache
	if c.packages == nil {
		c.packages = make(map[string]*types.Package)

		var visit func(*types.Package)
		visit = func(p *types.Package) {
			if _, ok := c.packages[p.Path()]; ok {
				return
			}

			c.packages[p.Path()] = p
			for _, i := range p.Imports() {
				visit(i)
			}
		}

		visit(c.pass.Pkg)
	}

	return c.packages[path]
}

// IsSubtype reports whether a value of type t is assignable to target.
// Unknown or invalid types are never subtypes.
func (s State) IsSubtype(t, target types.Type) bool {
	if !validType(t) || !validType(target) {
		return false
	}

	return types.AssignableTo(t, target)
}

// IsSameType reports whether t and u are identical.
func (s State) IsSameType(t, u types.Type) bool {
	if !validType(t) || !validType(u) {
		return false
	}

	return types.Identical(t, u)
}

// HasMethod reports whether t, or a pointer to t, has a method named name.
func (s State) HasMethod(t types.Type, name string) bool {
	if !validType(t) {
		return false
	}

	for _, sel := range typeutil.IntuitiveMethodSet(t, &s.unit.cache.methods) {
		if sel.Obj().Name() == name {
			return true
		}
	}

	return false
}

func validType(t types.Type) bool {
	return t != nil && t != types.Typ[types.Invalid]
}
