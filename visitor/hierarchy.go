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
	"slices"
)

// SuperMethods returns the methods fn overrides: methods of the same name it
// shadows on embedded fields, and methods of named interfaces it implements.
// Interfaces are searched in the analyzed package and its direct imports.
func (s State) SuperMethods(fn *types.Func) []*types.Func {
	if fn == nil {
		return nil
	}

	return s.unit.cache.superMethods(fn.Origin())
}

func (c *Cache) superMethods(fn *types.Func) []*types.Func {
	if supers, ok := c.supers[fn]; ok {
		return supers
	}

	c.supers[fn] = nil // break cycles

	named := receiverNamed(fn)
	if named == nil {
		return nil
	}

	var supers []*types.Func

	add := func(m *types.Func) {
		m = m.Origin()
		if m == fn || slices.Contains(supers, m) {
			return
		}

		supers = append(supers, m)
		for _, s := range c.superMethods(m) {
			if !slices.Contains(supers, s) {
				supers = append(supers, s)
			}
		}
	}

	if st, ok := named.Underlying().(*types.Struct); ok {
		for field := range st.Fields() {
			if !field.Embedded() {
				continue
			}

			obj, _, _ := types.LookupFieldOrMethod(field.Type(), true, fn.Pkg(), fn.Name())
			if m, ok := obj.(*types.Func); ok {
				add(m)
			}
		}
	}

	if _, ok := named.Underlying().(*types.Interface); !ok && named.TypeParams().Len() == 0 {
		ptr := types.NewPointer(named)

		for _, iface := range c.namedInterfaces() {
			if iface.Obj() == named.Obj() {
				continue
			}

			it := iface.Underlying().(*types.Interface)

			obj, _, _ := types.LookupFieldOrMethod(it, false, fn.Pkg(), fn.Name())
			m, ok := obj.(*types.Func)
			if !ok {
				continue
			}

			if types.Implements(ptr, it) {
				add(m)
			}
		}
	}

	c.supers[fn] = supers

	return supers
}

// receiverNamed returns the named receiver type of a method, or nil.
func receiverNamed(fn *types.Func) *types.Named {
	recv := fn.Signature().Recv()
	if recv == nil {
		return nil
	}

	t := recv.Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	named, _ := types.Unalias(t).(*types.Named)

	return named
}

// namedInterfaces returns the non-empty, non-generic named interfaces
// declared in the analyzed package and its direct imports.
func (c *Cache) namedInterfaces() []*types.Named {
	if c.interfaces != nil {
		return c.interfaces
	}

	c.interfaces = []*types.Named{}

	pkgs := append([]*types.Package{c.pass.Pkg}, c.pass.Pkg.Imports()...)
	for _, pkg := range pkgs {
		scope := pkg.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || tn.IsAlias() {
				continue
			}

			named, ok := tn.Type().(*types.Named)
			if !ok || named.TypeParams().Len() > 0 {
				continue
			}

			if it, ok := named.Underlying().(*types.Interface); ok && it.NumMethods() > 0 {
				c.interfaces = append(c.interfaces, named)
			}
		}
	}

	return c.interfaces
}
