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
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/bugpattern/visitor"
)

type calleeKind uint8

const (
	anyCallee calleeKind = iota
	functionCallee
	methodCallee
)

// MethodMatcher matches calls of functions and methods by package, receiver,
// name and signature. It is immutable, every refinement returns a copy.
type MethodMatcher struct {
	kind      calleeKind
	pkg       string
	recv      string
	exact     bool
	names     []string
	pattern   *regexp.Regexp
	params    []string
	hasParams bool
	arity     int
}

// AnyFunction matches calls of any function or method.
func AnyFunction() MethodMatcher {
	return MethodMatcher{kind: anyCallee, arity: -1}
}

// Function matches calls of functions without receiver.
func Function() MethodMatcher {
	return MethodMatcher{kind: functionCallee, arity: -1}
}

// Method matches calls of methods, including interface methods.
func Method() MethodMatcher {
	return MethodMatcher{kind: methodCallee, arity: -1}
}

// InPackage restricts to callees declared in the package with import path path.
func (m MethodMatcher) InPackage(path string) MethodMatcher {
	m.pkg = path

	return m
}

// OnDescendantOf restricts to methods whose receiver is assignable to the type named name.
func (m MethodMatcher) OnDescendantOf(name string) MethodMatcher {
	m.recv, m.exact = name, false

	return m
}

// OnExactType restricts to methods declared on the type named name.
func (m MethodMatcher) OnExactType(name string) MethodMatcher {
	m.recv, m.exact = name, true

	return m
}

// Named restricts to callees named name.
func (m MethodMatcher) Named(name string) MethodMatcher {
	m.names = []string{name}

	return m
}

// NamedAnyOf restricts to callees with one of names.
func (m MethodMatcher) NamedAnyOf(names ...string) MethodMatcher {
	m.names = slices.Clone(names)

	return m
}

// WithNameMatching restricts to callees whose name matches re.
func (m MethodMatcher) WithNameMatching(re *regexp.Regexp) MethodMatcher {
	m.pattern = re

	return m
}

// WithParameters restricts to callees whose parameter types are identical to
// the named types. A variadic parameter is written as "...T" or "[]T".
func (m MethodMatcher) WithParameters(params ...string) MethodMatcher {
	m.params, m.hasParams = slices.Clone(params), true

	return m
}

// WithArity restricts to callees with n declared parameters.
func (m MethodMatcher) WithArity(n int) MethodMatcher {
	m.arity = n

	return m
}

// Matches implements [Matcher] for call expressions.
func (m MethodMatcher) Matches(n ast.Node, s visitor.State) bool {
	call, ok := n.(*ast.CallExpr)
	if !ok {
		return false
	}

	fn := s.Callee(call)
	if fn == nil {
		return false
	}

	fn = fn.Origin()
	sig := fn.Signature()
	recv := sig.Recv()

	switch {
	case m.kind == functionCallee && recv != nil,
		m.kind == methodCallee && recv == nil:
		return false

	case m.pkg != "" && (fn.Pkg() == nil || fn.Pkg().Path() != m.pkg):
		return false

	case m.names != nil && !slices.Contains(m.names, fn.Name()):
		return false

	case m.pattern != nil && !m.pattern.MatchString(fn.Name()):
		return false

	case m.arity >= 0 && sig.Params().Len() != m.arity:
		return false

	case m.hasParams && !m.matchParams(sig, s):
		return false

	case m.recv != "":
		return recv != nil && m.matchReceiver(call, recv, s)

	default:
		return true
	}
}

func (m MethodMatcher) matchParams(sig *types.Signature, s visitor.State) bool {
	params := sig.Params()
	if params.Len() != len(m.params) {
		return false
	}

	for i, name := range m.params {
		if strings.HasPrefix(name, "...") {
			if !sig.Variadic() || i != params.Len()-1 {
				return false
			}

			name = "[]" + name[3:]
		}

		if !s.IsSameType(params.At(i).Type(), s.ResolveType(name)) {
			return false
		}
	}

	return true
}

func (m MethodMatcher) matchReceiver(call *ast.CallExpr, recv *types.Var, s visitor.State) bool {
	target := s.ResolveType(m.recv)
	if target == nil {
		return false
	}

	declared := deref(recv.Type())

	if m.exact {
		return s.IsSameType(declared, deref(target))
	}

	if assignableOrPointer(declared, target, s) {
		return true
	}

	// methods promoted through embedding or called on an interface value
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return false
	}

	return assignableOrPointer(s.TypeOf(sel.X), target, s)
}

func assignableOrPointer(t, target types.Type, s visitor.State) bool {
	if t == nil {
		return false
	}

	if s.IsSubtype(t, target) {
		return true
	}

	if _, ok := t.Underlying().(*types.Interface); ok {
		return false
	}

	if _, ok := t.(*types.Pointer); ok {
		return false
	}

	return s.IsSubtype(types.NewPointer(t), target)
}

func deref(t types.Type) types.Type {
	if p, ok := t.(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}
