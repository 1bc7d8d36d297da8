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

// Package visitor provides the context a matcher sees while inspecting a node:
// the enclosing path, type information, source text and a fix builder.
package visitor

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"regexp"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/bugpattern/fix"
	"fillmore-labs.com/bugpattern/internal/facts"
)

// Cache holds memoized lookups shared by all files of a pass.
type Cache struct {
	pass       *analysis.Pass
	types      map[string]types.Type
	packages   map[string]*types.Package
	supers     map[*types.Func][]*types.Func
	interfaces []*types.Named
	directives map[types.Object][]string
	methods    typeutil.MethodSetCache
}

// NewCache creates a [Cache] for a pass.
func NewCache(p *analysis.Pass) *Cache {
	return &Cache{
		pass:   p,
		types:  make(map[string]types.Type),
		supers: make(map[*types.Func][]*types.Func),
	}
}

// Pass returns the analysis pass.
func (c *Cache) Pass() *analysis.Pass {
	return c.pass
}

// Unit is the compilation unit of a single file.
type Unit struct {
	cache  *Cache
	file   *ast.File
	handle *token.File
	src    []byte
	srcErr error
	loaded bool
}

// Unit returns the compilation unit for file.
func (c *Cache) Unit(file *ast.File) *Unit {
	return &Unit{cache: c, file: file, handle: c.pass.Fset.File(file.FileStart)}
}

// File returns the syntax tree of the unit.
func (u *Unit) File() *ast.File {
	return u.file
}

// TokenFile returns the position information of the unit.
func (u *Unit) TokenFile() *token.File {
	return u.handle
}

// Source returns the content of the file, read once on demand.
func (u *Unit) Source() ([]byte, error) {
	if !u.loaded {
		u.loaded = true

		switch {
		case u.handle == nil:
			u.srcErr = fix.ErrNoFile

		case u.cache.pass.ReadFile == nil:
			u.srcErr = fix.ErrNoSource

		default:
			u.src, u.srcErr = u.cache.pass.ReadFile(u.handle.Name())
			if u.srcErr == nil && len(u.src) != u.handle.Size() {
				u.src, u.srcErr = nil, fix.ErrOutOfRange
			}
		}
	}

	return u.src, u.srcErr
}

// At returns the state positioned at c.
func (u *Unit) At(c inspector.Cursor) State {
	return State{unit: u, cursor: c}
}

// State is the context of a node under inspection. It is a small value and
// can be passed and copied freely.
type State struct {
	unit   *Unit
	cursor inspector.Cursor
}

// Unit returns the compilation unit of s.
func (s State) Unit() *Unit {
	return s.unit
}

// Pass returns the analysis pass.
func (s State) Pass() *analysis.Pass {
	return s.unit.cache.pass
}

// Info returns the type information of the package.
func (s State) Info() *types.Info {
	return s.unit.cache.pass.TypesInfo
}

// Package returns the analyzed package.
func (s State) Package() *types.Package {
	return s.unit.cache.pass.Pkg
}

// WithPath returns a copy of s positioned at c.
func (s State) WithPath(c inspector.Cursor) State {
	s.cursor = c

	return s
}

// Cursor returns the position of s in the syntax tree.
func (s State) Cursor() inspector.Cursor {
	return s.cursor
}

// Node returns the node at the current position, or nil.
func (s State) Node() ast.Node {
	if s.cursor.Inspector() == nil {
		return nil
	}

	return s.cursor.Node()
}

// Parent returns the state positioned at the parent node.
func (s State) Parent() (State, bool) {
	if s.Node() == nil {
		return State{}, false
	}

	p := s.cursor.Parent()
	if p.Node() == nil {
		return State{}, false
	}

	return s.WithPath(p), true
}

// Path iterates over the current node and its ancestors, innermost first.
func (s State) Path() iter.Seq[ast.Node] {
	return func(yield func(ast.Node) bool) {
		if s.Node() == nil {
			return
		}

		for c := range s.cursor.Enclosing() {
			if !yield(c.Node()) {
				return
			}
		}
	}
}

// Locate returns the state positioned at n, searching the subtree of the
// current node first and the whole file second.
func (s State) Locate(n ast.Node) (State, bool) {
	current := s.Node()
	switch {
	case current == nil:
		return s, false

	case current == n:
		return s, true
	}

	if c, ok := s.cursor.FindNode(n); ok {
		return s.WithPath(c), true
	}

	for c := range s.cursor.Enclosing((*ast.File)(nil)) {
		if found, ok := c.FindNode(n); ok {
			return s.WithPath(found), true
		}
	}

	return s, false
}

// TypeOf returns the type of e, or nil if it is unknown or invalid.
func (s State) TypeOf(e ast.Expr) types.Type {
	t := s.Info().TypeOf(e)
	if t == nil || t == types.Typ[types.Invalid] {
		return nil
	}

	return t
}

// ObjectOf returns the object a node declares, denotes or calls, or nil.
func (s State) ObjectOf(n ast.Node) types.Object {
	info := s.Info()

	switch n := n.(type) {
	case *ast.Ident:
		return info.ObjectOf(n)

	case *ast.SelectorExpr:
		return info.ObjectOf(n.Sel)

	case *ast.ParenExpr:
		return s.ObjectOf(n.X)

	case *ast.IndexExpr:
		return s.ObjectOf(n.X)

	case *ast.IndexListExpr:
		return s.ObjectOf(n.X)

	case *ast.CallExpr:
		return typeutil.Callee(info, n)

	case *ast.FuncDecl:
		return info.Defs[n.Name]

	case *ast.TypeSpec:
		return info.Defs[n.Name]

	case *ast.ImportSpec:
		return info.PkgNameOf(n)
	}

	return nil
}

// Callee returns the function or method a call invokes, including interface
// methods, or nil for builtins, conversions and calls of function values.
func (s State) Callee(call *ast.CallExpr) *types.Func {
	fn, _ := typeutil.Callee(s.Info(), call).(*types.Func)

	return fn
}

// Source returns the content of the current file.
func (s State) Source() ([]byte, error) {
	return s.unit.Source()
}

// SourceFor returns the source text of n, or "" when unavailable.
func (s State) SourceFor(n ast.Node) string {
	span, err := s.Span(n)
	if err != nil {
		return ""
	}

	src, err := s.unit.Source()
	if err != nil {
		return ""
	}

	return string(src[span.Start:span.End])
}

// Span returns the offsets of n in the current file.
func (s State) Span(n ast.Node) (fix.Span, error) {
	return fix.NodeSpan(s.unit.handle, n)
}

// FixBuilder returns a new fix builder for the current file.
func (s State) FixBuilder() *fix.Builder {
	src, _ := s.unit.Source()

	return fix.ForFile(s.unit.handle, src)
}

// Directives returns the directive names of obj's declaration.
func (s State) Directives(obj types.Object) []string {
	if obj == nil {
		return nil
	}

	switch o := obj.(type) {
	case *types.Func:
		obj = o.Origin()

	case *types.Var:
		obj = o.Origin()
	}

	c := s.unit.cache
	if obj.Pkg() != c.pass.Pkg {
		return facts.Import(c.pass, obj)
	}

	if c.directives == nil {
		c.directives = facts.Collect(c.pass.TypesInfo, c.pass.Files)
	}

	return c.directives[obj]
}

// Qualifier returns the name under which the current file can refer to the
// package path at pos, and whether an import must be added for it.
// ok is false when the package name is shadowed at pos, or for unknown
// packages outside the standard library.
func (s State) Qualifier(path string, pos token.Pos) (name string, missing, ok bool) {
	for _, spec := range s.unit.file.Imports {
		pn := s.Info().PkgNameOf(spec)
		if pn == nil || pn.Imported().Path() != path {
			continue
		}

		if name := pn.Name(); name != "_" && name != "." {
			return name, false, s.refersTo(name, pos, pn)
		}
	}

	if pkg := s.findPackage(path); pkg != nil {
		name = pkg.Name()
	} else if name, ok = stdName(path); !ok {
		return "", false, false
	}

	return name, true, s.refersTo(name, pos, nil)
}

// stdName returns the package name of a standard library path not loaded by
// the analyzed package, which is the last path element ignoring a major version.
func stdName(path string) (string, bool) {
	first, _, _ := strings.Cut(path, "/")
	if path == "" || strings.Contains(first, ".") {
		return "", false
	}

	elems := strings.Split(path, "/")
	name := elems[len(elems)-1]

	if len(elems) > 1 && majorVersion.MatchString(name) {
		name = elems[len(elems)-2]
	}

	return name, true
}

var majorVersion = regexp.MustCompile(`^v[2-9][0-9]*$`)

// refersTo reports whether name resolves to obj at pos, or to nothing if obj is nil.
func (s State) refersTo(name string, pos token.Pos, obj types.Object) bool {
	scope := s.Package().Scope().Innermost(pos)
	if scope == nil {
		return false
	}

	_, found := scope.LookupParent(name, pos)

	return found == obj
}
