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

package visitor_test

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/bugpattern/internal/testsource"
	. "fillmore-labs.com/bugpattern/visitor"
)

const sameVariableSrc = `package test

type inner struct{ x int }

type outer struct {
	inner
	y int
}

type deep struct {
	*outer
}

var s, t outer

var p = &s

var d deep

type ptr *ptr

var r ptr

func _() {
	_ = s.x == s.inner.x
	_ = s.x == t.x
	_ = s.y == s.y
	_ = p.y == (*p).y
	_ = s.y == p.y
	_ = d.x == d.outer.inner.x
	_ = (s.y) == s.y
	_ = len("a") == len("a")
	_ = s.x == s.y
	_ = r == *r
	_ = *r == (*r)
	_ = *r == **r
}
`

func TestSameVariable(t *testing.T) {
	t.Parallel()

	src := testsource.Load(t, sameVariableSrc)

	var got []bool
	for c := range src.Inspector.Root().Preorder((*ast.BinaryExpr)(nil)) {
		b := c.Node().(*ast.BinaryExpr)
		got = append(got, SameVariable(src.Info, b.X, b.Y))
	}

	want := []bool{true, false, true, true, false, true, true, false, false, false, true, false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SameVariable() mismatch (-want +got):\n%s", diff)
	}
}

func TestSameVariableShadowed(t *testing.T) {
	t.Parallel()

	src := testsource.Wrap(t, `
		x := 1
		y := func() int { x := 2; return x }()
		_ = x + y
	`)

	var xs []*ast.Ident
	for c := range src.Inspector.Root().Preorder((*ast.Ident)(nil)) {
		if id := c.Node().(*ast.Ident); id.Name == "x" {
			xs = append(xs, id)
		}
	}

	if len(xs) != 4 {
		t.Fatalf("Got %d identifiers, want 4", len(xs))
	}

	if SameVariable(src.Info, xs[2], xs[3]) {
		t.Error("Expected inner and outer x to differ")
	}

	if !SameVariable(src.Info, xs[0], xs[3]) {
		t.Error("Expected declaration and use of x to match")
	}

	if SameVariable(src.Info, xs[0], xs[1]) {
		t.Error("Expected shadowing variables to differ")
	}
}

func TestResolveType(t *testing.T) {
	t.Parallel()

	src := testsource.Load(t, `package test

import (
	"io"
	"os"
)

type T struct{}

var _ io.Reader = os.Stdin
`)

	_, s := testsource.Find[*ast.ValueSpec](t, src, nil)

	tests := []struct {
		name string
		want string
	}{
		{"int", "int"},
		{"error", "error"},
		{"io.Reader", "io.Reader"},
		{"*os.File", "*os.File"},
		{"[]byte", "[]byte"},
		{"...string", "[]string"},
		{"test.T", "test.T"},
		{"net/http.Handler", ""},
		{"io.Nothing", ""},
		{"nothing", ""},
		{"*nothing", ""},
	}

	for _, tt := range tests {
		var got string
		if typ := s.ResolveType(tt.name); typ != nil {
			got = typ.String()
		}

		if got != tt.want {
			t.Errorf("Got ResolveType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsSubtype(t *testing.T) {
	t.Parallel()

	src := testsource.Load(t, `package test

import "os"

var _ = os.Stdin
`)

	_, s := testsource.Find[*ast.ValueSpec](t, src, nil)

	file, reader := s.ResolveType("*os.File"), s.ResolveType("io.Reader")

	if !s.IsSubtype(file, reader) {
		t.Error("Expected *os.File to be assignable to io.Reader")
	}

	if s.IsSubtype(reader, file) {
		t.Error("Expected io.Reader not to be assignable to *os.File")
	}

	if s.IsSubtype(nil, reader) || s.IsSubtype(types.Typ[types.Invalid], reader) {
		t.Error("Expected unknown types not to be subtypes")
	}

	if !s.IsSameType(file, types.NewPointer(s.ResolveType("os.File"))) {
		t.Error("Expected identical types")
	}
}

const hierarchySrc = `package test

import "io"

// Closer closes.
type Closer interface {
	// Deprecated: Use Shutdown.
	Close() error
}

type base struct{}

// Deprecated: Don't.
func (base) Stop() {}

type derived struct {
	base
}

func (derived) Stop() {}

func (*derived) Close() error { return nil }

func (derived) Read([]byte) (int, error) { return 0, nil }

var _ io.Reader = derived{}
`

func TestSuperMethods(t *testing.T) {
	t.Parallel()

	src := testsource.Load(t, hierarchySrc)

	derived := src.Pkg.Scope().Lookup("derived").Type()

	_, s := testsource.Find[*ast.File](t, src, nil)

	tests := []struct {
		method string
		want   []string
	}{
		{"Stop", []string{"func (test.base).Stop()"}},
		{"Close", []string{"func (test.Closer).Close() error", "func (io.Closer).Close() error"}},
		{"Read", []string{"func (io.Reader).Read(p []byte) (n int, err error)"}},
	}

	for _, tt := range tests {
		obj, _, _ := types.LookupFieldOrMethod(derived, true, src.Pkg, tt.method)

		fn, ok := obj.(*types.Func)
		if !ok {
			t.Fatalf("Method %s not found", tt.method)
		}

		var got []string
		for _, m := range s.SuperMethods(fn) {
			got = append(got, m.String())
		}

		slices.Sort(got)
		slices.Sort(tt.want)

		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("SuperMethods(%s) mismatch (-want +got):\n%s", tt.method, diff)
		}
	}
}

func TestDirectives(t *testing.T) {
	t.Parallel()

	src := testsource.Load(t, hierarchySrc)

	_, s := testsource.Find[*ast.File](t, src, nil)

	base := src.Pkg.Scope().Lookup("base").Type()
	obj, _, _ := types.LookupFieldOrMethod(base, true, src.Pkg, "Stop")

	if got := s.Directives(obj); !slices.Equal(got, []string{"deprecated"}) {
		t.Errorf("Got directives %q, want [deprecated]", got)
	}

	if got := s.Directives(src.Pkg.Scope().Lookup("derived")); got != nil {
		t.Errorf("Got directives %q, want none", got)
	}

	if got := s.Directives(nil); got != nil {
		t.Errorf("Got directives %q for nil", got)
	}
}

func TestStateNavigation(t *testing.T) {
	t.Parallel()

	src := testsource.Wrap(t, `
		for i := 0; i < 3; i++ {
			_ = i + 1
		}
	`)

	bin, s := testsource.Find(t, src, func(b *ast.BinaryExpr) bool { return b.Op == token.ADD })

	if s.Node() != bin {
		t.Fatalf("Got node %T, want *ast.BinaryExpr", s.Node())
	}

	var kinds []string
	for n := range s.Path() {
		kinds = append(kinds, typeName(n))
	}

	want := []string{"BinaryExpr", "AssignStmt", "BlockStmt", "ForStmt", "BlockStmt", "FuncDecl", "File"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("Path() mismatch (-want +got):\n%s", diff)
	}

	p, ok := s.Parent()
	if !ok {
		t.Fatal("Expected parent")
	}

	if _, ok := p.Node().(*ast.AssignStmt); !ok {
		t.Errorf("Got parent %T, want *ast.AssignStmt", p.Node())
	}

	located, ok := p.Locate(bin.X)
	if !ok || located.Node() != bin.X {
		t.Errorf("Can't locate operand from parent")
	}

	if got := s.SourceFor(bin); got != "i + 1" {
		t.Errorf("Got source %q, want %q", got, "i + 1")
	}

	if _, ok := (State{}).Parent(); ok {
		t.Error("Expected no parent for zero state")
	}
}

func TestQualifier(t *testing.T) {
	t.Parallel()

	src := testsource.Load(t, `package test

import (
	_ "embed"
	str "strings"
)

var _ = str.ToUpper

func _(embed int) {
	_ = embed
}
`)

	spec, s := testsource.Find[*ast.ValueSpec](t, src, nil)
	param, _ := testsource.Find(t, src, func(id *ast.Ident) bool { return id.Name == "embed" && src.Info.Uses[id] != nil })

	tests := []struct {
		name    string
		path    string
		pos     token.Pos
		want    string
		missing bool
		ok      bool
	}{
		{"renamed", "strings", spec.Pos(), "str", false, true},
		{"blank", "embed", spec.Pos(), "embed", true, true},
		{"shadowed", "embed", param.Pos(), "embed", true, false},
		{"standard", "net/http", spec.Pos(), "http", true, true},
		{"versioned", "math/rand/v2", spec.Pos(), "rand", true, true},
		{"unknown", "example.com/lib", spec.Pos(), "", false, false},
	}

	for _, tt := range tests {
		name, missing, ok := s.Qualifier(tt.path, tt.pos)
		if name != tt.want || missing != tt.missing || ok != tt.ok {
			t.Errorf("%s: Got Qualifier(%q) = %q, %v, %v, want %q, %v, %v",
				tt.name, tt.path, name, missing, ok, tt.want, tt.missing, tt.ok)
		}
	}
}

func typeName(n ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}
