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

package facts_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/bugpattern/internal/facts"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  []string
		want []string
	}{
		{"none", []string{"// Plain comment."}, nil},
		{"deprecated", []string{"// Old does things.", "//", "// Deprecated: Use New."}, []string{"deprecated"}},
		{"deprecated inline", []string{"// Old does things. Deprecated: Use New."}, nil},
		{"go directive", []string{"// Fast is fast.", "//go:noinline"}, []string{"go:noinline"}},
		{"spaced", []string{"// go:noinline"}, nil},
		{"several", []string{"//lint:ignore", "//go:nosplit", "//go:nosplit"}, []string{"go:nosplit", "lint:ignore"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := &ast.CommentGroup{}
			for _, text := range tt.doc {
				doc.List = append(doc.List, &ast.Comment{Text: text})
			}

			if diff := cmp.Diff(tt.want, Parse(doc)); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	const src = `package p

// Old is old.
//
// Deprecated: Use New.
func Old() {}

// New is new.
func New() {}

type T struct {
	// Deprecated: Use B.
	A int
	B int
}

type I interface {
	//go:nosplit
	M()
}

// Deprecated: Don't.
var V = 1

const (
	// Deprecated: Don't either.
	C = 1
	D = 2
)
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "p.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("Can't parse source: %v", err)
	}

	info := &types.Info{Defs: make(map[*ast.Ident]types.Object)}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check("p", fset, []*ast.File{f}, info)
	if err != nil {
		t.Fatalf("Can't type check source: %v", err)
	}

	got := make(map[string][]string)
	for obj, names := range Collect(info, []*ast.File{f}) {
		got[obj.Name()] = names
	}

	want := map[string][]string{
		"Old": {"deprecated"},
		"A":   {"deprecated"},
		"M":   {"go:nosplit"},
		"V":   {"deprecated"},
		"C":   {"deprecated"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
	}

	if pkg.Scope().Lookup("Old") == nil {
		t.Error("Missing object Old")
	}
}

func TestDirectives(t *testing.T) {
	t.Parallel()

	d := &Directives{Names: []string{"deprecated", "go:noinline"}}

	if got, want := d.String(), "deprecated go:noinline"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if !d.Has(Deprecated) {
		t.Error("Expected deprecated directive")
	}

	var none *Directives
	if none.Has(Deprecated) {
		t.Error("Unexpected directive on nil fact")
	}
}
