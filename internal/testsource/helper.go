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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It handles the boilerplate of parsing, type checking and setting up an
// analysis pass for Go source fragments, so matchers and fixes can be tested
// without running a full analysis.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bugpattern/visitor"
)

const (
	testpkg  = "test"
	filename = "test.go"
)

// Source is a parsed and type-checked single file package.
type Source struct {
	Fset      *token.FileSet
	File      *ast.File
	Src       []byte
	Pkg       *types.Package
	Info      *types.Info
	Inspector *inspector.Inspector
	Pass      *analysis.Pass
	Unit      *visitor.Unit
}

// Load parses and type checks a complete source file of package "test".
func Load(tb testing.TB, src string) *Source {
	tb.Helper()

	return load(tb, []byte(src))
}

// Wrap parses and type checks a Go source code fragment.
// The provided source is wrapped in a function body `func _() { ... }`
// within a package `test`. This allows testing statement-level code fragments
// without manually constructing the surrounding package and function scaffolding.
func Wrap(tb testing.TB, src string) *Source {
	tb.Helper()

	return load(tb, wrapSource(src))
}

func load(tb testing.TB, src []byte) *Source {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	pkg, info := Check(tb, fset, f)

	files := []*ast.File{f}
	pass := &analysis.Pass{
		Fset:      fset,
		Files:     files,
		Pkg:       pkg,
		TypesInfo: info,
		ReadFile: func(name string) ([]byte, error) {
			if name != filename {
				return nil, os.ErrNotExist
			}

			return bytes.Clone(src), nil
		},
	}

	unit := visitor.NewCache(pass).Unit(f)

	return &Source{
		Fset:      fset,
		File:      f,
		Src:       src,
		Pkg:       pkg,
		Info:      info,
		Inspector: inspector.New(files),
		Pass:      pass,
		Unit:      unit,
	}
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Instances:  make(map[*ast.Ident]types.Instance),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// State returns the visitor state positioned at n.
func (s *Source) State(tb testing.TB, n ast.Node) visitor.State {
	tb.Helper()

	c, ok := s.Inspector.Root().FindNode(n)
	if !ok {
		tb.Fatalf("Node %T not found", n)
	}

	return s.Unit.At(c)
}

// Find returns the first node of type N, in preorder, for which match returns true,
// together with its visitor state. N may be an interface like [ast.Expr].
// A nil match accepts any node.
func Find[N ast.Node](tb testing.TB, s *Source, match func(N) bool) (N, visitor.State) {
	tb.Helper()

	for c := range s.Inspector.Root().Preorder() {
		n, ok := c.Node().(N)
		if ok && (match == nil || match(n)) {
			return n, s.Unit.At(c)
		}
	}

	var zero N
	tb.Fatalf("No %T found", zero)

	return zero, visitor.State{}
}

func wrapSource(src string) []byte {
	const (
		header     = "package " + testpkg + "\n\nfunc _() {\n"
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return srcFile.Bytes()
}
