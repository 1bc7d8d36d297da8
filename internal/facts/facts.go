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

// Package facts collects compiler and linter directives and deprecation
// notices from declarations and exports them as analysis facts.
package facts

import (
	"go/ast"
	"go/types"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Deprecated is the name recorded for declarations with a "Deprecated: " paragraph.
const Deprecated = "deprecated"

// Directives is an object fact listing the directives of a declaration.
type Directives struct {
	Names []string
}

// AFact implements [analysis.Fact].
func (*Directives) AFact() {}

func (d *Directives) String() string {
	return strings.Join(d.Names, " ")
}

// Has reports whether the directive name is present.
func (d *Directives) Has(name string) bool {
	return d != nil && slices.Contains(d.Names, name)
}

var directivePattern = regexp.MustCompile(`^//([a-z0-9]+:[a-z0-9_-]+)`)

// Parse returns the sorted directive names of a doc comment, for example
// "go:noinline", "lint:ignore" or [Deprecated].
func Parse(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}

	var names []string

	for _, c := range doc.List {
		if m := directivePattern.FindStringSubmatch(c.Text); m != nil {
			names = append(names, m[1])
		}
	}

	for paragraph := range strings.SplitSeq(doc.Text(), "\n\n") {
		if strings.HasPrefix(strings.TrimSpace(paragraph), "Deprecated: ") {
			names = append(names, Deprecated)

			break
		}
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// Collect returns the directives of all package-level declarations in files,
// including methods, interface methods and struct fields.
func Collect(info *types.Info, files []*ast.File) map[types.Object][]string {
	result := make(map[types.Object][]string)

	record := func(id *ast.Ident, docs ...*ast.CommentGroup) {
		var names []string
		for _, doc := range docs {
			names = append(names, Parse(doc)...)
		}

		if len(names) == 0 {
			return
		}

		obj := info.Defs[id]
		if obj == nil {
			return
		}

		slices.Sort(names)
		result[obj] = slices.Compact(names)
	}

	for _, f := range files {
		for _, decl := range f.Decls {
			switch decl := decl.(type) {
			case *ast.FuncDecl:
				record(decl.Name, decl.Doc)

			case *ast.GenDecl:
				collectGenDecl(decl, record)
			}
		}
	}

	return result
}

func collectGenDecl(decl *ast.GenDecl, record func(*ast.Ident, ...*ast.CommentGroup)) {
	// a declaration comment applies to an unparenthesized spec
	var outer *ast.CommentGroup
	if !decl.Lparen.IsValid() {
		outer = decl.Doc
	}

	for _, spec := range decl.Specs {
		switch spec := spec.(type) {
		case *ast.TypeSpec:
			record(spec.Name, outer, spec.Doc)

			switch t := spec.Type.(type) {
			case *ast.StructType:
				collectFields(t.Fields, record)

			case *ast.InterfaceType:
				collectFields(t.Methods, record)
			}

		case *ast.ValueSpec:
			for _, name := range spec.Names {
				record(name, outer, spec.Doc)
			}
		}
	}
}

func collectFields(fields *ast.FieldList, record func(*ast.Ident, ...*ast.CommentGroup)) {
	if fields == nil {
		return
	}

	for _, field := range fields.List {
		for _, name := range field.Names {
			record(name, field.Doc)
		}
	}
}

// Export records the directives of the current package as object facts.
func Export(p *analysis.Pass, directives map[types.Object][]string) {
	for obj, names := range directives {
		if obj.Pkg() != p.Pkg {
			continue
		}

		p.ExportObjectFact(obj, &Directives{Names: names})
	}
}

// Import returns the directives of an object from another package.
func Import(p *analysis.Pass, obj types.Object) []string {
	if p.ImportObjectFact == nil {
		return nil
	}

	var d Directives
	if !p.ImportObjectFact(obj, &d) {
		return nil
	}

	return d.Names
}
