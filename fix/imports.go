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

package fix

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// ImportEdits computes the text edits adding and removing imports of src.
//
// Adding an import that is already present is a no-op. For an unnamed import
// any import of the same path binding a package name counts, so callers must
// refer to the package by the name already in use.
// An import that is both added and removed stays. Removed imports take their
// whole line with them, an emptied declaration is deleted. New imports are
// placed into the first remaining import declaration, in sort order and into
// the group of standard library or third-party imports they belong to.
func ImportEdits(src []byte, adds, removes []Import) ([]TextEdit, error) {
	if len(adds) == 0 && len(removes) == 0 {
		return nil, nil
	}

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "", src, parser.ImportsOnly|parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	e := importEditor{fset: fset, ast: f, file: fset.File(f.Package), src: src}

	var (
		decls   []importDecl
		present []Import
	)

	for _, d := range f.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}

		decl := importDecl{decl: gen}
		for _, s := range gen.Specs {
			spec := s.(*ast.ImportSpec)
			imp := specImport(spec)

			if !slices.Contains(adds, imp) && slices.ContainsFunc(removes, imp.matches) {
				decl.removed = append(decl.removed, spec)

				continue
			}

			decl.kept = append(decl.kept, spec)
			present = append(present, imp)
		}

		decls = append(decls, decl)
	}

	var missing []Import

	for _, imp := range adds {
		if !slices.ContainsFunc(present, imp.satisfiedBy) && !slices.Contains(missing, imp) {
			missing = append(missing, imp)
		}
	}

	slices.SortFunc(missing, compareImports)

	target := slices.IndexFunc(decls, func(d importDecl) bool { return len(d.kept) > 0 })

	b := New()
	placed := len(missing) == 0

	for _, d := range decls {
		switch {
		case len(d.kept) > 0:
			for _, spec := range d.removed {
				b.Delete(e.lines(specStart(spec), specEnd(spec)))
			}

		case len(d.removed) > 0:
			span := e.lines(d.start(), d.decl.End())
			if placed || target >= 0 {
				b.Delete(span)

				continue
			}

			// reuse the place of the first emptied declaration
			text := declText(missing)
			if span.End > span.Start && src[span.End-1] == '\n' {
				text += "\n"
			}

			b.Replace(span, text)

			placed = true
		}
	}

	switch {
	case placed:

	case target >= 0:
		e.insertSpecs(b, decls[target], missing)

	default:
		e.insertDecl(b, f, missing)
	}

	if b.err != nil {
		return nil, b.err
	}

	return b.edits, nil
}

func (i Import) matches(o Import) bool {
	return i.Path == o.Path && (o.Name == "" || i.Name == o.Name)
}

// satisfiedBy reports whether the existing import o makes i unnecessary.
func (i Import) satisfiedBy(o Import) bool {
	if i.Name != "" {
		return i == o
	}

	return i.Path == o.Path && o.Name != "_" && o.Name != "."
}

func specImport(spec *ast.ImportSpec) Import {
	path, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		path = spec.Path.Value
	}

	var name string
	if spec.Name != nil {
		name = spec.Name.Name
	}

	return Import{Name: name, Path: path}
}

func specStart(spec *ast.ImportSpec) token.Pos {
	if spec.Doc != nil {
		return spec.Doc.Pos()
	}

	return spec.Pos()
}

func specEnd(spec *ast.ImportSpec) token.Pos {
	if spec.Comment != nil {
		return spec.Comment.End()
	}

	return spec.End()
}

// isStd reports whether path looks like a standard library package.
func isStd(path string) bool {
	first, _, _ := strings.Cut(path, "/")

	return !strings.Contains(first, ".")
}

type importDecl struct {
	decl    *ast.GenDecl
	kept    []*ast.ImportSpec
	removed []*ast.ImportSpec
}

func (d importDecl) start() token.Pos {
	if d.decl.Doc != nil {
		return d.decl.Doc.Pos()
	}

	return d.decl.Pos()
}

// groups returns the kept specs of the declaration, split into groups at
// blank lines of the original source.
func (d importDecl) groups(e importEditor) [][]*ast.ImportSpec {
	var groups [][]*ast.ImportSpec

	for _, group := range astutil.Imports(e.fset, e.ast) {
		var kept []*ast.ImportSpec

		for _, spec := range group {
			if slices.Contains(d.kept, spec) {
				kept = append(kept, spec)
			}
		}

		if len(kept) > 0 {
			groups = append(groups, kept)
		}
	}

	return groups
}

type importEditor struct {
	fset *token.FileSet
	ast  *ast.File
	file *token.File
	src  []byte
}

func (e importEditor) offset(pos token.Pos) int {
	return int(pos) - e.file.Base()
}

func (e importEditor) line(pos token.Pos) int {
	return e.file.PositionFor(pos, false).Line
}

// lineStart returns the offset of the line containing off.
func (e importEditor) lineStart(off int) int {
	return bytes.LastIndexByte(e.src[:off], '\n') + 1
}

// nextLine returns the offset of the line following off, or the source size.
func (e importEditor) nextLine(off int) int {
	if i := bytes.IndexByte(e.src[off:], '\n'); i >= 0 {
		return off + i + 1
	}

	return len(e.src)
}

// lines returns the span of [pos, end), extended to whole lines when nothing
// else shares them.
func (e importEditor) lines(pos, end token.Pos) Span {
	start, stop := e.offset(pos), e.offset(end)
	first, next := e.lineStart(start), e.nextLine(stop)

	if len(bytes.TrimSpace(e.src[first:start])) > 0 || len(bytes.TrimSpace(e.src[stop:next])) > 0 {
		return Span{start, stop}
	}

	return Span{first, next}
}

// declText formats an import declaration of imports.
func declText(imports []Import) string {
	if len(imports) == 1 {
		return "import " + imports[0].String()
	}

	var text strings.Builder

	text.WriteString("import (\n") // ignore error

	for _, imp := range imports {
		text.WriteString("\t")         // ignore error
		text.WriteString(imp.String()) // ignore error
		text.WriteString("\n")         // ignore error
	}

	text.WriteString(")") // ignore error

	return text.String()
}

// insertDecl adds a new import declaration after the package clause.
func (e importEditor) insertDecl(b *Builder, f *ast.File, imports []Import) {
	pos := f.Name.End()

	// keep a trailing comment of the package clause on its line
	for _, c := range f.Comments {
		if c.Pos() >= pos && e.line(c.Pos()) == e.line(pos) {
			pos = c.End()
		}
	}

	at := e.offset(pos)
	b.Replace(Span{at, at}, "\n\n"+declText(imports))
}

// insertSpecs adds imports to an existing declaration.
func (e importEditor) insertSpecs(b *Builder, d importDecl, imports []Import) {
	if !d.decl.Lparen.IsValid() {
		spec := d.kept[0]
		current := specImport(spec)

		for _, imp := range imports {
			if compareImports(imp, current) < 0 {
				at := e.lineStart(e.offset(d.start()))
				b.Replace(Span{at, at}, "import "+imp.String()+"\n")
			} else {
				at := e.offset(specEnd(spec))
				b.Replace(Span{at, at}, "\nimport "+imp.String())
			}
		}

		return
	}

	groups := d.groups(e)
	lparen, rparen := e.line(d.decl.Lparen), e.line(d.decl.Rparen)

	for _, imp := range imports {
		group := pickGroup(groups, isStd(imp.Path))
		text := imp.String()

		i := slices.IndexFunc(group, func(s *ast.ImportSpec) bool { return compareImports(imp, specImport(s)) < 0 })
		if i >= 0 {
			next := specStart(group[i])
			if e.line(next) > lparen {
				at := e.lineStart(e.offset(next))
				b.Replace(Span{at, at}, "\t"+text+"\n")
			} else {
				at := e.offset(next)
				b.Replace(Span{at, at}, text+"\n\t")
			}

			continue
		}

		last := specEnd(group[len(group)-1])
		if e.line(last) < rparen {
			at := e.nextLine(e.offset(last))
			b.Replace(Span{at, at}, "\t"+text+"\n")
		} else {
			at := e.offset(last)
			b.Replace(Span{at, at}, "\n\t"+text)
		}
	}
}

// pickGroup returns the first group containing standard library imports for
// std, otherwise the last group containing third-party imports.
func pickGroup(groups [][]*ast.ImportSpec, std bool) []*ast.ImportSpec {
	isStdSpec := func(s *ast.ImportSpec) bool { return isStd(specImport(s).Path) }

	if std {
		for _, g := range groups {
			if slices.ContainsFunc(g, isStdSpec) {
				return g
			}
		}

		return groups[0]
	}

	for _, g := range slices.Backward(groups) {
		if slices.ContainsFunc(g, func(s *ast.ImportSpec) bool { return !isStdSpec(s) }) {
			return g
		}
	}

	return groups[len(groups)-1]
}
