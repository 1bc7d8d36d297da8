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

package checks

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/fix"
	"fillmore-labs.com/bugpattern/visitor"
)

// IoutilMigration reports imports of the deprecated io/ioutil package.
var IoutilMigration bugpattern.Checker = ioutilMigration{}

type ioutilMigration struct{}

const ioutilPath = "io/ioutil"

// replacement is the equivalent of an io/ioutil member.
type replacement struct {
	path, name string
}

// ioutilReplacements lists the drop-in replacements. ReadDir returns
// []os.DirEntry instead of []fs.FileInfo and has none.
var ioutilReplacements = map[string]replacement{
	"Discard":   {"io", "Discard"},
	"NopCloser": {"io", "NopCloser"},
	"ReadAll":   {"io", "ReadAll"},
	"ReadFile":  {"os", "ReadFile"},
	"TempDir":   {"os", "MkdirTemp"},
	"TempFile":  {"os", "CreateTemp"},
	"WriteFile": {"os", "WriteFile"},
}

func (ioutilMigration) Info() bugpattern.Info {
	return bugpattern.Info{
		Name:    "ioutil",
		Summary: "io/ioutil is deprecated",
		URL:     baseURL + "hdr-ioutil",
	}
}

func (ioutilMigration) NodeTypes() []ast.Node {
	return []ast.Node{(*ast.File)(nil)}
}

func (c ioutilMigration) Check(n ast.Node, s visitor.State) (*bugpattern.Description, error) {
	file := n.(*ast.File)

	spec, pkg := ioutilImport(file, s)
	if spec == nil {
		return nil, nil
	}

	d := bugpattern.Describe(c.Info(), spec).
		SetMessage("io/ioutil is deprecated, use the equivalent functions of packages io and os")

	b := s.FixBuilder().SetDescription("Replace io/ioutil with io and os")
	complete := true

	for cur := range s.Cursor().Preorder((*ast.SelectorExpr)(nil)) {
		sel := cur.Node().(*ast.SelectorExpr)
		if id, ok := sel.X.(*ast.Ident); !ok || s.Info().Uses[id] != pkg {
			continue
		}

		f, err := migrateUse(sel, s.WithPath(cur))
		if err != nil {
			return d.Build(), err
		}

		if f == nil {
			complete = false

			continue
		}

		b.Merge(f)
	}

	if !complete {
		return d.Build(), nil
	}

	f, err := b.RemoveImport(ioutilPath).Build()
	if err != nil {
		return d.Build(), err
	}

	return d.AddFix(f).Build(), nil
}

// ioutilImport returns the named import of io/ioutil in file.
func ioutilImport(file *ast.File, s visitor.State) (*ast.ImportSpec, types.Object) {
	for _, spec := range file.Imports {
		pn := s.Info().PkgNameOf(spec)
		if pn == nil || pn.Imported().Path() != ioutilPath {
			continue
		}

		if name := pn.Name(); name == "_" || name == "." {
			continue
		}

		return spec, pn
	}

	return nil, nil
}

// migrateUse returns the fix for a single qualified io/ioutil reference,
// or nil when there is no replacement available at its position.
func migrateUse(sel *ast.SelectorExpr, s visitor.State) (*fix.Fix, error) {
	r, ok := ioutilReplacements[sel.Sel.Name]
	if !ok {
		return nil, nil
	}

	name, missing, ok := s.Qualifier(r.path, sel.Pos())
	if !ok {
		return nil, nil
	}

	b := s.FixBuilder().ReplaceNode(sel, name+"."+r.name)
	if missing {
		b.AddImport(r.path)
	}

	return b.Build()
}
