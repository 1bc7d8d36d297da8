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

package astutil_test

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	. "fillmore-labs.com/bugpattern/internal/astutil"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		check   string
		want    bool
	}{
		{"//nolint:bugpattern", "", true},
		{"// nolint:all", "selfassign", true},
		{"//nolint:selfassign", "selfassign", true},
		{"//nolint:errcheck,SelfAssign // legacy", "selfassign", true},
		{"//nolint:selfassign", "selfcompare", false},
		{"//nolint:errcheck", "", false},
		{"// some comment", "selfassign", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(&ast.Comment{Text: tt.comment}, tt.check); got != tt.want {
			t.Errorf("Got CommentHasNoLint(%q, %q) = %v, want %v", tt.comment, tt.check, got, tt.want)
		}
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by hand. DO NOT EDIT.

package p

var a = 1 //nolint:selfassign

var b = 2

// nolint:all
var c = 3
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "p.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("Can't parse source: %v", err)
	}

	cf := NewCurrentFile(fset, f)
	if !cf.Valid() || !cf.Generated() {
		t.Fatalf("Got valid %v, generated %v", cf.Valid(), cf.Generated())
	}

	specs := map[string]*ast.GenDecl{}
	for _, d := range f.Decls {
		gen := d.(*ast.GenDecl)
		specs[gen.Specs[0].(*ast.ValueSpec).Names[0].Name] = gen
	}

	if !cf.NoLintComment(specs["a"].Pos(), "selfassign") {
		t.Error("Expected nolint for a")
	}

	if cf.NoLintComment(specs["b"].Pos(), "selfassign") {
		t.Error("Unexpected nolint for b")
	}

	if !DocHasNoLint(specs["c"].Doc, "") {
		t.Error("Expected nolint doc for c")
	}

	if NewCurrentFile(fset, nil).Valid() {
		t.Error("Expected invalid file for nil")
	}
}

func TestAssignedPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want int
	}{
		{"a, b = b, a", 2},
		{"_, b = b, a", 1},
		{"a, b := 1, 2", 0},
		{"a, b = f()", 0},
		{"a += 1", 1},
	}

	for _, tt := range tests {
		stmt, err := parser.ParseExpr("func() {" + tt.src + "}")
		if err != nil {
			t.Fatalf("Can't parse %q: %v", tt.src, err)
		}

		assign := stmt.(*ast.FuncLit).Body.List[0].(*ast.AssignStmt)

		var got int
		for range AssignedPairs(assign) {
			got++
		}

		if got != tt.want {
			t.Errorf("Got %d pairs for %q, want %d", got, tt.src, tt.want)
		}
	}
}

func TestRecovered(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	if err := Recovered(nil); err != nil {
		t.Errorf("Got %v for nil", err)
	}

	if err := Recovered(errBoom); !errors.Is(err, errBoom) {
		t.Errorf("Got %v, want wrapped %v", err, errBoom)
	}

	if err := Recovered("text"); err == nil || err.Error() != "panic: text" {
		t.Errorf("Got %v", err)
	}
}
