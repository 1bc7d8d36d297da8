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

package run_test

import (
	"errors"
	"go/ast"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/internal/config"
	. "fillmore-labs.com/bugpattern/internal/run"
	"fillmore-labs.com/bugpattern/internal/testsource"
	"fillmore-labs.com/bugpattern/visitor"
)

// failing is a checker for binary expressions with a configurable defect.
type failing struct {
	name string
	desc bool
	err  error
	boom bool
}

func (c failing) Info() bugpattern.Info {
	return bugpattern.Info{Name: c.name, Summary: c.name + " finding"}
}

func (failing) NodeTypes() []ast.Node {
	return []ast.Node{(*ast.BinaryExpr)(nil)}
}

func (c failing) Check(n ast.Node, _ visitor.State) (*bugpattern.Description, error) {
	if c.boom {
		panic(c.name)
	}

	var d *bugpattern.Description
	if c.desc {
		d = bugpattern.Describe(c.Info(), n).Build()
	}

	return d, c.err
}

type finding struct {
	Category, Message string
	Fixes             int
}

func runOn(t *testing.T, src string, r *Options) []finding {
	t.Helper()

	s := testsource.Load(t, src)

	var got []finding

	p := s.Pass
	p.ResultOf = map[*analysis.Analyzer]any{inspect.Analyzer: s.Inspector}
	p.Report = func(d analysis.Diagnostic) {
		got = append(got, finding{d.Category, d.Message, len(d.SuggestedFixes)})
	}

	if _, err := r.Run(p); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	return got
}

const source = `package test

func f(x float64) bool {
	return x != x
}
`

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		opts *Options
		want []finding
	}{
		{
			name: "default",
			src:  source,
			opts: DefaultOptions(),
			want: []finding{{"selfcompare", "Comparison of x with itself is true only for NaN, use math.IsNaN(x)", 1}},
		},
		{
			name: "no fixes",
			src:  source,
			opts: &Options{Checks: config.DefaultChecks(), Behavior: config.NewBitMask(config.NoFixes)},
			want: []finding{{"selfcompare", "Comparison of x with itself is true only for NaN, use math.IsNaN(x)", 0}},
		},
		{
			name: "disabled",
			src:  source,
			opts: &Options{},
		},
		{
			name: "panic",
			src:  source,
			opts: &Options{Extra: []bugpattern.Checker{failing{name: "boom", boom: true}, failing{name: "ok", desc: true}}},
			want: []finding{
				{"internal", "Internal Error: Checker boom failed: panic: boom", 0},
				{"ok", "ok finding", 0},
			},
		},
		{
			name: "error",
			src:  source,
			opts: &Options{Extra: []bugpattern.Checker{failing{name: "broken", desc: true, err: errors.New("conflict")}}},
			want: []finding{
				{"internal", "Internal Error: Checker broken can't build fix: conflict", 0},
				{"broken", "broken finding", 0},
			},
		},
		{
			name: "nolint",
			src:  "package test\n\nfunc f(x int) bool {\n\treturn x == x //nolint:selfcompare\n}\n",
			opts: DefaultOptions(),
		},
		{
			name: "generated",
			src:  "// Code generated by test. DO NOT EDIT.\n\npackage test\n\nfunc f(x int) bool {\n\treturn x == x\n}\n",
			opts: DefaultOptions(),
		},
		{
			name: "include generated",
			src:  "// Code generated by test. DO NOT EDIT.\n\npackage test\n\nfunc f(x int) bool {\n\treturn x == x\n}\n",
			opts: &Options{Checks: config.DefaultChecks(), Behavior: config.NewBitMask(config.IncludeGenerated)},
			want: []finding{{"selfcompare", "Comparison of x with itself is always true", 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := runOn(t, tt.src, tt.opts)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
