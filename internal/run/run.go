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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"reflect"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/internal/astutil"
	"fillmore-labs.com/bugpattern/internal/config"
	"fillmore-labs.com/bugpattern/internal/facts"
	"fillmore-labs.com/bugpattern/visitor"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the enabled checkers on all files of the pass.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("bugpattern: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "BugPattern")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	cache := visitor.NewCache(p)

	// Publish directives for dependent packages
	trace.WithRegion(ctx, "ExportFacts", func() {
		facts.Export(p, facts.Collect(p.TypesInfo, p.Files))
	})

	d := newDispatcher(r.checkers())
	if d.empty() {
		return nil, nil
	}

	types := append(slices.Clip(d.types()), (*ast.FuncDecl)(nil))

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc, "") {
			continue
		}

		unit := cache.Unit(file)

		trace.WithRegion(ctx, "CheckFile", func() {
			f.Inspect(types, func(c inspector.Cursor) bool {
				n := c.Node()

				// Skip functions with nolint comment
				if fun, ok := n.(*ast.FuncDecl); ok && astutil.DocHasNoLint(fun.Doc, "") {
					return false
				}

				for _, ch := range d.checkers(n) {
					desc := check(p, ch, n, unit.At(c))
					if desc == nil || suppressed(currentFile, n, desc) {
						continue
					}

					report(p, unit, desc, r.Behavior)
				}

				return true
			})
		})
	}

	return nil, nil
}

// suppressed reports whether the finding is on a line with a nolint comment.
func suppressed(currentFile astutil.CurrentFile, n ast.Node, desc *bugpattern.Description) bool {
	if desc.Node != nil {
		n = desc.Node
	}

	return currentFile.NoLintComment(n.Pos(), desc.Check)
}

// check runs a single checker, containing its panics.
func check(p *analysis.Pass, ch bugpattern.Checker, n ast.Node, s visitor.State) (desc *bugpattern.Description) {
	defer func() {
		if err := astutil.Recovered(recover()); err != nil {
			astutil.InternalError(p, n, "Checker %s failed: %v", ch.Info().Name, err)

			desc = nil
		}
	}()

	desc, err := ch.Check(n, s)
	if err != nil {
		astutil.InternalError(p, n, "Checker %s can't build fix: %v", ch.Info().Name, err)
	}

	return desc
}

// dispatcher maps node types to the checkers inspecting them.
type dispatcher struct {
	byType map[reflect.Type][]bugpattern.Checker
	protos []ast.Node
}

func newDispatcher(checkers []bugpattern.Checker) dispatcher {
	d := dispatcher{byType: make(map[reflect.Type][]bugpattern.Checker)}

	for _, ch := range checkers {
		for _, proto := range ch.NodeTypes() {
			t := reflect.TypeOf(proto)
			if _, ok := d.byType[t]; !ok {
				d.protos = append(d.protos, proto)
			}

			d.byType[t] = append(d.byType[t], ch)
		}
	}

	return d
}

func (d dispatcher) empty() bool {
	return len(d.protos) == 0
}

func (d dispatcher) types() []ast.Node {
	return d.protos
}

func (d dispatcher) checkers(n ast.Node) []bugpattern.Checker {
	return d.byType[reflect.TypeOf(n)]
}
