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
	"go/ast"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/internal/astutil"
	"fillmore-labs.com/bugpattern/internal/config"
	"fillmore-labs.com/bugpattern/visitor"
)

// report converts a description into a diagnostic with suggested fixes.
// Fixes that can't be converted are dropped and reported as internal errors.
func report(p *analysis.Pass, unit *visitor.Unit, desc *bugpattern.Description, behavior config.Behavior) {
	node := desc.Node
	if node == nil {
		node = unit.File()
	}

	diagnostic := analysis.Diagnostic{
		Pos:      node.Pos(),
		End:      node.End(),
		Category: desc.Check,
		Message:  desc.Message,
		URL:      desc.URL,
	}

	if !behavior.Enabled(config.NoFixes) && len(desc.Fixes) > 0 {
		diagnostic.SuggestedFixes = suggestedFixes(p, unit, node, desc)
	}

	p.Report(diagnostic)
}

func suggestedFixes(p *analysis.Pass, unit *visitor.Unit, node ast.Node, desc *bugpattern.Description) []analysis.SuggestedFix {
	src, err := unit.Source()
	if err != nil {
		astutil.InternalError(p, node, "Can't read source for %s fix: %v", desc.Check, err)

		return nil
	}

	fixes := make([]analysis.SuggestedFix, 0, len(desc.Fixes))

	for _, f := range desc.Fixes {
		edits, err := f.AnalysisEdits(unit.TokenFile(), src)
		if err != nil {
			astutil.InternalError(p, node, "Can't apply %s fix: %v", desc.Check, err)

			continue
		}

		message := f.Description()
		if message == "" {
			message = desc.Message
		}

		fixes = append(fixes, analysis.SuggestedFix{Message: message, TextEdits: edits})
	}

	return fixes
}
