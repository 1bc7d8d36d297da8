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
	"fmt"
	"go/ast"

	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/fix"
	"fillmore-labs.com/bugpattern/match"
	"fillmore-labs.com/bugpattern/visitor"
)

// ReplaceAll reports strings.Replace and bytes.Replace calls replacing all occurrences.
var ReplaceAll bugpattern.Checker = &bugpattern.Pattern{
	Meta: bugpattern.Info{
		Name:    "replaceall",
		Summary: "Replace with n = -1 should be ReplaceAll",
		URL:     baseURL + "hdr-replaceall",
	},
	Kinds: []ast.Node{(*ast.CallExpr)(nil)},
	Matcher: match.AllOf(
		match.AnyOf(
			match.Function().InPackage("strings").Named("Replace"),
			match.Function().InPackage("bytes").Named("Replace"),
		),
		match.ArgumentCount(4),
		match.Argument(3, match.IntLiteral(-1)),
	),
	Message: replaceAllMessage,
	Fix:     replaceAllFix,
}

func replaceAllMessage(n ast.Node, s visitor.State) string {
	pkg := s.Callee(n.(*ast.CallExpr)).Pkg().Name()

	return fmt.Sprintf("Use %s.ReplaceAll instead of %s.Replace with n = -1", pkg, pkg)
}

func replaceAllFix(n ast.Node, s visitor.State) (*fix.Fix, error) {
	call := n.(*ast.CallExpr)

	var name *ast.Ident
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.SelectorExpr:
		name = fun.Sel

	case *ast.Ident:
		name = fun // dot import

	default:
		return nil, nil
	}

	return s.FixBuilder().
		SetDescription("Use ReplaceAll").
		ReplaceNode(name, "ReplaceAll").
		DeleteListElement(call.Args, 3).
		Build()
}
