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
	"go/types"

	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/internal/facts"
	"fillmore-labs.com/bugpattern/match"
	"fillmore-labs.com/bugpattern/visitor"
)

// Deprecated reports calls of deprecated functions and methods.
var Deprecated bugpattern.Checker = &bugpattern.Pattern{
	Meta: bugpattern.Info{
		Name:    "deprecated",
		Summary: "Use of a deprecated function",
		URL:     baseURL + "hdr-deprecated",
	},
	Kinds: []ast.Node{(*ast.CallExpr)(nil)},
	Matcher: match.AllOf(
		match.HasDirectiveOnAnySuperMethod(facts.Deprecated),
		match.Not(match.Enclosing(match.HasDirective(facts.Deprecated), (*ast.FuncDecl)(nil))),
	),
	Message: deprecatedMessage,
}

func deprecatedMessage(n ast.Node, _ visitor.State) string {
	return fmt.Sprintf("%s is deprecated", types.ExprString(ast.Unparen(n.(*ast.CallExpr).Fun)))
}
