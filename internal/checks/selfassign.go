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
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"

	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/internal/astutil"
	"fillmore-labs.com/bugpattern/match"
	"fillmore-labs.com/bugpattern/visitor"
)

// SelfAssign reports assignments of a variable to itself.
var SelfAssign bugpattern.Checker = selfAssign{}

type selfAssign struct{}

// removable matches statements that can be deleted without leaving an empty
// syntactic position.
var removable = match.ParentEdgeIs(edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body)

func (selfAssign) Info() bugpattern.Info {
	return bugpattern.Info{
		Name:    "selfassign",
		Summary: "Assignment of a variable to itself",
		URL:     baseURL + "hdr-selfassign",
	}
}

func (selfAssign) NodeTypes() []ast.Node {
	return []ast.Node{(*ast.AssignStmt)(nil)}
}

func (c selfAssign) Check(n ast.Node, s visitor.State) (*bugpattern.Description, error) {
	stmt := n.(*ast.AssignStmt)
	if stmt.Tok != token.ASSIGN {
		return nil, nil
	}

	var same []ast.Expr
	for lhs, rhs := range astutil.AssignedPairs(stmt) {
		if s.SameVariable(lhs, rhs) {
			same = append(same, lhs)
		}
	}

	if len(same) == 0 {
		return nil, nil
	}

	d := bugpattern.Describe(c.Info(), stmt).
		SetMessage(fmt.Sprintf("Assignment of %s to itself has no effect", types.ExprString(same[0])))

	// Only statements consisting entirely of self-assignments are removed
	if len(same) != len(stmt.Lhs) || !removable.Matches(stmt, s) {
		return d.Build(), nil
	}

	f, err := s.FixBuilder().SetDescription("Remove self-assignment").DeleteNode(stmt).Build()
	if err != nil {
		return d.Build(), err
	}

	return d.AddFix(f).Build(), nil
}
