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
	"go/constant"
	"go/token"
	"strings"

	"fillmore-labs.com/bugpattern"
	"fillmore-labs.com/bugpattern/fix"
	"fillmore-labs.com/bugpattern/match"
	"fillmore-labs.com/bugpattern/visitor"
)

// ErrorfWrap reports fmt.Errorf calls formatting errors with %v or %s.
var ErrorfWrap bugpattern.Checker = errorfWrap{}

type errorfWrap struct{}

var errorf = match.AllOf(
	match.Function().InPackage("fmt").Named("Errorf"),
	match.Argument(0, match.IgnoreParens(match.KindIs((*ast.BasicLit)(nil)))),
	match.HasArguments(match.AtLeastOne, match.IsError()),
)

func (errorfWrap) Info() bugpattern.Info {
	return bugpattern.Info{
		Name:    "errorfwrap",
		Summary: "Error formatted without wrapping",
		URL:     baseURL + "hdr-errorfwrap",
	}
}

func (errorfWrap) NodeTypes() []ast.Node {
	return []ast.Node{(*ast.CallExpr)(nil)}
}

func (c errorfWrap) Check(n ast.Node, s visitor.State) (*bugpattern.Description, error) {
	call := n.(*ast.CallExpr)
	if call.Ellipsis.IsValid() || !errorf.Matches(call, s) {
		return nil, nil
	}

	lit := ast.Unparen(call.Args[0]).(*ast.BasicLit)
	if lit.Kind != token.STRING || !literalPercents(lit, s) {
		return nil, nil
	}

	verbs, ok := formatVerbs(lit.Value)
	if !ok {
		return nil, nil
	}

	var wrap []verb

	for i, v := range verbs {
		arg := i + 1
		if arg >= len(call.Args) {
			break
		}

		if v.plain && (v.char == 'v' || v.char == 's') && match.IsError().Matches(call.Args[arg], s) {
			wrap = append(wrap, v)
		}
	}

	if len(wrap) == 0 {
		return nil, nil
	}

	d := bugpattern.Describe(c.Info(), call).
		SetMessage(fmt.Sprintf("fmt.Errorf formats an error with %%%c, use %%w to wrap it", wrap[0].char))

	start, err := s.Span(lit)
	if err != nil {
		return d.Build(), err
	}

	b := s.FixBuilder().SetDescription("Wrap error with %w")
	for _, v := range wrap {
		off := start.Start + v.offset
		b.Replace(fix.Span{Start: off, End: off + 1}, "w")
	}

	f, err := b.Build()
	if err != nil {
		return d.Build(), err
	}

	return d.AddFix(f).Build(), nil
}

// literalPercents reports whether all percent signs of the string value are
// spelled out in the literal, so no escape sequence encodes a verb.
func literalPercents(lit *ast.BasicLit, s visitor.State) bool {
	tv, ok := s.Info().Types[lit]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return false
	}

	return strings.Count(constant.StringVal(tv.Value), "%") == strings.Count(lit.Value, "%")
}

// verb is a formatting verb consuming an argument.
type verb struct {
	offset int  // of the verb character in the literal
	char   byte // the verb character
	plain  bool // without flags, width or precision
}

// formatVerbs returns the verbs of a format string literal in source form.
// It reports false for formats using explicit argument indexes, star widths
// or escape sequences in verbs, where the argument mapping is not obvious.
func formatVerbs(lit string) ([]verb, bool) {
	var verbs []verb

	for i := 0; i < len(lit); i++ {
		if lit[i] != '%' {
			continue
		}

		j := i + 1
		for j < len(lit) && strings.IndexByte("+-# 0", lit[j]) >= 0 {
			j++
		}

		for j < len(lit) && ('0' <= lit[j] && lit[j] <= '9' || lit[j] == '.') {
			j++
		}

		if j >= len(lit) {
			return nil, false
		}

		switch c := lit[j]; c {
		case '%':
			if j != i+1 {
				return nil, false
			}

		case '[', '*', '\\', '"', '`':
			return nil, false

		default:
			verbs = append(verbs, verb{offset: j, char: c, plain: j == i+1})
		}

		i = j
	}

	return verbs, true
}
