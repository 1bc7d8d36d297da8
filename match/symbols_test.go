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

package match_test

import (
	"go/ast"
	"go/types"
	"testing"

	"fillmore-labs.com/bugpattern/internal/testsource"
	. "fillmore-labs.com/bugpattern/match"
)

const symbolSrc = `package test

import (
	"errors"
	"os"
)

type Stopper interface {
	// Stop stops.
	//
	// Deprecated: Use Shutdown.
	Stop()
}

type service struct {
	count int
	ratio float64
}

func (*service) Stop() {}

//go:noinline
func Run() {}

var global = errors.New("global")

func _() {
	var s service
	s.Stop()
	Run()
	_ = s.count
	_ = s.ratio
	_ = global
	_ = os.Stdin
	_ = &s
}
`

func TestSymbolsAndTypes(t *testing.T) {
	t.Parallel()

	src := testsource.Load(t, symbolSrc)

	tests := []struct {
		name    string
		expr    string
		matcher Matcher
		want    bool
	}{
		{"super method directive", "s.Stop()", HasDirectiveOnAnySuperMethod("deprecated"), true},
		{"own directive only", "s.Stop()", HasDirective("deprecated"), false},
		{"go directive", "Run()", HasDirective("go:noinline"), true},
		{"missing directive", "Run()", HasDirectiveOnAnySuperMethod("deprecated"), false},
		{"field", "s.count", IsField(), true},
		{"variable", "global", IsVariable(), true},
		{"field is no variable", "s.count", IsVariable(), false},
		{"package level", "global", IsPackageLevel(), true},
		{"local", "s", IsPackageLevel(), false},
		{"exported", "Run()", IsExported(), true},
		{"unexported", "s.count", HasVisibility(Unexported), true},
		{"error", "global", IsError(), true},
		{"not error", "s.count", IsError(), false},
		{"float", "s.ratio", IsFloat(), true},
		{"pointer", "&s", IsPointer(), true},
		{"subtype", "os.Stdin", IsSubtypeOf("io.Writer"), true},
		{"subtype of interface", "&s", IsSubtypeOf("test.Stopper"), true},
		{"value not subtype", "s", IsSubtypeOf("test.Stopper"), false},
		{"same type", "s.count", IsSameType("int"), true},
		{"has pointer method", "s", HasMethod("Stop"), true},
		{"has no method", "s.count", HasMethod("Stop"), false},
		{"receiver", "s.Stop()", Receiver(IsSameType("test.service")), true},
		{"no receiver", "os.Stdin", Receiver(Anything()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, s := testsource.Find(t, src, func(e ast.Expr) bool {
				return types.ExprString(e) == tt.expr
			})

			if got := tt.matcher.Matches(n, s); got != tt.want {
				t.Errorf("Got %v, want %v", got, tt.want)
			}
		})
	}
}
