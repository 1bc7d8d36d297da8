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

package bugpattern

import (
	"go/ast"
	"slices"

	"fillmore-labs.com/bugpattern/fix"
)

// Description is a finding of a checker.
type Description struct {
	// Node is the reported syntax node.
	Node ast.Node
	// Check is the name of the reporting checker.
	Check string
	// Message describes the problem.
	Message string
	// URL links to documentation of the bug pattern.
	URL string
	// Fixes are alternative suggested fixes, none of them empty.
	Fixes []*fix.Fix
}

// FilterFixes returns a copy of d keeping only the fixes satisfying keep.
func (d *Description) FilterFixes(keep func(*fix.Fix) bool) *Description {
	c := *d
	c.Fixes = slices.DeleteFunc(slices.Clone(d.Fixes), func(f *fix.Fix) bool { return !keep(f) })

	return &c
}

// DescriptionBuilder creates a [Description].
type DescriptionBuilder struct {
	d Description
}

// Describe starts a description of a finding at n by the checker info.
func Describe(info Info, n ast.Node) *DescriptionBuilder {
	return &DescriptionBuilder{d: Description{
		Node:    n,
		Check:   info.Name,
		Message: info.Summary,
		URL:     info.URL,
	}}
}

// SetMessage overrides the default message, the checker summary.
func (b *DescriptionBuilder) SetMessage(message string) *DescriptionBuilder {
	b.d.Message = message

	return b
}

// SetURL overrides the documentation link.
func (b *DescriptionBuilder) SetURL(url string) *DescriptionBuilder {
	b.d.URL = url

	return b
}

// AddFix adds a suggested fix. Empty fixes are dropped.
func (b *DescriptionBuilder) AddFix(f *fix.Fix) *DescriptionBuilder {
	if !f.Empty() {
		b.d.Fixes = append(b.d.Fixes, f)
	}

	return b
}

// Build returns the description.
func (b *DescriptionBuilder) Build() *Description {
	d := b.d
	d.Fixes = slices.Clone(b.d.Fixes)

	return &d
}
