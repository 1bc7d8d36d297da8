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

package fix

import (
	"slices"
	"strings"
)

// Fix is an immutable set of non-overlapping text edits and import changes
// for a single file, created by a [Builder].
type Fix struct {
	description string
	edits       []TextEdit
	adds        []Import
	removes     []Import
}

// Description returns the summary set with [Builder.SetDescription].
func (f *Fix) Description() string {
	if f == nil {
		return ""
	}

	return f.description
}

// Edits returns the text edits, ordered by span.
func (f *Fix) Edits() []TextEdit {
	if f == nil {
		return nil
	}

	return slices.Clone(f.edits)
}

// ImportsToAdd returns the requested imports.
func (f *Fix) ImportsToAdd() []Import {
	if f == nil {
		return nil
	}

	return slices.Clone(f.adds)
}

// ImportsToRemove returns the imports requested for removal.
func (f *Fix) ImportsToRemove() []Import {
	if f == nil {
		return nil
	}

	return slices.Clone(f.removes)
}

// Empty reports whether f changes nothing.
func (f *Fix) Empty() bool {
	return f == nil || len(f.edits) == 0 && len(f.adds) == 0 && len(f.removes) == 0
}

func (f *Fix) String() string {
	if f.Empty() {
		return "no changes"
	}

	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteString("; ") // ignore error
		}
	}

	for _, e := range f.edits {
		sep()
		b.WriteString("replace ") // ignore error
		b.WriteString(e.String()) // ignore error
	}

	for _, i := range f.adds {
		sep()
		b.WriteString("import ") // ignore error
		b.WriteString(i.String()) // ignore error
	}

	for _, i := range f.removes {
		sep()
		b.WriteString("drop import ") // ignore error
		b.WriteString(i.String())     // ignore error
	}

	return b.String()
}
