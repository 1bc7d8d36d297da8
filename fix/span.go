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
	"cmp"
	"fmt"
	"strconv"
)

// Span is a half-open range [Start, End) of byte offsets into a file.
type Span struct {
	Start, End int
}

// Valid reports whether the span is non-negative and not reversed.
func (s Span) Valid() bool {
	return 0 <= s.Start && s.Start <= s.End
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether s and o share at least one byte, or one of them is
// an insertion strictly inside the other. Insertions at the same offset do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

func (s Span) String() string {
	return strconv.Itoa(s.Start) + ":" + strconv.Itoa(s.End)
}

func compareSpans(a, b Span) int {
	return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
}

// TextEdit replaces the bytes of Span with NewText.
// A zero-length span is an insertion, an empty NewText a deletion.
type TextEdit struct {
	Span
	NewText string
}

func (e TextEdit) String() string {
	return fmt.Sprintf("%v:%q", e.Span, e.NewText)
}

// Import names an import declaration by path and optional local name.
type Import struct {
	Name string
	Path string
}

func (i Import) String() string {
	if i.Name == "" {
		return strconv.Quote(i.Path)
	}

	return i.Name + " " + strconv.Quote(i.Path)
}

func compareImports(a, b Import) int {
	return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Name, b.Name))
}
