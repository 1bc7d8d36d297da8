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
	"bytes"
	"fmt"
)

// Render applies f to src and returns the edited text.
//
// Text edits are applied first. Import changes are then computed against the
// edited text and applied, so an import added by f is not duplicated when the
// text edits already introduced it.
func Render(src []byte, f *Fix) ([]byte, error) {
	if f.Empty() {
		return bytes.Clone(src), nil
	}

	out, err := Apply(src, f.edits)
	if err != nil {
		return nil, err
	}

	if len(f.adds) == 0 && len(f.removes) == 0 {
		return out, nil
	}

	edits, err := ImportEdits(out, f.adds, f.removes)
	if err != nil {
		return nil, err
	}

	return Apply(out, edits)
}

// Apply applies edits, which must be sorted and non-overlapping, to src.
func Apply(src []byte, edits []TextEdit) ([]byte, error) {
	size := len(src)
	for _, e := range edits {
		size += len(e.NewText) - e.Len()
	}

	var out bytes.Buffer
	out.Grow(max(size, 0))

	last := 0
	for i, e := range edits {
		switch {
		case !e.Valid():
			return nil, fmt.Errorf("%w: %v", ErrInvalidSpan, e.Span)

		case e.End > len(src):
			return nil, &OutOfRangeError{Edit: e, Size: len(src)}

		case e.Start < last:
			return nil, &ConflictError{Existing: edits[i-1], Added: e}
		}

		out.Write(src[last:e.Start]) // ignore error
		out.WriteString(e.NewText)    // ignore error
		last = e.End
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes(), nil
}
