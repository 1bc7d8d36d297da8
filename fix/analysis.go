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
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// AnalysisEdits converts f into edits of [analysis.SuggestedFix] for file with content src.
//
// Import changes are resolved against src and merged with the text edits,
// failing with [ErrConflict] when they overlap.
func (f *Fix) AnalysisEdits(file *token.File, src []byte) ([]analysis.TextEdit, error) {
	if f.Empty() {
		return nil, nil
	}

	if file == nil {
		return nil, ErrNoFile
	}

	if len(src) != file.Size() {
		return nil, fmt.Errorf("%w: source of %s has %d bytes, file has %d", ErrOutOfRange, file.Name(), len(src), file.Size())
	}

	edits := f.edits

	if len(f.adds) > 0 || len(f.removes) > 0 {
		imports, err := ImportEdits(src, f.adds, f.removes)
		if err != nil {
			return nil, err
		}

		b := ForFile(file, src)
		for _, e := range edits {
			b.add(e)
		}

		for _, e := range imports {
			b.add(e)
		}

		if b.err != nil {
			return nil, b.err
		}

		edits = b.edits
	}

	result := make([]analysis.TextEdit, 0, len(edits))

	for _, e := range edits {
		if e.End > file.Size() {
			return nil, &OutOfRangeError{Edit: e, Size: file.Size()}
		}

		result = append(result, analysis.TextEdit{
			Pos:     file.Pos(e.Start),
			End:     file.Pos(e.End),
			NewText: []byte(e.NewText),
		})
	}

	return result, nil
}
