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
	"go/ast"
	"go/token"
	"slices"
)

// Builder accumulates the edits of a [Fix].
//
// Edits are kept sorted by span and checked for conflicts as they are added.
// The first failing operation is sticky: subsequent calls are ignored and
// [Builder.Build] returns the error.
type Builder struct {
	file        *token.File
	src         []byte
	description string
	edits       []TextEdit
	adds        []Import
	removes     []Import
	err         error
}

// New returns a builder working on explicit offsets only.
func New() *Builder {
	return &Builder{}
}

// ForFile returns a builder that also accepts nodes of file.
// src is the file content, used by operations that move existing text. It may be nil.
func ForFile(file *token.File, src []byte) *Builder {
	return &Builder{file: file, src: src}
}

// Err returns the first error encountered, if any.
func (b *Builder) Err() error {
	return b.err
}

// Empty reports whether the builder holds neither edits nor import changes.
func (b *Builder) Empty() bool {
	return len(b.edits) == 0 && len(b.adds) == 0 && len(b.removes) == 0
}

// SetDescription sets a short summary of the fix, shown to the user.
func (b *Builder) SetDescription(description string) *Builder {
	b.description = description

	return b
}

// Replace replaces the text of span.
func (b *Builder) Replace(span Span, text string) *Builder {
	return b.add(TextEdit{span, text})
}

// InsertBefore inserts text at the start of span.
func (b *Builder) InsertBefore(span Span, text string) *Builder {
	return b.add(TextEdit{Span{span.Start, span.Start}, text})
}

// InsertAfter inserts text at the end of span.
func (b *Builder) InsertAfter(span Span, text string) *Builder {
	return b.add(TextEdit{Span{span.End, span.End}, text})
}

// Delete removes the text of span.
func (b *Builder) Delete(span Span) *Builder {
	return b.add(TextEdit{span, ""})
}

// ReplaceNode replaces the source of n.
func (b *Builder) ReplaceNode(n ast.Node, text string) *Builder {
	return b.ReplaceNodeAdjusted(n, text, 0, 0)
}

// ReplaceNodeAdjusted replaces the source of n, with start and end moved by the given deltas.
func (b *Builder) ReplaceNodeAdjusted(n ast.Node, text string, startDelta, endDelta int) *Builder {
	span, ok := b.span(n)
	if !ok {
		return b
	}

	return b.Replace(Span{span.Start + startDelta, span.End + endDelta}, text)
}

// PrefixWith inserts text before n.
func (b *Builder) PrefixWith(n ast.Node, text string) *Builder {
	span, ok := b.span(n)
	if !ok {
		return b
	}

	return b.InsertBefore(span, text)
}

// PostfixWith inserts text after n.
func (b *Builder) PostfixWith(n ast.Node, text string) *Builder {
	span, ok := b.span(n)
	if !ok {
		return b
	}

	return b.InsertAfter(span, text)
}

// DeleteNode removes the source of n.
func (b *Builder) DeleteNode(n ast.Node) *Builder {
	span, ok := b.span(n)
	if !ok {
		return b
	}

	return b.Delete(span)
}

// Swap exchanges the source texts of x and y.
func (b *Builder) Swap(x, y ast.Node) *Builder {
	xs, ok := b.span(x)
	if !ok {
		return b
	}

	ys, ok := b.span(y)
	if !ok {
		return b
	}

	if b.src == nil {
		return b.fail(ErrNoSource)
	}

	xt, yt := string(b.src[xs.Start:xs.End]), string(b.src[ys.Start:ys.End])

	return b.Replace(xs, yt).Replace(ys, xt)
}

// DeleteListElement removes list[i] together with one adjacent separator,
// the following one if present, otherwise the preceding one.
func (b *Builder) DeleteListElement(list []ast.Expr, i int) *Builder {
	if b.err != nil {
		return b
	}

	if i < 0 || i >= len(list) {
		return b.fail(fmt.Errorf("%w: element %d of list with %d elements", ErrInvalidSpan, i, len(list)))
	}

	elem, ok := b.span(list[i])
	if !ok {
		return b
	}

	switch {
	case i+1 < len(list):
		next, ok := b.span(list[i+1])
		if !ok {
			return b
		}

		return b.Delete(Span{elem.Start, next.Start})

	case i > 0:
		prev, ok := b.span(list[i-1])
		if !ok {
			return b
		}

		return b.Delete(Span{prev.End, elem.End})

	default:
		return b.Delete(elem)
	}
}

// AddImport requests an import of path, if no equivalent import exists.
func (b *Builder) AddImport(path string) *Builder {
	return b.AddNamedImport("", path)
}

// AddNamedImport requests an import of path under name.
func (b *Builder) AddNamedImport(name, path string) *Builder {
	b.adds = appendImport(b.adds, Import{Name: name, Path: path})

	return b
}

// RemoveImport requests removal of every import of path.
func (b *Builder) RemoveImport(path string) *Builder {
	b.removes = appendImport(b.removes, Import{Path: path})

	return b
}

// Merge adds all edits and import changes of f.
//
// Identical edits collapse and overlapping distinct edits are a conflict,
// independent of the merge order. Distinct insertions at the same offset are
// kept in order, those of f following the ones already present, so merging
// a and b can render differently from merging b and a.
func (b *Builder) Merge(f *Fix) *Builder {
	if f == nil {
		return b
	}

	for _, e := range f.edits {
		b.add(e)
	}

	for _, i := range f.adds {
		b.adds = appendImport(b.adds, i)
	}

	for _, i := range f.removes {
		b.removes = appendImport(b.removes, i)
	}

	if b.description == "" {
		b.description = f.description
	}

	return b
}

// MergeBuilder merges the state of another builder, including its error.
func (b *Builder) MergeBuilder(o *Builder) *Builder {
	if o.err != nil {
		return b.fail(o.err)
	}

	f, _ := o.Build()

	return b.Merge(f)
}

// Build returns the immutable [Fix] or the first error encountered.
func (b *Builder) Build() (*Fix, error) {
	if b.err != nil {
		return nil, b.err
	}

	return &Fix{
		description: b.description,
		edits:       slices.Clone(b.edits),
		adds:        slices.Clone(b.adds),
		removes:     slices.Clone(b.removes),
	}, nil
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}

	return b
}

func (b *Builder) add(e TextEdit) *Builder {
	if b.err != nil {
		return b
	}

	if !e.Valid() {
		return b.fail(fmt.Errorf("%w: %v", ErrInvalidSpan, e.Span))
	}

	if b.file != nil && e.End > b.file.Size() {
		return b.fail(&OutOfRangeError{Edit: e, Size: b.file.Size()})
	}

	for _, x := range b.edits {
		if x == e {
			return b
		}

		if x.Overlaps(e.Span) {
			return b.fail(&ConflictError{Existing: x, Added: e})
		}
	}

	// insert after all edits with an equal span to keep insertion order
	i, found := slices.BinarySearchFunc(b.edits, e.Span, func(x TextEdit, s Span) int { return compareSpans(x.Span, s) })
	for found && i < len(b.edits) && b.edits[i].Span == e.Span {
		i++
	}

	b.edits = slices.Insert(b.edits, i, e)

	return b
}

// span returns the offsets of n in the builder's file.
func (b *Builder) span(n ast.Node) (Span, bool) {
	if b.err != nil {
		return Span{}, false
	}

	span, err := NodeSpan(b.file, n)
	if err != nil {
		b.fail(err)

		return Span{}, false
	}

	return span, true
}

// NodeSpan returns the offsets of n in file.
func NodeSpan(file *token.File, n ast.Node) (Span, error) {
	if file == nil {
		return Span{}, ErrNoFile
	}

	pos, end := n.Pos(), n.End()
	if !pos.IsValid() || !end.IsValid() {
		return Span{}, fmt.Errorf("%w: %T has no position", ErrInvalidSpan, n)
	}

	base := file.Base()
	span := Span{int(pos) - base, int(end) - base}

	if !span.Valid() || span.End > file.Size() {
		return Span{}, fmt.Errorf("%w: %T at %v outside of %s", ErrInvalidSpan, n, span, file.Name())
	}

	return span, nil
}

func appendImport(imports []Import, i Import) []Import {
	if slices.Contains(imports, i) {
		return imports
	}

	return append(imports, i)
}
