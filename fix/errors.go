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
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpan is returned for reversed, negative or unpositioned spans.
	ErrInvalidSpan = errors.New("invalid span")

	// ErrConflict is returned when two edits of a fix overlap.
	ErrConflict = errors.New("conflicting edits")

	// ErrOutOfRange is returned when an edit extends past the end of the source.
	ErrOutOfRange = errors.New("edit out of range")

	// ErrNoFile is returned when a node-based edit is requested from a builder without file information.
	ErrNoFile = errors.New("no file information")

	// ErrNoSource is returned when an edit needs the source text, but none is available.
	ErrNoSource = errors.New("no source text")

	// ErrParse is returned when the imports of an edited source can't be parsed.
	ErrParse = errors.New("can't parse imports")
)

// ConflictError describes two overlapping edits.
type ConflictError struct {
	Existing, Added TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %v overlaps %v", ErrConflict, e.Added, e.Existing)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// OutOfRangeError describes an edit that does not fit the source.
type OutOfRangeError struct {
	Edit TextEdit
	Size int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%v: %v exceeds source of length %d", ErrOutOfRange, e.Edit, e.Size)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }
