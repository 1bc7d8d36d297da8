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

// Package fix models suggested fixes as immutable sets of text edits over
// byte offsets of a single file, plus import changes.
//
// A [Builder] collects edits from explicit spans or syntax nodes, rejecting
// overlapping edits as soon as they are added. [Render] applies a [Fix] to
// source text; [Fix.AnalysisEdits] converts it for use in an
// [golang.org/x/tools/go/analysis.SuggestedFix].
package fix
