// Copyright 2018 The Jadep Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package token provides the read-only view of a lexed file that the
// semantic core uses to turn an AST offset into a line number and a
// source file name for diagnostics — the "LexStream" contract described
// in spec §6, supplied by the (out of scope) lexer.
package token

import "sort"

// Stream maps byte offsets in one source file to line numbers. It is
// read-only from the semantic core's point of view: the lexer/parser
// populates it once, before any semantic pass begins.
type Stream struct {
	FileName string
	source   string

	// lineStarts[i] is the byte offset of the first character of line i+1
	// (1-based line numbers, matching javac/Jikes diagnostics).
	lineStarts []int
}

// NewStream builds a Stream over source, the file's full text.
func NewStream(fileName, source string) *Stream {
	s := &Stream{FileName: fileName, source: source, lineStarts: []int{0}}
	for i, r := range source {
		if r == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

// Line returns the 1-based line number containing the given byte offset.
func (s *Stream) Line(offset int) int {
	i := sort.Search(len(s.lineStarts), func(i int) bool { return s.lineStarts[i] > offset })
	return i // sort.Search returns the count of starts <= offset, which is the 1-based line number
}

// Text returns the raw source text between [offset, end).
func (s *Stream) Text(offset, end int) string {
	if offset < 0 || end > len(s.source) || offset > end {
		return ""
	}
	return s.source[offset:end]
}
