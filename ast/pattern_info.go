// Copyright 2023-2026 CLDR Tools, Inc.
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

package ast

import (
	"fmt"
	"unicode/utf8"
)

// PatternInfo contains information about the contents of a source pattern.
// A lexer carries one of these while it scans the pattern so that byte
// offsets can be resolved to rune-accurate source positions for error
// messages.
type PatternInfo struct {
	// The raw contents of the source pattern.
	data string
}

// NewPatternInfo creates a new instance for the given pattern text.
func NewPatternInfo(pattern string) *PatternInfo {
	return &PatternInfo{data: pattern}
}

// Pattern returns the raw pattern text.
func (p *PatternInfo) Pattern() string {
	return p.data
}

// SourcePos returns the SourcePos for the given byte offset into the
// pattern. Offsets past the end of the pattern resolve to the position
// just past the final rune, which is where end-of-pattern errors point.
func (p *PatternInfo) SourcePos(offset int) SourcePos {
	if offset > len(p.data) {
		offset = len(p.data)
	}
	col := utf8.RuneCountInString(p.data[:offset]) + 1
	return SourcePos{Offset: offset, Col: col}
}

// SourcePos identifies a location in a source pattern. Patterns are single
// lines, so a position is an offset and a column rather than a line/column
// pair.
type SourcePos struct {
	// Offset is the zero-based byte offset into the pattern.
	Offset int
	// Col is the one-based rune column. It is zero when the position was
	// constructed without access to the pattern text, in which case Offset
	// alone locates the error.
	Col int
}

func (pos SourcePos) String() string {
	if pos.Col > 0 {
		return fmt.Sprintf("char %d", pos.Col)
	}
	return fmt.Sprintf("offset %d", pos.Offset)
}
