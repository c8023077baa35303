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

package parser

import (
	"errors"
	"fmt"
)

// Lexical errors. These are wrapped with position information (a
// reporter.ErrorWithPos) before being surfaced, so match them with
// errors.Is.
var (
	// ErrUnterminatedQuote indicates a quoted literal with no closing
	// quote before the end of the pattern.
	ErrUnterminatedQuote = errors.New("unterminated quoted literal")
	// ErrDanglingPadEscape indicates a '*' with no character after it.
	ErrDanglingPadEscape = errors.New("pad escape with no pad character")
	// ErrIllegalCharacter indicates input that is not valid UTF-8.
	ErrIllegalCharacter = errors.New("illegal character")
)

// Syntax errors.
var (
	// ErrEmptyPattern indicates a pattern with no tokens at all.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrMultipleDecimalPoints indicates more than one decimal point in a
	// subpattern.
	ErrMultipleDecimalPoints = errors.New("more than one decimal point")
	// ErrMisplacedPadEscape indicates a pad directive anywhere other than
	// immediately before or after an affix, or a second pad directive in
	// the same subpattern.
	ErrMisplacedPadEscape = errors.New("misplaced pad escape")
	// ErrTooManySubpatterns indicates more than one subpattern separator.
	ErrTooManySubpatterns = errors.New("more than two subpatterns")
)

// ErrIgnoredNegativeNumeric is a sentinel error passed to a warning
// reporter when a pattern's negative subpattern has a numeric part that
// differs from the positive one. The negative numeric part is parsed for
// validity but only the negative prefix and suffix are ever used.
var ErrIgnoredNegativeNumeric = errors.New("numeric part of negative subpattern is ignored; only its affixes are used")

// UnexpectedTokenError indicates a structurally valid token in a position
// the grammar does not allow.
type UnexpectedTokenError struct {
	// Offset is the byte offset of the offending token, or the pattern
	// length when the pattern ended where more input was required.
	Offset int
	// Found describes what was found, e.g. `"."` or "end of pattern".
	Found string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s", e.Found)
}
