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

import "fmt"

// TokenKind classifies a pattern token.
type TokenKind int

const (
	// TokenDigit0 is a digit placeholder '0'-'9'. A zero sets a minimum
	// digit position; '1'-'9' also carry their literal value into the
	// rounding-increment computation. The token's Text retains the digit.
	TokenDigit0 TokenKind = iota
	// TokenDigitHash is the optional-digit placeholder '#'.
	TokenDigitHash
	// TokenSignificantDigit is the significant-digit placeholder '@'.
	TokenSignificantDigit
	// TokenDecimalSep is the decimal point '.'.
	TokenDecimalSep
	// TokenGroupSep is the grouping separator ','.
	TokenGroupSep
	// TokenMinus is the minus sign '-'.
	TokenMinus
	// TokenPlus is the plus sign '+'.
	TokenPlus
	// TokenPercent is the percent sign '%'.
	TokenPercent
	// TokenPermille is the permille sign '‰' (U+2030).
	TokenPermille
	// TokenCurrencySign is a run of currency signs '¤' (U+00A4), collapsed
	// into one token whose RunLength records how many.
	TokenCurrencySign
	// TokenSubpatternSep is the subpattern separator ';'.
	TokenSubpatternSep
	// TokenPadEscape is a pad directive: '*' followed by the pad
	// character, recorded in PadChar.
	TokenPadEscape
	// TokenExponentMarker is the exponent marker 'E'.
	TokenExponentMarker
	// TokenLiteral is a run of literal text, quoting already resolved.
	TokenLiteral
)

// String returns a human-readable description of the kind, used in
// unexpected-token error messages.
func (k TokenKind) String() string {
	switch k {
	case TokenDigit0:
		return "digit placeholder"
	case TokenDigitHash:
		return `"#"`
	case TokenSignificantDigit:
		return `"@"`
	case TokenDecimalSep:
		return `"."`
	case TokenGroupSep:
		return `","`
	case TokenMinus:
		return `"-"`
	case TokenPlus:
		return `"+"`
	case TokenPercent:
		return `"%"`
	case TokenPermille:
		return `"‰"`
	case TokenCurrencySign:
		return `"¤"`
	case TokenSubpatternSep:
		return `";"`
	case TokenPadEscape:
		return "pad directive"
	case TokenExponentMarker:
		return `"E"`
	case TokenLiteral:
		return "literal text"
	default:
		return fmt.Sprintf("token(%d)", int(k))
	}
}

// Token is a single lexical unit of a pattern. Tokens are ephemeral:
// produced once per compile and discarded after parsing.
type Token struct {
	// Kind classifies the token.
	Kind TokenKind
	// Text is the token's resolved text. For TokenLiteral it is the
	// literal with quoting removed; for TokenDigit0 it is the digit
	// character; for other kinds it is the raw source character(s).
	Text string
	// Offset is the byte offset into the pattern of the token's first
	// character.
	Offset int
	// RunLength is the number of consecutive currency signs, for
	// TokenCurrencySign only.
	RunLength int
	// PadChar is the pad character, for TokenPadEscape only.
	PadChar rune
}

// String returns a description of the token for error messages.
func (t Token) String() string {
	if t.Kind == TokenLiteral {
		return fmt.Sprintf("literal %q", t.Text)
	}
	return t.Kind.String()
}
