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
	"strings"

	"github.com/cldrtools/patterncompile/ast"
	"github.com/cldrtools/patterncompile/reporter"
)

// Parse tokenizes the given pattern and parses the tokens into an AST. A
// nil handler fails on the first error.
func Parse(pattern string, handler *reporter.Handler) (*ast.ParsedFormat, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	tokens, err := Tokenize(pattern, handler)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens, ast.NewPatternInfo(pattern), handler)
}

// ParseTokens parses a pre-lexed token sequence into an AST. Error
// positions carry byte offsets only, since the original pattern text is
// not available to compute rune columns.
func ParseTokens(tokens []Token, handler *reporter.Handler) (*ast.ParsedFormat, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	return parseTokens(tokens, nil, handler)
}

func parseTokens(tokens []Token, info *ast.PatternInfo, handler *reporter.Handler) (*ast.ParsedFormat, error) {
	p := &patternParser{tokens: tokens, info: info, handler: handler}
	res := p.parsePattern()
	if err := handler.Error(); err != nil {
		return nil, err
	}
	return res, nil
}

// patternParser is a single-pass recursive-descent parser over the token
// sequence. Its only state is the cursor position and the per-subpattern
// bookkeeping needed to validate pad placement and sign markers.
type patternParser struct {
	tokens  []Token
	pos     int
	info    *ast.PatternInfo
	handler *reporter.Handler
}

// subpatternState tracks the constraints that hold across a whole
// subpattern: at most one pad directive, and at most one percent or
// permille sign (the two are mutually exclusive).
type subpatternState struct {
	sawPercent  bool
	sawPermille bool
	sawPad      bool
	padOffset   int
}

func (p *patternParser) parsePattern() *ast.ParsedFormat {
	if len(p.tokens) == 0 {
		p.fail(0, ErrEmptyPattern)
		return nil
	}

	positive := p.parseSubpattern()
	if positive == nil {
		return nil
	}

	var negative *ast.Subpattern
	var sepOffset int
	if tok, ok := p.peek(); ok && tok.Kind == TokenSubpatternSep {
		sepOffset = tok.Offset
		p.next()
		negative = p.parseSubpattern()
		if negative == nil {
			return nil
		}
	}

	if tok, ok := p.peek(); ok {
		if tok.Kind == TokenSubpatternSep {
			p.fail(tok.Offset, ErrTooManySubpatterns)
		} else {
			p.unexpected(tok)
		}
		return nil
	}

	// The negative numeric part is parsed for validity and retained in the
	// AST, but its digit data never reaches the descriptor. Flag patterns
	// where it disagrees with the positive one.
	if negative != nil && negative.Numeric.Raw != positive.Numeric.Raw {
		p.handler.HandleWarningWithPos(p.sourcePos(sepOffset), ErrIgnoredNegativeNumeric)
	}

	return &ast.ParsedFormat{Positive: positive, Negative: negative}
}

func (p *patternParser) parseSubpattern() *ast.Subpattern {
	var st subpatternState

	prefix, ok := p.parseAffix(&st)
	if !ok {
		return nil
	}
	numeric := p.parseNumeric()
	if numeric == nil {
		return nil
	}
	suffix, ok := p.parseAffix(&st)
	if !ok {
		return nil
	}

	if tok, ok := p.peek(); ok && tok.Kind != TokenSubpatternSep {
		if tok.Kind == TokenDecimalSep {
			p.fail(tok.Offset, ErrMultipleDecimalPoints)
		} else {
			p.unexpected(tok)
		}
		return nil
	}

	sub := &ast.Subpattern{Prefix: prefix, Numeric: numeric, Suffix: suffix}
	if !p.resolvePad(sub, &st) {
		return nil
	}
	return sub
}

// parseAffix consumes affix elements until a digit placeholder, decimal
// point, subpattern separator, or the end of the pattern. Adjacent literal
// runs merge into a single element; an exponent marker outside the numeric
// core is plain literal text.
func (p *patternParser) parseAffix(st *subpatternState) ([]ast.Element, bool) {
	var elems []ast.Element
	for {
		tok, ok := p.peek()
		if !ok {
			return elems, true
		}
		switch tok.Kind {
		case TokenLiteral, TokenExponentMarker:
			elems = appendLiteral(elems, tok.Text)
		case TokenCurrencySign:
			elems = append(elems, &ast.CurrencyElement{Size: tok.RunLength})
		case TokenPercent:
			if st.sawPercent || st.sawPermille {
				p.unexpected(tok)
				return nil, false
			}
			st.sawPercent = true
			elems = append(elems, &ast.PercentElement{})
		case TokenPermille:
			if st.sawPercent || st.sawPermille {
				p.unexpected(tok)
				return nil, false
			}
			st.sawPermille = true
			elems = append(elems, &ast.PermilleElement{})
		case TokenPlus:
			elems = append(elems, &ast.PlusElement{})
		case TokenMinus:
			elems = append(elems, &ast.MinusElement{})
		case TokenPadEscape:
			if st.sawPad {
				p.fail(tok.Offset, ErrMisplacedPadEscape)
				return nil, false
			}
			st.sawPad = true
			st.padOffset = tok.Offset
			elems = append(elems, &ast.PadElement{Char: tok.PadChar})
		default:
			return elems, true
		}
		p.next()
	}
}

// parseNumeric consumes the numeric core: the integer run, an optional
// fraction run, and an optional exponent clause. At least one digit
// placeholder must be present somewhere in the core.
func (p *patternParser) parseNumeric() *ast.NumericElement {
	var raw, integer strings.Builder

	tok, ok := p.peek()
	if !ok {
		p.unexpectedEnd()
		return nil
	}
	switch tok.Kind {
	case TokenDigit0, TokenDigitHash, TokenSignificantDigit, TokenDecimalSep:
	default:
		p.unexpected(tok)
		return nil
	}
	coreStart := tok

	// integer run, grouping separators included
integerRun:
	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		switch tok.Kind {
		case TokenDigit0, TokenDigitHash, TokenSignificantDigit:
			integer.WriteString(tok.Text)
			raw.WriteString(tok.Text)
		case TokenGroupSep:
			if integer.Len() == 0 {
				p.unexpected(tok)
				return nil
			}
			integer.WriteString(",")
			raw.WriteString(",")
		default:
			break integerRun
		}
		p.next()
	}

	num := &ast.NumericElement{}

	if tok, ok := p.peek(); ok && tok.Kind == TokenDecimalSep {
		p.next()
		raw.WriteString(".")
		var fraction strings.Builder
		for {
			tok, ok := p.peek()
			if !ok || (tok.Kind != TokenDigit0 && tok.Kind != TokenDigitHash) {
				break
			}
			fraction.WriteString(tok.Text)
			raw.WriteString(tok.Text)
			p.next()
		}
		num.Fraction = fraction.String()
		if tok, ok := p.peek(); ok && tok.Kind == TokenDecimalSep {
			p.fail(tok.Offset, ErrMultipleDecimalPoints)
			return nil
		}
	}

	if tok, ok := p.peek(); ok && tok.Kind == TokenExponentMarker {
		p.next()
		raw.WriteString("E")
		exp := &ast.ExponentSpec{}
		if tok, ok := p.peek(); ok && tok.Kind == TokenPlus {
			exp.Plus = true
			raw.WriteString("+")
			p.next()
		}
		var digits strings.Builder
		for {
			tok, ok := p.peek()
			if !ok || tok.Kind != TokenDigit0 {
				break
			}
			digits.WriteString(tok.Text)
			raw.WriteString(tok.Text)
			p.next()
		}
		if digits.Len() == 0 {
			if tok, ok := p.peek(); ok {
				p.unexpected(tok)
			} else {
				p.unexpectedEnd()
			}
			return nil
		}
		exp.Digits = digits.String()
		num.Exponent = exp
	}

	num.Integer = integer.String()
	num.Raw = raw.String()

	if num.Integer == "" && num.Fraction == "" {
		p.unexpected(coreStart)
		return nil
	}
	return num
}

// resolvePad validates pad placement and records which of the four legal
// positions the subpattern uses: immediately before or after the prefix,
// or immediately before or after the suffix.
func (p *patternParser) resolvePad(sub *ast.Subpattern, st *subpatternState) bool {
	sub.PadPos = ast.PadNone
	if !st.sawPad {
		return true
	}
	if i := padIndex(sub.Prefix); i >= 0 {
		switch {
		case i == 0:
			sub.PadPos = ast.PadBeforePrefix
		case i == len(sub.Prefix)-1:
			sub.PadPos = ast.PadAfterPrefix
		default:
			p.fail(st.padOffset, ErrMisplacedPadEscape)
			return false
		}
		return true
	}
	if i := padIndex(sub.Suffix); i >= 0 {
		switch {
		case i == 0:
			sub.PadPos = ast.PadBeforeSuffix
		case i == len(sub.Suffix)-1:
			sub.PadPos = ast.PadAfterSuffix
		default:
			p.fail(st.padOffset, ErrMisplacedPadEscape)
			return false
		}
		return true
	}
	p.fail(st.padOffset, ErrMisplacedPadEscape)
	return false
}

func padIndex(elems []ast.Element) int {
	for i, el := range elems {
		if _, ok := el.(*ast.PadElement); ok {
			return i
		}
	}
	return -1
}

func appendLiteral(elems []ast.Element, text string) []ast.Element {
	if n := len(elems); n > 0 {
		if lit, ok := elems[n-1].(*ast.LiteralElement); ok {
			lit.Text += text
			return elems
		}
	}
	return append(elems, &ast.LiteralElement{Text: text})
}

func (p *patternParser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *patternParser) next() {
	p.pos++
}

func (p *patternParser) unexpected(tok Token) {
	p.fail(tok.Offset, &UnexpectedTokenError{Offset: tok.Offset, Found: tok.String()})
}

func (p *patternParser) unexpectedEnd() {
	off := p.endOffset()
	p.fail(off, &UnexpectedTokenError{Offset: off, Found: "end of pattern"})
}

func (p *patternParser) endOffset() int {
	if p.info != nil {
		return len(p.info.Pattern())
	}
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		return last.Offset + len(last.Text)
	}
	return 0
}

func (p *patternParser) fail(offset int, err error) {
	_ = p.handler.HandleErrorWithPos(p.sourcePos(offset), err)
}

func (p *patternParser) sourcePos(offset int) ast.SourcePos {
	if p.info != nil {
		return p.info.SourcePos(offset)
	}
	return ast.SourcePos{Offset: offset}
}
