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
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cldrtools/patterncompile/ast"
	"github.com/cldrtools/patterncompile/reporter"
)

const (
	currencySign = '¤' // ¤
	permilleSign = '‰' // ‰
)

type runeReader struct {
	data string
	pos  int
	err  error
}

func (rr *runeReader) readRune() (r rune, size int, err error) {
	if rr.err != nil {
		return 0, 0, rr.err
	}
	if rr.pos == len(rr.data) {
		rr.err = io.EOF
		return 0, 0, rr.err
	}
	r, sz := utf8.DecodeRuneInString(rr.data[rr.pos:])
	if r == utf8.RuneError && sz <= 1 {
		rr.err = fmt.Errorf("invalid UTF8 at offset %d: %x", rr.pos, rr.data[rr.pos])
		return 0, 0, rr.err
	}
	rr.pos += sz
	return r, sz, nil
}

func (rr *runeReader) offset() int {
	return rr.pos
}

func (rr *runeReader) unreadRune(sz int) {
	newPos := rr.pos - sz
	if newPos < 0 {
		panic("unread past start of pattern")
	}
	rr.pos = newPos
}

// skipByte clears a decoding error and advances past the offending byte so
// that lexing can continue when the reporter asks for more errors.
func (rr *runeReader) skipByte() {
	rr.err = nil
	if rr.pos < len(rr.data) {
		rr.pos++
	}
}

type patternLex struct {
	input   *runeReader
	info    *ast.PatternInfo
	handler *reporter.Handler

	tokens []Token

	// pending literal run; litStart is -1 when no run is open
	litStart int
	lit      strings.Builder
}

// Tokenize classifies the raw pattern string into a sequence of typed
// tokens, resolving quoting and collapsing runs of currency signs. A nil
// handler fails on the first lexical error; with a custom reporter the
// lexer keeps scanning so that every error in the pattern is reported in
// one pass.
func Tokenize(pattern string, handler *reporter.Handler) ([]Token, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	l := &patternLex{
		input:    &runeReader{data: pattern},
		info:     ast.NewPatternInfo(pattern),
		handler:  handler,
		litStart: -1,
	}
	l.run()
	if err := handler.Error(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func (l *patternLex) run() {
	for {
		if l.handler.ReporterError() != nil {
			return
		}

		offset := l.input.offset()
		c, _, err := l.input.readRune()
		if err == io.EOF {
			l.flushLiteral()
			return
		}
		if err != nil {
			l.flushLiteral()
			if l.errAt(offset, fmt.Errorf("%w: %v", ErrIllegalCharacter, err)) != nil {
				return
			}
			l.input.skipByte()
			continue
		}

		switch {
		case c >= '0' && c <= '9':
			l.emit(Token{Kind: TokenDigit0, Text: string(c), Offset: offset})
		case c == '#':
			l.emit(Token{Kind: TokenDigitHash, Text: "#", Offset: offset})
		case c == '@':
			l.emit(Token{Kind: TokenSignificantDigit, Text: "@", Offset: offset})
		case c == '.':
			l.emit(Token{Kind: TokenDecimalSep, Text: ".", Offset: offset})
		case c == ',':
			l.emit(Token{Kind: TokenGroupSep, Text: ",", Offset: offset})
		case c == '-':
			l.emit(Token{Kind: TokenMinus, Text: "-", Offset: offset})
		case c == '+':
			l.emit(Token{Kind: TokenPlus, Text: "+", Offset: offset})
		case c == '%':
			l.emit(Token{Kind: TokenPercent, Text: "%", Offset: offset})
		case c == permilleSign:
			l.emit(Token{Kind: TokenPermille, Text: string(permilleSign), Offset: offset})
		case c == ';':
			l.emit(Token{Kind: TokenSubpatternSep, Text: ";", Offset: offset})
		case c == 'E':
			l.emit(Token{Kind: TokenExponentMarker, Text: "E", Offset: offset})
		case c == currencySign:
			l.lexCurrencyRun(offset)
		case c == '*':
			l.lexPadEscape(offset)
		case c == '\'':
			l.lexQuoted(offset)
		default:
			l.literalRune(offset, c)
		}
	}
}

// lexCurrencyRun collapses consecutive currency signs into one token whose
// run length records how many: 1 for the symbol, 2 for the ISO code, 3 for
// the display name, 4 for the narrow symbol. The lexer records only the
// count.
func (l *patternLex) lexCurrencyRun(offset int) {
	n := 1
	for {
		c, sz, err := l.input.readRune()
		if err != nil {
			break
		}
		if c != currencySign {
			l.input.unreadRune(sz)
			break
		}
		n++
	}
	l.emit(Token{
		Kind:      TokenCurrencySign,
		Text:      strings.Repeat(string(currencySign), n),
		Offset:    offset,
		RunLength: n,
	})
}

// lexPadEscape reads the single character following '*'. The pad character
// is taken verbatim, special or not.
func (l *patternLex) lexPadEscape(offset int) {
	c, _, err := l.input.readRune()
	if err == io.EOF {
		l.flushLiteral()
		_ = l.errAt(offset, ErrDanglingPadEscape)
		return
	}
	if err != nil {
		l.flushLiteral()
		if l.errAt(l.input.offset(), fmt.Errorf("%w: %v", ErrIllegalCharacter, err)) != nil {
			return
		}
		l.input.skipByte()
		return
	}
	l.emit(Token{
		Kind:    TokenPadEscape,
		Text:    "*" + string(c),
		Offset:  offset,
		PadChar: c,
	})
}

// lexQuoted handles a quote character: a doubled quote is one literal
// quote; otherwise the quote opens a literal run that ends at the next
// single quote, with doubled quotes inside the run again meaning one
// literal quote.
func (l *patternLex) lexQuoted(start int) {
	c, sz, err := l.input.readRune()
	if err == io.EOF {
		l.flushLiteral()
		_ = l.errAt(start, ErrUnterminatedQuote)
		return
	}
	if err != nil {
		l.flushLiteral()
		if l.errAt(l.input.offset(), fmt.Errorf("%w: %v", ErrIllegalCharacter, err)) != nil {
			return
		}
		l.input.skipByte()
		return
	}
	if c == '\'' {
		// '' outside a quoted run
		l.literalRune(start, '\'')
		return
	}
	l.input.unreadRune(sz)

	for {
		c, _, err := l.input.readRune()
		if err == io.EOF {
			l.flushLiteral()
			_ = l.errAt(start, ErrUnterminatedQuote)
			return
		}
		if err != nil {
			l.flushLiteral()
			if l.errAt(l.input.offset(), fmt.Errorf("%w: %v", ErrIllegalCharacter, err)) != nil {
				return
			}
			l.input.skipByte()
			continue
		}
		if c == '\'' {
			c2, sz2, err := l.input.readRune()
			if err == nil && c2 == '\'' {
				l.literalRune(start, '\'')
				continue
			}
			if err == nil {
				l.input.unreadRune(sz2)
			}
			return
		}
		l.literalRune(start, c)
	}
}

// literalRune appends c to the pending literal run, opening one at offset
// if none is open.
func (l *patternLex) literalRune(offset int, c rune) {
	if l.litStart < 0 {
		l.litStart = offset
	}
	l.lit.WriteRune(c)
}

// flushLiteral emits the pending literal run, if any, as a single token.
func (l *patternLex) flushLiteral() {
	if l.litStart < 0 {
		return
	}
	l.tokens = append(l.tokens, Token{
		Kind:   TokenLiteral,
		Text:   l.lit.String(),
		Offset: l.litStart,
	})
	l.litStart = -1
	l.lit.Reset()
}

// emit flushes any pending literal run and appends tok.
func (l *patternLex) emit(tok Token) {
	l.flushLiteral()
	l.tokens = append(l.tokens, tok)
}

func (l *patternLex) errAt(offset int, err error) error {
	return l.handler.HandleErrorWithPos(l.info.SourcePos(offset), err)
}
