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

import "unicode/utf8"

// Element is a single component of a subpattern. Implementations are
// LiteralElement, CurrencyElement, PercentElement, PermilleElement,
// PlusElement, MinusElement, PadElement, and NumericElement.
//
// The ordering of elements within a subpattern is significant: it drives
// the rendering order of prefixes and suffixes and the fixed-width sum
// used for padding.
type Element interface {
	// Width returns the element's contribution to the subpattern's format
	// width, in runes, as used for padding computations. The pad directive
	// itself contributes nothing.
	Width() int

	patternElement()
}

// LiteralElement is a run of text rendered verbatim, with pattern quoting
// already resolved. It may appear in a prefix or suffix.
type LiteralElement struct {
	// Text is the literal text with quotes removed and doubled quotes
	// collapsed.
	Text string
}

// CurrencyElement is a run of currency signs (U+00A4). The run length
// selects the form the renderer substitutes: 1 for the symbol, 2 for the
// ISO code, 3 for the full display name, 4 for the narrow symbol. The AST
// records only the length.
type CurrencyElement struct {
	Size int
}

// PercentElement is the percent sign. Its presence scales the rendered
// value by 100.
type PercentElement struct{}

// PermilleElement is the permille sign (U+2030). Its presence scales the
// rendered value by 1000.
type PermilleElement struct{}

// PlusElement is an explicit plus sign in an affix.
type PlusElement struct{}

// MinusElement is an explicit minus sign in an affix.
type MinusElement struct{}

// PadElement is a pad directive ('*' followed by the pad character). At
// most one may appear per subpattern, and only adjacent to an affix.
type PadElement struct {
	Char rune
}

// NumericElement is the numeric core of a subpattern: the digit
// placeholders, grouping separators, optional fraction, and optional
// exponent. The individual runs are kept as raw source text; the analyzer
// derives all digit counts from them.
type NumericElement struct {
	// Raw is the exact source text of the numeric part, exponent included.
	Raw string
	// Integer is the integer run, grouping separators included.
	Integer string
	// Fraction is the fraction run, without the leading decimal point. It
	// is empty when the subpattern has no fraction.
	Fraction string
	// Exponent is nil when the subpattern has no exponent.
	Exponent *ExponentSpec
}

// ExponentSpec describes the exponent clause of a numeric core.
type ExponentSpec struct {
	// Digits is the raw digit run following the exponent marker.
	Digits string
	// Plus reports whether a literal '+' followed the marker.
	Plus bool
}

func (e *LiteralElement) Width() int  { return utf8.RuneCountInString(e.Text) }
func (e *CurrencyElement) Width() int { return e.Size }
func (e *PercentElement) Width() int  { return 1 }
func (e *PermilleElement) Width() int { return 1 }
func (e *PlusElement) Width() int     { return 1 }
func (e *MinusElement) Width() int    { return 1 }
func (e *PadElement) Width() int      { return 0 }
func (e *NumericElement) Width() int  { return utf8.RuneCountInString(e.Raw) }

func (e *LiteralElement) patternElement()  {}
func (e *CurrencyElement) patternElement() {}
func (e *PercentElement) patternElement()  {}
func (e *PermilleElement) patternElement() {}
func (e *PlusElement) patternElement()     {}
func (e *MinusElement) patternElement()    {}
func (e *PadElement) patternElement()      {}
func (e *NumericElement) patternElement()  {}

// PadPosition describes where a subpattern's pad directive sits relative
// to its affixes. The renderer needs this to know whether padding goes
// before or after the prefix or suffix.
type PadPosition int

const (
	// PadNone means the subpattern has no pad directive.
	PadNone PadPosition = iota
	PadBeforePrefix
	PadAfterPrefix
	PadBeforeSuffix
	PadAfterSuffix
)

// Subpattern is one of the (at most two) semicolon-separated halves of a
// pattern: prefix elements, one numeric core, and suffix elements.
type Subpattern struct {
	// Prefix holds the elements preceding the numeric core, in source
	// order. A pad directive, if placed before or after the prefix, is
	// included here.
	Prefix []Element
	// Numeric is the numeric core. It is never nil on a parser-produced
	// subpattern.
	Numeric *NumericElement
	// Suffix holds the elements following the numeric core, in source
	// order, including a trailing pad directive if present.
	Suffix []Element
	// PadPos records which of the four legal pad placements the subpattern
	// uses, or PadNone.
	PadPos PadPosition
}

// Elements returns the subpattern's full, ordered element sequence:
// prefix, numeric core, suffix.
func (s *Subpattern) Elements() []Element {
	elems := make([]Element, 0, len(s.Prefix)+1+len(s.Suffix))
	elems = append(elems, s.Prefix...)
	elems = append(elems, s.Numeric)
	elems = append(elems, s.Suffix...)
	return elems
}

// Pad returns the subpattern's pad character, if it has a pad directive.
func (s *Subpattern) Pad() (rune, bool) {
	if s.PadPos == PadNone {
		return 0, false
	}
	for _, el := range s.Elements() {
		if pad, ok := el.(*PadElement); ok {
			return pad.Char, true
		}
	}
	return 0, false
}

// ParsedFormat is the parsed form of a whole pattern.
type ParsedFormat struct {
	// Positive is the mandatory first subpattern.
	Positive *Subpattern
	// Negative is the explicit second subpattern, or nil when the pattern
	// has none. With no explicit negative subpattern, negative numbers
	// take the positive subpattern with an ASCII minus prepended to its
	// prefix.
	Negative *Subpattern
}

// NegativePrefix returns the effective negative prefix elements: the
// explicit negative subpattern's prefix when present, otherwise the
// positive prefix with a minus sign prepended.
func (f *ParsedFormat) NegativePrefix() []Element {
	if f.Negative != nil {
		return f.Negative.Prefix
	}
	elems := make([]Element, 0, len(f.Positive.Prefix)+1)
	elems = append(elems, &MinusElement{})
	elems = append(elems, f.Positive.Prefix...)
	return elems
}

// NegativeSuffix returns the effective negative suffix elements.
func (f *ParsedFormat) NegativeSuffix() []Element {
	if f.Negative != nil {
		return f.Negative.Suffix
	}
	return f.Positive.Suffix
}
