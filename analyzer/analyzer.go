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

package analyzer

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/cldrtools/patterncompile/ast"
)

// Analyze reduces a parsed pattern to its formatting descriptor. It is
// total over parser output: any failure in here indicates a defect in the
// parser or analyzer, not bad user input, and panics accordingly.
func Analyze(f *ast.ParsedFormat) *FormatDescriptor {
	pos := f.Positive
	num := pos.Numeric

	d := &FormatDescriptor{
		IntegerDigits:     integerBounds(num.Integer),
		FractionDigits:    fractionBounds(num.Fraction),
		SignificantDigits: significantBounds(num.Integer),
		Grouping:          groupingSizes(num.Integer),
		RoundingIncrement: roundingIncrement(num.Integer, num.Fraction),
		Exponent:          exponentSettings(num.Exponent),
		Padding:           paddingSpec(pos),
		Multiplier:        1,
		Raw:               f,
	}

	for _, el := range pos.Elements() {
		switch el.(type) {
		case *ast.CurrencyElement:
			d.Currency = true
		case *ast.PercentElement:
			d.Percent = true
			d.Multiplier = 100
		case *ast.PermilleElement:
			d.Permille = true
			d.Multiplier = 1000
		}
	}
	return d
}

// integerBounds derives the integer digit bounds: the minimum is the
// number of explicit digit characters in the integer run, and the grammar
// imposes no maximum.
func integerBounds(integer string) DigitBounds {
	run := strings.ReplaceAll(integer, ",", "")
	return DigitBounds{Min: countDigits(run), Max: UnboundedDigits}
}

// fractionBounds derives the fraction digit bounds: explicit digits set
// the minimum, '#' placeholders extend only the maximum.
func fractionBounds(fraction string) DigitBounds {
	minDigits := countDigits(fraction)
	return DigitBounds{
		Min: minDigits,
		Max: minDigits + uint16(strings.Count(fraction, "#")),
	}
}

// significantBounds scans the integer run for the '@' run: its length is
// the minimum, immediately following '#' placeholders extend the maximum.
// Placeholders and separators before the first '@' only position grouping
// and are ignored here.
func significantBounds(integer string) DigitBounds {
	run := strings.ReplaceAll(integer, ",", "")
	at := strings.IndexByte(run, '@')
	if at < 0 {
		return DigitBounds{}
	}
	var minSig, hash uint16
	i := at
	for ; i < len(run) && run[i] == '@'; i++ {
		minSig++
	}
	for ; i < len(run) && run[i] == '#'; i++ {
		hash++
	}
	return DigitBounds{Min: minSig, Max: minSig + hash}
}

// groupingSizes splits the integer run on the grouping separators. The
// leftmost segment precedes the first separator and is not a group; of the
// remaining groups, the innermost sets Rest and the next one out sets
// First, which defaults to Rest when the pattern shows only one group.
func groupingSizes(integer string) Grouping {
	segs := strings.Split(integer, ",")
	if len(segs) == 1 {
		return Grouping{}
	}
	groups := segs[1:]
	rest := uint16(len(groups[len(groups)-1]))
	first := rest
	if len(groups) > 1 {
		first = uint16(len(groups[len(groups)-2]))
	}
	return Grouping{First: first, Rest: rest}
}

// roundingIncrement reads the literal digit characters of the numeric part
// as an exact decimal. "#,#50" has increment 50 and "#,##0.05" has
// increment 1/20; a numeric part whose digit characters are all zero, like
// "#,##0.00", has no explicit increment.
func roundingIncrement(integer, fraction string) *big.Rat {
	s := integer
	if fraction != "" {
		s += "." + fraction
	}
	var lit strings.Builder
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c == '.':
			lit.WriteRune(c)
		}
	}
	text := strings.TrimSuffix(lit.String(), ".")
	if strings.HasPrefix(text, ".") {
		text = "0" + text
	}
	if !strings.ContainsAny(text, "0123456789") {
		return new(big.Rat)
	}
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		panic(fmt.Sprintf("analyzer: malformed rounding increment literal %q", text))
	}
	return r
}

// exponentSettings reads the digit run after the exponent marker as an
// integer literal. Note that this records the literal value of the run,
// not its digit count.
func exponentSettings(exp *ast.ExponentSpec) Exponent {
	if exp == nil {
		return Exponent{}
	}
	var value uint64
	for _, c := range exp.Digits {
		value = value*10 + uint64(c-'0')
		if value > math.MaxUint32 {
			value = math.MaxUint32
			break
		}
	}
	return Exponent{Value: uint32(value), Plus: exp.Plus}
}

// paddingSpec sums the format width of every element of the positive
// subpattern. The element widths are fixed by the pattern source: the
// numeric core and literals count their runes, sign and scale markers
// count one, a currency marker counts its run length, and the pad
// directive itself counts nothing.
func paddingSpec(sub *ast.Subpattern) Padding {
	char, ok := sub.Pad()
	if !ok {
		return Padding{}
	}
	width := 0
	for _, el := range sub.Elements() {
		width += el.Width()
	}
	if width > int(math.MaxUint16) {
		width = int(math.MaxUint16)
	}
	return Padding{Length: uint16(width), Char: char}
}

// countDigits counts the explicit digit characters '0'-'9' in a run.
func countDigits(run string) uint16 {
	var n uint16
	for _, c := range run {
		if c >= '0' && c <= '9' {
			n++
		}
	}
	return n
}
