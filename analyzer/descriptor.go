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

// UnboundedDigits is the sentinel for "no practical upper bound" on a
// digit count. The grammar imposes no ceiling on integer digits.
const UnboundedDigits uint16 = math.MaxUint16

// DigitBounds is an inclusive minimum/maximum pair of digit counts.
// Min <= Max always holds.
type DigitBounds struct {
	Min uint16
	Max uint16
}

// Grouping holds the digit group sizes derived from the comma placement in
// the integer run. Rest is the size of the group adjacent to the decimal
// point; First is the size of the next group out, equal to Rest when the
// pattern shows only one group. Both zero means no grouping.
type Grouping struct {
	First uint16
	Rest  uint16
}

// Exponent holds the scientific-notation settings of a pattern. Value is
// the post-marker digit run read as an integer literal; Plus reports
// whether a '+' followed the exponent marker. A pattern without an
// exponent clause has the zero value.
type Exponent struct {
	Value uint32
	Plus  bool
}

// Padding describes the fixed-width padding a pattern requests. Length
// zero means padding is disabled, in which case Char is zero as well.
type Padding struct {
	Length uint16
	Char   rune
}

// Enabled reports whether the pattern requests padding.
func (p Padding) Enabled() bool { return p.Length > 0 }

// FormatDescriptor is the compiled, immutable form of a number pattern.
// A descriptor may be shared freely across concurrent formatting
// operations; none of its fields, including the pointers, may be mutated
// after Analyze returns it.
type FormatDescriptor struct {
	// IntegerDigits bounds the digits left of the decimal point. Max is
	// always UnboundedDigits.
	IntegerDigits DigitBounds
	// FractionDigits bounds the digits right of the decimal point.
	FractionDigits DigitBounds
	// SignificantDigits bounds the significant digits when the pattern
	// uses '@'. Both zero means significant-digit mode is disabled and
	// IntegerDigits/FractionDigits govern instead.
	SignificantDigits DigitBounds
	// Exponent holds the scientific-notation settings.
	Exponent Exponent
	// Grouping holds the digit group sizes.
	Grouping Grouping
	// RoundingIncrement is the exact increment formatted values snap to.
	// It is never nil; a zero value means no explicit increment, leaving
	// the renderer to its default half-even rounding. Callers must treat
	// it as read-only.
	RoundingIncrement *big.Rat
	// Padding describes the requested fixed-width padding.
	Padding Padding
	// Multiplier is the scale factor applied before display: 100 for
	// percent patterns, 1000 for permille patterns, otherwise 1.
	Multiplier int
	// Currency reports whether the pattern contains a currency sign.
	Currency bool
	// Percent reports whether the pattern contains a percent sign.
	Percent bool
	// Permille reports whether the pattern contains a permille sign.
	Permille bool
	// Raw is the parsed pattern, retained so a renderer can walk literal
	// prefixes and suffixes in source order.
	Raw *ast.ParsedFormat
}

// UsesSignificantDigits reports whether the pattern is in
// significant-digit mode.
func (d *FormatDescriptor) UsesSignificantDigits() bool {
	return d.SignificantDigits.Max > 0
}

// HasRoundingIncrement reports whether the pattern carries an explicit
// rounding increment.
func (d *FormatDescriptor) HasRoundingIncrement() bool {
	return d.RoundingIncrement.Sign() != 0
}

// NeedsGroupSep reports whether a grouping separator belongs immediately
// after the integer digit at the given position, counting from the
// decimal point starting at 1.
func (d *FormatDescriptor) NeedsGroupSep(pos int) bool {
	p := pos - 1
	size := int(d.Grouping.Rest)
	if size == 0 || p == 0 {
		return false
	}
	if p == size {
		return true
	}
	if p -= size; p < 0 {
		return false
	}
	if x := int(d.Grouping.First); x != 0 {
		size = x
	}
	return p%size == 0
}

// String returns a compact single-line dump of the descriptor, intended
// for diagnostics and test output.
func (d *FormatDescriptor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "int[%s] frac[%s]", boundsString(d.IntegerDigits), boundsString(d.FractionDigits))
	if d.UsesSignificantDigits() {
		fmt.Fprintf(&b, " sig[%s]", boundsString(d.SignificantDigits))
	}
	fmt.Fprintf(&b, " group(%d,%d)", d.Grouping.First, d.Grouping.Rest)
	if d.HasRoundingIncrement() {
		fmt.Fprintf(&b, " incr=%s", d.RoundingIncrement.RatString())
	}
	if d.Exponent != (Exponent{}) {
		fmt.Fprintf(&b, " exp=%d", d.Exponent.Value)
		if d.Exponent.Plus {
			b.WriteString("+")
		}
	}
	if d.Padding.Enabled() {
		fmt.Fprintf(&b, " pad(%d,%q)", d.Padding.Length, d.Padding.Char)
	}
	fmt.Fprintf(&b, " mult=%d", d.Multiplier)
	for _, f := range []struct {
		set  bool
		name string
	}{
		{d.Currency, "currency"},
		{d.Percent, "percent"},
		{d.Permille, "permille"},
	} {
		if f.set {
			b.WriteString(" ")
			b.WriteString(f.name)
		}
	}
	return b.String()
}

func boundsString(b DigitBounds) string {
	if b.Max == UnboundedDigits {
		return fmt.Sprintf("%d..", b.Min)
	}
	return fmt.Sprintf("%d..%d", b.Min, b.Max)
}
