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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cldrtools/patterncompile/ast"
	"github.com/cldrtools/patterncompile/parser"
)

func analyze(t *testing.T, pattern string) *FormatDescriptor {
	t.Helper()
	parsed, err := parser.Parse(pattern, nil)
	require.NoError(t, err)
	return Analyze(parsed)
}

func TestAnalyzeDigitBounds(t *testing.T) {
	d := analyze(t, "#,##0.00")
	assert.Equal(t, DigitBounds{Min: 1, Max: UnboundedDigits}, d.IntegerDigits)
	assert.Equal(t, DigitBounds{Min: 2, Max: 2}, d.FractionDigits)
	assert.Equal(t, DigitBounds{}, d.SignificantDigits)
	assert.False(t, d.UsesSignificantDigits())

	d = analyze(t, "000.0##")
	assert.Equal(t, DigitBounds{Min: 3, Max: UnboundedDigits}, d.IntegerDigits)
	assert.Equal(t, DigitBounds{Min: 1, Max: 3}, d.FractionDigits)

	d = analyze(t, "#")
	assert.Equal(t, DigitBounds{Min: 0, Max: UnboundedDigits}, d.IntegerDigits)
	assert.Equal(t, DigitBounds{}, d.FractionDigits)
}

func TestAnalyzeSignificantDigits(t *testing.T) {
	testCases := map[string]DigitBounds{
		"@@@":    {Min: 3, Max: 3},
		"@##":    {Min: 1, Max: 3},
		"@@###":  {Min: 2, Max: 5},
		"#,@@":   {Min: 2, Max: 2},
		"#,#@#":  {Min: 1, Max: 2},
		"@,@@,@": {Min: 4, Max: 4},
	}
	for pattern, want := range testCases {
		t.Run(pattern, func(t *testing.T) {
			d := analyze(t, pattern)
			assert.Equal(t, want, d.SignificantDigits)
			assert.True(t, d.UsesSignificantDigits())
		})
	}
}

func TestAnalyzeGrouping(t *testing.T) {
	testCases := map[string]Grouping{
		"#,##0.00": {First: 3, Rest: 3},
		"#,##,###": {First: 2, Rest: 3},
		"#,####":   {First: 4, Rest: 4},
		"0.00":     {},
		"###0":     {},
	}
	for pattern, want := range testCases {
		t.Run(pattern, func(t *testing.T) {
			assert.Equal(t, want, analyze(t, pattern).Grouping)
		})
	}
}

func TestAnalyzeNeedsGroupSep(t *testing.T) {
	d := analyze(t, "#,##0")
	var seps []int
	for pos := 1; pos <= 10; pos++ {
		if d.NeedsGroupSep(pos) {
			seps = append(seps, pos)
		}
	}
	assert.Equal(t, []int{4, 7, 10}, seps)

	// 12,34,567 style grouping: one group of three, then twos
	d = analyze(t, "#,##,###")
	seps = nil
	for pos := 1; pos <= 10; pos++ {
		if d.NeedsGroupSep(pos) {
			seps = append(seps, pos)
		}
	}
	assert.Equal(t, []int{4, 6, 8, 10}, seps)

	d = analyze(t, "###0")
	for pos := 1; pos <= 10; pos++ {
		assert.False(t, d.NeedsGroupSep(pos))
	}
}

func TestAnalyzeRoundingIncrement(t *testing.T) {
	d := analyze(t, "#,#50")
	assert.True(t, d.HasRoundingIncrement())
	assert.Zero(t, d.RoundingIncrement.Cmp(big.NewRat(50, 1)))
	assert.Equal(t, DigitBounds{Min: 2, Max: UnboundedDigits}, d.IntegerDigits)

	d = analyze(t, "#,##0.05")
	assert.True(t, d.HasRoundingIncrement())
	assert.Zero(t, d.RoundingIncrement.Cmp(big.NewRat(1, 20)))

	d = analyze(t, "0.25")
	assert.Zero(t, d.RoundingIncrement.Cmp(big.NewRat(1, 4)))

	for _, pattern := range []string{"#,##0.00", "#", "@@#", "0.###E0"} {
		d := analyze(t, pattern)
		assert.False(t, d.HasRoundingIncrement(), "pattern %q", pattern)
		assert.Zero(t, d.RoundingIncrement.Sign())
	}
}

func TestAnalyzeExponent(t *testing.T) {
	d := analyze(t, "0.###E0")
	assert.Equal(t, Exponent{Value: 0, Plus: false}, d.Exponent)

	d = analyze(t, "00.###E+12")
	assert.Equal(t, Exponent{Value: 12, Plus: true}, d.Exponent)

	d = analyze(t, "0E00")
	assert.Equal(t, Exponent{Value: 0, Plus: false}, d.Exponent)

	d = analyze(t, "0.00")
	assert.Equal(t, Exponent{}, d.Exponent)
}

func TestAnalyzePadding(t *testing.T) {
	d := analyze(t, "*x #,##0.00")
	assert.Equal(t, Padding{Length: 9, Char: 'x'}, d.Padding)
	assert.True(t, d.Padding.Enabled())

	// quotes do not count toward the width
	d = analyze(t, "* #0 o''clock")
	assert.Equal(t, Padding{Length: 10, Char: ' '}, d.Padding)

	// currency markers count their run length, signs count one
	d = analyze(t, "*0¤¤¤-#0")
	assert.Equal(t, Padding{Length: 6, Char: '0'}, d.Padding)

	d = analyze(t, "#,##0.00")
	assert.Equal(t, Padding{}, d.Padding)
	assert.False(t, d.Padding.Enabled())
}

func TestAnalyzeMultiplierAndFlags(t *testing.T) {
	d := analyze(t, "#,##0.00")
	assert.Equal(t, 1, d.Multiplier)
	assert.False(t, d.Currency)
	assert.False(t, d.Percent)
	assert.False(t, d.Permille)

	d = analyze(t, "0%")
	assert.Equal(t, 100, d.Multiplier)
	assert.True(t, d.Percent)

	d = analyze(t, "‰0")
	assert.Equal(t, 1000, d.Multiplier)
	assert.True(t, d.Permille)

	d = analyze(t, "¤ #,##0.00;¤-#,##0.00")
	assert.True(t, d.Currency)
	assert.Equal(t, 1, d.Multiplier)

	// digit and flag data comes from the positive subpattern only
	d = analyze(t, "0;0%")
	assert.False(t, d.Percent)
	assert.Equal(t, 1, d.Multiplier)
}

func TestAnalyzeRetainsRaw(t *testing.T) {
	parsed, err := parser.Parse("¤ #,##0.00;¤-#,##0.00", nil)
	require.NoError(t, err)
	d := Analyze(parsed)
	assert.Same(t, parsed, d.Raw)
	require.NotNil(t, d.Raw.Negative)
	assert.Equal(t, []ast.Element{
		&ast.CurrencyElement{Size: 1},
		&ast.MinusElement{},
	}, d.Raw.Negative.Prefix)
}

func TestAnalyzeNegativeNumericIgnored(t *testing.T) {
	// the negative numeric part is validated but contributes nothing
	d := analyze(t, "#,##0.00;#0")
	assert.Equal(t, DigitBounds{Min: 1, Max: UnboundedDigits}, d.IntegerDigits)
	assert.Equal(t, DigitBounds{Min: 2, Max: 2}, d.FractionDigits)
	assert.Equal(t, Grouping{First: 3, Rest: 3}, d.Grouping)
}

func TestDescriptorString(t *testing.T) {
	testCases := map[string]string{
		"#,##0.00":    "int[1..] frac[2..2] group(3,3) mult=1",
		"@@##":        "int[0..] frac[0..0] sig[2..4] group(0,0) mult=1",
		"0.###E+12":   "int[1..] frac[0..3] group(0,0) exp=12+ mult=1",
		"0%":          "int[1..] frac[0..0] group(0,0) mult=100 percent",
		"*x #,##0.05": "int[1..] frac[2..2] group(3,3) incr=1/20 pad(9,'x') mult=1",
	}
	for pattern, want := range testCases {
		t.Run(pattern, func(t *testing.T) {
			assert.Equal(t, want, analyze(t, pattern).String())
		})
	}
}
