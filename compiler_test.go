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

package patterncompile

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cldrtools/patterncompile/analyzer"
	"github.com/cldrtools/patterncompile/internal/testutil"
	"github.com/cldrtools/patterncompile/parser"
	"github.com/cldrtools/patterncompile/reporter"
)

// ratsEqual compares rounding increments by value rather than by the
// internals of big.Rat.
var ratsEqual = cmp.Comparer(func(a, b *big.Rat) bool {
	return a.Cmp(b) == 0
})

type patternFixture struct {
	Pattern    string `yaml:"pattern"`
	IntMin     uint16 `yaml:"intMin"`
	FracMin    uint16 `yaml:"fracMin"`
	FracMax    uint16 `yaml:"fracMax"`
	SigMin     uint16 `yaml:"sigMin"`
	SigMax     uint16 `yaml:"sigMax"`
	GroupFirst uint16 `yaml:"groupFirst"`
	GroupRest  uint16 `yaml:"groupRest"`
	Increment  string `yaml:"increment"`
	ExpValue   uint32 `yaml:"expValue"`
	ExpPlus    bool   `yaml:"expPlus"`
	PadLength  uint16 `yaml:"padLength"`
	PadChar    string `yaml:"padChar"`
	Multiplier int    `yaml:"multiplier"`
	Currency   bool   `yaml:"currency"`
	Percent    bool   `yaml:"percent"`
	Permille   bool   `yaml:"permille"`
	Display    string `yaml:"display"`
}

func (f patternFixture) descriptor(t *testing.T) *analyzer.FormatDescriptor {
	t.Helper()
	incr := new(big.Rat)
	if f.Increment != "" {
		var ok bool
		incr, ok = new(big.Rat).SetString(f.Increment)
		require.True(t, ok, "bad increment in fixture: %q", f.Increment)
	}
	mult := f.Multiplier
	if mult == 0 {
		mult = 1
	}
	var pad analyzer.Padding
	if f.PadChar != "" {
		pad = analyzer.Padding{Length: f.PadLength, Char: []rune(f.PadChar)[0]}
	}
	return &analyzer.FormatDescriptor{
		IntegerDigits:     analyzer.DigitBounds{Min: f.IntMin, Max: analyzer.UnboundedDigits},
		FractionDigits:    analyzer.DigitBounds{Min: f.FracMin, Max: f.FracMax},
		SignificantDigits: analyzer.DigitBounds{Min: f.SigMin, Max: f.SigMax},
		Exponent:          analyzer.Exponent{Value: f.ExpValue, Plus: f.ExpPlus},
		Grouping:          analyzer.Grouping{First: f.GroupFirst, Rest: f.GroupRest},
		RoundingIncrement: incr,
		Padding:           pad,
		Multiplier:        mult,
		Currency:          f.Currency,
		Percent:           f.Percent,
		Permille:          f.Permille,
	}
}

func loadPatternFixtures(t *testing.T) []patternFixture {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "patterns.yaml"))
	require.NoError(t, err)
	var fixtures []patternFixture
	require.NoError(t, yaml.Unmarshal(data, &fixtures))
	require.NotEmpty(t, fixtures)
	return fixtures
}

func TestCompilePatterns(t *testing.T) {
	for _, fix := range loadPatternFixtures(t) {
		t.Run(fix.Pattern, func(t *testing.T) {
			got, err := Compile(fix.Pattern)
			require.NoError(t, err)
			require.NotNil(t, got.Raw)
			want := fix.descriptor(t)
			// the parsed form is covered by the parser tests
			want.Raw = got.Raw
			diff := cmp.Diff(want, got, ratsEqual)
			require.Empty(t, diff, "descriptor mismatch (-want +got):\n%s", diff)
		})
	}
}

func TestCompileIdempotent(t *testing.T) {
	for _, fix := range loadPatternFixtures(t) {
		first, err := Compile(fix.Pattern)
		require.NoError(t, err)
		second, err := Compile(fix.Pattern)
		require.NoError(t, err)
		diff := cmp.Diff(first, second, ratsEqual)
		require.Empty(t, diff, "pattern %q compiled differently twice:\n%s", fix.Pattern, diff)
	}
}

func TestCompileDescriptorDisplay(t *testing.T) {
	var want, got strings.Builder
	for _, fix := range loadPatternFixtures(t) {
		d, err := Compile(fix.Pattern)
		require.NoError(t, err)
		fmt.Fprintf(&want, "%s => %s\n", fix.Pattern, fix.Display)
		fmt.Fprintf(&got, "%s => %s\n", fix.Pattern, d)
	}
	testutil.CheckText(t, want.String(), got.String())
}

func TestPlaceholders(t *testing.T) {
	want := Symbols{
		Decimal:  '.',
		Group:    ',',
		Exponent: 'E',
		Plus:     '+',
		Minus:    '-',
	}
	assert.Equal(t, want, Placeholders())
	// constant data: repeated calls agree
	assert.Equal(t, Placeholders(), Placeholders())
}

func TestCompileError(t *testing.T) {
	d, err := Compile("0.0.0")
	require.Error(t, err)
	assert.Nil(t, d)

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "0.0.0", ce.Pattern)
	assert.ErrorIs(t, err, parser.ErrMultipleDecimalPoints)
	assert.Contains(t, err.Error(), `compile pattern "0.0.0"`)

	var ewp reporter.ErrorWithPos
	require.ErrorAs(t, err, &ewp)
	assert.Equal(t, 3, ewp.GetPosition().Offset)
}

func TestCompileCollectsAllErrors(t *testing.T) {
	var reported []reporter.ErrorWithPos
	c := Compiler{
		Reporter: reporter.NewReporter(
			func(err reporter.ErrorWithPos) error {
				reported = append(reported, err)
				return nil
			},
			nil,
		),
	}
	d, err := c.Compile("\xff0\xfe")
	require.Error(t, err)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, reporter.ErrInvalidPattern)

	require.Len(t, reported, 2)
	assert.ErrorIs(t, reported[0], parser.ErrIllegalCharacter)
	assert.Equal(t, 0, reported[0].GetPosition().Offset)
	assert.ErrorIs(t, reported[1], parser.ErrIllegalCharacter)
	assert.Equal(t, 2, reported[1].GetPosition().Offset)
}

func TestCompileReportsWarnings(t *testing.T) {
	var warnings []reporter.ErrorWithPos
	c := Compiler{
		Reporter: reporter.NewReporter(nil, func(err reporter.ErrorWithPos) {
			warnings = append(warnings, err)
		}),
	}

	d, err := c.Compile("#0.00;#0")
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], parser.ErrIgnoredNegativeNumeric)
	assert.Equal(t, 5, warnings[0].GetPosition().Offset)

	warnings = nil
	_, err = c.Compile("#0.00;(#0.00)")
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
