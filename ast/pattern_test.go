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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementWidths(t *testing.T) {
	testCases := []struct {
		el   Element
		want int
	}{
		{&LiteralElement{Text: "per kg"}, 6},
		{&LiteralElement{Text: "№"}, 1},
		{&CurrencyElement{Size: 3}, 3},
		{&PercentElement{}, 1},
		{&PermilleElement{}, 1},
		{&PlusElement{}, 1},
		{&MinusElement{}, 1},
		{&PadElement{Char: 'x'}, 0},
		{&NumericElement{Raw: "#,##0.00"}, 8},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.el.Width(), "%#v", tc.el)
	}
}

func TestSubpatternElements(t *testing.T) {
	sub := &Subpattern{
		Prefix:  []Element{&PadElement{Char: ' '}, &CurrencyElement{Size: 1}},
		Numeric: &NumericElement{Raw: "#0", Integer: "#0"},
		Suffix:  []Element{&PercentElement{}},
		PadPos:  PadBeforePrefix,
	}
	elems := sub.Elements()
	assert.Len(t, elems, 4)
	assert.Same(t, sub.Numeric, elems[2])

	char, ok := sub.Pad()
	assert.True(t, ok)
	assert.Equal(t, ' ', char)
}

func TestSubpatternPadNone(t *testing.T) {
	sub := &Subpattern{Numeric: &NumericElement{Raw: "0", Integer: "0"}}
	_, ok := sub.Pad()
	assert.False(t, ok)
}

func TestImplicitNegativeAffixes(t *testing.T) {
	f := &ParsedFormat{
		Positive: &Subpattern{
			Prefix:  []Element{&CurrencyElement{Size: 1}},
			Numeric: &NumericElement{Raw: "#0", Integer: "#0"},
			Suffix:  []Element{&LiteralElement{Text: " net"}},
		},
	}
	assert.Equal(t, []Element{
		&MinusElement{},
		&CurrencyElement{Size: 1},
	}, f.NegativePrefix())
	assert.Equal(t, f.Positive.Suffix, f.NegativeSuffix())

	f.Negative = &Subpattern{
		Prefix:  []Element{&LiteralElement{Text: "("}},
		Numeric: &NumericElement{Raw: "#0", Integer: "#0"},
		Suffix:  []Element{&LiteralElement{Text: ")"}},
	}
	assert.Equal(t, f.Negative.Prefix, f.NegativePrefix())
	assert.Equal(t, f.Negative.Suffix, f.NegativeSuffix())
}

func TestSourcePos(t *testing.T) {
	info := NewPatternInfo("a‰b")
	pos := info.SourcePos(4)
	assert.Equal(t, 4, pos.Offset)
	assert.Equal(t, 3, pos.Col)
	assert.Equal(t, "char 3", pos.String())
}
