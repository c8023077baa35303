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

// Symbols is the set of canonical ASCII characters the pattern grammar
// uses for its structural markers. A renderer substitutes the appropriate
// locale-specific glyphs for these at format time.
type Symbols struct {
	Decimal  rune
	Group    rune
	Exponent rune
	Plus     rune
	Minus    rune
}

// Placeholders returns the grammar's canonical symbol set. The mapping is
// process-wide constant data: every call returns the same value, and it
// is never mutated.
func Placeholders() Symbols {
	return Symbols{
		Decimal:  '.',
		Group:    ',',
		Exponent: 'E',
		Plus:     '+',
		Minus:    '-',
	}
}
