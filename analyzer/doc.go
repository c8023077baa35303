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

// Package analyzer reduces a parsed pattern AST to the numeric-formatting
// metadata a renderer consumes: digit bounds, grouping sizes, rounding
// increment, padding, multiplier, significant-digit bounds, exponent
// settings, and the currency/percent/permille flags.
//
// Analyze is total over any parser-produced AST: it never fails on user
// input. Digit, grouping, rounding, and flag data is read exclusively from
// the positive subpattern; an explicit negative subpattern contributes
// affixes only, which stay available through the descriptor's Raw field.
package analyzer
