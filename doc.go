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

// Package patterncompile provides the entry point for compiling CLDR
// decimal-format pattern strings, the mini-language behind every localized
// number format ("#,##0.00", "¤ #,##0.00;¤-#,##0.00", "@@@", ...), into
// immutable format descriptors. "Compile" here means tokenizing the
// pattern, parsing it into an AST, and reducing the AST to the digit
// bounds, grouping sizes, rounding increment, padding, multiplier, and
// flags a number renderer consumes. This package does not itself render
// numbers and does not load locale or currency data.
//
// The compilation process involves three stages for each pattern:
//  1. Tokenizing the source into typed tokens, resolving quoting.
//  2. Parsing the tokens into an AST (abstract syntax tree).
//  3. Analyzing the AST into a FormatDescriptor.
//
// The stages are pure functions of their input: compiling is deterministic
// and safe to invoke concurrently without synchronization. The cache
// subpackage offers optional memoization on top.
//
// Compile is the one-call form. The stages are also exposed individually,
// for diagnostics and testing, as parser.Tokenize, parser.Parse, and
// analyzer.Analyze.
package patterncompile
