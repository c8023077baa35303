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

// Package parser contains the logic for turning the text of a CLDR
// decimal-format pattern into an AST (abstract syntax tree).
//
// It works in two stages. Tokenize classifies the raw pattern into typed
// tokens, resolving quoting and collapsing runs of currency signs. Parse
// then assembles the tokens into an ast.ParsedFormat: a positive
// subpattern and, when the pattern carries a semicolon, an explicit
// negative subpattern. The parser validates structure only (at most one
// decimal point, one exponent clause, one pad directive per subpattern,
// pad placement); all digit counting is left to the analyzer package.
//
// The grammar, informally:
//
//	pattern      := subpattern (';' subpattern)?
//	subpattern   := pad? prefix pad? numeric pad? suffix pad?   (at most one pad)
//	prefix       := element*
//	suffix       := element*
//	numeric      := integer-run ('.' fraction-run)? ('E' '+'? digits)?
//
// where element is any non-digit-placeholder pattern element.
package parser
