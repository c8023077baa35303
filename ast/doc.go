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

// Package ast defines types for modeling the AST (Abstract Syntax Tree)
// of a CLDR decimal-format pattern.
//
// A pattern consists of one or two subpatterns separated by a semicolon.
// Each subpattern is an ordered sequence of elements: literal text,
// currency, percent, permille, and sign markers, an optional pad
// directive, and exactly one numeric core describing the digit
// placeholders.
//
// The AST is produced by the parser package and consumed by the analyzer
// package. It is also retained on the compiled descriptor so that a
// renderer can access literal prefixes and suffixes in source order.
package ast
