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

	"github.com/cldrtools/patterncompile/analyzer"
	"github.com/cldrtools/patterncompile/parser"
	"github.com/cldrtools/patterncompile/reporter"
)

// Compiler handles compilation of number patterns into format
// descriptors. The zero value is ready to use; configure a Reporter to
// collect every diagnostic of a pattern in one pass instead of failing on
// the first error.
type Compiler struct {
	// A custom error and warning reporter. If unspecified, a default
	// reporter is used: it fails compilation on the first error and
	// ignores all warnings.
	Reporter reporter.Reporter
}

// Compile compiles the given pattern. Errors are reported through the
// compiler's Reporter and the returned error is wrapped in a
// *CompileError identifying the pattern.
func (c *Compiler) Compile(pattern string) (*analyzer.FormatDescriptor, error) {
	handler := reporter.NewHandler(c.Reporter)
	parsed, err := parser.Parse(pattern, handler)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return analyzer.Analyze(parsed), nil
}

// Compile compiles a number pattern into its format descriptor using a
// default Compiler. The descriptor is immutable and may be shared across
// any number of concurrent formatting operations.
func Compile(pattern string) (*analyzer.FormatDescriptor, error) {
	var c Compiler
	return c.Compile(pattern)
}

// CompileError wraps the lexical or syntax error that failed a compile
// operation, together with the offending pattern. Use errors.Is and
// errors.As to inspect the underlying error, e.g. parser.ErrEmptyPattern
// or *parser.UnexpectedTokenError.
type CompileError struct {
	// Pattern is the source pattern that failed to compile.
	Pattern string
	// Err is the underlying error, usually a reporter.ErrorWithPos.
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile pattern %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
