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

// Package reporter contains the types for reporting errors and warnings
// encountered while compiling a number pattern. A custom Reporter lets a
// caller collect every diagnostic in a single pass instead of failing on
// the first one.
package reporter

import (
	"sync"

	"github.com/cldrtools/patterncompile/ast"
)

// ErrorReporter is responsible for reporting the given error. If the
// reporter returns a non-nil error, compilation aborts with that error. If
// the reporter returns nil, compilation continues, allowing the lexer and
// parser to report as many errors as they can find in one pass.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Warnings
// indicate constructs that compile but are likely mistakes, such as a
// negative subpattern whose numeric part differs from the positive one.
// Though they are just warnings, the details are supplied via an error
// type.
type WarningReporter func(ErrorWithPos)

// Reporter receives the errors and warnings encountered during a compile
// operation.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter creates a Reporter that invokes the given functions. Either
// may be nil: a nil errs fails on the first error, a nil warnings drops
// all warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler accumulates the state of a compile operation's diagnostics: it
// remembers whether any errors were reported and what error, if any, the
// reporter asked to abort with. A single Handler is threaded through the
// lexer and parser for one pattern.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler. A nil reporter behaves as if created
// with NewReporter(nil, nil): fail on the first error, drop warnings.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorWithPos handles an error at the given position, wrapping it
// in an ErrorWithPos if needed. It returns whatever error the reporter
// asked to abort with (nil means keep going).
func (h *Handler) HandleErrorWithPos(pos ast.SourcePos, err error) error {
	if ewp, ok := err.(ErrorWithPos); ok {
		return h.HandleError(ewp)
	}
	return h.HandleError(Error(pos, err))
}

// HandleErrorf handles an error with the given position and message.
func (h *Handler) HandleErrorf(pos ast.SourcePos, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError handles the given error. If the handler has already aborted,
// the previous abort error is returned and err is dropped.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarningWithPos handles a warning at the given position.
func (h *Handler) HandleWarningWithPos(pos ast.SourcePos, err error) {
	// no need for lock; warnings don't interact with mutable fields
	h.reporter.Warning(Error(pos, err))
}

// Error returns the handler's resulting error: the abort error if one was
// reported, ErrInvalidPattern if errors were reported but the reporter
// swallowed them all, or nil if the pattern compiled cleanly.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidPattern
	}
	return h.err
}

// ReporterError returns the error the reporter asked to abort with, if
// any. The lexer and parser check this to stop consuming input early.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
