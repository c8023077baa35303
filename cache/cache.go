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

// Package cache memoizes pattern compilation. Compiling is deterministic,
// so a process that formats with a fixed set of patterns can compile each
// one exactly once and share the immutable descriptors across goroutines.
//
// The core compiler itself never caches; this package is the optional
// policy layered on top.
package cache

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/cldrtools/patterncompile"
	"github.com/cldrtools/patterncompile/analyzer"
)

// Cache memoizes compiled descriptors keyed by the source pattern string.
// The zero value is ready to use. A Cache is safe for concurrent use; at
// most one compilation runs per pattern, with concurrent callers for the
// same pattern sharing the result.
//
// Failed compilations are not cached: errors are deterministic, but they
// are also cheap to reproduce, and retaining arbitrary failing inputs
// would let malformed patterns grow the cache without bound.
type Cache struct {
	descriptors sync.Map // pattern string -> *analyzer.FormatDescriptor
	group       singleflight.Group
}

// Compile returns the descriptor for the given pattern, compiling it on
// first use.
func (c *Cache) Compile(pattern string) (*analyzer.FormatDescriptor, error) {
	if d, ok := c.descriptors.Load(pattern); ok {
		return d.(*analyzer.FormatDescriptor), nil
	}
	d, err, _ := c.group.Do(pattern, func() (any, error) {
		if d, ok := c.descriptors.Load(pattern); ok {
			return d.(*analyzer.FormatDescriptor), nil
		}
		desc, err := patterncompile.Compile(pattern)
		if err != nil {
			return nil, err
		}
		c.descriptors.Store(pattern, desc)
		return desc, nil
	})
	if err != nil {
		return nil, err
	}
	return d.(*analyzer.FormatDescriptor), nil
}

// Lookup returns the cached descriptor for the pattern, without compiling.
func (c *Cache) Lookup(pattern string) (*analyzer.FormatDescriptor, bool) {
	d, ok := c.descriptors.Load(pattern)
	if !ok {
		return nil, false
	}
	return d.(*analyzer.FormatDescriptor), true
}

// Len returns the number of cached descriptors.
func (c *Cache) Len() int {
	n := 0
	c.descriptors.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
