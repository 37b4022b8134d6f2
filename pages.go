/*
Copyright 2026 The Unicase Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package unicase

import (
	"sync"

	"github.com/unicase/unicase/internal/bytecode"
	"github.com/unicase/unicase/internal/tables"
)

const (
	pageShift = 8
	pageSize  = 256
	pageMask  = 0xFF
)

// maxCodepoint is one past the highest valid Unicode scalar value.
const maxCodepoint rune = 0x110000

// noPage never collides with a real page index (the highest is
// maxCodepoint>>pageShift - 1).
const noPage = ^uint32(0)

// A pageCache materializes 256-code-point blocks of a mapping table on
// first access and retains them forever. A one-entry hot slot makes
// consecutive lookups within the same block skip the map. A nil page
// pointer marks a block without a single mapping; entry nullity is the
// zero value of E.
type pageCache[E any] struct {
	mu    sync.Mutex
	build func(idx uint32) *[pageSize]E

	pages    map[uint32]*[pageSize]E
	lastIdx  uint32
	lastPage *[pageSize]E
}

func newPageCache[E any](build func(idx uint32) *[pageSize]E) *pageCache[E] {
	return &pageCache[E]{
		build:   build,
		pages:   make(map[uint32]*[pageSize]E),
		lastIdx: noPage,
	}
}

// lookup returns the table entry for cp, or the zero value of E when
// cp has no mapping. cp must be a valid code point.
func (c *pageCache[E]) lookup(cp rune) E {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := uint32(cp) >> pageShift
	if idx != c.lastIdx {
		page, ok := c.pages[idx]
		if !ok {
			page = c.build(idx)
			c.pages[idx] = page
		}
		c.lastIdx, c.lastPage = idx, page
	}
	if c.lastPage == nil {
		var zero E
		return zero
	}
	return c.lastPage[cp&pageMask]
}

// scanPage replays p for the block idx, invoking visit for every pair
// whose source falls inside the block. Emission order is ascending, so
// the replay stops as soon as a source beyond the block shows up.
func scanPage(p bytecode.Program, upper bool, idx uint32, visit func(from, to rune)) {
	min := rune(idx) << pageShift
	max := min + pageMask
	bytecode.Iterate(p, upper, func(from, to rune) bool {
		if from > max {
			return false
		}
		if from >= min {
			visit(from, to)
		}
		return true
	})
}

// casemap is the target of a string case mapping: one to three code
// points stored inline, so that building a page performs no per-entry
// heap allocation. n == 0 means no mapping.
type casemap struct {
	cp [3]rune
	n  uint8
}

// buildUpperPage materializes one block of the upper-case table. The
// single-character program provides the first code point; the three
// suffix programs overwrite the first and append the second and third
// code points of multi-character mappings.
func buildUpperPage(idx uint32) *[pageSize]casemap {
	var page [pageSize]casemap
	var written bool

	writeFirst := func(from, to rune) {
		e := &page[from&pageMask]
		e.cp[0] = to
		if e.n == 0 {
			e.n = 1
		}
		written = true
	}
	appendNext := func(from, to rune) {
		e := &page[from&pageMask]
		if e.n == 0 || e.n == uint8(len(e.cp)) {
			// An append without a preceding first character only
			// happens on corrupted tables; drop it.
			return
		}
		e.cp[e.n] = to
		e.n++
	}

	scanPage(tables.ToUpper, true, idx, writeFirst)
	scanPage(tables.UpperS1, true, idx, writeFirst)
	scanPage(tables.UpperS2, true, idx, appendNext)
	scanPage(tables.UpperS3, true, idx, appendNext)

	if !written {
		return nil
	}
	return &page
}

func buildLowerPage(idx uint32) *[pageSize]casemap {
	var page [pageSize]casemap
	var written bool
	scanPage(tables.ToLower, false, idx, func(from, to rune) {
		page[from&pageMask] = casemap{cp: [3]rune{to}, n: 1}
		written = true
	})
	if !written {
		return nil
	}
	return &page
}

var (
	upperPages = newPageCache(buildUpperPage)
	lowerPages = newPageCache(buildLowerPage)
)
