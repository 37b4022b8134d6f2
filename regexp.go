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
	"slices"

	"github.com/unicase/unicase/internal/bytecode"
	"github.com/unicase/unicase/internal/tables"
)

// Canonicalize returns the canonical form of cp under ECMAScript 5
// case-insensitive matching: the single-character upper-case mapping
// of cp, or cp itself when there is none. Multi-character expansions
// such as "ß" to "SS" never apply here.
func Canonicalize(cp rune) rune {
	if cp < 0 || cp >= maxCodepoint {
		return cp
	}
	if c := canonPages.lookup(cp); c != 0 {
		return c
	}
	return cp
}

// EquivalenceClass returns every code point that matches cp under
// ECMAScript 5 case-insensitive semantics, or nil when cp matches
// only itself. The returned slice is shared and must not be modified.
//
// The class always contains cp and its canonical form. ASCII and
// non-ASCII code points never share a class, so "ſ" is not equivalent
// to "s" even though both canonicalize through S.
func EquivalenceClass(cp rune) []rune {
	if cp < 0 || cp >= maxCodepoint {
		return nil
	}
	return equivPages.lookup(cp)
}

// buildCanonicalPage materializes one block of the canonicalization
// table. Entries hold the upper-case target directly; zero marks the
// absence of a mapping, which is unambiguous because no case mapping
// targets U+0000.
func buildCanonicalPage(idx uint32) *[pageSize]rune {
	var page [pageSize]rune
	var written bool
	scanPage(tables.ToUpper, true, idx, func(from, to rune) {
		page[from&pageMask] = to
		written = true
	})
	if !written {
		return nil
	}
	return &page
}

// crossesASCII reports whether exactly one of from and to is ASCII.
// ECMAScript 5 forbids case-insensitive matching across the ASCII
// boundary in either direction, so such pairs never join a class.
func crossesASCII(from, to rune) bool {
	return (from <= 0x7F) != (to <= 0x7F)
}

// buildEquivalencePage materializes one block of the equivalence
// table in two passes over the upper-case program. Pass one registers
// every in-block source under its canonical target, canonical first.
// Pass two walks the whole program again to pick up siblings that
// live outside the block but share a canonical with someone inside
// it or map onto a code point inside it. Classes that end up with a
// single member collapse to nil.
func buildEquivalencePage(idx uint32) *[pageSize][]rune {
	min := rune(idx) << pageShift
	max := min + pageMask

	classes := make(map[rune]*[]rune)
	var slots [pageSize]*[]rune

	bytecode.Iterate(tables.ToUpper, true, func(from, to rune) bool {
		if from > max {
			return false
		}
		if from < min || crossesASCII(from, to) {
			return true
		}
		cls := classes[to]
		if cls == nil {
			cls = &[]rune{to}
			classes[to] = cls
		}
		*cls = append(*cls, from)
		slots[from&pageMask] = cls
		return true
	})

	// A canonical that falls inside the block owns an entry too, even
	// when it is not itself a mapping source. Every other code point
	// of the block without a class starts as a singleton keyed by
	// itself, so that pass two can add sources from other blocks that
	// map onto it.
	for i := range slots {
		cp := min + rune(i)
		if cls := classes[cp]; cls != nil {
			slots[i] = cls
		} else if slots[i] == nil {
			cls := &[]rune{cp}
			classes[cp] = cls
			slots[i] = cls
		}
	}

	bytecode.Iterate(tables.ToUpper, true, func(from, to rune) bool {
		cls := classes[to]
		if cls == nil || crossesASCII(from, to) || slices.Contains(*cls, from) {
			return true
		}
		*cls = append(*cls, from)
		return true
	})

	var page [pageSize][]rune
	var written bool
	for i, cls := range slots {
		if cls == nil || len(*cls) < 2 {
			continue
		}
		page[i] = *cls
		written = true
	}
	if !written {
		return nil
	}
	return &page
}

var (
	canonPages = newPageCache(buildCanonicalPage)
	equivPages = newPageCache(buildEquivalencePage)
)
