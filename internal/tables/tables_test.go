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

package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicase/unicase/internal/bytecode"
)

func decode(t *testing.T, p []byte, upper bool) map[rune]rune {
	t.Helper()
	m := make(map[rune]rune)
	last := rune(-1)
	bytecode.Iterate(p, upper, func(from, to rune) bool {
		require.Greater(t, from, last, "emission order must be strictly ascending")
		require.Less(t, from, rune(0x110000))
		require.GreaterOrEqual(t, to, rune(0))
		require.Less(t, to, rune(0x110000))
		m[from] = to
		last = from
		return true
	})
	return m
}

func TestToUpperProgram(t *testing.T) {
	m := decode(t, ToUpper, true)

	assert.Equal(t, rune('A'), m['a'])
	assert.Equal(t, rune('Z'), m['z'])
	assert.Equal(t, rune(0x3A3), m[0x3C2])
	assert.Equal(t, rune(0x10400), m[0x10428])

	// Expanding mappings live in the suffix programs, not here.
	_, ok := m[0xDF]
	assert.False(t, ok, "ß must not have a single-character upper-case mapping")
	_, ok = m['A']
	assert.False(t, ok, "upper-case letters must not appear as sources")
}

func TestToLowerProgram(t *testing.T) {
	m := decode(t, ToLower, false)

	assert.Equal(t, rune('a'), m['A'])
	assert.Equal(t, rune(0x10428), m[0x10400])
	assert.Equal(t, rune('i'), m[0x130], "İ must fall back to its simple mapping")

	_, ok := m['a']
	assert.False(t, ok)
}

func TestExpansionPrograms(t *testing.T) {
	s1 := decode(t, UpperS1, true)
	s2 := decode(t, UpperS2, true)
	s3 := decode(t, UpperS3, true)

	// Every second character has a first, every third a second.
	for from := range s2 {
		assert.Contains(t, s1, from)
	}
	for from := range s3 {
		assert.Contains(t, s2, from)
	}
	assert.Greater(t, len(s2), len(s3))

	assert.Equal(t, rune('S'), s1[0xDF])
	assert.Equal(t, rune('S'), s2[0xDF])

	// ŉ upper-cases to a modifier letter followed by N.
	assert.Equal(t, rune(0x2BC), s1[0x149])
	assert.Equal(t, rune('N'), s2[0x149])

	// ﬃ is one of the three-character expansions.
	assert.Equal(t, rune('F'), s1[0xFB03])
	assert.Equal(t, rune('F'), s2[0xFB03])
	assert.Equal(t, rune('I'), s3[0xFB03])
}
