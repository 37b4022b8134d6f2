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

package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTrip(t *testing.T) {
	asciiLower := make([]Mapping, 0, 26)
	for c := rune('a'); c <= 'z'; c++ {
		asciiLower = append(asciiLower, Mapping{From: c, To: c - 32})
	}

	interleaved := make([]Mapping, 0, 100)
	for i := 0; i < 100; i++ {
		from := rune(0x100 + 2*i)
		interleaved = append(interleaved, Mapping{From: from, To: from + 1})
	}

	testCases := []struct {
		name     string
		mappings []Mapping
		upper    bool
	}{{
		name:     "empty",
		mappings: nil,
		upper:    true,
	}, {
		name:     "single common offset",
		mappings: []Mapping{{'a', 'A'}},
		upper:    true,
	}, {
		name:     "single arbitrary target",
		mappings: []Mapping{{0x130, 0x69}},
		upper:    false,
	}, {
		name:     "ascii run",
		mappings: asciiLower,
		upper:    true,
	}, {
		name:     "repeat count above six bits",
		mappings: interleaved,
		upper:    false,
	}, {
		name: "large source gap",
		mappings: []Mapping{
			{'a', 'A'},
			{0x10428, 0x10400},
		},
		upper: true,
	}, {
		name: "linear run with positive step",
		mappings: []Mapping{
			{0x100, 0x2c00},
			{0x101, 0x2c05},
			{0x102, 0x2c0a},
		},
		upper: true,
	}, {
		name: "linear run with negative step",
		mappings: []Mapping{
			{0x200, 0x150},
			{0x201, 0x14e},
			{0x202, 0x14c},
		},
		upper: false,
	}, {
		name: "mixed runs and stragglers",
		mappings: []Mapping{
			{0x41, 0x61},
			{0x42, 0x62},
			{0x100, 0x101},
			{0x102, 0x103},
			{0x1e9e, 0xdf},
		},
		upper: false,
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Encode(tc.mappings, tc.upper)
			got := replay(p, tc.upper)
			if len(tc.mappings) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.mappings, got)
		})
	}
}

// The repeat-group search must not leave the source register beyond a
// later mapping, or the later ADD_L operand would go negative.
func TestEncodeNoOvershoot(t *testing.T) {
	mappings := []Mapping{
		{0x100, 0x108}, // stride-2 candidates at offset 8
		{0x102, 0x10a},
		{0x104, 0x10c},
		{0x105, 0x200}, // sits inside the stride-2 gap
	}
	p := Encode(mappings, false)
	assert.Equal(t, mappings, replay(p, false))
}

func TestEncodeOutOfOrder(t *testing.T) {
	require.Panics(t, func() {
		Encode([]Mapping{{0x100, 0x101}, {0x50, 0x51}}, false)
	})
}

func TestEncodeCompactness(t *testing.T) {
	// A 26-element common-offset run is a single repeat group: two
	// EXTEND/ADD_L bytes to seat L, one EXTEND for the count, one EMIT.
	mappings := make([]Mapping, 0, 26)
	for c := rune('a'); c <= 'z'; c++ {
		mappings = append(mappings, Mapping{From: c, To: c - 32})
	}
	p := Encode(mappings, true)
	assert.Equal(t, Program{0x01, 0xa1, 0x1a, 0x45}, p)
}
