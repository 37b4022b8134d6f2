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

package main

import (
	"os"
	"path"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const unicodeDataFragment = `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041
00DF;LATIN SMALL LETTER SHARP S;Ll;0;L;;;;;N;;;;;
0130;LATIN CAPITAL LETTER I WITH DOT ABOVE;Lu;0;L;0049 0307;;;;N;LATIN LETTER I DOT;;;0069;
0131;LATIN SMALL LETTER DOTLESS I;Ll;0;L;;;;;N;;;0049;;0049
4E00;<CJK Ideograph, First>;Lo;0;L;;;;;N;;;;;
`

const specialCasingFragment = `# Special Casing
00DF; 00DF; 0053 0073; 0053 0053; # LATIN SMALL LETTER SHARP S
0130; 0069 0307; 0130; 0130; # LATIN CAPITAL LETTER I WITH DOT ABOVE
FB03; FB03; 0046 0066 0069; 0046 0046 0049; # LATIN SMALL LIGATURE FFI

# Conditional mappings never apply.
0307; ; 0307; 0307; After_Soft_Dotted; # COMBINING DOT ABOVE
03A3; 03C2; 03A3; 03A3; Final_Sigma; # GREEK CAPITAL LETTER SIGMA
`

func writeUCD(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "UnicodeData.txt"), []byte(unicodeDataFragment), 0o644))
	require.NoError(t, os.WriteFile(path.Join(dir, "SpecialCasing.txt"), []byte(specialCasingFragment), 0o644))
	return dir
}

func TestLoadUCD(t *testing.T) {
	m := loadUCD(writeUCD(t))

	want := &caseMappings{
		upper: map[rune][]rune{
			0x61:   {0x41},
			0x130:  {0x130},
			0x131:  {0x49},
			0xDF:   {0x53, 0x53},
			0xFB03: {0x46, 0x46, 0x49},
		},
		lower: map[rune][]rune{
			0x41:   {0x61},
			0x130:  {0x69, 0x307},
			0xDF:   {0xDF},
			0xFB03: {0xFB03},
		},
		simpleLower: map[rune]rune{
			0x41:  0x61,
			0x130: 0x69,
		},
	}
	if diff := cmp.Diff(want, m, cmp.AllowUnexported(caseMappings{})); diff != "" {
		t.Errorf("loadUCD mismatch (-want +got):\n%s", diff)
	}
}

func TestMappingTables(t *testing.T) {
	m := loadUCD(writeUCD(t))
	upper, s1, s2, s3, lower := m.mappingTables()

	assertTable := func(name string, want, got map[rune]rune) {
		t.Helper()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}

	assertTable("upper", map[rune]rune{0x61: 0x41, 0x131: 0x49}, upper)
	assertTable("s1", map[rune]rune{0xDF: 0x53, 0xFB03: 0x46}, s1)
	assertTable("s2", map[rune]rune{0xDF: 0x53, 0xFB03: 0x46}, s2)
	assertTable("s3", map[rune]rune{0xFB03: 0x49}, s3)

	// Multi-character lower mappings collapse to the simple mapping;
	// identity full mappings drop out entirely.
	assertTable("lower", map[rune]rune{0x41: 0x61, 0x130: 0x69}, lower)
}
