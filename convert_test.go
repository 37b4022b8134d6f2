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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

var conversionCases = []struct {
	input string
	upper string
	lower string
}{
	{"", "", ""},
	{"foo", "FOO", "foo"},
	{"FOO", "FOO", "foo"},
	{"Foo Bar", "FOO BAR", "foo bar"},
	{"123 !?", "123 !?", "123 !?"},
	{"Schloß", "SCHLOSS", "schloß"},
	{"ßß", "SSSS", "ßß"},
	{"ŉ", "ʼN", "ŉ"},
	{"ᾳ", "ΑΙ", "ᾳ"},
	{"\U00010400", "\U00010400", "\U00010428"},
	{"\U00010428", "\U00010400", "\U00010428"},
	{"İstanbul", "İSTANBUL", "istanbul"},
	{"ΣΟΦΟΣ", "ΣΟΦΟΣ", "σοφοσ"},
	{"aµb", "AΜB", "aµb"},
}

func TestToUpper(t *testing.T) {
	for _, tc := range conversionCases {
		assert.Equal(t, tc.upper, ToUpper(tc.input), "ToUpper(%q)", tc.input)
	}
}

func TestToLower(t *testing.T) {
	for _, tc := range conversionCases {
		assert.Equal(t, tc.lower, ToLower(tc.input), "ToLower(%q)", tc.input)
	}
}

func TestConvertIdentity(t *testing.T) {
	// Strings without a single mapped code point come back without a
	// copy.
	for _, s := range []string{"", "FOO", "123 !?", "中文", "\U00010400"} {
		got := ToUpper(s)
		assert.Equal(t, s, got)
		if s != "" {
			assert.Same(t, unsafe.StringData(s), unsafe.StringData(got), "ToUpper(%q) reallocated", s)
		}
	}
	for _, s := range []string{"", "foo", "schloß", "中文", "\U00010428"} {
		got := ToLower(s)
		assert.Equal(t, s, got)
		if s != "" {
			assert.Same(t, unsafe.StringData(s), unsafe.StringData(got), "ToLower(%q) reallocated", s)
		}
	}
}

func TestConvertMalformedInput(t *testing.T) {
	// Bytes that do not decode as UTF-8 pass through unchanged.
	for _, s := range []string{"\xff", "\x80\x80", "\xed\xa0\x80"} {
		assert.Equal(t, s, ToUpper(s))
		assert.Equal(t, s, ToLower(s))
	}
	// Valid code points around the junk still convert.
	assert.Equal(t, "A\x80Z", ToUpper("a\x80z"))
}

func TestConvertIdempotence(t *testing.T) {
	for _, tc := range conversionCases {
		assert.Equal(t, tc.upper, ToUpper(tc.upper), "ToUpper not idempotent on %q", tc.upper)
		assert.Equal(t, tc.lower, ToLower(tc.lower), "ToLower not idempotent on %q", tc.lower)
	}
}

func TestConvertComposition(t *testing.T) {
	affixes := []string{"", "a", "A", ".", "\U00010400"}
	for _, tc := range conversionCases {
		for _, prefix := range affixes {
			for _, suffix := range affixes {
				input := prefix + tc.input + suffix
				assert.Equal(t, ToUpper(prefix)+tc.upper+ToUpper(suffix), ToUpper(input))
				assert.Equal(t, ToLower(prefix)+tc.lower+ToLower(suffix), ToLower(input))
			}
		}
	}
}
