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

import "unicode/utf8"

// ToUpper returns s with every code point replaced by its upper-case
// mapping. Mappings may expand: a single code point can map to up to
// three ("ß" becomes "SS"). When no code point of s has a mapping, s
// itself is returned and no allocation happens.
func ToUpper(s string) string {
	return convert(s, upperPages)
}

// ToLower returns s with every code point replaced by its lower-case
// mapping. Lower-case mappings never expand. When no code point of s
// has a mapping, s itself is returned and no allocation happens.
func ToLower(s string) string {
	return convert(s, lowerPages)
}

// convert scans the code points of s, copying unchanged runs as whole
// sub-slices and appending the mapped replacement whenever a table
// entry fires. Bytes that do not decode as UTF-8 come out as U+FFFD
// here, which has no mapping, so malformed input passes through
// byte-for-byte.
func convert(s string, pages *pageCache[casemap]) string {
	var buf []byte
	run := 0
	for i, cp := range s {
		m := pages.lookup(cp)
		if m.n == 0 {
			continue
		}
		if buf == nil {
			buf = make([]byte, 0, len(s)+utf8.UTFMax)
		}
		buf = append(buf, s[run:i]...)
		for _, out := range m.cp[:m.n] {
			buf = utf8.AppendRune(buf, out)
		}
		run = i + utf8.RuneLen(cp)
	}
	if buf == nil {
		return s
	}
	return string(append(buf, s[run:]...))
}
