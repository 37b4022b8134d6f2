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

// Command maketables compiles the case-mapping tables of the Unicode
// Character Database into the bytecode programs embedded in
// internal/tables. Download UnicodeData.txt and SpecialCasing.txt
// from unicode.org into a directory and point --ucd at it.
package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/spf13/pflag"

	"github.com/unicase/unicase/internal/bytecode"
)

var (
	ucdDir  = pflag.String("ucd", "testdata/ucd", "directory holding UnicodeData.txt and SpecialCasing.txt")
	out     = pflag.String("out", "internal/tables/tables.go", "output file")
	version = pflag.String("unicode-version", "14.0.0", "UCD version the input files were taken from")
)

func sortedMappings(m map[rune]rune) []bytecode.Mapping {
	mappings := make([]bytecode.Mapping, 0, len(m))
	for from, to := range m {
		mappings = append(mappings, bytecode.Mapping{From: from, To: to})
	}
	sort.Slice(mappings, func(i, j int) bool {
		return mappings[i].From < mappings[j].From
	})
	return mappings
}

// compile encodes mappings and replays the result, failing loudly
// when the round trip does not reproduce the input exactly.
func compile(name string, m map[rune]rune, upper bool) bytecode.Program {
	mappings := sortedMappings(m)
	p := bytecode.Encode(mappings, upper)

	i := 0
	bytecode.Iterate(p, upper, func(from, to rune) bool {
		if i >= len(mappings) {
			log.Fatalf("%s: replay emits extra pair (U+%04X, U+%04X)", name, from, to)
		}
		if want := mappings[i]; from != want.From || to != want.To {
			log.Fatalf("%s: replay pair %d is (U+%04X, U+%04X), want (U+%04X, U+%04X)",
				name, i, from, to, want.From, want.To)
		}
		i++
		return true
	})
	if i != len(mappings) {
		log.Fatalf("%s: replay emits %d pairs, want %d", name, i, len(mappings))
	}

	log.Printf("%s: %d mappings in %d bytes", name, len(mappings), len(p))
	return p
}

func main() {
	pflag.Parse()

	ucd := loadUCD(*ucdDir)
	upper, s1, s2, s3, lower := ucd.mappingTables()

	g := NewGenerator("tables")
	fmt.Fprintf(g, "// UnicodeVersion is the version of the Unicode Character Database the\n")
	fmt.Fprintf(g, "// case-mapping programs below were compiled from.\n")
	fmt.Fprintf(g, "const UnicodeVersion = %q\n\n", *version)

	g.WriteProgram("ToUpper", "holds the single-code-point upper-case mappings.",
		compile("ToUpper", upper, true))
	g.WriteProgram("UpperS1", "holds the first code point of every multi-character\n// upper-case mapping.",
		compile("UpperS1", s1, true))
	g.WriteProgram("UpperS2", "holds the second code point of every multi-character\n// upper-case mapping.",
		compile("UpperS2", s2, true))
	g.WriteProgram("UpperS3", "holds the third code point of the multi-character\n// upper-case mappings that expand to three code points.",
		compile("UpperS3", s3, true))
	g.WriteProgram("ToLower", "holds the single-code-point lower-case mappings.",
		compile("ToLower", lower, false))

	g.WriteToFile(*out)
}
