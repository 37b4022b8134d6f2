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
	"bufio"
	"log"
	"os"
	"path"
	"strconv"
	"strings"
)

// caseMappings holds the full case mappings extracted from the
// Unicode Character Database: simple mappings from UnicodeData.txt,
// overridden by the unconditional full mappings of SpecialCasing.txt.
type caseMappings struct {
	upper map[rune][]rune
	lower map[rune][]rune

	// simpleLower keeps the single-character mappings from
	// UnicodeData.txt even where SpecialCasing.txt overrides them.
	simpleLower map[rune]rune
}

func parseCodepoint(s string) rune {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		log.Fatalf("bad code point %q: %v", s, err)
	}
	return rune(v)
}

func parseSequence(s string) []rune {
	if s == "" {
		return nil
	}
	var seq []rune
	for _, f := range strings.Fields(s) {
		seq = append(seq, parseCodepoint(f))
	}
	return seq
}

func forEachLine(file string, visit func(fields []string)) {
	f, err := os.Open(file)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := scan.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		visit(fields)
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}

// loadUCD reads UnicodeData.txt and SpecialCasing.txt from dir. Only
// unconditional special mappings apply; language-sensitive and
// context-sensitive rows are skipped, matching the behavior of a
// locale-free case converter.
func loadUCD(dir string) *caseMappings {
	m := &caseMappings{
		upper:       make(map[rune][]rune),
		lower:       make(map[rune][]rune),
		simpleLower: make(map[rune]rune),
	}

	unicodeData := path.Join(dir, "UnicodeData.txt")
	forEachLine(unicodeData, func(fields []string) {
		if len(fields) < 15 {
			log.Fatalf("%s: expected 15 fields, got %d", unicodeData, len(fields))
		}
		cp := parseCodepoint(fields[0])
		if up := fields[12]; up != "" {
			m.upper[cp] = []rune{parseCodepoint(up)}
		}
		if lo := fields[13]; lo != "" {
			m.lower[cp] = []rune{parseCodepoint(lo)}
			m.simpleLower[cp] = parseCodepoint(lo)
		}
	})
	if len(m.upper) == 0 {
		log.Fatalf("no case mappings in %q (did you download the UCD?)", dir)
	}

	forEachLine(path.Join(dir, "SpecialCasing.txt"), func(fields []string) {
		// code; lower; title; upper; [condition;]
		if len(fields) >= 5 && fields[4] != "" {
			return
		}
		cp := parseCodepoint(fields[0])
		if lo := parseSequence(fields[1]); lo != nil {
			m.lower[cp] = lo
		}
		if up := parseSequence(fields[3]); up != nil {
			m.upper[cp] = up
		}
	})
	return m
}

// mappingTables splits the full mappings into the five per-table maps
// the encoder consumes. Identity mappings drop out. Multi-character
// lower-case mappings fall back to the simple mapping so that every
// lower-case entry stays a single code point; U+0130 is the only code
// point this touches.
func (m *caseMappings) mappingTables() (upper, s1, s2, s3, lower map[rune]rune) {
	upper = make(map[rune]rune)
	s1 = make(map[rune]rune)
	s2 = make(map[rune]rune)
	s3 = make(map[rune]rune)
	lower = make(map[rune]rune)

	for cp, seq := range m.upper {
		switch len(seq) {
		case 1:
			if seq[0] != cp {
				upper[cp] = seq[0]
			}
		case 2, 3:
			s1[cp] = seq[0]
			s2[cp] = seq[1]
			if len(seq) == 3 {
				s3[cp] = seq[2]
			}
		default:
			log.Fatalf("U+%04X: upper-case mapping of length %d", cp, len(seq))
		}
	}
	for cp, seq := range m.lower {
		if len(seq) == 1 {
			if seq[0] != cp {
				lower[cp] = seq[0]
			}
			continue
		}
		simple, ok := m.simpleLower[cp]
		if !ok {
			log.Fatalf("U+%04X: multi-character lower-case mapping with no simple fallback", cp)
		}
		if simple != cp {
			lower[cp] = simple
		}
	}
	return
}
