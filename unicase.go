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

// Package unicase provides Unicode case conversion for strings and
// the canonicalization and equivalence-class queries of ECMAScript 5
// case-insensitive regular expression matching.
//
// All four operations read the same compiled mapping programs, which
// decompress into 256-code-point pages on first touch and stay
// resident afterwards. A process that never leaves ASCII touches one
// page per table; a process churning through the full range pays the
// decompression once per block. All entry points are safe for
// concurrent use.
package unicase

import "github.com/unicase/unicase/internal/tables"

//go:generate go run ./tools/maketables --ucd testdata/ucd --out internal/tables/tables.go

// UnicodeVersion returns the version of the Unicode Character
// Database the mapping tables were generated from.
func UnicodeVersion() string {
	return tables.UnicodeVersion
}
