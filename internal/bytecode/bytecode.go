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

// Package bytecode implements the compact case-mapping programs that
// drive all case conversion tables.
//
// A program is a flat byte sequence. Replaying it produces a stream of
// (from, to) code point pairs, ordered by strictly ascending from. The
// instruction set keeps three registers: X accumulates immediate
// operands across EXTEND instructions and doubles as a repeat count
// for the EMIT instructions; L is the current source code point; R is
// the explicit target used by EMIT_R. X is reset to zero after every
// instruction other than EXTEND.
package bytecode

// Program is a compiled case-mapping program.
type Program []byte

// The two high bits of every instruction byte select the operation.
// EMIT is further split on bit 5 into EMIT_L and EMIT_R.
const (
	opExtend = 0b00 // X = X<<6 | low6
	opEmit   = 0b01 // emit a repeat group, see below
	opAddL   = 0b10 // L += X<<6 | low6
	opLoadR  = 0b11 // R = X<<6 | low6
)

const (
	low6Mask  = 0x3F
	emitRFlag = 0x20 // distinguishes EMIT_R from EMIT_L
	emitRBias = 2    // EMIT_R advances R by (low 3 bits) - emitRBias
)

// CommonOffsets are the eight case-mapping distances frequent enough
// to earn a 3-bit encoding in EMIT_L. They are applied as-is in the
// lower-case direction and negated in the upper-case direction.
var CommonOffsets = [8]rune{1, 2, 8, 16, 26, 32, 48, 80}

// Iterate replays p, invoking emit for every (from, to) pair in the
// order the program produces them. When emit returns false the replay
// stops immediately, even in the middle of a repeat group. The upper
// flag selects the sign of CommonOffsets.
//
// Iterate never reads past the end of p; a program that ends in the
// middle of an EXTEND chain simply leaves the accumulated operand
// unconsumed.
func Iterate(p Program, upper bool, emit func(from, to rune) bool) {
	var x, l, r rune
	for _, ins := range p {
		switch ins >> 6 {
		case opExtend:
			x = x<<6 | rune(ins&low6Mask)
			continue
		case opAddL:
			l += x<<6 | rune(ins&low6Mask)
		case opLoadR:
			r = x<<6 | rune(ins&low6Mask)
		case opEmit:
			repeat := x
			if repeat == 0 {
				repeat = 1
			}
			step := rune(ins>>3)&3 + 1
			if ins&emitRFlag != 0 {
				delta := rune(ins&7) - emitRBias
				for ; repeat > 0; repeat-- {
					r += delta
					if !emit(l, r) {
						return
					}
					l += step
				}
			} else {
				offset := CommonOffsets[ins&7]
				if upper {
					offset = -offset
				}
				for ; repeat > 0; repeat-- {
					if !emit(l, l+offset) {
						return
					}
					l += step
				}
			}
		}
		x = 0
	}
}
