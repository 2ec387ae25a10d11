// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

// The length field is a three-tier variable-length code written to the SIZE
// stream: the first one or two bits pick the tier, the rest is the value
// within it.
//
//	0  + 3 bits   -> length 2..9
//	10 + 3 bits   -> length 10..17
//	11 + T bits   -> length 18..17+2^T
//
// Grounded on original_source/lza_compress.c's length-field emission, with
// T fixed at LengthTailBits.

func emitLength(e *bitEmitter, length int) {
	switch {
	case length <= 9:
		e.emitBit(0)
		e.emitBits(uint32(length-2), 3)
	case length <= 17:
		e.emitBits(0x2, 2)
		e.emitBits(uint32(length-10), 3)
	default:
		e.emitBits(0x3, 2)
		e.emitBits(uint32(length-18), LengthTailBits)
	}
}

func readLength(r *bitReader) int {
	if r.getOneBit() == 0 {
		return int(r.getBits(3)) + 2
	}
	if r.getOneBit() == 0 {
		return int(r.getBits(3)) + 10
	}
	return int(r.getBits(LengthTailBits)) + 18
}
