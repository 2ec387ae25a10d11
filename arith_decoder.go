// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

// arithDecoder is the exact inverse of arithEncoder. It carries
// an extra 32-bit `value` register, seeded by reading the first 32 bits of
// input, which tracks where the original encoder's (low, high) point fell
// within the range. Ported bit-for-bit from original_source/arith_decode.c.
type arithDecoder struct {
	model  adaptiveModel
	stream *bitReader
	low    uint32
	high   uint32
	value  uint32
}

func newArithDecoder(src []byte, windowSize uint32) *arithDecoder {
	d := &arithDecoder{
		stream: newBitReader(src),
		low:    0,
		high:   ^uint32(0),
	}
	initModel(&d.model, windowSize)
	d.value = d.stream.getBits(32)
	return d
}

// decodeNextBit recovers the next coded bit and narrows (low, high) and
// value identically to how the encoder narrowed (low, high).
func (d *arithDecoder) decodeNextBit() uint32 {
	prob0, prob1 := d.model.probabilities()

	rng := uint64(d.high) - uint64(d.low) + 1
	mid := uint32((rng * uint64(prob0)) / uint64(prob0+prob1))

	var outBit uint32
	if d.value >= d.low+mid {
		outBit = 1
	}

	d.model.updateModel(outBit)

	if outBit != 0 {
		d.low += mid
	} else {
		d.high = d.low + mid - 1
	}

	for {
		switch {
		case d.high < 0x80000000 || d.low >= 0x80000000:
			// E1/E2: nothing to do on the decoder side besides renormalising below.

		case d.low >= 0x40000000 && d.high < 0xC0000000:
			// E3
			d.value -= 0x40000000
			d.low &^= 0x40000000
			d.high |= 0x40000000

		default:
			return outBit
		}

		d.low = d.low << 1
		d.high = (d.high << 1) + 1
		d.value = (d.value << 1) + d.stream.getOneBit()
	}
}

// arithDecode entropy-decodes destSize bytes from src into dest.
func arithDecode(dest []byte, src []byte, windowSize uint32) {
	if len(dest) == 0 {
		return
	}

	dec := newArithDecoder(src, windowSize)

	for i := range dest {
		outByte := uint32(1)
		for outByte < 0x100 {
			outByte = (outByte << 1) + dec.decodeNextBit()
		}
		dest[i] = byte(outByte)
	}
}
