// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

// Wire-format constants. Changing any of these breaks compatibility with
// previously compressed streams.

const (
	// MaxWindowSize bounds the adaptive model's sliding bit-history.
	MaxWindowSize = 2048

	// LengthTailBits is the build-time constant T for the length field's
	// top tier: 18..17+2^T. The reference value is 11, giving a maximum
	// match length of 2065. An older variant used 8 (max length 273); this
	// module targets only the reference value.
	LengthTailBits = 11

	// maxMatchLength is the largest length the length field can encode with
	// LengthTailBits tail bits: 17 + 2^T.
	maxMatchLength = 17 + (1 << LengthTailBits)

	// MaxOffsetsPerBucket is the chain depth per hash bucket in the match finder.
	MaxOffsetsPerBucket = 15

	// MaxInputSize bounds a single Compress call. EstimateCompressSize's
	// srcLen*2 and the scratch pool's srcLen+streamScratchMargin sizing
	// would otherwise risk overflowing a 32-bit int well before any real PE
	// section gets anywhere close to this bound.
	MaxInputSize = 1 << 26

	// numStreams is the number of logical bitstreams packets are split across.
	numStreams = 5
)

// Stream indices, in the fixed wire order.
const (
	streamType = iota
	streamLiteralMSB
	streamLiteral
	streamSize
	streamOffset
)

// Packet type prefixes written into the TYPE stream.
const (
	typeLit      = 0x0  // 0
	typeMatch    = 0x2  // 10
	typeShortRep = 0xC  // 1100
	typeLongRep0 = 0xD  // 1101
	typeLongRep1 = 0xE  // 1110
	typeLongRep2 = 0x1E // 11110
	typeLongRep3 = 0x1F // 11111
)

// typeBits gives the bit-width of each prefix above.
func typeBits(t uint32) int {
	switch t {
	case typeLit:
		return 1
	case typeMatch:
		return 2
	case typeShortRep, typeLongRep0, typeLongRep1:
		return 4
	case typeLongRep2, typeLongRep3:
		return 5
	default:
		return 1
	}
}
