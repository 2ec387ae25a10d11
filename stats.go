// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

// PacketStats tallies how many packets of each kind were emitted by a single
// Compress call. Grounded on original_source/lza_compress.h's COMPRESSED_SIZES.
type PacketStats struct {
	Lit      uint64
	Match    uint64
	ShortRep uint64
	LongRep  [4]uint64 // LongRep[i] counts LONGREP[i] packets
}

// StreamSizes gives the byte length of each of the five bitstreams after
// tail-flushing, before arithmetic coding.
type StreamSizes struct {
	Type       int
	LiteralMSB int
	Literal    int
	Size       int
	Offset     int
}

// Total returns the sum of all five stream sizes — the size of the LZ
// intermediate before the header is prepended.
func (s StreamSizes) Total() int {
	return s.Type + s.LiteralMSB + s.Literal + s.Size + s.Offset
}

// CompressResult is the return value of Compress.
type CompressResult struct {
	// Data is the final arithmetic-coded output, including the 16-bit window-size header.
	Data []byte
	// LZSize is the size of the LZ intermediate (header + five streams) before arithmetic coding.
	LZSize int
	Stats  PacketStats
	Sizes  StreamSizes
}
