// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Decompress reverses Compress. opts.OutLen must equal the original
// uncompressed length exactly; opts.ScratchLen must be large enough to hold
// the arithmetic-decoded LZ intermediate (header plus five streams).
func Decompress(src []byte, opts *DecompressOptions) (dst []byte, err error) {
	if opts == nil {
		return nil, errors.Wrap(ErrOptionsRequired, "lza.Decompress")
	}
	if len(src) < 2 {
		return nil, errors.Wrap(ErrInputOverrun, "lza.Decompress: missing window-size header")
	}

	windowSize := uint32(binary.LittleEndian.Uint16(src[:2]))
	if windowSize == 0 || windowSize > MaxWindowSize {
		return nil, errors.Wrapf(ErrInvalidWindowSize, "lza.Decompress: window size %d", windowSize)
	}
	if opts.OutLen == 0 {
		return []byte{}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			dst = nil
			err = errors.Wrap(ErrScratchOverrun, "lza.Decompress: scratch buffer too small")
		}
	}()

	scratch := make([]byte, opts.ScratchLen)
	arithDecode(scratch, src[2:], windowSize)

	streams, err := splitLZIntermediate(scratch)
	if err != nil {
		return nil, errors.Wrap(err, "lza.Decompress")
	}

	dst, err = LZDecompress(streams, opts.OutLen)
	if err != nil {
		return nil, errors.Wrap(err, "lza.Decompress")
	}
	return dst, nil
}

// splitLZIntermediate parses the five-size header at the front of an
// arithmetic-decoded LZ intermediate and slices out the five streams that
// follow it.
func splitLZIntermediate(scratch []byte) (streams [5][]byte, err error) {
	h := newBitReader(scratch)
	sizes := StreamSizes{
		Type:       int(readDistance(h)) - 1,
		LiteralMSB: int(readDistance(h)) - 1,
		Literal:    int(readDistance(h)) - 1,
		Size:       int(readDistance(h)) - 1,
		Offset:     int(readDistance(h)) - 1,
	}
	headerLen := (h.bitsConsumed() + 7) / 8

	total := headerLen + sizes.Total()
	if total < 0 || total > len(scratch) {
		return streams, ErrCorruptStream
	}

	pos := headerLen
	streams[streamType] = scratch[pos : pos+sizes.Type]
	pos += sizes.Type
	streams[streamLiteralMSB] = scratch[pos : pos+sizes.LiteralMSB]
	pos += sizes.LiteralMSB
	streams[streamLiteral] = scratch[pos : pos+sizes.Literal]
	pos += sizes.Literal
	streams[streamSize] = scratch[pos : pos+sizes.Size]
	pos += sizes.Size
	streams[streamOffset] = scratch[pos : pos+sizes.Offset]

	return streams, nil
}

// LZDecompress reconstructs outLen bytes from the five already-split
// bitstreams, skipping the arithmetic-coding step. This is the entry point
// a loader stub uses once it has arithmetic-decoded the LZ blob itself.
func LZDecompress(streams [5][]byte, outLen int) (dst []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			dst = nil
			err = ErrCorruptStream
		}
	}()

	dst = make([]byte, outLen)
	reader := newPacketReader(streams)

	outPos := 0
	for outPos < outLen {
		p := reader.readPacket()

		switch p.kind {
		case packetLit:
			dst[outPos] = p.literal
			outPos++

		default:
			length := p.length
			if outPos+length > outLen {
				return nil, ErrCorruptStream
			}
			src := outPos - int(p.distance)
			if src < 0 {
				return nil, ErrCorruptStream
			}
			for i := 0; i < length; i++ {
				dst[outPos+i] = dst[src+i]
			}
			outPos += length
		}
	}

	return dst, nil
}
