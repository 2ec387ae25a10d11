// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// EstimateCompressSize returns a safe upper bound on the compressed size of
// an input of srcLen bytes, for sizing a destination buffer before calling
// Compress. The worst case is an incompressible input coded almost entirely
// as literals, plus the window-size header and rounding for the five
// streams' tail flushes.
func EstimateCompressSize(srcLen int) int {
	if srcLen == 0 {
		return 2
	}
	return 2 + srcLen*2 + 64
}

// Compress encodes src into an LZA stream using opts, or DefaultCompressOptions
// if opts is nil.
func Compress(src []byte, opts *CompressOptions) (res *CompressResult, err error) {
	if len(src) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "lza.Compress")
	}
	if len(src) > MaxInputSize {
		return nil, errors.Wrapf(ErrAllocation, "lza.Compress: input of %d bytes exceeds MaxInputSize", len(src))
	}
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if opts.WindowSize == 0 || opts.WindowSize > MaxWindowSize {
		return nil, errors.Wrapf(ErrInvalidWindowSize, "lza.Compress: window size %d", opts.WindowSize)
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = errors.Wrap(ErrOutputOverrun, "lza.Compress: scratch buffer too small")
		}
	}()

	scratch := acquireCompressScratch(len(src))
	defer releaseCompressScratch(scratch)

	emitter := newPacketEmitter(scratch.streams)
	mf := newMatchFinder(src)
	runGreedyCompression(src, mf, emitter)
	sizes := emitter.finish()

	lzBuf := assembleLZIntermediate(scratch, sizes)

	dest := make([]byte, EstimateCompressSize(len(src)))
	binary.LittleEndian.PutUint16(dest[0:2], uint16(opts.WindowSize))
	n := arithEncode(dest[2:], lzBuf, opts.WindowSize)

	return &CompressResult{
		Data:   dest[:2+n],
		LZSize: len(lzBuf),
		Stats:  emitter.stats,
		Sizes:  sizes,
	}, nil
}

// runGreedyCompression walks src left to right, at each position choosing
// the candidate packet that saves the most bits versus a literal, with a
// one-step lookahead that defers a fresh MATCH by a single literal when the
// next position offers an equal or better LONGREP — grounded on
// original_source/find_repeats.c's find_longest_occurrence, which re-checks
// position+1 against find_occurrence_at_last_dist before committing.
func runGreedyCompression(src []byte, mf *matchFinder, emitter *packetEmitter) {
	pos := 0
	n := len(src)

	for pos < n {
		shortRep, hasShortRep := mf.findShortRep(pos, &emitter.reps)
		longRep, hasLongRep := mf.findLongRep(pos, &emitter.reps)
		match, hasMatch := mf.findMatch(pos)

		best, have := bestCandidate(hasShortRep, shortRep, hasLongRep, longRep, hasMatch, match)

		if have && best.kind == kindMatch && pos+1 < n {
			if nextRep, ok := mf.findLongRep(pos+1, &emitter.reps); ok && nextRep.length >= best.length {
				have = false // defer: emit this byte as a literal instead
			}
		}

		if !have || best.saved <= 0 {
			emitter.emitLit(src[pos])
			mf.insert(pos)
			pos++
			continue
		}

		switch best.kind {
		case kindShortRep:
			emitter.emitShortRep()
		case kindLongRep:
			emitter.emitLongRep(best.repSlot, best.length)
		case kindMatch:
			emitter.emitMatch(best.length, best.distance)
		}

		for i := 0; i < best.length; i++ {
			mf.insert(pos + i)
		}
		pos += best.length
	}
}

// bestCandidate picks the highest-bitsSaved candidate among the (up to
// three) proposals available at a position. Ties prefer SHORTREP over
// LONGREP over MATCH, since each costs fewer total bits for the same
// estimated savings once encoding overhead outside the scoring model
// (packet alignment, model warm-up) is accounted for.
func bestCandidate(hasShort bool, short matchCandidate, hasLong bool, long matchCandidate, hasMatch bool, match matchCandidate) (matchCandidate, bool) {
	best := matchCandidate{}
	found := false

	consider := func(c matchCandidate, ok bool) {
		if !ok {
			return
		}
		if !found || c.saved > best.saved {
			best = c
			found = true
		}
	}

	consider(short, hasShort)
	consider(long, hasLong)
	consider(match, hasMatch)

	return best, found
}

type compressScratch struct {
	streams [5][]byte
}

// assembleLZIntermediate concatenates a small header encoding the five
// stream sizes with the streams themselves, trimmed to their actual
// tail-flushed length, producing the plaintext that gets arithmetic-coded.
func assembleLZIntermediate(scratch *compressScratch, sizes StreamSizes) []byte {
	headerBuf := make([]byte, 32)
	h := newBitEmitter(headerBuf)
	emitDistance(h, uint32(sizes.Type+1))
	emitDistance(h, uint32(sizes.LiteralMSB+1))
	emitDistance(h, uint32(sizes.Literal+1))
	emitDistance(h, uint32(sizes.Size+1))
	emitDistance(h, uint32(sizes.Offset+1))
	headerLen := h.emitTail()

	total := headerLen + sizes.Total()
	out := make([]byte, 0, total)
	out = append(out, headerBuf[:headerLen]...)
	out = append(out, scratch.streams[streamType][:sizes.Type]...)
	out = append(out, scratch.streams[streamLiteralMSB][:sizes.LiteralMSB]...)
	out = append(out, scratch.streams[streamLiteral][:sizes.Literal]...)
	out = append(out, scratch.streams[streamSize][:sizes.Size]...)
	out = append(out, scratch.streams[streamOffset][:sizes.Offset]...)
	return out
}
