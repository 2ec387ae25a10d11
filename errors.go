// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

import "errors"

// Sentinel errors for compression and decompression. Callers that need to
// distinguish failure modes should use errors.Is; Compress/Decompress wrap
// these with call-site context.
var (
	// ErrEmptyInput is returned when Compress is given a zero-length input.
	ErrEmptyInput = errors.New("lza: empty input")
	// ErrAllocation is returned when an input exceeds MaxInputSize, the point
	// past which the match finder's arena and scratch buffers can no longer
	// be sized without risking integer overflow.
	ErrAllocation = errors.New("lza: input too large to allocate working buffers for")
	// ErrOutputOverrun is returned when the encoder would write past the destination buffer.
	ErrOutputOverrun = errors.New("lza: output buffer overrun")
	// ErrScratchOverrun is returned when Decompress recovers from a run-time
	// panic while decoding. A scratch buffer too small for the stream sizes in
	// the header is reported as ErrCorruptStream instead.
	ErrScratchOverrun = errors.New("lza: scratch buffer overrun")
	// ErrInputOverrun is returned when the decoder would read past the end of its input.
	ErrInputOverrun = errors.New("lza: input overrun")
	// ErrInvalidWindowSize is returned when window_size is 0 or exceeds MaxWindowSize.
	ErrInvalidWindowSize = errors.New("lza: invalid window size")
	// ErrOptionsRequired is returned when Decompress is called with nil options.
	ErrOptionsRequired = errors.New("lza: options required")
	// ErrCorruptStream is returned when the stream-size header in the LZ intermediate
	// cannot possibly fit in the supplied scratch buffer.
	ErrCorruptStream = errors.New("lza: corrupt stream header")
)
