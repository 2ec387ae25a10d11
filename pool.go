// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

import "sync"

// compressScratchPool recycles the five per-stream scratch buffers Compress
// needs, keyed loosely by capacity rather than input size: a pooled entry is
// reused whenever it's at least as large as the new request, following the
// PE packer's repeated compress-many-sections call pattern rather than
// growing a buffer from scratch on every call.
var compressScratchPool = sync.Pool{
	New: func() interface{} {
		return &compressScratch{}
	},
}

// streamScratchMargin bounds how much larger than len(src) each of the five
// stream buffers must be in the worst case: literal-heavy streams (TYPE,
// LITERAL_MSB, LITERAL) are each under one byte per input byte, and the
// match-heavy streams (SIZE, OFFSET) can't be driven past len(src) either
// since the format's length/distance floor (validMatch) forces at least one
// input byte of match length per byte of offset spent. The margin absorbs
// rounding from tail-flushing all five streams independently.
const streamScratchMargin = 256

func acquireCompressScratch(srcLen int) *compressScratch {
	s := compressScratchPool.Get().(*compressScratch)
	need := srcLen + streamScratchMargin
	for i := range s.streams {
		if cap(s.streams[i]) < need {
			s.streams[i] = make([]byte, need)
		} else {
			s.streams[i] = s.streams[i][:need]
		}
	}
	return s
}

func releaseCompressScratch(s *compressScratch) {
	compressScratchPool.Put(s)
}
