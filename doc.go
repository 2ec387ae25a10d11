// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

/*
Package lza implements the LZA codec: a greedy LZ77 match finder feeding
an LZMA-style packet vocabulary, split across five bitstreams and
entropy-coded with an adaptive binary range coder.

LZA is the compression core of a PE packer. Everything else the packer
needs — PE parsing and rebuilding, the position-independent loader
stub, import-table processing — lives outside this package and talks to
it only through the byte-in/byte-out interface below.

# Compress

	res, err := lza.Compress(src, lza.DefaultCompressOptions())
	// res.Data is the compressed blob; res.Stats holds packet counts.

Compress allocates its output itself, sized with EstimateCompressSize.

# Decompress

	dst, err := lza.Decompress(compressed, lza.DefaultDecompressOptions(len(src)))

DecompressOptions.ScratchLen must be large enough to hold the
arithmetic-decoded LZ intermediate; DefaultDecompressOptions picks
2*OutLen plus a small fixed margin as a safe default.

# Lower-level entry point

LZDecompress skips the arithmetic-coding step, for callers (such as a
loader stub) that arithmetic-decode the LZ blob ahead of time.

This package does no random access, no streaming, no multi-threaded
encoding, no dictionary preloading, and no integrity checking.
*/
package lza
