// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

import "testing"

// FuzzRoundTrip checks that any input compresses and decompresses back to
// itself, mirroring the round-trip property other LZ-family codecs in this
// ecosystem fuzz against.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte("Hello, World!"))
	f.Add([]byte("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"))
	f.Add([]byte("ABCDABCDABCDABCDABCDABCDABCDABCDABCDABCD"))

	seq := make([]byte, 256)
	for i := range seq {
		seq[i] = byte(i)
	}
	f.Add(seq)

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) == 0 || len(input) > 32*1024 {
			return
		}

		res, err := Compress(input, DefaultCompressOptions())
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(res.Data, DefaultDecompressOptions(len(input)))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}

		if len(out) != len(input) {
			t.Fatalf("length mismatch: got %d want %d", len(out), len(input))
		}
		for i := range input {
			if out[i] != input[i] {
				t.Fatalf("byte %d: got %#x want %#x", i, out[i], input[i])
			}
		}
	})
}
