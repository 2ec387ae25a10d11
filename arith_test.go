// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

import (
	"bytes"
	"testing"
)

func TestArithEncodeDecode_RoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xFF},
		[]byte("hello, arithmetic coder"),
		bytes.Repeat([]byte{0xAA}, 300),
		func() []byte {
			b := make([]byte, 512)
			for i := range b {
				b[i] = byte(i * 37)
			}
			return b
		}(),
	}

	for _, src := range cases {
		dest := make([]byte, len(src)*2+64)
		n := arithEncode(dest, src, 64)

		dst := make([]byte, len(src))
		arithDecode(dst, dest[:n], 64)

		if !bytes.Equal(dst, src) {
			t.Fatalf("round trip mismatch: got %x want %x", dst, src)
		}
	}
}

func TestArithEncoder_LowNeverExceedsHigh(t *testing.T) {
	src := []byte("the quick brown fox jumps over the lazy dog")
	enc := newArithEncoder(make([]byte, 256), 64)
	for _, b := range src {
		inputByte := uint32(b) | 0x100
		for inputByte != 1 {
			if enc.low > enc.high {
				t.Fatalf("low (%#x) exceeded high (%#x)", enc.low, enc.high)
			}
			enc.encodeBit(inputByte & 1)
			inputByte >>= 1
		}
	}
}
