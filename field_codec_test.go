// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

import "testing"

func TestLengthField_RoundTrip(t *testing.T) {
	lengths := []int{2, 3, 4, 9, 10, 11, 17, 18, 19, 100, maxMatchLength}

	for _, length := range lengths {
		buf := make([]byte, 16)
		e := newBitEmitter(buf)
		emitLength(e, length)
		n := e.emitTail()

		r := newBitReader(buf[:n])
		got := readLength(r)
		if got != length {
			t.Fatalf("length %d: round trip got %d", length, got)
		}
	}
}

func TestDistanceField_RoundTrip(t *testing.T) {
	distances := []uint32{1, 2, 3, 4, 8, 16, 2048, 2049, 8192, 8193, 1 << 20, 1 << 31}

	for _, d := range distances {
		buf := make([]byte, 16)
		e := newBitEmitter(buf)
		emitDistance(e, d)
		n := e.emitTail()

		r := newBitReader(buf[:n])
		got := readDistance(r)
		if got != d {
			t.Fatalf("distance %d: round trip got %d", d, got)
		}
	}
}

// TestDistanceField_BitWidth pins the exact field width for a few small
// distances, the wire-format detail a one-bit-too-wide encoding would get
// wrong without breaking the field's own round trip.
func TestDistanceField_BitWidth(t *testing.T) {
	cases := []struct {
		distance uint32
		bits     int
	}{
		{1, 6},
		{2, 6},
		{3, 6},
		{4, 6},
		{5, 7},
		{9, 8},
	}

	for _, c := range cases {
		if got := approxDistanceBits(c.distance); got != c.bits {
			t.Fatalf("distance %d: approxDistanceBits=%d, want %d", c.distance, got, c.bits)
		}

		buf := make([]byte, 2)
		e := newBitEmitter(buf)
		emitDistance(e, c.distance)

		// The field plus a marker bit, tail-flushed, must take the number
		// of whole bytes that approxDistanceBits predicts. A field that is
		// too wide is caught only where the extra bit pushes the marker
		// into another byte (distance 5 here).
		e.emitBit(1)
		n := e.emitTail()
		wantBytes := (c.bits + 1 + 7) / 8
		if n != wantBytes {
			t.Fatalf("distance %d: field + marker bit took %d bytes, want %d (field width %d)", c.distance, n, wantBytes, c.bits)
		}
	}
}

func TestTypeField_RoundTrip(t *testing.T) {
	types := []uint32{typeLit, typeMatch, typeShortRep, typeLongRep0, typeLongRep1, typeLongRep2, typeLongRep3}

	buf := make([]byte, 64)
	e := newBitEmitter(buf)
	for _, ty := range types {
		emitType(e, ty)
	}
	n := e.emitTail()

	r := newBitReader(buf[:n])
	for i, want := range types {
		got := readType(r)
		if got != want {
			t.Fatalf("type %d: got %#x want %#x", i, got, want)
		}
	}
}

func TestLiteralField_RoundTrip(t *testing.T) {
	bytesToTest := []byte{0x00, 0x01, 0x7F, 0x80, 0xFF, 0x42, 0xC3}

	msbBuf := make([]byte, 64)
	litBuf := make([]byte, 64)
	msbE := newBitEmitter(msbBuf)
	litE := newBitEmitter(litBuf)

	prev := byte(0)
	for _, b := range bytesToTest {
		emitLiteral(msbE, litE, b, prev)
		prev = b
	}
	msbN := msbE.emitTail()
	litN := litE.emitTail()

	msbR := newBitReader(msbBuf[:msbN])
	litR := newBitReader(litBuf[:litN])
	prev = 0
	for i, want := range bytesToTest {
		got := readLiteral(msbR, litR, prev)
		if got != want {
			t.Fatalf("literal %d: got %#x want %#x", i, got, want)
		}
		prev = got
	}
}

func TestValidMatch_LengthDistanceFloor(t *testing.T) {
	cases := []struct {
		length   int
		distance uint32
		want     bool
	}{
		{2, 1, false},
		{3, 2048, true},
		{3, 2049, false},
		{4, 8192, true},
		{4, 8193, false},
		{5, 1 << 20, true},
	}

	for _, c := range cases {
		if got := validMatch(c.length, c.distance); got != c.want {
			t.Fatalf("validMatch(%d, %d) = %v want %v", c.length, c.distance, got, c.want)
		}
	}
}
