// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

// packetEmitter owns the five per-packet-field bitstreams and the running
// state (last-distance vector, previous literal) their field encodings
// depend on. prevLit only ever changes on a LIT emission: MATCH and REP
// packets leave it untouched. One packetEmitter exists per Compress call.
type packetEmitter struct {
	typeS   *bitEmitter
	litMSB  *bitEmitter
	lit     *bitEmitter
	size    *bitEmitter
	offset  *bitEmitter
	reps    lastDistances
	prevLit byte
	stats   PacketStats
}

// newPacketEmitter allocates the five streams from scratch, sized
// generously relative to len(src); the caller trims with finish's reported
// sizes before arithmetic coding.
func newPacketEmitter(scratch [5][]byte) *packetEmitter {
	return &packetEmitter{
		typeS:  newBitEmitter(scratch[streamType]),
		litMSB: newBitEmitter(scratch[streamLiteralMSB]),
		lit:    newBitEmitter(scratch[streamLiteral]),
		size:   newBitEmitter(scratch[streamSize]),
		offset: newBitEmitter(scratch[streamOffset]),
		reps:   newLastDistances(),
	}
}

func (p *packetEmitter) emitLit(b byte) {
	emitType(p.typeS, typeLit)
	emitLiteral(p.litMSB, p.lit, b, p.prevLit)
	p.prevLit = b
	p.stats.Lit++
}

func (p *packetEmitter) emitMatch(length int, distance uint32) {
	emitType(p.typeS, typeMatch)
	emitLength(p.size, length)
	emitDistance(p.offset, distance)
	p.reps.use(distance)
	p.stats.Match++
}

func (p *packetEmitter) emitShortRep() {
	emitType(p.typeS, typeShortRep)
	distance := p.reps.at(0)
	p.reps.use(distance)
	p.stats.ShortRep++
}

func (p *packetEmitter) emitLongRep(slot, length int) {
	emitType(p.typeS, longRepType(slot))
	emitLength(p.size, length)
	distance := p.reps.at(slot)
	p.reps.use(distance)
	p.stats.LongRep[slot]++
}

// finish tail-flushes all five streams and returns their sizes in the fixed
// wire order.
func (p *packetEmitter) finish() StreamSizes {
	return StreamSizes{
		Type:       p.typeS.emitTail(),
		LiteralMSB: p.litMSB.emitTail(),
		Literal:    p.lit.emitTail(),
		Size:       p.size.emitTail(),
		Offset:     p.offset.emitTail(),
	}
}
