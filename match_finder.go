// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

// matchKind identifies which packet family a candidate would become.
type matchKind int

const (
	kindMatch matchKind = iota
	kindShortRep
	kindLongRep
)

// matchCandidate is a single proposal the greedy compressor can choose to
// emit instead of a literal.
type matchCandidate struct {
	kind     matchKind
	length   int
	distance uint32 // set for kindMatch
	repSlot  int    // set for kindShortRep (always 0) and kindLongRep
	cost     int    // estimated bit cost of emitting this candidate
	saved    int    // bitsSaved versus a run of literals of the same length
}

// commonPrefixLen returns how many bytes src[a:] and src[b:] agree on,
// capped at limit and at the remaining length of src.
func commonPrefixLen(src []byte, a, b, limit int) int {
	n := len(src)
	i := 0
	for i < limit && a+i < n && b+i < n && src[a+i] == src[b+i] {
		i++
	}
	return i
}

// matchLength extends a candidate the way commonPrefixLen does, but takes
// the aligned 8-byte repeated-byte scan when distance is 1 and the
// candidate is itself a repeated-byte run: a run of padding bytes is by far
// the most common pathological input a PE section produces, and scanning it
// word-at-a-time instead of byte-at-a-time avoids the hash chain's usual
// per-candidate cost for exactly that case.
func (mf *matchFinder) matchLength(cand, pos int, distance uint32) int {
	if distance == 1 {
		if run := repeatedByteLength(mf.src, cand); run >= pos-cand {
			return min(run-(pos-cand), maxMatchLength)
		}
	}
	return commonPrefixLen(mf.src, cand, pos, maxMatchLength)
}

// trailingAgreement counts how many of the next (up to 3) bytes after a
// candidate match also agree with their counterpart at cand+length. A
// nonzero count means taking this MATCH would make last_distance[0] == distance
// right when those trailing bytes come up, letting them replay as a cheap
// SHORTREP instead of literals.
func trailingAgreement(src []byte, cand, pos, length int) int {
	a := pos + length
	b := cand + length
	n := len(src)
	agree := 0
	for agree < 3 && a+agree < n && b+agree < n && src[a+agree] == src[b+agree] {
		agree++
	}
	return agree
}

// matchFinder proposes MATCH and REP candidates at a given position,
// grounded on original_source/find_repeats.c's find_longest_occurrence and
// find_occurrence_at_last_dist, which drive the same two searches: a fresh
// hash-chain walk for new distances, and a direct check against each of the
// four remembered distances.
type matchFinder struct {
	src   []byte
	chain *hashChain
}

func newMatchFinder(src []byte) *matchFinder {
	return &matchFinder{src: src, chain: newHashChain(src)}
}

// insert records pos in the hash chain so later positions can find it as a
// match candidate. Callers must insert every position they advance past, in
// increasing order.
func (mf *matchFinder) insert(pos int) {
	mf.chain.insert(pos)
}

// findMatch searches the hash chain for the best MATCH candidate at pos
// (a fresh distance, not one of the four remembered ones), adding a
// trailing-REP bonus to each candidate's score. Returns false if no
// candidate beats the format's length/distance floor.
func (mf *matchFinder) findMatch(pos int) (matchCandidate, bool) {
	best := matchCandidate{}
	found := false

	it := mf.chain.candidates(pos)
	for {
		cand, ok := it.nextPos()
		if !ok {
			break
		}
		distance := uint32(pos - cand)
		if distance == 0 {
			continue
		}

		length := mf.matchLength(cand, pos, distance)
		if !validMatch(length, distance) {
			continue
		}

		cost := matchBitCost(length, distance)
		saved := bitsSaved(cost, length) + trailingRepBonus(trailingAgreement(mf.src, cand, pos, length))
		if !found || better(saved, length, best.saved, best.length) {
			best = matchCandidate{kind: kindMatch, length: length, distance: distance, cost: cost, saved: saved}
			found = true
		}
	}

	return best, found
}

// findLongRep checks each of the four remembered distances directly,
// returning the best LONGREP candidate.
func (mf *matchFinder) findLongRep(pos int, reps *lastDistances) (matchCandidate, bool) {
	best := matchCandidate{}
	found := false

	for slot := 0; slot < 4; slot++ {
		distance := reps.at(slot)
		if distance == 0 || int(distance) > pos {
			continue
		}
		cand := pos - int(distance)
		length := commonPrefixLen(mf.src, cand, pos, maxMatchLength)
		if length < 2 {
			continue
		}

		cost := longRepBitCost(length, slot)
		saved := bitsSaved(cost, length)
		if !found || better(saved, length, best.saved, best.length) {
			best = matchCandidate{kind: kindLongRep, length: length, distance: distance, repSlot: slot, cost: cost, saved: saved}
			found = true
		}
	}

	return best, found
}

// findShortRep reports whether a single-byte SHORTREP at reps[0] is valid:
// src[pos] == src[pos-reps[0]].
func (mf *matchFinder) findShortRep(pos int, reps *lastDistances) (matchCandidate, bool) {
	distance := reps.at(0)
	if distance == 0 || int(distance) > pos {
		return matchCandidate{}, false
	}
	cand := pos - int(distance)
	if mf.src[cand] != mf.src[pos] {
		return matchCandidate{}, false
	}
	cost := typeBits(typeShortRep)
	return matchCandidate{kind: kindShortRep, length: 1, distance: distance, repSlot: 0, cost: cost, saved: bitsSaved(cost, 1)}, true
}

// better reports whether candidate (saved, length) beats (bestSaved,
// bestLength): more bits saved wins; ties prefer the longer match, since a
// longer match advances the cursor further for the same estimated cost.
func better(saved, length, bestSaved, bestLength int) bool {
	if saved != bestSaved {
		return saved > bestSaved
	}
	return length > bestLength
}
