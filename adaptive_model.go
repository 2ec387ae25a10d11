// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

package lza

// adaptiveModel is the two-symbol probability model shared, bit for bit, by
// the arithmetic encoder and decoder. prob[0] and prob[1] are kept strictly
// positive; the model follows a sliding window of the last W bits so it
// adapts to local statistics instead of converging to a single global
// distribution.
//
// Earlier generations of this model seeded prob with {W*16+1, W*16+1}; this
// one starts from {1, 1} and lets the bounded history do the adapting.
type adaptiveModel struct {
	prob       [2]uint32
	windowSize uint32
	history    []uint8 // ring buffer of the last <=windowSize bits, oldest at head
	head       int     // index of the oldest bit in history
	size       int     // number of bits currently held
}

// initModel resets m to its initial state for the given window size.
// windowSize must satisfy 1 <= windowSize <= MaxWindowSize (checked by callers
// that accept it from the wire/API boundary).
func initModel(m *adaptiveModel, windowSize uint32) {
	m.prob[0] = 1
	m.prob[1] = 1
	m.windowSize = windowSize
	if cap(m.history) < int(windowSize) {
		m.history = make([]uint8, windowSize)
	} else {
		m.history = m.history[:windowSize]
	}
	m.head = 0
	m.size = 0
}

// updateModel increments prob[bit], then evicts the oldest bit once the
// history exceeds the window size (increment-then-evict, so neither counter
// ever reaches zero).
func (m *adaptiveModel) updateModel(bit uint32) {
	bit &= 1
	m.prob[bit]++

	if m.size < len(m.history) {
		m.history[(m.head+m.size)%len(m.history)] = uint8(bit)
		m.size++
		return
	}

	// History is full: evict the oldest bit in place, then advance head so
	// the slot just written becomes the newest entry.
	evicted := m.history[m.head]
	m.prob[evicted]--
	m.history[m.head] = uint8(bit)
	m.head = (m.head + 1) % len(m.history)
}

// probabilities returns the current (prob0, prob1) pair.
func (m *adaptiveModel) probabilities() (uint32, uint32) {
	return m.prob[0], m.prob[1]
}
