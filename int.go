// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the storage layer: the Int representation, its
// invariants, and construction (spec §§3, 4.2).

package cttk

import "github.com/pornin/cttk-go/internal/ctword"

// limbBits is the number of content bits carried by each limb; the top
// bit of every limb is reserved and always zero (invariant I1).
const limbBits = 31

const limbMask uint32 = 1<<limbBits - 1 // 0x7FFFFFFF

// Int is a fixed-width two's-complement signed integer with an
// explicit NaN state. The zero Int is not usable directly; create one
// with NewInt.
//
// The declared width is fixed at construction and never changes
// (invariant I4): every method that takes an Int as destination
// preserves its width, and every operation given operands of mismatched
// width produces NaN (invariant I5).
type Int struct {
	width uint32
	nan   Choice
	limbs []uint32 // little-endian, limbBits content bits per limb
}

// numLimbs returns the number of limbs needed to hold a value of
// declared width w.
func numLimbs(w uint32) int {
	return int((w + limbBits - 1) / limbBits)
}

// signIndex returns the bit position, within the top limb, of the sign
// bit of a value of declared width w (0 <= signIndex < limbBits).
func signIndex(w uint32) uint32 {
	return (w - 1) % limbBits
}

// NewInt allocates an Int of declared width w and initializes it to
// NaN, mirroring the reference cti_init: explicit initialization always
// yields a NaN of the requested width (spec §3 Lifecycle). w must be at
// least 1; NewInt panics otherwise, matching the reference's rejection
// of a zero width at construction time — a caller mistake, not a
// secret-dependent condition.
func NewInt(w uint32) *Int {
	if w == 0 {
		panic("cttk: zero width")
	}
	z := &Int{
		width: w,
		nan:   ChoiceTrue,
		limbs: make([]uint32, numLimbs(w)),
	}
	return z
}

// Width returns the declared bit width of z. Width is always public.
func (z *Int) Width() uint32 {
	return z.width
}

// IsNaN reports whether z currently holds the NaN state.
func (z *Int) IsNaN() Choice {
	return z.nan
}

// Init resets z to NaN without changing its width, matching cti_init
// called on an already-allocated Int.
func (z *Int) Init() *Int {
	z.nan = ChoiceTrue
	for i := range z.limbs {
		z.limbs[i] = 0
	}
	return z
}

// setNaN puts z into the NaN state and zeroes its limbs. Invariant I3
// only requires the limbs of a NaN to stay limbBits-clean; zeroing them
// keeps NaN results deterministic and easy to test.
func (z *Int) setNaN() {
	z.nan = ChoiceTrue
	for i := range z.limbs {
		z.limbs[i] = 0
	}
}

// applyNaN sets z's NaN flag to nanBit (0 or 1) and, branch-free,
// zeroes z's limbs iff nanBit is 1. Use this instead of an if on a
// computed NaN/overflow condition: the condition is derived from
// protected state, so the decision to clear the limbs must be a mask,
// never a branch (spec §5 memory-access contract).
func (z *Int) applyNaN(nanBit uint32) {
	keep := ^(-nanBit)
	for i := range z.limbs {
		z.limbs[i] &= keep
	}
	z.nan = choiceOf(nanBit)
}

// sameWidth reports whether a and b share a declared width. Width is
// public, so comparing it directly (and branching on the result) does
// not leak any protected value.
func sameWidth(a, b *Int) bool {
	return a.width == b.width
}

// canonicalizeTop re-imposes invariants I1/I2 on the top limb: its
// reserved bit is cleared and every bit at or above the sign position
// is set equal to the sign bit. Callers invoke this after writing raw
// value bits into z.limbs during an operation.
func (z *Int) canonicalizeTop() {
	top := len(z.limbs) - 1
	if top < 0 {
		return
	}
	k := signIndex(z.width)
	sign := (z.limbs[top] >> k) & 1
	signMask := -sign // 0 or 0xFFFFFFFF
	lowMask := uint32(1)<<k - 1
	extend := (^lowMask) & limbMask
	z.limbs[top] = (z.limbs[top] & lowMask) | (signMask & extend)
}

// sign0 returns the sign bit of z (0 or 1), read directly from the
// canonical top limb. Undefined in meaning (but still limbBits-clean)
// if z is NaN.
func (z *Int) sign0() uint32 {
	top := len(z.limbs) - 1
	if top < 0 {
		return 0
	}
	return (z.limbs[top] >> signIndex(z.width)) & 1
}

// isZero32 returns 1 if the value of z is zero, 0 otherwise. Meaningless
// if z is NaN, but still computed branch-free over all limbs.
func (z *Int) isZero32() uint32 {
	var acc uint32
	for _, w := range z.limbs {
		acc |= w
	}
	return ctword.Eq0_32(acc)
}
