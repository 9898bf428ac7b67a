// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the shift layer (spec §4.8): left shift in
// checked and truncating form, right shift (arithmetic, never
// overflows), and count-protected variants of each that do not branch
// on the shift count.
//
// Overflow for a checked left shift is detected by shifting back: a
// left shift by n does not overflow iff arithmetically shifting the
// truncated result back right by n reproduces the original operand.
// This is equivalent to, and cheaper to compute than, inspecting the
// n+1 bits straddling the sign position directly.

package cttk

import "github.com/pornin/cttk-go/internal/ctmem"

// Lsh sets z to x shifted left by n bits and returns z. z becomes NaN
// if z and x have mismatched width, if x is NaN, or if any bit shifted
// out past the sign position differs from what a sign-extension would
// have put there. n is taken to be public: this routine's running time
// depends on n.
func (z *Int) Lsh(x *Int, n uint32) *Int {
	return z.shiftLeftImpl(x, n, true, false)
}

// LshTrunc sets z to (x << n) mod 2^w, reduced to z's declared width
// and reinterpreted as two's complement. n is public.
func (z *Int) LshTrunc(x *Int, n uint32) *Int {
	return z.shiftLeftImpl(x, n, false, false)
}

// LshProt behaves like Lsh, but n is treated as protected: no branch or
// memory access in this routine depends on n's value.
func (z *Int) LshProt(x *Int, n uint32) *Int {
	return z.shiftLeftImpl(x, n, true, true)
}

// LshTruncProt behaves like LshTrunc, but n is treated as protected.
func (z *Int) LshTruncProt(x *Int, n uint32) *Int {
	return z.shiftLeftImpl(x, n, false, true)
}

// Rsh sets z to x shifted right by n bits (arithmetic: the vacated top
// bits are filled with x's sign) and returns z. An arithmetic right
// shift never overflows, so z is NaN only from width mismatch or
// NaN-propagation. n is public.
func (z *Int) Rsh(x *Int, n uint32) *Int {
	return z.shiftRightImpl(x, n, false)
}

// RshProt behaves like Rsh, but n is treated as protected.
func (z *Int) RshProt(x *Int, n uint32) *Int {
	return z.shiftRightImpl(x, n, true)
}

func (z *Int) shiftLeftImpl(x *Int, n uint32, checked, protected bool) *Int {
	if !sameWidth(z, x) {
		z.setNaN()
		return z
	}
	nanIn := x.nan.v
	// z may alias x, so keep the operand for the overflow comparison.
	orig := make([]uint32, len(x.limbs))
	copy(orig, x.limbs)

	if protected {
		obliviousShift(z.limbs, x.limbs, n, true, 0)
	} else {
		lshBitsInto(z.limbs, x.limbs, n)
	}
	z.canonicalizeTop()

	nanOut := nanIn
	if checked {
		newSign := z.sign0()
		back := make([]uint32, len(z.limbs))
		if protected {
			obliviousShift(back, z.limbs, n, false, newSign)
		} else {
			rshBitsInto(back, z.limbs, n, newSign)
		}
		eq := ctmem.Equal(back, orig)
		nanOut |= 1 ^ eq
	}
	z.applyNaN(nanOut)
	return z
}

func (z *Int) shiftRightImpl(x *Int, n uint32, protected bool) *Int {
	if !sameWidth(z, x) {
		z.setNaN()
		return z
	}
	nanIn := x.nan.v
	signX := x.sign0()

	if protected {
		obliviousShift(z.limbs, x.limbs, n, false, signX)
	} else {
		rshBitsInto(z.limbs, x.limbs, n, signX)
	}
	z.canonicalizeTop()
	z.applyNaN(nanIn)
	return z
}
