// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the division layer (spec §4.10): truncating
// (toward zero) quotient and remainder, plus a Euclidean-style Mod that
// always returns a non-negative result.
//
// Division works in sign-magnitude: both operands are made nonnegative
// (branch-free), divided by an oblivious bit-at-a-time
// restoring-division loop that always runs its full width regardless of
// either operand's value, then the quotient and remainder are
// conditionally re-negated to restore the truncating-division sign
// convention (quotient sign = sign(x) xor sign(y); remainder sign =
// sign(x)).
//
// Every degenerate case in the reference table falls out of that one
// loop plus two NaN-forcing conditions, without any extra branching on
// operand values:
//
//   - y == 0: the loop runs as if dividing by zero (every subtraction
//     "succeeds"), producing a meaningless quotient/remainder that is
//     simply discarded by forcing NaN on both outputs.
//   - MinValue / -1: the only case where |x|/|y| == 2^(w-1) and the
//     result should be positive — exactly the one magnitude that
//     doesn't fit back into a positive w-bit slot. Checking the would-be
//     sign bit of the unsigned quotient magnitude catches this (and only
//     this) case. This overflow taints the quotient only: the reference
//     table gives divrem(MinValue, -1) as (NaN, 0), not (NaN, NaN), so
//     the remainder NaN flag is computed without the overflow term.
//
// All other entries in the reference table (any / MinValue, MinValue /
// MinValue) are ordinary instances of the general algorithm and need no
// special-casing at all.

package cttk

import "github.com/pornin/cttk-go/internal/ctmem"

// DivRem sets z to the truncating (toward zero) quotient of x / y and r
// to the corresponding remainder, and returns z. Both become NaN if x,
// y, z and r do not all share a width, if either operand is NaN, or if
// y is zero. z alone additionally becomes NaN at the one quotient
// overflow case (MinValue / -1), where r is zero.
func (z *Int) DivRem(r, x, y *Int) *Int {
	return z.DivRemCfg(&DefaultConfig, r, x, y)
}

// DivRemCfg behaves like DivRem, but draws scratch space under cfg's
// policy instead of DefaultConfig.
func (z *Int) DivRemCfg(cfg *Config, r, x, y *Int) *Int {
	if !sameWidth(x, y) || !sameWidth(z, x) || !sameWidth(r, x) {
		z.setNaN()
		r.setNaN()
		return z
	}
	quot, rem, nanQuot, nanRem, ok := divCore(cfg, x, y)
	if !ok {
		z.applyNaN(1)
		r.applyNaN(1)
		return z
	}
	copy(z.limbs, quot)
	z.canonicalizeTop()
	copy(r.limbs, rem)
	r.canonicalizeTop()
	z.applyNaN(nanQuot)
	r.applyNaN(nanRem)
	return z
}

// Div sets z to the truncating quotient of x / y.
func (z *Int) Div(x, y *Int) *Int {
	return z.DivCfg(&DefaultConfig, x, y)
}

// DivCfg behaves like Div under cfg's scratch policy.
func (z *Int) DivCfg(cfg *Config, x, y *Int) *Int {
	r := NewInt(x.width)
	return z.DivRemCfg(cfg, r, x, y)
}

// Rem sets z to the truncating remainder of x / y: the result has the
// same sign as x (or is zero).
func (z *Int) Rem(x, y *Int) *Int {
	return z.RemCfg(&DefaultConfig, x, y)
}

// RemCfg behaves like Rem under cfg's scratch policy.
func (z *Int) RemCfg(cfg *Config, x, y *Int) *Int {
	q := NewInt(x.width)
	q.DivRemCfg(cfg, z, x, y)
	return z
}

// Mod sets z to the Euclidean remainder of x / y: 0 <= z < |y| whenever
// the division is defined, regardless of either operand's sign.
func (z *Int) Mod(x, y *Int) *Int {
	return z.ModCfg(&DefaultConfig, x, y)
}

// ModCfg behaves like Mod under cfg's scratch policy.
func (z *Int) ModCfg(cfg *Config, x, y *Int) *Int {
	q := NewInt(x.width)
	q.DivRemCfg(cfg, z, x, y)
	if !sameWidth(x, y) || !sameWidth(z, x) {
		return z
	}
	n := len(y.limbs)
	var spAbsY, spNegY, spAdjusted scratchSpace
	absY, ok1 := spAbsY.acquire(cfg, n)
	negY, ok2 := spNegY.acquire(cfg, n)
	adjusted, ok3 := spAdjusted.acquire(cfg, n)
	if !(ok1 && ok2 && ok3) {
		z.applyNaN(1)
		return z
	}

	neg := z.sign0()
	negLimbs(negY, y.limbs)
	ctmem.Mux(absY, y.sign0(), negY, y.limbs)

	addLimbs(adjusted, z.limbs, absY)
	ctmem.Mux(z.limbs, neg, adjusted, z.limbs)
	z.canonicalizeTop()
	return z
}

// divCore divides the magnitudes of x and y via an oblivious
// restoring-division loop that always performs len(x.limbs)*limbBits
// iterations regardless of either value, and returns the sign-adjusted quotient
// and remainder limbs, the NaN flags to apply to each (the quotient
// additionally carries the MinValue/-1 overflow case, the remainder
// does not), and whether cfg's scratch policy permitted the operation
// to proceed at all.
func divCore(cfg *Config, x, y *Int) (quot, rem []uint32, nanQuot, nanRem uint32, ok bool) {
	n := len(x.limbs)
	w := x.width

	var spAbsX, spNegX, spAbsY, spNegY scratchSpace
	var spQuotMag, spRemMag, spTmp scratchSpace
	var spNegQuot, spQuot, spNegRem, spRem scratchSpace

	absX, ok1 := spAbsX.acquire(cfg, n)
	negX, ok2 := spNegX.acquire(cfg, n)
	absY, ok3 := spAbsY.acquire(cfg, n)
	negY, ok4 := spNegY.acquire(cfg, n)
	quotMag, ok5 := spQuotMag.acquire(cfg, n)
	remMag, ok6 := spRemMag.acquire(cfg, n)
	tmp, ok7 := spTmp.acquire(cfg, n)
	negQuot, ok8 := spNegQuot.acquire(cfg, n)
	quotBuf, ok9 := spQuot.acquire(cfg, n)
	negRem, ok10 := spNegRem.acquire(cfg, n)
	remBuf, ok11 := spRem.acquire(cfg, n)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7 && ok8 && ok9 && ok10 && ok11) {
		return nil, nil, 0, 0, false
	}

	signX := x.sign0()
	signY := y.sign0()
	resultSign := signX ^ signY
	nanIn := x.nan.v | y.nan.v

	negLimbs(negX, x.limbs)
	ctmem.Mux(absX, signX, negX, x.limbs)

	negLimbs(negY, y.limbs)
	ctmem.Mux(absY, signY, negY, y.limbs)

	totalBits := n * limbBits
	for i := totalBits - 1; i >= 0; i-- {
		lshBitsInto(remMag, remMag, 1)
		bit := (absX[i/limbBits] >> uint(i%limbBits)) & 1
		remMag[0] |= bit

		borrow := subLimbs(tmp, remMag, absY)
		ge := 1 ^ borrow
		mask := -ge
		for k := range remMag {
			remMag[k] ^= mask & (tmp[k] ^ remMag[k])
		}
		quotMag[i/limbBits] |= ge << uint(i%limbBits)
	}

	yIsZero := isZeroLimbs(absY)
	quotTopBit := (quotMag[(w-1)/limbBits] >> uint((w-1)%limbBits)) & 1
	overflow := quotTopBit & (1 ^ resultSign)
	nanRem = nanIn | yIsZero
	nanQuot = nanRem | overflow

	negLimbs(negQuot, quotMag)
	ctmem.Mux(quotBuf, resultSign, negQuot, quotMag)

	negLimbs(negRem, remMag)
	ctmem.Mux(remBuf, signX, negRem, remMag)

	return quotBuf, remBuf, nanQuot, nanRem, true
}
