// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the multiplicative layer (spec §4.9): signed
// multiplication in checked and truncating form, plus Config-carrying
// variants that control the scratch-buffer fallback.
//
// The product is formed as sign-magnitude: both operands are made
// nonnegative (branch-free, via a conditional negate), multiplied by
// plain unsigned schoolbook multiplication into a double-width limb
// buffer, then the double-width product is conditionally negated back
// if the operand signs differed. Overflow is then exactly the
// condition that the double-width product is not the sign-extension of
// its own low half — the same shift-back-and-compare idea used by the
// shift layer, specialized to a fixed "shift" of zero.

package cttk

import "github.com/pornin/cttk-go/internal/ctmem"

// Mul sets z to x * y and returns z, using DefaultConfig's scratch
// policy. z becomes NaN if x and y (or z and x) have mismatched width,
// if either operand is NaN, if the true product does not fit in z's
// declared width, or if the product required a heap scratch buffer
// larger than DefaultConfig permits.
func (z *Int) Mul(x, y *Int) *Int {
	return z.mulImpl(x, y, true, &DefaultConfig)
}

// MulTrunc sets z to (x * y) mod 2^w, reduced to z's declared width.
func (z *Int) MulTrunc(x, y *Int) *Int {
	return z.mulImpl(x, y, false, &DefaultConfig)
}

// MulCfg behaves like Mul, but draws scratch space under cfg's policy
// instead of DefaultConfig.
func (z *Int) MulCfg(cfg *Config, x, y *Int) *Int {
	return z.mulImpl(x, y, true, cfg)
}

// MulTruncCfg behaves like MulTrunc, but draws scratch space under
// cfg's policy instead of DefaultConfig.
func (z *Int) MulTruncCfg(cfg *Config, x, y *Int) *Int {
	return z.mulImpl(x, y, false, cfg)
}

func (z *Int) mulImpl(x, y *Int, checked bool, cfg *Config) *Int {
	if !sameWidth(x, y) || !sameWidth(z, x) {
		z.setNaN()
		return z
	}
	n := len(z.limbs)
	nanIn := x.nan.v | y.nan.v
	signX := x.sign0()
	signY := y.sign0()
	resultSign := signX ^ signY

	var sp scratchSpace
	absX, ok := sp.acquire(cfg, n)
	if !ok {
		z.applyNaN(1)
		return z
	}
	var sp2 scratchSpace
	absY, ok := sp2.acquire(cfg, n)
	if !ok {
		z.applyNaN(1)
		return z
	}
	var sp3 scratchSpace
	negX, ok := sp3.acquire(cfg, n)
	if !ok {
		z.applyNaN(1)
		return z
	}
	var sp4 scratchSpace
	negY, ok := sp4.acquire(cfg, n)
	if !ok {
		z.applyNaN(1)
		return z
	}

	var sp5 scratchSpace
	prodBuf, ok := sp5.acquire(cfg, 2*n)
	if !ok {
		z.applyNaN(1)
		return z
	}
	var sp6 scratchSpace
	negProd, ok := sp6.acquire(cfg, 2*n)
	if !ok {
		z.applyNaN(1)
		return z
	}

	negLimbs(negX, x.limbs)
	ctmem.Mux(absX, signX, negX, x.limbs)
	negLimbs(negY, y.limbs)
	ctmem.Mux(absY, signY, negY, y.limbs)

	mulLimbsUnsigned(prodBuf, absX, absY)

	negLimbs(negProd, prodBuf)
	ctmem.Mux(prodBuf, resultSign, negProd, prodBuf)

	copy(z.limbs, prodBuf[:n])
	z.canonicalizeTop()

	nanOut := nanIn
	if checked {
		var sp7 scratchSpace
		extended, ok := sp7.acquire(cfg, 2*n)
		if !ok {
			z.applyNaN(1)
			return z
		}
		signExtendInto(extended, z.limbs, z.sign0())
		eq := ctmem.Equal(prodBuf, extended)
		nanOut |= 1 ^ eq
	}
	z.applyNaN(nanOut)
	return z
}

// mulLimbsUnsigned computes prod = x * y as unsigned magnitudes, where
// len(x) == len(y) == n and len(prod) == 2n. prod must not alias x or
// y.
func mulLimbsUnsigned(prod, x, y []uint32) {
	n := len(x)
	for i := range prod {
		prod[i] = 0
	}
	for i := 0; i < n; i++ {
		xi := uint64(x[i])
		var carry uint64
		for j := 0; j < n; j++ {
			t := xi*uint64(y[j]) + uint64(prod[i+j]) + carry
			prod[i+j] = uint32(t) & limbMask
			carry = t >> limbBits
		}
		// prod[i+n] has not been written yet and carry < 2^31, so the
		// final carry is stored directly, without a value-dependent loop.
		prod[i+n] = uint32(carry)
	}
}

// signExtendInto fills dst (length >= len(src)) with src's limbs
// followed by copies of signBit, for comparing a narrow canonical
// value against a wider buffer that should equal its sign extension.
func signExtendInto(dst, src []uint32, signBit uint32) {
	fill := -signBit & limbMask
	n := len(src)
	copy(dst[:n], src)
	for i := n; i < len(dst); i++ {
		dst[i] = fill
	}
}
