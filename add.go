// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the additive layer (spec §4.6): Add, Sub, Neg,
// each in checked and truncating form.

package cttk

// Add sets z to x + y and returns z. z becomes NaN if x and y (or z and
// x) have mismatched width, if either operand is NaN, or if the true
// sum does not fit in z's declared width.
func (z *Int) Add(x, y *Int) *Int {
	return z.addImpl(x, y, true)
}

// AddTrunc sets z to (x + y) mod 2^w, reduced to z's declared width w
// and reinterpreted as two's complement. AddTrunc never produces NaN
// except by width mismatch or NaN-propagation from x or y.
func (z *Int) AddTrunc(x, y *Int) *Int {
	return z.addImpl(x, y, false)
}

func (z *Int) addImpl(x, y *Int, checked bool) *Int {
	if !sameWidth(x, y) || !sameWidth(z, x) {
		z.setNaN()
		return z
	}
	signX := x.sign0()
	signY := y.sign0()
	nanIn := x.nan.v | y.nan.v

	addLimbs(z.limbs, x.limbs, y.limbs)

	var resultSign uint32
	if top := len(z.limbs) - 1; top >= 0 {
		resultSign = (z.limbs[top] >> signIndex(z.width)) & 1
	}
	z.canonicalizeTop()

	nanOut := nanIn
	if checked {
		sameSign := 1 ^ (signX ^ signY)
		differs := resultSign ^ signX
		nanOut |= sameSign & differs
	}
	z.applyNaN(nanOut)
	return z
}

// Sub sets z to x - y and returns z. z becomes NaN if x and y (or z and
// x) have mismatched width, if either operand is NaN, or if the true
// difference does not fit in z's declared width.
func (z *Int) Sub(x, y *Int) *Int {
	return z.subImpl(x, y, true)
}

// SubTrunc sets z to (x - y) mod 2^w, reduced to z's declared width.
func (z *Int) SubTrunc(x, y *Int) *Int {
	return z.subImpl(x, y, false)
}

func (z *Int) subImpl(x, y *Int, checked bool) *Int {
	if !sameWidth(x, y) || !sameWidth(z, x) {
		z.setNaN()
		return z
	}
	signX := x.sign0()
	signY := y.sign0()
	nanIn := x.nan.v | y.nan.v

	subLimbs(z.limbs, x.limbs, y.limbs)

	var resultSign uint32
	if top := len(z.limbs) - 1; top >= 0 {
		resultSign = (z.limbs[top] >> signIndex(z.width)) & 1
	}
	z.canonicalizeTop()

	nanOut := nanIn
	if checked {
		// Overflow in x-y happens iff x and y have different signs and
		// the result's sign differs from x's sign.
		diffSign := signX ^ signY
		differs := resultSign ^ signX
		nanOut |= diffSign & differs
	}
	z.applyNaN(nanOut)
	return z
}

// Neg sets z to -x and returns z. z becomes NaN if z and x have
// mismatched width, if x is NaN, or if x is the minimum representable
// value of its width (the one value whose negation does not fit).
func (z *Int) Neg(x *Int) *Int {
	return z.negImpl(x, true)
}

// NegTrunc sets z to -x reduced to z's declared width; at the minimum
// representable value, -MinValue truncates back to MinValue itself.
func (z *Int) NegTrunc(x *Int) *Int {
	return z.negImpl(x, false)
}

func (z *Int) negImpl(x *Int, checked bool) *Int {
	if !sameWidth(z, x) {
		z.setNaN()
		return z
	}
	signX := x.sign0()
	nanIn := x.nan.v

	negLimbs(z.limbs, x.limbs)

	var resultSign uint32
	if top := len(z.limbs) - 1; top >= 0 {
		resultSign = (z.limbs[top] >> signIndex(z.width)) & 1
	}
	z.canonicalizeTop()

	nanOut := nanIn
	if checked {
		// Overflow happens only at x == MinValue: sign bit set and
		// result sign unchanged (still set) after negation.
		nanOut |= signX & resultSign
	}
	z.applyNaN(nanOut)
	return z
}
