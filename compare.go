// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the comparison layer (spec §4.5): zero tests,
// pairwise comparisons, Sign, and Cmp. Every comparison against NaN, or
// between operands of mismatched width, yields false (or 0 for Sign/
// Cmp) — and that rule is itself enforced branch-free on the NaN flag,
// since the memory-access contract (spec §5) forbids branching on it.
// A width mismatch, in contrast, is public and may be tested with an
// ordinary if.

package cttk

import "github.com/pornin/cttk-go/internal/ctmem"

// Eq0 reports whether z is zero.
func (z *Int) Eq0() Choice {
	notNaN := 1 ^ z.nan.v
	return choiceOf(z.isZero32() & notNaN)
}

// Neq0 reports whether z is nonzero.
func (z *Int) Neq0() Choice {
	notNaN := 1 ^ z.nan.v
	return choiceOf((1^z.isZero32())&notNaN)
}

// Gt0 reports whether z is strictly positive.
func (z *Int) Gt0() Choice {
	notNaN := 1 ^ z.nan.v
	return choiceOf((1 ^ z.sign0()) & (1 ^ z.isZero32()) & notNaN)
}

// Geq0 reports whether z is non-negative.
func (z *Int) Geq0() Choice {
	notNaN := 1 ^ z.nan.v
	return choiceOf((1 ^ z.sign0()) & notNaN)
}

// Lt0 reports whether z is strictly negative.
func (z *Int) Lt0() Choice {
	notNaN := 1 ^ z.nan.v
	return choiceOf(z.sign0() & notNaN)
}

// Leq0 reports whether z is non-positive.
func (z *Int) Leq0() Choice {
	notNaN := 1 ^ z.nan.v
	return choiceOf((z.sign0() | z.isZero32()) & notNaN)
}

// ltgt computes, for same-width x and y, (lt, gt, valid): lt and gt are
// each 0 or 1 with the NaN rule already folded in (if either operand is
// NaN, both are 0), and valid is 0 iff either operand is NaN. Callers
// that derive a third predicate from lt/gt by negation (Leq from gt,
// Geq from lt) must still AND in valid themselves, since negating an
// already-NaN-zeroed bit flips it back to true.
func ltgt(x, y *Int) (lt, gt, valid uint32) {
	borrow := borrowOf(x.limbs, y.limbs)
	lt = borrow ^ x.sign0() ^ y.sign0()
	eq := ctmem.Equal(x.limbs, y.limbs)
	gt = (1 ^ lt) & (1 ^ eq)
	valid = (1 ^ x.nan.v) & (1 ^ y.nan.v)
	lt &= valid
	gt &= valid
	return
}

// Eq reports whether x and y are equal. x and y must share a declared
// width; a mismatch (public) yields false, as does either operand being
// NaN.
func (x *Int) Eq(y *Int) Choice {
	if !sameWidth(x, y) {
		return ChoiceFalse
	}
	valid := (1 ^ x.nan.v) & (1 ^ y.nan.v)
	return choiceOf(ctmem.Equal(x.limbs, y.limbs) & valid)
}

// Neq reports whether x and y differ. Same width-mismatch/NaN rule as Eq.
func (x *Int) Neq(y *Int) Choice {
	if !sameWidth(x, y) {
		return ChoiceFalse
	}
	valid := (1 ^ x.nan.v) & (1 ^ y.nan.v)
	return choiceOf((1 ^ ctmem.Equal(x.limbs, y.limbs)) & valid)
}

// Lt reports whether x < y.
func (x *Int) Lt(y *Int) Choice {
	if !sameWidth(x, y) {
		return ChoiceFalse
	}
	lt, _, _ := ltgt(x, y)
	return choiceOf(lt)
}

// Gt reports whether x > y.
func (x *Int) Gt(y *Int) Choice {
	if !sameWidth(x, y) {
		return ChoiceFalse
	}
	_, gt, _ := ltgt(x, y)
	return choiceOf(gt)
}

// Leq reports whether x <= y.
func (x *Int) Leq(y *Int) Choice {
	if !sameWidth(x, y) {
		return ChoiceFalse
	}
	_, gt, valid := ltgt(x, y)
	return choiceOf((1 ^ gt) & valid)
}

// Geq reports whether x >= y.
func (x *Int) Geq(y *Int) Choice {
	if !sameWidth(x, y) {
		return ChoiceFalse
	}
	lt, _, valid := ltgt(x, y)
	return choiceOf((1 ^ lt) & valid)
}

// Sign returns -1, 0, or +1 as z is negative, zero, or positive. The
// result is public, as spec §4.5 allows; it is selected branch-free
// from z's protected sign and zero state and declassified only in this
// final int conversion. Sign returns 0 if z is NaN.
func (z *Int) Sign() int {
	neg := int32(z.sign0())
	notZero := int32(1 ^ z.isZero32())
	valid := int32(1 ^ z.nan.v)
	// pos = 1 when z > 0: not negative and not zero.
	pos := (1 - neg) & notZero
	return int((pos - neg) * valid)
}

// Cmp returns -1, 0, or +1 as x < y, x == y, or x > y. Cmp returns 0 if
// x and y have mismatched width or either is NaN.
func (x *Int) Cmp(y *Int) int {
	if !sameWidth(x, y) {
		return 0
	}
	lt, gt, _ := ltgt(x, y)
	return int(int32(gt) - int32(lt))
}
