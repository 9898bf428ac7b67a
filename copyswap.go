// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the whole-Int ownership operations recovered
// from inc/cttk.h's cti_copy/cti_cond_copy/cti_swap/cti_cond_swap/
// cti_mux: moving or selecting between same-width Ints without ever
// branching on which one was chosen.

package cttk

import (
	"github.com/pornin/cttk-go/internal/ctmem"
	"github.com/pornin/cttk-go/internal/ctword"
)

// Set sets z to x and returns z. x and z must share a declared width;
// otherwise z becomes NaN.
func (z *Int) Set(x *Int) *Int {
	if !sameWidth(z, x) {
		z.setNaN()
		return z
	}
	z.nan = x.nan
	copy(z.limbs, x.limbs)
	return z
}

// CondSet sets z to x if ctl is true, and leaves z unchanged if ctl is
// false — in constant time regardless of which. x and z must share a
// declared width; otherwise z becomes NaN (this check, and the
// resulting NaN, is not conditioned on ctl: a width mismatch is public).
func (z *Int) CondSet(ctl Choice, x *Int) *Int {
	if !sameWidth(z, x) {
		z.setNaN()
		return z
	}
	z.nan = Choice{ctword.Mux32(ctl.v, x.nan.v, z.nan.v)}
	ctmem.CondCopy(ctl.v, z.limbs, x.limbs)
	return z
}

// Swap exchanges the values of z and y, which must share a declared
// width; if they do not, both become NaN.
func (z *Int) Swap(y *Int) {
	if !sameWidth(z, y) {
		z.setNaN()
		y.setNaN()
		return
	}
	z.nan, y.nan = y.nan, z.nan
	for i := range z.limbs {
		z.limbs[i], y.limbs[i] = y.limbs[i], z.limbs[i]
	}
}

// CondSwap exchanges the values of z and y if ctl is true, and leaves
// both unchanged if ctl is false — in constant time regardless of
// which. z and y must share a declared width; otherwise both become
// NaN.
func (z *Int) CondSwap(ctl Choice, y *Int) {
	if !sameWidth(z, y) {
		z.setNaN()
		y.setNaN()
		return
	}
	nanXor := ctl.mask32() & (z.nan.v ^ y.nan.v)
	z.nan.v ^= nanXor
	y.nan.v ^= nanXor
	ctmem.CondSwap(ctl.v, z.limbs, y.limbs)
}

// Mux sets z to x if ctl is true, or to y if ctl is false, in constant
// time. x and y must share a declared width with z; otherwise z becomes
// NaN.
func (z *Int) Mux(ctl Choice, x, y *Int) *Int {
	if !sameWidth(x, y) || !sameWidth(z, x) {
		z.setNaN()
		return z
	}
	z.nan = Choice{ctword.Mux32(ctl.v, x.nan.v, y.nan.v)}
	ctmem.Mux(z.limbs, ctl.v, x.limbs, y.limbs)
	return z
}
