// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the scalar import/export layer (spec §4.3):
// converting between an Int and the machine integer types, in checked
// and truncating form.
//
// Every checked conversion uses the same round-trip trick as the shift
// and multiplication layers: convert, then convert back, then compare
// to the original — equal means nothing was lost. This sidesteps
// hand-deriving a range check per source/target width pair, and keeps
// the comparison itself branch-free via the ctword equality primitives.

package cttk

import (
	"github.com/pornin/cttk-go/internal/ctmem"
	"github.com/pornin/cttk-go/internal/ctword"
)

// SetInt64 sets z to v and returns z. z becomes NaN if v does not fit
// in z's declared width.
func (z *Int) SetInt64(v int64) *Int {
	return z.setInt64Impl(v, true)
}

// SetInt64Trunc sets z to v mod 2^w, reduced to z's declared width w.
func (z *Int) SetInt64Trunc(v int64) *Int {
	return z.setInt64Impl(v, false)
}

// SetInt32 sets z to v and returns z. z becomes NaN if v does not fit
// in z's declared width.
func (z *Int) SetInt32(v int32) *Int {
	return z.setInt64Impl(int64(v), true)
}

// SetInt32Trunc sets z to v mod 2^w, reduced to z's declared width w.
func (z *Int) SetInt32Trunc(v int32) *Int {
	return z.setInt64Impl(int64(v), false)
}

// SetUint64 sets z to v and returns z. z becomes NaN if v does not fit
// in z's declared width.
func (z *Int) SetUint64(v uint64) *Int {
	return z.setUint64Impl(v, true)
}

// SetUint64Trunc sets z to v mod 2^w, reduced to z's declared width w.
func (z *Int) SetUint64Trunc(v uint64) *Int {
	return z.setUint64Impl(v, false)
}

// SetUint32 sets z to v and returns z. z becomes NaN if v does not fit
// in z's declared width.
func (z *Int) SetUint32(v uint32) *Int {
	return z.setUint64Impl(uint64(v), true)
}

// SetUint32Trunc sets z to v mod 2^w, reduced to z's declared width w.
func (z *Int) SetUint32Trunc(v uint32) *Int {
	return z.setUint64Impl(uint64(v), false)
}

func (z *Int) setInt64Impl(v int64, checked bool) *Int {
	limbsFromInt64(z.limbs, v)
	z.canonicalizeTop()
	nanOut := uint32(0)
	if checked {
		back := limbsToInt64(z.limbs, z.sign0())
		nanOut = ctword.Neq0_64(uint64(back) ^ uint64(v))
	}
	z.applyNaN(nanOut)
	return z
}

func (z *Int) setUint64Impl(v uint64, checked bool) *Int {
	limbsFromUint64(z.limbs, v)
	z.canonicalizeTop()
	nanOut := uint32(0)
	if checked {
		back := limbsToUint64(z.limbs)
		// An unsigned source is never negative: a set sign bit means v
		// reached z's sign position and does not fit.
		nanOut = ctword.Neq0_64(back^v) | z.sign0()
	}
	z.applyNaN(nanOut)
	return z
}

// Int64 returns z's value as an int64 and Choice(true), or an
// unspecified value and Choice(false) if z is NaN or its value does not
// fit in an int64.
func (z *Int) Int64() (int64, Choice) {
	v := limbsToInt64(z.limbs, z.sign0())
	back := make([]uint32, len(z.limbs))
	limbsFromInt64(back, v)
	canonicalizeWidth(back, z.width)
	fits := ctmem.Equal(back, z.limbs)
	ok := fits & (1 ^ z.nan.v)
	return v, choiceOf(ok)
}

// Int64Trunc returns the low 64 bits of z, reinterpreted as a signed
// int64, and Choice(true), or 0 and Choice(false) if z is NaN.
func (z *Int) Int64Trunc() (int64, Choice) {
	v := limbsToInt64(z.limbs, z.sign0())
	return v, choiceOf(1 ^ z.nan.v)
}

// Uint64 returns z's value as a uint64 and Choice(true), or an
// unspecified value and Choice(false) if z is NaN, negative, or its
// value does not fit in a uint64.
func (z *Int) Uint64() (uint64, Choice) {
	v := limbsToUint64(z.limbs)
	back := make([]uint32, len(z.limbs))
	limbsFromUint64(back, v)
	canonicalizeWidth(back, z.width)
	fits := ctmem.Equal(back, z.limbs)
	ok := fits & (1 ^ z.nan.v) & (1 ^ z.sign0())
	return v, choiceOf(ok)
}

// Uint64Trunc returns the low 64 bits of z, reinterpreted as unsigned,
// and Choice(true), or 0 and Choice(false) if z is NaN.
func (z *Int) Uint64Trunc() (uint64, Choice) {
	v := limbsToUint64(z.limbs)
	return v, choiceOf(1 ^ z.nan.v)
}

// Int32 returns z's value as an int32 and Choice(true), or an
// unspecified value and Choice(false) if z is NaN or its value does not
// fit in an int32.
func (z *Int) Int32() (int32, Choice) {
	v, ok := z.Int64()
	narrow := int32(v)
	fits := ctword.Eq0_64(uint64(int64(narrow) ^ v))
	return narrow, choiceOf(ok.v & fits)
}

// Int32Trunc returns the low 32 bits of z, reinterpreted as a signed
// int32, and Choice(true), or 0 and Choice(false) if z is NaN.
func (z *Int) Int32Trunc() (int32, Choice) {
	v, ok := z.Int64Trunc()
	return int32(v), ok
}

// Uint32 returns z's value as a uint32 and Choice(true), or an
// unspecified value and Choice(false) if z is NaN or its value does not
// fit in a uint32.
func (z *Int) Uint32() (uint32, Choice) {
	v, ok := z.Uint64()
	narrow := uint32(v)
	fits := ctword.Eq0_64(uint64(narrow) ^ v)
	return narrow, choiceOf(ok.v & fits)
}

// Uint32Trunc returns the low 32 bits of z, reinterpreted as unsigned,
// and Choice(true), or 0 and Choice(false) if z is NaN.
func (z *Int) Uint32Trunc() (uint32, Choice) {
	v, ok := z.Uint64Trunc()
	return uint32(v), ok
}

func bitOfInt64(v int64, pos uint) uint32 {
	if pos >= 64 {
		pos = 63
	}
	return uint32(uint64(v)>>pos) & 1
}

func limbsFromInt64(limbs []uint32, v int64) {
	for i := range limbs {
		var l uint32
		base := uint(i) * limbBits
		for b := uint(0); b < limbBits; b++ {
			l |= bitOfInt64(v, base+b) << b
		}
		limbs[i] = l
	}
}

func limbsToInt64(limbs []uint32, signBit uint32) int64 {
	var uv uint64
	for pos := uint(0); pos < 64; pos++ {
		idx := int(pos / limbBits)
		var bit uint64
		if idx < len(limbs) {
			bit = uint64((limbs[idx] >> (pos % limbBits)) & 1)
		} else {
			bit = uint64(signBit)
		}
		uv |= bit << pos
	}
	return int64(uv)
}

func limbsFromUint64(limbs []uint32, v uint64) {
	for i := range limbs {
		var l uint32
		base := uint(i) * limbBits
		for b := uint(0); b < limbBits; b++ {
			pos := base + b
			var bit uint32
			if pos < 64 {
				bit = uint32(v>>pos) & 1
			}
			l |= bit << b
		}
		limbs[i] = l
	}
}

func limbsToUint64(limbs []uint32) uint64 {
	var uv uint64
	for pos := uint(0); pos < 64; pos++ {
		idx := int(pos / limbBits)
		if idx < len(limbs) {
			bit := uint64((limbs[idx] >> (pos % limbBits)) & 1)
			uv |= bit << pos
		}
	}
	return uv
}

// canonicalizeWidth re-imposes the sign-extension invariant on a raw
// limb buffer of declared width w, mirroring (*Int).canonicalizeTop for
// buffers not attached to an Int.
func canonicalizeWidth(limbs []uint32, w uint32) {
	top := len(limbs) - 1
	if top < 0 {
		return
	}
	k := signIndex(w)
	sign := (limbs[top] >> k) & 1
	signMask := -sign
	lowMask := uint32(1)<<k - 1
	extend := (^lowMask) & limbMask
	limbs[top] = (limbs[top] & lowMask) | (signMask & extend)
}
