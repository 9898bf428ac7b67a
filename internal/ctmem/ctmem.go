// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctmem implements constant-time copy, swap, and compare over
// fixed-size limb buffers, generalizing crypto/subtle's byte-oriented
// ConstantTimeCopy and ConstantTimeCompare to the uint32 limbs the
// big-integer engine is built from.
//
// Every function here takes its buffer lengths as public (the caller
// already enforced equal, width-derived lengths before calling in);
// only the limb contents are treated as secret.
package ctmem

import "github.com/pornin/cttk-go/internal/ctword"

// CondCopy sets dst[i] = src[i] for every i if ctl == 1, and leaves dst
// unchanged if ctl == 0. dst and src must have the same length. ctl must
// be 0 or 1.
func CondCopy(ctl uint32, dst, src []uint32) {
	mask := ctword.Expand32(ctl)
	for i := range dst {
		dst[i] ^= mask & (dst[i] ^ src[i])
	}
}

// CondSwap exchanges a[i] and b[i] for every i if ctl == 1, and leaves
// both unchanged if ctl == 0. a and b must have the same length.
func CondSwap(ctl uint32, a, b []uint32) {
	mask := ctword.Expand32(ctl)
	for i := range a {
		t := mask & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}

// Equal returns 1 if x and y are equal element-wise, 0 otherwise. x and
// y must have the same length.
func Equal(x, y []uint32) uint32 {
	var acc uint32
	for i := range x {
		acc |= x[i] ^ y[i]
	}
	return ctword.Eq0_32(acc)
}

// Mux writes into dst the element-wise selection of x (ctl == 1) or y
// (ctl == 0). dst, x, and y must have the same length; dst may alias x
// or y.
func Mux(dst []uint32, ctl uint32, x, y []uint32) {
	mask := ctword.Expand32(ctl)
	for i := range dst {
		dst[i] = y[i] ^ (mask & (x[i] ^ y[i]))
	}
}
