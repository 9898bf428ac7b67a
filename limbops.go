// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file holds the limb-level addition/subtraction primitives shared
// by the comparison and additive layers. Each limb holds limbBits
// content bits, so a limb-pair addition or subtraction plus a 0/1
// carry-in never overflows a uint32.

package cttk

import "github.com/pornin/cttk-go/internal/ctword"

// addLimbs computes z = x + y over equal-length limb slices, z may
// alias x or y, and returns the carry out of the top limb (0 or 1).
func addLimbs(z, x, y []uint32) uint32 {
	var carry uint32
	for i := range z {
		s := x[i] + y[i] + carry
		z[i] = s & limbMask
		carry = s >> limbBits
	}
	return carry
}

// subLimbs computes z = x - y over equal-length limb slices, z may
// alias x or y, and returns the borrow out of the top limb (0 or 1).
func subLimbs(z, x, y []uint32) uint32 {
	var borrow uint32
	for i := range z {
		d := x[i] - y[i] - borrow
		z[i] = d & limbMask
		borrow = d >> 31
	}
	return borrow
}

// borrowOf returns only the borrow out of x - y over equal-length limb
// slices, without writing the difference anywhere.
func borrowOf(x, y []uint32) uint32 {
	var borrow uint32
	for i := range x {
		d := x[i] - y[i] - borrow
		borrow = d >> 31
	}
	return borrow
}

// negLimbs computes z = -x over equal-length limb slices, z may alias
// x, and returns the borrow out of the top limb (0 or 1).
func negLimbs(z, x []uint32) uint32 {
	var borrow uint32
	for i := range z {
		d := -x[i] - borrow
		z[i] = d & limbMask
		borrow = d >> 31
	}
	return borrow
}

// isZeroLimbs reports (as 0 or 1) whether every limb of l is zero.
func isZeroLimbs(l []uint32) uint32 {
	var acc uint32
	for _, w := range l {
		acc |= w
	}
	return ctword.Eq0_32(acc)
}
