// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctword implements branch-free operators on 32- and 64-bit
// words: multiplexing, equality, ordering, and zero tests. Every
// function here runs in time and touches memory independent of its
// argument values; none of them branch on a secret.
//
// This is the word-primitive layer consumed, not specified, by the
// cttk-go big-integer engine: it is the constant-time toolbox that
// crypto/subtle provides for fixed-width words, generalized to the
// 64-bit and ordering operators the engine needs and that subtle's
// historical API does not expose.
package ctword

// Mux32 returns x if ctl == 1, or y if ctl == 0. ctl must be 0 or 1;
// behavior is undefined for any other value.
func Mux32(ctl uint32, x, y uint32) uint32 {
	return y ^ (-ctl & (x ^ y))
}

// Mux64 returns x if ctl == 1, or y if ctl == 0. ctl must be 0 or 1.
func Mux64(ctl uint32, x, y uint64) uint64 {
	m := -uint64(ctl)
	return y ^ (m & (x ^ y))
}

// Neq0_32 returns 1 if x != 0, 0 otherwise.
func Neq0_32(x uint32) uint32 {
	q := x | -x
	return (q | -q) >> 31
}

// Eq0_32 returns 1 if x == 0, 0 otherwise.
func Eq0_32(x uint32) uint32 {
	return 1 ^ Neq0_32(x)
}

// Neq0_64 returns 1 if x != 0, 0 otherwise.
func Neq0_64(x uint64) uint32 {
	q := x | -x
	return uint32((q | -q) >> 63)
}

// Eq0_64 returns 1 if x == 0, 0 otherwise.
func Eq0_64(x uint64) uint32 {
	return 1 ^ Neq0_64(x)
}

// Eq32 returns 1 if x == y, 0 otherwise.
func Eq32(x, y uint32) uint32 {
	return Eq0_32(x ^ y)
}

// LtU32 returns 1 if x < y (unsigned), 0 otherwise. It is computed from
// the borrow out of x-y widened to 64 bits, never by comparing x and y
// directly.
func LtU32(x, y uint32) uint32 {
	return uint32((uint64(x) - uint64(y)) >> 63)
}

// LeqU32 returns 1 if x <= y (unsigned), 0 otherwise.
func LeqU32(x, y uint32) uint32 {
	return 1 ^ LtU32(y, x)
}

// Expand32 turns a 0/1 control bit into an all-zero or all-one 32-bit
// mask, for use as an operand to bitwise blending (dst ^= mask & (a^b)).
func Expand32(ctl uint32) uint32 {
	return -ctl
}

// Expand64 turns a 0/1 control bit into an all-zero or all-one 64-bit
// mask.
func Expand64(ctl uint32) uint64 {
	return -uint64(ctl)
}
