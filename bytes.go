// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the byte-string codec layer (spec §4.4):
// big/little-endian, signed/unsigned, checked/truncating decode, and
// the corresponding encode. Signed decode treats the byte string as
// already being a two's-complement representation of its own bit
// length, sign-extended or truncated to z's declared width; unsigned
// decode treats it as a nonnegative magnitude, and is additionally
// rejected (NaN, for the checked form) if the decoded value would come
// out negative. Checked decode reuses the round-trip trick from conv.go:
// decode, re-encode at the same byte length and signedness, and compare
// to the input. An empty byte string decodes to zero when unsigned, and
// to NaN when signed: a two's-complement representation needs at least
// one bit to carry a sign, so there is no empty encoding of a signed
// value.

package cttk

import "github.com/pornin/cttk-go/internal/ctword"

func byteLen(w uint32) int {
	return int((w + 7) / 8)
}

// SetBytesBE sets z from the big-endian byte string b and returns z. z
// becomes NaN if the represented value does not fit in z's declared
// width, or (when signed is false) if it is negative.
func (z *Int) SetBytesBE(b []byte, signed bool) *Int {
	return z.setBytesImpl(b, true, signed, true)
}

// SetBytesBETrunc sets z from the big-endian byte string b, reduced to
// z's declared width.
func (z *Int) SetBytesBETrunc(b []byte, signed bool) *Int {
	return z.setBytesImpl(b, true, signed, false)
}

// SetBytesLE sets z from the little-endian byte string b and returns z.
func (z *Int) SetBytesLE(b []byte, signed bool) *Int {
	return z.setBytesImpl(b, false, signed, true)
}

// SetBytesLETrunc sets z from the little-endian byte string b, reduced
// to z's declared width.
func (z *Int) SetBytesLETrunc(b []byte, signed bool) *Int {
	return z.setBytesImpl(b, false, signed, false)
}

func (z *Int) setBytesImpl(b []byte, bigEndian, signed, checked bool) *Int {
	limbsFromBytes(z.limbs, b, bigEndian, signed)
	z.canonicalizeTop()
	nanOut := uint32(0)
	if signed && len(b) == 0 {
		nanOut = 1
	}
	if checked {
		back := limbsToBytes(z.limbs, len(b), bigEndian, z.sign0())
		nanOut |= bytesDiffer(back, b)
		if !signed {
			nanOut |= z.sign0()
		}
	}
	z.applyNaN(nanOut)
	return z
}

// BytesBE returns z's value as a big-endian byte string of
// ceil(width/8) bytes, and Choice(true); or an unspecified result and
// Choice(false) if z is NaN, or (when signed is false) if z is
// negative.
func (z *Int) BytesBE(signed bool) ([]byte, Choice) {
	return z.bytesImpl(true, signed)
}

// BytesLE returns z's value as a little-endian byte string.
func (z *Int) BytesLE(signed bool) ([]byte, Choice) {
	return z.bytesImpl(false, signed)
}

func (z *Int) bytesImpl(bigEndian, signed bool) ([]byte, Choice) {
	n := byteLen(z.width)
	out := limbsToBytes(z.limbs, n, bigEndian, z.sign0())
	ok := 1 ^ z.nan.v
	if !signed {
		ok &= 1 ^ z.sign0()
	}
	return out, choiceOf(ok)
}

func bytesDiffer(a, b []byte) uint32 {
	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return ctword.Neq0_32(uint32(acc))
}

func topBitOfBytes(b []byte, bigEndian bool) uint32 {
	if len(b) == 0 {
		return 0
	}
	var top byte
	if bigEndian {
		top = b[0]
	} else {
		top = b[len(b)-1]
	}
	return uint32(top>>7) & 1
}

func bitOfBytes(b []byte, bigEndian bool, pos uint, signExtend bool) uint32 {
	nbits := uint(len(b)) * 8
	if pos >= nbits {
		if !signExtend {
			return 0
		}
		return topBitOfBytes(b, bigEndian)
	}
	var byteIdx uint
	if bigEndian {
		byteIdx = uint(len(b)) - 1 - pos/8
	} else {
		byteIdx = pos / 8
	}
	return uint32(b[byteIdx]>>(pos%8)) & 1
}

func limbsFromBytes(limbs []uint32, b []byte, bigEndian, signed bool) {
	for i := range limbs {
		var l uint32
		base := uint(i) * limbBits
		for bit := uint(0); bit < limbBits; bit++ {
			l |= bitOfBytes(b, bigEndian, base+bit, signed) << bit
		}
		limbs[i] = l
	}
}

func bitOfLimbs(limbs []uint32, pos uint, signBit uint32) uint32 {
	idx := int(pos / limbBits)
	if idx >= len(limbs) {
		return signBit
	}
	return (limbs[idx] >> (pos % limbBits)) & 1
}

func limbsToBytes(limbs []uint32, nbytes int, bigEndian bool, signBit uint32) []byte {
	out := make([]byte, nbytes)
	for bytePos := 0; bytePos < nbytes; bytePos++ {
		var v byte
		for bit := 0; bit < 8; bit++ {
			pos := uint(bytePos*8 + bit)
			v |= byte(bitOfLimbs(limbs, pos, signBit)) << uint(bit)
		}
		idx := bytePos
		if bigEndian {
			idx = nbytes - 1 - bytePos
		}
		out[idx] = v
	}
	return out
}
