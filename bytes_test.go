// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cttk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesBERoundTripSigned(t *testing.T) {
	z := NewInt(32).SetInt64(-123456)
	b, ok := z.BytesBE(true)
	require.True(t, ok.Bool())
	require.Len(t, b, 4)

	z2 := NewInt(32).SetBytesBE(b, true)
	require.False(t, z2.IsNaN().Bool())
	require.True(t, z.Eq(z2).Bool())
}

func TestBytesLERoundTripSigned(t *testing.T) {
	z := NewInt(32).SetInt64(-123456)
	b, ok := z.BytesLE(true)
	require.True(t, ok.Bool())

	z2 := NewInt(32).SetBytesLE(b, true)
	require.False(t, z2.IsNaN().Bool())
	require.True(t, z.Eq(z2).Bool())
}

func TestBytesBEUnsignedOfNegativeFails(t *testing.T) {
	z := NewInt(16).SetInt64(-1)
	_, ok := z.BytesBE(false)
	require.False(t, ok.Bool())
}

func TestSetBytesUnsignedMagnitude(t *testing.T) {
	b := []byte{0x01, 0x00} // 256, big-endian
	z := NewInt(16).SetBytesBE(b, false)
	require.False(t, z.IsNaN().Bool())
	v, _ := z.Int64()
	require.EqualValues(t, 256, v)
}

func TestSetBytesCheckedOverflowIsNaN(t *testing.T) {
	b := []byte{0xFF, 0xFF} // 65535, does not fit in a signed 16-bit field
	z := NewInt(16).SetBytesBE(b, false)
	require.True(t, z.IsNaN().Bool())
}

func TestSetBytesBETruncWraps(t *testing.T) {
	b := []byte{0xFF, 0xFF}
	z := NewInt(16).SetBytesBETrunc(b, true)
	require.False(t, z.IsNaN().Bool())
	v, _ := z.Int64Trunc()
	require.EqualValues(t, -1, v)
}

func TestSetBytesEmptySignedIsNaN(t *testing.T) {
	z := NewInt(16).SetBytesBE(nil, true)
	require.True(t, z.IsNaN().Bool())

	z2 := NewInt(16).SetBytesBETrunc([]byte{}, true)
	require.True(t, z2.IsNaN().Bool())
}

func TestSetBytesEmptyUnsignedIsZero(t *testing.T) {
	z := NewInt(16).SetBytesBE(nil, false)
	require.False(t, z.IsNaN().Bool())
	v, _ := z.Int64()
	require.EqualValues(t, 0, v)
}

func TestEncodeWidth128(t *testing.T) {
	z := NewInt(128)
	one := NewInt(128).SetInt64(1)
	shiftAmt := NewInt(128).SetInt64(1)
	_ = shiftAmt
	z.Lsh(one, 120)
	b, ok := z.BytesBE(true)
	require.True(t, ok.Bool())
	require.Len(t, b, 16)
	require.Equal(t, byte(1), b[0])
	for _, x := range b[1:] {
		require.Equal(t, byte(0), x)
	}
}
