// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cttk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetUint32RoundTrip(t *testing.T) {
	z := NewInt(10).SetUint32(300)
	require.False(t, z.IsNaN().Bool())
	v, ok := z.Uint32()
	require.True(t, ok.Bool())
	require.EqualValues(t, 300, v)
}

func TestSetUint32OverflowsWhenNegativeBitSet(t *testing.T) {
	z := NewInt(8).SetUint32(200) // 200 needs the top bit of an 8-bit field
	require.True(t, z.IsNaN().Bool())
}

func TestInt32DoesNotFitNarrowerWidth(t *testing.T) {
	z := NewInt(64).SetInt64(1 << 40)
	_, ok := z.Int32()
	require.False(t, ok.Bool())
}

func TestUint64OfNegativeFails(t *testing.T) {
	z := NewInt(32).SetInt64(-1)
	_, ok := z.Uint64()
	require.False(t, ok.Bool())
}

func TestInt64TruncOfNaNReportsInvalid(t *testing.T) {
	z := NewInt(16)
	_, ok := z.Int64Trunc()
	require.False(t, ok.Bool())
}
