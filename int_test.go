// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cttk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIntIsNaN(t *testing.T) {
	z := NewInt(17)
	require.True(t, z.IsNaN().Bool())
	require.EqualValues(t, 17, z.Width())
}

func TestNewIntZeroWidthPanics(t *testing.T) {
	require.Panics(t, func() { NewInt(0) })
}

func TestInitResetsToNaN(t *testing.T) {
	z := NewInt(8).SetInt64Trunc(5)
	require.False(t, z.IsNaN().Bool())
	z.Init()
	require.True(t, z.IsNaN().Bool())
}

func TestSetIntRoundTrip(t *testing.T) {
	cases := []struct {
		width uint32
		v     int64
	}{
		{8, 0}, {8, 127}, {8, -128}, {8, -1},
		{16, 12345}, {16, -12345},
		{64, 1<<62 - 1}, {64, -(1 << 62)},
	}
	for _, c := range cases {
		z := NewInt(c.width).SetInt64(c.v)
		require.False(t, z.IsNaN().Bool(), "width=%d v=%d", c.width, c.v)
		back, ok := z.Int64()
		require.True(t, ok.Bool())
		require.Equal(t, c.v, back)
	}
}

func TestSetInt64OverflowIsNaN(t *testing.T) {
	z := NewInt(8).SetInt64(128)
	require.True(t, z.IsNaN().Bool())
	z2 := NewInt(8).SetInt64(-129)
	require.True(t, z2.IsNaN().Bool())
}

func TestSetInt64TruncWraps(t *testing.T) {
	z := NewInt(8).SetInt64Trunc(256) // wraps to 0
	require.False(t, z.IsNaN().Bool())
	v, ok := z.Int64Trunc()
	require.True(t, ok.Bool())
	require.EqualValues(t, 0, v)
}
