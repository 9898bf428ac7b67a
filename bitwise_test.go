// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cttk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitwiseBasics(t *testing.T) {
	x := NewInt(8).SetInt64(0x0F)
	y := NewInt(8).SetInt64(0x33)

	and := NewInt(8).And(x, y)
	v, _ := and.Int64Trunc()
	require.EqualValues(t, 0x03, v)

	or := NewInt(8).Or(x, y)
	v, _ = or.Int64Trunc()
	require.EqualValues(t, 0x3F, v)

	xor := NewInt(8).Xor(x, y)
	v, _ = xor.Int64Trunc()
	require.EqualValues(t, 0x3C, v)
}

func TestNotIsSelfInverse(t *testing.T) {
	x := NewInt(16).SetInt64(-1234)
	n1 := NewInt(16).Not(x)
	n2 := NewInt(16).Not(n1)
	require.True(t, n2.Eq(x).Bool())
}

func TestEqvAgreesWithNotXor(t *testing.T) {
	x := NewInt(8).SetInt64(0x5A)
	y := NewInt(8).SetInt64(0x3C)
	eqv := NewInt(8).Eqv(x, y)
	xor := NewInt(8).Xor(x, y)
	notXor := NewInt(8).Not(xor)
	require.True(t, eqv.Eq(notXor).Bool())
}

func TestBitwiseNaNPropagates(t *testing.T) {
	x := NewInt(8)
	y := NewInt(8).SetInt64(1)
	require.True(t, NewInt(8).And(x, y).IsNaN().Bool())
	require.True(t, NewInt(8).Or(x, y).IsNaN().Bool())
}
