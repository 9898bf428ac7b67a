// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cttk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroTests(t *testing.T) {
	zero := NewInt(16).SetInt64(0)
	pos := NewInt(16).SetInt64(5)
	neg := NewInt(16).SetInt64(-5)

	require.True(t, zero.Eq0().Bool())
	require.False(t, pos.Eq0().Bool())

	require.True(t, pos.Neq0().Bool())
	require.False(t, zero.Neq0().Bool())

	require.True(t, pos.Gt0().Bool())
	require.False(t, zero.Gt0().Bool())
	require.False(t, neg.Gt0().Bool())

	require.True(t, zero.Geq0().Bool())
	require.True(t, pos.Geq0().Bool())
	require.False(t, neg.Geq0().Bool())

	require.True(t, neg.Lt0().Bool())
	require.False(t, zero.Lt0().Bool())

	require.True(t, zero.Leq0().Bool())
	require.True(t, neg.Leq0().Bool())
	require.False(t, pos.Leq0().Bool())
}

func TestZeroTestsRejectNaN(t *testing.T) {
	n := NewInt(16)
	require.False(t, n.Eq0().Bool())
	require.False(t, n.Neq0().Bool())
	require.False(t, n.Gt0().Bool())
	require.False(t, n.Geq0().Bool())
	require.False(t, n.Lt0().Bool())
	require.False(t, n.Leq0().Bool())
}

func TestPairwiseComparisons(t *testing.T) {
	a := NewInt(16).SetInt64(3)
	b := NewInt(16).SetInt64(7)

	require.True(t, a.Lt(b).Bool())
	require.True(t, b.Gt(a).Bool())
	require.False(t, a.Eq(b).Bool())
	require.True(t, a.Neq(b).Bool())
	require.True(t, a.Leq(b).Bool())
	require.True(t, b.Geq(a).Bool())
	require.False(t, a.Geq(b).Bool())
	require.False(t, b.Leq(a).Bool())
}

func TestComparisonsAcrossNegativeAndPositive(t *testing.T) {
	neg := NewInt(16).SetInt64(-1)
	pos := NewInt(16).SetInt64(1)
	require.True(t, neg.Lt(pos).Bool())
	require.True(t, pos.Gt(neg).Bool())
}

func TestEqualValuesCompareEqual(t *testing.T) {
	a := NewInt(16).SetInt64(42)
	b := NewInt(16).SetInt64(42)
	require.True(t, a.Eq(b).Bool())
	require.False(t, a.Neq(b).Bool())
	require.True(t, a.Leq(b).Bool())
	require.True(t, a.Geq(b).Bool())
	require.False(t, a.Lt(b).Bool())
	require.False(t, a.Gt(b).Bool())
}

func TestComparisonMismatchedWidthIsFalse(t *testing.T) {
	a := NewInt(16).SetInt64(1)
	b := NewInt(32).SetInt64(1)
	require.False(t, a.Eq(b).Bool())
	require.False(t, a.Lt(b).Bool())
	require.False(t, a.Gt(b).Bool())
	require.Equal(t, 0, a.Cmp(b))
}

func TestComparisonNaNIsFalse(t *testing.T) {
	a := NewInt(16)
	b := NewInt(16).SetInt64(1)
	require.False(t, a.Eq(b).Bool())
	require.False(t, a.Lt(b).Bool())
	require.False(t, a.Gt(b).Bool())
	require.False(t, b.Lt(a).Bool())
	require.False(t, a.Leq(b).Bool())
	require.False(t, b.Leq(a).Bool())
	require.False(t, a.Geq(b).Bool())
	require.False(t, b.Geq(a).Bool())
}

func TestSign(t *testing.T) {
	require.Equal(t, -1, NewInt(16).SetInt64(-9).Sign())
	require.Equal(t, 0, NewInt(16).SetInt64(0).Sign())
	require.Equal(t, 1, NewInt(16).SetInt64(9).Sign())
	require.Equal(t, 0, NewInt(16).Sign())
}

func TestCmp(t *testing.T) {
	a := NewInt(16).SetInt64(-3)
	b := NewInt(16).SetInt64(5)
	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(a))
}
