// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cttk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChoiceZeroValueIsFalse(t *testing.T) {
	var c Choice
	require.False(t, c.Bool())
	require.Equal(t, ChoiceFalse, c)
}

func TestChoiceNot(t *testing.T) {
	require.True(t, ChoiceFalse.Not().Bool())
	require.False(t, ChoiceTrue.Not().Bool())
}

func TestChoiceAndOrXor(t *testing.T) {
	require.True(t, ChoiceTrue.And(ChoiceTrue).Bool())
	require.False(t, ChoiceTrue.And(ChoiceFalse).Bool())

	require.True(t, ChoiceTrue.Or(ChoiceFalse).Bool())
	require.False(t, ChoiceFalse.Or(ChoiceFalse).Bool())

	require.True(t, ChoiceTrue.Xor(ChoiceFalse).Bool())
	require.False(t, ChoiceTrue.Xor(ChoiceTrue).Bool())
}

func TestChoiceEqv(t *testing.T) {
	require.True(t, ChoiceTrue.Eqv(ChoiceTrue).Bool())
	require.True(t, ChoiceFalse.Eqv(ChoiceFalse).Bool())
	require.False(t, ChoiceTrue.Eqv(ChoiceFalse).Bool())
}

func TestChoiceOfMasksLowBit(t *testing.T) {
	require.True(t, choiceOf(3).Bool())
	require.False(t, choiceOf(2).Bool())
}
