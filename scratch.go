// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the scratch-buffer discipline used by
// multiplication and division (spec §4.9/4.10): small operands are
// served from an inline, fixed-size array; operands too wide for that
// fall back to a heap allocation, unless the caller's Config disables
// heap allocation entirely, in which case the operation reports NaN
// instead of allocating.

package cttk

const stackScratchLimbs = 64

type scratchSpace struct {
	inline [stackScratchLimbs]uint32
}

// acquire returns a zeroed limb slice of length n. ok is false only
// when n exceeds the inline capacity or cfg's stack budget (either
// one), and cfg additionally forbids heap allocation; callers must treat that as
// a NaN-producing condition, not a panic.
func (s *scratchSpace) acquire(cfg *Config, n int) (buf []uint32, ok bool) {
	if n <= stackScratchLimbs && n*4 <= cfg.StackScratchBudget {
		buf = s.inline[:n]
		for i := range buf {
			buf[i] = 0
		}
		return buf, true
	}
	if cfg.HeapAllocDisabled {
		return nil, false
	}
	return make([]uint32, n), true
}
