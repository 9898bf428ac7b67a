// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cttk

import "github.com/pornin/cttk-go/internal/ctword"

// Choice is the toolkit's opaque constant-time boolean carrier. It is
// conceptually a bool, but the Go compiler sees a one-field struct with
// an unexported value, so it cannot be used directly in an if or a
// switch: doing so would require the one explicit conversion this type
// offers, Bool, which marks the point where a value stops being
// protected and becomes an ordinary branch condition.
//
// The zero Choice is ChoiceFalse.
type Choice struct {
	v uint32 // invariant: always 0 or 1
}

// ChoiceFalse and ChoiceTrue are the two values of Choice.
var (
	ChoiceFalse = Choice{0}
	ChoiceTrue  = Choice{1}
)

func choiceOf(bit uint32) Choice {
	return Choice{bit & 1}
}

// Bool declassifies c to a native bool. Call this only once c no longer
// needs to be treated as secret-derived: the result is suitable for an
// ordinary branch, but the branch itself is no longer constant-time.
func (c Choice) Bool() bool {
	return c.v != 0
}

// Not returns the logical negation of c.
func (c Choice) Not() Choice {
	return Choice{c.v ^ 1}
}

// And returns the logical AND of c and o.
func (c Choice) And(o Choice) Choice {
	return Choice{c.v & o.v}
}

// Or returns the logical OR of c and o.
func (c Choice) Or(o Choice) Choice {
	return Choice{c.v | o.v}
}

// Xor returns the logical XOR of c and o: true iff c and o differ.
func (c Choice) Xor(o Choice) Choice {
	return Choice{c.v ^ o.v}
}

// Eqv returns the logical equivalence of c and o: true iff c and o are
// equal.
func (c Choice) Eqv(o Choice) Choice {
	return c.Xor(o.Not())
}

// mask32 expands c to an all-zero (false) or all-one (true) 32-bit mask
// suitable for branch-free blending: dst ^= mask & (newval ^ dst).
func (c Choice) mask32() uint32 {
	return ctword.Expand32(c.v)
}

// mask64 expands c to an all-zero or all-one 64-bit mask.
func (c Choice) mask64() uint64 {
	return ctword.Expand64(c.v)
}
