// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import "math/bits"

// LCACalculator answers least-common-ancestor queries over the implicit
// binary tree on the integers 1..N, where node v is the ancestor of 2v and
// 2v+1. Compute(x, y) (x <= y) returns the node that collapses the
// interval [x, y] to the single rank the envelope sweep treats as a
// segment's representative endpoint — not the tree-ancestor of x and y in
// the usual sense, but the smallest value >= x, <= y obtained by rounding
// up to the next power-of-two-aligned boundary common to both. Go's
// math/bits gives the least/most-significant-bit lookups in O(1) rather
// than a precomputed lookup table.
type LCACalculator struct {
	n int
}

// NewLCACalculator returns a calculator valid for node indices in 1..n.
func NewLCACalculator(n int) LCACalculator {
	return LCACalculator{n: n}
}

// Compute returns the representative node for the range [x, y], x <= y.
func (c LCACalculator) Compute(x, y int) int {
	xLSO := leastSignificantOne(x)
	yLSO := leastSignificantOne(y)

	diffXY := 0
	if v := x ^ y; v != 0 {
		if v > c.n {
			v = c.n
		}
		diffXY = mostSignificantOne(v)
	}

	nOfBits := max3(diffXY, xLSO, yLSO)

	var result int
	if nOfBits == yLSO {
		result = y &^ maskUpTo(nOfBits + 1)
	} else {
		result = x &^ maskUpTo(nOfBits + 1)
	}
	result |= maskUpTo(nOfBits+1) &^ maskUpTo(nOfBits)
	return result
}

// leastSignificantOne returns the bit position of the lowest set bit of v
// (v >= 1).
func leastSignificantOne(v int) int {
	return bits.TrailingZeros(uint(v))
}

// mostSignificantOne returns the bit position of the highest set bit of v
// (v >= 1).
func mostSignificantOne(v int) int {
	return bits.Len(uint(v)) - 1
}

// maskUpTo returns a mask with the lowest k bits set.
func maskUpTo(k int) int {
	return (1 << uint(k)) - 1
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
