// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import "testing"

func TestLCACalculatorComputeSamePoint(t *testing.T) {
	c := NewLCACalculator(64)
	for _, x := range []int{1, 2, 3, 4, 7, 8, 16, 31, 63} {
		if got := c.Compute(x, x); got != x {
			t.Errorf("Compute(%d, %d) = %d, want %d", x, x, got, x)
		}
	}
}

func TestLCACalculatorCompute(t *testing.T) {
	c := NewLCACalculator(64)
	cases := []struct{ x, y, want int }{
		{2, 3, 2},
		{1, 2, 2},
	}
	for _, tc := range cases {
		if got := c.Compute(tc.x, tc.y); got != tc.want {
			t.Errorf("Compute(%d, %d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}
