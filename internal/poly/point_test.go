// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"math"
	"testing"
)

func TestPoint2DistanceTo(t *testing.T) {
	a := Point2{X: 0, Y: 0}
	b := Point2{X: 3, Y: 4}
	if got := a.DistanceTo(b); math.Abs(got-5) > Eps {
		t.Errorf("DistanceTo() = %v, want 5", got)
	}
}

func TestPoint2AngleTo(t *testing.T) {
	p := Point2{X: 0, Y: 0}
	cases := []struct {
		q    Point2
		want R
	}{
		{Point2{X: 0, Y: 1}, 0},
		{Point2{X: 1, Y: 0}, math.Pi / 2},
		{Point2{X: 0, Y: -1}, math.Pi},
		{Point2{X: -1, Y: 0}, 3 * math.Pi / 2},
	}
	for _, c := range cases {
		if got := p.AngleTo(c.q); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("AngleTo(%v) = %v, want %v", c.q, got, c.want)
		}
	}
}

func TestPoint2ApproxEqual(t *testing.T) {
	a := Point2{X: 1, Y: 1}
	b := Point2{X: 1 + 1e-13, Y: 1 - 1e-13}
	if !a.ApproxEqual(b, Eps) {
		t.Errorf("ApproxEqual() = false, want true")
	}
	c := Point2{X: 1.1, Y: 1}
	if a.ApproxEqual(c, Eps) {
		t.Errorf("ApproxEqual() = true, want false")
	}
}

func TestPoint2To3DRoundTrip(t *testing.T) {
	p := Point2{X: 2, Y: 3}
	p3 := Point2To3D(p, 5)
	if p3.X != 2 || p3.Y != 3 || p3.Z != 5 {
		t.Fatalf("Point2To3D() = %v", p3)
	}
	back := Point3To2D(p3)
	if back != p {
		t.Errorf("Point3To2D() = %v, want %v", back, p)
	}
}

func TestPoint3Norm(t *testing.T) {
	p := Point3{X: 1, Y: 2, Z: 2}
	if got := p.Norm(); math.Abs(got-3) > Eps {
		t.Errorf("Norm() = %v, want 3", got)
	}
}
