// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import "testing"

func TestSegmentIntersectionCrossing(t *testing.T) {
	p, kind := SegmentIntersection(
		Point2{X: 0, Y: 0}, Point2{X: 2, Y: 2},
		Point2{X: 0, Y: 2}, Point2{X: 2, Y: 0},
		Eps,
	)
	if kind != Intersects {
		t.Fatalf("kind = %v, want Intersects", kind)
	}
	want := Point2{X: 1, Y: 1}
	if !p.ApproxEqual(want, 1e-9) {
		t.Errorf("intersection = %v, want %v", p, want)
	}
}

func TestSegmentIntersectionParallel(t *testing.T) {
	_, kind := SegmentIntersection(
		Point2{X: 0, Y: 0}, Point2{X: 1, Y: 0},
		Point2{X: 0, Y: 1}, Point2{X: 1, Y: 1},
		Eps,
	)
	if kind != Parallel {
		t.Errorf("kind = %v, want Parallel", kind)
	}
}

func TestSegmentIntersectionNoIntersection(t *testing.T) {
	_, kind := SegmentIntersection(
		Point2{X: 0, Y: 0}, Point2{X: 1, Y: 0},
		Point2{X: 5, Y: 5}, Point2{X: 5, Y: -5},
		Eps,
	)
	if kind != NoIntersection {
		t.Errorf("kind = %v, want NoIntersection", kind)
	}
}

func TestSegmentHorizontalPlaneIntersection(t *testing.T) {
	seg := Segment3{A: Point3{X: 0, Y: 0, Z: -1}, B: Point3{X: 2, Y: 4, Z: 1}}
	p, ok := SegmentHorizontalPlaneIntersection(seg, 0)
	if !ok {
		t.Fatal("expected a crossing")
	}
	want := Point3{X: 1, Y: 2, Z: 0}
	if !p.ApproxEqual(want, 1e-9) {
		t.Errorf("crossing = %v, want %v", p, want)
	}
}

func TestSegmentHorizontalPlaneIntersectionNoCross(t *testing.T) {
	seg := Segment3{A: Point3{X: 0, Y: 0, Z: 1}, B: Point3{X: 2, Y: 4, Z: 2}}
	if _, ok := SegmentHorizontalPlaneIntersection(seg, 0); ok {
		t.Error("expected no crossing")
	}
}
