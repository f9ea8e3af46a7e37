// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import "testing"

func square(side R) Polygon2 {
	p, _ := NewPolygon2([]Point2{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
	})
	return p
}

func TestPolygon2IsInside(t *testing.T) {
	sq := square(10)
	if !sq.IsInside(Point2{X: 5, Y: 5}) {
		t.Error("center should be inside")
	}
	if sq.IsInside(Point2{X: 20, Y: 20}) {
		t.Error("far point should not be inside")
	}
}

func TestPolygon2CheckIntersection(t *testing.T) {
	sq := square(10)
	seg := Segment2{A: Point2{X: -5, Y: 5}, B: Point2{X: 15, Y: 5}}
	p, hit := sq.CheckIntersection(seg)
	if !hit {
		t.Fatal("expected a crossing")
	}
	want := Point2{X: 0, Y: 5}
	if !p.ApproxEqual(want, 1e-9) {
		t.Errorf("nearest crossing = %v, want %v", p, want)
	}
}

func TestPolygon2BoundingBox(t *testing.T) {
	sq := square(10)
	box := sq.BoundingBox()
	want := Box2{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if box != want {
		t.Errorf("BoundingBox() = %v, want %v", box, want)
	}
}

func TestPolygon2IntersectsPolygon(t *testing.T) {
	a := square(10)
	b, _ := NewPolygon2([]Point2{
		{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15},
	})
	if !a.IntersectsPolygon(b) {
		t.Error("overlapping squares should intersect")
	}
	c, _ := NewPolygon2([]Point2{
		{X: 100, Y: 100}, {X: 110, Y: 100}, {X: 110, Y: 110}, {X: 100, Y: 110},
	})
	if a.IntersectsPolygon(c) {
		t.Error("disjoint squares should not intersect")
	}
}

func TestNewPolygon2TooFewVertices(t *testing.T) {
	_, err := NewPolygon2([]Point2{{X: 0, Y: 0}})
	if err == nil {
		t.Error("expected an error for a single-vertex polygon")
	}
}
