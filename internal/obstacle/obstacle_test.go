// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obstacle

import (
	"testing"

	"github.com/fzipp/pathfind3d/internal/poly"
)

func towerObstacle(t *testing.T) Obstacle {
	t.Helper()
	shape, err := poly.NewPolygon2([]poly.Point2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	o, err := New(shape, 5)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestObstacleContains(t *testing.T) {
	o := towerObstacle(t)
	if !o.Contains(poly.Point3{X: 5, Y: 5, Z: 2}) {
		t.Error("point inside prism should be contained")
	}
	if o.Contains(poly.Point3{X: 5, Y: 5, Z: 5}) {
		t.Error("point at exact roof height should not be contained")
	}
	if o.Contains(poly.Point3{X: 5, Y: 5, Z: 10}) {
		t.Error("point above the prism should not be contained")
	}
}

func TestObstacleIntersectSegmentThroughWall(t *testing.T) {
	o := towerObstacle(t)
	seg := poly.Segment3{A: poly.Point3{X: -5, Y: 5, Z: 2}, B: poly.Point3{X: 15, Y: 5, Z: 2}}
	p, ok := o.IntersectSegment(seg)
	if !ok {
		t.Fatal("expected a wall intersection")
	}
	if p.X != 0 {
		t.Errorf("intersection.X = %v, want 0", p.X)
	}
}

func TestObstacleIntersectSegmentThroughRoof(t *testing.T) {
	o := towerObstacle(t)
	seg := poly.Segment3{A: poly.Point3{X: 5, Y: 5, Z: 10}, B: poly.Point3{X: 5, Y: 5, Z: -1}}
	_, ok := o.IntersectSegment(seg)
	if !ok {
		t.Fatal("expected a roof intersection")
	}
}

func TestObstacleIntersectSegmentMiss(t *testing.T) {
	o := towerObstacle(t)
	seg := poly.Segment3{A: poly.Point3{X: 100, Y: 100, Z: 2}, B: poly.Point3{X: 200, Y: 200, Z: 2}}
	if _, ok := o.IntersectSegment(seg); ok {
		t.Error("expected no intersection")
	}
}

func TestSetIsPointValidAndIsMotionValid(t *testing.T) {
	set := Set{towerObstacle(t)}
	if IsPointValid(set, poly.Point3{X: 5, Y: 5, Z: 2}) {
		t.Error("point inside obstacle should not be valid")
	}
	if !IsPointValid(set, poly.Point3{X: 50, Y: 50, Z: 2}) {
		t.Error("point outside obstacle should be valid")
	}
	if IsMotionValid(set, poly.Segment3{A: poly.Point3{X: -5, Y: 5, Z: 2}, B: poly.Point3{X: 15, Y: 5, Z: 2}}) {
		t.Error("motion through the obstacle should not be valid")
	}
	if !IsMotionValid(set, poly.Segment3{A: poly.Point3{X: 50, Y: 50, Z: 2}, B: poly.Point3{X: 60, Y: 60, Z: 2}}) {
		t.Error("motion away from the obstacle should be valid")
	}
}

func TestNewObstacleRejectsNonPositiveHeight(t *testing.T) {
	shape, _ := poly.NewPolygon2([]poly.Point2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
	if _, err := New(shape, 0); err == nil {
		t.Error("expected an error for zero height")
	}
}
