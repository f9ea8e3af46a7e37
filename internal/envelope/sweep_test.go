// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import (
	"testing"

	"github.com/fzipp/pathfind3d/internal/poly"
)

// A 10x10 counter-clockwise square (indices 1..4) sits between an origin at index 0
// and two candidate far points: one directly behind the square (blocked),
// one well clear of it (visible).
func squareScene() (points []poly.Point2, segs []SweepSegment) {
	points = []poly.Point2{
		{X: 5, Y: -10}, // 0: origin, looking toward +y
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	for i := 0; i < 4; i++ {
		a, b := 1+i, 1+(i+1)%4
		segs = append(segs, SweepSegment{ID: i, A: a, B: b})
	}
	return points, segs
}

func TestSweepBlockedBehindSquare(t *testing.T) {
	points, segs := squareScene()
	points = append(points, poly.Point2{X: 5, Y: 20}) // 5: behind the square
	order := []int{1, 2, 3, 4, 5}
	// Sorted by angle around the origin with the test helper below.
	order = sortByAngleForTest(points, 0, order)

	visible, occluder := Sweep(points, 0, order, segs)
	if visible[5] {
		t.Error("point behind the square should not be visible")
	}
	if _, ok := occluder[5]; !ok {
		t.Error("a blocked point should have a recorded occluder")
	}
}

func TestSweepVisibleClearOfSquare(t *testing.T) {
	points, segs := squareScene()
	points = append(points, poly.Point2{X: 25, Y: -10}) // 5: well to the side
	order := []int{1, 2, 3, 4, 5}
	order = sortByAngleForTest(points, 0, order)

	visible, _ := Sweep(points, 0, order, segs)
	if !visible[5] {
		t.Error("point clear of the square should be visible")
	}
}

func TestSweepEmptyOrder(t *testing.T) {
	points := []poly.Point2{{X: 0, Y: 0}}
	visible, occluder := Sweep(points, 0, nil, nil)
	if len(visible) != 0 || len(occluder) != 0 {
		t.Error("Sweep with no other points should return empty results")
	}
}

func TestSweepIgnoresSegmentsTouchingOrigin(t *testing.T) {
	points := []poly.Point2{{X: 0, Y: 0}, {X: 0, Y: 5}, {X: 5, Y: 5}}
	segs := []SweepSegment{{ID: 0, A: 0, B: 1}, {ID: 1, A: 1, B: 2}}
	order := sortByAngleForTest(points, 0, []int{1, 2})

	visible, _ := Sweep(points, 0, order, segs)
	if !visible[1] {
		t.Error("a segment incident to the origin cannot occlude its own endpoint")
	}
}

func sortByAngleForTest(points []poly.Point2, origin int, idx []int) []int {
	out := append([]int(nil), idx...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			a := points[origin].AngleTo(points[out[j]])
			b := points[origin].AngleTo(points[out[j-1]])
			if a < b {
				out[j], out[j-1] = out[j-1], out[j]
			} else {
				break
			}
		}
	}
	return out
}
