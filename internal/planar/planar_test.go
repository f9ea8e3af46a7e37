// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planar

import (
	"testing"

	"github.com/fzipp/pathfind3d/internal/poly"
)

func TestTransformIntersectIsSlope(t *testing.T) {
	p := poly.Point2{X: 1, Y: 2}
	q := poly.Point2{X: 4, Y: 8}
	x, ok := Transform(p).Intersect(Transform(q))
	if !ok {
		t.Fatal("distinct x-coordinates should intersect")
	}
	wantSlope := (q.Y - p.Y) / (q.X - p.X)
	if diff := x - wantSlope; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Intersect x = %v, want slope %v", x, wantSlope)
	}
}

func TestIntersectParallel(t *testing.T) {
	p := poly.Point2{X: 1, Y: 2}
	q := poly.Point2{X: 1, Y: 9}
	if _, ok := Transform(p).Intersect(Transform(q)); ok {
		t.Error("equal x-coordinates should yield parallel duals")
	}
}

// sortedByAngle returns every index other than origin, sorted by
// poly.Point2.AngleTo from origin, as a reference to compare SortedAround
// against.
func sortedByAngle(points []poly.Point2, origin int) []int {
	idx := make([]int, 0, len(points)-1)
	for i := range points {
		if i != origin {
			idx = append(idx, i)
		}
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0; j-- {
			a := points[origin].AngleTo(points[idx[j]])
			b := points[origin].AngleTo(points[idx[j-1]])
			if a < b {
				idx[j], idx[j-1] = idx[j-1], idx[j]
			} else {
				break
			}
		}
	}
	return idx
}

func TestSortedAroundMatchesAngleOrder(t *testing.T) {
	points := []poly.Point2{
		{X: 0, Y: 0},   // origin
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: 0},
		{X: -1, Y: -1},
		{X: 0, Y: -1},
		{X: 1, Y: -1},
	}
	ps := New(points)
	got := ps.SortedAround(0)
	want := sortedByAngle(points, 0)
	if len(got) != len(want) {
		t.Fatalf("SortedAround returned %d indices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedAround(0) = %v, want %v", got, want)
			break
		}
	}
}

func TestSortedAroundExcludesOrigin(t *testing.T) {
	points := []poly.Point2{
		{X: 0, Y: 0}, {X: 3, Y: 1}, {X: -2, Y: 5}, {X: 4, Y: -4},
	}
	ps := New(points)
	for _, idx := range ps.SortedAround(1) {
		if idx == 1 {
			t.Error("SortedAround should never include the origin itself")
		}
	}
}

func TestSortedAroundBreaksSharedXTies(t *testing.T) {
	// A square: every point shares its x-coordinate with exactly one
	// other, which would otherwise leave two duals parallel.
	points := []poly.Point2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	ps := New(points)
	got := ps.SortedAround(0)
	if len(got) != 3 {
		t.Fatalf("SortedAround(0) returned %d indices, want 3", len(got))
	}
	seen := map[int]bool{}
	for _, idx := range got {
		seen[idx] = true
	}
	for _, want := range []int{1, 2, 3} {
		if !seen[want] {
			t.Errorf("SortedAround(0) = %v, missing index %d", got, want)
		}
	}
}
