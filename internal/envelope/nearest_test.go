// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import (
	"math"
	"testing"

	"github.com/fzipp/pathfind3d/internal/poly"
)

func TestNearestSegmentPicksCloser(t *testing.T) {
	pivot := poly.Point2{X: 0, Y: 0}
	angle := 0.0 // looking along +y
	near := poly.Segment2{A: poly.Point2{X: -5, Y: 2}, B: poly.Point2{X: 5, Y: 2}}
	far := poly.Segment2{A: poly.Point2{X: -5, Y: 8}, B: poly.Point2{X: 5, Y: 8}}

	winner, ambiguous := NearestSegment(pivot, angle, near, far, 0, 1)
	if ambiguous {
		t.Fatal("segments at different distances should not be ambiguous")
	}
	if winner != 0 {
		t.Errorf("NearestSegment() = %d, want 0 (the nearer segment)", winner)
	}

	winner, _ = NearestSegment(pivot, angle, far, near, 1, 0)
	if winner != 0 {
		t.Errorf("NearestSegment() with swapped args = %d, want 0", winner)
	}
}

func TestNearestSegmentTieBreaksOnIndex(t *testing.T) {
	pivot := poly.Point2{X: 0, Y: 0}
	angle := math.Pi / 4
	a := poly.Segment2{A: poly.Point2{X: -5, Y: 5}, B: poly.Point2{X: 5, Y: 5}}
	b := a

	winner, ambiguous := NearestSegment(pivot, angle, a, b, 2, 7)
	if !ambiguous {
		t.Fatal("identical segments at the same distance should be ambiguous")
	}
	if winner != 2 {
		t.Errorf("NearestSegment() = %d, want the lower index 2", winner)
	}
}
