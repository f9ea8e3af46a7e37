// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import (
	"math"

	"github.com/fzipp/pathfind3d/internal/poly"
)

// nearestSegmentEps is the tolerance used by the nearest-segment rule,
// distinct from the general algebraic Eps: sized to the coordinate
// magnitudes PointToSegmentDistance operates on.
const nearestSegmentEps poly.R = 2e-3

// NearestSegment compares two candidate occluders, a (index idxA) and b
// (index idxB), as seen from pivot along angle (clockwise from +y), and
// reports which is nearer. ambiguous is true when the two are tied to
// within Eps; this resolves the tie deterministically by picking the
// lower segment index and does not fail the query. Nothing is logged
// here, and Sweep ignores the ambiguous result.
func NearestSegment(pivot poly.Point2, angle poly.R, a, b poly.Segment2, idxA, idxB int) (winner int, ambiguous bool) {
	// The point-to-segment distance is measured along the sweep ray
	// itself; PointToSegmentDistance takes the same clockwise-from-+y
	// angle convention.
	da, oka := poly.PointToSegmentDistance(pivot, a.A, a.B, angle, nearestSegmentEps)
	db, okb := poly.PointToSegmentDistance(pivot, b.A, b.B, angle, nearestSegmentEps)

	switch {
	case !oka && !okb:
		return idxA, false
	case !oka:
		return idxB, false
	case !okb:
		return idxA, false
	}

	diff := da - db
	if math.Abs(diff) <= poly.Eps {
		if idxA <= idxB {
			return idxA, true
		}
		return idxB, true
	}
	if diff < 0 {
		return idxA, false
	}
	return idxB, false
}
