// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planar sorts a fixed point set angularly around any of its own
// points, using point-line duality instead of a per-pair angle comparison:
// each point maps to a line, and the x-coordinate where two points' dual
// lines cross equals the slope of the line joining them, so sorting by
// that crossing x-coordinate sorts by slope. A slope alone doesn't
// disambiguate a full turn (opposite directions share a slope), so points
// are first split by which side of the pivot they fall on.
package planar

import (
	"math"
	"sort"

	"github.com/fzipp/pathfind3d/internal/poly"
)

// Line is the dual of a point under the transform used throughout this
// package: the point (x, y) maps to the line y = Slope*x + Intercept with
// Slope = -x, Intercept = y.
type Line struct {
	Slope, Intercept poly.R
}

// Transform returns the dual line of p.
func Transform(p poly.Point2) Line {
	return Line{Slope: -p.X, Intercept: p.Y}
}

// Intersect returns the x-coordinate where l and m cross. Two points on a
// common vertical line (equal X) have parallel duals and no crossing;
// PointSorter avoids this by rotating the point set before transforming.
func (l Line) Intersect(m Line) (poly.R, bool) {
	if l.Slope == m.Slope {
		return 0, false
	}
	return (m.Intercept - l.Intercept) / (l.Slope - m.Slope), true
}

// degeneracyEps is the tolerance for "two points share an x-coordinate",
// the condition that produces parallel (non-intersecting) dual lines.
const degeneracyEps poly.R = 1e-9

// PointSorter answers, for any point in a fixed set, the angular order of
// every other point around it, computed via the dual-line transform above.
type PointSorter struct {
	original []poly.Point2 // point set as given
	rotated  []poly.Point2 // same set, rotated just enough to avoid shared x-coordinates
	lines    []Line        // dual of each rotated point, parallel to the original index
}

// New builds a sorter over points. The returned sorter answers queries by
// original index; the rotation applied internally to break x-coordinate
// ties is a rigid rotation of the whole set, so it changes no pairwise
// angle and therefore no angular ordering.
func New(points []poly.Point2) *PointSorter {
	rotated := rotateToBreakTies(points)
	lines := make([]Line, len(rotated))
	for i, p := range rotated {
		lines[i] = Transform(p)
	}
	return &PointSorter{original: points, rotated: rotated, lines: lines}
}

// rotateToBreakTies returns points unchanged unless some pair shares an
// x-coordinate within degeneracyEps, in which case it returns every point
// rotated about the origin by a angle derived from the set's own spread
// (half the angle between its widest y-difference and narrowest nonzero
// x-difference), which in practice separates every tied pair.
func rotateToBreakTies(points []poly.Point2) []poly.Point2 {
	tie := false
	minXDiff := math.MaxFloat64
	maxYDiff := poly.R(0)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			dx := math.Abs(points[i].X - points[j].X)
			dy := math.Abs(points[i].Y - points[j].Y)
			if dx <= degeneracyEps {
				tie = true
			}
			if dx > degeneracyEps && dx < minXDiff {
				minXDiff = dx
			}
			if dy > maxYDiff {
				maxYDiff = dy
			}
		}
	}
	if !tie {
		return points
	}
	if minXDiff == math.MaxFloat64 {
		minXDiff = 1
	}
	angle := math.Atan2(maxYDiff, minXDiff) / 2
	sin, cos := math.Sin(angle), math.Cos(angle)
	out := make([]poly.Point2, len(points))
	for i, p := range points {
		out[i] = poly.Point2{
			X: p.X*cos - p.Y*sin,
			Y: p.X*sin + p.Y*cos,
		}
	}
	return out
}

// SortedAround returns the indices of every point other than origin,
// ordered by ascending clockwise-from-+y angle around points[origin] (the
// same convention as poly.Point2.AngleTo).
//
// The order is built without ever calling AngleTo on every pair: for each
// other point q, the x-coordinate where q's dual line crosses the pivot's
// dual line equals the slope of the pivot-q line. Points with q.X on the
// pivot's right sweep angle (0, pi) as that slope runs from +inf down to
// -inf; points on the left sweep angle (pi, 2*pi) the same way. So each
// side sorted by descending slope, right side first, yields a correctly
// ordered full turn -- but one that starts wherever the tie-breaking
// rotation's own +y axis happens to fall, not at the original frame's
// angle zero, so the result is finally rotated (a single AngleTo pass) to
// start there, matching AngleTo's own convention exactly.
func (ps *PointSorter) SortedAround(origin int) []int {
	pivot := ps.lines[origin]
	px := ps.rotated[origin].X
	type candidate struct {
		idx   int
		slope poly.R
	}
	var right, left []candidate
	for j := range ps.rotated {
		if j == origin {
			continue
		}
		slope, ok := ps.lines[j].Intersect(pivot)
		if !ok {
			continue
		}
		if ps.rotated[j].X > px {
			right = append(right, candidate{j, slope})
		} else {
			left = append(left, candidate{j, slope})
		}
	}
	sort.Slice(right, func(a, b int) bool { return right[a].slope > right[b].slope })
	sort.Slice(left, func(a, b int) bool { return left[a].slope > left[b].slope })

	out := make([]int, 0, len(right)+len(left))
	for _, c := range right {
		out = append(out, c.idx)
	}
	for _, c := range left {
		out = append(out, c.idx)
	}
	return rotateToAngleZero(ps.original, origin, out)
}

// rotateToAngleZero cyclically rotates a correctly-ordered-but-arbitrarily-
// started sequence so it begins at the element closest to angle zero,
// the convention the envelope sweep needs to split segments that cross
// the ray at angle zero without any further rotation bookkeeping.
func rotateToAngleZero(points []poly.Point2, origin int, order []int) []int {
	if len(order) == 0 {
		return order
	}
	pivot := points[origin]
	minAt, minAngle := 0, pivot.AngleTo(points[order[0]])
	for i := 1; i < len(order); i++ {
		a := pivot.AngleTo(points[order[i]])
		if a < minAngle {
			minAngle, minAt = a, i
		}
	}
	if minAt == 0 {
		return order
	}
	out := make([]int, len(order))
	n := copy(out, order[minAt:])
	copy(out[n:], order[:minAt])
	return out
}
