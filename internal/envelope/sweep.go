// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import (
	"math"

	"github.com/fzipp/pathfind3d/internal/poly"
)

// SweepSegment is an obstacle-boundary segment as seen by Sweep: A and B
// are indices into the shared point set, ID identifies the segment in the
// caller's own numbering (what gets reported as an occluder).
type SweepSegment struct {
	ID, A, B int
}

// sweepEps bounds the distance comparison that decides whether a point
// sits in front of or behind the segment occupying its rank.
const sweepEps poly.R = 1e-6

// arc is one angularly-contiguous stretch of a segment's presence in the
// sweep: ranks [min, max] with min < max, keyed for envelope lookup by
// far, the LCA-collapsed representative of that span.
type arc struct {
	id       int
	min, max int
	far      int
}

// Sweep computes, for every point other than origin, whether it is visible
// from origin given segs as potential occluders. order must be
// planar.PointSorter's angular order of every point index other than
// origin; it pairs each point with a rank 0..len(order)-1 running in
// ascending angle.
//
// Rather than testing every point pair against every segment, the rank
// axis is swept once: a segment is "active" over the contiguous rank span
// between its two endpoints, and the envelope tracks, at each rank, the
// nearest active segment -- the one whose far endpoint's rank is smallest
// among those reaching at least this far, refined by the exact
// nearest-segment distance rule where two candidates' spans overlap. A
// segment whose endpoints straddle the sweep's own start (the ray from
// origin through angle 0) is split into the two arcs on either side of
// that ray, so every arc's rank span is contiguous without wrapping.
func Sweep(points []poly.Point2, origin int, order []int, segs []SweepSegment) (visible map[int]bool, occluder map[int]int) {
	visible = make(map[int]bool, len(order))
	occluder = make(map[int]int)
	n := len(order)
	if n == 0 {
		return visible, occluder
	}

	pivot := points[origin]
	rank := make(map[int]int, n)
	angle := make([]poly.R, n)
	for k, idx := range order {
		rank[idx] = k
		angle[k] = pivot.AngleTo(points[idx])
	}

	geom := make(map[int]poly.Segment2, len(segs))
	var arcs []arc
	lca := NewLCACalculator(n)
	for _, s := range segs {
		if s.A == origin || s.B == origin || s.A == s.B {
			continue
		}
		ra, raOK := rank[s.A]
		rb, rbOK := rank[s.B]
		if !raOK || !rbOK {
			continue
		}
		geom[s.ID] = poly.Segment2{A: points[s.A], B: points[s.B]}

		lo, hi := ra, rb
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo == hi {
			continue
		}
		if angle[hi]-angle[lo] <= math.Pi {
			arcs = append(arcs, arc{id: s.ID, min: lo, max: hi, far: lca.Compute(lo+1, hi+1) - 1})
			continue
		}
		// The segment's true (< pi) span crosses the ray at angle 0; split
		// it into the two arcs on either side of that ray.
		if lo > 0 {
			arcs = append(arcs, arc{id: s.ID, min: 0, max: lo, far: lca.Compute(1, lo+1) - 1})
		}
		if hi < n-1 {
			arcs = append(arcs, arc{id: s.ID, min: hi, max: n - 1, far: lca.Compute(hi+1, n) - 1})
		}
	}

	byStart := make(map[int][]arc)
	byEnd := make(map[int][]arc)
	for _, a := range arcs {
		byStart[a.min] = append(byStart[a.min], a)
		byEnd[a.max] = append(byEnd[a.max], a)
	}

	nearestOf := func(rayAngle poly.R, a, b SegmentID) SegmentID {
		winner, _ := NearestSegment(pivot, rayAngle, geom[int(a)], geom[int(b)], int(a), int(b))
		return SegmentID(winner)
	}

	env := New(n - 1)
	occAtRank := make([]SegmentID, n)
	for k := 0; k < n; k++ {
		for _, a := range byStart[k] {
			insertArc(env, SegmentID(a.id), a.far, angle[k], nearestOf)
		}
		seg, _, ok := env.Head()
		if ok {
			occAtRank[k] = seg
		} else {
			occAtRank[k] = NoSegment
		}
		for _, a := range byEnd[k] {
			if cur, ok := env.At(a.far); ok && int(cur) == a.id {
				env.Erase(a.far)
			}
		}
	}

	for k, idx := range order {
		seg := occAtRank[k]
		if seg == NoSegment {
			visible[idx] = true
			continue
		}
		g := geom[int(seg)]
		distPt := pivot.DistanceTo(points[idx])
		distSeg, ok := poly.PointToSegmentDistance(pivot, g.A, g.B, angle[k], poly.Eps)
		if !ok || distPt <= distSeg+sweepEps {
			visible[idx] = true
			continue
		}
		visible[idx] = false
		occluder[idx] = int(seg)
	}
	return visible, occluder
}

// insertArc applies the "shortest as long as" rule: a new arc is kept only
// if it is nearer than any already-active arc reaching at least as far,
// and once kept it displaces any shorter-looking arc it is now also
// nearer than.
func insertArc(env *Envelope, id SegmentID, far int, rayAngle poly.R, nearestOf func(poly.R, SegmentID, SegmentID) SegmentID) {
	longer, _, hasLonger := env.ShortestAsLongAs(far)
	if hasLonger && nearestOf(rayAngle, id, longer) != id {
		return
	}
	env.Insert(id, far)
	prev, prevRank, ok := env.Predecessor(far)
	for ok {
		if nearestOf(rayAngle, id, prev) != id {
			break
		}
		env.Erase(prevRank)
		prev, prevRank, ok = env.Predecessor(far)
	}
}
