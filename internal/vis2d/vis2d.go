// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vis2d builds the 2D visibility graph for a set of points amid a
// set of obstacle-boundary segments: a symmetric distance table on mutual
// visibility, plus an occluder table recording, for blocked pairs, which
// segment blocks the view.
package vis2d

import (
	"github.com/fzipp/pathfind3d/internal/envelope"
	"github.com/fzipp/pathfind3d/internal/planar"
	"github.com/fzipp/pathfind3d/internal/poly"
)

// PairKey identifies an unordered pair of point indices (i < j).
type PairKey struct{ I, J int }

// Graph is the 2D visibility graph over a fixed point set.
type Graph struct {
	Points   []poly.Point2
	Dist     map[PairKey]poly.R
	Occluder map[PairKey]int // segment index blocking i-j, if not visible
}

// Neighbours returns the indices mutually visible from i.
func (g *Graph) Neighbours(i int) []int {
	var out []int
	for j := range g.Points {
		if j == i {
			continue
		}
		if _, ok := g.Dist[key(i, j)]; ok {
			out = append(out, j)
		}
	}
	return out
}

// Visible reports whether i and j are mutually visible, and the distance
// between them if so.
func (g *Graph) Visible(i, j int) (poly.R, bool) {
	d, ok := g.Dist[key(i, j)]
	return d, ok
}

func key(i, j int) PairKey {
	if i > j {
		i, j = j, i
	}
	return PairKey{I: i, J: j}
}

// Build computes the visibility graph for points, given the full set of
// obstacle-boundary segments and, for every point that is a polygon
// corner, its self-occlusion cone (see envelope.VertexCones). Points with
// no entry in cones (e.g. the query origin and target) are free-standing.
//
// For each point in turn, the point set is sorted angularly around it
// (internal/planar, point-line duality) and the segments are swept once in
// that angular order (envelope.Sweep) to decide, for every other point in
// a single pass, whether it is visible -- rather than testing every pair
// against every segment.
func Build(points []poly.Point2, segments []poly.Segment2, cones map[int]envelope.Cone) *Graph {
	g := &Graph{
		Points:   points,
		Dist:     make(map[PairKey]poly.R),
		Occluder: make(map[PairKey]int),
	}
	if len(points) == 0 {
		return g
	}

	sweepSegs := indexSegments(points, segments)
	sorter := planar.New(points)

	// A cone names a polygon vertex; the pair it blocks is recorded
	// against the segment leaving that vertex, so Occluder always holds
	// a segment index.
	incident := make(map[int]int, len(sweepSegs))
	for _, s := range sweepSegs {
		if _, ok := incident[s.A]; !ok {
			incident[s.A] = s.ID
		}
	}

	for i := range points {
		// Self-occlusion is checked directly against the cone, skipping
		// the ray grazing into i's own polygon regardless of what the
		// sweep would otherwise find.
		order := sorter.SortedAround(i)
		visible, occluder := envelope.Sweep(points, i, order, sweepSegs)

		for j := i + 1; j < len(points); j++ {
			if cone, ok := cones[i]; ok && cone.Contains(points[i].AngleTo(points[j])) {
				if seg, ok := incident[cone.OccludingVertex]; ok {
					g.Occluder[key(i, j)] = seg
				}
				continue
			}
			if cone, ok := cones[j]; ok && cone.Contains(points[j].AngleTo(points[i])) {
				if seg, ok := incident[cone.OccludingVertex]; ok {
					g.Occluder[key(i, j)] = seg
				}
				continue
			}
			k := key(i, j)
			if visible[j] {
				g.Dist[k] = points[i].DistanceTo(points[j])
			} else {
				g.Occluder[k] = occluder[j]
			}
		}
	}
	return g
}

// indexSegments maps each obstacle-boundary segment's coordinates back to
// its endpoints' indices in points, so the sweep can work in rank space.
// Segments whose endpoints don't exactly match a point in points (a
// caller error) are silently dropped.
func indexSegments(points []poly.Point2, segments []poly.Segment2) []envelope.SweepSegment {
	index := make(map[poly.Point2]int, len(points))
	for i, p := range points {
		if _, ok := index[p]; !ok {
			index[p] = i
		}
	}
	out := make([]envelope.SweepSegment, 0, len(segments))
	for id, s := range segments {
		a, aOK := index[s.A]
		b, bOK := index[s.B]
		if !aOK || !bOK {
			continue
		}
		out = append(out, envelope.SweepSegment{ID: id, A: a, B: b})
	}
	return out
}
