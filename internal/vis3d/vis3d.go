// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vis3d lifts a stack of 2D visibility-graph slices, one per
// obstacle height, into a single 3D visibility graph dense enough to
// contain an approximate shortest path that climbs over every obstacle it
// cannot pass through.
package vis3d

import (
	"math"
	"sort"

	"github.com/fzipp/pathfind3d/internal/envelope"
	"github.com/fzipp/pathfind3d/internal/obstacle"
	"github.com/fzipp/pathfind3d/internal/poly"
	"github.com/fzipp/pathfind3d/internal/vis2d"
)

// maxLayers bounds the number of distinct height categories considered;
// beyond this the tallest heights are resampled to maxLayers evenly
// spaced fractions of the maximum, per the layer-height rule.
const maxLayers = 10

// slopeEps is the tolerance of the slope-point intersection test and the
// grid that snap rounds every interned point to when deduplicating.
const slopeEps poly.R = 1e-4

// PairKey identifies an unordered pair of 3D point indices.
type PairKey struct{ I, J int }

// Graph is the lifted 3D visibility graph.
type Graph struct {
	Points []poly.Point3
	Dist   map[PairKey]poly.R
}

func (g *Graph) connect(i, j int) {
	if i == j {
		return
	}
	k := PairKey{I: i, J: j}
	if k.I > k.J {
		k.I, k.J = k.J, k.I
	}
	if _, ok := g.Dist[k]; ok {
		return
	}
	g.Dist[k] = g.Points[i].DistanceTo(g.Points[j])
}

// Neighbours returns the indices adjacent to i.
func (g *Graph) Neighbours(i int) []int {
	var out []int
	for j := range g.Points {
		if j == i {
			continue
		}
		k := PairKey{I: i, J: j}
		if k.I > k.J {
			k.I, k.J = k.J, k.I
		}
		if _, ok := g.Dist[k]; ok {
			out = append(out, j)
		}
	}
	return out
}

// layerHeights computes H: the distinct obstacle heights (capped at
// maxLayers, resampled to evenly spaced fractions of the tallest when
// there are more), plus 0 and the origin/target heights, sorted
// descending.
func layerHeights(obs obstacle.Set, originZ, targetZ poly.R) []poly.R {
	seen := map[poly.R]bool{}
	var heights []poly.R
	maxH := poly.R(0)
	for _, o := range obs {
		if o.Height > maxH {
			maxH = o.Height
		}
		if !seen[o.Height] {
			seen[o.Height] = true
			heights = append(heights, o.Height)
		}
	}
	if len(heights) > maxLayers {
		heights = heights[:0]
		seen = map[poly.R]bool{}
		for k := maxLayers; k >= 1; k-- {
			h := maxH * poly.R(k) / poly.R(maxLayers)
			if !seen[h] {
				seen[h] = true
				heights = append(heights, h)
			}
		}
	}
	for _, h := range []poly.R{0, originZ, targetZ} {
		if !seen[h] {
			seen[h] = true
			heights = append(heights, h)
		}
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] > heights[j] })
	return heights
}

type vertexKey struct {
	obstacle int // -1 for a free point (origin/target)
	vertex   int
}

type layerPoint struct {
	key   vertexKey
	layer int
	idx   int // index into Graph.Points
}

// Build lifts the obstacle set's layered 2D visibility slices into a 3D
// visibility graph spanning origin and target.
func Build(obs obstacle.Set, origin, target poly.Point3) *Graph {
	g := &Graph{Dist: make(map[PairKey]poly.R)}
	origin2 := poly.Point3To2D(origin)
	target2 := poly.Point3To2D(target)

	layers := layerHeights(obs, origin.Z, target.Z)
	history := map[vertexKey][]layerPoint{}
	pointIndex := map[[3]int64]int{}
	intern := func(p poly.Point3) int {
		k := snap(p)
		if idx, ok := pointIndex[k]; ok {
			return idx
		}
		idx := len(g.Points)
		g.Points = append(g.Points, p)
		pointIndex[k] = idx
		return idx
	}

	for i, h := range layers {
		active := activeObstacles(obs, h)

		var localPoints []poly.Point2
		var localOwner []vertexKey
		var localSegments []poly.Segment2
		cones := map[int]envelope.Cone{}

		localPoints = append(localPoints, origin2, target2)
		localOwner = append(localOwner, vertexKey{-1, 0}, vertexKey{-1, 1})

		for _, oi := range active {
			o := obs[oi]
			base := len(localPoints)
			localPoints = append(localPoints, o.Shape.Vertices...)
			for v := range o.Shape.Vertices {
				localOwner = append(localOwner, vertexKey{oi, v})
			}
			for _, c := range envelope.VertexCones(o.Shape) {
				cones[base+c.OccludingVertex] = shift(c, base)
			}
			n := len(o.Shape.Vertices)
			for v := 0; v < n; v++ {
				a := o.Shape.Vertices[v]
				b := o.Shape.Vertices[(v+1)%n]
				localSegments = append(localSegments, poly.Segment2{A: a, B: b})
			}
		}

		slice := vis2d.Build(localPoints, localSegments, cones)

		curLayer := make(map[vertexKey]int, len(localOwner))
		for li, owner := range localOwner {
			p3 := poly.Point2To3D(localPoints[li], h)
			idx := intern(p3)
			curLayer[owner] = idx
			if prevIdx, ok := prevLayerLookup(history, owner, i); ok {
				g.connect(prevIdx, idx)
			}
		}

		type slopeGroup struct {
			layer, seg int
		}
		slopes := map[slopeGroup][]int{}

		for a := 0; a < len(localPoints); a++ {
			for b := a + 1; b < len(localPoints); b++ {
				pk := vis2d.PairKey{I: a, J: b}
				if _, ok := slice.Dist[pk]; ok {
					wireVisible(g, history, curLayer, localOwner[a], localOwner[b], i)
					continue
				}
				occ, ok := slice.Occluder[pk]
				if !ok {
					continue
				}
				x, hit := poly.SegmentIntersection(localPoints[a], localPoints[b],
					localSegments[occ].A, localSegments[occ].B, slopeEps)
				if hit != poly.Intersects {
					continue
				}
				sh := layers[i]
				if i > 0 {
					sh = layers[i-1]
				}
				slopeIdx := intern(poly.Point2To3D(x, sh))
				g.connect(curLayer[localOwner[a]], slopeIdx)
				for _, hp := range history[localOwner[a]] {
					g.connect(hp.idx, slopeIdx)
				}
				grp := slopeGroup{layer: i, seg: occ}
				slopes[grp] = append(slopes[grp], slopeIdx)
			}
		}

		for _, group := range slopes {
			for x := 0; x < len(group); x++ {
				for y := x + 1; y < len(group); y++ {
					g.connect(group[x], group[y])
				}
			}
		}

		for owner, idx := range curLayer {
			history[owner] = append(history[owner], layerPoint{key: owner, layer: i, idx: idx})
		}
	}

	return g
}

// wireVisible implements the cross-layer rule: when p and q are visible at
// layer i, connect (p, H_i) to every (q, H_j) with j <= i, and
// symmetrically (q, H_i) to every (p, H_j) with j < i (j == i is already
// covered by the first loop).
func wireVisible(g *Graph, history map[vertexKey][]layerPoint, curLayer map[vertexKey]int, pKey, qKey vertexKey, i int) {
	pIdx, qIdx := curLayer[pKey], curLayer[qKey]
	for _, hq := range history[qKey] {
		if hq.layer <= i {
			g.connect(pIdx, hq.idx)
		}
	}
	g.connect(pIdx, qIdx)
	for _, hp := range history[pKey] {
		if hp.layer < i {
			g.connect(hp.idx, qIdx)
		}
	}
}

func prevLayerLookup(history map[vertexKey][]layerPoint, owner vertexKey, layer int) (int, bool) {
	hist := history[owner]
	if len(hist) == 0 {
		return 0, false
	}
	last := hist[len(hist)-1]
	if last.layer == layer-1 {
		return last.idx, true
	}
	return 0, false
}

func activeObstacles(obs obstacle.Set, h poly.R) []int {
	var out []int
	for i, o := range obs {
		if o.Height >= h {
			out = append(out, i)
		}
	}
	return out
}

func shift(c envelope.Cone, base int) envelope.Cone {
	c.OccludingVertex += base
	return c
}

func snap(p poly.Point3) [3]int64 {
	const scale = 1 / slopeEps
	return [3]int64{
		int64(math.Round(p.X * scale)),
		int64(math.Round(p.Y * scale)),
		int64(math.Round(p.Z * scale)),
	}
}
