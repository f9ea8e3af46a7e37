// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spatial prefilters the obstacle set by location: a quadtree
// keyed on each obstacle's bounding-box center, so planners that repeatedly
// ask "which obstacles are anywhere near this segment" (the baseline
// filter) don't have to scan every obstacle on every iteration.
package spatial

import (
	"math"

	"github.com/fzipp/pathfind3d/internal/poly"
)

type rect struct {
	min, max poly.Point2
}

func (r rect) contains(p poly.Point2) bool {
	return p.X >= r.min.X && p.X <= r.max.X && p.Y >= r.min.Y && p.Y <= r.max.Y
}

func (r rect) intersects(o rect) bool {
	return !(o.min.X > r.max.X || o.max.X < r.min.X || o.min.Y > r.max.Y || o.max.Y < r.min.Y)
}

// QueryRect returns the bounding rectangle of segment a-b, expanded by
// margin on every side.
func QueryRect(a, b poly.Point2, margin poly.R) (min, max poly.Point2) {
	r := queryRect(a, b, margin)
	return r.min, r.max
}

func queryRect(a, b poly.Point2, margin poly.R) rect {
	minX := math.Min(a.X, b.X) - margin
	minY := math.Min(a.Y, b.Y) - margin
	maxX := math.Max(a.X, b.X) + margin
	maxY := math.Max(a.Y, b.Y) + margin
	return rect{min: poly.Point2{X: minX, Y: minY}, max: poly.Point2{X: maxX, Y: maxY}}
}

type entry struct {
	center poly.Point2
	payload int
}

// QuadTree indexes 2D points, each carrying an integer payload (an
// obstacle index), for fast rectangular range queries.
type QuadTree struct {
	boundary       rect
	capacity       int
	entries        []entry
	divided        bool
	nw, ne, sw, se *QuadTree
}

func newQuadTree(b rect, capacity int) *QuadTree {
	return &QuadTree{boundary: b, capacity: capacity}
}

// New builds an empty QuadTree covering boundary [min,max], splitting
// nodes once they hold more than capacity entries.
func New(min, max poly.Point2, capacity int) *QuadTree {
	return newQuadTree(rect{min: min, max: max}, capacity)
}

// BoundingBox computes the [min,max] corners enclosing every obstacle
// bounding box in boxes, or a degenerate zero box if boxes is empty.
func BoundingBox(boxes []poly.Box2) (min, max poly.Point2) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range boxes {
		minX = math.Min(minX, b.MinX)
		minY = math.Min(minY, b.MinY)
		maxX = math.Max(maxX, b.MaxX)
		maxY = math.Max(maxY, b.MaxY)
	}
	if math.IsInf(minX, 1) {
		return poly.Point2{}, poly.Point2{}
	}
	return poly.Point2{X: minX, Y: minY}, poly.Point2{X: maxX, Y: maxY}
}

// Insert places a point with its payload into the tree. It reports false
// if p falls outside the tree's boundary.
func (qt *QuadTree) Insert(p poly.Point2, payload int) bool {
	if !qt.boundary.contains(p) {
		return false
	}
	if len(qt.entries) < qt.capacity && !qt.divided {
		qt.entries = append(qt.entries, entry{center: p, payload: payload})
		return true
	}
	if !qt.divided {
		qt.subdivide()
	}
	return qt.nw.Insert(p, payload) || qt.ne.Insert(p, payload) ||
		qt.sw.Insert(p, payload) || qt.se.Insert(p, payload)
}

func (qt *QuadTree) subdivide() {
	b := qt.boundary
	midX := (b.min.X + b.max.X) / 2
	midY := (b.min.Y + b.max.Y) / 2
	qt.nw = newQuadTree(rect{b.min, poly.Point2{X: midX, Y: midY}}, qt.capacity)
	qt.ne = newQuadTree(rect{poly.Point2{X: midX, Y: b.min.Y}, poly.Point2{X: b.max.X, Y: midY}}, qt.capacity)
	qt.sw = newQuadTree(rect{poly.Point2{X: b.min.X, Y: midY}, poly.Point2{X: midX, Y: b.max.Y}}, qt.capacity)
	qt.se = newQuadTree(rect{poly.Point2{X: midX, Y: midY}, b.max}, qt.capacity)
	qt.divided = true
	for _, e := range qt.entries {
		qt.nw.Insert(e.center, e.payload)
		qt.ne.Insert(e.center, e.payload)
		qt.sw.Insert(e.center, e.payload)
		qt.se.Insert(e.center, e.payload)
	}
	qt.entries = nil
}

func (qt *QuadTree) query(r rect, found *[]int) {
	if !qt.boundary.intersects(r) {
		return
	}
	if qt.divided {
		qt.nw.query(r, found)
		qt.ne.query(r, found)
		qt.sw.query(r, found)
		qt.se.query(r, found)
		return
	}
	for _, e := range qt.entries {
		if r.contains(e.center) {
			*found = append(*found, e.payload)
		}
	}
}

// RangeSearch returns the payloads of every point inside [min,max].
func (qt *QuadTree) RangeSearch(min, max poly.Point2) []int {
	var found []int
	qt.query(rect{min: min, max: max}, &found)
	return found
}
