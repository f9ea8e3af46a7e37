// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import "fmt"

// Polygon2 is an ordered sequence of vertices in clockwise order, assumed
// simple (non-self-intersecting). It carries a cached bounding box that is
// rebuilt on every mutation.
type Polygon2 struct {
	Vertices []Point2
	bbox     Box2
}

// NewPolygon2 builds a polygon from at least 2 vertices in clockwise order.
func NewPolygon2(vertices []Point2) (Polygon2, error) {
	if len(vertices) < 2 {
		return Polygon2{}, fmt.Errorf("poly: polygon needs at least 2 vertices, got %d", len(vertices))
	}
	p := Polygon2{Vertices: vertices}
	p.updateBoundingBox()
	return p, nil
}

func (p *Polygon2) updateBoundingBox() {
	box := NewBox2(p.Vertices[0])
	for _, v := range p.Vertices[1:] {
		box.IncludePoint(v)
	}
	p.bbox = box
}

// BoundingBox returns the cached axis-aligned bounding box.
func (p Polygon2) BoundingBox() Box2 { return p.bbox }

// Transform applies an affine transform to every vertex and recomputes the
// bounding box.
func (p *Polygon2) Transform(m Matrix3) {
	for i, v := range p.Vertices {
		p.Vertices[i] = m.Apply(v)
	}
	p.updateBoundingBox()
}

func (p Polygon2) wrap(i int) int {
	n := len(p.Vertices)
	return ((i % n) + n) % n
}

// side returns the i-th polygon edge, i.e. Vertices[i] -> Vertices[i+1].
func (p Polygon2) side(i int) (Point2, Point2) {
	return p.Vertices[i], p.Vertices[p.wrap(i+1)]
}

// sideIntersection tests segment seg against one polygon side a->b,
// disambiguating intersections that land exactly on a vertex: such a hit
// counts only if the segment's other endpoint lies strictly on the side
// that would make the ray actually cross into the polygon, which is
// decided by the orientation (cross-product sign) of the side against
// that endpoint. Without this check, a ray grazing a vertex would be
// counted as crossing twice (once per incident side) or not at all.
func sideIntersection(seg Segment2, a, b Point2, eps R) (Point2, bool) {
	ip, kind := SegmentIntersection(seg.A, seg.B, a, b, eps)
	if kind != Intersects {
		return Point2{}, false
	}
	if !ip.ApproxEqual(seg.A, eps) && !ip.ApproxEqual(seg.B, eps) {
		return ip, true
	}
	other := seg.B
	if ip.ApproxEqual(seg.B, eps) {
		other = seg.A
	}
	cross := (b.X-a.X)*(other.Y-a.Y) - (b.Y-a.Y)*(other.X-a.X)
	if cross < 0 {
		return ip, true
	}
	return Point2{}, false
}

// countIntersections returns the number of polygon sides crossed by seg,
// and the crossing point nearest to seg.A. A vertex hit is attributed to
// exactly one of its two incident sides by comparing the current side's
// intersection point against the previous side's, so grazing a vertex is
// never double-counted.
func (p Polygon2) countIntersections(seg Segment2, eps R) (int, Point2) {
	n := len(p.Vertices)
	prevA, prevB := p.side(n - 1)
	prevPoint, prevValid := sideIntersection(seg, prevA, prevB, eps)

	count := 0
	var nearest Point2
	for i := 0; i < n; i++ {
		a, b := p.side(i)
		point, ok := sideIntersection(seg, a, b, eps)
		intersects := false
		if ok {
			if !point.ApproxEqual(a, eps) && !point.ApproxEqual(b, eps) {
				intersects = true
			} else if prevValid && point.ApproxEqual(prevPoint, eps) {
				intersects = true
			}
		}
		if intersects {
			if count == 0 || seg.A.DistanceTo(point) < seg.A.DistanceTo(nearest) {
				nearest = point
			}
			count++
		}
		prevValid = ok
		prevPoint = point
	}
	return count, nearest
}

// IsInside reports whether pt lies strictly inside the polygon, using a
// bounding-box rejection followed by a parity test against a ray from pt
// to one unit left of the bounding box.
func (p Polygon2) IsInside(pt Point2) bool {
	if !p.bbox.Contains(pt) {
		return false
	}
	ray := Segment2{A: pt, B: Point2{X: p.bbox.MinX - 1, Y: pt.Y}}
	count, _ := p.countIntersections(ray, Eps)
	return count%2 == 1
}

// CheckIntersection reports whether seg crosses the polygon boundary, and
// if so the crossing point nearest to seg.A.
func (p Polygon2) CheckIntersection(seg Segment2) (Point2, bool) {
	count, point := p.countIntersections(seg, Eps)
	return point, count > 0
}

// IntersectsPolygon reports whether p and o overlap, via bounding-box
// rejection followed by a pairwise edge-intersection test (this module has
// no ecosystem replacement for a general polygon-clipping library; see
// DESIGN.md).
func (p Polygon2) IntersectsPolygon(o Polygon2) bool {
	if !p.bbox.Intersects(o.bbox) {
		return false
	}
	for i := 0; i < len(p.Vertices); i++ {
		a, b := p.side(i)
		for j := 0; j < len(o.Vertices); j++ {
			c, d := o.side(j)
			if _, kind := SegmentIntersection(a, b, c, d, Eps); kind == Intersects {
				return true
			}
		}
	}
	return p.IsInside(o.Vertices[0]) || o.IsInside(p.Vertices[0])
}
