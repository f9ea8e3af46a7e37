// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import "math"

// Segment2 is a directed pair of 2D points.
type Segment2 struct {
	A, B Point2
}

func (s Segment2) Length() R { return s.A.DistanceTo(s.B) }

// Reversed returns the segment with endpoints swapped.
func (s Segment2) Reversed() Segment2 { return Segment2{A: s.B, B: s.A} }

// Segment3 is a directed pair of 3D points.
type Segment3 struct {
	A, B Point3
}

func (s Segment3) Length() R { return s.A.DistanceTo(s.B) }

// Kind classifies the outcome of a segment/line intersection test. Modeled
// as an enumerated outcome rather than an exception: the polygon
// intersection routines branch on it directly instead of catching a
// "lines are parallel" failure.
type Kind int

const (
	NoIntersection Kind = iota
	Intersects
	Parallel
	Coincident
)

// SegmentIntersection returns the intersection point of segments a1-a2 and
// b1-b2, if the lines they lie on cross within both segments' extents (up
// to eps in both coordinates). Parallel lines always report Parallel, even
// when coincident in the set-theoretic sense elsewhere in this package;
// Coincident is never returned here.
func SegmentIntersection(a1, a2, b1, b2 Point2, eps R) (Point2, Kind) {
	da := a2.Sub(a1)
	db := b2.Sub(b1)
	denom := da.X*db.Y - da.Y*db.X
	if denom == 0 {
		return Point2{}, Parallel
	}
	diff := b1.Sub(a1)
	t := (diff.X*db.Y - diff.Y*db.X) / denom
	u := (diff.X*da.Y - diff.Y*da.X) / denom
	p := a1.Add(da.Scale(t))
	if !withinSegment(p, a1, a2, eps) || !withinSegment(p, b1, b2, eps) {
		return Point2{}, NoIntersection
	}
	_ = u
	return p, Intersects
}

func withinSegment(p, a, b Point2, eps R) bool {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX-eps && p.X <= maxX+eps && p.Y >= minY-eps && p.Y <= maxY+eps
}

// SegmentHorizontalPlaneIntersection returns the point where seg crosses
// the horizontal plane z = height, when its endpoints lie strictly on
// opposite sides of that plane. Endpoints exactly on the plane count as
// "not crossing" per the crossing-test convention used by the 3D builder.
func SegmentHorizontalPlaneIntersection(seg Segment3, height R) (Point3, bool) {
	da := seg.A.Z - height
	db := seg.B.Z - height
	if da == 0 || db == 0 {
		return Point3{}, false
	}
	if (da > 0) == (db > 0) {
		return Point3{}, false
	}
	t := da / (da - db)
	return Point3{
		X: seg.A.X + t*(seg.B.X-seg.A.X),
		Y: seg.A.Y + t*(seg.B.Y-seg.A.Y),
		Z: height,
	}, true
}

// PointToSegmentDistance implements the rotate-and-intersect rule from the
// envelope's nearest-segment test: transform so p becomes the origin and
// the ray leaving p at angle (clockwise from +y) aligns with the local
// +x axis, then report the x-coordinate where segment a-b crosses the
// local x-axis (y=0). Returns false if both endpoints lie strictly on the
// same side of that axis (no crossing).
func PointToSegmentDistance(p, a, b Point2, angle, eps R) (R, bool) {
	dir := Point2{X: math.Sin(angle), Y: math.Cos(angle)}
	perp := Point2{X: math.Cos(angle), Y: -math.Sin(angle)}
	la := localCoords(p, dir, perp, a)
	lb := localCoords(p, dir, perp, b)
	if math.Abs(la.Y) <= eps && math.Abs(lb.Y) <= eps {
		if la.X < lb.X {
			return la.X, true
		}
		return lb.X, true
	}
	if math.Abs(la.Y) > eps && math.Abs(lb.Y) > eps && sameSign(la.Y, lb.Y) {
		return 0, false
	}
	t := la.Y / (la.Y - lb.Y)
	return la.X + t*(lb.X-la.X), true
}

func localCoords(origin, dir, perp, q Point2) Point2 {
	d := q.Sub(origin)
	return Point2{X: d.Dot(dir), Y: d.Dot(perp)}
}

func sameSign(a, b R) bool { return (a > 0) == (b > 0) }
