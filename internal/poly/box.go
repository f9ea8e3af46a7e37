// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

// Box2 is an axis-aligned bounding box in the plane.
type Box2 struct {
	MinX, MinY, MaxX, MaxY R
}

// NewBox2 returns the degenerate box containing only p.
func NewBox2(p Point2) Box2 {
	return Box2{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// IncludePoint grows b, if necessary, so it contains p.
func (b *Box2) IncludePoint(p Point2) {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}

// Contains reports whether p lies within b, boundary inclusive.
func (b Box2) Contains(p Point2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Intersects reports whether b and o overlap with positive area; boxes
// that merely touch along an edge do not count as intersecting.
func (b Box2) Intersects(o Box2) bool {
	return b.MinX < o.MaxX && b.MaxX > o.MinX && b.MinY < o.MaxY && b.MaxY > o.MinY
}
