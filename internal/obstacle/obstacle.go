// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obstacle models prismatic obstacles: a 2D polygon extruded
// vertically from z=0 to z=h, and ordered collections of them.
package obstacle

import (
	"fmt"

	"github.com/fzipp/pathfind3d/internal/poly"
)

// Obstacle is a vertical prism: shape x [0, height].
type Obstacle struct {
	Shape  poly.Polygon2
	Height poly.R
}

// New builds an Obstacle. Height must be strictly positive.
func New(shape poly.Polygon2, height poly.R) (Obstacle, error) {
	if height <= 0 {
		return Obstacle{}, fmt.Errorf("obstacle: height must be positive, got %v", height)
	}
	return Obstacle{Shape: shape, Height: height}, nil
}

// Contains reports whether p lies strictly inside the prism. Boundary
// points, including points at the exact obstacle height, are not
// contained.
func (o Obstacle) Contains(p poly.Point3) bool {
	return p.Z < o.Height && o.Shape.IsInside(poly.Point3To2D(p))
}

// IntersectSegment returns the point where seg first enters the prism,
// nearest to seg.A, considering both the roof (z = height) and the walls
// (the extruded polygon boundary). Candidates are compared by distance to
// seg.A; if both exist, the nearer one wins.
func (o Obstacle) IntersectSegment(seg poly.Segment3) (poly.Point3, bool) {
	if seg.A.Z >= o.Height && seg.B.Z >= o.Height {
		return poly.Point3{}, false
	}

	var best poly.Point3
	found := false

	if top, ok := poly.SegmentHorizontalPlaneIntersection(seg, o.Height); ok {
		if o.Shape.IsInside(poly.Point3To2D(top)) {
			best = top
			found = true
		}
	}

	seg2 := poly.Segment2{A: poly.Point3To2D(seg.A), B: poly.Point3To2D(seg.B)}
	if side2, ok := o.Shape.CheckIntersection(seg2); ok {
		z, ok2 := interpolateZ(seg, side2)
		if ok2 && z <= o.Height+poly.Eps {
			side := poly.Point3{X: side2.X, Y: side2.Y, Z: z}
			if !found || seg.A.DistanceTo(side) < seg.A.DistanceTo(best) {
				best = side
				found = true
			}
		}
	}

	return best, found
}

// interpolateZ finds the z-height at which the xy-projection of seg
// passes through p, by linear interpolation along the parameter that
// matches p's position between the projected endpoints.
func interpolateZ(seg poly.Segment3, p poly.Point2) (poly.R, bool) {
	dx := seg.B.X - seg.A.X
	dy := seg.B.Y - seg.A.Y
	var t poly.R
	switch {
	case dx*dx >= dy*dy && dx != 0:
		t = (p.X - seg.A.X) / dx
	case dy != 0:
		t = (p.Y - seg.A.Y) / dy
	default:
		return 0, false
	}
	return seg.A.Z + t*(seg.B.Z-seg.A.Z), true
}

// Set is an ordered collection of obstacles.
type Set []Obstacle

// ContainsPoint reports whether any obstacle in the set strictly contains p.
func (s Set) ContainsPoint(p poly.Point3) bool {
	for _, o := range s {
		if o.Contains(p) {
			return true
		}
	}
	return false
}

// IntersectSegment scans obstacles in order and returns the intersection
// point reported by the first obstacle that reports one. It does not
// compare across obstacles: each Obstacle.IntersectSegment already picks
// the candidate nearest to seg.A for that single obstacle.
func (s Set) IntersectSegment(seg poly.Segment3) (poly.Point3, bool) {
	for _, o := range s {
		if p, ok := o.IntersectSegment(seg); ok {
			return p, true
		}
	}
	return poly.Point3{}, false
}

// IsPointValid is the adapter callback an external sampling-based motion
// planner (RRT/PRM/BIT*) would use to test whether a candidate point is
// free of obstacles. Not used by the core planners, which operate on
// visibility graphs instead.
func IsPointValid(s Set, p poly.Point3) bool {
	return !s.ContainsPoint(p)
}

// IsMotionValid is the adapter callback for testing whether a candidate
// motion segment is obstacle-free.
func IsMotionValid(s Set, seg poly.Segment3) bool {
	_, hit := s.IntersectSegment(seg)
	return !hit
}
