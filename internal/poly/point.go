// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly holds the geometric primitives the visibility-graph core is
// built on: 2D/3D points carried as homogeneous coordinates, segments,
// polygons with a cached bounding box, axis-aligned boxes, and the affine
// transforms used by the plane-cut planner to rotate and cut scenes.
package poly

import "math"

// R is the floating-point type used throughout the geometry layer.
type R = float64

// Eps is the default tolerance for coordinate and algebraic comparisons.
// Call sites that need a different tolerance (point-to-segment distance,
// slope-point intersection) pass their own epsilon explicitly rather than
// reusing this one.
const Eps R = 1e-12

// Point2 is a point in the plane. It is conceptually a homogeneous
// (x, y, w) column vector with w normalized to 1; since every operation
// here is affine, w never needs to be carried explicitly.
type Point2 struct {
	X, Y R
}

func (p Point2) Add(q Point2) Point2 { return Point2{p.X + q.X, p.Y + q.Y} }
func (p Point2) Sub(q Point2) Point2 { return Point2{p.X - q.X, p.Y - q.Y} }
func (p Point2) Scale(s R) Point2    { return Point2{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q treated as vectors.
func (p Point2) Dot(q Point2) R { return p.X*q.X + p.Y*q.Y }

// DistanceTo returns the Euclidean distance between p and q.
func (p Point2) DistanceTo(q Point2) R {
	d := p.Sub(q)
	return math.Sqrt(d.Dot(d))
}

// ApproxEqual reports whether p and q agree in both coordinates to
// within eps.
func (p Point2) ApproxEqual(q Point2, eps R) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// AngleTo returns the clockwise angle, in [0, 2*pi), from the positive
// y-axis to the ray p->q. This is the angular convention the rotational
// sweep (the envelope solver) is built around.
func (p Point2) AngleTo(q Point2) R {
	d := q.Sub(p)
	a := math.Atan2(d.X, d.Y)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Point3 is a point in space, conceptually a homogeneous (x, y, z, w)
// column vector with w normalized to 1.
type Point3 struct {
	X, Y, Z R
}

func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point3) Scale(s R) Point3    { return Point3{p.X * s, p.Y * s, p.Z * s} }

func (p Point3) Dot(q Point3) R { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

func (p Point3) Norm() R { return math.Sqrt(p.Dot(p)) }

func (p Point3) DistanceTo(q Point3) R {
	d := p.Sub(q)
	return math.Sqrt(d.Dot(d))
}

func (p Point3) ApproxEqual(q Point3, eps R) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps && math.Abs(p.Z-q.Z) <= eps
}

// Point2To3D lifts a 2D point to 3D at height z.
func Point2To3D(p Point2, z R) Point3 {
	return Point3{X: p.X, Y: p.Y, Z: z}
}

// Point3To2D projects a 3D point onto the xy plane, discarding z.
func Point3To2D(p Point3) Point2 {
	return Point2{X: p.X, Y: p.Y}
}
