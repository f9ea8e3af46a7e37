// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathfind3d finds a path for a point moving through open space
// that must go around or over a set of vertical prism obstacles.
package pathfind3d

import "fmt"

// Point2 is a point in the plane, used for obstacle footprints.
type Point2 struct {
	X, Y float64
}

// Pt2 returns the Point2 (x, y).
func Pt2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

func (p Point2) Add(q Point2) Point2 { return Point2{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point2) Sub(q Point2) Point2 { return Point2{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point2) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Point3 is a point in space: the unit the planners route through the air,
// over, or around obstacles.
type Point3 struct {
	X, Y, Z float64
}

// Pt3 returns the Point3 (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (p Point3) Add(q Point3) Point3 { return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z} }
func (p Point3) Sub(q Point3) Point3 { return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z} }

func (p Point3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

// Path3 is a non-empty ordered list of Point3, first == origin, last ==
// target, with every consecutive pair distinct.
type Path3 []Point3
