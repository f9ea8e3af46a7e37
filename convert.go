// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathfind3d

import (
	"fmt"

	"github.com/fzipp/geom"

	"github.com/fzipp/pathfind3d/internal/obstacle"
	"github.com/fzipp/pathfind3d/internal/perr"
	"github.com/fzipp/pathfind3d/internal/poly"
)

// margin is the distance a path vertex sitting exactly on an obstacle's
// boundary is nudged away from it, so that float64 round-off in a
// downstream consumer doesn't put the point back inside the obstacle.
const margin = 0.001

func p2v(p Point2) geom.Vec2 {
	return geom.Vec2{X: float32(p.X), Y: float32(p.Y)}
}

func v2p(v geom.Vec2) Point2 {
	return Point2{X: float64(v.X), Y: float64(v.Y)}
}

func toPolyPoint2(p Point2) poly.Point2 { return poly.Point2{X: p.X, Y: p.Y} }
func fromPolyPoint2(p poly.Point2) Point2 { return Point2{X: p.X, Y: p.Y} }

func toPolyPoint3(p Point3) poly.Point3 { return poly.Point3{X: p.X, Y: p.Y, Z: p.Z} }
func fromPolyPoint3(p poly.Point3) Point3 { return Point3{X: p.X, Y: p.Y, Z: p.Z} }

// convert maps a slice s to a new slice of elements with target type To by
// applying the conversion function f to each element.
func convert[From, To any](s []From, f func(From) To) []To {
	res := make([]To, 0, len(s))
	for _, e := range s {
		res = append(res, f(e))
	}
	return res
}

func toInternalSet(obstacles []Obstacle) (obstacle.Set, error) {
	set := make(obstacle.Set, 0, len(obstacles))
	for i, o := range obstacles {
		vertices := convert(o.Shape, toPolyPoint2)
		shape, err := poly.NewPolygon2(vertices)
		if err != nil {
			return nil, perr.Wrap(perr.InvalidInput, fmt.Sprintf("pathfind3d: obstacle %d", i), err)
		}
		ob, err := obstacle.New(shape, o.Height)
		if err != nil {
			return nil, perr.Wrap(perr.InvalidInput, fmt.Sprintf("pathfind3d: obstacle %d", i), err)
		}
		set = append(set, ob)
	}
	return set, nil
}

// nudgeOffBoundary moves pt away from the nearest vertex of any polygon in
// ps it sits on, along the bisector of that vertex's two incident edges.
func nudgeOffBoundary(ps []poly.Polygon2, pt Point2) Point2 {
	v := p2v(pt)
	for _, p := range ps {
		n := len(p.Vertices)
		for i, pv := range p.Vertices {
			if !nearEq(pv, pt) {
				continue
			}
			prev := p.Vertices[(i-1+n)%n]
			next := p.Vertices[(i+1)%n]
			e1 := p2v(fromPolyPoint2(pv)).Sub(p2v(fromPolyPoint2(prev))).Norm()
			e2 := p2v(fromPolyPoint2(next)).Sub(p2v(fromPolyPoint2(pv))).Norm()
			bis := e1.Add(e2)
			if bis.Len() == 0 {
				bis = geom.Vec2{X: -e1.Y, Y: e1.X}
			}
			bis = bis.Norm().Mul(float32(margin))
			return v2p(v.Add(bis))
		}
	}
	return pt
}

func nearEq(a poly.Point2, b Point2) bool {
	return a.ApproxEqual(poly.Point2{X: b.X, Y: b.Y}, poly.Eps)
}
