// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathfind3d

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/fzipp/pathfind3d/internal/astarx"
	"github.com/fzipp/pathfind3d/internal/envelope"
	"github.com/fzipp/pathfind3d/internal/obstacle"
	"github.com/fzipp/pathfind3d/internal/perr"
	"github.com/fzipp/pathfind3d/internal/poly"
	"github.com/fzipp/pathfind3d/internal/vis2d"
)

// planeCutCount is the number of rotational offsets tried
// around the origin-target axis.
const planeCutCount = 4

// FindPathPlaneCut reduces the 3D problem to a handful of 2D ones: it
// rotates the scene so origin-target is horizontal, cuts every obstacle
// prism by the z=0 plane at K rotational offsets around that axis, solves
// each cut with the 2D visibility-graph planner, and lifts the result
// back. It returns the shortest lifted path over every offset that
// produced one, and fails with PlanFailedAllCuts if none did.
func FindPathPlaneCut(obstacles ObstacleSet, origin, target Point3, log Logger) (Path3, error) {
	log = logger(log)
	log.Log(LevelDebug, "plane_cut", "enter", "obstacles", len(obstacles))

	set, err := toInternalSet(obstacles)
	if err != nil {
		return nil, wrapf(perr.InvalidInput, "pathfind3d.FindPathPlaneCut", err)
	}
	o3, t3 := toPolyPoint3(origin), toPolyPoint3(target)

	base, err := axisAlignTransform(o3, t3)
	if err != nil {
		return nil, wrapf(perr.GeometryDegenerate, "pathfind3d.FindPathPlaneCut", err)
	}

	// candidates orders the lifted candidate paths by length, so the
	// winner is always the tree's minimum entry once every offset has
	// been tried.
	candidates := redblacktree.NewWith(floatComparator)

	for k := 0; k < planeCutCount; k++ {
		theta := math.Pi * float64(k) / float64(planeCutCount)
		tk := poly.RotationMatrix3DX(theta).Mul(base)
		path, length, ok := solveCut(set, o3, t3, tk, log, k)
		if !ok {
			continue
		}
		candidates.Put(length, path)
	}

	if candidates.Empty() {
		return nil, perr.New(perr.PlanFailedAllCuts, "pathfind3d.FindPathPlaneCut")
	}
	best := candidates.Left().Value.([]poly.Point3)
	result := make(Path3, len(best))
	for i, p := range best {
		result[i] = fromPolyPoint3(p)
	}
	log.Log(LevelDebug, "plane_cut", "exit", "path", result)
	return result, nil
}

func floatComparator(a, b any) int {
	fa, fb := a.(float64), b.(float64)
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	default:
		return 0
	}
}

// axisAlignTransform builds R_y(theta_y) . R_z(theta_z) . T(-origin),
// which carries origin to the coordinate-frame origin and target onto the
// positive x-axis.
func axisAlignTransform(origin, target poly.Point3) (poly.Matrix4, error) {
	d := target.Sub(origin)
	dist := d.Norm()
	if dist < poly.Eps {
		return poly.Matrix4{}, errDegenerateAxis
	}
	thetaZ := math.Atan2(d.Y, d.X)
	horiz := math.Hypot(d.X, d.Y)
	thetaY := math.Atan2(d.Z, horiz)

	t := poly.TranslationMatrix3D(-origin.X, -origin.Y, -origin.Z)
	rz := poly.RotationMatrix3DZ(-thetaZ)
	ry := poly.RotationMatrix3DY(thetaY)
	return ry.Mul(rz).Mul(t), nil
}

var errDegenerateAxis = perr.New(perr.GeometryDegenerate, "origin and target coincide")

// solveCut applies t to every obstacle, cuts each prism by z=0, runs the
// 2D planar pathfinder in the cut frame, and lifts the result back with
// t's inverse. It reports false if the cut produced no cut polygons'
// visibility path, or if the lifted path dips underground.
func solveCut(set obstacle.Set, origin, target poly.Point3, t poly.Matrix4, log Logger, k int) ([]poly.Point3, poly.R, bool) {
	var cutPolys []poly.Polygon2
	for _, o := range set {
		cut := cutPrism(o, t)
		if cut != nil {
			cutPolys = append(cutPolys, *cut)
		}
	}

	o2 := poly.Point3To2D(t.Apply(origin))
	tg2 := poly.Point3To2D(t.Apply(target))

	points := []poly.Point2{o2, tg2}
	var segments []poly.Segment2
	cones := map[int]envelope.Cone{}
	for _, p := range cutPolys {
		base := len(points)
		points = append(points, p.Vertices...)
		for _, c := range envelope.VertexCones(p) {
			c.OccludingVertex += base
			cones[c.OccludingVertex] = c
		}
		n := len(p.Vertices)
		for v := 0; v < n; v++ {
			segments = append(segments, poly.Segment2{A: p.Vertices[v], B: p.Vertices[(v+1)%n]})
		}
	}

	graph := vis2d.Build(points, segments, cones)
	indices, err := astarx.FindPath2D(graph, 0, 1)
	if err != nil {
		log.Log(LevelWarning, "plane_cut", "no path for cut", "k", k)
		return nil, 0, false
	}

	inv := t.InverseAffine()

	lifted := make([]poly.Point3, len(indices))
	length := poly.R(0)
	for i, idx := range indices {
		p2 := points[idx]
		if i > 0 && i < len(indices)-1 {
			p2 = toPolyPoint2(nudgeOffBoundary(cutPolys, fromPolyPoint2(p2)))
		}
		p3 := inv.Apply(poly.Point2To3D(p2, 0))
		if i > 0 && p3.Z <= poly.Eps && i < len(indices)-1 {
			return nil, 0, false
		}
		lifted[i] = p3
		if i > 0 {
			length += lifted[i].DistanceTo(lifted[i-1])
		}
	}
	lifted[0] = origin
	lifted[len(lifted)-1] = target
	return lifted, length, true
}

func cutPrism(o obstacle.Obstacle, t poly.Matrix4) *poly.Polygon2 {
	n := len(o.Shape.Vertices)
	type posKind int
	const (
		over posKind = iota
		under
		middle
	)
	classify := func(z poly.R) posKind {
		switch {
		case z > poly.Eps:
			return over
		case z < -poly.Eps:
			return under
		default:
			return middle
		}
	}

	tops := make([]poly.Point3, n)
	bots := make([]poly.Point3, n)
	topPos := make([]posKind, n)
	botPos := make([]posKind, n)
	for i, v := range o.Shape.Vertices {
		tops[i] = t.Apply(poly.Point2To3D(v, o.Height))
		bots[i] = t.Apply(poly.Point2To3D(v, 0))
		topPos[i] = classify(tops[i].Z)
		botPos[i] = classify(bots[i].Z)
	}

	crosses := func(a, b posKind) bool { return a != b && a != middle && b != middle }

	var out []poly.Point2
	alternate := false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		var pts []poly.Point2
		if crosses(topPos[i], topPos[j]) {
			if p, ok := poly.SegmentHorizontalPlaneIntersection(poly.Segment3{A: tops[i], B: tops[j]}, 0); ok {
				pts = append(pts, poly.Point3To2D(p))
			}
		}
		if crosses(botPos[i], botPos[j]) {
			if p, ok := poly.SegmentHorizontalPlaneIntersection(poly.Segment3{A: bots[i], B: bots[j]}, 0); ok {
				pts = append(pts, poly.Point3To2D(p))
			}
		}
		if topPos[i] == middle {
			pts = append(pts, poly.Point3To2D(tops[i]))
		}
		if botPos[i] == middle {
			pts = append(pts, poly.Point3To2D(bots[i]))
		}
		if (topPos[i] == over && botPos[i] == under) || (topPos[i] == under && botPos[i] == over) {
			if p, ok := poly.SegmentHorizontalPlaneIntersection(poly.Segment3{A: tops[i], B: bots[i]}, 0); ok {
				pts = append(pts, poly.Point3To2D(p))
			}
		}
		if len(pts) == 2 {
			d0 := (poly.Point2{}).DistanceTo(pts[0])
			d1 := (poly.Point2{}).DistanceTo(pts[1])
			if (d0 > d1) != alternate {
				pts[0], pts[1] = pts[1], pts[0]
			}
			alternate = !alternate
		}
		out = append(out, pts...)
	}

	if len(out) < 2 {
		return nil
	}
	p, err := poly.NewPolygon2(out)
	if err != nil {
		return nil
	}
	return &p
}
