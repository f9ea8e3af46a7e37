// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathfind3d

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/fzipp/pathfind3d/internal/astarx"
	"github.com/fzipp/pathfind3d/internal/obstacle"
	"github.com/fzipp/pathfind3d/internal/perr"
	"github.com/fzipp/pathfind3d/internal/poly"
	"github.com/fzipp/pathfind3d/internal/spatial"
	"github.com/fzipp/pathfind3d/internal/vis3d"
)

// baselineIterationCap guards the waypoint-advancement loop against a floating-point
// induced infinite loop: a correctness guard, not a performance one.
const baselineIterationCap = 10000

// FindPathBaselineFilter advances one waypoint at a time: at each step it
// restricts attention to the obstacles actually piercing the direct line
// from the current position to target, solves a 3D visibility graph over
// just that filtered set, and takes the second vertex of the resulting
// local path as the next waypoint. It fails with BaselineStuck if an
// iteration makes no progress.
func FindPathBaselineFilter(obstacles ObstacleSet, origin, target Point3, log Logger) (Path3, error) {
	log = logger(log)
	log.Log(LevelDebug, "baseline_filter", "enter", "obstacles", len(obstacles))

	set, err := toInternalSet(obstacles)
	if err != nil {
		return nil, wrapf(perr.InvalidInput, "pathfind3d.FindPathBaselineFilter", err)
	}

	index, margin := buildObstacleIndex(set)
	targetPoint := toPolyPoint3(target)

	path := arraylist.New()
	path.Add(toPolyPoint3(origin))
	current := toPolyPoint3(origin)
	prevFilterSize := -1

	for iter := 0; iter < baselineIterationCap; iter++ {
		filter := filterObstacles(set, index, margin, current, targetPoint)
		if len(filter) == 0 {
			path.Add(targetPoint)
			return toPath3(path), nil
		}
		if prevFilterSize != -1 && len(filter) >= prevFilterSize {
			log.Log(LevelWarning, "baseline_filter", "filter set did not shrink", "size", len(filter))
			return nil, perr.New(perr.BaselineStuck, "pathfind3d.FindPathBaselineFilter")
		}
		prevFilterSize = len(filter)

		local := vis3d.Build(filter, current, targetPoint)
		startIdx, goalIdx, err := endpointIndices(local, current, targetPoint)
		if err != nil {
			return nil, wrapf(perr.GraphCorruption, "pathfind3d.FindPathBaselineFilter", err)
		}
		indices, err := astarx.FindPath3D(local, startIdx, goalIdx)
		if err != nil {
			return nil, wrapf(perr.NoPathFound, "pathfind3d.FindPathBaselineFilter", err)
		}
		if len(indices) == 2 {
			path.Add(targetPoint)
			return toPath3(path), nil
		}

		next := local.Points[indices[1]]
		if next.ApproxEqual(current, poly.Eps) {
			if len(indices) < 3 {
				log.Log(LevelWarning, "baseline_filter", "no distinct next waypoint")
				return nil, perr.New(perr.BaselineStuck, "pathfind3d.FindPathBaselineFilter")
			}
			next = local.Points[indices[2]]
		}
		path.Add(next)
		current = next
	}
	return nil, perr.New(perr.BaselineStuck, "pathfind3d.FindPathBaselineFilter")
}

// buildObstacleIndex returns a quadtree keyed on each obstacle's bounding
// box center, plus the half-diagonal of the largest bounding box: range
// queries are expanded by that margin so a query rect can never miss an
// obstacle whose footprint reaches outside its own center point.
func buildObstacleIndex(set obstacle.Set) (*spatial.QuadTree, poly.R) {
	boxes := make([]poly.Box2, len(set))
	maxHalfDiag := poly.R(0)
	for i, o := range set {
		b := o.Shape.BoundingBox()
		boxes[i] = b
		halfDiag := poly.Point2{X: b.MaxX - b.MinX, Y: b.MaxY - b.MinY}.DistanceTo(poly.Point2{}) / 2
		if halfDiag > maxHalfDiag {
			maxHalfDiag = halfDiag
		}
	}
	min, max := spatial.BoundingBox(boxes)
	tree := spatial.New(min, max, 4)
	for i, b := range boxes {
		center := poly.Point2{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
		tree.Insert(center, i)
	}
	return tree, maxHalfDiag
}

// filterObstacles returns the obstacles whose 2D footprint might intersect
// segment from->to: the quadtree narrows the candidate set by location,
// and the exact obstacle-segment intersection test confirms each one.
func filterObstacles(set obstacle.Set, index *spatial.QuadTree, margin poly.R, from, to poly.Point3) obstacle.Set {
	a2, b2 := poly.Point3To2D(from), poly.Point3To2D(to)
	min, max := spatial.QueryRect(a2, b2, margin)
	candidates := index.RangeSearch(min, max)

	var filter obstacle.Set
	seg := poly.Segment3{A: from, B: to}
	for _, i := range candidates {
		if _, hit := set[i].IntersectSegment(seg); hit {
			filter = append(filter, set[i])
		}
	}
	return filter
}

func toPath3(l *arraylist.List) Path3 {
	out := make(Path3, 0, l.Size())
	it := l.Iterator()
	for it.Next() {
		out = append(out, fromPolyPoint3(it.Value().(poly.Point3)))
	}
	return out
}
