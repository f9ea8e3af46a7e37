// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathfind3d

import (
	"fmt"

	"github.com/fzipp/pathfind3d/internal/astarx"
	"github.com/fzipp/pathfind3d/internal/obstacle"
	"github.com/fzipp/pathfind3d/internal/perr"
	"github.com/fzipp/pathfind3d/internal/poly"
	"github.com/fzipp/pathfind3d/internal/vis3d"
)

// FindPath is the default planner variant: it lifts one 2D
// visibility slice per distinct obstacle height into a single 3D
// visibility graph and runs A* over it directly. It fails with
// InvalidInput, NoPathFound, GeometryDegenerate, or GraphCorruption.
func FindPath(obstacles ObstacleSet, origin, target Point3, log Logger) (Path3, error) {
	log = logger(log)
	log.Log(LevelDebug, "visibility_graph_3d", "enter", "obstacles", len(obstacles))

	set, err := toInternalSet(obstacles)
	if err != nil {
		return nil, wrapf(perr.InvalidInput, "pathfind3d.FindPath", err)
	}
	if err := validateEndpoints(origin, target); err != nil {
		return nil, wrapf(perr.InvalidInput, "pathfind3d.FindPath", err)
	}

	o3, t3 := toPolyPoint3(origin), toPolyPoint3(target)
	graph := vis3d.Build(set, o3, t3)

	startIdx, goalIdx, err := endpointIndices(graph, o3, t3)
	if err != nil {
		return nil, wrapf(perr.GraphCorruption, "pathfind3d.FindPath", err)
	}

	indices, err := astarx.FindPath3D(graph, startIdx, goalIdx)
	if err != nil {
		log.Log(LevelDebug, "visibility_graph_3d", "no path", "origin", origin, "target", target)
		return nil, wrapf(perr.NoPathFound, "pathfind3d.FindPath", err)
	}

	path := make(Path3, len(indices))
	for i, idx := range indices {
		path[i] = fromPolyPoint3(graph.Points[idx])
	}
	log.Log(LevelDebug, "visibility_graph_3d", "exit", "path", path)
	return path, nil
}

func validateEndpoints(origin, target Point3) error {
	if origin == target {
		return fmt.Errorf("origin and target coincide")
	}
	return nil
}

// endpointIndices finds origin's and target's positions in graph.Points.
// vis3d.Build interns origin's and target's xy at every layer height, so
// the entries equal to origin and target are the ones on the layers of
// their own z, which are not in general indices 0 and 1 (and a polygon
// vertex with the same xy+z shares the entry); this looks the points up
// by value.
func endpointIndices(graph *vis3d.Graph, origin, target poly.Point3) (int, int, error) {
	startIdx, goalIdx := -1, -1
	for i, p := range graph.Points {
		if startIdx == -1 && p.ApproxEqual(origin, poly.Eps) {
			startIdx = i
		}
		if goalIdx == -1 && p.ApproxEqual(target, poly.Eps) {
			goalIdx = i
		}
	}
	if startIdx == -1 || goalIdx == -1 {
		return 0, 0, fmt.Errorf("origin or target missing from lifted graph")
	}
	return startIdx, goalIdx, nil
}

// IsPointValid is the adapter callback an external sampling-based motion
// planner (RRT, PRM, BIT*) uses to test a candidate point: true when p is
// free of every obstacle.
func IsPointValid(obstacles ObstacleSet, p Point3) (bool, error) {
	set, err := toInternalSet(obstacles)
	if err != nil {
		return false, wrapf(perr.InvalidInput, "pathfind3d.IsPointValid", err)
	}
	return obstacle.IsPointValid(set, toPolyPoint3(p)), nil
}

// IsMotionValid is the adapter callback for a candidate motion segment.
func IsMotionValid(obstacles ObstacleSet, a, b Point3) (bool, error) {
	set, err := toInternalSet(obstacles)
	if err != nil {
		return false, wrapf(perr.InvalidInput, "pathfind3d.IsMotionValid", err)
	}
	seg := poly.Segment3{A: toPolyPoint3(a), B: toPolyPoint3(b)}
	return obstacle.IsMotionValid(set, seg), nil
}
