// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package astarx adapts the 2D and 3D visibility graphs to
// github.com/fzipp/astar's generic A* search, so both dimensions share one
// search implementation instead of duplicating it per graph kind.
package astarx

import (
	"github.com/fzipp/astar"

	"github.com/fzipp/pathfind3d/internal/perr"
	"github.com/fzipp/pathfind3d/internal/poly"
	"github.com/fzipp/pathfind3d/internal/vis2d"
	"github.com/fzipp/pathfind3d/internal/vis3d"
)

// graph2D adapts *vis2d.Graph to astar.Graph[int].
type graph2D struct{ g *vis2d.Graph }

func (a graph2D) Neighbours(i int) []int { return a.g.Neighbours(i) }

// graph3D adapts *vis3d.Graph to astar.Graph[int].
type graph3D struct{ g *vis3d.Graph }

func (a graph3D) Neighbours(i int) []int { return a.g.Neighbours(i) }

// FindPath2D runs A* over g from start to goal, both point indices. The
// edge cost and the heuristic are the same Euclidean distance function,
// since every edge in a visibility graph already is a straight line
// between its two endpoints.
func FindPath2D(g *vis2d.Graph, start, goal int) ([]int, error) {
	dist := func(a, b int) poly.R { return g.Points[a].DistanceTo(g.Points[b]) }
	path := astar.FindPath[int](graph2D{g}, start, goal, dist, dist)
	if len(path) == 0 {
		return nil, perr.New(perr.NoPathFound, "astarx.FindPath2D")
	}
	return path, nil
}

// FindPath3D runs A* over g from start to goal, both point indices.
func FindPath3D(g *vis3d.Graph, start, goal int) ([]int, error) {
	dist := func(a, b int) poly.R { return g.Points[a].DistanceTo(g.Points[b]) }
	path := astar.FindPath[int](graph3D{g}, start, goal, dist, dist)
	if len(path) == 0 {
		return nil, perr.New(perr.NoPathFound, "astarx.FindPath3D")
	}
	return path, nil
}
