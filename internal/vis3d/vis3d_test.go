// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis3d

import (
	"testing"

	"github.com/fzipp/pathfind3d/internal/obstacle"
	"github.com/fzipp/pathfind3d/internal/poly"
)

func TestLayerHeightsDedupAndSort(t *testing.T) {
	obs := obstacle.Set{
		{Height: 5},
		{Height: 5},
		{Height: 3},
	}
	got := layerHeights(obs, 0, 2)
	want := []poly.R{5, 3, 2, 0}
	if len(got) != len(want) {
		t.Fatalf("layerHeights() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("layerHeights()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestActiveObstacles(t *testing.T) {
	obs := obstacle.Set{
		{Height: 5},
		{Height: 2},
	}
	got := activeObstacles(obs, 3)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("activeObstacles(obs, 3) = %v, want [0]", got)
	}
}

func TestGraphConnectAndNeighbours(t *testing.T) {
	g := &Graph{Dist: make(map[PairKey]poly.R)}
	g.Points = []poly.Point3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	g.connect(0, 1)
	g.connect(0, 2)
	g.connect(0, 0) // self-connect is a no-op

	if len(g.Dist) != 2 {
		t.Fatalf("len(g.Dist) = %d, want 2", len(g.Dist))
	}
	neighbours := g.Neighbours(0)
	if len(neighbours) != 2 {
		t.Fatalf("Neighbours(0) = %v, want 2 entries", neighbours)
	}
	for _, n := range neighbours {
		if n == 0 {
			t.Error("Neighbours(0) should not include 0 itself")
		}
	}
}

func TestSnapSamePointSameKey(t *testing.T) {
	p := poly.Point3{X: 1.5, Y: -2.5, Z: 3.25}
	if snap(p) != snap(p) {
		t.Error("snap() should be stable for the same point")
	}
	q := poly.Point3{X: 1.5 + 1, Y: -2.5, Z: 3.25}
	if snap(p) == snap(q) {
		t.Error("snap() should distinguish points a unit apart")
	}
}

func TestBuildNoObstaclesConnectsOriginAndTarget(t *testing.T) {
	origin := poly.Point3{X: 0, Y: 0, Z: 0}
	target := poly.Point3{X: 10, Y: 0, Z: 0}
	g := Build(obstacle.Set{}, origin, target)

	if len(g.Points) != 2 {
		t.Fatalf("len(g.Points) = %d, want 2", len(g.Points))
	}
	found := false
	for _, n := range g.Neighbours(0) {
		if n == 1 {
			found = true
		}
	}
	if !found {
		t.Error("origin and target should be connected when there are no obstacles")
	}
}

func TestBuildWallForcesExtraPoints(t *testing.T) {
	wall, err := poly.NewPolygon2([]poly.Point2{
		{X: 4, Y: -10}, {X: 6, Y: -10}, {X: 6, Y: 10}, {X: 4, Y: 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	obs := obstacle.Set{{Shape: wall, Height: 5}}
	origin := poly.Point3{X: 0, Y: 0, Z: 0}
	target := poly.Point3{X: 10, Y: 0, Z: 0}

	g := Build(obs, origin, target)
	if len(g.Points) <= 2 {
		t.Fatalf("len(g.Points) = %d, want more than origin and target alone", len(g.Points))
	}
	if len(g.Dist) == 0 {
		t.Error("a wall between origin and target should still leave some connections to climb over it")
	}
}
