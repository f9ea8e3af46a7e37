// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathfind3d

import (
	"hash/maphash"

	"github.com/fzipp/astar"
	"github.com/google/btree"

	"github.com/fzipp/pathfind3d/internal/cache"
	"github.com/fzipp/pathfind3d/internal/obstacle"
	"github.com/fzipp/pathfind3d/internal/perr"
	"github.com/fzipp/pathfind3d/internal/poly"
)

// maxPointSeparation bounds the spacing between consecutive auxiliary
// sample points placed along an obstacle's boundary edges.
const maxPointSeparation poly.R = 1.0

// obstacleIndexItem orders obstacle indices for the btree so sample-point
// generation visits obstacles in a stable, sorted order instead of
// whatever order a map or sort.Slice call on every pass would produce.
type obstacleIndexItem int

func (a obstacleIndexItem) Less(than btree.Item) bool {
	return a < than.(obstacleIndexItem)
}

// FindPathEdgeSampling is the "naive" 3D planner: it materializes
// auxiliary points along every polygon boundary edge and every prism's
// vertical edges at spacing <= maxPointSeparation, then runs A* over a
// visibility graph whose edges are lazily probed (and memoized) obstacle
// intersection tests rather than a precomputed dense graph.
func FindPathEdgeSampling(obstacles ObstacleSet, origin, target Point3, log Logger) (Path3, error) {
	log = logger(log)
	log.Log(LevelDebug, "edge_sampling", "enter", "obstacles", len(obstacles))

	set, err := toInternalSet(obstacles)
	if err != nil {
		return nil, wrapf(perr.InvalidInput, "pathfind3d.FindPathEdgeSampling", err)
	}

	order := btree.New(32)
	for i := range set {
		order.ReplaceOrInsert(obstacleIndexItem(i))
	}

	points := []poly.Point3{toPolyPoint3(origin), toPolyPoint3(target)}
	order.Ascend(func(it btree.Item) bool {
		i := int(it.(obstacleIndexItem))
		points = append(points, sampleObstacle(set[i])...)
		return true
	})

	g := &edgeSamplingGraph{
		points: points,
		set:    set,
		cache:  cache.New[pairKey, bool](10*len(points), hashPairKey),
	}

	indices := astar.FindPath[int](g, 0, 1, g.distance, g.distance)
	if len(indices) == 0 {
		return nil, perr.New(perr.NoPathFound, "pathfind3d.FindPathEdgeSampling")
	}

	path := make(Path3, len(indices))
	for i, idx := range indices {
		path[i] = fromPolyPoint3(points[idx])
	}
	log.Log(LevelDebug, "edge_sampling", "exit", "path", path)
	return path, nil
}

// sampleObstacle places points along the obstacle's top and bottom
// boundary edges and its vertical corner edges, at spacing no larger than
// maxPointSeparation.
func sampleObstacle(o obstacle.Obstacle) []poly.Point3 {
	var pts []poly.Point3
	n := len(o.Shape.Vertices)
	for i := 0; i < n; i++ {
		a := o.Shape.Vertices[i]
		b := o.Shape.Vertices[(i+1)%n]
		steps := stepsFor(a.DistanceTo(b))
		for s := 0; s <= steps; s++ {
			t := poly.R(s) / poly.R(steps)
			p := poly.Point2{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
			pts = append(pts, poly.Point2To3D(p, 0), poly.Point2To3D(p, o.Height))
		}
	}
	for _, v := range o.Shape.Vertices {
		steps := stepsFor(o.Height)
		for s := 0; s <= steps; s++ {
			z := o.Height * poly.R(s) / poly.R(steps)
			pts = append(pts, poly.Point2To3D(v, z))
		}
	}
	return pts
}

func stepsFor(length poly.R) int {
	if length <= 0 {
		return 1
	}
	n := int(length/maxPointSeparation) + 1
	if n < 1 {
		n = 1
	}
	return n
}

type pairKey struct{ a, b int }

func hashPairKey(k pairKey) uint64 {
	var h maphash.Hash
	h.SetSeed(pairKeySeed)
	var buf [16]byte
	putInt(buf[0:8], k.a)
	putInt(buf[8:16], k.b)
	h.Write(buf[:])
	return h.Sum64()
}

var pairKeySeed = maphash.MakeSeed()

func putInt(buf []byte, v int) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
}

// edgeSamplingGraph is the lazily-probed visibility graph over the
// materialized sample points.
type edgeSamplingGraph struct {
	points []poly.Point3
	set    obstacle.Set
	cache  *cache.Cache[pairKey, bool]
}

// Neighbours implements astar.Graph[int].
func (g *edgeSamplingGraph) Neighbours(i int) []int {
	var out []int
	for j := range g.points {
		if j == i {
			continue
		}
		if g.visible(i, j) {
			out = append(out, j)
		}
	}
	return out
}

func (g *edgeSamplingGraph) visible(i, j int) bool {
	key := pairKey{a: i, b: j}
	if i > j {
		key = pairKey{a: j, b: i}
	}
	if v, ok := g.cache.Find(key); ok {
		return v
	}
	seg := poly.Segment3{A: g.points[i], B: g.points[j]}
	_, hit := g.set.IntersectSegment(seg)
	v := !hit
	g.cache.Insert(key, v)
	return v
}

func (g *edgeSamplingGraph) distance(i, j int) poly.R {
	return g.points[i].DistanceTo(g.points[j])
}
