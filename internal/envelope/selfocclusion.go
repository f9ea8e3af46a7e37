// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import "github.com/fzipp/pathfind3d/internal/poly"

// Cone is the angular exclusion cone a polygon vertex casts into its own
// polygon interior: any ray leaving the vertex with an angle strictly
// inside [Right, Left] (wrapping through 0 if Right > Left) immediately
// grazes the polygon and is self-occluded by the near incident edge,
// OccludingVertex, before ever reaching the envelope sweep.
type Cone struct {
	Right, Left     poly.R
	OccludingVertex int
}

// VertexCones builds one Cone per vertex of a clockwise polygon, bounded
// by the angles to its two neighboring vertices.
func VertexCones(p poly.Polygon2) []Cone {
	n := len(p.Vertices)
	cones := make([]Cone, n)
	for i := 0; i < n; i++ {
		prev := p.Vertices[(i-1+n)%n]
		next := p.Vertices[(i+1)%n]
		v := p.Vertices[i]
		cones[i] = Cone{
			Right:           v.AngleTo(next),
			Left:            v.AngleTo(prev),
			OccludingVertex: i,
		}
	}
	return cones
}

// Contains reports whether angle (clockwise from +y, in [0, 2*pi)) falls
// strictly inside the cone.
func (c Cone) Contains(angle poly.R) bool {
	if c.Right <= c.Left {
		return angle > c.Right && angle < c.Left
	}
	return angle > c.Right || angle < c.Left
}
