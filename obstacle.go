// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathfind3d

// Obstacle is a vertical prism: a footprint polygon extruded from z=0 to
// z=Height. Shape must have at least two vertices in clockwise order and
// Height must be strictly positive; the planner entry points check the
// vertex count and the height and fail with InvalidInput otherwise. The
// vertex order is not checked.
type Obstacle struct {
	Shape  []Point2
	Height float64
}

// ObstacleSet is the scene a planner routes through.
type ObstacleSet []Obstacle
