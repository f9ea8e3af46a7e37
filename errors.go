// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathfind3d

import "github.com/fzipp/pathfind3d/internal/perr"

// Error kinds a planner can fail with. Callers compare with errors.Is,
// e.g. errors.Is(err, pathfind3d.NoPathFound).
const (
	InvalidInput       = perr.InvalidInput
	NoIntersection     = perr.NoIntersection
	GeometryDegenerate = perr.GeometryDegenerate
	NoPathFound        = perr.NoPathFound
	BaselineStuck      = perr.BaselineStuck
	GraphCorruption    = perr.GraphCorruption
	PlanFailedAllCuts  = perr.PlanFailedAllCuts
)

// wrapf attaches a new "planner X failed" context frame to cause without
// swallowing it; the resulting error keeps cause reachable via errors.Is
// and errors.As through Unwrap.
func wrapf(kind perr.Kind, context string, cause error) error {
	return perr.Wrap(kind, context, cause)
}
