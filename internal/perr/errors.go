// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perr defines the error kinds shared by every layer of the
// pathfinding core, so that internal packages and the public API can both
// classify a failure with errors.Is without import cycles.
package perr

import "fmt"

// Kind classifies a failure. It is not a type hierarchy: every error the
// core returns wraps exactly one Kind, reachable via errors.Is.
type Kind int

const (
	// InvalidInput marks a permanent, caller-correctable input error:
	// a non-positive obstacle height, a polygon with fewer than two
	// vertices, or a box with min > max.
	InvalidInput Kind = iota
	// NoIntersection is returned by the infallible overload of segment
	// intersection when callers opt into failing instead of getting a
	// Kind-tagged non-intersection result.
	NoIntersection
	// GeometryDegenerate marks a programming error surfaced from the
	// geometry layer: a homogeneous divide by zero, a non-unit
	// rotation axis.
	GeometryDegenerate
	// NoPathFound means A* exhausted its frontier before reaching the
	// target.
	NoPathFound
	// BaselineStuck means the baseline-filter planner failed to
	// strictly reduce its obstacle filter set or reach the target in
	// an iteration.
	BaselineStuck
	// GraphCorruption marks an internal invariant violation: an
	// iteration cap exceeded, a size mismatch between parallel slices.
	GraphCorruption
	// PlanFailedAllCuts means the plane-cut planner found no valid
	// lifted path at any rotational offset.
	PlanFailedAllCuts
)

// Error renders the Kind's description and lets a bare Kind value be
// passed directly as the target of errors.Is(err, perr.NoPathFound).
func (k Kind) Error() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case NoIntersection:
		return "no intersection"
	case GeometryDegenerate:
		return "geometry degenerate"
	case NoPathFound:
		return "no path found"
	case BaselineStuck:
		return "baseline stuck"
	case GraphCorruption:
		return "graph corruption"
	case PlanFailedAllCuts:
		return "plan failed all cuts"
	default:
		return "unknown error"
	}
}

// Error carries a Kind plus an ordered context chain: each wrapping frame
// prepends a new "component: summary" description while keeping the
// original cause reachable through Unwrap.
type Error struct {
	Kind    Kind
	Context string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Context, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Context, e.Kind)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the same Kind, so callers can write
// errors.Is(err, perr.NoPathFound) directly against a Kind value.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// New creates a fresh Kind-tagged error with no cause.
func New(kind Kind, context string) error {
	return &Error{Kind: kind, Context: context}
}

// Wrap attaches a new context frame to cause without discarding it,
// tagging the result with kind. If cause already carries a Kind, that
// original Kind remains reachable via errors.Is through the chain; the
// outermost frame reports kind.
func Wrap(kind Kind, context string, cause error) error {
	return &Error{Kind: kind, Context: context, Cause: cause}
}

// Is lets a bare Kind value satisfy errors.Is(err, SomeKind) without
// requiring the caller to unwrap to an *Error first.
func (k Kind) Is(target error) bool {
	if e, ok := target.(*Error); ok {
		return e.Kind == k
	}
	return false
}
