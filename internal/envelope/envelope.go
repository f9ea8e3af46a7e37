// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package envelope implements the per-pivot visibility sweep: the
// "shortest as long as" envelope of segments ordered by far-endpoint
// rank, the O(1) least-common-ancestor helper it uses to collapse a
// segment to its representative rank, and polygon self-occlusion.
package envelope

// SegmentID identifies a segment by its index in the caller's segment
// slice. -1 means "no segment".
type SegmentID int

const NoSegment SegmentID = -1

// Envelope holds, for each rank 0..maxRank, at most one segment: the one
// currently nearest to the pivot in that angular slot. It supports O(1)
// (amortized over 64-rank words) lookup of the lowest surviving entry at
// or beyond a given rank, which is what the sweep needs to test whether a
// newly started segment is nearer than whatever already occupies its far
// rank.
type Envelope struct {
	present rankBits
	seg     []SegmentID
	maxRank int
}

// New returns an empty envelope over ranks 0..maxRank.
func New(maxRank int) *Envelope {
	return &Envelope{
		present: newRankBits(maxRank),
		seg:     make([]SegmentID, maxRank+1),
		maxRank: maxRank,
	}
}

// Empty reports whether the envelope currently holds no segments.
func (e *Envelope) Empty() bool {
	_, _, ok := e.Head()
	return !ok
}

// Head returns the entry at the lowest present rank: the segment nearest
// to the pivot in the angular slot the sweep just finished processing.
func (e *Envelope) Head() (SegmentID, int, bool) {
	return e.ShortestAsLongAs(0)
}

// ShortestAsLongAs returns the entry with the lowest rank >= rank, i.e.
// the envelope's answer to "which segment is nearest, among those whose
// far endpoint reaches at least this far".
func (e *Envelope) ShortestAsLongAs(rank int) (SegmentID, int, bool) {
	if rank > e.maxRank {
		return NoSegment, 0, false
	}
	r, ok := e.present.lowestFrom(rank)
	if !ok {
		return NoSegment, 0, false
	}
	return e.seg[r], r, true
}

// Predecessor returns the entry at the highest present rank strictly
// below rank, used when walking backward from a freshly inserted entry
// to remove segments it now occludes.
func (e *Envelope) Predecessor(rank int) (SegmentID, int, bool) {
	if rank == 0 {
		return NoSegment, 0, false
	}
	r, ok := e.present.highestUpTo(rank - 1)
	if !ok {
		return NoSegment, 0, false
	}
	return e.seg[r], r, true
}

// Insert places seg at rank, overwriting any existing entry there (the
// envelope invariant guarantees at most one entry per rank, so callers
// only insert at a rank they've already decided should hold the new
// segment).
func (e *Envelope) Insert(seg SegmentID, rank int) {
	e.present.set(rank)
	e.seg[rank] = seg
}

// Erase removes the entry at rank, if any.
func (e *Envelope) Erase(rank int) {
	if e.present.test(rank) {
		e.present.clear(rank)
	}
}

// At reports the segment occupying rank, if any, without consulting
// neighboring ranks.
func (e *Envelope) At(rank int) (SegmentID, bool) {
	if e.present.test(rank) {
		return e.seg[rank], true
	}
	return NoSegment, false
}
