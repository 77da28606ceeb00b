// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade over the Workfield catalogs.
// Policy:
//   - No mutation here; every method takes the read lock.
//   - Slice results are fresh copies in ID order; the pointed-to entities are
//     the live catalog entries and must be treated as read-only.

package core

import "github.com/google/uuid"

// ID returns the scene identity. It is fixed for the Workfield's lifetime.
func (w *Workfield) ID() uuid.UUID {
	return w.id
}

// Point returns the point with the given ID.
//
// Errors:
//   - ErrNotFound: id out of range.
//
// Complexity: O(1).
func (w *Workfield) Point(id int) (*Point, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.pointLocked(MethodLookup, "point", id)
}

// Segment returns the segment with the given ID, or ErrNotFound.
func (w *Workfield) Segment(id int) (*Segment, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if id < 0 || id >= len(w.segments) {
		return nil, wfErrorf(MethodLookup, "segment %d (have %d): %w", id, len(w.segments), ErrNotFound)
	}
	return w.segments[id], nil
}

// Circle returns the circle with the given ID, or ErrNotFound.
func (w *Workfield) Circle(id int) (*Circle, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if id < 0 || id >= len(w.circles) {
		return nil, wfErrorf(MethodLookup, "circle %d (have %d): %w", id, len(w.circles), ErrNotFound)
	}
	return w.circles[id], nil
}

// Infline returns the infinite line with the given ID, or ErrNotFound.
func (w *Workfield) Infline(id int) (*InfiniteLine, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if id < 0 || id >= len(w.inflines) {
		return nil, wfErrorf(MethodLookup, "infline %d (have %d): %w", id, len(w.inflines), ErrNotFound)
	}
	return w.inflines[id], nil
}

// Points returns all points ordered by ID. Complexity: O(P).
func (w *Workfield) Points() []*Point {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return append([]*Point(nil), w.points...)
}

// Segments returns all segments ordered by ID. Complexity: O(S).
func (w *Workfield) Segments() []*Segment {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return append([]*Segment(nil), w.segments...)
}

// Circles returns all circles ordered by ID.
func (w *Workfield) Circles() []*Circle {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return append([]*Circle(nil), w.circles...)
}

// Inflines returns all infinite lines ordered by ID.
func (w *Workfield) Inflines() []*InfiniteLine {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return append([]*InfiniteLine(nil), w.inflines...)
}

// PointCount returns the number of points.
func (w *Workfield) PointCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.points)
}

// SegmentCount returns the number of segments.
func (w *Workfield) SegmentCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.segments)
}

// CircleCount returns the number of circles.
func (w *Workfield) CircleCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.circles)
}

// InflineCount returns the number of infinite lines.
func (w *Workfield) InflineCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.inflines)
}

// Neighbors returns a copy of the point's ConnectedTo list, duplicates included.
//
// Errors:
//   - ErrNotFound: id out of range.
func (w *Workfield) Neighbors(id int) ([]*Point, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p, err := w.pointLocked(MethodLookup, "point", id)
	if err != nil {
		return nil, err
	}
	return append([]*Point(nil), p.ConnectedTo...), nil
}

// IsConnected reports whether point a lists point b among its connections.
// Connectivity is symmetric, so the result equals IsConnected(b, a).
// Unknown IDs report false. Complexity: O(deg(a)).
func (w *Workfield) IsConnected(a, b int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if a < 0 || a >= len(w.points) || b < 0 || b >= len(w.points) {
		return false
	}
	return w.points[a].IsConnectedTo(w.points[b])
}

// HasSegment reports whether a segment joins point IDs a and b in either order.
// Complexity: O(S).
func (w *Workfield) HasSegment(a, b int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, s := range w.segments {
		if s.joins(a, b) {
			return true
		}
	}
	return false
}

// Stats returns a consistent snapshot of catalog sizes and policies.
// Complexity: O(P) for the connection count.
func (w *Workfield) Stats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()

	st := Stats{
		SceneID:         w.id,
		PointCount:      len(w.points),
		SegmentCount:    len(w.segments),
		CircleCount:     len(w.circles),
		InflineCount:    len(w.inflines),
		MaxEntities:     w.cfg.maxEntities,
		NonNegative:     w.cfg.nonNegative,
		LegacyIsosceles: w.cfg.legacyIsosceles,
	}
	for _, p := range w.points {
		st.ConnectionCount += len(p.ConnectedTo)
	}

	return st
}
