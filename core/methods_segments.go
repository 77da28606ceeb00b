// File: methods_segments.go
// Role: Connectivity builders: AddSegment, AddTriangle, AddQuadrilateral.
//
// Connectivity:
//   - Every segment connects its endpoints both ways (Point.ConnectedTo).
//   - Connections are never deduplicated; AddSegment(a, b) twice records
//     b twice in a.ConnectedTo.
//
// Duplicate-edge policy:
//   - AddTriangle rejects any requested edge whose unordered endpoint pair
//     {a, b} matches an existing segment.
//   - AddQuadrilateral rejects any point that already ends an existing segment.
//
// Both pre-checks and all ID lookups run before the first mutation.

package core

import "fmt"

// AddSegment connects two points and appends the segment between them.
//
// Errors:
//   - ErrNotFound: p1ID or p2ID out of range (the message names which).
//   - ErrCapacityExceeded: segments are full.
//
// Complexity: O(1) amortized.
func (w *Workfield) AddSegment(p1ID, p2ID int) (*Segment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p1, err := w.pointLocked(MethodAddSegment, "p1", p1ID)
	if err != nil {
		return nil, w.fail(MethodAddSegment, err)
	}
	p2, err := w.pointLocked(MethodAddSegment, "p2", p2ID)
	if err != nil {
		return nil, w.fail(MethodAddSegment, err)
	}
	if err = w.capacityLocked(MethodAddSegment, "segments", len(w.segments), 1); err != nil {
		return nil, w.fail(MethodAddSegment, err)
	}

	s := w.linkLocked(p1, p2)
	w.emit(MethodAddSegment,
		fmt.Sprintf("Created segment with ID: %d between points %d and %d", s.ID, p1.ID, p2.ID),
		"id", s.ID, "p1", p1.ID, "p2", p2.ID)

	return s, nil
}

// AddLine is the historical name of AddSegment.
//
// Deprecated: use AddSegment.
func (w *Workfield) AddLine(p1ID, p2ID int) (*Segment, error) {
	return w.AddSegment(p1ID, p2ID)
}

// AddTriangle connects three points pairwise and returns the segments
// p1-p2, p2-p3, p1-p3 in creation order.
//
// Implementation:
//   - Stage 0: Reject a request that names the same point twice, since it
//     would build a zero-length edge and two segments over one pair.
//   - Stage 1: Reject if any requested pair already has a segment (either order).
//   - Stage 2: Resolve the three IDs and check segment capacity.
//   - Stage 3: Connect and append the three segments.
//
// Errors:
//   - ErrDuplicateEdge: an ID repeats within the request, or an edge already exists.
//   - ErrNotFound: an ID is out of range.
//   - ErrCapacityExceeded: fewer than three segment slots left.
//
// Complexity: O(S) for the duplicate scan over S existing segments.
func (w *Workfield) AddTriangle(p1ID, p2ID, p3ID int) ([3]*Segment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out [3]*Segment
	pairs := [3][2]int{{p1ID, p2ID}, {p2ID, p3ID}, {p1ID, p3ID}}

	if id, dup := repeatedID([]int{p1ID, p2ID, p3ID}); dup {
		err := wfErrorf(MethodAddTriangle, "point %d repeated: %w", id, ErrDuplicateEdge)
		return out, w.fail(MethodAddTriangle, err)
	}

	for _, s := range w.segments {
		for _, pr := range pairs {
			if s.joins(pr[0], pr[1]) {
				err := wfErrorf(MethodAddTriangle, "edge %d-%d exists as segment %d: %w", pr[0], pr[1], s.ID, ErrDuplicateEdge)
				return out, w.fail(MethodAddTriangle, err)
			}
		}
	}

	var pts [3]*Point
	for i, id := range [3]int{p1ID, p2ID, p3ID} {
		p, err := w.pointLocked(MethodAddTriangle, fmt.Sprintf("p%d", i+1), id)
		if err != nil {
			return out, w.fail(MethodAddTriangle, err)
		}
		pts[i] = p
	}
	if err := w.capacityLocked(MethodAddTriangle, "segments", len(w.segments), 3); err != nil {
		return out, w.fail(MethodAddTriangle, err)
	}

	out[0] = w.linkLocked(pts[0], pts[1])
	out[1] = w.linkLocked(pts[1], pts[2])
	out[2] = w.linkLocked(pts[0], pts[2])
	w.emit(MethodAddTriangle,
		fmt.Sprintf("Created triangle from points %d, %d, %d with segments %d, %d, %d",
			p1ID, p2ID, p3ID, out[0].ID, out[1].ID, out[2].ID),
		"points", []int{p1ID, p2ID, p3ID})

	return out, nil
}

// AddQuadrilateral connects four points in the cycle p1-p2-p3-p4-p1 and
// returns the four segments in that order.
//
// The pre-check is stricter than AddTriangle's: a point that already ends
// any segment disqualifies the whole quadrilateral. Naming a point twice is
// rejected as well, since the cycle would then repeat a pair.
//
// Errors:
//   - ErrDuplicateEdge: an ID repeats, or one of the points is already an endpoint.
//   - ErrNotFound: an ID is out of range.
//   - ErrCapacityExceeded: fewer than four segment slots left.
//
// Complexity: O(S).
func (w *Workfield) AddQuadrilateral(p1ID, p2ID, p3ID, p4ID int) ([4]*Segment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out [4]*Segment
	ids := [4]int{p1ID, p2ID, p3ID, p4ID}

	if id, dup := repeatedID(ids[:]); dup {
		err := wfErrorf(MethodAddQuadrilateral, "point %d repeated: %w", id, ErrDuplicateEdge)
		return out, w.fail(MethodAddQuadrilateral, err)
	}

	for _, s := range w.segments {
		for _, id := range ids {
			if s.touches(id) {
				err := wfErrorf(MethodAddQuadrilateral, "point %d already ends segment %d: %w", id, s.ID, ErrDuplicateEdge)
				return out, w.fail(MethodAddQuadrilateral, err)
			}
		}
	}

	var pts [4]*Point
	for i, id := range ids {
		p, err := w.pointLocked(MethodAddQuadrilateral, fmt.Sprintf("p%d", i+1), id)
		if err != nil {
			return out, w.fail(MethodAddQuadrilateral, err)
		}
		pts[i] = p
	}
	if err := w.capacityLocked(MethodAddQuadrilateral, "segments", len(w.segments), 4); err != nil {
		return out, w.fail(MethodAddQuadrilateral, err)
	}

	for i := range pts {
		out[i] = w.linkLocked(pts[i], pts[(i+1)%len(pts)])
	}
	w.emit(MethodAddQuadrilateral,
		fmt.Sprintf("Created quadrilateral from points %d, %d, %d, %d with segments %d-%d",
			p1ID, p2ID, p3ID, p4ID, out[0].ID, out[3].ID),
		"points", ids[:])

	return out, nil
}
