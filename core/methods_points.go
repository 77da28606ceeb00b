// File: methods_points.go
// Role: Point registry: AddPoint and AddPointAngleDistance.
//
// IDs: a new point's ID is len(points) before the append.
// Concurrency: both methods take the Workfield write lock.

package core

import (
	"fmt"
	"math"
)

// AddPoint appends a point at (x, y) and returns it.
//
// Errors:
//   - ErrCapacityExceeded: points already hold WithMaxEntities entries.
//   - ErrNegativeCoordinate: x or y < 0 under WithNonNegativeCoordinates.
//
// Complexity: O(1) amortized.
func (w *Workfield) AddPoint(x, y float64) (*Point, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.capacityLocked(MethodAddPoint, "points", len(w.points), 1); err != nil {
		return nil, w.fail(MethodAddPoint, err)
	}
	if err := w.coordsAllowed(MethodAddPoint, x, y); err != nil {
		return nil, w.fail(MethodAddPoint, err)
	}

	p := w.newPointLocked(x, y)
	w.emit(MethodAddPoint, fmt.Sprintf("Created point with ID: %d", p.ID), "id", p.ID, "x", x, "y", y)

	return p, nil
}

// AddPointAngleDistance appends a point at distance from the anchor, in the
// direction angleDeg measured clockwise from vertical:
//
//	x = anchor.X + distance·sin(angle)
//	y = anchor.Y + distance·cos(angle)
//
// The new point is not connected to the anchor; add a segment for that.
//
// Errors:
//   - ErrNotFound: anchorID out of range.
//   - ErrCapacityExceeded, ErrNegativeCoordinate: as AddPoint.
func (w *Workfield) AddPointAngleDistance(anchorID int, angleDeg, distance float64) (*Point, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	anchor, err := w.pointLocked(MethodAddPointAngleDistance, "anchor", anchorID)
	if err != nil {
		return nil, w.fail(MethodAddPointAngleDistance, err)
	}
	if err = w.capacityLocked(MethodAddPointAngleDistance, "points", len(w.points), 1); err != nil {
		return nil, w.fail(MethodAddPointAngleDistance, err)
	}

	rad := radians(angleDeg)
	x := anchor.X + distance*math.Sin(rad)
	y := anchor.Y + distance*math.Cos(rad)
	if err = w.coordsAllowed(MethodAddPointAngleDistance, x, y); err != nil {
		return nil, w.fail(MethodAddPointAngleDistance, err)
	}

	p := w.newPointLocked(x, y)
	w.emit(MethodAddPointAngleDistance,
		fmt.Sprintf("Created point with ID: %d at %g degrees, distance %g from point %d", p.ID, angleDeg, distance, anchor.ID),
		"id", p.ID, "anchor", anchor.ID)

	return p, nil
}
