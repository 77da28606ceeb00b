// SPDX-License-Identifier: MIT
//
// File: methods_auto.go
// Role: AutoTriangle constructions: two new points and three segments from a
// single anchor, with the geometry computed here instead of by the caller.
//
// Placement (anchor A, new points T "top" and B "bottom right"):
//
//	isosceles/equilateral:  B = (A.x, A.y + base)
//	                        T = (A.x + base/2, A.y + height), height = sqrt(s² - (base/2)²)
//	right-angled:           T = (A.x, A.y + vertical)
//	                        B = (A.x + horizontal, A.y)
//
// Segments are always A→T, T→B, B→A. T is appended before B.

package core

import (
	"fmt"
	"math"
)

// AutoIsosceles derives a base from equalAngleDeg and equalSide and places
// B = (A.x, A.y + base) and T = (A.x + base/2, A.y + height). The base runs
// along A→B, so A→T has length equalSide while T→B generally does not: the
// figure is isosceles about A only when the base equals equalSide.
//
// The base follows the law of cosines over the apex angle:
//
//	base = sqrt(2s² - 2s²·cos(180° - 2·angle))
//
// With WithLegacyIsoscelesDegrees the apex value is handed to cos as radians
// without conversion.
func (w *Workfield) AutoIsosceles(anchorID int, equalAngleDeg, equalSide float64) ([2]*Point, [3]*Segment, error) {
	return w.autoTriangle(TriangleIsosceles, anchorID, equalAngleDeg, equalSide)
}

// AutoEquilateral uses the isosceles placement with base = side. A→T and
// B→A have length side; T→B is shorter (about 0.518·side), so the result is
// not an equilateral triangle in the geometric sense.
func (w *Workfield) AutoEquilateral(anchorID int, side float64) ([2]*Point, [3]*Segment, error) {
	return w.autoTriangle(TriangleEquilateral, anchorID, side, 0)
}

// AutoRightAngled builds a right-angled triangle with the right angle at the
// anchor, a horizontal leg and a vertical leg.
func (w *Workfield) AutoRightAngled(anchorID int, horizontal, vertical float64) ([2]*Point, [3]*Segment, error) {
	return w.autoTriangle(TriangleRightAngled, anchorID, horizontal, vertical)
}

// AutoTriangle is the selector-driven form used by scripts:
//
//	AutoTriangle("isosceles", anchorID, equalAngleDeg, equalSide)
//	AutoTriangle(1, anchorID, side)
//	AutoTriangle("right-angled", anchorID, horizontal, vertical)
//
// It returns ([top, bottomRight], [A→T, T→B, B→A]).
//
// Errors:
//   - ErrInvalidKind: unknown selector.
//   - ErrBadArguments: wrong argument count or a non-integral anchor ID.
//   - ErrNotFound: anchor out of range.
//   - ErrCapacityExceeded: not enough room for 2 points and 3 segments.
//   - ErrNegativeCoordinate: a derived point is negative under WithNonNegativeCoordinates.
func (w *Workfield) AutoTriangle(sel any, args ...float64) ([2]*Point, [3]*Segment, error) {
	var (
		pts  [2]*Point
		segs [3]*Segment
	)

	kind, err := ParseTriangleKind(sel)
	if err != nil {
		return pts, segs, w.fail(MethodAutoTriangle, err)
	}
	if len(args) != kind.arity() {
		err = wfErrorf(MethodAutoTriangle, "%s takes %d arguments, got %d: %w", kind, kind.arity(), len(args), ErrBadArguments)
		return pts, segs, w.fail(MethodAutoTriangle, err)
	}
	anchorID, err := argID(MethodAutoTriangle, 0, args[0])
	if err != nil {
		return pts, segs, w.fail(MethodAutoTriangle, err)
	}

	var a, b float64
	a = args[1]
	if len(args) > 2 {
		b = args[2]
	}

	return w.autoTriangle(kind, anchorID, a, b)
}

// autoTriangle validates everything, then appends T, B and the three segments.
func (w *Workfield) autoTriangle(kind TriangleKind, anchorID int, a, b float64) ([2]*Point, [3]*Segment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var (
		pts  [2]*Point
		segs [3]*Segment
	)

	anchor, err := w.pointLocked(MethodAutoTriangle, "anchor", anchorID)
	if err != nil {
		return pts, segs, w.fail(MethodAutoTriangle, err)
	}
	if err = w.capacityLocked(MethodAutoTriangle, "points", len(w.points), 2); err != nil {
		return pts, segs, w.fail(MethodAutoTriangle, err)
	}
	if err = w.capacityLocked(MethodAutoTriangle, "segments", len(w.segments), 3); err != nil {
		return pts, segs, w.fail(MethodAutoTriangle, err)
	}

	tx, ty, bx, by := w.placeTriangle(kind, anchor, a, b)
	if err = w.coordsAllowed(MethodAutoTriangle, tx, ty); err != nil {
		return pts, segs, w.fail(MethodAutoTriangle, err)
	}
	if err = w.coordsAllowed(MethodAutoTriangle, bx, by); err != nil {
		return pts, segs, w.fail(MethodAutoTriangle, err)
	}

	top := w.newPointLocked(tx, ty)
	bottomRight := w.newPointLocked(bx, by)
	segs[0] = w.linkLocked(anchor, top)
	segs[1] = w.linkLocked(top, bottomRight)
	segs[2] = w.linkLocked(bottomRight, anchor)
	pts[0], pts[1] = top, bottomRight

	w.emit(MethodAutoTriangle,
		fmt.Sprintf("Created %s triangle from point %d with points %d, %d and segments %d, %d, %d",
			kind, anchor.ID, top.ID, bottomRight.ID, segs[0].ID, segs[1].ID, segs[2].ID),
		"kind", kind.String(), "anchor", anchor.ID)

	return pts, segs, nil
}

// placeTriangle returns the top (tx, ty) and bottom-right (bx, by) coordinates.
// For isosceles a, b are (equal angle, equal side); for equilateral a is the
// side; for right-angled a, b are (horizontal, vertical).
func (w *Workfield) placeTriangle(kind TriangleKind, anchor *Point, a, b float64) (tx, ty, bx, by float64) {
	switch kind {
	case TriangleRightAngled:
		return anchor.X, anchor.Y + b, anchor.X + a, anchor.Y
	case TriangleEquilateral:
		return isoscelesPlacement(anchor, a, a)
	default:
		return isoscelesPlacement(anchor, isoscelesBase(a, b, w.cfg.legacyIsosceles), b)
	}
}

// isoscelesBase applies the law of cosines to the apex angle 180 - 2·angle.
func isoscelesBase(equalAngleDeg, side float64, legacy bool) float64 {
	apex := 180 - 2*equalAngleDeg
	if !legacy {
		apex = radians(apex)
	}
	s2 := side * side

	return math.Sqrt(2*s2 - 2*s2*math.Cos(apex))
}

func isoscelesPlacement(anchor *Point, base, side float64) (tx, ty, bx, by float64) {
	half := base / 2
	height := math.Sqrt(side*side - half*half)

	return anchor.X + half, anchor.Y + height, anchor.X, anchor.Y + base
}
