// File: methods_shapes.go
// Role: Circles and infinite lines. Neither touches point connectivity.

package core

import "fmt"

// AddCircle appends a circle around the given centre point.
// The radius is stored as given; zero and negative values are accepted.
//
// Errors:
//   - ErrNotFound: centreID out of range.
//   - ErrCapacityExceeded: circles are full.
func (w *Workfield) AddCircle(centreID int, radius float64) (*Circle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	centre, err := w.pointLocked(MethodAddCircle, "centre", centreID)
	if err != nil {
		return nil, w.fail(MethodAddCircle, err)
	}
	if err = w.capacityLocked(MethodAddCircle, "circles", len(w.circles), 1); err != nil {
		return nil, w.fail(MethodAddCircle, err)
	}

	c := &Circle{Centre: centre, Radius: radius, ID: len(w.circles)}
	w.circles = append(w.circles, c)
	w.emit(MethodAddCircle,
		fmt.Sprintf("Created circle with ID: %d, centre %d, radius %g", c.ID, centre.ID, radius),
		"id", c.ID, "centre", centre.ID, "radius", radius)

	return c, nil
}

// AddAngleInfline appends a KindAngle infinite line through the centre point
// at angleDeg from vertical, clockwise.
func (w *Workfield) AddAngleInfline(centreID int, angleDeg float64) (*InfiniteLine, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	centre, err := w.pointLocked(MethodAddInfline, "centre", centreID)
	if err != nil {
		return nil, w.fail(MethodAddInfline, err)
	}

	return w.appendInflineLocked(&InfiniteLine{Kind: KindAngle, Centre: centre, Angle: angleDeg})
}

// AddTwoPointInfline appends a KindTwoPoint infinite line through two points.
// The points are not connected.
func (w *Workfield) AddTwoPointInfline(p1ID, p2ID int) (*InfiniteLine, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p1, err := w.pointLocked(MethodAddInfline, "p1", p1ID)
	if err != nil {
		return nil, w.fail(MethodAddInfline, err)
	}
	p2, err := w.pointLocked(MethodAddInfline, "p2", p2ID)
	if err != nil {
		return nil, w.fail(MethodAddInfline, err)
	}

	return w.appendInflineLocked(&InfiniteLine{Kind: KindTwoPoint, Point1: p1, Point2: p2})
}

// AddInfline is the selector-driven form used by scripts:
//
//	AddInfline("angle", centreID, angleDeg)
//	AddInfline(1, p1ID, p2ID)
//
// See ParseInflineKind for accepted selectors. IDs must be integral.
//
// Errors:
//   - ErrInvalidKind: unknown selector.
//   - ErrBadArguments: not exactly two args, or a non-integral ID.
//   - ErrNotFound, ErrCapacityExceeded: as the typed methods.
func (w *Workfield) AddInfline(sel any, args ...float64) (*InfiniteLine, error) {
	kind, err := ParseInflineKind(sel)
	if err != nil {
		return nil, w.fail(MethodAddInfline, err)
	}
	if len(args) != 2 {
		err = wfErrorf(MethodAddInfline, "%s takes 2 arguments, got %d: %w", kind, len(args), ErrBadArguments)
		return nil, w.fail(MethodAddInfline, err)
	}

	first, err := argID(MethodAddInfline, 0, args[0])
	if err != nil {
		return nil, w.fail(MethodAddInfline, err)
	}
	if kind == KindAngle {
		return w.AddAngleInfline(first, args[1])
	}
	second, err := argID(MethodAddInfline, 1, args[1])
	if err != nil {
		return nil, w.fail(MethodAddInfline, err)
	}

	return w.AddTwoPointInfline(first, second)
}

// appendInflineLocked checks capacity, assigns the ID and appends l.
func (w *Workfield) appendInflineLocked(l *InfiniteLine) (*InfiniteLine, error) {
	if err := w.capacityLocked(MethodAddInfline, "inflines", len(w.inflines), 1); err != nil {
		return nil, w.fail(MethodAddInfline, err)
	}

	l.ID = len(w.inflines)
	w.inflines = append(w.inflines, l)

	var msg string
	if l.Kind == KindAngle {
		msg = fmt.Sprintf("Created infline with ID: %d through point %d at %g degrees", l.ID, l.Centre.ID, l.Angle)
	} else {
		msg = fmt.Sprintf("Created infline with ID: %d through points %d and %d", l.ID, l.Point1.ID, l.Point2.ID)
	}
	w.emit(MethodAddInfline, msg, "id", l.ID, "kind", l.Kind.String())

	return l, nil
}
