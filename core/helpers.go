// File: helpers.go
// Role: Lock-held helpers shared by the mutating methods: ID resolution,
// capacity and coordinate policy checks, event emission.
//
// Every helper whose name ends in Locked expects w.mu to be held by the caller.

package core

import (
	"fmt"
	"math"
)

// pointLocked resolves a point ID. role names the argument in the error
// ("p1", "centre", ...) so callers can tell which ID was bad.
func (w *Workfield) pointLocked(method, role string, id int) (*Point, error) {
	if id < 0 || id >= len(w.points) {
		return nil, wfErrorf(method, "%s point %d (have %d): %w", role, id, len(w.points), ErrNotFound)
	}
	return w.points[id], nil
}

// capacityLocked checks that adding n entries to a collection currently
// holding have entries stays within WithMaxEntities.
func (w *Workfield) capacityLocked(method, collection string, have, n int) error {
	if w.cfg.maxEntities == 0 || have+n <= w.cfg.maxEntities {
		return nil
	}
	return wfErrorf(method, "%s: %d + %d exceeds %d: %w",
		collection, have, n, w.cfg.maxEntities, ErrCapacityExceeded)
}

// coordsAllowed applies WithNonNegativeCoordinates.
func (w *Workfield) coordsAllowed(method string, x, y float64) error {
	if w.cfg.nonNegative && (x < 0 || y < 0) {
		return wfErrorf(method, "(%g, %g): %w", x, y, ErrNegativeCoordinate)
	}
	return nil
}

// newPointLocked appends a point. Policy checks happen before this call.
func (w *Workfield) newPointLocked(x, y float64) *Point {
	p := &Point{X: x, Y: y, ID: len(w.points)}
	w.points = append(w.points, p)
	return p
}

// linkLocked connects a and b both ways and appends the segment between them.
func (w *Workfield) linkLocked(a, b *Point) *Segment {
	a.connect(b)
	b.connect(a)
	s := &Segment{Point1: a, Point2: b, ID: len(w.segments)}
	w.segments = append(w.segments, s)
	return s
}

// emit sends msg to the event sink and mirrors it to the diagnostic logger.
func (w *Workfield) emit(method, msg string, args ...any) {
	w.cfg.sink.Log(msg)
	w.cfg.logger.Debug(msg, append([]any{"scene", w.id.String(), "op", method}, args...)...)
}

// fail reports a rejected operation and returns err unchanged.
// It reads only immutable config, so it is safe with or without w.mu held.
func (w *Workfield) fail(method string, err error) error {
	w.cfg.sink.Log(fmt.Sprintf("Failed %s: %v", method, err))
	w.cfg.logger.Debug("operation rejected", "scene", w.id.String(), "op", method, "err", err)
	return err
}

// argID converts a dispatcher argument to a point ID.
// Fractional, NaN and infinite values are ErrBadArguments. Every integral
// value passes through and fails the later lookup with ErrNotFound when out
// of range; values beyond the int range saturate to math.MaxInt/math.MinInt.
func argID(method string, pos int, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, wfErrorf(method, "argument %d (%g) is not an id: %w", pos, v, ErrBadArguments)
	}
	switch {
	case v >= float64(math.MaxInt):
		return math.MaxInt, nil
	case v <= float64(math.MinInt):
		return math.MinInt, nil
	}
	return int(v), nil
}

// repeatedID returns the first ID that occurs more than once in ids.
func repeatedID(ids []int) (int, bool) {
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				return ids[i], true
			}
		}
	}
	return 0, false
}
