// Package core provides the Workfield: an in-memory registry of 2D points and
// the shapes built on them (segments, circles, infinite lines).
//
// The Workfield is the only place where entities are created. It assigns IDs,
// keeps point connectivity symmetric and rejects shapes that would reuse an
// existing edge.
//
// Identity:
//
//   - Every collection is append-only and an entity's ID is its index at
//     insertion time (0-based, dense, never reused).
//   - Point(id), Segment(id), Circle(id), Infline(id) resolve IDs back to
//     entities; out-of-range IDs give ErrNotFound.
//
// Connectivity:
//
//   - AddSegment, AddTriangle, AddQuadrilateral and AutoTriangle connect
//     endpoints both ways in Point.ConnectedTo. Repeated connections are kept.
//   - AddPointAngleDistance, AddCircle and infinite lines never connect points.
//
// Builders:
//
//	AddPoint(x, y)                          // new point
//	AddPointAngleDistance(anchor, deg, d)   // new point by polar offset
//	AddSegment(p1, p2)                      // 1 segment
//	AddTriangle(p1, p2, p3)                 // 3 segments: 1-2, 2-3, 1-3
//	AddQuadrilateral(p1, p2, p3, p4)        // 4 segments: 1-2, 2-3, 3-4, 4-1
//	AddCircle(centre, r)
//	AddAngleInfline(centre, deg) / AddTwoPointInfline(p1, p2) / AddInfline(sel, ...)
//	AutoIsosceles / AutoEquilateral / AutoRightAngled / AutoTriangle(sel, ...)
//
// Configuration (Option):
//
//	WithMaxEntities(n)            per-collection cap → ErrCapacityExceeded
//	WithNonNegativeCoordinates()  → ErrNegativeCoordinate
//	WithHistoricLimits()          both of the above, n = 1000
//	WithLegacyIsoscelesDegrees()  original degrees-in-cos base formula
//	WithEventSink(s)              one message per event (see package eventlog)
//	WithLogger(l)                 slog diagnostics, disabled by default
//	WithSceneID(id)               fixed scene UUID
//
// Errors:
//
//	ErrNotFound, ErrDuplicateEdge, ErrInvalidKind, ErrCapacityExceeded,
//	ErrNegativeCoordinate, ErrBadArguments
//
// Every operation validates before it mutates: on error the Workfield is
// exactly as it was.
//
// Concurrency: one sync.RWMutex guards the whole Workfield.
package core
