// File: types.go
// Role: Entity types, the EventSink contract, Workfield and its constructor.
//
// A single sync.RWMutex (mu) guards the whole Workfield, so a scene may be
// shared across goroutines as long as callers go through Workfield methods.
// Mutations take the write lock, queries the read lock.
// Entities are handed out as pointers into the Workfield catalogs. Their
// coordinates, IDs and endpoints never change after creation and may be read
// freely. Point.ConnectedTo keeps growing under the write lock: while other
// goroutines mutate the scene, read connectivity through Workfield.IsConnected
// or Workfield.Neighbors, never through the returned Point.

package core

import (
	"sync"

	"github.com/google/uuid"
)

// Point is a 2D coordinate with a stable identity.
//
// ID equals the number of points in the owning Workfield at creation time and
// never changes. ConnectedTo lists the points this point has a segment to, in
// connection order; it only grows and keeps duplicates.
type Point struct {
	X, Y float64

	// ID is the index of this point in its Workfield.
	ID int

	// ConnectedTo is appended to by the Workfield only, under its write
	// lock. Reading it directly is unsynchronized.
	ConnectedTo []*Point
}

// Segment is a finite line between two Workfield points.
// It shares the points with the Workfield and does not own them.
type Segment struct {
	Point1 *Point
	Point2 *Point
	ID     int
}

// Circle is a centre point and a radius. The radius is not validated.
type Circle struct {
	Centre *Point
	Radius float64
	ID     int
}

// InfiniteLine is a line without endpoints.
//
// KindAngle lines use Centre and Angle (degrees, clockwise from vertical).
// KindTwoPoint lines use Point1 and Point2 for direction only; the two points
// are not connected to each other.
type InfiniteLine struct {
	Kind InflineKind
	ID   int

	Centre *Point
	Angle  float64

	Point1 *Point
	Point2 *Point
}

// EventSink receives one human-readable message per Workfield event.
// The eventlog package provides file, slog and in-memory implementations.
type EventSink interface {
	Log(message string)
}

// nopSink is the default EventSink.
type nopSink struct{}

func (nopSink) Log(string) {}

// Workfield owns every entity of one scene.
//
// All four catalogs are append-only and an entity's ID is its index in the
// catalog. There is no delete or update API.
type Workfield struct {
	mu sync.RWMutex // guards everything below

	cfg config
	id  uuid.UUID

	points   []*Point
	segments []*Segment
	circles  []*Circle
	inflines []*InfiniteLine
}

// Stats is a snapshot of catalog sizes and active policies.
type Stats struct {
	SceneID uuid.UUID

	PointCount   int
	SegmentCount int
	CircleCount  int
	InflineCount int

	// ConnectionCount sums len(ConnectedTo) over all points. Every segment
	// contributes two entries.
	ConnectionCount int

	// MaxEntities is 0 when collections are unlimited.
	MaxEntities     int
	NonNegative     bool
	LegacyIsosceles bool
}

// NewWorkfield creates an empty scene. Without options there are no entity
// caps, no coordinate validation, events are discarded and nothing is logged.
// Complexity: O(len(opts)).
func NewWorkfield(opts ...Option) *Workfield {
	cfg := newConfig(opts...)
	w := &Workfield{cfg: cfg, id: cfg.sceneID}
	if w.id == uuid.Nil {
		w.id = uuid.New()
	}
	w.cfg.logger.Debug("workfield created", "scene", w.id.String())

	return w
}
