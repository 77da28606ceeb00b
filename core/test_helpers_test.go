// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the Workfield tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/geometrix/core"
	"github.com/katalvlaran/geometrix/eventlog"
	"github.com/stretchr/testify/require"
)

// Tolerance for float comparisons.
const Eps = 1e-9

// Point IDs of the unit square built by newUnitSquare.
const (
	SqBottomLeft  = 0 // (0,0)
	SqTopLeft     = 1 // (0,1)
	SqTopRight    = 2 // (1,1)
	SqBottomRight = 3 // (1,0)

	MissingID = 99
)

// newRecorded returns a Workfield wired to an in-memory event recorder.
func newRecorded(t *testing.T, opts ...core.Option) (*core.Workfield, *eventlog.Recorder) {
	t.Helper()
	rec := &eventlog.Recorder{}
	w := core.NewWorkfield(append([]core.Option{core.WithEventSink(rec)}, opts...)...)

	return w, rec
}

// newUnitSquare adds the four corners of the unit square, no segments.
func newUnitSquare(t *testing.T, opts ...core.Option) *core.Workfield {
	t.Helper()
	w := core.NewWorkfield(opts...)
	for _, xy := range [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}} {
		_, err := w.AddPoint(xy[0], xy[1])
		require.NoError(t, err)
	}

	return w
}

// addPoints appends n points on the x axis at x = 0..n-1.
func addPoints(t *testing.T, w *core.Workfield, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := w.AddPoint(float64(i), 0)
		require.NoError(t, err)
	}
}

// connectedIDs returns the IDs in p.ConnectedTo, in order.
func connectedIDs(p *core.Point) []int {
	out := make([]int, len(p.ConnectedTo))
	for i, q := range p.ConnectedTo {
		out[i] = q.ID
	}
	return out
}

// endpoints returns the endpoint IDs of s.
func endpoints(s *core.Segment) [2]int {
	return [2]int{s.Point1.ID, s.Point2.ID}
}
