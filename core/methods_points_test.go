package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geometrix/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddPoint_IDsFollowCount checks that each new point's ID equals the
// point count before the call and the count grows by exactly one.
func TestAddPoint_IDsFollowCount(t *testing.T) {
	w := core.NewWorkfield()

	coords := [][2]float64{{0, 0}, {-3.5, 2}, {1e6, -1e6}, {0.25, 0.75}}
	for _, xy := range coords {
		before := w.PointCount()
		p, err := w.AddPoint(xy[0], xy[1])
		require.NoError(t, err)

		assert.Equal(t, before, p.ID)
		assert.Equal(t, before+1, w.PointCount())
		assert.Equal(t, xy[0], p.X)
		assert.Equal(t, xy[1], p.Y)
		assert.Empty(t, p.ConnectedTo)
	}
}

// TestAddPoint_Events checks the event sink sees one message per point.
func TestAddPoint_Events(t *testing.T) {
	w, rec := newRecorded(t)

	_, err := w.AddPoint(1, 2)
	require.NoError(t, err)
	_, err = w.AddPoint(3, 4)
	require.NoError(t, err)

	assert.Equal(t, []string{"Created point with ID: 0", "Created point with ID: 1"}, rec.Messages())
}

// TestAddPoint_Policies covers the optional historic constraints.
func TestAddPoint_Policies(t *testing.T) {
	t.Run("capacity", func(t *testing.T) {
		w, rec := newRecorded(t, core.WithMaxEntities(2))
		addPoints(t, w, 2)

		_, err := w.AddPoint(5, 5)
		require.ErrorIs(t, err, core.ErrCapacityExceeded)
		assert.Equal(t, 2, w.PointCount())
		assert.Contains(t, rec.Last(), "Failed AddPoint")
	})

	t.Run("negative coordinates", func(t *testing.T) {
		w := core.NewWorkfield(core.WithNonNegativeCoordinates())

		_, err := w.AddPoint(-1, 0)
		require.ErrorIs(t, err, core.ErrNegativeCoordinate)
		_, err = w.AddPoint(0, -0.5)
		require.ErrorIs(t, err, core.ErrNegativeCoordinate)
		assert.Zero(t, w.PointCount())

		_, err = w.AddPoint(0, 0)
		require.NoError(t, err)
	})

	t.Run("historic limits", func(t *testing.T) {
		w := core.NewWorkfield(core.WithHistoricLimits())
		st := w.Stats()
		assert.Equal(t, core.HistoricMaxEntities, st.MaxEntities)
		assert.True(t, st.NonNegative)

		_, err := w.AddPoint(-1, -1)
		require.ErrorIs(t, err, core.ErrNegativeCoordinate)
	})

	t.Run("defaults accept negatives", func(t *testing.T) {
		w := core.NewWorkfield()
		p, err := w.AddPoint(-10, -20)
		require.NoError(t, err)
		assert.Equal(t, 0, p.ID)
	})
}

func TestAddPointAngleDistance(t *testing.T) {
	cases := []struct {
		name         string
		angle, dist  float64
		wantX, wantY float64
	}{
		{"straight up", 0, 5, 0, 5},
		{"right", 90, 2, 2, 0},
		{"down", 180, 3, 0, -3},
		{"left", 270, 1, -1, 0},
		{"diagonal", 45, math.Sqrt2, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := core.NewWorkfield()
			anchor, err := w.AddPoint(0, 0)
			require.NoError(t, err)

			p, err := w.AddPointAngleDistance(anchor.ID, tc.angle, tc.dist)
			require.NoError(t, err)

			assert.Equal(t, 1, p.ID)
			assert.InDelta(t, tc.wantX, p.X, Eps)
			assert.InDelta(t, tc.wantY, p.Y, Eps)
			assert.Empty(t, anchor.ConnectedTo, "anchor must stay unconnected")
			assert.Empty(t, p.ConnectedTo)
		})
	}
}

func TestAddPointAngleDistance_OffsetsFromAnchor(t *testing.T) {
	w := core.NewWorkfield()
	_, err := w.AddPoint(10, 20)
	require.NoError(t, err)

	p, err := w.AddPointAngleDistance(0, 0, 5)
	require.NoError(t, err)
	assert.InDelta(t, 10, p.X, Eps)
	assert.InDelta(t, 25, p.Y, Eps)
}

func TestAddPointAngleDistance_Errors(t *testing.T) {
	w := core.NewWorkfield(core.WithNonNegativeCoordinates())

	_, err := w.AddPointAngleDistance(0, 0, 1)
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = w.AddPoint(0, 0)
	require.NoError(t, err)

	_, err = w.AddPointAngleDistance(0, 180, 1)
	require.ErrorIs(t, err, core.ErrNegativeCoordinate)
	assert.Equal(t, 1, w.PointCount())

	_, err = w.AddPointAngleDistance(-1, 0, 1)
	require.ErrorIs(t, err, core.ErrNotFound)
}
