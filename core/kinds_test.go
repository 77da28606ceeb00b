package core_test

import (
	"testing"

	"github.com/katalvlaran/geometrix/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInflineKind(t *testing.T) {
	ok := map[any]core.InflineKind{
		0:            core.KindAngle,
		"0":          core.KindAngle,
		"angle":      core.KindAngle,
		int32(1):     core.KindTwoPoint,
		"1":          core.KindTwoPoint,
		"points":     core.KindTwoPoint,
		"two points": core.KindTwoPoint,
		float32(1):   core.KindTwoPoint,
	}
	for sel, want := range ok {
		got, err := core.ParseInflineKind(sel)
		require.NoError(t, err, "selector %#v", sel)
		assert.Equal(t, want, got, "selector %#v", sel)
	}

	invalid := []any{
		"two  points", "point", "2", 2, true, struct{}{},
		"ANGLE", " angle ", "Angle", "Two Points", "\tpoints", "TWO POINTS",
	}
	for _, sel := range invalid {
		_, err := core.ParseInflineKind(sel)
		assert.ErrorIs(t, err, core.ErrInvalidKind, "selector %#v", sel)
	}
}

func TestParseTriangleKind(t *testing.T) {
	ok := map[any]core.TriangleKind{
		0:              core.TriangleIsosceles,
		"isosceles":    core.TriangleIsosceles,
		uint(1):        core.TriangleEquilateral,
		"equilateral":  core.TriangleEquilateral,
		2.0:            core.TriangleRightAngled,
		"2":            core.TriangleRightAngled,
		"right-angled": core.TriangleRightAngled,
	}
	for sel, want := range ok {
		got, err := core.ParseTriangleKind(sel)
		require.NoError(t, err, "selector %#v", sel)
		assert.Equal(t, want, got, "selector %#v", sel)
	}

	for _, sel := range []any{
		"right angled", "scalene", 3, -1, 0.5,
		"ISOSCELES", "Equilateral", "Right-Angled", "isosceles ", "\n2",
	} {
		_, err := core.ParseTriangleKind(sel)
		assert.ErrorIs(t, err, core.ErrInvalidKind, "selector %#v", sel)
	}
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "angle", core.KindAngle.String())
	assert.Equal(t, "two points", core.KindTwoPoint.String())
	assert.Equal(t, "InflineKind(7)", core.InflineKind(7).String())

	assert.Equal(t, "isosceles", core.TriangleIsosceles.String())
	assert.Equal(t, "equilateral", core.TriangleEquilateral.String())
	assert.Equal(t, "right-angled", core.TriangleRightAngled.String())
	assert.Equal(t, "TriangleKind(9)", core.TriangleKind(9).String())

	// Canonical spellings parse back to themselves.
	for _, k := range []core.TriangleKind{core.TriangleIsosceles, core.TriangleEquilateral, core.TriangleRightAngled} {
		got, err := core.ParseTriangleKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}
