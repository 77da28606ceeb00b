// File: kinds.go
// Role: Closed selector sets for infinite lines and auto-triangles.
//
// Selectors arrive from scripts and CLIs as ints or strings ("0", "angle",
// "two points"). Every accepted spelling maps to exactly one kind; anything
// else is ErrInvalidKind. Strings must match exactly: no trimming, no case
// folding.

package core

import (
	"math"
	"strconv"
)

// InflineKind selects how an InfiniteLine is defined.
type InflineKind int

const (
	// KindAngle is a centre point plus an angle from vertical, clockwise.
	KindAngle InflineKind = iota
	// KindTwoPoint is a direction through two points.
	KindTwoPoint
)

// String returns the canonical selector spelling.
func (k InflineKind) String() string {
	switch k {
	case KindAngle:
		return "angle"
	case KindTwoPoint:
		return "two points"
	default:
		return "InflineKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// TriangleKind selects an AutoTriangle construction.
type TriangleKind int

const (
	// TriangleIsosceles takes (anchor, equal angle, equal side).
	TriangleIsosceles TriangleKind = iota
	// TriangleEquilateral takes (anchor, side).
	TriangleEquilateral
	// TriangleRightAngled takes (anchor, horizontal leg, vertical leg).
	TriangleRightAngled
)

// String returns the canonical selector spelling.
func (k TriangleKind) String() string {
	switch k {
	case TriangleIsosceles:
		return "isosceles"
	case TriangleEquilateral:
		return "equilateral"
	case TriangleRightAngled:
		return "right-angled"
	default:
		return "TriangleKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// arity is the number of numeric arguments each kind expects.
func (k TriangleKind) arity() int {
	if k == TriangleEquilateral {
		return 2
	}
	return 3
}

var inflineSelectors = map[string]InflineKind{
	"0":          KindAngle,
	"angle":      KindAngle,
	"1":          KindTwoPoint,
	"points":     KindTwoPoint,
	"two points": KindTwoPoint,
}

var triangleSelectors = map[string]TriangleKind{
	"0":            TriangleIsosceles,
	"isosceles":    TriangleIsosceles,
	"1":            TriangleEquilateral,
	"equilateral":  TriangleEquilateral,
	"2":            TriangleRightAngled,
	"right-angled": TriangleRightAngled,
}

// ParseInflineKind maps a selector to an InflineKind.
// Accepted: InflineKind values, integers 0/1 (any int/uint/float type with an
// integral value), and the strings "0", "angle", "1", "points", "two points".
func ParseInflineKind(sel any) (InflineKind, error) {
	if k, ok := sel.(InflineKind); ok {
		sel = int(k)
	}
	key, ok := selectorKey(sel)
	if ok {
		if k, found := inflineSelectors[key]; found {
			return k, nil
		}
	}

	return 0, wfErrorf(MethodAddInfline, "selector %v: %w", sel, ErrInvalidKind)
}

// ParseTriangleKind maps a selector to a TriangleKind.
// Accepted: TriangleKind values, integers 0/1/2, and the strings "0",
// "isosceles", "1", "equilateral", "2", "right-angled".
func ParseTriangleKind(sel any) (TriangleKind, error) {
	if k, ok := sel.(TriangleKind); ok {
		sel = int(k)
	}
	key, ok := selectorKey(sel)
	if ok {
		if k, found := triangleSelectors[key]; found {
			return k, nil
		}
	}

	return 0, wfErrorf(MethodAutoTriangle, "selector %v: %w", sel, ErrInvalidKind)
}

// selectorKey normalizes a selector to its lookup key.
// Integers render in decimal, integral floats likewise, strings pass through
// unchanged. Anything else reports ok=false.
func selectorKey(sel any) (string, bool) {
	switch v := sel.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return floatKey(float64(v))
	case float64:
		return floatKey(v)
	default:
		return "", false
	}
}

func floatKey(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return "", false
	}
	return strconv.FormatInt(int64(f), 10), true
}
