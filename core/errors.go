// SPDX-License-Identifier: MIT
// Package: geometrix/core
//
// errors.go - sentinel errors for Workfield operations.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Operations attach context with %w through wfErrorf, never by
//     building new sentinels.
//   • Operations MUST NOT panic; panics are confined to option constructors.
//   • Every operation validates before it mutates, so a returned error
//     always means the Workfield is unchanged.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a referenced point or shape ID is out of range.
	ErrNotFound = errors.New("core: id not found")

	// ErrDuplicateEdge indicates a triangle or quadrilateral would reuse an
	// already connected point pair (triangle) or an already connected point
	// (quadrilateral).
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrInvalidKind indicates an unrecognized infline or auto-triangle selector.
	ErrInvalidKind = errors.New("core: invalid kind selector")

	// ErrCapacityExceeded indicates a collection reached the configured
	// WithMaxEntities limit.
	ErrCapacityExceeded = errors.New("core: capacity exceeded")

	// ErrNegativeCoordinate indicates a point with a negative coordinate was
	// requested while WithNonNegativeCoordinates is active.
	ErrNegativeCoordinate = errors.New("core: negative coordinate")

	// ErrBadArguments indicates a selector-dispatched call (AddInfline,
	// AutoTriangle) received the wrong number of arguments or a non-integral ID.
	ErrBadArguments = errors.New("core: bad arguments")
)

// Method tokens used as error and event context.
const (
	MethodAddPoint              = "AddPoint"
	MethodAddPointAngleDistance = "AddPointAngleDistance"
	MethodAddSegment            = "AddSegment"
	MethodAddTriangle           = "AddTriangle"
	MethodAddQuadrilateral      = "AddQuadrilateral"
	MethodAddCircle             = "AddCircle"
	MethodAddInfline            = "AddInfline"
	MethodAutoTriangle          = "AutoTriangle"
	MethodLookup                = "Lookup"
)

// wfErrorf prefixes a formatted message with the method token.
// The format should carry a %w verb so the sentinel survives errors.Is.
func wfErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
