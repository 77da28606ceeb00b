// SPDX-License-Identifier: MIT
// Package: geometrix/core
//
// options.go - functional options and deterministic defaults for Workfield.
//
// Contract:
//   • Options are functional (type Option func(*config)), applied in order,
//     last wins.
//   • Option constructors panic on meaningless input; operations never do.
//   • Defaults: no caps, no coordinate policy, radian-correct isosceles
//     formula, nop EventSink, nop slog logger, random scene UUID.

package core

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// HistoricMaxEntities is the per-collection cap used by early Geometrix
// releases. WithHistoricLimits applies it.
const HistoricMaxEntities = 1000

// Option customizes a Workfield before construction.
type Option func(*config)

// config holds every Workfield knob. It is resolved once in NewWorkfield.
type config struct {
	maxEntities     int  // 0 = unlimited
	nonNegative     bool // reject negative coordinates
	legacyIsosceles bool // feed degrees straight into cos

	sink    EventSink
	logger  *slog.Logger
	sceneID uuid.UUID
}

// newConfig applies opts over the defaults and fills any nil collaborator
// back in, so Workfield methods never branch on nil.
func newConfig(opts ...Option) config {
	cfg := config{
		sink:   nopSink{},
		logger: newNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sink == nil {
		cfg.sink = nopSink{}
	}
	if cfg.logger == nil {
		cfg.logger = newNopLogger()
	}

	return cfg
}

// WithMaxEntities caps each collection (points, segments, circles, inflines)
// at n entries. Adds beyond the cap fail with ErrCapacityExceeded.
// Panics if n <= 0.
func WithMaxEntities(n int) Option {
	if n <= 0 {
		panic("core: WithMaxEntities(n<=0)")
	}
	return func(c *config) { c.maxEntities = n }
}

// WithNonNegativeCoordinates rejects any new point with x < 0 or y < 0,
// including points derived by AddPointAngleDistance and AutoTriangle.
func WithNonNegativeCoordinates() Option {
	return func(c *config) { c.nonNegative = true }
}

// WithHistoricLimits restores the constraints of early releases:
// HistoricMaxEntities per collection and non-negative coordinates.
func WithHistoricLimits() Option {
	return func(c *config) {
		c.maxEntities = HistoricMaxEntities
		c.nonNegative = true
	}
}

// WithLegacyIsoscelesDegrees makes AutoIsosceles pass the apex angle to cos
// in degrees, reproducing the original (unit-inconsistent) base length.
func WithLegacyIsoscelesDegrees() Option {
	return func(c *config) { c.legacyIsosceles = true }
}

// WithEventSink routes Workfield events to s. Panics on nil.
func WithEventSink(s EventSink) Option {
	if s == nil {
		panic("core: WithEventSink(nil)")
	}
	return func(c *config) { c.sink = s }
}

// WithLogger enables diagnostic logging. Passing nil keeps logging disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithSceneID fixes the scene identity instead of generating a random one.
func WithSceneID(id uuid.UUID) Option {
	return func(c *config) { c.sceneID = id }
}

// nopHandler discards all records. Enabled reports false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }
