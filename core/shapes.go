package core

import "math"

// Distance returns the Euclidean distance between p and q.
func (p *Point) Distance(q *Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// IsConnectedTo reports whether q appears in p.ConnectedTo.
// It reads p.ConnectedTo without locking; use Workfield.IsConnected when the
// scene may be mutated concurrently.
func (p *Point) IsConnectedTo(q *Point) bool {
	for _, c := range p.ConnectedTo {
		if c == q {
			return true
		}
	}
	return false
}

// connect appends q to p's connection list. Only the Workfield calls it,
// always in pairs so the relation stays symmetric.
func (p *Point) connect(q *Point) {
	p.ConnectedTo = append(p.ConnectedTo, q)
}

// Length returns the distance between the segment endpoints.
func (s *Segment) Length() float64 {
	return s.Point1.Distance(s.Point2)
}

// joins reports whether the segment connects point IDs a and b in either order.
func (s *Segment) joins(a, b int) bool {
	p, q := s.Point1.ID, s.Point2.ID
	return (p == a && q == b) || (p == b && q == a)
}

// touches reports whether id is one of the segment endpoints.
func (s *Segment) touches(id int) bool {
	return s.Point1.ID == id || s.Point2.ID == id
}

// Area returns π·r².
func (c *Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns 2π·r.
func (c *Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// GetAngle returns the line's angle from vertical, clockwise, in degrees.
//
// KindAngle returns the stored Angle. KindTwoPoint computes
// degrees(asin(dx / hypot(dx, dy))) from Point1 to Point2, so the result lies
// in [-90, 90]. Coincident points give NaN.
func (l *InfiniteLine) GetAngle() float64 {
	if l.Kind == KindAngle {
		return l.Angle
	}
	dx := l.Point2.X - l.Point1.X
	dy := l.Point2.Y - l.Point1.Y
	h := math.Hypot(dx, dy)
	if h == 0 {
		return math.NaN()
	}

	return degrees(math.Asin(dx / h))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
