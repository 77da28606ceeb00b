// Package geometrix is an in-memory toolkit for building 2D geometry scenes:
// points, the segments connecting them, circles and infinite lines, plus
// derived queries such as area, circumference, length and angle.
//
// What is in the box?
//
//	core/     - Workfield: the registry that owns every entity, assigns IDs,
//	            keeps connectivity symmetric and rejects duplicate edges
//	eventlog/ - EventSink implementations: append-only text file, slog, in-memory
//	examples/ - a runnable tour (go run examples/workfield_tour.go)
//
// Quick ASCII example:
//
//	1───2
//	│   │
//	0───3
//
//	w := core.NewWorkfield()
//	w.AddPoint(0, 0); w.AddPoint(0, 1); w.AddPoint(1, 1); w.AddPoint(1, 0)
//	w.AddQuadrilateral(0, 1, 2, 3) // segments 0-1, 1-2, 2-3, 3-0
//
// There is no persistence, rendering, constraint solving or spatial indexing.
//
//	go get github.com/katalvlaran/geometrix
package geometrix
