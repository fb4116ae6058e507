// Package nest2d packs a set of simple polygons, optionally with
// holes, into one or more bins - rectangles, circles, or arbitrary
// polygons - by repeated no-fit-polygon placement. It exposes the
// nesting engine's core contract: construct items, choose a bin and a
// selection strategy, and call Nest to get back an ordered PackGroup.
//
// The geometric kernel, NFP construction, edge-parameterized local
// search, and the packing-order heuristics all live under internal/;
// this package is the thin public surface wiring them together.
package nest2d
