// Package nfp builds the no-fit polygon for a pair of polygons - the
// locus of positions the orbiting polygon's reference vertex can
// occupy while staying edge-touching with the stationary polygon
// without overlap - and merges per-item NFPs for a pile into the
// combined feasible-placement boundary the placer searches.
package nfp

import (
	"context"
	"math"
	"sort"

	"github.com/MeKo-Christian/nest2d/internal/geometry"
	"github.com/MeKo-Christian/nest2d/internal/parallel"
)

// Level declares the complexity guarantee the caller makes about its
// two input polygons, so the kernel can pick the cheapest construction
// that is still correct for that guarantee.
type Level int

const (
	// ConvexOnly: both polygons strictly convex, no holes. Gets the
	// exact closed-form construction.
	ConvexOnly Level = iota
	// OneConvex: one polygon convex, the other simple.
	OneConvex
	// BothConcave: both simple, no holes.
	BothConcave
	// WithHoles: as BothConcave, plus hole interiors permitted.
	WithHoles
)

// Result is a constructed NFP: the polygon itself plus its reference
// vertex, the point that must coincide with the orbiter's own
// reference vertex when the two source polygons are in the
// rightmost-top touching configuration.
type Result struct {
	Polygon   geometry.Polygon
	Reference geometry.Point
}

// Build constructs the NFP of orbiter sliding around stationary, at
// the declared complexity level, and positions it per the reference-
// vertex correction rule. stationaryRef and orbiterLeftBottom /
// orbiterRightTop are the stationary item's rightmost-top vertex and
// the orbiter's leftmost-bottom / rightmost-top vertices in their
// current poses, needed for the positioning correction.
//
// Only ConvexOnly has an exact construction; the other levels fall
// back to the convex NFP of each polygon's convex hull, trading
// tightness against the pile for a single, always-correct code path.
func Build(level Level, stationary, orbiter geometry.Polygon, stationaryRef, orbiterLeftBottom, orbiterRightTop geometry.Point) (Result, error) {
	s := stationary
	o := orbiter
	if level != ConvexOnly {
		s = geometry.Polygon{Contour: geometry.ConvexHullOf(stationary)}
		o = geometry.Polygon{Contour: geometry.ConvexHullOf(orbiter)}
	}

	poly, ref, err := convexNFP(s, o)
	if err != nil {
		return Result{}, err
	}

	// Correcting translation: (rightmost_top(S) - leftmost_bottom(O)) + rightmost_top(O) - nfp_reference_vertex.
	delta := stationaryRef.Sub(orbiterLeftBottom).Add(orbiterRightTop).Sub(ref)
	poly = poly.Translate(delta.X, delta.Y)
	ref = ref.Add(delta)

	return Result{Polygon: poly, Reference: ref}, nil
}

// convexNFP constructs the no-fit polygon of two convex polygons with
// no holes via edge-angle merging: reverse-orient the orbiter, pool
// both edge sets, sort by descending angle to the +x axis, and walk
// them head-to-tail starting from the first edge's endpoints. The
// result is convex by construction and wound clockwise; its reference
// vertex is the element-wise (y, then x) maximum over its vertices.
func convexNFP(stationary, orbiter geometry.Polygon) (geometry.Polygon, geometry.Point, error) {
	sRing := openRing(stationary.Contour)
	oRing := openRing(orbiter.Contour)
	if len(sRing) < 3 || len(oRing) < 3 {
		return geometry.Polygon{}, geometry.Point{}, geometry.NewGeomErr(geometry.ErrNFP, "degenerate input: stationary has %d vertices, orbiter has %d", len(sRing), len(oRing))
	}

	reversedOrbiter := reverseRing(oRing)

	type edge struct {
		dx, dy Unit
		angle  float64
	}
	edges := make([]edge, 0, len(sRing)+len(reversedOrbiter))
	collect := func(ring []geometry.Point) {
		n := len(ring)
		for i := 0; i < n; i++ {
			a := ring[i]
			b := ring[(i+1)%n]
			dx, dy := b.X-a.X, b.Y-a.Y
			if dx == 0 && dy == 0 {
				continue
			}
			edges = append(edges, edge{dx: dx, dy: dy, angle: math.Atan2(float64(dy), float64(dx))})
		}
	}
	collect(sRing)
	collect(reversedOrbiter)

	if len(edges) == 0 {
		return geometry.Polygon{}, geometry.Point{}, geometry.NewGeomErr(geometry.ErrNFP, "both inputs are zero-area")
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].angle > edges[j].angle
	})

	start := geometry.Point{}
	verts := make(geometry.Contour, 0, len(edges)+1)
	verts = append(verts, start)
	cur := start
	for _, e := range edges {
		cur = geometry.Point{X: cur.X + e.dx, Y: cur.Y + e.dy}
		verts = append(verts, cur)
	}
	verts = append(verts, start) // explicit closure

	ref := verts[0]
	for _, p := range verts[1:] {
		if p.Y > ref.Y || (p.Y == ref.Y && p.X > ref.X) {
			ref = p
		}
	}

	poly := geometry.Polygon{Contour: verts}
	if !poly.Contour.IsClockwise() {
		poly.Contour = poly.Contour.Reversed()
	}
	return poly, ref, nil
}

// Unit is a local alias so convexNFP reads naturally; it is the same
// type as geometry.Unit.
type Unit = geometry.Unit

func openRing(c geometry.Contour) geometry.Contour {
	if len(c) > 1 && c[0] == c[len(c)-1] {
		return c[:len(c)-1]
	}
	return c
}

func reverseRing(c geometry.Contour) geometry.Contour {
	n := len(c)
	out := make(geometry.Contour, n)
	for i, p := range c {
		out[n-1-i] = p
	}
	return out
}

// PileRequest is one (stationary item polygon, its rightmost-top
// vertex) pair to build an NFP against a single common orbiter.
type PileRequest struct {
	Stationary    geometry.Polygon
	StationaryRef geometry.Point
}

// BuildPile computes the NFP of each item in the pile against the
// candidate orbiter, possibly in parallel, then merges them through
// the geometry provider's union into the combined feasible-position
// boundary. Per-item construction failures are surfaced as the first
// error encountered; the per-item Build calls do not observe ctx, so
// under the Async policy they all run to completion.
func BuildPile(ctx context.Context, provider geometry.Provider, level Level, pile []PileRequest, orbiter geometry.Polygon, orbiterLeftBottom, orbiterRightTop geometry.Point, policy parallel.Policy) (geometry.MultiPolygon, error) {
	if len(pile) == 0 {
		return nil, nil
	}

	results := make([]Result, len(pile))
	err := parallel.ForEachIndexed(ctx, len(pile), policy, func(_ context.Context, i int) error {
		r, err := Build(level, pile[i].Stationary, orbiter, pile[i].StationaryRef, orbiterLeftBottom, orbiterRightTop)
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	polys := make([]geometry.Polygon, len(results))
	for i, r := range results {
		polys[i] = r.Polygon
	}
	merged, err := provider.Merge(polys)
	if err != nil {
		return nil, geometry.NewGeomErr(geometry.ErrMerge, "%v", err)
	}
	return merged, nil
}
