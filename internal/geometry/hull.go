package geometry

import "sort"

// ConvexHull returns the convex hull of points as a clockwise,
// explicitly-closed contour, via Andrew's monotone chain
// construction. Collinear points on an edge of the hull are dropped.
func ConvexHull(points []Point) Contour {
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	pts = dedupSorted(pts)

	n := len(pts)
	if n < 3 {
		return closeRing(pts)
	}

	hull := make([]Point, 0, 2*n)

	// Lower chain.
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper chain.
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	hull = hull[:len(hull)-1]
	// Andrew's monotone chain yields a counter-clockwise hull; the
	// polygon convention here is clockwise outer contours.
	for i, j := 0, len(hull)-1; i < j; i, j = i+1, j-1 {
		hull[i], hull[j] = hull[j], hull[i]
	}
	return closeRing(hull)
}

func cross(o, a, b Point) int64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func dedupSorted(pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func closeRing(pts []Point) Contour {
	if len(pts) == 0 {
		return nil
	}
	out := make(Contour, len(pts), len(pts)+1)
	copy(out, pts)
	if out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}
	return out
}

// ConvexHullOf returns the convex hull of the union of an outer
// contour's vertices with every hole's vertices, used by the placer
// when approximating a concave part with its convex envelope.
func ConvexHullOf(p Polygon) Contour {
	total := len(p.Contour)
	for _, h := range p.Holes {
		total += len(h)
	}
	pts := make([]Point, 0, total)
	pts = append(pts, p.Contour...)
	for _, h := range p.Holes {
		pts = append(pts, h...)
	}
	return ConvexHull(pts)
}
