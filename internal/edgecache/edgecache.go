// Package edgecache turns an NFP contour into a length-parameterized
// directed curve so the placer can run its 1-D local minimizer along
// it: cumulative arclength plus binary-search lookup for t in [0,1],
// narrowed to closed polygon rings instead of open vertex sequences.
package edgecache

import (
	"math"
	"sort"

	"github.com/MeKo-Christian/nest2d/internal/geometry"
)

// Cache is one contour's length-parameterized curve: the vertices,
// cumulative arclength per vertex and the total length. Corners derives
// the sampled corner parameters used as local-minimizer starting points
// from these on each call.
type Cache struct {
	points []geometry.Point
	cum    []float64 // cum[i] is the distance from points[0] to points[i]
	total  float64
}

// Build constructs a Cache over a closed contour (first vertex equal
// to last). Degenerate zero-length edges are skipped during length
// accumulation so they never introduce a division by zero in
// coords' direction computation. A contour whose total length is
// zero is not representable as a curve and raises GeomErr{Kind: ErrNFP}.
func Build(ring geometry.Contour) (*Cache, error) {
	open := ring
	if len(open) > 1 && open[0] == open[len(open)-1] {
		open = open[:len(open)-1]
	}
	if len(open) < 2 {
		return nil, geometry.NewGeomErr(geometry.ErrNFP, "contour has fewer than 2 distinct vertices")
	}

	pts := make([]geometry.Point, 0, len(open)+1)
	cum := make([]float64, 0, len(open)+1)
	total := 0.0
	pts = append(pts, open[0])
	cum = append(cum, 0)
	for i := 1; i <= len(open); i++ {
		cur := open[i%len(open)]
		prev := pts[len(pts)-1]
		d := math.Hypot(float64(cur.X-prev.X), float64(cur.Y-prev.Y))
		if d == 0 {
			continue
		}
		total += d
		pts = append(pts, cur)
		cum = append(cum, total)
	}
	if total == 0 {
		return nil, geometry.NewGeomErr(geometry.ErrNFP, "contour has zero total length")
	}
	return &Cache{points: pts, cum: cum, total: total}, nil
}

// TotalLength returns the contour's total arclength.
func (c *Cache) TotalLength() float64 { return c.total }

// Coords maps t in [0,1] to a point along the contour: t*TotalLength
// is located among the cumulative arclengths via binary search, then
// interpolated linearly within that edge.
func (c *Cache) Coords(t float64) geometry.Point {
	if t <= 0 {
		return c.points[0]
	}
	if t >= 1 {
		return c.points[len(c.points)-1]
	}
	target := t * c.total

	i := sort.Search(len(c.cum), func(k int) bool { return c.cum[k] >= target }) - 1
	if i < 0 {
		i = 0
	}
	if i >= len(c.points)-1 {
		i = len(c.points) - 2
	}
	j := i + 1

	segLen := c.cum[j] - c.cum[i]
	if segLen == 0 {
		return c.points[i]
	}
	frac := (target - c.cum[i]) / segLen

	a, b := c.points[i], c.points[j]
	x := float64(a.X) + frac*float64(b.X-a.X)
	y := float64(a.Y) + frac*float64(b.Y-a.Y)
	return geometry.Point{X: geometry.Unit(math.Round(x)), Y: geometry.Unit(math.Round(y))}
}

// Corners returns a coarse sample of parameters in [0,1], always
// including 0 and 1, used as starting points for the placer's local
// minimizer. accuracy in [0,1] controls the stride:
// S = round(N / N^(accuracy^(1/3))), so low accuracy yields few
// starts (fast) and accuracy near 1 samples near every vertex
// (thorough).
func (c *Cache) Corners(accuracy float64) []float64 {
	n := len(c.points) - 1 // distinct vertex count
	if n <= 0 {
		return []float64{0, 1}
	}
	if accuracy < 0 {
		accuracy = 0
	}
	if accuracy > 1 {
		accuracy = 1
	}

	stride := 1
	if n > 1 {
		exp := math.Pow(accuracy, 1.0/3.0)
		denom := math.Pow(float64(n), exp)
		if denom > 0 {
			s := math.Round(float64(n) / denom)
			if s >= 1 {
				stride = int(s)
			}
		}
	}

	seen := make(map[float64]bool)
	out := make([]float64, 0, n/stride+2)
	add := func(t float64) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	add(0)
	for i := 0; i < n; i += stride {
		add(c.cum[i] / c.total)
	}
	add(1)

	sort.Float64s(out)
	return out
}
