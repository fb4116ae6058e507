package geometry

import "math"

// Offset grows (distance > 0) p's outer contour by distance, pushing
// every edge along its outward normal and repairing the
// self-intersections a naive per-edge push introduces by re-unioning
// the pushed edges through Merge. There is no true mitred/rounded-join
// offset curve construction here, just edge translation plus a union
// pass to fix up the result. Because the result is a union with the
// original ring, a negative distance does not shrink the contour: the
// pushed edges then lie inside the ring and the outline is unchanged.
//
// A ring with fewer than four coordinates (three vertices plus the
// closing vertex) cannot be offset and yields GeomErr{Kind: ErrOffset}.
func Offset(p Polygon, distance Unit) (Polygon, error) {
	if distance == 0 {
		return p, nil
	}
	if len(p.Contour) < 4 {
		return Polygon{}, NewGeomErr(ErrOffset, "outer contour has %d coordinates, need at least 4", len(p.Contour))
	}

	outerPieces := offsetRingPieces(p.Contour, distance, false)
	merged, err := Merge(outerPieces)
	if err != nil {
		return Polygon{}, NewGeomErr(ErrOffset, "%v", err)
	}
	if len(merged) == 0 {
		return Polygon{}, NewGeomErr(ErrOffset, "offset collapsed the outer contour")
	}
	out := mergedToSinglePolygon(merged)

	for i, h := range p.Holes {
		if len(h) < 4 {
			return Polygon{}, NewGeomErr(ErrOffset, "hole %d has %d coordinates, need at least 4", i, len(h))
		}
		holePieces := offsetRingPieces(h, -distance, true)
		mergedHole, err := Merge(holePieces)
		if err != nil {
			return Polygon{}, NewGeomErr(ErrOffset, "hole %d: %v", i, err)
		}
		if len(mergedHole) == 0 {
			continue
		}
		out.Holes = append(out.Holes, mergedToSinglePolygon(mergedHole).Contour)
	}
	return out, nil
}

// offsetRingPieces builds one quad per edge of ring, each edge pushed
// outward by distance, so that Merge's union recovers the offset
// ring's outline.
func offsetRingPieces(ring Contour, distance Unit, hole bool) []Polygon {
	r := ring
	if len(r) > 1 && r[0] == r[len(r)-1] {
		r = r[:len(r)-1]
	}
	n := len(r)
	pieces := make([]Polygon, 0, n+1)
	pieces = append(pieces, Polygon{Contour: append(Contour{}, ring...)})

	for i := 0; i < n; i++ {
		a := r[i]
		b := r[(i+1)%n]
		ex, ey := float64(b.X-a.X), float64(b.Y-a.Y)
		length := math.Hypot(ex, ey)
		if length == 0 {
			continue
		}
		// The right-hand normal (ey, -ex) points away from the interior
		// of a counter-clockwise ring; it is negated for a clockwise
		// outer ring and for a counter-clockwise hole, so outer edges
		// move away from the material and hole edges move into it.
		nx, ny := ey/length, -ex/length
		if r.IsClockwise() != hole {
			nx, ny = -nx, -ny
		}
		dx := Unit(math.Round(nx * float64(distance)))
		dy := Unit(math.Round(ny * float64(distance)))

		quad := Contour{
			a,
			b,
			{X: b.X + dx, Y: b.Y + dy},
			{X: a.X + dx, Y: a.Y + dy},
			a,
		}
		if quad.IsClockwise() != (!hole) {
			quad = quad.Reversed()
		}
		pieces = append(pieces, Polygon{Contour: quad})
	}
	return pieces
}

// mergedToSinglePolygon takes the largest-area outer piece of a merge
// result, on the assumption the union of a ring with its own
// outward-pushed edges always yields one dominant outline plus
// negligible slivers.
func mergedToSinglePolygon(mp MultiPolygon) Polygon {
	best := 0
	bestArea := mp[0].Area()
	for i := 1; i < len(mp); i++ {
		if a := mp[i].Area(); a > bestArea {
			best, bestArea = i, a
		}
	}
	return mp[best]
}
