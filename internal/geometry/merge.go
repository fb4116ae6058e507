package geometry

import "github.com/MeKo-Christian/nest2d/internal/geometry/clip"

// Merge unions a pile of polygons into their combined outline,
// reducing overlaps to a single boundary and preserving holes that
// survive the union. It folds the pile pairwise through the clip
// package's scanline union rather than attempting an N-way clip in
// one pass, the same incremental strategy the NFP pile-merge
// (internal/nfp) uses for the same operation.
func Merge(polys []Polygon) (MultiPolygon, error) {
	if len(polys) == 0 {
		return nil, nil
	}

	acc, err := toClip(polys[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(polys); i++ {
		next, err := toClip(polys[i])
		if err != nil {
			return nil, err
		}
		merged, err := clip.Union(acc, next)
		if err != nil {
			return nil, NewGeomErr(ErrMerge, "%v", err)
		}
		acc = merged
	}
	return fromClip(acc), nil
}

func toClip(p Polygon) (clip.Polygon, error) {
	if err := p.Validate(); err != nil {
		return clip.Polygon{}, err
	}
	out := clip.Polygon{
		Contours: make([]clip.Contour, 0, 1+len(p.Holes)),
		Hole:     make([]bool, 0, 1+len(p.Holes)),
	}
	out.Contours = append(out.Contours, toClipContour(p.Contour))
	out.Hole = append(out.Hole, false)
	for _, h := range p.Holes {
		out.Contours = append(out.Contours, toClipContour(h))
		out.Hole = append(out.Hole, true)
	}
	return out, nil
}

func toClipContour(c Contour) clip.Contour {
	ring := c
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	out := make(clip.Contour, len(ring))
	for i, p := range ring {
		out[i] = [2]float64{float64(p.X), float64(p.Y)}
	}
	return out
}

func fromClip(p clip.Polygon) MultiPolygon {
	// A clip.Polygon interleaves outer contours and their holes in
	// one flat list; regroup each hole with the outer contour whose
	// bounding box contains it.
	var outers []Polygon
	var outerIdx []int
	for i, isHole := range p.Hole {
		if !isHole {
			outers = append(outers, Polygon{Contour: fromClipContour(p.Contours[i])})
			outerIdx = append(outerIdx, i)
		}
	}
	for i, isHole := range p.Hole {
		if !isHole {
			continue
		}
		hole := fromClipContour(p.Contours[i])
		owner := nearestOuter(outers, hole)
		if owner >= 0 {
			outers[owner].Holes = append(outers[owner].Holes, hole)
		}
	}
	_ = outerIdx
	return MultiPolygon(outers)
}

func fromClipContour(c clip.Contour) Contour {
	out := make(Contour, 0, len(c)+1)
	for _, v := range c {
		out = append(out, Point{X: Unit(v[0]), Y: Unit(v[1])})
	}
	if len(out) > 0 && out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}
	return out
}

func nearestOuter(outers []Polygon, hole Contour) int {
	if len(outers) == 0 || len(hole) == 0 {
		return -1
	}
	c := hole.BoundingBox().Center()
	for i, o := range outers {
		if o.Contour.BoundingBox().Contains(c) {
			return i
		}
	}
	return 0
}

// Contains reports whether point q lies within the closed box b.
func (b Box) Contains(q Point) bool {
	return q.X >= b.MinX && q.X <= b.MaxX && q.Y >= b.MinY && q.Y <= b.MaxY
}
