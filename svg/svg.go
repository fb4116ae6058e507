// Package svg renders a packed nest2d.PackGroup to SVG, one document
// per bin, for visual inspection. The format is not part of the core
// packing contract; this writer is a thin, optional consumer of the
// public nest2d API, the same relationship agg2d's demo apps have to
// the rendering core.
package svg

import (
	"fmt"
	"io"

	"github.com/MeKo-Christian/nest2d/internal/bin"
	"github.com/MeKo-Christian/nest2d/internal/geometry"
)

// unitsPerMM is the number of internal units in one millimetre.
// WriteBin's scale then converts millimetres to SVG user units; 1.0
// means 1 user unit per mm.
const unitsPerMM = 1_000_000.0

// Shaped is anything whose placed outline can be drawn: exactly the
// surface nest2d.Item exposes, named locally so this package never
// needs to import the root module (which itself imports internal/bin).
type Shaped interface {
	TransformedShape() geometry.Polygon
}

// WriteBin writes one bin's outline and its placed items' transformed
// shapes as an SVG document to w.
func WriteBin(w io.Writer, b bin.Bin, items []Shaped, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	box := b.BoundingBox()
	width := toMM(box.Width()) * scale
	height := toMM(box.Height()) * scale

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.3f\" height=\"%.3f\" viewBox=\"0 0 %.3f %.3f\">\n",
		width, height, width, height); err != nil {
		return err
	}

	if err := writePolygon(w, b.Polygon(), box, scale, "none", "black"); err != nil {
		return err
	}

	for _, it := range items {
		shape := it.TransformedShape()
		if err := writePolygon(w, shape, box, scale, "lightgray", "black"); err != nil {
			return err
		}
		for _, hole := range shape.Holes {
			if err := writeRing(w, hole, box, scale, "white", "black"); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "</svg>")
	return err
}

func writePolygon(w io.Writer, p geometry.Polygon, box geometry.Box, scale float64, fill, stroke string) error {
	return writeRing(w, p.Contour, box, scale, fill, stroke)
}

func writeRing(w io.Writer, c geometry.Contour, box geometry.Box, scale float64, fill, stroke string) error {
	if len(c) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "  <polygon fill=\"%s\" stroke=\"%s\" stroke-width=\"0.2\" points=\"", fill, stroke); err != nil {
		return err
	}
	for i, p := range c {
		x := (toMM(p.X) - toMM(box.MinX)) * scale
		// SVG's Y axis points down; the nesting unit system's points up,
		// so flip against the bin's height.
		y := (toMM(box.MaxY) - toMM(p.Y)) * scale
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%.3f,%.3f", sep, x, y); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "\" />")
	return err
}

func toMM(u geometry.Unit) float64 {
	return float64(u) / unitsPerMM
}
