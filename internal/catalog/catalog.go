// Package catalog ships a small synthetic stand-in for the Prusa
// parts catalog scenario F's benchmark packs against. The retrieval
// pack's original_source/tests/ declares extern arrays of real part
// outlines but does not include the translation unit defining their
// vertex data, so this catalog is a plausible-scale substitute
// (rectangles, L-shapes, a scattering of named blanks), not the
// genuine consumer-part set.
package catalog

import (
	"math"

	"github.com/MeKo-Christian/nest2d/internal/geometry"
)

// Part is one named catalog entry: a polygon at its natural scale, in
// millimetre-denominated internal units (see geometry.Unit).
type Part struct {
	Name    string
	Polygon geometry.Polygon
}

const mm geometry.Unit = 1_000_000

func rect(w, h float64) geometry.Polygon {
	W, H := geometry.Unit(w*float64(mm)), geometry.Unit(h*float64(mm))
	return geometry.Polygon{Contour: geometry.Contour{
		{X: 0, Y: 0}, {X: 0, Y: H}, {X: W, Y: H}, {X: W, Y: 0}, {X: 0, Y: 0},
	}}
}

func lshape(w, h, notchW, notchH float64) geometry.Polygon {
	W, H := geometry.Unit(w*float64(mm)), geometry.Unit(h*float64(mm))
	NW, NH := geometry.Unit(notchW*float64(mm)), geometry.Unit(notchH*float64(mm))
	return geometry.Polygon{Contour: geometry.Contour{
		{X: 0, Y: 0}, {X: 0, Y: H}, {X: W - NW, Y: H}, {X: W - NW, Y: NH},
		{X: W, Y: NH}, {X: W, Y: 0}, {X: 0, Y: 0},
	}}
}

func hexagon(radius float64) geometry.Polygon {
	r := radius * float64(mm)
	contour := make(geometry.Contour, 0, 7)
	for i := 0; i < 6; i++ {
		theta := float64(i) * (2.0 * math.Pi / 6.0)
		contour = append(contour, geometry.Point{
			X: geometry.Unit(r * math.Cos(theta)),
			Y: geometry.Unit(-r * math.Sin(theta)),
		})
	}
	contour = append(contour, contour[0])
	return geometry.Polygon{Contour: contour}
}

// catalogParts is built once; see init().
var catalogParts []Part

func init() {
	catalogParts = []Part{
		{Name: "blank-small", Polygon: rect(20, 20)},
		{Name: "blank-medium", Polygon: rect(40, 30)},
		{Name: "blank-large", Polygon: rect(60, 45)},
		{Name: "bracket-l", Polygon: lshape(50, 50, 20, 20)},
		{Name: "bracket-l-long", Polygon: lshape(80, 40, 30, 15)},
		{Name: "washer-hex", Polygon: hexagon(15)},
		{Name: "strip-thin", Polygon: rect(120, 10)},
		{Name: "tile-square", Polygon: rect(25, 25)},
	}
}

// All returns every catalog part, in a stable, declared order.
func All() []Part {
	out := make([]Part, len(catalogParts))
	copy(out, catalogParts)
	return out
}

// ByName returns the named part and true, or a zero Part and false if
// no such part exists.
func ByName(name string) (Part, bool) {
	for _, p := range catalogParts {
		if p.Name == name {
			return p, true
		}
	}
	return Part{}, false
}
