package cmd

import (
	"context"
	"fmt"
	"math"

	"github.com/MeKo-Christian/nest2d"
	"github.com/MeKo-Christian/nest2d/internal/catalog"
	"github.com/MeKo-Christian/nest2d/internal/config"
	"github.com/MeKo-Christian/nest2d/internal/geometry"
	"github.com/MeKo-Christian/nest2d/internal/placer"
	"github.com/MeKo-Christian/nest2d/internal/selector"
	"github.com/MeKo-Christian/nest2d/svg"
)

func mmPoint(p [2]float64) nest2d.Point {
	return nest2d.Point{X: nest2d.MM(p[0]), Y: nest2d.MM(p[1])}
}

func mmContour(pts [][2]float64) nest2d.Contour {
	out := make(nest2d.Contour, len(pts))
	for i, p := range pts {
		out[i] = mmPoint(p)
	}
	return out
}

func buildBin(spec config.BinSpec) (nest2d.Bin, error) {
	switch spec.Kind {
	case "", "rectangle":
		return nest2d.NewRectangleBin(nest2d.MM(spec.WidthMM), nest2d.MM(spec.HeightMM)), nil
	case "circle":
		return nest2d.NewCircleBin(nest2d.Point{}, nest2d.MM(spec.RadiusMM)), nil
	case "shape":
		if len(spec.PolygonMM) < 3 {
			return nest2d.Bin{}, fmt.Errorf("shape bin needs at least 3 points, got %d", len(spec.PolygonMM))
		}
		return nest2d.NewShapeBin(geometry.Polygon{Contour: mmContour(spec.PolygonMM)}), nil
	default:
		return nest2d.Bin{}, fmt.Errorf("unknown bin kind %q", spec.Kind)
	}
}

func buildItems(specs []config.ItemSpec) ([]*nest2d.Item, error) {
	var items []*nest2d.Item
	for _, spec := range specs {
		contour, holes, err := itemGeometry(spec)
		if err != nil {
			return nil, err
		}
		count := spec.Count
		if count <= 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			items = append(items, nest2d.NewItem(contour, holes...))
		}
	}
	return items, nil
}

func itemGeometry(spec config.ItemSpec) (nest2d.Contour, []nest2d.Contour, error) {
	if spec.Catalog != "" {
		part, ok := catalog.ByName(spec.Catalog)
		if !ok {
			return nil, nil, fmt.Errorf("unknown catalog part %q", spec.Catalog)
		}
		holes := make([]nest2d.Contour, len(part.Polygon.Holes))
		for i, h := range part.Polygon.Holes {
			holes[i] = h
		}
		return part.Polygon.Contour, holes, nil
	}
	if len(spec.PolygonMM) < 3 {
		return nil, nil, fmt.Errorf("item polygon needs at least 3 points, got %d", len(spec.PolygonMM))
	}
	holes := make([]nest2d.Contour, len(spec.HolesMM))
	for i, h := range spec.HolesMM {
		holes[i] = mmContour(h)
	}
	return mmContour(spec.PolygonMM), holes, nil
}

func buildSelector(name string) (selector.Selector, error) {
	switch name {
	case "", "firstfit":
		return nest2d.FirstFit, nil
	case "djd":
		return nest2d.DJD, nil
	default:
		return nil, fmt.Errorf("unknown selector %q", name)
	}
}

func buildPlacerConfig(job *config.Job) nest2d.PlacerConfig {
	rotations := make([]float64, len(job.RotationsDeg))
	for i, deg := range job.RotationsDeg {
		rotations[i] = deg * math.Pi / 180
	}
	return placer.Config{
		Rotations:    rotations,
		Accuracy:     job.Accuracy,
		ExploreHoles: job.ExploreHoles,
		Parallel:     job.AllowParallel,
	}
}

func buildSelectorConfig(job *config.Job, placerCfg nest2d.PlacerConfig) nest2d.SelectorConfig {
	return selector.Config{
		AllowParallel: job.AllowParallel,
		MaxBins:       job.MaxBins,
		Placer:        placerCfg,
	}
}

func runNest(
	ctx context.Context,
	items []*nest2d.Item,
	b nest2d.Bin,
	distanceMarginMM float64,
	sel selector.Selector,
	placerCfg nest2d.PlacerConfig,
	selectorCfg nest2d.SelectorConfig,
) (*nest2d.PackGroup, error) {
	return nest2d.Nest(ctx, items, b, nest2d.MM(distanceMarginMM), sel, placerCfg, selectorCfg, nil, nil)
}

func shapedItems(items []*nest2d.Item) []svg.Shaped {
	out := make([]svg.Shaped, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
