package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MeKo-Christian/nest2d"
	"github.com/MeKo-Christian/nest2d/internal/catalog"
	"github.com/MeKo-Christian/nest2d/internal/placer"
	"github.com/MeKo-Christian/nest2d/internal/selector"
)

var (
	benchCopies int
	benchWidth  float64
	benchHeight float64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "pack the bundled catalog with both selectors and report bin counts",
	Long: `bench repeats every catalog part benchCopies times, packs the
resulting set into a fixed-size rectangle bin with both FirstFit and
DJD, and prints how many bins each selector opened - the scenario F
comparison from the testable-properties section.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		parts := catalog.All()
		var items []*nest2d.Item
		for _, p := range parts {
			for i := 0; i < benchCopies; i++ {
				items = append(items, nest2d.NewItem(p.Polygon.Contour, p.Polygon.Holes...))
			}
		}

		b := nest2d.NewRectangleBin(nest2d.MM(benchWidth), nest2d.MM(benchHeight))
		placerCfg := placer.Config{Rotations: []float64{0}, Accuracy: 0.65}

		for name, sel := range map[string]selector.Selector{"firstfit": nest2d.FirstFit, "djd": nest2d.DJD} {
			selectorCfg := selector.Config{Placer: placerCfg}
			group, err := nest2d.Nest(context.Background(), cloneItems(items), b, 0, sel, placerCfg, selectorCfg, nil, nil)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			fmt.Printf("%-10s bins=%d unplaced=%d\n", name, len(group.Bins), len(group.Unplaced()))
		}
		return nil
	},
}

// cloneItems gives each selector its own fresh Item set, since Nest
// mutates pose/bin-id on the items it's handed.
func cloneItems(items []*nest2d.Item) []*nest2d.Item {
	out := make([]*nest2d.Item, len(items))
	for i, it := range items {
		shape := it.TransformedShape()
		out[i] = nest2d.NewItem(shape.Contour, shape.Holes...)
	}
	return out
}

func init() {
	RootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchCopies, "copies", 2, "how many copies of each catalog part to pack")
	benchCmd.Flags().Float64Var(&benchWidth, "width-mm", 300, "bin width in millimetres")
	benchCmd.Flags().Float64Var(&benchHeight, "height-mm", 300, "bin height in millimetres")
}
