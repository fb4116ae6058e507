package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MeKo-Christian/nest2d"
	"github.com/MeKo-Christian/nest2d/internal/config"
	"github.com/MeKo-Christian/nest2d/svg"
)

var svgOutDir string

var packCmd = &cobra.Command{
	Use:   "pack JOBFILE",
	Short: "pack the items described in JOBFILE into bins",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := config.Load(args[0])
		if err != nil {
			return fmt.Errorf("loading job: %w", err)
		}

		b, err := buildBin(job.Bin)
		if err != nil {
			return fmt.Errorf("building bin: %w", err)
		}
		items, err := buildItems(job.Items)
		if err != nil {
			return fmt.Errorf("building items: %w", err)
		}
		sel, err := buildSelector(job.Selector)
		if err != nil {
			return err
		}

		placerCfg := buildPlacerConfig(job)
		selectorCfg := buildSelectorConfig(job, placerCfg)

		group, err := runNest(context.Background(), items, b, job.DistanceMarginMM, sel, placerCfg, selectorCfg)
		if err != nil {
			return fmt.Errorf("packing: %w", err)
		}

		fmt.Printf("packed %d item(s) into %d bin(s); %d unplaced\n",
			len(items)-len(group.Unplaced()), len(group.Bins), len(group.Unplaced()))
		for _, it := range group.Unplaced() {
			fmt.Println("warning:", nest2d.NewInfeasibleItemErr(it))
		}
		if group.Cancelled() {
			fmt.Println("warning:", nest2d.NewCancelledErr(len(group.Unplaced())))
		}

		outDir := svgOutDir
		if outDir == "" {
			outDir = job.SVGOutput
		}
		if outDir != "" {
			if err := writeSVGs(group, outDir); err != nil {
				return fmt.Errorf("writing SVG: %w", err)
			}
			fmt.Printf("wrote SVG output under %s\n", outDir)
		}

		return nil
	},
}

func writeSVGs(group *nest2d.PackGroup, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, br := range group.Bins {
		path := filepath.Join(dir, fmt.Sprintf("bin-%03d.svg", i))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		err = svg.WriteBin(f, br.Bin, shapedItems(br.Items), 1)
		closeErr := f.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return closeErr
		}
	}
	return nil
}

func init() {
	RootCmd.AddCommand(packCmd)
	packCmd.Flags().StringVar(&svgOutDir, "svg-dir", "", "directory to write one SVG per bin (overrides svg_output in the job file)")
}
