// Package config decodes a nesting job file: the bin, the items to
// pack, and the selector/placer knobs the CLI exposes, in millimetres
// rather than internal fixed-point units so job files stay readable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// BinSpec describes the container to pack into. Kind selects which of
// WidthMM/HeightMM, RadiusMM, or PolygonMM is read; the others are
// ignored.
type BinSpec struct {
	Kind     string      `yaml:"kind"` // "rectangle" | "circle" | "shape"
	WidthMM  float64     `yaml:"width_mm,omitempty"`
	HeightMM float64     `yaml:"height_mm,omitempty"`
	RadiusMM float64     `yaml:"radius_mm,omitempty"`
	PolygonMM [][2]float64 `yaml:"polygon_mm,omitempty"`
}

// ItemSpec describes one item (optionally repeated Count times).
type ItemSpec struct {
	PolygonMM [][2]float64   `yaml:"polygon_mm"`
	HolesMM   [][][2]float64 `yaml:"holes_mm,omitempty"`
	Count     int            `yaml:"count,omitempty"`
	Catalog   string         `yaml:"catalog,omitempty"`
}

// Job is a whole nesting run as decoded from YAML.
type Job struct {
	Bin              BinSpec    `yaml:"bin"`
	Items            []ItemSpec `yaml:"items"`
	Selector         string     `yaml:"selector"` // "firstfit" | "djd"
	RotationsDeg     []float64  `yaml:"rotations_deg,omitempty"`
	Accuracy         float64    `yaml:"accuracy,omitempty"`
	DistanceMarginMM float64    `yaml:"distance_margin_mm,omitempty"`
	MaxBins          int        `yaml:"max_bins,omitempty"`
	ExploreHoles     bool       `yaml:"explore_holes,omitempty"`
	AllowParallel    bool       `yaml:"allow_parallel,omitempty"`
	SVGOutput        string     `yaml:"svg_output,omitempty"`
}

// Load reads and decodes a job file from path.
func Load(path string) (*Job, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job Job
	if err := yaml.Unmarshal(buf, &job); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	job.applyDefaults()
	return &job, nil
}

func (j *Job) applyDefaults() {
	if j.Selector == "" {
		j.Selector = "firstfit"
	}
	if j.Accuracy == 0 {
		j.Accuracy = 0.65
	}
	if len(j.RotationsDeg) == 0 {
		j.RotationsDeg = []float64{0}
	}
}

// Default returns a job prefilled with sane placeholder values, the
// way `recast config` seeds a starter build-settings file; writing it
// out is left to Save.
func Default() *Job {
	job := &Job{
		Bin: BinSpec{Kind: "rectangle", WidthMM: 200, HeightMM: 200},
		Items: []ItemSpec{
			{PolygonMM: [][2]float64{{0, 0}, {20, 0}, {20, 20}, {0, 20}}, Count: 4},
		},
		Selector:     "firstfit",
		RotationsDeg: []float64{0, 90, 180, 270},
	}
	job.applyDefaults()
	return job
}

// Save writes job to path in YAML form.
func Save(path string, job *Job) error {
	buf, err := yaml.Marshal(job)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
