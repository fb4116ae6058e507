package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yml")
	contents := `
bin:
  kind: rectangle
  width_mm: 100
  height_mm: 100
items:
  - polygon_mm: [[0,0],[10,0],[10,10],[0,10]]
    count: 3
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	job, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "firstfit", job.Selector)
	require.Equal(t, []float64{0}, job.RotationsDeg)
	require.InDelta(t, 0.65, job.Accuracy, 1e-9)
	require.Len(t, job.Items, 1)
	require.Equal(t, 3, job.Items[0].Count)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestDefaultJobRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "default.yml")
	job := Default()

	require.NoError(t, Save(path, job))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, job.Bin.Kind, reloaded.Bin.Kind)
	require.Equal(t, job.Selector, reloaded.Selector)
	require.Len(t, reloaded.Items, len(job.Items))
}
