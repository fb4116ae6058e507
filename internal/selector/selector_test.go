package selector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Christian/nest2d/internal/bin"
	"github.com/MeKo-Christian/nest2d/internal/geometry"
	"github.com/MeKo-Christian/nest2d/internal/item"
	"github.com/MeKo-Christian/nest2d/internal/placer"
)

func square(side geometry.Unit) *item.Item {
	return item.New(geometry.Polygon{Contour: geometry.Contour{
		{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side}, {X: 0, Y: 0},
	}})
}

func rectBinFactory(w, h geometry.Unit) BinFactory {
	return func() (*placer.Placer, error) {
		return placer.New(bin.NewRectangle(w, h), placer.Config{})
	}
}

func TestFirstFitOpensNewBinWhenNoneFits(t *testing.T) {
	items := []*item.Item{square(60), square(60), square(60)}
	group, err := FirstFit{}.Run(context.Background(), items, rectBinFactory(100, 100), Config{}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, group.Unplaced())
	assert.GreaterOrEqual(t, len(group.Bins), 2)
}

func TestFirstFitDropsInfeasibleItems(t *testing.T) {
	items := []*item.Item{square(10), square(1000)}
	group, err := FirstFit{}.Run(context.Background(), items, rectBinFactory(100, 100), Config{}, nil, nil)
	require.NoError(t, err)
	require.Len(t, group.Unplaced(), 1)
	assert.Equal(t, 1000.0*1000.0, group.Unplaced()[0].Area())
}

func TestFirstFitCancelledSetsFlag(t *testing.T) {
	items := []*item.Item{square(10), square(10)}
	calls := 0
	stop := func() bool {
		calls++
		return true
	}
	group, err := FirstFit{}.Run(context.Background(), items, rectBinFactory(100, 100), Config{}, nil, stop)
	require.NoError(t, err)
	assert.True(t, group.Cancelled())
}

func TestDJDPacksAllFeasibleItems(t *testing.T) {
	items := []*item.Item{square(40), square(30), square(20), square(10)}
	group, err := DJD{}.Run(context.Background(), items, rectBinFactory(100, 100), Config{}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, group.Unplaced())
	assert.NotEmpty(t, group.Bins)
}

func TestDJDRespectsMaxBins(t *testing.T) {
	items := []*item.Item{square(90), square(90), square(90)}
	cfg := Config{MaxBins: 1}
	group, err := DJD{}.Run(context.Background(), items, rectBinFactory(100, 100), cfg, nil, nil)
	require.NoError(t, err)
	assert.Len(t, group.Bins, 1)
	assert.NotEmpty(t, group.Unplaced())
}

func TestProgressCallbackInvokedOnPlacement(t *testing.T) {
	items := []*item.Item{square(10), square(10)}
	var seen []int
	progress := func(remaining int) { seen = append(seen, remaining) }
	_, err := FirstFit{}.Run(context.Background(), items, rectBinFactory(100, 100), Config{}, progress, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, seen)
}
