package nest2d

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectContour(w, h Unit) Contour {
	return Contour{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}, {X: 0, Y: 0},
	}
}

func TestNestFirstFitPlacesEverythingInOneBin(t *testing.T) {
	bin := NewRectangleBin(MM(200), MM(200))
	items := []*Item{
		NewItem(rectContour(MM(50), MM(50))),
		NewItem(rectContour(MM(50), MM(50))),
	}

	group, err := Nest(context.Background(), items, bin, 0, FirstFit, PlacerConfig{}, SelectorConfig{}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, group.Unplaced())
	assert.False(t, group.Cancelled())
	assert.Len(t, group.Bins, 1)

	total := 0
	for _, br := range group.Bins {
		total += len(br.Items)
	}
	assert.Equal(t, 2, total)
}

func TestNestDropsInfeasibleItem(t *testing.T) {
	bin := NewRectangleBin(MM(10), MM(10))
	items := []*Item{
		NewItem(rectContour(MM(5), MM(5))),
		NewItem(rectContour(MM(500), MM(500))),
	}

	group, err := Nest(context.Background(), items, bin, 0, FirstFit, PlacerConfig{}, SelectorConfig{}, nil, nil)
	require.NoError(t, err)
	require.Len(t, group.Unplaced(), 1)
	assert.Equal(t, -1, group.Unplaced()[0].BinID())
	assert.Contains(t, NewInfeasibleItemErr(group.Unplaced()[0]).Error(), "infeasible item")
}

func TestNestCancelledViaStopFunc(t *testing.T) {
	bin := NewRectangleBin(MM(200), MM(200))
	items := []*Item{
		NewItem(rectContour(MM(50), MM(50))),
		NewItem(rectContour(MM(50), MM(50))),
		NewItem(rectContour(MM(50), MM(50))),
	}

	calls := 0
	stop := func() bool {
		calls++
		return calls > 1
	}

	group, err := Nest(context.Background(), items, bin, 0, FirstFit, PlacerConfig{}, SelectorConfig{}, nil, stop)
	require.NoError(t, err)
	assert.True(t, group.Cancelled())
}

func TestNestAppliesDistanceMargin(t *testing.T) {
	bin := NewRectangleBin(MM(200), MM(200))
	items := []*Item{NewItem(rectContour(MM(50), MM(50)))}

	group, err := Nest(context.Background(), items, bin, MM(2), FirstFit, PlacerConfig{}, SelectorConfig{}, nil, nil)
	require.NoError(t, err)
	require.Empty(t, group.Unplaced())
	require.Len(t, group.Bins, 1)
	placed := group.Bins[0].Items[0]
	// the returned item keeps its own (un-margined) polygon; only its pose
	// was solved against the margined stand-in.
	assert.InDelta(t, 2500*1e12, placed.Area(), 1e6)
}

func TestPackErrMessages(t *testing.T) {
	it := NewItem(rectContour(MM(10), MM(10)))
	err := NewInfeasibleItemErr(it)
	assert.Equal(t, InfeasibleItem, err.Kind)

	cerr := NewCancelledErr(3)
	assert.Equal(t, Cancelled, cerr.Kind)
	assert.Contains(t, cerr.Error(), "3 item(s)")
}
