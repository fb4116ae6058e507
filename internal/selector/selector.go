// Package selector implements the packing-order heuristics that drive
// a Placer across many items and bins: First-Fit and the DJD 1/2/3
// group look-ahead. Both share the same PackGroup bookkeeping and the
// safety pass that drops items no configured bin could ever hold.
package selector

import (
	"context"

	"github.com/MeKo-Christian/nest2d/internal/bin"
	"github.com/MeKo-Christian/nest2d/internal/item"
	"github.com/MeKo-Christian/nest2d/internal/placer"
)

// ProgressFunc is called once per successful placement with the count
// of items still remaining.
type ProgressFunc func(remaining int)

// StopFunc is polled between items and between bins; returning true
// cancels the run and yields the partial PackGroup built so far.
type StopFunc func() bool

// Config is the shared selector-config option set from spec §6, plus
// DJD's own max_bins knob (ignored by FirstFit).
type Config struct {
	AllowParallel bool
	MaxBins       int // 0 means unlimited
	Placer        placer.Config
}

// BinFactory constructs a fresh Placer for a new bin.
type BinFactory func() (*placer.Placer, error)

// Selector drives item order and bin allocation against a sequence of
// placers built from binFactory.
type Selector interface {
	Run(ctx context.Context, items []*item.Item, binFactory BinFactory, cfg Config, progress ProgressFunc, stop StopFunc) (*PackGroup, error)
}

// PackGroup is the ordered result of a packing run: one entry per
// opened bin, each holding the items placed into it in placement
// order, plus whatever items never found a home.
type PackGroup struct {
	Bins      []*BinResult
	unplaced  []*item.Item
	cancelled bool
}

// BinResult is one opened bin and the items placed into it.
type BinResult struct {
	Bin   bin.Bin
	Items []*item.Item
}

// Unplaced returns the items that could not be placed in any bin,
// either because the safety pass rejected them outright or because
// every opened placer (up to MaxBins, for DJD) refused them.
func (g *PackGroup) Unplaced() []*item.Item { return g.unplaced }

// Cancelled reports whether stop() observed true before every item
// had been placed or rejected; Bins and Unplaced still reflect
// whatever committed placements happened before cancellation.
func (g *PackGroup) Cancelled() bool { return g.cancelled }

func (g *PackGroup) markCancelled() { g.cancelled = true }

func newPackGroup() *PackGroup {
	return &PackGroup{}
}

func (g *PackGroup) addBin(b bin.Bin) *BinResult {
	r := &BinResult{Bin: b}
	g.Bins = append(g.Bins, r)
	return r
}

func (g *PackGroup) markUnplaced(items ...*item.Item) {
	g.unplaced = append(g.unplaced, items...)
}

// sortByAreaDesc returns a new slice of items ordered by descending
// area, ties broken by the items' original (stable) input order - the
// selectors' shared comparison rule.
func sortByAreaDesc(items []*item.Item) []*item.Item {
	out := make([]*item.Item, len(items))
	copy(out, items)
	// insertion sort keeps the stable tie-break without importing
	// sort.SliceStable's reflection overhead for what is usually a
	// small per-bin item count; correctness, not speed, is the point.
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && out[j-1].Area() < out[j].Area() {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}
