package nest2d

import (
	"context"

	"github.com/MeKo-Christian/nest2d/internal/geometry"
	"github.com/MeKo-Christian/nest2d/internal/item"
	"github.com/MeKo-Christian/nest2d/internal/placer"
	"github.com/MeKo-Christian/nest2d/internal/selector"
)

// PlacerConfig is the placer-config option set enumerated in spec §4.5.
type PlacerConfig = placer.Config

// SelectorConfig is the selector-config option set: allow_parallel and
// DJD's max_bins.
type SelectorConfig = selector.Config

// ProgressFunc is called once per successful placement with the count
// of items still remaining to be placed.
type ProgressFunc = selector.ProgressFunc

// StopFunc is polled between items and between bins; returning true
// cancels the run and yields the partial PackGroup built so far.
type StopFunc = selector.StopFunc

// PackGroup is the ordered result of a Nest call: one entry per opened
// bin, plus whatever items never found a home.
type PackGroup struct {
	Bins      []BinResult
	unplaced  []*Item
	cancelled bool
}

// BinResult is one opened bin and the items placed into it, in
// placement order.
type BinResult struct {
	Bin   Bin
	Items []*Item
}

// Unplaced returns the items that could not be placed in any bin.
// Consult PackErr{Kind: InfeasibleItem} semantics when reporting these
// to a caller: the selector's safety pass drops them silently per
// spec §7, with no hard error raised.
func (g *PackGroup) Unplaced() []*Item { return g.unplaced }

// Cancelled reports whether stop observed true before every item had
// been placed or rejected; Bins and Unplaced still reflect whatever
// committed placements happened first. Corresponds to
// PackErr{Kind: Cancelled} for callers that want a typed error value
// to log or propagate rather than a bare bool.
func (g *PackGroup) Cancelled() bool { return g.cancelled }

// FirstFit packs items, in descending-area order, into the first
// already-open bin that accepts them, opening a new one only when
// none does.
var FirstFit selector.Selector = selector.FirstFit{}

// DJD packs items using the 1/2/3-group look-ahead heuristic: a
// greedy pre-fill followed by single/pair/triplet placement attempts
// with growing slack before a bin is considered exhausted.
var DJD selector.Selector = selector.DJD{}

// Nest packs items into bins of the shape described by binTemplate,
// opening as many as the chosen selector needs (bounded by
// selectorCfg.MaxBins for DJD). distanceMargin is a nonnegative offset applied
// to every item's polygon before placement, so that packed items keep
// at least that much clearance; it is realized via polygon offsetting
// and fails with a GeomErr if any item's outer ring has fewer than
// four vertices and a nonzero margin was requested.
//
// progress and stop are both optional; pass nil to ignore them.
func Nest(
	ctx context.Context,
	items []*Item,
	binTemplate Bin,
	distanceMargin Unit,
	sel selector.Selector,
	placerCfg PlacerConfig,
	selectorCfg SelectorConfig,
	progress ProgressFunc,
	stop StopFunc,
) (*PackGroup, error) {
	marginedByOriginal := make(map[*item.Item]*Item, len(items))
	marginedItems := make([]*item.Item, 0, len(items))

	for _, it := range items {
		raw := it.inner.RawPolygon()
		margined := raw
		if distanceMargin > 0 {
			offsetPoly, err := geometry.Offset(raw, distanceMargin)
			if err != nil {
				return nil, err
			}
			margined = offsetPoly
		}
		mi := item.New(margined)
		marginedByOriginal[mi] = it
		marginedItems = append(marginedItems, mi)
	}

	binFactory := func() (*placer.Placer, error) {
		return placer.New(binTemplate, placerCfg)
	}

	group, err := sel.Run(ctx, marginedItems, binFactory, selectorCfg, progress, stop)
	if err != nil {
		return nil, err
	}

	out := &PackGroup{cancelled: group.Cancelled()}
	for bi, br := range group.Bins {
		outBR := BinResult{Bin: br.Bin}
		for _, mi := range br.Items {
			orig := marginedByOriginal[mi]
			orig.setPose(mi.Translation(), mi.Rotation())
			orig.setBinID(bi)
			outBR.Items = append(outBR.Items, orig)
		}
		out.Bins = append(out.Bins, outBR)
	}
	for _, mi := range group.Unplaced() {
		orig := marginedByOriginal[mi]
		orig.setBinID(int(item.Unassigned))
		out.unplaced = append(out.unplaced, orig)
	}

	return out, nil
}
