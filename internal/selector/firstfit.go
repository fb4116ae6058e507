package selector

import (
	"context"

	"github.com/MeKo-Christian/nest2d/internal/item"
	"github.com/MeKo-Christian/nest2d/internal/placer"
)

// FirstFit packs each item, in descending-area order, into the first
// already-open placer that accepts it; opens a new bin only when none
// does.
type FirstFit struct{}

var _ Selector = FirstFit{}

func (FirstFit) Run(ctx context.Context, items []*item.Item, binFactory BinFactory, cfg Config, progress ProgressFunc, stop StopFunc) (*PackGroup, error) {
	group := newPackGroup()

	feasible, infeasible, err := safetyPass(ctx, items, binFactory)
	if err != nil {
		return nil, err
	}
	group.markUnplaced(infeasible...)

	ordered := sortByAreaDesc(feasible)
	var placers []*placer.Placer
	var binResults []*BinResult

	for idx, it := range ordered {
		if stop != nil && stop() {
			group.markCancelled()
			return group, nil
		}

		remaining := ordered[idx+1:]
		placed := false
		for i, pl := range placers {
			if stop != nil && stop() {
				group.markCancelled()
				return group, nil
			}
			outcome, err := pl.TryPack(ctx, it, remaining)
			if err != nil {
				continue
			}
			if outcome.Placed {
				binResults[i].Items = pl.Items()
				placed = true
				break
			}
		}

		if !placed {
			pl, err := binFactory()
			if err != nil {
				return nil, err
			}
			outcome, err := pl.TryPack(ctx, it, remaining)
			if err != nil || !outcome.Placed {
				group.markUnplaced(it)
			} else {
				placers = append(placers, pl)
				br := group.addBin(pl.Bin())
				br.Items = pl.Items()
				binResults = append(binResults, br)
				placed = true
			}
		}

		if placed && progress != nil {
			progress(len(ordered) - idx - 1)
		}
	}

	return group, nil
}
