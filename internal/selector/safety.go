package selector

import (
	"context"

	"github.com/MeKo-Christian/nest2d/internal/item"
)

// safetyPass drops every item that cannot fit into a freshly opened,
// otherwise-empty bin - the "exceeds any feasible bin" check spec.md
// §4.6's selector intro requires of both FirstFit and DJD. Shared here
// so the rule is implemented exactly once.
func safetyPass(ctx context.Context, items []*item.Item, binFactory BinFactory) (feasible, infeasible []*item.Item, err error) {
	probe, err := binFactory()
	if err != nil {
		return nil, nil, err
	}

	for _, it := range items {
		outcome, tryErr := probe.TryPack(ctx, it, nil)
		if tryErr != nil {
			return nil, nil, tryErr
		}
		if outcome.Placed {
			// Undo: the probe bin exists only to answer "would this
			// fit alone", never to actually hold items across calls.
			probe.ClearItems()
			feasible = append(feasible, it)
		} else {
			infeasible = append(infeasible, it)
		}
	}
	return feasible, infeasible, nil
}
