package selector

import (
	"context"

	"github.com/MeKo-Christian/nest2d/internal/item"
	"github.com/MeKo-Christian/nest2d/internal/placer"
)

// initialFillProportion is the fraction of a bin's area the greedy
// largest-first pre-fill aims for before the waste loop takes over.
const initialFillProportion = 1.0 / 3.0

// DJD implements the 1/2/3-group look-ahead heuristic: pre-fill a bin
// greedily, then repeatedly try placing items singly, in pairs, and
// in triplets with increasing slack ("waste") until the bin can take
// no more, then open the next one.
type DJD struct{}

var _ Selector = DJD{}

type djdPair struct{ a, b *item.Item }

func pairMatches(p djdPair, a, b *item.Item) bool {
	return (p.a == a && p.b == b) || (p.a == b && p.b == a)
}

type djdTriplet struct{ a, b, c *item.Item }

func tripletMatches(t djdTriplet, a, b, c *item.Item) bool {
	items := [3]*item.Item{a, b, c}
	perm := [3]*item.Item{t.a, t.b, t.c}
	for _, order := range permutations3(perm) {
		if order == items {
			return true
		}
	}
	return false
}

func permutations3(p [3]*item.Item) [][3]*item.Item {
	a, b, c := p[0], p[1], p[2]
	return [][3]*item.Item{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
}

func (DJD) Run(ctx context.Context, items []*item.Item, binFactory BinFactory, cfg Config, progress ProgressFunc, stop StopFunc) (*PackGroup, error) {
	group := newPackGroup()

	feasible, infeasible, err := safetyPass(ctx, items, binFactory)
	if err != nil {
		return nil, err
	}
	group.markUnplaced(infeasible...)

	notPacked := sortByAreaDesc(feasible)
	total := len(notPacked)

	for len(notPacked) > 0 {
		if stop != nil && stop() {
			group.markCancelled()
			return group, nil
		}
		if cfg.MaxBins > 0 && len(group.Bins) >= cfg.MaxBins {
			group.markUnplaced(notPacked...)
			break
		}

		pl, err := binFactory()
		if err != nil {
			return nil, err
		}
		binArea := pl.Bin().Area()
		br := group.addBin(pl.Bin())

		freeArea := binArea
		initialTarget := binArea * initialFillProportion

		// Greedy largest-first pre-fill.
		for len(notPacked) > 0 && binArea-freeArea < initialTarget {
			head := notPacked[0]
			outcome, err := pl.TryPack(ctx, head, notPacked[1:])
			if err != nil {
				break
			}
			if !outcome.Placed {
				break
			}
			freeArea -= head.Area()
			notPacked = notPacked[1:]
			br.Items = pl.Items()
			if progress != nil {
				progress(total - (total - len(notPacked)))
			}
		}

		waste := 0.0
		w := 0.1 * binArea
		for len(notPacked) > 0 {
			if stop != nil && stop() {
				br.Items = pl.Items()
				group.markUnplaced(notPacked...)
				group.markCancelled()
				return group, nil
			}

			advanced, newFree := tryOneByOne(ctx, pl, &notPacked, freeArea, waste)
			if !advanced {
				advanced, newFree = tryGroupsOfTwo(ctx, pl, &notPacked, freeArea, waste)
			}
			if !advanced {
				advanced, newFree = tryGroupsOfThree(ctx, pl, &notPacked, freeArea, waste)
			}

			if advanced {
				freeArea = newFree
				waste = 0
				br.Items = pl.Items()
				if progress != nil {
					progress(len(notPacked))
				}
				continue
			}

			if waste < freeArea {
				waste += w
				continue
			}
			break // bin exhausted; open the next one
		}
	}

	return group, nil
}

// tryOneByOne places remaining items single-file, in descending-area
// order, while the bin has at least waste slack left to spare: it
// stops scanning as soon as an item no longer satisfies
// free_area - item_area <= waste, mirroring the C++ original's while
// condition rather than scanning the whole list unconditionally.
func tryOneByOne(ctx context.Context, pl *placer.Placer, notPacked *[]*item.Item, freeArea, waste float64) (bool, float64) {
	items := *notPacked
	for i, it := range items {
		area := it.Area()
		if freeArea-area > waste {
			break
		}
		if area > freeArea {
			continue
		}
		outcome, err := pl.TryPack(ctx, it, remainingAfter(items, i))
		if err != nil || !outcome.Placed {
			continue
		}
		*notPacked = removeAt(items, i)
		return true, freeArea - area
	}
	return false, freeArea
}

// tryGroupsOfTwo tries to place a pair of items together, rolling
// back the first item's placement if no second item completes the
// pair, per the backtracking discipline spec §4.6.2 requires.
func tryGroupsOfTwo(ctx context.Context, pl *placer.Placer, notPacked *[]*item.Item, freeArea, waste float64) (bool, float64) {
	items := *notPacked
	if len(items) < 2 {
		return false, freeArea
	}

	var failedPairs []djdPair

	for i := 0; i < len(items); i++ {
		first := items[i]
		firstArea := first.Area()
		if freeArea-firstArea > waste {
			break
		}

		baseline := len(pl.Items())
		outcome, err := pl.TryPack(ctx, first, remainingAfter(items, i))
		if err != nil || !outcome.Placed {
			continue
		}

		for j := 0; j < len(items); j++ {
			if j == i {
				continue
			}
			second := items[j]
			if anyPairMatches(failedPairs, first, second) {
				continue
			}
			areaSum := firstArea + second.Area()
			if areaSum > freeArea {
				continue
			}
			outcome2, err := pl.TryPack(ctx, second, remainingAfter(items, j))
			if err != nil || !outcome2.Placed {
				failedPairs = append(failedPairs, djdPair{a: first, b: second})
				continue
			}
			*notPacked = removeIndices(items, i, j)
			return true, freeArea - areaSum
		}

		unpackLast(pl, baseline)
	}

	return false, freeArea
}

// tryGroupsOfThree tries triplets of items together. A negative cache
// of triplets already known not to fit together is consulted before
// re-attempting them; when an ordered placement of a candidate
// triplet fails, its other orderings are tried before the triplet is
// rejected outright, matching spec §4.6.2's "try permutations of the
// three before rejecting".
func tryGroupsOfThree(ctx context.Context, pl *placer.Placer, notPacked *[]*item.Item, freeArea, waste float64) (bool, float64) {
	items := *notPacked
	if len(items) < 3 {
		return false, freeArea
	}

	var failedTriplets []djdTriplet

	for i := 0; i < len(items); i++ {
		a := items[i]
		if freeArea-a.Area() > waste {
			break
		}
		for j := 0; j < len(items); j++ {
			if j == i {
				continue
			}
			b := items[j]
			for k := 0; k < len(items); k++ {
				if k == i || k == j {
					continue
				}
				c := items[k]
				areaSum := a.Area() + b.Area() + c.Area()
				if areaSum > freeArea {
					continue
				}
				if anyTripletMatches(failedTriplets, a, b, c) {
					continue
				}

				for _, order := range permutations3([3]*item.Item{a, b, c}) {
					baseline, ok := tryPlaceOrder(ctx, pl, order[:])
					if ok {
						*notPacked = removeIndices(items, i, j, k)
						return true, freeArea - areaSum
					}
					if baseline >= 0 {
						unpackLast(pl, baseline)
					}
				}
				failedTriplets = append(failedTriplets, djdTriplet{a: a, b: b, c: c})
			}
		}
	}

	return false, freeArea
}

// tryPlaceOrder attempts to place the given items in order, stopping
// at the first failure without undoing anything itself. It returns the
// pile length the caller rolls back to on failure (-1 if nothing was
// placed) and whether every item placed successfully.
func tryPlaceOrder(ctx context.Context, pl *placer.Placer, ordered []*item.Item) (int, bool) {
	baseline := len(pl.Items())
	placed := 0
	for _, it := range ordered {
		outcome, err := pl.TryPack(ctx, it, nil)
		if err != nil || !outcome.Placed {
			break
		}
		placed++
	}
	if placed == len(ordered) {
		return baseline, true
	}
	if placed == 0 {
		return -1, false
	}
	return baseline, false
}

func unpackLast(pl *placer.Placer, targetLen int) {
	pl.TruncatePile(targetLen)
}

func anyPairMatches(pairs []djdPair, a, b *item.Item) bool {
	for _, p := range pairs {
		if pairMatches(p, a, b) {
			return true
		}
	}
	return false
}

func anyTripletMatches(triplets []djdTriplet, a, b, c *item.Item) bool {
	for _, t := range triplets {
		if tripletMatches(t, a, b, c) {
			return true
		}
	}
	return false
}

func remainingAfter(items []*item.Item, idx int) []*item.Item {
	out := make([]*item.Item, 0, len(items)-1)
	for i, it := range items {
		if i != idx {
			out = append(out, it)
		}
	}
	return out
}

func removeAt(items []*item.Item, idx int) []*item.Item {
	out := make([]*item.Item, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	return out
}

func removeIndices(items []*item.Item, indices ...int) []*item.Item {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	out := make([]*item.Item, 0, len(items)-len(indices))
	for i, it := range items {
		if !drop[i] {
			out = append(out, it)
		}
	}
	return out
}
