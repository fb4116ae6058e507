// Package placer implements the NFP placer: given a bin's current
// pile and a candidate item, decide whether and where to place it
// under a configurable objective, by 1-D local search along the pile
// NFP's edge caches. Selectors (package selector) drive many
// candidates across many bins against one Placer per bin.
package placer

import (
	"context"
	"math"

	"github.com/MeKo-Christian/nest2d/internal/bin"
	"github.com/MeKo-Christian/nest2d/internal/edgecache"
	"github.com/MeKo-Christian/nest2d/internal/geometry"
	"github.com/MeKo-Christian/nest2d/internal/item"
	"github.com/MeKo-Christian/nest2d/internal/minimize"
	"github.com/MeKo-Christian/nest2d/internal/nfp"
	"github.com/MeKo-Christian/nest2d/internal/parallel"
)

// Alignment names a corner or center of a bounding box, used both for
// the first item's starting point and for the pile's final alignment
// within the bin.
type Alignment int

const (
	Center Alignment = iota
	BottomLeft
	BottomRight
	TopLeft
	TopRight
	None
)

// ObjectiveFunc scores a candidate pose; lower is better. It receives
// the item's bounding box under the pose being evaluated, the pile's
// bounding box, and the bin.
type ObjectiveFunc func(itemBox, pileBox geometry.Box, b bin.Bin) float64

// Config enumerates the placer's tunables. The zero value is valid:
// Rotations defaults to {0}, Minimizer to golden-section search.
type Config struct {
	Rotations      []float64
	Alignment      Alignment
	StartingPoint  Alignment
	Objective      ObjectiveFunc
	Accuracy       float64
	ExploreHoles   bool
	Parallel       bool
	Provider       geometry.Provider
	Minimizer      minimize.Minimizer
	NFPLevel       nfp.Level
	BeforePacking  func(mergedPile geometry.MultiPolygon, packed, remaining []*item.Item)
}

func (c Config) normalized() Config {
	out := c
	if len(out.Rotations) == 0 {
		out.Rotations = []float64{0}
	}
	if out.Accuracy <= 0 {
		out.Accuracy = 0.65
	}
	if out.Provider == nil {
		out.Provider = geometry.Default{}
	}
	if out.Minimizer == nil {
		out.Minimizer = minimize.NewGoldenSection()
	}
	return out
}

// Outcome is the result of a try_pack call.
type Outcome struct {
	Placed     bool
	Translation geometry.Point
	Rotation   float64
	Miss       float64 // meaningful only when Placed is false; <= 0 would have fit
}

// Placer packs items into one bin.
type Placer struct {
	bin    bin.Bin
	cfg    Config
	pile   []*item.Item
}

// New constructs a Placer for b. It returns an error if b's polygon
// representation (for Shape bins) has fewer than three vertices,
// since neither hull nor offset operations are meaningful on it.
func New(b bin.Bin, cfg Config) (*Placer, error) {
	if b.Kind() == bin.Shape {
		ring := b.Polygon().Contour
		if len(ring) > 0 && ring[0] == ring[len(ring)-1] {
			ring = ring[:len(ring)-1]
		}
		if len(ring) < 3 {
			return nil, geometry.NewGeomErr(geometry.ErrNFP, "bin polygon has %d vertices, need at least 3", len(ring))
		}
	}
	return &Placer{bin: b, cfg: cfg.normalized()}, nil
}

// ClearItems empties the pile, applying the configured final
// alignment to the now-unpiled items beforehand so their relative
// positions within the pile's bounding box are preserved against the
// bin.
func (p *Placer) ClearItems() {
	if len(p.pile) > 0 && p.cfg.Alignment != None {
		p.alignPileToBin()
	}
	p.pile = p.pile[:0]
}

func (p *Placer) alignPileToBin() {
	pileBox := p.pileBox()
	binBox := p.bin.BoundingBox()
	dx, dy := alignmentDelta(pileBox, binBox, p.cfg.Alignment)
	if dx == 0 && dy == 0 {
		return
	}
	for _, it := range p.pile {
		it.Translate(geometry.Point{X: dx, Y: dy})
	}
}

func alignmentDelta(from, to geometry.Box, a Alignment) (geometry.Unit, geometry.Unit) {
	switch a {
	case Center:
		fc, tc := from.Center(), to.Center()
		return tc.X - fc.X, tc.Y - fc.Y
	case BottomLeft:
		return to.MinX - from.MinX, to.MinY - from.MinY
	case BottomRight:
		return to.MaxX - from.MaxX, to.MinY - from.MinY
	case TopLeft:
		return to.MinX - from.MinX, to.MaxY - from.MaxY
	case TopRight:
		return to.MaxX - from.MaxX, to.MaxY - from.MaxY
	default:
		return 0, 0
	}
}

func (p *Placer) pileBox() geometry.Box {
	var box geometry.Box
	for i, it := range p.pile {
		b := it.BoundingBox()
		if i == 0 {
			box = b
		} else {
			box = box.Union(b)
		}
	}
	return box
}

// TryPack attempts to place it into the bin, committing it to the
// pile on success.
func (p *Placer) TryPack(ctx context.Context, it *item.Item, remaining []*item.Item) (Outcome, error) {
	if len(p.pile) == 0 {
		return p.packFirst(it)
	}
	return p.packAgainstPile(ctx, it, remaining)
}

func (p *Placer) packFirst(it *item.Item) (Outcome, error) {
	binBox := p.bin.BoundingBox()
	itemBox := it.BoundingBox()
	dx, dy := alignmentDelta(itemBox, binBox, startingOrCenter(p.cfg.StartingPoint))
	it.Translate(geometry.Point{X: dx, Y: dy})

	miss := p.bin.Overfit(it.BoundingBox())
	if miss > 0 {
		it.Translate(geometry.Point{X: -dx, Y: -dy})
		return Outcome{Placed: false, Miss: miss}, nil
	}
	p.pile = append(p.pile, it)
	if p.cfg.BeforePacking != nil {
		p.cfg.BeforePacking(nil, p.pile, nil)
	}
	return Outcome{Placed: true, Translation: it.Translation(), Rotation: it.Rotation()}, nil
}

func startingOrCenter(a Alignment) Alignment {
	if a == None {
		return Center
	}
	return a
}

func (p *Placer) packAgainstPile(ctx context.Context, it *item.Item, remaining []*item.Item) (Outcome, error) {
	origTranslation := it.Translation()
	origRotation := it.Rotation()

	binBox := p.bin.BoundingBox()
	outsideDelta := geometry.Point{X: binBox.Width() + it.BoundingBox().Width() + 1, Y: 0}

	bestOverfit := math.Inf(1)
	bestScore := math.Inf(1)
	var bestTranslation geometry.Point
	var bestRotation float64
	found := false

	pileRequests := make([]nfp.PileRequest, len(p.pile))
	pilePolys := make([]geometry.Polygon, len(p.pile))
	for i, pi := range p.pile {
		pileRequests[i] = nfp.PileRequest{Stationary: pi.TransformedShape(), StationaryRef: pi.ReferenceVertex()}
		pilePolys[i] = pi.TransformedShape()
	}
	// A Merge failure leaves mergedPile nil; no objective receives it,
	// but a BeforePacking callback is then handed a nil MultiPolygon -
	// there is no feasible recovery to fall back to here, so the nil
	// propagates instead.
	mergedPile, mergeErr := p.cfg.Provider.Merge(pilePolys)
	if mergeErr != nil {
		mergedPile = nil
	}
	pileBox := p.pileBox()

	policy := parallel.Deferred
	if p.cfg.Parallel {
		policy = parallel.Async
	}

	for _, rot := range p.cfg.Rotations {
		it.SetPose(origTranslation, origRotation)
		it.Rotate(rot)
		it.Translate(outsideDelta)

		orbiter := it.TransformedShape()
		lb, rt := it.LeftmostBottom(), it.RightmostTop()

		combined, err := nfp.BuildPile(ctx, p.cfg.Provider, p.cfg.NFPLevel, pileRequests, orbiter, lb, rt, policy)
		if err != nil {
			continue // this rotation is infeasible; try the next
		}

		contours := make([]geometry.Contour, 0, len(combined))
		for _, poly := range combined {
			contours = append(contours, poly.Contour)
			if p.cfg.ExploreHoles {
				contours = append(contours, poly.Holes...)
			}
		}
		if len(contours) == 0 {
			continue
		}

		// searchContours commits the best pose it finds directly onto
		// it, so the winning translation/rotation for this rotation
		// must be read back before the loop moves to the next one.
		result := p.searchContours(ctx, it, contours, mergedPile, pileBox, binBox, policy)
		if result.feasible {
			if result.score < bestScore {
				bestScore = result.score
				bestTranslation = it.Translation()
				bestRotation = it.Rotation()
				found = true
			}
		} else if result.valid && result.score < bestOverfit {
			bestOverfit = result.score
		}
	}

	if found {
		it.SetPose(bestTranslation, bestRotation)
		p.pile = append(p.pile, it)
		if p.cfg.BeforePacking != nil {
			p.cfg.BeforePacking(mergedPile, p.pile, remaining)
		}
		return Outcome{Placed: true, Translation: bestTranslation, Rotation: bestRotation}, nil
	}

	it.SetPose(origTranslation, origRotation)
	if math.IsInf(bestOverfit, 1) {
		bestOverfit = p.bin.Overfit(it.BoundingBox())
	}
	return Outcome{Placed: false, Miss: bestOverfit}, nil
}

type searchResult struct {
	t        float64
	contour  int
	hole     int
	score    float64
	feasible bool
	valid    bool
}

// searchContours runs the configured minimizer over every sampled
// corner of every contour, committing the winning pose (lowest score
// among feasible candidates) directly onto it before returning.
func (p *Placer) searchContours(ctx context.Context, it *item.Item, contours []geometry.Contour, mergedPile geometry.MultiPolygon, pileBox, binBox geometry.Box, policy parallel.Policy) searchResult {
	objective := p.cfg.Objective
	if objective == nil {
		objective = p.defaultObjective(pileBox, binBox)
	}

	bestFeasible := searchResult{score: math.Inf(1)}
	bestInfeasible := searchResult{score: math.Inf(1)}
	baseTranslation := it.Translation()
	baseRotation := it.Rotation()

	for ci, ring := range contours {
		cache, err := edgecache.Build(ring)
		if err != nil {
			continue
		}
		corners := cache.Corners(p.cfg.Accuracy)

		eval := func(t float64) (float64, geometry.Box, bool) {
			target := cache.Coords(t)
			delta := target.Sub(it.ReferenceVertex())
			it.Translate(delta)
			box := it.BoundingBox()
			feasible := p.isFeasible(pileBox.Union(box))
			score := objective(box, pileBox, p.bin)
			it.Translate(geometry.Point{X: -delta.X, Y: -delta.Y})
			return score, box, feasible
		}

		for i, c0 := range corners {
			minFn := func(t float64) float64 {
				score, _, _ := eval(t)
				return score
			}
			lo, hi := cornerWindow(corners, i)
			t, score := p.cfg.Minimizer.Minimize(minFn, c0, lo, hi, minimize.DefaultStopCriteria(p.cfg.Accuracy))
			_, _, feasible := eval(t)

			if feasible {
				if score < bestFeasible.score {
					bestFeasible = searchResult{t: t, contour: ci, score: score, feasible: true, valid: true}
				}
			} else if score < bestInfeasible.score {
				bestInfeasible = searchResult{t: t, contour: ci, score: score, feasible: false, valid: true}
			}
		}
	}

	if bestFeasible.valid {
		target := contours[bestFeasible.contour]
		cache, _ := edgecache.Build(target)
		point := cache.Coords(bestFeasible.t)
		delta := point.Sub(it.ReferenceVertex())
		it.Translate(delta)
		it.SetPose(it.Translation(), baseRotation)
		return bestFeasible
	}

	it.SetPose(baseTranslation, baseRotation)
	return bestInfeasible
}

// cornerWindow returns the bracket the local minimizer should search
// around corners[i]: halfway to its neighbors on either side, so each
// corner seeds a search of its own neighborhood of the parameter
// range rather than the whole [0,1] contour every time. corners is
// sorted ascending and always includes both 0 and 1 (edgecache.Corners
// guarantees this), so neighbors beyond either end just clamp to the
// domain rather than wrapping - the contour is cyclic but a plain
// bracketing search over a wrapped interval would need its own
// machinery the minimizer doesn't have.
func cornerWindow(corners []float64, i int) (lo, hi float64) {
	c0 := corners[i]
	lo, hi = 0, 1
	if i > 0 {
		lo = (corners[i-1] + c0) / 2
	}
	if i < len(corners)-1 {
		hi = (c0 + corners[i+1]) / 2
	}
	return lo, hi
}

// isFeasible reports whether fullBox - the union of the pile's and the
// candidate item's bounding boxes - fits within the bin. A true
// feasibility test would use the convex hull of pile plus item rather
// than their boxes; this implementation uses the coarser
// union-of-boxes test the same way the default objective's insideness
// penalty does, since a box test is cheap enough to run at every
// sampled corner while still rejecting anything a hull test would
// reject that a naive per-item box test would miss.
func (p *Placer) isFeasible(fullBox geometry.Box) bool {
	return p.bin.Contains(fullBox)
}

// defaultObjective synthesizes the scoring function used when the
// caller configures none: a normalized distance-to-bin-center term
// plus an insideness penalty.
func (p *Placer) defaultObjective(pileBox, binBox geometry.Box) ObjectiveFunc {
	norm := math.Sqrt(p.bin.Area())
	if norm == 0 {
		norm = 1
	}
	alignment := p.cfg.Alignment
	return func(itemBox, _ geometry.Box, b bin.Bin) float64 {
		fullBox := pileBox.Union(itemBox)
		binCenter := binBox.Center()
		itemCenter := itemBox.Center()
		dist := math.Hypot(float64(itemCenter.X-binCenter.X), float64(itemCenter.Y-binCenter.Y))

		var penalty float64
		if alignment == None {
			if !b.Contains(fullBox) {
				penalty = norm
			}
		} else {
			over := b.Overfit(fullBox)
			if over > 0 {
				penalty = over * over
			}
		}
		return dist/norm + penalty
	}
}

// Bin returns the bin this placer packs into.
func (p *Placer) Bin() bin.Bin { return p.bin }

// Items returns the currently-piled items, in placement order.
func (p *Placer) Items() []*item.Item { return p.pile }

// TruncatePile drops every item placed after the first n, without
// touching the poses of the items that remain - unlike ClearItems,
// which applies the configured final alignment. DJD's group
// backtracking uses this to undo a speculative pair/triplet attempt
// exactly, with no side effect on the items that were already
// committed before the attempt began.
func (p *Placer) TruncatePile(n int) {
	if n < 0 || n > len(p.pile) {
		return
	}
	p.pile = p.pile[:n]
}
