// Package minimize implements the 1-D local minimizer the placer runs
// along each NFP edge-cache parameter: minimize(f, x0, [lo,hi], stop).
// The golden-section search implemented here is the standard
// bracketing method for a unimodal scalar function over a closed
// interval.
package minimize

import "math"

// StopCriteria bounds how long a minimization runs.
type StopCriteria struct {
	MaxIterations          int
	RelativeScoreDifference float64
}

// DefaultStopCriteria scales MaxIterations with accuracy the way the
// placer's own accuracy knob scales EdgeCache corner sampling:
// roughly 1000*accuracy iterations, floored at 50 so low-accuracy
// runs still converge on simple objectives.
func DefaultStopCriteria(accuracy float64) StopCriteria {
	if accuracy < 0 {
		accuracy = 0
	}
	if accuracy > 1 {
		accuracy = 1
	}
	iters := int(1000 * accuracy)
	if iters < 50 {
		iters = 50
	}
	return StopCriteria{MaxIterations: iters, RelativeScoreDifference: 1e-20}
}

// Minimizer is the pluggable local-search collaborator the placer
// depends on: minimize f over [lo, hi] starting near x0. The caller
// chooses lo and hi to bracket the neighborhood x0 seeds - passing the
// same [lo, hi] for every call regardless of x0 collapses every seed
// to the same search.
type Minimizer interface {
	Minimize(f func(x float64) float64, x0, lo, hi float64, stop StopCriteria) (x, score float64)
}

// GoldenSection is the default Minimizer: a golden-section search that
// narrows the given bracket [lo, hi] each iteration, stopping when the
// bracket is sufficiently narrow, the iteration budget is exhausted,
// or successive scores stop improving by more than
// RelativeScoreDifference. x0 is only used to clamp into [lo, hi]; it
// is the caller's responsibility to pass a [lo, hi] that actually
// brackets a neighborhood of x0, since a single golden-section pass
// searches its given interval, not the seed point specifically.
type GoldenSection struct{}

// NewGoldenSection returns the default Minimizer.
func NewGoldenSection() GoldenSection { return GoldenSection{} }

const invPhi = 0.6180339887498949 // (sqrt(5)-1)/2

func (GoldenSection) Minimize(f func(x float64) float64, x0, lo, hi float64, stop StopCriteria) (float64, float64) {
	if hi < lo {
		lo, hi = hi, lo
	}
	if x0 < lo {
		x0 = lo
	}
	if x0 > hi {
		x0 = hi
	}

	a, b := lo, hi
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc := f(c)
	fd := f(d)

	maxIter := stop.MaxIterations
	if maxIter <= 0 {
		maxIter = 200
	}
	tol := stop.RelativeScoreDifference
	if tol <= 0 {
		tol = 1e-20
	}

	prevBest := math.Min(fc, fd)
	for i := 0; i < maxIter && math.Abs(b-a) > 1e-12; i++ {
		if fc < fd {
			b = d
			d = c
			fd = fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a = c
			c = d
			fc = fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
		best := math.Min(fc, fd)
		if math.Abs(prevBest-best) < tol {
			prevBest = best
			break
		}
		prevBest = best
	}

	if fc < fd {
		return c, fc
	}
	return d, fd
}

var _ Minimizer = GoldenSection{}
