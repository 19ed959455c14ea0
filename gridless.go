package ruler

import (
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// maxBreakpointIterations caps the bisection in [gridlessBreakpoint].
	maxBreakpointIterations = 20

	// breakpointTolerance is the absolute tolerance, in grid units, at
	// which the bisection accepts a candidate breakpoint.
	breakpointTolerance = 0.01
)

// MeasureGridless measures continuous-space movement from a to b.
//
// With a positive opt.StopTarget, the end point is first moved to the
// breakpoint where the penalized distance reaches the target; unless
// opt.SkipElevation is set, the original elevation of b is restored onto
// the breakpoint afterwards, so elevation movement continues past the 2D
// stop point. The penalty function is then evaluated once over the final
// segment: a single multiplier applies uniformly to a straight segment.
func MeasureGridless(g Grid, a, b Point3, mover any, opt Options) Result {
	penalty := opt.Penalty
	if penalty == nil {
		penalty = UnitPenalty()
	}

	if opt.StopTarget > 0 {
		z := b.Z
		b = gridlessBreakpoint(g, a, b, mover, opt.StopTarget, penalty)
		if !opt.SkipElevation {
			b.Z = z
		}
	}

	d := g.PixelsToUnits(a.Distance(b))
	return Result{
		Distance:     d,
		MoveDistance: d * penalty(a, b, mover),
		End:          b,
	}
}

// gridlessBreakpoint finds the point along the segment a→b where the
// accumulated penalized distance first reaches target.
//
// Penalties may vary non-linearly along a path, so no closed-form inverse
// exists; instead the parameter is bisected. Physical distance grows
// monotonically with the parameter and penalties are non-negative, so the
// penalized distance is non-decreasing and bisection converges. If the
// iteration cap is hit before the tolerance, the last candidate is
// accepted.
func gridlessBreakpoint(g Grid, a, b Point3, mover any, target float64, penalty PenaltyFn) Point3 {
	sub := Options{Penalty: penalty, SkipElevation: true}
	full := MeasureGridless(g, a, b, mover, sub).MoveDistance
	if target <= 0 {
		return a
	}
	if target >= full {
		return b
	}

	t := target / full
	lo, hi := 0.0, 1.0
	best := a.Lerp(b, t)
	for range maxBreakpointIterations {
		best = a.Lerp(b, t)
		d := MeasureGridless(g, a, best, mover, sub).MoveDistance
		if scalar.EqualWithinAbs(d, target, breakpointTolerance) {
			break
		}
		if d > target {
			hi = t
			t -= (t - lo) / 2
		} else {
			lo = t
			t += (hi - t) / 2
		}
	}
	return best
}
