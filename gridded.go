package ruler

import (
	"iter"
	"log"
)

// MeasureGridded measures movement across the grid cells under the
// segment from a to b, pricing each cell-to-cell step with the penalty
// function.
//
// With a positive opt.StopTarget the walk ends before the first step
// whose penalized cost would push the total past the target; the crossing
// step is discarded entirely rather than applied partially, because a
// token occupies whole cells and cannot stop inside one. Unless
// opt.SkipElevation is set, any elevation change of b not covered by the
// walked cells is accounted for by a second measurement from the final
// cell straight up or down to b's elevation.
func MeasureGridded(g Grid, a, b Point3, mover any, opt Options) Result {
	penalty := opt.CellPenalty
	if penalty == nil {
		penalty = UnitCellPenalty()
	}

	next, stop := iter.Pull(g.CellsAlong(a, b))
	defer stop()
	prev, ok := next()
	if !ok {
		log.Printf("ruler: no grid cells under segment %v → %v on %v grid; returning zero measurement", a, b, g.Topology)
		return Result{}
	}

	var dTotal, dMoveTotal float64
	diagonals := 0
	for {
		cur, ok := next()
		if !ok {
			break
		}
		d := g.stepCost(prev, cur, &diagonals)
		dMove := d * penalty(cur, prev, mover)
		if opt.StopTarget > 0 && dMoveTotal+dMove > opt.StopTarget {
			break
		}
		dTotal += d
		dMoveTotal += dMove
		prev = cur
	}

	res := Result{
		Distance:     dTotal,
		MoveDistance: dMoveTotal,
		End:          g.CellCenter(prev),
		Cell:         prev,
		HasCell:      true,
	}

	if !opt.SkipElevation {
		if k := g.UnitElevation(b.Z); k != prev.K {
			end := prev.AtElevation(k)
			vert := MeasureGridded(g, g.CellCenter(prev), g.CellCenter(end), mover, Options{
				SkipElevation: true,
				CellPenalty:   opt.CellPenalty,
			})
			res.Distance += vert.Distance
			res.MoveDistance += vert.MoveDistance
			res.End = g.CellCenter(end)
			res.Cell = end
		}
	}
	return res
}
