package ruler

// PenaltyFn prices terrain for gridless movement: it returns the movement
// multiplier (≥ 0) that applies to the straight segment from a to b for
// the given mover. 1 means unpenalized terrain, values above 1 difficult
// terrain, 0 free movement.
//
// Penalty implementations live outside this package; movers, terrain data
// and their lookup are the caller's concern.
type PenaltyFn func(a, b Point3, mover any) float64

// CellPenaltyFn prices terrain for gridded movement: it returns the
// movement multiplier (≥ 0) for the step that enters cur coming from
// prev. Note the argument order, current cell first.
type CellPenaltyFn func(cur, prev GridCoord3, mover any) float64

// UnitPenalty returns the default gridless penalty function, which
// penalizes nothing.
func UnitPenalty() PenaltyFn {
	return func(a, b Point3, mover any) float64 {
		return 1
	}
}

// UnitCellPenalty returns the default gridded penalty function, which
// penalizes nothing.
func UnitCellPenalty() CellPenaltyFn {
	return func(cur, prev GridCoord3, mover any) float64 {
		return 1
	}
}
