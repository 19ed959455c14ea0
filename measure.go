package ruler

// Options configures a measurement. The zero value selects the strategy
// from the grid's topology, applies no stop target, completes elevation
// movement, and penalizes nothing.
type Options struct {
	// Gridless forces the gridless strategy even on a gridded canvas.
	Gridless bool

	// StopTarget is a penalized-distance budget in grid units. When
	// positive, measurement halts early once continuing would exceed it
	// and reports the truncation point. Zero or negative disables the
	// stop.
	StopTarget float64

	// SkipElevation stops elevation movement at the truncation point
	// instead of carrying the remaining elevation change past it. It
	// corresponds to useAllElevation=false in the original options.
	SkipElevation bool

	// Penalty prices terrain for gridless measurement. Nil means
	// [UnitPenalty].
	Penalty PenaltyFn

	// CellPenalty prices terrain for gridded measurement. Nil means
	// [UnitCellPenalty].
	CellPenalty CellPenaltyFn
}

// Result is the outcome of a measurement.
type Result struct {
	// Distance is the unpenalized physical length in grid units.
	Distance float64

	// MoveDistance is the penalty-weighted length in grid units: the sum
	// of each segment's physical length times its penalty multiplier.
	MoveDistance float64

	// End is the continuous point the measurement stopped at. It differs
	// from the requested end point when a stop target was hit. Gridded
	// measurement reports the center of the final cell.
	End Point3

	// Cell is the final cell of a gridded measurement; HasCell reports
	// whether one was reached. Gridless measurement never sets it, and an
	// empty rasterization leaves it unset.
	Cell    GridCoord3
	HasCell bool
}

// Measure computes the physical distance and move distance from a to b
// for the given mover. It routes to [MeasureGridless] on gridless
// canvases or when opt.Gridless is set, and to [MeasureGridded]
// otherwise; all other options pass through unchanged.
func Measure(g Grid, a, b Point3, mover any, opt Options) Result {
	if opt.Gridless || g.Topology == Gridless {
		return MeasureGridless(g, a, b, mover, opt)
	}
	return MeasureGridded(g, a, b, mover, opt)
}
