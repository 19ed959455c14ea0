// Package ruler measures token movement across a tabletop canvas,
// combining raw physical distance with terrain-dependent movement
// penalties.
//
// # Strategies
//
// Two measurement strategies exist, one per canvas topology.
// [MeasureGridless] works on continuous coordinates: a single penalty
// multiplier applies to a straight segment, and an early stop target is
// resolved by bisecting the segment parameter until the penalized
// distance matches the target. [MeasureGridded] works on the discrete
// cells under the segment: it walks them pairwise, pricing each step with
// the grid's diagonal rule and the per-cell penalty, and stops before the
// step that would exceed the target. [Measure] routes to one of the two
// based on [Grid.Topology], unless forced gridless via [Options].
//
// Both strategies return a [Result] holding the unpenalized physical
// distance, the penalty-weighted move distance, and the point or cell
// where measurement actually stopped.
//
// # Grids
//
// [Grid] carries the canvas configuration: topology (gridless, square, or
// pointy-top hex), the cell size in raw canvas coordinates, the distance
// a cell represents in grid units, and the diagonal pricing rule for
// square grids. It is an explicit value passed to every operation; the
// package reads no ambient canvas state. Elevation is a first-class third
// axis: continuous Z coordinates quantize to discrete elevation indices
// in steps of one cell size, and gridded measurement reconciles any
// elevation change the planar walk did not cover.
//
// # Penalties
//
// Terrain pricing is an injected collaborator: a [PenaltyFn] maps a
// straight segment and a mover to a multiplier, a [CellPenaltyFn] does
// the same for a step between adjacent cells. The package ships only the
// unit defaults; what terrain means and how movers interact with it is
// the caller's concern.
//
// # Iterators
//
// Cell sequences are exposed as iter.Seq values; [Grid.CellsAlong]
// rasterizes a 3D segment into the ordered cells it crosses without
// allocating the sequence.
package ruler
