package ruler

import "math"

// Hex cells use axial coordinates (q, r) stored as J and I, with the third
// cube coordinate derived as s = −q − r. Hexes are pointy-top; CellPixels
// is the width across the flats, so the circumradius is CellPixels/√3.

const sqrt3 = 1.7320508075688772

func (g Grid) hexRadius() float64 {
	return g.CellPixels / sqrt3
}

func (g Grid) hexCellAt(pt Point3) GridCoord3 {
	rad := g.hexRadius()
	qf := (sqrt3/3*pt.X - 1.0/3*pt.Y) / rad
	rf := (2.0 / 3 * pt.Y) / rad
	q, r := hexRound(qf, rf)
	return GridCoord3{
		I: r,
		J: q,
		K: g.UnitElevation(pt.Z),
	}
}

func (g Grid) hexCellCenter(c GridCoord3) Point3 {
	rad := g.hexRadius()
	q := float64(c.J)
	r := float64(c.I)
	return Point3{
		X: rad * (sqrt3*q + sqrt3/2*r),
		Y: rad * (3.0 / 2 * r),
		Z: float64(c.K) * g.CellPixels,
	}
}

// hexRound rounds fractional axial coordinates to the nearest hex by
// rounding in cube space and re-deriving the axis with the largest
// rounding error.
func hexRound(qf, rf float64) (int, int) {
	sf := -qf - rf
	q := math.Round(qf)
	r := math.Round(rf)
	s := math.Round(sf)

	dq := math.Abs(q - qf)
	dr := math.Abs(r - rf)
	ds := math.Abs(s - sf)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return int(q), int(r)
}

// hexPlanarDistance returns the number of hex steps between two cells,
// ignoring elevation.
func hexPlanarDistance(a, b GridCoord3) int {
	dq := abs(a.J - b.J)
	dr := abs(a.I - b.I)
	ds := abs(a.S() - b.S())
	return (dq + dr + ds) / 2
}

func (g Grid) hexCellDistance(a, b GridCoord3) float64 {
	planar := hexPlanarDistance(a, b)
	dk := abs(a.K - b.K)
	switch g.Diagonals {
	case DiagonalsExact:
		return math.Sqrt(float64(planar*planar+dk*dk)) * g.CellUnits
	case DiagonalsRectilinear:
		return float64(planar+dk) * g.CellUnits
	default:
		// Elevation moves combine with planar ones like another diagonal
		// axis.
		return float64(max(planar, dk)) * g.CellUnits
	}
}
