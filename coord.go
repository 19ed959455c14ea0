package ruler

import "fmt"

// GridCoord3 is the address of a single grid cell, including its elevation.
//
// On square grids, I is the row and J the column. On hex grids, I and J are
// the axial coordinates r and q (see [GridCoord3.S] for the derived cube
// coordinate). K is the discrete elevation index, in unit-elevation steps
// above the zero plane; see [Grid.UnitElevation].
type GridCoord3 struct {
	I int
	J int
	K int
}

// Coord3 returns the grid coordinate {i, j, k}.
func Coord3(i, j, k int) GridCoord3 {
	return GridCoord3{I: i, J: j, K: k}
}

func (c GridCoord3) String() string {
	return fmt.Sprintf("[%d, %d, %d]", c.I, c.J, c.K)
}

// Offset returns the coordinate translated by (di, dj, dk).
func (c GridCoord3) Offset(di, dj, dk int) GridCoord3 {
	return GridCoord3{
		I: c.I + di,
		J: c.J + dj,
		K: c.K + dk,
	}
}

// AtElevation returns the same planar cell with its elevation index set
// to k.
func (c GridCoord3) AtElevation(k int) GridCoord3 {
	c.K = k
	return c
}

// S returns the implicit third cube coordinate of a hex cell,
// s = −q − r = −J − I. Meaningless on square grids.
func (c GridCoord3) S() int {
	return -c.J - c.I
}
