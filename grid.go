package ruler

import (
	"math"

	"github.com/pkg/errors"
)

// Topology describes the canvas layout that measurements operate on.
type Topology int

const (
	// Gridless canvases have no cells; movement is measured over
	// continuous coordinates.
	Gridless Topology = iota
	// Square canvases discretize the plane into axis-aligned square cells.
	Square
	// Hex canvases discretize the plane into pointy-top hexagonal cells
	// addressed by axial coordinates.
	Hex
)

func (t Topology) String() string {
	switch t {
	case Gridless:
		return "gridless"
	case Square:
		return "square"
	case Hex:
		return "hex"
	default:
		return "unknown"
	}
}

// DiagonalRule selects how diagonal steps on a square grid are priced.
type DiagonalRule int

const (
	// DiagonalsEquidistant prices a diagonal step like a straight one
	// (Chebyshev distance).
	DiagonalsEquidistant DiagonalRule = iota
	// DiagonalsExact prices steps by euclidean distance.
	DiagonalsExact
	// DiagonalsRectilinear forbids diagonal shortcuts; a diagonal step
	// costs one cell per axis moved (Manhattan distance).
	DiagonalsRectilinear
	// DiagonalsAlternating prices every second diagonal step at double
	// cost, approximating euclidean distance with integer cell counts.
	DiagonalsAlternating
)

func (r DiagonalRule) String() string {
	switch r {
	case DiagonalsEquidistant:
		return "equidistant"
	case DiagonalsExact:
		return "exact"
	case DiagonalsRectilinear:
		return "rectilinear"
	case DiagonalsAlternating:
		return "alternating"
	default:
		return "unknown"
	}
}

// Grid captures the canvas configuration that measurement depends on.
// Callers resolve it once and pass it explicitly; nothing is read from
// ambient state.
//
// The zero value is a gridless canvas and is not usable; cell sizes must be
// positive. Use [NewGrid] for validation, or construct literals with known
// good values.
type Grid struct {
	Topology Topology

	// CellPixels is the size of one cell in raw canvas coordinates. On
	// hex grids it is the width of a hex across the flats. It also sets
	// the size of one unit-elevation step.
	CellPixels float64

	// CellUnits is the distance one cell represents in grid units (feet,
	// meters, ...).
	CellUnits float64

	// Diagonals prices diagonal steps on square grids. Ignored elsewhere.
	Diagonals DiagonalRule
}

// NewGrid returns a validated grid configuration.
func NewGrid(topology Topology, cellPixels, cellUnits float64) (Grid, error) {
	if topology < Gridless || topology > Hex {
		return Grid{}, errors.Errorf("ruler: unknown topology %d", int(topology))
	}
	if cellPixels <= 0 || math.IsNaN(cellPixels) || math.IsInf(cellPixels, 0) {
		return Grid{}, errors.Errorf("ruler: cell pixel size must be a positive finite number, got %g", cellPixels)
	}
	if cellUnits <= 0 || math.IsNaN(cellUnits) || math.IsInf(cellUnits, 0) {
		return Grid{}, errors.Errorf("ruler: cell unit distance must be a positive finite number, got %g", cellUnits)
	}
	return Grid{
		Topology:   topology,
		CellPixels: cellPixels,
		CellUnits:  cellUnits,
	}, nil
}

// WithDiagonals returns a copy of the grid using the given diagonal rule.
func (g Grid) WithDiagonals(r DiagonalRule) Grid {
	g.Diagonals = r
	return g
}

// PixelsToUnits converts a distance in raw canvas coordinates to grid
// units.
func (g Grid) PixelsToUnits(v float64) float64 {
	return v / g.CellPixels * g.CellUnits
}

// UnitElevation converts a continuous elevation value to the nearest
// discrete elevation index.
func (g Grid) UnitElevation(z float64) int {
	return int(math.Round(z / g.CellPixels))
}

// CellAt returns the cell containing the given point. On gridless
// canvases the plane is still quantized by CellPixels, which keeps the
// conversion total; gridless measurement does not consult cells.
func (g Grid) CellAt(pt Point3) GridCoord3 {
	if g.Topology == Hex {
		return g.hexCellAt(pt)
	}
	return GridCoord3{
		I: int(math.Floor(pt.Y / g.CellPixels)),
		J: int(math.Floor(pt.X / g.CellPixels)),
		K: g.UnitElevation(pt.Z),
	}
}

// CellCenter returns the continuous center point of a cell, with Z set to
// the cell's elevation in pixel-equivalent units.
func (g Grid) CellCenter(c GridCoord3) Point3 {
	if g.Topology == Hex {
		return g.hexCellCenter(c)
	}
	return Point3{
		X: (float64(c.J) + 0.5) * g.CellPixels,
		Y: (float64(c.I) + 0.5) * g.CellPixels,
		Z: float64(c.K) * g.CellPixels,
	}
}

// CellDistance returns the distance between two cells in grid units,
// honoring the grid's diagonal rule. This is the stateless distance; walks
// that use [DiagonalsAlternating] price consecutive diagonals through
// their own counter instead.
func (g Grid) CellDistance(a, b GridCoord3) float64 {
	if g.Topology == Hex {
		return g.hexCellDistance(a, b)
	}
	di := abs(a.I - b.I)
	dj := abs(a.J - b.J)
	dk := abs(a.K - b.K)
	switch g.Diagonals {
	case DiagonalsExact:
		return math.Sqrt(float64(di*di+dj*dj+dk*dk)) * g.CellUnits
	case DiagonalsRectilinear:
		return float64(di+dj+dk) * g.CellUnits
	case DiagonalsAlternating:
		// Moves that advance more than one axis at once are diagonals;
		// every second one costs double.
		hi := max(di, dj, dk)
		diag := di + dj + dk - hi - min(di, dj, dk)
		return float64((hi - diag) + diag + diag/2) * g.CellUnits
	default:
		return float64(max(di, dj, dk)) * g.CellUnits
	}
}

// stepCost prices one step between adjacent cells of a walk. diagonals
// counts the diagonal steps taken so far in this walk and is advanced when
// the alternating rule is in effect.
func (g Grid) stepCost(prev, cur GridCoord3, diagonals *int) float64 {
	if g.Topology == Square && g.Diagonals == DiagonalsAlternating {
		moved := 0
		if cur.I != prev.I {
			moved++
		}
		if cur.J != prev.J {
			moved++
		}
		if cur.K != prev.K {
			moved++
		}
		if moved >= 2 {
			*diagonals++
			if *diagonals%2 == 0 {
				return 2 * g.CellUnits
			}
			return g.CellUnits
		}
	}
	return g.CellDistance(prev, cur)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
