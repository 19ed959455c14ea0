package ruler

import (
	"iter"
	"math"
)

// CellsAlong returns the ordered sequence of grid cells the 3D segment
// from a to b passes through. The sequence is finite, starts at the cell
// containing a, ends at the cell containing b, and never yields the same
// cell twice in a row.
//
// On a gridless grid the sequence is empty; gridless movement has no cells
// to enumerate.
func (g Grid) CellsAlong(a, b Point3) iter.Seq[GridCoord3] {
	switch g.Topology {
	case Square:
		return lineCells(g.CellAt(a), g.CellAt(b))
	case Hex:
		return g.hexLineCells(g.CellAt(a), g.CellAt(b))
	default:
		return func(yield func(GridCoord3) bool) {}
	}
}

// lineCells rasterizes a 3D line between cells with a three-axis Bresenham
// walk. Every step advances the dominant axis by one cell and each other
// axis by at most one.
func lineCells(from, to GridCoord3) iter.Seq[GridCoord3] {
	return func(yield func(GridCoord3) bool) {
		if !yield(from) {
			return
		}

		di := abs(to.I - from.I)
		dj := abs(to.J - from.J)
		dk := abs(to.K - from.K)
		si := sign(to.I - from.I)
		sj := sign(to.J - from.J)
		sk := sign(to.K - from.K)

		cur := from
		switch {
		case dj >= di && dj >= dk:
			e1 := 2*di - dj
			e2 := 2*dk - dj
			for cur.J != to.J {
				cur.J += sj
				if e1 >= 0 {
					cur.I += si
					e1 -= 2 * dj
				}
				if e2 >= 0 {
					cur.K += sk
					e2 -= 2 * dj
				}
				e1 += 2 * di
				e2 += 2 * dk
				if !yield(cur) {
					return
				}
			}
		case di >= dj && di >= dk:
			e1 := 2*dj - di
			e2 := 2*dk - di
			for cur.I != to.I {
				cur.I += si
				if e1 >= 0 {
					cur.J += sj
					e1 -= 2 * di
				}
				if e2 >= 0 {
					cur.K += sk
					e2 -= 2 * di
				}
				e1 += 2 * dj
				e2 += 2 * dk
				if !yield(cur) {
					return
				}
			}
		default:
			e1 := 2*di - dk
			e2 := 2*dj - dk
			for cur.K != to.K {
				cur.K += sk
				if e1 >= 0 {
					cur.I += si
					e1 -= 2 * dk
				}
				if e2 >= 0 {
					cur.J += sj
					e2 -= 2 * dk
				}
				e1 += 2 * di
				e2 += 2 * dj
				if !yield(cur) {
					return
				}
			}
		}
	}
}

// hexLineCells rasterizes a line between hex cells by sampling the cube
// lerp between their centers and rounding each sample to the nearest hex.
// Elevation is interpolated alongside; the sample count covers whichever
// of the planar distance and the elevation delta is larger, so no step
// changes K by more than one.
func (g Grid) hexLineCells(from, to GridCoord3) iter.Seq[GridCoord3] {
	return func(yield func(GridCoord3) bool) {
		if !yield(from) {
			return
		}
		n := max(hexPlanarDistance(from, to), abs(to.K-from.K))
		prev := from
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			qf := lerp(float64(from.J), float64(to.J), t)
			rf := lerp(float64(from.I), float64(to.I), t)
			q, r := hexRound(qf, rf)
			c := GridCoord3{
				I: r,
				J: q,
				K: int(math.Round(lerp(float64(from.K), float64(to.K), t))),
			}
			if c == prev {
				continue
			}
			if !yield(c) {
				return
			}
			prev = c
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
