package ruler

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats/scalar"
)

var gridlessGrid = Grid{Topology: Gridless, CellPixels: 100, CellUnits: 5}

func constPenalty(mult float64) PenaltyFn {
	return func(a, b Point3, mover any) float64 {
		return mult
	}
}

func TestGridlessDistance(t *testing.T) {
	res := MeasureGridless(gridlessGrid, Pt3(0, 0, 0), Pt3(300, 400, 0), nil, Options{})
	diff(t, 25.0, res.Distance)
	diff(t, 25.0, res.MoveDistance)
	diff(t, Pt3(300, 400, 0), res.End)
	if res.HasCell {
		t.Error("gridless measurement should not report a cell")
	}
}

func TestGridlessDistance3D(t *testing.T) {
	// Elevation counts toward physical distance.
	res := MeasureGridless(gridlessGrid, Pt3(0, 0, 0), Pt3(600, 0, 800), nil, Options{})
	diff(t, 50.0, res.Distance)
}

func TestGridlessZeroLength(t *testing.T) {
	a := Pt3(120, 340, 50)
	res := MeasureGridless(gridlessGrid, a, a, nil, Options{Penalty: constPenalty(3)})
	diff(t, 0.0, res.Distance)
	diff(t, 0.0, res.MoveDistance)
	diff(t, a, res.End)
}

func TestGridlessPenaltyPassThrough(t *testing.T) {
	res := MeasureGridless(gridlessGrid, Pt3(0, 0, 0), Pt3(1000, 0, 0), nil, Options{Penalty: constPenalty(2)})
	diff(t, 50.0, res.Distance)
	diff(t, 100.0, res.MoveDistance)

	res = MeasureGridless(gridlessGrid, Pt3(0, 0, 0), Pt3(1000, 0, 0), nil, Options{Penalty: constPenalty(0)})
	diff(t, 50.0, res.Distance)
	diff(t, 0.0, res.MoveDistance)
}

func TestGridlessStopTarget(t *testing.T) {
	// Constant penalty 2 over 50 units of physical length: the full move
	// distance is 100; a stop target of 50 must land halfway.
	res := MeasureGridless(gridlessGrid, Pt3(0, 0, 0), Pt3(1000, 0, 0), nil, Options{
		Penalty:    constPenalty(2),
		StopTarget: 50,
	})
	diff(t, Pt3(500, 0, 0), res.End, cmpopts.EquateApprox(0, 1))
	if !scalar.EqualWithinAbs(res.MoveDistance, 50, breakpointTolerance) {
		t.Errorf("move distance %v not within tolerance of stop target 50", res.MoveDistance)
	}
}

func TestGridlessStopTargetBisection(t *testing.T) {
	// A penalty that grows linearly with the endpoint makes the first
	// parametric guess miss, forcing the bisection to work: solving
	// 50t(1+t) = 50 gives t = (√5−1)/2.
	penalty := func(a, b Point3, mover any) float64 {
		return 1 + b.X/1000
	}
	res := MeasureGridless(gridlessGrid, Pt3(0, 0, 0), Pt3(1000, 0, 0), nil, Options{
		Penalty:    penalty,
		StopTarget: 50,
	})
	want := (math.Sqrt(5) - 1) / 2 * 1000
	if math.Abs(res.End.X-want) > 1 {
		t.Errorf("breakpoint at x=%v, want ≈%v", res.End.X, want)
	}
	if !scalar.EqualWithinAbs(res.MoveDistance, 50, breakpointTolerance) {
		t.Errorf("move distance %v not within tolerance of stop target 50", res.MoveDistance)
	}
}

func TestGridlessStopTargetBounds(t *testing.T) {
	a := Pt3(0, 0, 0)
	b := Pt3(1000, 0, 0)
	// A target at or above the full move distance returns the segment
	// unchanged.
	res := MeasureGridless(gridlessGrid, a, b, nil, Options{StopTarget: 50})
	diff(t, b, res.End)
	res = MeasureGridless(gridlessGrid, a, b, nil, Options{StopTarget: 1000})
	diff(t, b, res.End)
}

func TestGridlessStopTargetElevation(t *testing.T) {
	a := Pt3(0, 0, 0)
	b := Pt3(1000, 0, 300)

	// By default the full elevation change is kept past the stop point.
	res := MeasureGridless(gridlessGrid, a, b, nil, Options{StopTarget: 26.1})
	diff(t, 300.0, res.End.Z)
	if res.End.X >= 1000 || res.End.X <= 0 {
		t.Errorf("breakpoint x=%v not inside the segment", res.End.X)
	}

	// SkipElevation truncates elevation along with the rest.
	res = MeasureGridless(gridlessGrid, a, b, nil, Options{StopTarget: 26.1, SkipElevation: true})
	if res.End.Z >= 300 {
		t.Errorf("elevation %v not truncated", res.End.Z)
	}
}

func TestGridlessMonotonicity(t *testing.T) {
	a := Pt3(0, 0, 0)
	b := Pt3(730, 410, 160)
	penalty := func(_, p Point3, mover any) float64 {
		// Vary with position to make the property non-trivial.
		return 1 + p.X/1000
	}
	last := 0.0
	for i := 0; i <= 20; i++ {
		tt := float64(i) / 20
		res := MeasureGridless(gridlessGrid, a, a.Lerp(b, tt), nil, Options{Penalty: penalty})
		if res.MoveDistance < last-1e-9 {
			t.Fatalf("move distance decreased from %v to %v at t=%v", last, res.MoveDistance, tt)
		}
		last = res.MoveDistance
	}
}
