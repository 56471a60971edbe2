package terminator

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/agbru/lunaris/internal/errors"
)

var testCenter = Point{X: 160, Y: 160}

func mustBuild(t *testing.T, phase float64) Geometry {
	t.Helper()
	g, err := Build(phase, 100, testCenter)
	if err != nil {
		t.Fatalf("Build(%v) unexpected error: %v", phase, err)
	}
	return g
}

func TestBuild_Quadrants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		phase    float64
		outer    Side
		sweep    SweepFlag
		crescent bool
	}{
		{"new moon", 0, Right, SweepBulgeRight, true},
		{"waxing crescent", 0.1, Right, SweepBulgeRight, true},
		{"just before first quarter", 0.2499, Right, SweepBulgeRight, true},
		{"first quarter", 0.25, Right, SweepBulgeLeft, false},
		{"waxing gibbous", 0.4, Right, SweepBulgeLeft, false},
		{"full moon", 0.5, Right, SweepBulgeLeft, false},
		{"just after full", 0.5001, Left, SweepBulgeRight, false},
		{"waning gibbous", 0.6, Left, SweepBulgeRight, false},
		{"last quarter", 0.75, Left, SweepBulgeLeft, true},
		{"waning crescent", 0.9, Left, SweepBulgeLeft, true},
		{"end of cycle", 0.9999, Left, SweepBulgeLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustBuild(t, tt.phase)
			if g.Outer != tt.outer {
				t.Errorf("Outer = %s, want %s", g.Outer, tt.outer)
			}
			if g.InnerSweep != tt.sweep {
				t.Errorf("InnerSweep = %d, want %d", g.InnerSweep, tt.sweep)
			}
			if g.IsCrescent() != tt.crescent {
				t.Errorf("IsCrescent = %v, want %v", g.IsCrescent(), tt.crescent)
			}
			if g.Phase() != tt.phase {
				t.Errorf("Phase = %v, want %v", g.Phase(), tt.phase)
			}
		})
	}
}

func TestBuild_SemiAxis(t *testing.T) {
	t.Parallel()
	tests := []struct {
		phase float64
		want  float64
	}{
		{0, 100},
		{0.125, 100 * math.Sqrt2 / 2},
		{0.25, 0},
		{0.5, 100},
		{0.75, 0},
		{0.875, 100 * math.Sqrt2 / 2},
	}
	for _, tt := range tests {
		g := mustBuild(t, tt.phase)
		if math.Abs(g.SemiAxisX-tt.want) > 1e-9 {
			t.Errorf("phase %v: SemiAxisX = %v, want %v", tt.phase, g.SemiAxisX, tt.want)
		}
		if g.SemiAxisX < 0 {
			t.Errorf("phase %v: SemiAxisX negative", tt.phase)
		}
	}
}

func TestBuild_ContinuousAcrossQuarters(t *testing.T) {
	t.Parallel()
	const eps = 1e-9
	for _, q := range []float64{0.25, 0.75} {
		below := SemiAxis(q-eps, 100)
		at := SemiAxis(q, 100)
		above := SemiAxis(q+eps, 100)
		if math.Abs(below-at) > 1e-6 || math.Abs(above-at) > 1e-6 {
			t.Errorf("SemiAxis jumps at %v: %v, %v, %v", q, below, at, above)
		}
		gBelow, gAbove := mustBuild(t, q-eps), mustBuild(t, q)
		if gBelow.InnerSweep == gAbove.InnerSweep {
			t.Errorf("sweep flag should flip at %v", q)
		}
		if math.Abs(gBelow.LitFraction()-gAbove.LitFraction()) > 1e-6 {
			t.Errorf("lit fraction jumps at %v: %v vs %v", q, gBelow.LitFraction(), gAbove.LitFraction())
		}
	}
}

func TestBuild_Poles(t *testing.T) {
	t.Parallel()
	g := mustBuild(t, 0.3)
	if got := g.TopPole(); got != (Point{X: 160, Y: 60}) {
		t.Errorf("TopPole = %+v", got)
	}
	if got := g.BottomPole(); got != (Point{X: 160, Y: 260}) {
		t.Errorf("BottomPole = %+v", got)
	}
}

func TestBuild_RejectsInvalidInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		phase  float64
		radius float64
		center Point
	}{
		{"NaN phase", math.NaN(), 100, testCenter},
		{"phase one", 1, 100, testCenter},
		{"negative phase", -0.01, 100, testCenter},
		{"zero radius", 0.3, 0, testCenter},
		{"negative radius", 0.3, -5, testCenter},
		{"NaN radius", 0.3, math.NaN(), testCenter},
		{"infinite radius", 0.3, math.Inf(1), testCenter},
		{"NaN center", 0.3, 100, Point{X: math.NaN(), Y: 0}},
		{"infinite center", 0.3, 100, Point{X: 0, Y: math.Inf(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Build(tt.phase, tt.radius, tt.center)
			if !errors.Is(err, apperrors.ErrInvalidArgument) {
				t.Errorf("Build error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestSide_String(t *testing.T) {
	t.Parallel()
	if Right.String() != "right" || Left.String() != "left" {
		t.Errorf("Side strings = %q, %q", Right, Left)
	}
}
