package terminator

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/lunaris/internal/lunar"
)

// sampledLitFraction estimates the lit fraction by testing an n×n grid over
// the disk's bounding box.
func sampledLitFraction(g Geometry, n int) float64 {
	var lit, disk int
	step := 2 * g.Radius / float64(n)
	for i := range n {
		for j := range n {
			p := Point{
				X: g.Center.X - g.Radius + (float64(i)+0.5)*step,
				Y: g.Center.Y - g.Radius + (float64(j)+0.5)*step,
			}
			dx, dy := p.X-g.Center.X, p.Y-g.Center.Y
			if dx*dx+dy*dy > g.Radius*g.Radius {
				continue
			}
			disk++
			if g.Contains(p) {
				lit++
			}
		}
	}
	return float64(lit) / float64(disk)
}

func TestDegenerateNewMoon(t *testing.T) {
	t.Parallel()
	g := mustBuild(t, 0)
	if g.LitArea() > 1e-9 {
		t.Errorf("new moon LitArea = %v, want 0", g.LitArea())
	}
	if f := sampledLitFraction(g, 200); f != 0 {
		t.Errorf("new moon sampled lit fraction = %v, want 0", f)
	}
}

func TestDegenerateFullMoon(t *testing.T) {
	t.Parallel()
	g := mustBuild(t, 0.5)
	if math.Abs(g.LitArea()-g.DiskArea())/g.DiskArea() > 0.01 {
		t.Errorf("full moon LitArea = %v, want ≈ %v", g.LitArea(), g.DiskArea())
	}
	if f := sampledLitFraction(g, 200); f < 0.99 {
		t.Errorf("full moon sampled lit fraction = %v, want ≥ 0.99", f)
	}
}

func TestContains_AgreesWithLitArea(t *testing.T) {
	t.Parallel()
	for _, phase := range []float64{0.02, 0.1, 0.2, 0.25, 0.33, 0.45, 0.55, 0.7, 0.75, 0.85, 0.98} {
		g := mustBuild(t, phase)
		sampled := sampledLitFraction(g, 300)
		if math.Abs(sampled-g.LitFraction()) > 0.01 {
			t.Errorf("phase %v: sampled %v, analytic %v", phase, sampled, g.LitFraction())
		}
	}
}

func TestContains_LitSide(t *testing.T) {
	t.Parallel()
	right := Point{X: testCenter.X + 90, Y: testCenter.Y}
	left := Point{X: testCenter.X - 90, Y: testCenter.Y}
	outside := Point{X: testCenter.X + 150, Y: testCenter.Y}

	waxing := mustBuild(t, 0.15)
	if !waxing.Contains(right) || waxing.Contains(left) {
		t.Error("waxing crescent should be lit on the right limb only")
	}
	waning := mustBuild(t, 0.85)
	if waning.Contains(right) || !waning.Contains(left) {
		t.Error("waning crescent should be lit on the left limb only")
	}
	if mustBuild(t, 0.5).Contains(outside) {
		t.Error("points outside the disk are never lit")
	}
}

// TestLitFractionMatchesIllumination_PropertyBased verifies that the area
// enclosed by the outline is the calculator's illumination.
//
//	LitArea / πR² = 0.5·(1 − cos 2πφ)
func TestLitFractionMatchesIllumination_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("lit fraction equals illumination", prop.ForAll(
		func(phase, radius float64) bool {
			g, err := Build(phase, radius, Point{})
			if err != nil {
				return false
			}
			return math.Abs(g.LitFraction()-lunar.Illumination(phase)) < 1e-9
		},
		gen.Float64Range(0, 0.999999),
		gen.Float64Range(0.5, 2000),
	))

	properties.Property("semi-axis never exceeds the radius", prop.ForAll(
		func(phase, radius float64) bool {
			g, err := Build(phase, radius, Point{X: -radius, Y: radius})
			return err == nil && g.SemiAxisX >= 0 && g.SemiAxisX <= radius
		},
		gen.Float64Range(0, 0.999999),
		gen.Float64Range(0.5, 2000),
	))

	properties.TestingRun(t)
}
