// Package terminator builds the lit-region outline of a stylized Moon disk.
//
// The outline is two arcs sharing the disk's poles: an outer semicircle on the
// lit side, and an inner half-ellipse (the terminator) whose horizontal
// semi-axis is |R·cos 2πφ|. Whether the inner arc bulges toward or away from
// the outer arc decides crescent versus gibbous.
package terminator

import (
	"math"

	apperrors "github.com/agbru/lunaris/internal/errors"
	"github.com/agbru/lunaris/internal/lunar"
)

// Point is a position in the rendering surface's coordinate system, with y
// growing downward as in SVG and terminal grids.
type Point struct {
	X, Y float64
}

// Side is a horizontal direction relative to the disk center.
type Side int

const (
	Right Side = iota
	Left
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// sign returns +1 for Right and −1 for Left.
func (s Side) sign() float64 {
	if s == Left {
		return -1
	}
	return 1
}

// SweepFlag is the SVG elliptical-arc sweep flag of the inner arc drawn from
// the bottom pole to the top pole: 0 bulges right, 1 bulges left.
type SweepFlag int

const (
	SweepBulgeRight SweepFlag = 0
	SweepBulgeLeft  SweepFlag = 1
)

// Geometry describes the lit region for one phase. It is a value; build a new
// one for every frame.
type Geometry struct {
	// Center is the disk center.
	Center Point
	// Radius is the disk radius, also the vertical semi-axis of the terminator.
	Radius float64
	// SemiAxisX is the horizontal semi-axis of the terminator ellipse.
	SemiAxisX float64
	// Outer is the side the outer semicircle, and so the lit limb, lies on.
	Outer Side
	// InnerSweep is the sweep flag of the terminator arc.
	InnerSweep SweepFlag

	phase float64
}

// quadrant holds the arc orientation for one quarter of the cycle.
type quadrant struct {
	outer Side
	sweep SweepFlag
}

// quadrants is indexed by [waning][past the quarter]. The sweep flips at each
// quarter, which is where crescent turns to gibbous and back.
var quadrants = [2][2]quadrant{
	{ // waxing: lit limb on the right
		{Right, SweepBulgeRight}, // crescent, phase < 0.25
		{Right, SweepBulgeLeft},  // gibbous, 0.25 ≤ phase ≤ 0.5
	},
	{ // waning: lit limb on the left
		{Left, SweepBulgeRight}, // gibbous, 0.5 < phase < 0.75
		{Left, SweepBulgeLeft},  // crescent, phase ≥ 0.75
	},
}

// quadrantFor returns the table indices for phase.
func quadrantFor(phase float64) (waning, pastQuarter int) {
	if lunar.IsWaxing(phase) {
		if phase >= lunar.FirstQuarterFraction {
			pastQuarter = 1
		}
		return 0, pastQuarter
	}
	if phase >= lunar.LastQuarterFraction {
		pastQuarter = 1
	}
	return 1, pastQuarter
}

// Build returns the lit-region geometry for phase on a disk of the given
// radius and center. It fails with apperrors.ErrInvalidArgument when phase is
// not a finite value in [0, 1), radius is not finite and positive, or center
// is not finite.
func Build(phase, radius float64, center Point) (Geometry, error) {
	if err := lunar.ValidatePhase(phase); err != nil {
		return Geometry{}, err
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return Geometry{}, apperrors.NewValidationError("radius", "must be finite and positive, got %v", radius)
	}
	if !finite(center.X) || !finite(center.Y) {
		return Geometry{}, apperrors.NewValidationError("center", "must be finite, got (%v, %v)", center.X, center.Y)
	}

	waning, past := quadrantFor(phase)
	q := quadrants[waning][past]
	return Geometry{
		Center:     center,
		Radius:     radius,
		SemiAxisX:  SemiAxis(phase, radius),
		Outer:      q.outer,
		InnerSweep: q.sweep,
		phase:      phase,
	}, nil
}

// SemiAxis returns the terminator's horizontal semi-axis, |radius·cos 2πφ|.
// It is continuous in phase, including across the quarters.
func SemiAxis(phase, radius float64) float64 {
	return math.Abs(radius * math.Cos(phase*2*math.Pi))
}

// Phase returns the phase the geometry was built for.
func (g Geometry) Phase() float64 { return g.phase }

// InnerBulge returns the side the terminator arc bulges toward.
func (g Geometry) InnerBulge() Side {
	if g.InnerSweep == SweepBulgeLeft {
		return Left
	}
	return Right
}

// IsCrescent reports whether the arcs bulge the same way, leaving a lit
// region no larger than half the disk.
func (g Geometry) IsCrescent() bool {
	return g.InnerBulge() == g.Outer
}

// TopPole returns the shared start point of the outline.
func (g Geometry) TopPole() Point {
	return Point{X: g.Center.X, Y: g.Center.Y - g.Radius}
}

// BottomPole returns the point where the outer arc hands over to the terminator.
func (g Geometry) BottomPole() Point {
	return Point{X: g.Center.X, Y: g.Center.Y + g.Radius}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
