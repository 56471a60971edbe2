package lunar

import (
	"math"
	"time"

	apperrors "github.com/agbru/lunaris/internal/errors"
)

// PhaseResult describes the Moon at one instant.
type PhaseResult struct {
	// Phase is the fractional progress through the synodic month, in [0, 1).
	// 0 is new moon, 0.5 is full moon.
	Phase float64
	// Age is the number of days since the last new moon, in [0, SynodicMonth).
	Age float64
	// Illumination is the lit fraction of the visible disk, in [0, 1].
	Illumination float64
	// Name is the label of the band Phase falls in.
	Name PhaseName
}

// IsWaxing reports whether the result is in the waxing half of the cycle.
func (r PhaseResult) IsWaxing() bool {
	return IsWaxing(r.Phase)
}

// ComputePhase returns the phase of the Moon at t.
//
// The function is total: every time.Time, including instants centuries before
// ReferenceNewMoon, yields a result satisfying the PhaseResult invariants.
func ComputePhase(t time.Time) PhaseResult {
	cycles := ElapsedDays(t) / SynodicMonth
	return fromPhase(normalize(cycles - math.Floor(cycles)))
}

// FromFraction builds a PhaseResult directly from a phase fraction.
// It rejects NaN, infinities and values outside [0, 1).
func FromFraction(phase float64) (PhaseResult, error) {
	if err := ValidatePhase(phase); err != nil {
		return PhaseResult{}, err
	}
	return fromPhase(phase), nil
}

// ValidatePhase returns an error matching apperrors.ErrInvalidArgument unless
// phase is a finite value in [0, 1).
func ValidatePhase(phase float64) error {
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return apperrors.NewValidationError("phase", "must be finite, got %v", phase)
	}
	if phase < 0 || phase >= 1 {
		return apperrors.NewValidationError("phase", "%v is outside [0, 1)", phase)
	}
	return nil
}

// ElapsedDays returns the signed number of days between ReferenceNewMoon and t.
// It works from Unix seconds rather than time.Sub, which saturates about 292
// years away from the reference.
func ElapsedDays(t time.Time) float64 {
	secs := float64(t.Unix()) - float64(ReferenceNewMoon.Unix())
	nanos := float64(t.Nanosecond() - ReferenceNewMoon.Nanosecond())
	return (secs + nanos/1e9) / SecondsPerDay
}

// Illumination returns the lit fraction for a phase, 0.5·(1 − cos 2πφ).
func Illumination(phase float64) float64 {
	return 0.5 * (1 - math.Cos(phase*2*math.Pi))
}

// IsWaxing reports whether phase is in the waxing half, [0, 0.5].
func IsWaxing(phase float64) bool {
	return phase <= 0.5
}

func fromPhase(phase float64) PhaseResult {
	return PhaseResult{
		Phase:        phase,
		Age:          phase * SynodicMonth,
		Illumination: Illumination(phase),
		Name:         NameFor(phase),
	}
}

// normalize folds floating-point spill back into [0, 1). A fractional part can
// come out negative, or round up to exactly 1 for tiny negative cycle counts.
func normalize(phase float64) float64 {
	if phase < 0 {
		phase++
	}
	if phase >= 1 {
		phase = 0
	}
	return phase
}
