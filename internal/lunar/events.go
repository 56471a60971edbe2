package lunar

import (
	"math"
	"sort"
	"time"

	apperrors "github.com/agbru/lunaris/internal/errors"
)

// PhaseEvent is the mean-cycle instant of one principal phase.
type PhaseEvent struct {
	Name PhaseName
	Time time.Time
}

// principalFractions maps the four principal phases to their nominal fraction.
var principalFractions = map[PhaseName]float64{
	NewMoon:      NewMoonFraction,
	FirstQuarter: FirstQuarterFraction,
	FullMoon:     FullMoonFraction,
	LastQuarter:  LastQuarterFraction,
}

// IsPrincipal reports whether n is new moon, a quarter, or full moon.
func (n PhaseName) IsPrincipal() bool {
	_, ok := principalFractions[n]
	return ok
}

// NextPhase returns the first instant at or after from when the mean phase
// equals the nominal fraction of name. Only principal phases are accepted.
func NextPhase(from time.Time, name PhaseName) (time.Time, error) {
	fraction, ok := principalFractions[name]
	if !ok {
		return time.Time{}, apperrors.NewValidationError("phase", "%s is not a principal phase", name)
	}
	cycles := ElapsedDays(from) / SynodicMonth
	k := math.Ceil(cycles - fraction)
	// The float cycle count can sit a hair off an event instant either way,
	// so pick the answer by comparing instants.
	if prev := instantAt(k - 1 + fraction); !prev.Before(from) {
		return prev, nil
	}
	t := instantAt(k + fraction)
	if t.Before(from) {
		t = instantAt(k + 1 + fraction)
	}
	return t, nil
}

// PrincipalPhases lists every principal phase event in [from, to), in time order.
func PrincipalPhases(from, to time.Time) ([]PhaseEvent, error) {
	if to.Before(from) {
		return nil, apperrors.NewValidationError("to", "%s is before %s", to.Format(time.RFC3339), from.Format(time.RFC3339))
	}
	var events []PhaseEvent
	for name := range principalFractions {
		t, _ := NextPhase(from, name)
		for t.Before(to) {
			events = append(events, PhaseEvent{Name: name, Time: t})
			t, _ = NextPhase(t.Add(time.Second), name)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events, nil
}

// instantAt converts a cycle count since ReferenceNewMoon to an instant.
func instantAt(cycles float64) time.Time {
	secs := cycles * SynodicMonth * SecondsPerDay
	whole := math.Floor(secs)
	nanos := math.Round((secs - whole) * 1e9)
	return time.Unix(ReferenceNewMoon.Unix()+int64(whole), int64(nanos)).UTC()
}
