// Package animation drives the displayed instant toward the instant the user
// asked for. The target moves on user input or, while playing, at a constant
// rate; the visual instant follows it with exponential smoothing.
package animation

//go:generate mockgen -source=smoother.go -destination=mocks/mock_clock.go -package=mocks

import (
	"math"
	"time"
)

const (
	// DefaultSpeed is the playback rate in days per second.
	DefaultSpeed = 2.0
	// DefaultSmoothing is the fraction of the gap closed per reference frame.
	DefaultSmoothing = 0.1
	// ReferenceFrameRate is the frame rate DefaultSmoothing is tuned for.
	ReferenceFrameRate = 60.0
	// SnapThreshold is the gap below which the visual instant jumps to the target.
	SnapThreshold = time.Minute
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Option configures a Smoother.
type Option func(*Smoother)

// WithSpeed sets the playback rate in days per second.
func WithSpeed(daysPerSecond float64) Option {
	return func(s *Smoother) { s.speed = daysPerSecond }
}

// WithSmoothing sets the fraction of the remaining gap closed per 60 Hz frame.
// Values at or above 1 make the visual instant track the target exactly.
func WithSmoothing(factor float64) Option {
	return func(s *Smoother) { s.smoothing = factor }
}

// WithLocation sets the time zone calendar controls operate in.
func WithLocation(loc *time.Location) Option {
	return func(s *Smoother) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithStart sets the initial instant instead of the clock's current time.
func WithStart(t time.Time) Option {
	return func(s *Smoother) { s.start = t }
}

// Smoother holds the target and visual instants and the playback flag. It is
// not safe for concurrent use; the UI loop owns it.
type Smoother struct {
	clock     Clock
	speed     float64
	smoothing float64
	loc       *time.Location
	start     time.Time

	target  time.Time
	visual  time.Time
	playing bool
}

// New returns a paused Smoother whose target and visual instants both start
// at the clock's current time.
func New(clock Clock, opts ...Option) *Smoother {
	if clock == nil {
		clock = SystemClock{}
	}
	s := &Smoother{
		clock:     clock,
		speed:     DefaultSpeed,
		smoothing: DefaultSmoothing,
		loc:       time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.start.IsZero() {
		s.start = clock.Now()
	}
	s.target = s.start.In(s.loc)
	s.visual = s.target
	return s
}

// Visual returns the instant being displayed.
func (s *Smoother) Visual() time.Time { return s.visual }

// Target returns the instant the display is heading toward.
func (s *Smoother) Target() time.Time { return s.target }

// Playing reports whether the target advances on its own.
func (s *Smoother) Playing() bool { return s.playing }

// Settled reports whether the visual instant has reached the target.
func (s *Smoother) Settled() bool { return s.visual.Equal(s.target) }

// Location returns the time zone used by the calendar controls.
func (s *Smoother) Location() *time.Location { return s.loc }

// Advance moves the state forward by dt of wall time. A non-positive dt is a
// no-op.
func (s *Smoother) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	secs := dt.Seconds()
	if s.playing {
		s.target = addSeconds(s.target, s.speed*secs*86400)
	}

	gap := secondsBetween(s.visual, s.target)
	if math.Abs(gap) < SnapThreshold.Seconds() || s.smoothing >= 1 {
		s.visual = s.target
		return
	}
	k := 1 - math.Pow(1-s.smoothing, secs*ReferenceFrameRate)
	s.visual = addSeconds(s.visual, gap*k)
}

// AddDays moves the target by n calendar days and pauses playback.
func (s *Smoother) AddDays(n int) {
	s.setTarget(s.target.AddDate(0, 0, n))
}

// AddMonths moves the target by n months with time.AddDate normalization, so
// January 31 plus one month lands in early March.
func (s *Smoother) AddMonths(n int) {
	s.setTarget(s.target.AddDate(0, n, 0))
}

// SetDayOfMonth moves the target to day d of its month, keeping the time of
// day. d is clamped to the month's length.
func (s *Smoother) SetDayOfMonth(d int) {
	t := s.target
	d = max(1, min(d, DaysInMonth(t)))
	s.setTarget(time.Date(t.Year(), t.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), s.loc))
}

// FirstDay moves the target to the first day of its month.
func (s *Smoother) FirstDay() { s.SetDayOfMonth(1) }

// LastDay moves the target to the last day of its month.
func (s *Smoother) LastDay() { s.SetDayOfMonth(DaysInMonth(s.target)) }

// SetTarget moves the target to t and pauses playback.
func (s *Smoother) SetTarget(t time.Time) { s.setTarget(t) }

// Reset moves the target to the clock's current time and pauses playback.
func (s *Smoother) Reset() { s.setTarget(s.clock.Now()) }

// TogglePlay starts or stops playback.
func (s *Smoother) TogglePlay() { s.playing = !s.playing }

func (s *Smoother) setTarget(t time.Time) {
	s.target = t.In(s.loc)
	s.playing = false
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// secondsBetween returns b−a in seconds without going through time.Duration,
// which saturates past about 292 years.
func secondsBetween(a, b time.Time) float64 {
	return float64(b.Unix()-a.Unix()) + float64(b.Nanosecond()-a.Nanosecond())/1e9
}

func addSeconds(t time.Time, s float64) time.Time {
	whole := math.Trunc(s)
	nanos := math.Round((s - whole) * 1e9)
	return time.Unix(t.Unix()+int64(whole), int64(t.Nanosecond())+int64(nanos)).In(t.Location())
}
