package animation

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/agbru/lunaris/internal/animation/mocks"
)

const frame = time.Second / 60

var (
	jst = time.FixedZone("JST", 9*3600)
	t0  = time.Date(2024, time.February, 10, 21, 30, 0, 0, jst)
)

type SmootherSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	clock *mocks.MockClock
	s     *Smoother
}

func TestSmootherSuite(t *testing.T) {
	suite.Run(t, new(SmootherSuite))
}

func (s *SmootherSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = mocks.NewMockClock(s.ctrl)
	s.clock.EXPECT().Now().Return(t0).Times(1)
	s.s = New(s.clock, WithLocation(jst))
}

func (s *SmootherSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SmootherSuite) gap() time.Duration {
	return s.s.Target().Sub(s.s.Visual())
}

func (s *SmootherSuite) TestStartsPausedAtClockNow() {
	s.True(s.s.Target().Equal(t0))
	s.True(s.s.Visual().Equal(t0))
	s.False(s.s.Playing())
	s.True(s.s.Settled())
	s.Equal(jst, s.s.Location())
}

func (s *SmootherSuite) TestAdvanceClosesTenPercentPerFrame() {
	s.s.SetTarget(t0.AddDate(0, 0, 10))
	s.s.Advance(frame)
	moved := s.s.Visual().Sub(t0)
	s.InDelta(float64(24*time.Hour), float64(moved), float64(time.Second))
	s.False(s.s.Settled())
}

func (s *SmootherSuite) TestAdvanceIsFrameRateIndependent() {
	s.s.SetTarget(t0.AddDate(0, 0, 10))
	s.s.Advance(2 * frame)
	oneStep := s.s.Visual()

	s.s.SetTarget(t0)
	for !s.s.Settled() {
		s.s.Advance(frame)
	}
	s.s.SetTarget(t0.AddDate(0, 0, 10))
	s.s.Advance(frame)
	s.s.Advance(frame)

	s.InDelta(0, float64(oneStep.Sub(s.s.Visual())), float64(time.Second))
}

func (s *SmootherSuite) TestSnapsUnderOneMinute() {
	s.s.SetTarget(t0.Add(59 * time.Second))
	s.s.Advance(frame)
	s.True(s.s.Settled())

	s.s.SetTarget(t0.Add(-5 * time.Minute))
	s.s.Advance(frame)
	s.False(s.s.Settled())
}

func (s *SmootherSuite) TestConverges() {
	s.s.SetTarget(t0.AddDate(0, -3, 0))
	steps := 0
	for !s.s.Settled() && steps < 1000 {
		s.s.Advance(frame)
		steps++
	}
	s.True(s.s.Settled(), "visual instant never reached the target")
	s.Less(steps, 200)
}

func (s *SmootherSuite) TestNonPositiveDeltaIsNoop() {
	s.s.SetTarget(t0.AddDate(0, 0, 3))
	s.s.Advance(0)
	s.s.Advance(-time.Second)
	s.True(s.s.Visual().Equal(t0))
}

func (s *SmootherSuite) TestPlayingAdvancesTarget() {
	s.s.TogglePlay()
	s.True(s.s.Playing())
	s.s.Advance(time.Second)
	s.True(s.s.Target().Equal(t0.Add(48 * time.Hour)))
	s.True(s.s.Visual().Before(s.s.Target()), "visual lags the target while playing")

	s.s.TogglePlay()
	s.False(s.s.Playing())
	before := s.s.Target()
	s.s.Advance(time.Second)
	s.True(s.s.Target().Equal(before))
}

func (s *SmootherSuite) TestControlsPausePlayback() {
	controls := map[string]func(){
		"AddDays":       func() { s.s.AddDays(1) },
		"AddMonths":     func() { s.s.AddMonths(-1) },
		"SetDayOfMonth": func() { s.s.SetDayOfMonth(5) },
		"FirstDay":      s.s.FirstDay,
		"LastDay":       s.s.LastDay,
		"SetTarget":     func() { s.s.SetTarget(t0) },
	}
	for name, control := range controls {
		if !s.s.Playing() {
			s.s.TogglePlay()
		}
		control()
		s.False(s.s.Playing(), "%s should pause playback", name)
	}
}

func (s *SmootherSuite) TestResetUsesClock() {
	now := time.Date(2030, time.July, 4, 12, 0, 0, 0, time.UTC)
	s.clock.EXPECT().Now().Return(now).Times(1)
	s.s.TogglePlay()
	s.s.AddDays(40)
	s.s.Reset()
	s.True(s.s.Target().Equal(now))
	s.Equal(jst, s.s.Target().Location())
	s.False(s.s.Playing())
}

func (s *SmootherSuite) TestCalendarControls() {
	s.s.SetDayOfMonth(40)
	s.Equal(29, s.s.Target().Day(), "February 2024 has 29 days")
	s.Equal(21, s.s.Target().Hour(), "time of day is kept")

	s.s.SetDayOfMonth(0)
	s.Equal(1, s.s.Target().Day())

	s.s.AddMonths(2)
	s.s.LastDay()
	s.Equal(time.April, s.s.Target().Month())
	s.Equal(30, s.s.Target().Day())

	s.s.FirstDay()
	s.s.AddDays(-1)
	s.Equal(time.March, s.s.Target().Month())
	s.Equal(31, s.s.Target().Day())
}

func (s *SmootherSuite) TestAddMonthsNormalizes() {
	s.s.SetTarget(time.Date(2001, time.January, 31, 0, 0, 0, 0, jst))
	s.s.AddMonths(1)
	s.Equal(time.March, s.s.Target().Month())
	s.Equal(3, s.s.Target().Day())
}

func (s *SmootherSuite) TestDistantTargetDoesNotOverflow() {
	s.s.SetTarget(time.Date(3024, time.January, 1, 0, 0, 0, 0, jst))
	s.s.Advance(frame)
	year := s.s.Visual().Year()
	s.GreaterOrEqual(year, 2110)
	s.LessOrEqual(year, 2130)
}

func TestWithSmoothingOneTracksExactly(t *testing.T) {
	s := New(nil, WithStart(t0), WithSmoothing(1))
	s.AddMonths(6)
	s.Advance(frame)
	if !s.Settled() {
		t.Fatalf("visual %v should equal target %v", s.Visual(), s.Target())
	}
}

func TestWithSpeed(t *testing.T) {
	s := New(nil, WithStart(t0), WithSpeed(-1))
	s.TogglePlay()
	s.Advance(time.Second)
	if want := t0.AddDate(0, 0, -1); !s.Target().Equal(want) {
		t.Errorf("Target = %v, want %v", s.Target(), want)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.December, 31},
		{2024, time.November, 30},
	}
	for _, tt := range tests {
		got := DaysInMonth(time.Date(tt.year, tt.month, 15, 0, 0, 0, 0, time.UTC))
		if got != tt.want {
			t.Errorf("DaysInMonth(%d-%02d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
