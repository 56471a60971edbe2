package orchestration

import "time"

// ProgressAggregator turns the stream of per-frame updates into an overall
// fraction and an ETA. Both the spinner reporter and tests use it.
type ProgressAggregator struct {
	total int
	start time.Time
	done  int
	now   func() time.Time
}

// NewProgressAggregator returns an aggregator for total frames, or nil when
// total is not positive.
func NewProgressAggregator(total int) *ProgressAggregator {
	if total <= 0 {
		return nil
	}
	return &ProgressAggregator{total: total, start: time.Now(), now: time.Now}
}

// AggregatedProgress is the state after an update.
type AggregatedProgress struct {
	Done     int
	Total    int
	Fraction float64
	// ETA extrapolates the average time per frame so far.
	ETA time.Duration
	// Failed is set when the frame behind this update failed.
	Failed bool
}

// Update records one finished frame.
func (a *ProgressAggregator) Update(u ProgressUpdate) AggregatedProgress {
	if u.Done > a.done {
		a.done = u.Done
	}
	return AggregatedProgress{
		Done:     a.done,
		Total:    a.total,
		Fraction: a.Fraction(),
		ETA:      a.ETA(),
		Failed:   u.Frame.Err != nil,
	}
}

// Fraction returns the completed share in [0, 1].
func (a *ProgressAggregator) Fraction() float64 {
	return min(1, float64(a.done)/float64(a.total))
}

// ETA returns the estimated remaining time, or 0 before the first frame.
func (a *ProgressAggregator) ETA() time.Duration {
	if a.done == 0 || a.done >= a.total {
		return 0
	}
	perFrame := a.now().Sub(a.start) / time.Duration(a.done)
	return perFrame * time.Duration(a.total-a.done)
}

// Total returns the number of frames tracked.
func (a *ProgressAggregator) Total() int { return a.total }

// DrainChannel discards every update until the channel is closed.
func DrainChannel(updates <-chan ProgressUpdate) {
	for range updates {
	}
}
