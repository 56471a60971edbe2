//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/lunaris/internal/format"
	"github.com/agbru/lunaris/internal/orchestration"
	"github.com/agbru/lunaris/internal/ui"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the `DisplayProgress` function from a
// specific spinner implementation, facilitating easier testing and maintenance.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerProgressReporter implements orchestration.ProgressReporter with a
// spinner and a progress bar.
type SpinnerProgressReporter struct{}

var _ orchestration.ProgressReporter = SpinnerProgressReporter{}

// DisplayProgress implements orchestration.ProgressReporter.
func (SpinnerProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	DisplayProgress(wg, updates, total, out)
}

// DisplayProgress shows a spinner with a progress bar and ETA until updates
// is closed, then prints a summary line. It always drains updates.
func DisplayProgress(wg *sync.WaitGroup, updates <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(total)
	if agg == nil {
		orchestration.DrainChannel(updates)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var (
		last   = orchestration.AggregatedProgress{Total: total}
		failed int
	)
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				s.Stop()
				fmt.Fprintln(out, FormatProgressSummary(last, failed))
				return
			}
			last = agg.Update(u)
			if last.Failed {
				failed++
			}
		case <-ticker.C:
			s.UpdateSuffix(" " + FormatProgressLine(last))
		}
	}
}

// FormatProgressLine renders the bar, the percentage and the ETA.
func FormatProgressLine(p orchestration.AggregatedProgress) string {
	line := fmt.Sprintf("%s %6s  %d/%d frames", progressBar(p.Fraction, ProgressBarWidth),
		format.FormatPercent(p.Fraction), p.Done, p.Total)
	if p.ETA > 0 {
		line += "  ETA " + format.FormatExecutionDuration(p.ETA.Round(time.Second))
	}
	return line
}

// FormatProgressSummary renders the line printed once the export stops.
func FormatProgressSummary(p orchestration.AggregatedProgress, failed int) string {
	if failed > 0 || p.Done < p.Total {
		return fmt.Sprintf("%s✗ %d/%d frames written, %d failed%s",
			ui.ColorError(), p.Done-failed, p.Total, failed, ui.ColorReset())
	}
	return fmt.Sprintf("%s✓ %d/%d frames written%s", ui.ColorSuccess(), p.Done, p.Total, ui.ColorReset())
}

// progressBar generates a string representing a textual progress bar.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := range length {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
