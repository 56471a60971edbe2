package orchestration

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/agbru/lunaris/internal/lunar"
)

// FrameResult is the outcome of exporting one frame.
type FrameResult struct {
	// Index is the frame's position in the sequence, starting at 0.
	Index int
	// Instant is the moment the frame depicts.
	Instant time.Time
	// Phase is the phase computed for Instant.
	Phase lunar.PhaseResult
	// Path is the file the frame was written to.
	Path string
	// Duration is the time spent rendering and writing the frame.
	Duration time.Duration
	// Err is set when the frame could not be written.
	Err error
}

// ProgressUpdate is sent once per finished frame.
type ProgressUpdate struct {
	Frame FrameResult
	// Done counts finished frames, including this one.
	Done int
	Total int
}

// ProgressReporter displays export progress. DisplayProgress runs in its own
// goroutine, must drain updates until the channel is closed, and calls
// wg.Done when it returns.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, total int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, updates <-chan ProgressUpdate, total int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, total int, out io.Writer) {
	f(wg, updates, total, out)
}

// NullProgressReporter drains updates without output.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(updates)
}

// FrameSink stores rendered frames. Implementations must be safe for
// concurrent use.
type FrameSink interface {
	// WriteFrame stores the bytes produced by render under name.
	WriteFrame(ctx context.Context, name string, render func(io.Writer) error) (path string, err error)
}
