package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/text/language"

	apperrors "github.com/agbru/lunaris/internal/errors"
	"github.com/agbru/lunaris/internal/metrics"
)

var planStart = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

func testPlan(frames int) ExportPlan {
	return ExportPlan{
		From:     planStart,
		To:       planStart.AddDate(0, 0, 29),
		Frames:   frames,
		Size:     160,
		Language: language.English,
	}
}

// memorySink keeps frames in memory and can be told to fail or block.
type memorySink struct {
	mu     sync.Mutex
	frames map[string]string
	failOn string
	// blockFrom makes every frame at or after this index wait for
	// cancellation; negative disables blocking.
	blockFrom int
}

func newMemorySink() *memorySink {
	return &memorySink{frames: make(map[string]string), blockFrom: -1}
}

func (s *memorySink) WriteFrame(ctx context.Context, name string, render func(io.Writer) error) (string, error) {
	if s.blockFrom >= 0 {
		var idx int
		if _, err := fmt.Sscanf(name, "frame_%05d.svg", &idx); err == nil && idx >= s.blockFrom {
			<-ctx.Done()
			return "", ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == s.failOn {
		return "", errors.New("disk full")
	}
	var b strings.Builder
	if err := render(&b); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames[name] = b.String()
	return "mem://" + name, nil
}

func (s *memorySink) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.frames))
	for n := range s.frames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// collectingReporter records every update it sees.
type collectingReporter struct {
	mu      sync.Mutex
	updates []ProgressUpdate
	onEach  func(ProgressUpdate)
}

func (r *collectingReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for u := range updates {
		r.mu.Lock()
		r.updates = append(r.updates, u)
		r.mu.Unlock()
		if r.onEach != nil {
			r.onEach(u)
		}
	}
}

func TestExportPlan_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExportPlan)
	}{
		{"no frames", func(p *ExportPlan) { p.Frames = 0 }},
		{"too many frames", func(p *ExportPlan) { p.Frames = MaxFrames + 1 }},
		{"inverted range", func(p *ExportPlan) { p.To = p.From.Add(-time.Hour) }},
		{"zero size", func(p *ExportPlan) { p.Size = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlan(10)
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), apperrors.ErrInvalidArgument)
		})
	}
	assert.NoError(t, testPlan(1).Validate())
}

func TestExportPlan_Instant(t *testing.T) {
	p := ExportPlan{From: planStart, To: planStart.AddDate(0, 0, 4), Frames: 5}
	for i := range 5 {
		assert.True(t, p.Instant(i).Equal(planStart.AddDate(0, 0, i)), "frame %d at %v", i, p.Instant(i))
	}

	single := ExportPlan{From: planStart, To: planStart.AddDate(1, 0, 0), Frames: 1}
	assert.True(t, single.Instant(0).Equal(planStart))

	fine := ExportPlan{From: planStart, To: planStart.Add(time.Second), Frames: 3}
	assert.True(t, fine.Instant(1).Equal(planStart.Add(500*time.Millisecond)))
}

func TestFrameName(t *testing.T) {
	assert.Equal(t, "frame_00000.svg", FrameName(0))
	assert.Equal(t, "frame_01234.svg", FrameName(1234))
}

func TestExecuteExport_WritesEveryFrame(t *testing.T) {
	sink := newMemorySink()
	reporter := &collectingReporter{}
	rec := metrics.New()

	results, err := ExecuteExport(context.Background(), testPlan(12), ExportOptions{
		Workers:  3,
		Sink:     sink,
		Reporter: reporter,
		Metrics:  rec,
	})
	require.NoError(t, err)
	require.Len(t, results, 12)

	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.NoError(t, r.Err)
		assert.Equal(t, "mem://"+FrameName(i), r.Path)
		assert.InDelta(t, r.Phase.Phase, results[i].Phase.Phase, 0)
	}
	assert.True(t, results[0].Instant.Equal(planStart))
	assert.True(t, results[11].Instant.Equal(planStart.AddDate(0, 0, 29)))

	assert.Len(t, sink.names(), 12)
	assert.Contains(t, sink.frames[FrameName(0)], "<svg")

	require.Len(t, reporter.updates, 12)
	maxDone := 0
	for _, u := range reporter.updates {
		assert.Equal(t, 12, u.Total)
		maxDone = max(maxDone, u.Done)
	}
	assert.Equal(t, 12, maxDone)

	assert.Equal(t, 12.0, testutil.ToFloat64(rec.FramesExported))
	assert.Equal(t, 12.0, testutil.ToFloat64(rec.PhaseComputations))
}

func TestExecuteExport_ZeroOptions(t *testing.T) {
	sink := newMemorySink()
	sink.failOn = FrameName(2)

	// Only the sink is set: no metrics, logger, reporter, writer or workers.
	results, err := ExecuteExport(context.Background(), testPlan(4), ExportOptions{Sink: sink})
	var exportErr apperrors.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, 2, exportErr.Frame)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, []string{FrameName(0), FrameName(1)}, sink.names())
}

func TestExecuteExport_StopsAtFirstFailure(t *testing.T) {
	sink := newMemorySink()
	sink.failOn = FrameName(3)
	rec := metrics.New()

	results, err := ExecuteExport(context.Background(), testPlan(50), ExportOptions{
		Workers: 1,
		Sink:    sink,
		Metrics: rec,
	})
	require.Error(t, err)

	var exportErr apperrors.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, 3, exportErr.Frame)
	assert.Equal(t, apperrors.ExitErrorGeneric, apperrors.ExitCodeFor(err))
	assert.EqualError(t, results[3].Err, "disk full")
	assert.Less(t, len(sink.names()), 50, "remaining frames should be skipped")
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.ExportFailures))
}

func TestExecuteExport_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newMemorySink()
	sink.blockFrom = 4
	var once sync.Once
	reporter := &collectingReporter{onEach: func(u ProgressUpdate) {
		if u.Done >= 2 {
			once.Do(cancel)
		}
	}}

	done := make(chan error, 1)
	go func() {
		_, err := ExecuteExport(ctx, testPlan(100), ExportOptions{Workers: 4, Sink: sink, Reporter: reporter})
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, apperrors.ExitErrorCanceled, apperrors.ExitCodeFor(err))
	case <-time.After(10 * time.Second):
		t.Fatal("DEADLOCK: ExecuteExport did not return after cancellation")
	}
}

func TestExecuteExport_AlreadyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink := newMemorySink()
	_, err := ExecuteExport(ctx, testPlan(20), ExportOptions{Workers: 2, Sink: sink})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sink.names())
}

func TestExecuteExport_RejectsBadInput(t *testing.T) {
	_, err := ExecuteExport(context.Background(), testPlan(0), ExportOptions{Sink: newMemorySink()})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = ExecuteExport(context.Background(), testPlan(3), ExportOptions{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestExecuteExport_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	_, err := ExecuteExport(context.Background(), testPlan(4), ExportOptions{Workers: 2, Sink: newMemorySink()})
	require.NoError(t, err)

	counts := map[string]int{}
	for _, s := range recorder.Ended() {
		counts[s.Name()]++
	}
	assert.Equal(t, 1, counts["export"])
	assert.Equal(t, 4, counts["export.frame"])
}

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	sink, err := NewDirSink(dir)
	require.NoError(t, err)

	results, err := ExecuteExport(context.Background(), testPlan(3), ExportOptions{Workers: 2, Sink: sink})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"frame_00000.svg", "frame_00001.svg", "frame_00002.svg"}, names, "no temporary files remain")

	data, err := os.ReadFile(results[1].Path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg"))
}

func TestDirSink_RenderFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	sink := &DirSink{Dir: dir}
	_, err := sink.WriteFrame(context.Background(), "bad.svg", func(io.Writer) error { return errors.New("boom") })
	require.EqualError(t, err, "boom")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
