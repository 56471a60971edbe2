package orchestration

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	apperrors "github.com/agbru/lunaris/internal/errors"
	"github.com/agbru/lunaris/internal/logging"
	"github.com/agbru/lunaris/internal/lunar"
	"github.com/agbru/lunaris/internal/metrics"
	"github.com/agbru/lunaris/internal/render"
)

// ProgressBufferMultiplier sizes the progress channel relative to the worker
// count, so workers rarely block on a slow display.
const ProgressBufferMultiplier = 5

// MaxFrames bounds a single export.
const MaxFrames = 100_000

const tracerName = "github.com/agbru/lunaris/internal/orchestration"

// ExportPlan describes a frame sequence: Frames instants evenly spaced from
// From to To inclusive.
type ExportPlan struct {
	From, To time.Time
	Frames   int
	Size     int
	Texture  string
	Language language.Tag
}

// Validate checks the plan.
func (p ExportPlan) Validate() error {
	if p.Frames < 1 || p.Frames > MaxFrames {
		return apperrors.NewValidationError("frames", "must be between 1 and %d, got %d", MaxFrames, p.Frames)
	}
	if p.To.Before(p.From) {
		return apperrors.NewValidationError("to", "end %s is before start %s", p.To.Format(time.RFC3339), p.From.Format(time.RFC3339))
	}
	if p.Size <= 0 {
		return apperrors.NewValidationError("size", "must be positive, got %d", p.Size)
	}
	return nil
}

// Instant returns the moment depicted by frame i.
func (p ExportPlan) Instant(i int) time.Time {
	if p.Frames <= 1 || i <= 0 {
		return p.From
	}
	if i >= p.Frames-1 {
		return p.To
	}
	span := float64(p.To.Unix()-p.From.Unix()) + float64(p.To.Nanosecond()-p.From.Nanosecond())/1e9
	offset := span * float64(i) / float64(p.Frames-1)
	whole := math.Trunc(offset)
	nanos := int64(math.Round((offset - whole) * 1e9))
	return time.Unix(p.From.Unix()+int64(whole), int64(p.From.Nanosecond())+nanos).In(p.From.Location())
}

// FrameName returns the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%05d.svg", i)
}

// ExportOptions carries the collaborators of ExecuteExport. Only Sink is
// required. Workers below one means a single worker; nil Reporter, Out and
// Logger are replaced with no-op implementations; a nil Metrics records
// nothing, since every *metrics.Recorder method accepts a nil receiver.
type ExportOptions struct {
	Workers  int
	Sink     FrameSink
	Reporter ProgressReporter
	Out      io.Writer
	Metrics  *metrics.Recorder
	Logger   logging.Logger
}

// ExecuteExport renders every frame of plan with a bounded worker pool and
// writes it to the sink. The first failure cancels the remaining frames and
// is returned as an apperrors.ExportError; cancellation of ctx is returned
// as the context's error. Results are indexed by frame and only frames that
// were attempted are populated.
func ExecuteExport(ctx context.Context, plan ExportPlan, opts ExportOptions) ([]FrameResult, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if opts.Sink == nil {
		return nil, apperrors.NewValidationError("sink", "no frame sink configured")
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Reporter == nil {
		opts.Reporter = NullProgressReporter{}
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "export", trace.WithAttributes(
		attribute.Int("lunaris.frames", plan.Frames),
		attribute.Int("lunaris.workers", opts.Workers),
		attribute.String("lunaris.from", plan.From.Format(time.RFC3339)),
		attribute.String("lunaris.to", plan.To.Format(time.RFC3339)),
	))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	results := make([]FrameResult, plan.Frames)
	updates := make(chan ProgressUpdate, opts.Workers*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go opts.Reporter.DisplayProgress(&displayWg, updates, plan.Frames, opts.Out)

	var (
		mu   sync.Mutex
		done int
	)
	for i := range plan.Frames {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res := exportFrame(gctx, tracer, plan, i, opts)
			results[i] = res

			mu.Lock()
			done++
			update := ProgressUpdate{Frame: res, Done: done, Total: plan.Frames}
			mu.Unlock()
			updates <- update

			if res.Err != nil {
				if apperrors.IsContextError(res.Err) {
					return res.Err
				}
				opts.Logger.Error("frame export failed", res.Err, logging.Int("frame", i))
				return apperrors.ExportError{Frame: i, Cause: res.Err}
			}
			return nil
		})
	}

	err := g.Wait()
	close(updates)
	displayWg.Wait()

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return results, err
	}
	opts.Logger.Info("export finished", logging.Int("frames", plan.Frames))
	return results, nil
}

func exportFrame(ctx context.Context, tracer trace.Tracer, plan ExportPlan, i int, opts ExportOptions) FrameResult {
	start := time.Now()
	instant := plan.Instant(i)
	phase := lunar.ComputePhase(instant)
	opts.Metrics.ObservePhase()

	ctx, span := tracer.Start(ctx, "export.frame", trace.WithAttributes(
		attribute.Int("lunaris.frame", i),
		attribute.Float64("lunaris.phase", phase.Phase),
	))
	defer span.End()

	res := FrameResult{Index: i, Instant: instant, Phase: phase}
	title := fmt.Sprintf("%s %s", phase.Name.Localized(plan.Language), instant.Format(time.RFC3339))
	res.Path, res.Err = opts.Sink.WriteFrame(ctx, FrameName(i), func(w io.Writer) error {
		_, err := render.WriteMask(w, phase.Phase, render.SVGOptions{
			Size:    float64(plan.Size),
			Texture: plan.Texture,
			Title:   title,
		})
		return err
	})
	res.Duration = time.Since(start)

	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
	} else {
		opts.Metrics.ObserveFrame("svg", start)
	}
	if !apperrors.IsContextError(res.Err) {
		opts.Metrics.ObserveExport(res.Err)
	}
	return res
}
