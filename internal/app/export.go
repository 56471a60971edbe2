package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agbru/lunaris/internal/cli"
	apperrors "github.com/agbru/lunaris/internal/errors"
	"github.com/agbru/lunaris/internal/logging"
	"github.com/agbru/lunaris/internal/lunar"
	"github.com/agbru/lunaris/internal/orchestration"
	"github.com/agbru/lunaris/internal/ui"
)

func (a *Application) newExportCommand() *cobra.Command {
	var (
		dir    string
		from   string
		to     string
		frames int
		quiet  bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a sequence of SVG frames",
		Long: `Renders evenly spaced instants between --from and --to as numbered SVG
files (frame_00000.svg, ...) in --dir. Frames are rendered in parallel by
--workers workers; the export stops at the first failure, on SIGINT or
SIGTERM, and after --timeout.

Without --to, the sequence covers one synodic month.

Example:
  lunaris export --dir frames --from 2024-03-10 --frames 60 --workers 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := a.parseDate(from)
			if err != nil {
				return err
			}
			end := start.Add(time.Duration(lunar.SynodicMonth * float64(24*time.Hour)))
			if to != "" {
				if end, err = a.parseDate(to); err != nil {
					return err
				}
			}
			plan := orchestration.ExportPlan{
				From:     start,
				To:       end,
				Frames:   frames,
				Size:     a.Config.Size,
				Texture:  a.Config.Texture,
				Language: a.Config.LanguageTag(),
			}
			if err := plan.Validate(); err != nil {
				return err
			}
			sink, err := orchestration.NewDirSink(dir)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			if a.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, a.Config.Timeout)
				defer cancel()
			}

			var reporter orchestration.ProgressReporter = cli.SpinnerProgressReporter{}
			if quiet {
				reporter = orchestration.NullProgressReporter{}
			}
			a.Logger.Info("export started",
				logging.String("dir", dir),
				logging.Int("frames", frames),
				logging.Int("workers", a.Config.Workers))

			_, err = orchestration.ExecuteExport(ctx, plan, orchestration.ExportOptions{
				Workers:  a.Config.Workers,
				Sink:     sink,
				Reporter: reporter,
				Out:      cmd.ErrOrStderr(),
				Metrics:  a.Metrics,
				Logger:   a.Logger,
			})
			if errors.Is(err, context.DeadlineExceeded) {
				return apperrors.TimeoutError{Operation: "export", Limit: a.Config.Timeout}
			}
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s✓ %d frames written to: %s%s%s\n",
					ui.ColorSuccess(), frames, ui.ColorPrimary(), dir, ui.ColorReset())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "o", "", "output directory (created if missing)")
	cmd.Flags().StringVar(&from, "from", "now", "first instant")
	cmd.Flags().StringVar(&to, "to", "", "last instant (default one synodic month after --from)")
	cmd.Flags().IntVarP(&frames, "frames", "n", 30, "number of frames")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no progress display")
	_ = cmd.MarkFlagRequired("dir")
	a.flags.RegisterRenderFlags(cmd.Flags())
	return cmd
}
