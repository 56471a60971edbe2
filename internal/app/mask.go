package app

import (
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/lunaris/internal/cli"
	"github.com/agbru/lunaris/internal/logging"
	"github.com/agbru/lunaris/internal/lunar"
	"github.com/agbru/lunaris/internal/render"
)

const tracerName = "github.com/agbru/lunaris/internal/app"

func (a *Application) newMaskCommand() *cobra.Command {
	var (
		date   string
		phase  float64
		output string
		quiet  bool
	)
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Write the SVG mask of the lit disk",
		Long: `Writes an SVG document showing the lit part of the disk, either at an
instant (--date) or for a raw phase fraction in [0, 1) (--phase).

Example:
  lunaris mask --date 2024-03-17 --size 512 -o moon.svg
  lunaris mask --phase 0.25 > first-quarter.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var res lunar.PhaseResult
			if cmd.Flags().Changed("phase") {
				r, err := lunar.FromFraction(phase)
				if err != nil {
					return err
				}
				res = r
			} else {
				t, err := a.parseDate(date)
				if err != nil {
					return err
				}
				res = lunar.ComputePhase(t)
				a.Metrics.ObservePhase()
			}

			_, span := otel.Tracer(tracerName).Start(commandContext(cmd), "mask")
			defer span.End()
			span.SetAttributes(
				attribute.Float64("lunaris.phase", res.Phase),
				attribute.Int("lunaris.size", a.Config.Size),
			)

			opts := render.SVGOptions{
				Size:    float64(a.Config.Size),
				Texture: a.Config.Texture,
				Title:   res.Name.Localized(a.Config.LanguageTag()),
			}
			start := time.Now()
			_, err := cli.DisplayMaskWithConfig(cmd.OutOrStdout(), res.Phase, opts, cli.OutputConfig{
				OutputFile: output,
				Quiet:      quiet,
			})
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
			a.Metrics.ObserveFrame("svg", start)
			a.Logger.Debug("mask written",
				logging.Float64("phase", res.Phase),
				logging.String("output", output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "now", "instant to draw")
	cmd.Flags().Float64Var(&phase, "phase", 0, "phase fraction in [0, 1) to draw instead of a date")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to this file instead of stdout")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not confirm the written file")
	cmd.MarkFlagsMutuallyExclusive("date", "phase")
	a.flags.RegisterRenderFlags(cmd.Flags())
	return cmd
}
