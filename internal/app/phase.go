package app

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agbru/lunaris/internal/cli"
	"github.com/agbru/lunaris/internal/logging"
)

func (a *Application) newPhaseCommand() *cobra.Command {
	var (
		date    string
		asJSON  bool
		preview bool
	)
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Report the phase of the Moon at an instant",
		Long: `Reports the phase, age and illumination of the Moon at an instant, with
the next new and full moons.

Example:
  lunaris phase --date 2024-03-25
  lunaris phase --date "2024-03-25 07:00" --tz Europe/Paris --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.parseDate(date)
			if err != nil {
				return err
			}
			lang := a.Config.LanguageTag()
			report, err := cli.NewPhaseReport(t, lang)
			if err != nil {
				return err
			}
			a.Metrics.ObservePhase()
			a.Logger.Debug("phase computed",
				logging.Time("time", t),
				logging.Float64("phase", report.Phase))

			out := cmd.OutOrStdout()
			if asJSON {
				return cli.WritePhaseJSON(out, report)
			}
			cli.DisplayPhaseReport(out, report, lang)
			if preview {
				return cli.DisplayDisk(out, report.Phase, 24, 12)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "now", "instant to report (YYYY-MM-DD, \"YYYY-MM-DD HH:MM\", RFC 3339, now)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&preview, "preview", false, "draw the disk below the report")
	cmd.MarkFlagsMutuallyExclusive("json", "preview")
	return cmd
}

// parseDate reads s in the configured time zone.
func (a *Application) parseDate(s string) (time.Time, error) {
	loc, err := a.Config.Location()
	if err != nil {
		return time.Time{}, err
	}
	return cli.ParseDate(s, loc, a.now())
}
