package app

import (
	"github.com/spf13/cobra"

	"github.com/agbru/lunaris/internal/cli"
	apperrors "github.com/agbru/lunaris/internal/errors"
	"github.com/agbru/lunaris/internal/logging"
	"github.com/agbru/lunaris/internal/lunar"
)

// maxCalendarMonths bounds a single calendar listing.
const maxCalendarMonths = 120

func (a *Application) newCalendarCommand() *cobra.Command {
	var (
		from   string
		months int
	)
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List the principal phases over a number of months",
		Long: `Lists new moons, first quarters, full moons and last quarters from a start
date, with the days elapsed since the previous event.

Example:
  lunaris calendar --from 2024-01-01 --months 3 --tz UTC`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if months < 1 || months > maxCalendarMonths {
				return apperrors.NewValidationError("months", "must be between 1 and %d, got %d", maxCalendarMonths, months)
			}
			start, err := a.parseDate(from)
			if err != nil {
				return err
			}
			end := start.AddDate(0, months, 0)
			events, err := lunar.PrincipalPhases(start, end)
			if err != nil {
				return err
			}
			a.Logger.Debug("calendar computed",
				logging.Time("from", start),
				logging.Time("to", end),
				logging.Int("events", len(events)))
			return cli.DisplayCalendar(cmd.OutOrStdout(), events, start.Location(), a.Config.LanguageTag())
		},
	}
	cmd.Flags().StringVar(&from, "from", "today", "first day of the listing")
	cmd.Flags().IntVarP(&months, "months", "m", 1, "number of months to list")
	return cmd
}
