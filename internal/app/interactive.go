package app

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agbru/lunaris/internal/cli"
	"github.com/agbru/lunaris/internal/tui"
)

const watchCommandName = "watch"

func (a *Application) newWatchCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   watchCommandName,
		Short: "Animate the Moon in the terminal",
		Long: `Opens a full-screen view of the Moon. Space plays or pauses time, the
arrow keys step by a day, [ and ] step by a month, r returns to now and ?
lists every key.

Logs go to --log-file only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var start time.Time
			if date != "" {
				t, err := a.parseDate(date)
				if err != nil {
					return err
				}
				start = t
			}
			return tui.Run(commandContext(cmd), a.Config, tui.Options{
				Version:  Version,
				Start:    start,
				Clock:    clockFunc(a.now),
				Metrics:  a.Metrics,
				Logger:   a.Logger,
				Language: a.Config.LanguageTag(),
			})
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "instant to open at (default now)")
	a.flags.RegisterWatchFlags(cmd.Flags())
	return cmd
}

func (a *Application) newREPLCommand() *cobra.Command {
	var preview bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Explore dates at an interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc, err := a.Config.Location()
			if err != nil {
				return err
			}
			repl := cli.NewREPL(cli.REPLConfig{
				Location: loc,
				Language: a.Config.LanguageTag(),
				Preview:  preview,
			})
			repl.SetInput(cmd.InOrStdin())
			repl.SetOutput(cmd.OutOrStdout())
			repl.SetClock(a.now)
			repl.Start()
			return nil
		},
	}
	cmd.Flags().BoolVar(&preview, "preview", true, "draw the disk after every report")
	return cmd
}
