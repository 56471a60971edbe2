package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"

	"github.com/agbru/lunaris/internal/format"
	"github.com/agbru/lunaris/internal/lunar"
	"github.com/agbru/lunaris/internal/ui"
)

// DisplayCalendar prints principal phase events as a table, in loc. The gap
// column counts days since the previous event.
func DisplayCalendar(out io.Writer, events []lunar.PhaseEvent, loc *time.Location, lang language.Tag) error {
	if loc == nil {
		loc = time.Local
	}
	if len(events) == 0 {
		fmt.Fprintln(out, "No principal phases in range.")
		return nil
	}

	fmt.Fprintf(out, "%s%s → %s%s\n\n", ui.ColorBold(),
		format.FormatMonth(events[0].Time.In(loc), lang),
		format.FormatMonth(events[len(events)-1].Time.In(loc), lang),
		ui.ColorReset())

	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "\tPHASE\tDATE\tGAP")
	for i, ev := range events {
		gap := "-"
		if i > 0 {
			gap = fmt.Sprintf("%.2fd", ev.Time.Sub(events[i-1].Time).Hours()/24)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			PhaseGlyph(ev.Name), ev.Name.Localized(lang),
			format.FormatDateTime(ev.Time.In(loc), lang), gap)
	}
	return tw.Flush()
}
