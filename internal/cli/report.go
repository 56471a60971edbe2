package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"

	"github.com/agbru/lunaris/internal/format"
	"github.com/agbru/lunaris/internal/lunar"
	"github.com/agbru/lunaris/internal/ui"
)

// phaseGlyphs is indexed by lunar.PhaseName.
var phaseGlyphs = [...]string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"}

// PhaseGlyph returns the moon emoji for a phase band.
func PhaseGlyph(n lunar.PhaseName) string {
	if int(n) < 0 || int(n) >= len(phaseGlyphs) {
		return "?"
	}
	return phaseGlyphs[n]
}

// PhaseReport is the phase of the Moon at one instant, with the next new and
// full moons. It is the payload of `lunaris phase --json`.
type PhaseReport struct {
	Time         time.Time `json:"time"`
	Phase        float64   `json:"phase"`
	Age          float64   `json:"age_days"`
	Illumination float64   `json:"illumination"`
	Waxing       bool      `json:"waxing"`
	Name         string    `json:"name"`
	Label        string    `json:"label"`
	NextNewMoon  time.Time `json:"next_new_moon"`
	NextFullMoon time.Time `json:"next_full_moon"`

	name lunar.PhaseName
}

// NewPhaseReport computes the report for t. Event times are expressed in t's
// location.
func NewPhaseReport(t time.Time, lang language.Tag) (PhaseReport, error) {
	res := lunar.ComputePhase(t)
	nextNew, err := lunar.NextPhase(t, lunar.NewMoon)
	if err != nil {
		return PhaseReport{}, err
	}
	nextFull, err := lunar.NextPhase(t, lunar.FullMoon)
	if err != nil {
		return PhaseReport{}, err
	}
	return PhaseReport{
		Time:         t,
		Phase:        res.Phase,
		Age:          res.Age,
		Illumination: res.Illumination,
		Waxing:       res.IsWaxing(),
		Name:         res.Name.String(),
		Label:        res.Name.Localized(lang),
		NextNewMoon:  nextNew.In(t.Location()),
		NextFullMoon: nextFull.In(t.Location()),
		name:         res.Name,
	}, nil
}

// DisplayPhaseReport writes a colorized, human-readable report.
func DisplayPhaseReport(out io.Writer, r PhaseReport, lang language.Tag) {
	trend := "waning"
	if r.Waxing {
		trend = "waxing"
	}
	fmt.Fprintf(out, "%s %s%s%s\n", PhaseGlyph(r.name), ui.ColorBold(), r.Label, ui.ColorReset())
	fmt.Fprintf(out, "  Date:            %s%s%s\n", ui.ColorPrimary(), format.FormatDateTime(r.Time, lang), ui.ColorReset())
	fmt.Fprintf(out, "  Illumination:    %s%s%s\n", ui.ColorSecondary(), format.FormatPercent(r.Illumination), ui.ColorReset())
	fmt.Fprintf(out, "  Age:             %s%s%s\n", ui.ColorSecondary(), format.FormatAge(r.Age), ui.ColorReset())
	fmt.Fprintf(out, "  Phase:           %.4f (%s)\n", r.Phase, trend)
	fmt.Fprintf(out, "  Next full moon:  %s%s%s\n", ui.ColorInfo(), format.FormatDateTime(r.NextFullMoon, lang), ui.ColorReset())
	fmt.Fprintf(out, "  Next new moon:   %s%s%s\n", ui.ColorInfo(), format.FormatDateTime(r.NextNewMoon, lang), ui.ColorReset())
}

// WritePhaseJSON writes r as indented JSON.
func WritePhaseJSON(out io.Writer, r PhaseReport) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
