package tui

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/agbru/lunaris/internal/animation"
	"github.com/agbru/lunaris/internal/format"
	"github.com/agbru/lunaris/internal/lunar"
)

// InfoModel shows the phase details, the month slider and the illumination
// history.
type InfoModel struct {
	lang          language.Tag
	phase         lunar.PhaseResult
	target        time.Time
	history       *History
	width, height int
}

// NewInfoModel creates the info panel.
func NewInfoModel(lang language.Tag) InfoModel {
	return InfoModel{lang: lang, history: NewHistory(32)}
}

// SetSize updates the outer size of the panel and fits the history to it.
func (m *InfoModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.history.Resize(max(w-4, 1))
}

// Update records the displayed phase and the target instant.
func (m *InfoModel) Update(phase lunar.PhaseResult, target time.Time) {
	m.phase = phase
	m.target = target
}

// Sample appends the displayed illumination to the history. It is called once
// per frame so the sparkline is evenly spaced in time.
func (m *InfoModel) Sample() {
	m.history.Push(m.phase.Illumination)
}

// View renders the panel.
func (m InfoModel) View() string {
	inner := max(m.width-2, 1)
	trend := "waning"
	if m.phase.IsWaxing() {
		trend = "waxing"
	}

	var b strings.Builder
	b.WriteString(phaseNameStyle.Render(m.phase.Name.Localized(m.lang)))
	b.WriteString("\n\n")
	b.WriteString(row("Illumination", format.FormatPercent(m.phase.Illumination)))
	b.WriteString(row("Age", format.FormatAge(m.phase.Age)))
	b.WriteString(row("Phase", fmt.Sprintf("%.3f %s", m.phase.Phase, trend)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(format.FormatDateTime(m.target, m.lang)))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(format.FormatMonth(m.target, m.lang)))
	b.WriteString("\n")
	b.WriteString(renderSlider(m.target.Day(), animation.DaysInMonth(m.target), max(inner-2, 3)))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Illumination history"))
	b.WriteString("\n")
	b.WriteString(sparklineStyle.Render(RenderSparkline(m.history.Slice())))

	return panelStyle.Width(inner).Height(max(m.height-2, 1)).Render(b.String())
}

func row(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-14s", label)) + valueStyle.Render(value) + "\n"
}

// renderSlider draws a track of width cells with a knob at day of days.
func renderSlider(day, days, width int) string {
	width = max(width, 3)
	pos := 0
	if days > 1 {
		pos = (day - 1) * (width - 1) / (days - 1)
	}
	pos = min(max(pos, 0), width-1)
	return sliderStyle.Render(strings.Repeat("─", pos)) +
		sliderKnobStyle.Render("●") +
		sliderStyle.Render(strings.Repeat("─", width-1-pos))
}
