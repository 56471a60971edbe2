package tui

import (
	"strings"
	"time"

	"github.com/agbru/lunaris/internal/config"
	"github.com/agbru/lunaris/internal/metrics"
	"github.com/agbru/lunaris/internal/render"
	"github.com/agbru/lunaris/internal/terminator"
)

// brailleThreshold raises a dot for lit cells only; earthshine stays dark.
const brailleThreshold = 0.5

// MoonModel draws the disk inside a bordered panel.
type MoonModel struct {
	mode          string
	width, height int
	lines         []string
	err           error
}

// NewMoonModel creates a panel rendering in mode (config.ModeBlocks or
// config.ModeBraille).
func NewMoonModel(mode string) MoonModel {
	return MoonModel{mode: mode}
}

// SetSize updates the outer size of the panel, borders included.
func (m *MoonModel) SetSize(w, h int) {
	m.width, m.height = w, h
}

// inner returns the drawable size inside the border.
func (m MoonModel) inner() (int, int) {
	return max(m.width-2, 1), max(m.height-2, 1)
}

// Draw rasterizes g for the current panel size.
func (m *MoonModel) Draw(g terminator.Geometry, rec *metrics.Recorder) {
	start := time.Now()
	cols, rows := m.inner()
	opts := render.DefaultOptions()

	var raster *render.Raster
	if m.mode == config.ModeBraille {
		// Braille dots are square: half a cell wide, a quarter cell tall.
		opts.CellAspect = 1
		raster, m.err = render.Rasterize(g, cols*2, rows*4, opts)
		if m.err == nil {
			m.lines = raster.Braille(brailleThreshold)
		}
	} else {
		raster, m.err = render.Rasterize(g, cols, rows, opts)
		if m.err == nil {
			m.lines = raster.Blocks()
		}
	}
	if m.err == nil {
		rec.ObserveFrame(m.mode, start)
	}
}

// View renders the panel.
func (m MoonModel) View() string {
	cols, rows := m.inner()
	var body string
	if m.err != nil {
		body = m.err.Error()
	} else {
		body = litStyle.Render(strings.Join(m.lines, "\n"))
	}
	return panelStyle.Width(cols).Height(rows).Render(body)
}
