package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// HeaderModel renders the top bar: title, version, time zone and playback
// status.
type HeaderModel struct {
	version string
	zone    string
	playing bool
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version, zone string) HeaderModel {
	return HeaderModel{version: version, zone: zone}
}

// SetPlaying updates the playback indicator.
func (h *HeaderModel) SetPlaying(playing bool) {
	h.playing = playing
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "lunaris"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := versionStyle.Render(" | ")
	leftPart := titleStyle.Render(titleText) + pipe + zoneStyle.Render(h.zone)

	status := statusPausedStyle.Render("⏸ paused")
	if h.playing {
		status = statusPlayingStyle.Render("▶ playing")
	}

	innerWidth := max(h.width-2, 0)
	gap := max(innerWidth-lipgloss.Width(leftPart)-lipgloss.Width(status), 1)

	return headerStyle.Width(h.width).Render(leftPart + spaces(gap) + status)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
