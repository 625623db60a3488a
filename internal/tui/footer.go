package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the bottom bar: a run status badge and the key help.
type FooterModel struct {
	width  int
	paused bool
	done   bool
	failed bool
}

// NewFooterModel creates the footer in its running state.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// SetWidth updates the footer width.
func (f *FooterModel) SetWidth(w int) { f.width = w }

// SetPaused toggles the paused badge.
func (f *FooterModel) SetPaused(p bool) { f.paused = p }

// SetDone marks the run finished; failed selects the error badge.
func (f *FooterModel) SetDone(failed bool) {
	f.done = true
	f.failed = failed
}

// Reset returns the footer to its running state.
func (f *FooterModel) Reset() {
	f.paused = false
	f.done = false
	f.failed = false
}

// View renders the footer line.
func (f FooterModel) View() string {
	var badge string
	switch {
	case f.failed:
		badge = statusErrorStyle.Render(" FAILED ")
	case f.done:
		badge = statusDoneStyle.Render(" DONE ")
	case f.paused:
		badge = statusPausedStyle.Render(" PAUSED ")
	default:
		badge = statusRunningStyle.Render(" RUNNING ")
	}

	sep := footerDescStyle.Render(" · ")
	help := strings.Join([]string{
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit"),
		footerKeyStyle.Render("p") + footerDescStyle.Render(" pause ui"),
		footerKeyStyle.Render("r") + footerDescStyle.Render(" restart"),
		footerKeyStyle.Render("↑/↓") + footerDescStyle.Render(" scroll"),
	}, sep)

	line := badge + " " + help
	if w := lipgloss.Width(line); w < f.width {
		line += strings.Repeat(" ", f.width-w)
	}
	return line
}
