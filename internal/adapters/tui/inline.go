package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// NewInlineModel creates a compact model that renders in place, without the
// alternate screen or mouse.
func NewInlineModel(countdown ports.Countdown, theme *config.ThemeConfig) Model {
	m := NewModel(countdown, theme)
	m.inline = true
	m.width = getTerminalWidth()
	return m
}

func newProgressBar(accent domain.Color, width int) progress.Model {
	return progress.New(
		progress.WithSolidFill(string(accent)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
}

// inlineRows renders two lines: the timer, then either the help or the
// color picker.
func (m Model) inlineRows() []row {
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorText))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorMuted))
	accent := lipgloss.NewStyle().Bold(true).Foreground(m.accent())

	status := row{segments: []segment{
		{text: m.theme.IconApp + " "},
		{text: accent.Render(m.state.Mode.Label())},
		{text: "  "},
		{text: text.Bold(true).Render(m.state.Clock())},
		{text: "  "},
		{text: m.progressBar(clamp(m.width-48, 10, 30))},
		{text: "  "},
		{text: m.filledButton(m.state.ToggleLabel()), target: targetToggle},
		{text: "  "},
		{text: muted.Render(m.statusText())},
	}}

	if !m.settingsOpen {
		return []row{status, textRow(m.help.ShortHelpView(m.keys.ShortHelp()))}
	}

	picker := row{target: targetPanel}
	picker.segments = append(picker.segments, segment{text: text.Render("Color ")})
	picker.segments = append(picker.segments, m.swatchSegments()...)
	picker.segments = append(picker.segments,
		segment{text: "  " + muted.Render(m.swatchName()) + "  "},
		segment{text: m.help.ShortHelpView(m.keys.panelHelp())},
	)
	return []row{status, picker}
}
