// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// refreshMsg is sent when the countdown changed on its own (a tick).
// The model re-reads the state instead of trusting a payload, so a late
// message can never roll the display back.
type refreshMsg struct{}

// unmountMsg asks the model to release its key bindings and quit.
type unmountMsg struct{}

// Model represents the TUI state.
type Model struct {
	countdown ports.Countdown
	state     domain.TimerState
	theme     config.ThemeConfig
	keys      keyMap
	help      help.Model
	width     int
	height    int
	inline    bool

	// Color panel
	settingsOpen bool
	swatchCursor int

	unmounted bool
}

// NewModel creates a new fullscreen TUI model.
func NewModel(countdown ports.Countdown, theme *config.ThemeConfig) Model {
	resolved := resolveTheme(theme)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(resolved.ColorHelp))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(resolved.ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(resolved.ColorMuted))

	return Model{
		countdown: countdown,
		state:     countdown.State(),
		theme:     resolved,
		keys:      defaultKeyMap(),
		help:      h,
	}
}

// Init initializes the TUI. Ticks arrive through refreshMsg.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case refreshMsg:
		m.state = m.countdown.State()
	case unmountMsg:
		return m.unmount()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.inline || m.unmounted {
			return m, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.handleClick(msg.X, msg.Y)
		}
	}
	return m, nil
}

func (m Model) unmount() (tea.Model, tea.Cmd) {
	m.keys.Unbind()
	m.settingsOpen = false
	m.unmounted = true
	return m, tea.Quit
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// space and r stay live while the panel is open.
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.unmount()
	case key.Matches(msg, m.keys.Toggle):
		m.state = m.countdown.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.state = m.countdown.Reset()
		return m, nil
	}

	if m.settingsOpen {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Apply):
			m.applySwatch(m.swatchCursor)
		case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Settings):
			m.settingsOpen = false
		}
		return m, nil
	}

	for i, b := range m.keys.modeBindings() {
		if key.Matches(msg, b) {
			m.selectMode(i)
			return m, nil
		}
	}
	if key.Matches(msg, m.keys.Settings) {
		m.openSettings()
	}
	return m, nil
}

// handleClick resolves a left click against the current frame.
func (m *Model) handleClick(x, y int) {
	z, ok := m.layout().hit(x, y)

	if m.settingsOpen {
		switch {
		case !ok:
			m.settingsOpen = false
		case z.target == targetSwatch:
			m.applySwatch(z.index)
		case z.target != targetPanel:
			m.settingsOpen = false
		}
		return
	}

	if !ok {
		return
	}
	switch z.target {
	case targetMode:
		m.selectMode(z.index)
	case targetToggle:
		m.state = m.countdown.Toggle()
	case targetReset:
		m.state = m.countdown.Reset()
	case targetSettings:
		m.openSettings()
	}
}

func (m *Model) selectMode(i int) {
	if i < 0 || i >= len(domain.Modes) {
		return
	}
	if st, err := m.countdown.SelectMode(domain.Modes[i]); err == nil {
		m.state = st
	}
}

func (m *Model) openSettings() {
	m.settingsOpen = true
	m.swatchCursor = domain.SwatchIndex(m.state.Accent)
	if m.swatchCursor < 0 {
		m.swatchCursor = 0
	}
}

func (m *Model) moveCursor(delta int) {
	n := len(domain.Palette)
	m.swatchCursor = ((m.swatchCursor+delta)%n + n) % n
}

// applySwatch sets the accent and closes the panel.
func (m *Model) applySwatch(i int) {
	if i < 0 || i >= len(domain.Palette) {
		return
	}
	if st, err := m.countdown.SetAccent(domain.Palette[i].Color); err == nil {
		m.state = st
	}
	m.settingsOpen = false
}

// View renders the model.
func (m Model) View() string {
	return m.layout().String()
}

// layout builds the frame for the current state.
func (m Model) layout() frame {
	if m.inline {
		return place(m.inlineRows(), 0, 0)
	}
	if m.settingsOpen {
		return place(m.panelRows(), m.width, m.height)
	}
	return place(m.timerRows(), m.width, m.height)
}

func (m Model) accent() lipgloss.Color {
	return lipgloss.Color(m.state.Accent)
}

// filledButton draws an active control: accent background.
func (m Model) filledButton(label string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Background(m.accent()).
		Foreground(lipgloss.Color(m.theme.ColorOnAccent)).
		Render("  " + label + "  ")
}

// outlinedButton draws an inactive control: accent text in brackets. It is
// as wide as filledButton for the same label.
func (m Model) outlinedButton(label string) string {
	return lipgloss.NewStyle().
		Foreground(m.accent()).
		Render("[ " + label + " ]")
}

func (m Model) titleRow() row {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorText))
	return textRow(style.Render(m.theme.IconApp + " pomo"))
}

func (m Model) modeRow() row {
	var r row
	for i, mode := range domain.Modes {
		if i > 0 {
			r.segments = append(r.segments, segment{text: " "})
		}
		text := m.outlinedButton(mode.Label())
		if mode == m.state.Mode {
			text = m.filledButton(mode.Label())
		}
		r.segments = append(r.segments, segment{text: text, target: targetMode, index: i})
	}
	return r
}

func (m Model) controlRow() row {
	return row{segments: []segment{
		{text: m.filledButton(m.state.ToggleLabel()), target: targetToggle},
		{text: "  "},
		{text: m.outlinedButton(m.theme.IconReset), target: targetReset},
		{text: " "},
		{text: m.outlinedButton(m.theme.IconSettings), target: targetSettings},
	}}
}

// statusText describes the state in a word or two.
func (m Model) statusText() string {
	switch m.state.Status() {
	case domain.TimerExpired:
		return "Time's up!"
	case domain.TimerRunning:
		return "Running"
	}
	if m.state.Remaining < m.state.Mode.Seconds() {
		return "Paused"
	}
	return "Ready"
}

func (m Model) progressBar(width int) string {
	bar := newProgressBar(m.state.Accent, width)
	return bar.ViewAs(m.state.Progress())
}

func (m Model) timerRows() []row {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorMuted))

	rows := []row{m.titleRow(), textRow(""), m.modeRow(), textRow("")}
	for _, line := range bigClockLines(m.state.Clock(), m.accent(), m.width) {
		rows = append(rows, textRow(line))
	}
	rows = append(rows,
		textRow(""),
		textRow(muted.Render(m.statusText())),
		textRow(m.progressBar(clamp(m.width-8, 10, 40))),
		textRow(""),
		m.controlRow(),
		textRow(""),
		textRow(m.help.ShortHelpView(m.keys.ShortHelp())),
	)
	return rows
}

// swatchSegments renders the palette, bracketing the cursor.
func (m Model) swatchSegments() []segment {
	bracket := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorText))
	var segs []segment
	for i, s := range domain.Palette {
		if i > 0 {
			segs = append(segs, segment{text: " "})
		}
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(m.theme.IconSwatch)
		text := " " + icon + " "
		if i == m.swatchCursor {
			text = bracket.Render("[") + icon + bracket.Render("]")
		}
		segs = append(segs, segment{text: text, target: targetSwatch, index: i})
	}
	return segs
}

func (m Model) swatchName() string {
	s := domain.Palette[m.swatchCursor]
	if s.Color == m.state.Accent {
		return s.Name + " (current)"
	}
	return s.Name
}

func (m Model) panelRows() []row {
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorText))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorMuted))
	border := lipgloss.NewStyle().Foreground(m.accent())

	inner := [][]segment{
		{{text: text.Bold(true).Render("Accent color")}},
		{{text: ""}},
		m.swatchSegments(),
		{{text: muted.Render(m.swatchName())}},
	}
	innerWidth := 0
	for _, segs := range inner {
		innerWidth = max(innerWidth, row{segments: segs}.width())
	}

	rows := []row{
		m.titleRow(),
		textRow(""),
		textRow(lipgloss.NewStyle().Bold(true).Foreground(m.accent()).Render(m.state.Clock()) +
			"  " + muted.Render(m.statusText())),
		textRow(""),
		{
			segments: []segment{{text: border.Render("╭" + strings.Repeat("─", innerWidth+2) + "╮")}},
			target:   targetPanel,
		},
	}
	for _, segs := range inner {
		pad := innerWidth - row{segments: segs}.width()
		r := row{target: targetPanel}
		r.segments = append(r.segments, segment{text: border.Render("│") + " "})
		r.segments = append(r.segments, segs...)
		r.segments = append(r.segments, segment{text: strings.Repeat(" ", pad) + " " + border.Render("│")})
		rows = append(rows, r)
	}
	rows = append(rows,
		row{
			segments: []segment{{text: border.Render("╰" + strings.Repeat("─", innerWidth+2) + "╯")}},
			target:   targetPanel,
		},
		textRow(""),
		textRow(m.help.ShortHelpView(m.keys.panelHelp())),
	)
	return rows
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
