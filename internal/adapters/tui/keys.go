package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings the model reacts to. The bindings live only as
// long as the model is mounted; Unbind releases them.
type keyMap struct {
	Toggle     key.Binding
	Reset      key.Binding
	Pomodoro   key.Binding
	ShortBreak key.Binding
	LongBreak  key.Binding
	Settings   key.Binding
	Left       key.Binding
	Right      key.Binding
	Apply      key.Binding
	Close      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reset"),
		),
		Pomodoro: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1/2/3", "mode"),
		),
		ShortBreak: key.NewBinding(key.WithKeys("2")),
		LongBreak:  key.NewBinding(key.WithKeys("3")),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "color"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "choose"),
		),
		Right: key.NewBinding(key.WithKeys("right", "l")),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the timer screen.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Pomodoro, k.Settings, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), k.panelHelp()}
}

// panelHelp lists the bindings shown while the color panel is open.
func (k keyMap) panelHelp() []key.Binding {
	return []key.Binding{k.Left, k.Apply, k.Close, k.Toggle}
}

// modeBindings returns the mode shortcuts in domain.Modes order.
func (k keyMap) modeBindings() []key.Binding {
	return []key.Binding{k.Pomodoro, k.ShortBreak, k.LongBreak}
}

// Unbind removes every key from every binding, so nothing matches anymore.
func (k *keyMap) Unbind() {
	for _, b := range []*key.Binding{
		&k.Toggle, &k.Reset, &k.Pomodoro, &k.ShortBreak, &k.LongBreak,
		&k.Settings, &k.Left, &k.Right, &k.Apply, &k.Close, &k.Quit,
	} {
		b.Unbind()
	}
}
