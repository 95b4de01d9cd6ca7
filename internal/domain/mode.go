// Package domain contains the core entities of the Pomodoro countdown.
// They are independent of the terminal UI, the audio backend and any
// other infrastructure.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Common domain errors.
var (
	ErrUnknownMode  = errors.New("unknown timer mode")
	ErrUnknownColor = errors.New("unknown accent color")
)

// Mode is one of the fixed countdown presets.
type Mode string

const (
	ModePomodoro   Mode = "pomodoro"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Modes lists every mode in display order.
var Modes = []Mode{
	ModePomodoro,
	ModeShortBreak,
	ModeLongBreak,
}

// modeSeconds is the immutable mode registry.
var modeSeconds = map[Mode]int{
	ModePomodoro:   25 * 60,
	ModeShortBreak: 5 * 60,
	ModeLongBreak:  15 * 60,
}

// Valid reports whether m is a registered mode.
func (m Mode) Valid() bool {
	_, ok := modeSeconds[m]
	return ok
}

// Seconds returns the full duration of the mode in whole seconds.
// Unknown modes have no duration.
func (m Mode) Seconds() int {
	return modeSeconds[m]
}

// Duration returns the full duration of the mode.
func (m Mode) Duration() time.Duration {
	return time.Duration(m.Seconds()) * time.Second
}

// Label returns a human-readable label.
func (m Mode) Label() string {
	switch m {
	case ModePomodoro:
		return "Pomodoro"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// IsBreak returns true for the two rest modes.
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// ParseMode resolves user input to a mode. Case, dashes and spaces are
// ignored, and "short", "long", "work" and "focus" are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)

	switch key {
	case "pomodoro", "work", "focus":
		return ModePomodoro, nil
	case "short_break", "shortbreak", "short":
		return ModeShortBreak, nil
	case "long_break", "longbreak", "long":
		return ModeLongBreak, nil
	}
	return "", fmt.Errorf("%w %q: must be one of pomodoro, short_break, long_break", ErrUnknownMode, s)
}
