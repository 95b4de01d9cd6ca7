package domain

import "fmt"

// TimerStatus is the derived state of a TimerState.
type TimerStatus string

const (
	TimerIdle    TimerStatus = "idle"
	TimerRunning TimerStatus = "running"
	TimerExpired TimerStatus = "expired"
)

// TimerState is the countdown state machine.
//
// Remaining is always within [0, Mode.Seconds()] and Running is false
// whenever Remaining is zero. The zero value is not usable; call
// NewTimerState.
type TimerState struct {
	Mode      Mode
	Remaining int
	Running   bool
	Accent    Color
}

// NewTimerState returns an idle pomodoro with the full duration and the
// default accent.
func NewTimerState() TimerState {
	return TimerState{
		Mode:      ModePomodoro,
		Remaining: ModePomodoro.Seconds(),
		Accent:    DefaultColor,
	}
}

// SelectMode switches to m and stops the countdown with the full duration
// of m remaining.
func (s *TimerState) SelectMode(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownMode, m)
	}
	s.Mode = m
	s.Remaining = m.Seconds()
	s.Running = false
	return nil
}

// Toggle starts an idle timer and pauses a running one. An expired timer is
// restored to the full duration of its mode and started.
func (s *TimerState) Toggle() {
	if s.Remaining <= 0 {
		s.Remaining = s.Mode.Seconds()
		s.Running = s.Remaining > 0
		return
	}
	s.Running = !s.Running
}

// Reset stops the countdown and restores the full duration of the
// current mode.
func (s *TimerState) Reset() {
	s.Remaining = s.Mode.Seconds()
	s.Running = false
}

// Tick advances a running timer by one second. It reports true only on the
// tick that brings Remaining to zero; ticks on a stopped or expired timer
// do nothing.
func (s *TimerState) Tick() bool {
	if !s.Running {
		return false
	}
	if s.Remaining <= 1 {
		s.Remaining = 0
		s.Running = false
		return true
	}
	s.Remaining--
	return false
}

// SetAccent changes the accent color. Timer fields are left untouched.
func (s *TimerState) SetAccent(c Color) error {
	i := SwatchIndex(c)
	if i < 0 {
		return fmt.Errorf("%w %q", ErrUnknownColor, c)
	}
	s.Accent = Palette[i].Color
	return nil
}

// Status derives Idle, Running or Expired.
func (s TimerState) Status() TimerStatus {
	switch {
	case s.Remaining <= 0:
		return TimerExpired
	case s.Running:
		return TimerRunning
	default:
		return TimerIdle
	}
}

// Clock returns the remaining time as mm:ss.
func (s TimerState) Clock() string {
	return FormatClock(s.Remaining)
}

// ToggleLabel is the label of the start/pause control.
func (s TimerState) ToggleLabel() string {
	if s.Running {
		return "Pause"
	}
	return "Start"
}

// Progress returns the elapsed fraction of the current mode (0.0 to 1.0).
func (s TimerState) Progress() float64 {
	total := s.Mode.Seconds()
	if total == 0 {
		return 0
	}
	p := float64(total-s.Remaining) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// FormatClock formats whole seconds as mm:ss, both zero-padded.
// Negative input is shown as 00:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
