// Package ports defines the interfaces between the countdown core and the
// infrastructure around it (clock, audio, notifications) following
// hexagonal architecture principles.
package ports

import (
	"time"

	"github.com/xvierd/pomo/internal/domain"
)

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports false if the callback already ran
	// or was already stopped.
	Stop() bool
}

// Clock schedules callbacks.
// This is a driven port (implemented by adapters and by tests).
type Clock interface {
	// AfterFunc calls f in its own goroutine after d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Chime is the end-of-session side-effect sink.
// This is a driven port (implemented by adapters).
type Chime interface {
	// PlayExpiryChime starts the chime and returns immediately.
	// Playback failures are swallowed by the implementation.
	PlayExpiryChime()
}

// Notifier delivers an out-of-band message when a countdown expires.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyExpired announces that a countdown in mode m reached zero.
	NotifyExpired(m domain.Mode) error
}

// Countdown is the timer as seen by an input surface.
// This is a driving port (implemented by services.Countdown).
type Countdown interface {
	State() domain.TimerState
	SelectMode(m domain.Mode) (domain.TimerState, error)
	Toggle() domain.TimerState
	Reset() domain.TimerState
	SetAccent(c domain.Color) (domain.TimerState, error)

	// Subscribe registers fn to be called after every tick-driven change.
	// fn runs on the clock's goroutine.
	Subscribe(fn func()) (unsubscribe func())
}
