// Package clock provides the wall-clock implementation of ports.Clock.
package clock

import (
	"time"

	"github.com/xvierd/pomo/internal/ports"
)

// System schedules callbacks with the runtime timer.
type System struct{}

// New returns the system clock.
func New() System {
	return System{}
}

// AfterFunc implements ports.Clock.
func (System) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}

// Ensure System implements ports.Clock.
var _ ports.Clock = System{}
