// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg    *config.NotificationConfig
	notify func(title, message string, icon any) error
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	beeep.AppName = "pomo"
	return &Notifier{cfg: cfg, notify: beeep.Notify}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return n.notify(title, message, "")
}

// NotifyExpired announces the end of a session in the given mode.
func (n *Notifier) NotifyExpired(mode domain.Mode) error {
	if mode.IsBreak() {
		return n.Notify(
			"☕ Break Over!",
			fmt.Sprintf("Your %s is complete. Ready to focus?", strings.ToLower(mode.Label())),
		)
	}
	return n.Notify(
		"🍅 Pomodoro Complete!",
		fmt.Sprintf("Great job! You completed a %d minute work session.", int(mode.Duration().Minutes())),
	)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

var _ ports.Notifier = (*Notifier)(nil)
