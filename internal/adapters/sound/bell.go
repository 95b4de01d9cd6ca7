package sound

import (
	"github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomo/internal/ports"
)

// Bell rings the system beeper.
type Bell struct {
	beep   func(freq float64, duration int) error
	logger *log.Logger
}

// NewBell returns a bell using beeep's default tone.
func NewBell(logger *log.Logger) *Bell {
	return &Bell{beep: beeep.Beep, logger: logger}
}

// PlayExpiryChime implements ports.Chime. The beep blocks for its duration,
// so it runs in its own goroutine.
func (b *Bell) PlayExpiryChime() {
	go func() {
		if err := b.beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil && b.logger != nil {
			b.logger.Debug("bell failed", "err", err)
		}
	}()
}

// Mute is a chime that plays nothing.
type Mute struct{}

// PlayExpiryChime implements ports.Chime.
func (Mute) PlayExpiryChime() {}

// Close implements io.Closer.
func (Mute) Close() error { return nil }

var (
	_ ports.Chime = (*Bell)(nil)
	_ ports.Chime = Mute{}
)
