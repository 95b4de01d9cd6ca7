// Package services holds the use cases that sit between the terminal UI and
// the domain state machine.
package services

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// TickInterval is the wall-clock time between two decrements.
const TickInterval = time.Second

// Countdown is one mounted timer: the state machine plus its tick driver
// and expiry side effects.
//
// Every mutation re-arms the driver: the pending tick is stopped and, if the
// timer is still running, exactly one new tick is scheduled. Ticks carry the
// generation they were armed with, so a callback that lost the race against
// a user action is dropped.
type Countdown struct {
	mu        sync.Mutex
	id        string
	state     domain.TimerState
	clock     ports.Clock
	chime     ports.Chime
	notifier  ports.Notifier
	logger    *log.Logger
	pending   ports.Timer
	gen       uint64
	listeners map[int]func()
	nextID    int
	closed    bool
}

// Option configures a Countdown.
type Option func(*Countdown)

// WithNotifier adds a notifier that is told about every expiry.
func WithNotifier(n ports.Notifier) Option {
	return func(c *Countdown) {
		c.notifier = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Countdown) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAccent sets the accent the countdown mounts with. Colors outside the
// palette are ignored.
func WithAccent(color domain.Color) Option {
	return func(c *Countdown) {
		_ = c.state.SetAccent(color)
	}
}

// NewCountdown mounts an idle pomodoro countdown.
func NewCountdown(clock ports.Clock, chime ports.Chime, opts ...Option) *Countdown {
	c := &Countdown{
		id:        domain.NewInstanceID(),
		state:     domain.NewTimerState(),
		clock:     clock,
		chime:     chime,
		logger:    log.New(io.Discard),
		listeners: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("countdown", c.id[:8])
	c.logger.Debug("mounted", "mode", c.state.Mode, "accent", c.state.Accent)
	return c
}

// ID returns the instance identifier of this mount.
func (c *Countdown) ID() string {
	return c.id
}

// State returns a snapshot of the current state.
func (c *Countdown) State() domain.TimerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SelectMode switches mode and stops the countdown.
func (c *Countdown) SelectMode(m domain.Mode) (domain.TimerState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.state.SelectMode(m); err != nil {
		return c.state, err
	}
	c.rearmLocked()
	c.logger.Debug("mode selected", "mode", m, "remaining", c.state.Remaining)
	return c.state, nil
}

// Toggle starts or pauses the countdown. A closed countdown stays paused.
func (c *Countdown) Toggle() domain.TimerState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.state
	}
	c.state.Toggle()
	c.rearmLocked()
	c.logger.Debug("toggled", "running", c.state.Running, "remaining", c.state.Remaining)
	return c.state
}

// Reset stops the countdown and restores the full duration of the mode.
func (c *Countdown) Reset() domain.TimerState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Reset()
	c.rearmLocked()
	c.logger.Debug("reset", "mode", c.state.Mode, "remaining", c.state.Remaining)
	return c.state
}

// SetAccent changes the accent color. The countdown itself is unaffected.
func (c *Countdown) SetAccent(color domain.Color) (domain.TimerState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.state.SetAccent(color); err != nil {
		return c.state, err
	}
	c.logger.Debug("accent changed", "accent", c.state.Accent)
	return c.state, nil
}

// Subscribe registers fn to be called after every tick-driven change.
// Changes made through SelectMode, Toggle and Reset are returned to the
// caller instead. The returned function removes the subscription.
func (c *Countdown) Subscribe(fn func()) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// Close cancels the pending tick, pauses the state and drops all
// subscribers. The countdown stays readable but no longer ticks.
func (c *Countdown) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.state.Running = false
	c.stopPendingLocked()
	c.gen++
	c.listeners = make(map[int]func())
	c.logger.Debug("unmounted")
}

// rearmLocked cancels the pending tick and schedules a new one if the
// timer is still running. c.mu must be held.
func (c *Countdown) rearmLocked() {
	c.stopPendingLocked()
	c.gen++
	if c.closed || !c.state.Running || c.state.Remaining <= 0 {
		return
	}
	gen := c.gen
	c.pending = c.clock.AfterFunc(TickInterval, func() {
		c.tick(gen)
	})
}

func (c *Countdown) stopPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

// tick is the scheduled callback for generation gen.
func (c *Countdown) tick(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	expired := c.state.Tick()
	c.rearmLocked()
	mode := c.state.Mode
	listeners := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	if expired {
		c.logger.Info("countdown expired", "mode", mode)
		if c.chime != nil {
			c.chime.PlayExpiryChime()
		}
		if c.notifier != nil {
			if err := c.notifier.NotifyExpired(mode); err != nil {
				c.logger.Warn("notification failed", "err", err)
			}
		}
	}

	for _, fn := range listeners {
		fn()
	}
}

// Ensure Countdown implements ports.Countdown.
var _ ports.Countdown = (*Countdown)(nil)
