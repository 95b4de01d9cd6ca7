package integration

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/xvierd/pomo/internal/adapters/sound"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
	"github.com/xvierd/pomo/internal/services"
)

// stepClock fires one scheduled callback per Step.
type stepClock struct {
	mu      sync.Mutex
	pending []*stepTimer
}

type stepTimer struct {
	f    func()
	live bool
}

func (t *stepTimer) Stop() bool {
	was := t.live
	t.live = false
	return was
}

func (c *stepClock) AfterFunc(_ time.Duration, f func()) ports.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &stepTimer{f: f, live: true}
	c.pending = append(c.pending, t)
	return t
}

// Step runs the live callbacks scheduled so far and reports how many ran.
func (c *stepClock) Step() int {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	ran := 0
	for _, t := range pending {
		if t.live {
			t.live = false
			t.f()
			ran++
		}
	}
	return ran
}

type countingChime struct{ n int }

func (c *countingChime) PlayExpiryChime() { c.n++ }

type recordingNotifier struct{ modes []domain.Mode }

func (r *recordingNotifier) NotifyExpired(m domain.Mode) error {
	r.modes = append(r.modes, m)
	return nil
}

// setupConfig writes a config file and loads it the way the CLI does.
func setupConfig(t *testing.T, body string) *config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// TestFullBreakLifecycle runs a short break from mount to expiry and back.
func TestFullBreakLifecycle(t *testing.T) {
	cfg := setupConfig(t, `
accent = "pistachio"

[sound]
enabled = false
`)
	accent, err := cfg.AccentColor()
	if err != nil {
		t.Fatalf("failed to resolve accent: %v", err)
	}

	// Sound disabled in config resolves to the silent chime.
	if chime, _ := sound.New(cfg.Sound.Enabled, cfg.Sound.Bell, nil); chime != (sound.Mute{}) {
		t.Errorf("expected Mute chime, got %T", chime)
	}

	clock := &stepClock{}
	chime := &countingChime{}
	notifier := &recordingNotifier{}
	countdown := services.NewCountdown(clock, chime,
		services.WithNotifier(notifier),
		services.WithAccent(accent),
	)
	defer countdown.Close()

	refreshes := 0
	unsubscribe := countdown.Subscribe(func() { refreshes++ })
	defer unsubscribe()

	t.Run("mount", func(t *testing.T) {
		st := countdown.State()
		if st.Mode != domain.ModePomodoro || st.Clock() != "25:00" {
			t.Errorf("expected idle pomodoro at 25:00, got %+v", st)
		}
		if st.Accent != "#B6C687" {
			t.Errorf("expected configured accent, got %v", st.Accent)
		}
	})

	t.Run("run short break to zero", func(t *testing.T) {
		if _, err := countdown.SelectMode(domain.ModeShortBreak); err != nil {
			t.Fatalf("failed to select mode: %v", err)
		}
		if st := countdown.Toggle(); !st.Running || st.Clock() != "05:00" {
			t.Fatalf("expected running 05:00, got %+v", st)
		}

		for i := 0; i < 300; i++ {
			if ran := clock.Step(); ran != 1 {
				t.Fatalf("tick %d: %d callbacks ran, want 1", i, ran)
			}
		}
		if clock.Step() != 0 {
			t.Error("no tick should be armed after expiry")
		}

		st := countdown.State()
		if st.Status() != domain.TimerExpired || st.Clock() != "00:00" {
			t.Errorf("expected expired at 00:00, got %+v", st)
		}
		if chime.n != 1 {
			t.Errorf("chime played %d times, want 1", chime.n)
		}
		if len(notifier.modes) != 1 || notifier.modes[0] != domain.ModeShortBreak {
			t.Errorf("notifications = %v", notifier.modes)
		}
		if refreshes != 300 {
			t.Errorf("subscriber saw %d refreshes, want 300", refreshes)
		}
	})

	t.Run("toggle after expiry restarts", func(t *testing.T) {
		st := countdown.Toggle()
		if !st.Running || st.Remaining != 300 {
			t.Errorf("expected running from 300, got %+v", st)
		}

		clock.Step()
		if got := countdown.State().Remaining; got != 299 {
			t.Errorf("expected 299 after one tick, got %d", got)
		}
	})

	t.Run("reset and switch cancel the tick", func(t *testing.T) {
		countdown.Reset()
		if clock.Step() != 0 {
			t.Error("reset should cancel the pending tick")
		}

		countdown.Toggle()
		if _, err := countdown.SelectMode(domain.ModeLongBreak); err != nil {
			t.Fatalf("failed to select mode: %v", err)
		}
		if clock.Step() != 0 {
			t.Error("mode switch should cancel the pending tick")
		}
		if st := countdown.State(); st.Clock() != "15:00" || st.Running {
			t.Errorf("expected idle 15:00, got %+v", st)
		}
	})
}
