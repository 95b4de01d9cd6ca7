package tui

import (
	"context"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/ports"
)

// Options configures a Timer.
type Options struct {
	Theme  *config.ThemeConfig
	Inline bool
	Logger *log.Logger
}

// Timer mounts a countdown in a Bubbletea program.
type Timer struct {
	countdown ports.Countdown
	opts      Options
	logger    *log.Logger

	mu      sync.RWMutex
	program *tea.Program
	wg      sync.WaitGroup
}

// NewTimer creates a new TUI timer adapter.
func NewTimer(countdown ports.Countdown, opts Options) *Timer {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Timer{
		countdown: countdown,
		opts:      opts,
		logger:    logger,
	}
}

// Run shows the timer and blocks until the user quits or ctx is done.
func (t *Timer) Run(ctx context.Context) error {
	var (
		model       Model
		programOpts []tea.ProgramOption
	)
	if t.opts.Inline {
		model = NewInlineModel(t.countdown, t.opts.Theme)
	} else {
		model = NewModel(t.countdown, t.opts.Theme)
		programOpts = append(programOpts, tea.WithAltScreen(), tea.WithMouseCellMotion())
	}

	program := tea.NewProgram(model, programOpts...)
	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	unsubscribe := t.countdown.Subscribe(func() {
		program.Send(refreshMsg{})
	})
	defer unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle context cancellation
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		<-ctx.Done()
		program.Send(unmountMsg{})
	}()

	t.logger.Debug("tui mounted", "inline", t.opts.Inline)
	_, err := program.Run()

	// Signal cancellation and wait for goroutines
	cancel()
	t.wg.Wait()
	t.logger.Debug("tui unmounted")

	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Stop asks a running timer to unmount.
func (t *Timer) Stop() {
	t.mu.RLock()
	program := t.program
	t.mu.RUnlock()

	if program != nil {
		go program.Send(unmountMsg{})
	}
}
