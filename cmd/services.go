package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/xvierd/pomo/internal/adapters/notification"
	"github.com/xvierd/pomo/internal/adapters/sound"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/ports"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	logger   *log.Logger
	logFile  *os.File
	chime    ports.Chime
	audio    io.Closer
	notifier *notification.Notifier
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads configuration and sets up logging.
func initializeServices() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		// A config file named on the command line must exist.
		if configPath != "" && errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	loadErr := err
	if cfg == nil {
		// If config loading fails, use defaults
		cfg = config.DefaultConfig()
	}
	applyFlagOverrides(cfg)
	app.config = cfg

	logger, f, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	app.logger = logger
	app.logFile = f

	if loadErr != nil {
		app.logger.Warn("config not loaded, using defaults", "err", loadErr)
	}
	app.logger.Debug("config loaded", "accent", cfg.Accent, "sound", cfg.Sound.Enabled, "notifications", cfg.Notifications.Enabled)
	return nil
}

// applyFlagOverrides lets command-line flags win over file and environment.
func applyFlagOverrides(cfg *config.Config) {
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if muteSound {
		cfg.Sound.Enabled = false
	}
}

// initializeTimerServices acquires the devices only the timer needs.
func initializeTimerServices() {
	app.chime, app.audio = sound.New(app.config.Sound.Enabled, app.config.Sound.Bell, app.logger)
	app.notifier = notification.New(&app.config.Notifications)
}

// newLogger builds the application logger. The terminal belongs to the UI,
// so without a file the logger discards everything.
func newLogger(cfg config.LogConfig) (*log.Logger, *os.File, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var (
		w    io.Writer = io.Discard
		file *os.File
	)
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = file
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "pomo",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	return logger, file, nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	var errs []error
	if app.audio != nil {
		errs = append(errs, app.audio.Close())
		app.audio = nil
	}
	if app.logFile != nil {
		errs = append(errs, app.logFile.Close())
		app.logFile = nil
	}
	return errors.Join(errs...)
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
