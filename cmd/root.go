// Package cmd provides the CLI commands for pomo.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomo/internal/adapters/clock"
	"github.com/xvierd/pomo/internal/adapters/tui"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath string
	jsonOutput bool
	inlineMode bool
	muteSound  bool
	modeFlag   string
	colorFlag  string
	logFile    string
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "pomo - a Pomodoro countdown for the terminal",
	Long: `pomo is a single Pomodoro countdown: pick a mode, start it, and a
chime plays when it reaches zero.

Keys: space start/pause, r reset, 1/2/3 mode, s accent color, q quit.
Mode buttons, controls and color swatches can also be clicked.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.pomo/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "Initial mode: pomodoro, short_break, long_break")
	rootCmd.Flags().StringVarP(&colorFlag, "color", "c", "", "Accent color: a palette name or hex value")
	rootCmd.Flags().BoolVarP(&inlineMode, "inline", "i", false, "Compact inline timer (no fullscreen)")
	rootCmd.Flags().BoolVar(&muteSound, "mute", false, "Do not play the chime")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pomo\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(colorsCmd)
}

// timerOptions are the resolved launch settings of the bare command.
type timerOptions struct {
	mode   domain.Mode
	accent domain.Color
}

// resolveTimerOptions applies flags over configuration.
func resolveTimerOptions() (timerOptions, error) {
	opts := timerOptions{mode: domain.ModePomodoro}

	if modeFlag != "" {
		m, err := domain.ParseMode(modeFlag)
		if err != nil {
			return opts, fmt.Errorf("invalid --mode: %w", err)
		}
		opts.mode = m
	}

	if colorFlag != "" {
		s, err := domain.LookupSwatch(colorFlag)
		if err != nil {
			return opts, fmt.Errorf("invalid --color: %w", err)
		}
		opts.accent = s.Color
		return opts, nil
	}

	accent, err := app.config.AccentColor()
	if err != nil {
		return opts, fmt.Errorf("invalid accent: %w", err)
	}
	opts.accent = accent
	return opts, nil
}

// runTimer mounts the countdown and blocks until the user quits.
func runTimer(cmd *cobra.Command, args []string) (err error) {
	// cobra skips PersistentPostRunE when RunE fails.
	defer func() {
		err = errors.Join(err, cleanupServices())
	}()

	opts, err := resolveTimerOptions()
	if err != nil {
		return err
	}

	initializeTimerServices()

	countdown := services.NewCountdown(
		clock.New(),
		app.chime,
		services.WithNotifier(app.notifier),
		services.WithLogger(app.logger),
		services.WithAccent(opts.accent),
	)
	defer countdown.Close()

	if _, err := countdown.SelectMode(opts.mode); err != nil {
		return fmt.Errorf("failed to select mode: %w", err)
	}

	timer := tui.NewTimer(countdown, tui.Options{
		Theme:  &app.config.Theme,
		Inline: inlineMode,
		Logger: app.logger,
	})

	ctx := setupSignalHandler()
	if err := timer.Run(ctx); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}
	return nil
}
