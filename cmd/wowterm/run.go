package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wow-terminal/internal/config"
	"github.com/vovakirdan/wow-terminal/internal/platform/tui"
	"github.com/vovakirdan/wow-terminal/internal/shell"
)

func runTerminal(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal owns stdout, so logs only go to a file when asked.
	logger, closeLog, err := newLogger(io.Discard, "wowterm")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting terminal", "theme", cfg.Theme, "interval", cfg.Interval(), "size", fmt.Sprintf("%dx%d", width, height))

	if err := tui.Run(tui.Options{
		Config: cfg,
		Width:  width,
		Height: height,
		Seed:   flagSeed,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagTheme != "" {
		theme, err := shell.ParseTheme(flagTheme)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Theme = string(theme)
	}

	preset, err := config.ParsePreset(flagBackdrop)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	cfg.SetFPS(flagFPS)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Logs go to fallback unless
// --log names a file. The returned func closes that file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if flagLog != "" {
		path, err := config.ExpandHome(flagLog)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
