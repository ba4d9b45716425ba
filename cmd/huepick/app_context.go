package main

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/huepick/internal/config"
	"github.com/alexisbeaulieu97/huepick/internal/logger"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
	"github.com/alexisbeaulieu97/huepick/pkg/color"
)

// AppContext bundles the configuration and services a command needs.
type AppContext struct {
	Config  *config.Config
	Options picker.Options
	Log     *logger.Logger
}

// newAppContext loads the configuration and builds the logger. Logs go to
// logOut unless a log file is configured; a nil logOut without a file
// disables logging.
func newAppContext(flags *rootFlags, logOut io.Writer) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	file := cfg.Log.File
	if flags.logFile != "" {
		file = flags.logFile
	}

	var log *logger.Logger
	if logOut != nil || file != "" {
		log, err = logger.New(logger.Options{
			Level:         level,
			HumanReadable: true,
			Writer:        logOut,
			File:          file,
		})
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
	}

	opts, err := cfg.PickerOptions(log)
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	return &AppContext{Config: cfg, Options: opts, Log: log}, nil
}

// overrideHue replaces the configured initial hue when s is non-empty.
func (a *AppContext) overrideHue(s string) error {
	if s == "" {
		return nil
	}
	hue, err := color.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid --hue: %w", err)
	}
	a.Options.Hue = hue
	return nil
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	return a.Log.Close()
}
