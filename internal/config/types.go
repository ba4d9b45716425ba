package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/huepick/internal/logger"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
	"github.com/alexisbeaulieu97/huepick/internal/surface"
	"github.com/alexisbeaulieu97/huepick/pkg/color"
)

// Config represents the huepick configuration document.
type Config struct {
	Width           int         `yaml:"width" validate:"min=1,max=4096"`
	Height          int         `yaml:"height" validate:"min=1,max=4096"`
	IndicatorRadius float64     `yaml:"indicator_radius" validate:"gt=0,lte=64"`
	StripRatio      float64     `yaml:"strip_ratio" validate:"gt=0,lte=1"`
	Density         float64     `yaml:"density" validate:"gte=1,lte=4"`
	Hue             string      `yaml:"hue" validate:"required,color"`
	Log             LogSettings `yaml:"log,omitempty"`
}

// LogSettings controls structured logging.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Width:           picker.DefaultWidth,
		Height:          picker.DefaultHeight,
		IndicatorRadius: picker.DefaultIndicatorRadius,
		StripRatio:      picker.DefaultStripRatio,
		Density:         1,
		Hue:             color.Red.String(),
		Log:             LogSettings{Level: "info"},
	}
}

// PickerOptions maps the configuration onto picker options.
func (c *Config) PickerOptions(log *logger.Logger) (picker.Options, error) {
	hue, err := color.Parse(c.Hue)
	if err != nil {
		return picker.Options{}, fmt.Errorf("hue: %w", err)
	}

	opts := picker.DefaultOptions()
	opts.Width = c.Width
	opts.Height = c.Height
	opts.IndicatorRadius = c.IndicatorRadius
	opts.StripRatio = c.StripRatio
	opts.Hue = hue
	opts.Scaler = surface.FixedDensity(c.Density)
	opts.Logger = log
	return opts, nil
}
