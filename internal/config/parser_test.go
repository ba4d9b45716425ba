package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huepick/internal/surface"
	"github.com/alexisbeaulieu97/huepick/pkg/color"
	huepickerrors "github.com/alexisbeaulieu97/huepick/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `width: 240
height: 120
density: 2
hue: "rgb(0, 0, 255)"
log:
  level: debug
`

	invalidYAML := `width: [1, 2]
`

	badHue := `hue: "blue"
`

	badLevel := `log:
  level: loud
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration overrides defaults",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 240, cfg.Width)
				require.Equal(t, 120, cfg.Height)
				require.Equal(t, 2.0, cfg.Density)
				require.Equal(t, "debug", cfg.Log.Level)
				require.InDelta(t, 0.12, cfg.StripRatio, 1e-9)
				require.InDelta(t, 3.5, cfg.IndicatorRadius, 1e-9)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *huepickerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "malformed hue returns validation error",
			contents: badHue,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *huepickerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "hue", validationErr.Field)
				require.Contains(t, validationErr.Message, "color")
			},
		},
		{
			name:     "nested fields use yaml names",
			contents: badLevel,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *huepickerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.level", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "huepick.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *huepickerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestValidateConfigRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }, field: "width"},
		{name: "huge height", mutate: func(c *Config) { c.Height = 5000 }, field: "height"},
		{name: "strip ratio above one", mutate: func(c *Config) { c.StripRatio = 1.5 }, field: "strip_ratio"},
		{name: "density below one", mutate: func(c *Config) { c.Density = 0.5 }, field: "density"},
		{name: "missing hue", mutate: func(c *Config) { c.Hue = "" }, field: "hue"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			var validationErr *huepickerrors.ValidationError
			require.ErrorAs(t, ValidateConfig(cfg), &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}

	require.NoError(t, ValidateConfig(Default()))
	require.Error(t, ValidateConfig(nil))
}

func TestPickerOptions(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Width = 90
	cfg.Hue = "rgba(0, 255, 0, 0.5)"
	cfg.Density = 2

	opts, err := cfg.PickerOptions(nil)
	require.NoError(t, err)
	require.Equal(t, 90, opts.Width)
	require.Equal(t, 180, opts.Height)
	require.Equal(t, color.RGBA(0, 255, 0, 0.5), opts.Hue)
	require.Equal(t, surface.FixedDensity(2), opts.Scaler)

	cfg.Hue = "green"
	_, err = cfg.PickerOptions(nil)
	require.ErrorIs(t, err, color.ErrSyntax)
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}
