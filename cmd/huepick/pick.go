package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huepick/internal/geometry"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
	"github.com/alexisbeaulieu97/huepick/internal/pointer"
	"github.com/alexisbeaulieu97/huepick/internal/surface"
	huepickerrors "github.com/alexisbeaulieu97/huepick/pkg/errors"
)

type pickOptions struct {
	x        int
	y        int
	hueY     int
	opacityY int
	format   string
	hue      string
}

func newPickCmd(flags *rootFlags) *cobra.Command {
	opts := pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a color without a terminal UI",
		Long: "Pick simulates pointer presses on the spectrum, the opacity ramp and the main field, " +
			"in that order, and prints the resulting color. Surfaces whose flags are not set keep " +
			"their initial state.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVar(&opts.x, "x", 0, "Main field column; when only --y is set the right edge is used")
	cmd.Flags().IntVar(&opts.y, "y", 0, "Main field row; the main field is pressed only when --x or --y is set")
	cmd.Flags().IntVar(&opts.hueY, "hue-y", 0, "Spectrum row")
	cmd.Flags().IntVar(&opts.opacityY, "opacity-y", 0, "Opacity ramp row")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "rgb", "Output format: rgb or hex")
	cmd.Flags().StringVar(&opts.hue, "hue", "", "Initial hue, e.g. \"rgb(0, 0, 255)\"")

	return cmd
}

func runPick(cmd *cobra.Command, flags *rootFlags, opts pickOptions) error {
	if opts.format != "rgb" && opts.format != "hex" {
		return huepickerrors.NewValidationError("format", fmt.Sprintf("unsupported format %q", opts.format), nil)
	}

	app, err := newAppContext(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err := app.overrideHue(opts.hue); err != nil {
		return err
	}

	p := picker.New(app.Options)
	dispatcher := p.Dispatcher()
	changed := cmd.Flags().Changed

	if changed("hue-y") {
		if err := press(p, dispatcher, surface.Spectrum, 0, opts.hueY); err != nil {
			return err
		}
	}
	if changed("opacity-y") {
		if err := press(p, dispatcher, surface.Opacity, 0, opts.opacityY); err != nil {
			return err
		}
	}
	if changed("x") || changed("y") {
		x := opts.x
		if !changed("x") {
			x = p.Width() - 1
		}
		if err := press(p, dispatcher, surface.Main, x, opts.y); err != nil {
			return err
		}
	}

	c := p.Color()
	out := c.String()
	if opts.format == "hex" {
		out = c.Hex()
	}
	app.Log.With("color", c.String()).Debug("color picked")
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// press clicks the local point (x, y) of a surface.
func press(p *picker.Picker, d *pointer.Dispatcher, kind surface.Kind, x, y int) error {
	bounds := p.Bounds(kind)
	if x < 0 || x >= bounds.Width {
		return huepickerrors.NewDimensionError(kind.String(), "x", x, bounds.Width)
	}
	if y < 0 || y >= bounds.Height {
		return huepickerrors.NewDimensionError(kind.String(), "y", y, bounds.Height)
	}

	at := bounds.Min.Add(geometry.Pt(x, y))
	d.Dispatch(pointer.Event{Phase: pointer.Press, Pos: at})
	d.Dispatch(pointer.Event{Phase: pointer.Release, Pos: at})
	return nil
}
