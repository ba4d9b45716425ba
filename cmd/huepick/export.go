package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huepick/internal/picker"
	"github.com/alexisbeaulieu97/huepick/internal/surface"
)

type exportOptions struct {
	dir    string
	prefix string
	hue    string
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the rendered surfaces as PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "out", "o", ".", "Output directory")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "huepick", "File name prefix")
	cmd.Flags().StringVar(&opts.hue, "hue", "", "Hue of the main field, e.g. \"rgb(0, 0, 255)\"")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts exportOptions) error {
	app, err := newAppContext(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err := app.overrideHue(opts.hue); err != nil {
		return err
	}

	if err := os.MkdirAll(opts.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := picker.New(app.Options)
	for _, kind := range surface.Kinds {
		path := filepath.Join(opts.dir, fmt.Sprintf("%s-%s.png", opts.prefix, kind))
		if err := writePNG(path, p.Surface(kind)); err != nil {
			return err
		}
		app.Log.With("path", path).Debug("surface exported")
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}

func writePNG(path string, s *surface.Surface) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(f, s.Image()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
