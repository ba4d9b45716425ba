package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/huepick/internal/tui"
)

var errNotTerminal = errors.New("interactive mode requires a terminal; use 'huepick pick' for scripted use")

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	if !stdoutIsTerminal() {
		return errNotTerminal
	}

	// The terminal belongs to the TUI, so logs only go to a file.
	app, err := newAppContext(flags, nil)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	program := tea.NewProgram(
		tui.NewModel(app.Options, app.Log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := program.Run()
	if err != nil {
		app.Log.Error(err, "interactive session failed")
		return fmt.Errorf("run picker: %w", err)
	}

	model, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	if result := model.Result(); result != "" {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	return nil
}
