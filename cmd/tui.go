package cmd

import (
	"fmt"

	"github.com/theirongolddev/pricecalc/internal/config"
	"github.com/theirongolddev/pricecalc/internal/tui"
	"github.com/theirongolddev/pricecalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if err := validateFlags(cmd); err != nil {
		return err
	}

	cfg, cfgErr := loadConfigOrDefault(cmd)
	log, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if cfgErr != nil {
		log.Warnw("config unreadable, using defaults", "path", configPath(), "error", cfgErr)
	}

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	path := configPath()
	app := tui.NewApp(cfg, tui.Options{
		ConfigPath: path,
		NeedSetup:  !config.Exists(path) && cfgErr == nil,
		Logger:     log,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
