package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tinytelemetry/tally/internal/engine"
	"github.com/tinytelemetry/tally/internal/logging"
	"github.com/tinytelemetry/tally/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var skinName string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/tally/config.yml)")
	flag.StringVar(&skinName, "skin", "", "override skin name (built-in or $HOME/.config/tally/skins/<name>.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Tally - Terminal Calculator\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if skinName != "" {
		cfg.Skin = skinName
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig) error {
	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger := logging.NewLogger(logFile, logging.ParseLevel(cfg.LogLevel))

	dir, err := configDir()
	if err != nil {
		return err
	}
	if err := tui.InitializeSkin(cfg.Skin, dir); err != nil {
		logger.Warn("failed to load skin, using default", "skin", cfg.Skin, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	logger.Info("starting tally", "version", version, "skin", cfg.Skin)

	calc := tui.NewCalculatorModel(engine.New(), logger)
	app := tui.NewApp(calc)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("tally requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	logger.Info("tally stopped")
	return nil
}
