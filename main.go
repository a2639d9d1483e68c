package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"counterdeck/internal/config"
	"counterdeck/internal/domain"
	"counterdeck/internal/store"
	"counterdeck/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("counterdeck.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	cfg := loadConfig(configSvc, configPath)

	// Create the store seeded from config
	seed := domain.AppState{Counters: []domain.Counter{{Color: cfg.InitialColor, Number: 0}}}
	st := store.NewWithState(seed)

	// Create UI model and program
	uiModel := ui.NewModel(st, cfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward committed transitions to the UI
	stop := ui.ForwardState(st, p)
	defer stop()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Save config on exit if enabled
	if cfg.UISettings.AutosaveOnExit {
		if err := saveConfig(configSvc, cfg, configPath); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}
}

// loadConfig loads config from the given path, or from the default location
// when the path is empty. A missing file yields defaults, persisted so the
// next run finds them.
func loadConfig(configSvc config.ConfigService, path string) *config.Config {
	if path != "" {
		if cfg, err := configSvc.LoadFromPath(path); err == nil {
			log.Printf("Loaded config from %s", path)
			return cfg
		}
		log.Printf("Creating new config at %s", path)
		cfg := config.DefaultConfig()
		if err := configSvc.SaveToPath(cfg, path); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

// saveConfig writes the config back to where it was loaded from.
func saveConfig(configSvc config.ConfigService, cfg *config.Config, path string) error {
	if path != "" {
		return configSvc.SaveToPath(cfg, path)
	}
	return configSvc.Save(cfg)
}
