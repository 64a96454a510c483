// cmd/deck/main.go
package main

import (
	"fmt"
	stlog "log" // Use standard log for fatal errors before logger is ready
	"os"

	"github.com/bethropolis/deck/internal/app"
	"github.com/bethropolis/deck/internal/config"
	"github.com/bethropolis/deck/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	// --- Configuration ---
	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	if err := logger.Init(cfg.Logger); err != nil {
		stlog.Fatalf("Failed to initialize logger: %v", err)
	}

	logger.Infof("Starting %s...", config.AppName)

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <presentation.md>\n", config.AppName)
		os.Exit(2)
	}
	filePath := args[0]

	// --- Create and Run App ---
	deckApp, err := app.NewApp(filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	if err := deckApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
