// internal/config/flags.go
package config

import (
	"flag"
	"fmt"

	"github.com/bethropolis/deck/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	ConfigFilePath *string
	Version        *bool
	Theme          *string
	LogLevel       *string
	LogFilePath    *string
}

// DefineFlags sets up the command-line flags and associates them with the Flags struct fields.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	f.Theme = flag.String("theme", "", "Theme name to load - Overrides config file")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file - Overrides config file")
}

// ParseFlags parses the defined command-line flags into the Flags struct.
// It returns the remaining non-flag arguments (e.g., the file path).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config struct with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config, verbose bool) {
	// Visit only processes flags that were actually set.
	flag.Visit(func(fl *flag.Flag) {
		if verbose {
			logger.Debugf("Applying flag override: %s", fl.Name)
		}
		switch fl.Name {
		case "theme":
			if f.Theme != nil && *f.Theme != "" {
				cfg.UI.Theme = *f.Theme
			}
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.Level = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil && *f.LogFilePath != "" {
				cfg.Logger.File = *f.LogFilePath
			}
		}
	})
}
