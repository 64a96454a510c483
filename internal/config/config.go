// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/deck/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	UI     UIConfig      `toml:"ui"`     // [ui] table
	Keys   KeysConfig    `toml:"keys"`   // [keys] table
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `toml:"theme"`
}

// KeysConfig maps each command to the key chords bound to it. Chord
// strings are a single character ("j", "G"), "C-x" for Ctrl, "A-x" for
// Alt, or a named key (Up, Down, Left, Right, Enter, Esc, Tab,
// Backspace).
type KeysConfig struct {
	ScrollDown    []string `toml:"scroll_down"`
	ScrollUp      []string `toml:"scroll_up"`
	NextSlide     []string `toml:"next_slide"`
	PreviousSlide []string `toml:"previous_slide"`
	PageDown      []string `toml:"page_down"`
	PageUp        []string `toml:"page_up"`
	HalfPageDown  []string `toml:"half_page_down"`
	HalfPageUp    []string `toml:"half_page_up"`
	JumpToTop     []string `toml:"jump_to_top"`
	JumpToBottom  []string `toml:"jump_to_bottom"`
	Yank          []string `toml:"yank"`
	Quit          []string `toml:"quit"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		UI: UIConfig{
			Theme: "default",
		},
		Keys: KeysConfig{
			ScrollDown:    []string{"j", "Down"},
			ScrollUp:      []string{"k", "Up"},
			NextSlide:     []string{"l"},
			PreviousSlide: []string{"h"},
			PageDown:      []string{"C-f"},
			PageUp:        []string{"C-b"},
			HalfPageDown:  []string{"C-d"},
			HalfPageUp:    []string{"C-u"},
			JumpToTop:     []string{"g"},
			JumpToBottom:  []string{"G"},
			Yank:          []string{"y"},
			Quit:          []string{"q"},
		},
	}
}

// HelpText builds the footer help line from the first binding of each
// command, pairing opposites the way they read naturally.
func (c *Config) HelpText() string {
	first := func(keys, fallback []string) string {
		if len(keys) > 0 {
			return keys[0]
		}
		return fallback[0]
	}
	d := NewDefaultConfig().Keys
	k := c.Keys
	parts := []string{
		fmt.Sprintf("%s/%s: slides", first(k.PreviousSlide, d.PreviousSlide), first(k.NextSlide, d.NextSlide)),
		fmt.Sprintf("%s/%s: scroll", first(k.ScrollDown, d.ScrollDown), first(k.ScrollUp, d.ScrollUp)),
		fmt.Sprintf("%s/%s: half page", first(k.HalfPageDown, d.HalfPageDown), first(k.HalfPageUp, d.HalfPageUp)),
		fmt.Sprintf("%s/%s: full page", first(k.PageDown, d.PageDown), first(k.PageUp, d.PageUp)),
		fmt.Sprintf("%s/%s: top/bottom", first(k.JumpToTop, d.JumpToTop), first(k.JumpToBottom, d.JumpToBottom)),
		fmt.Sprintf("%s: yank", first(k.Yank, d.Yank)),
		fmt.Sprintf("%s: quit", first(k.Quit, d.Quit)),
	}
	return strings.Join(parts, "  ")
}

// loadFromFile attempts to load configuration from a TOML file.
// A missing file is not an error; the defaults simply stand.
func loadFromFile(filePath string, verbose bool) (*Config, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// mergeKeys replaces each default binding list with the file's list
// when the file provides one. Absent lists keep their defaults.
func mergeKeys(dst, src *KeysConfig) {
	if src.ScrollDown != nil {
		dst.ScrollDown = src.ScrollDown
	}
	if src.ScrollUp != nil {
		dst.ScrollUp = src.ScrollUp
	}
	if src.NextSlide != nil {
		dst.NextSlide = src.NextSlide
	}
	if src.PreviousSlide != nil {
		dst.PreviousSlide = src.PreviousSlide
	}
	if src.PageDown != nil {
		dst.PageDown = src.PageDown
	}
	if src.PageUp != nil {
		dst.PageUp = src.PageUp
	}
	if src.HalfPageDown != nil {
		dst.HalfPageDown = src.HalfPageDown
	}
	if src.HalfPageUp != nil {
		dst.HalfPageUp = src.HalfPageUp
	}
	if src.JumpToTop != nil {
		dst.JumpToTop = src.JumpToTop
	}
	if src.JumpToBottom != nil {
		dst.JumpToBottom = src.JumpToBottom
	}
	if src.Yank != nil {
		dst.Yank = src.Yank
	}
	if src.Quit != nil {
		dst.Quit = src.Quit
	}
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Logger.Level == "" || !logger.ValidLevel(c.Logger.Level) {
		c.Logger.Level = defaults.Logger.Level
	}

	// Every command must keep at least one binding.
	k := &c.Keys
	d := defaults.Keys
	if len(k.ScrollDown) == 0 {
		k.ScrollDown = d.ScrollDown
	}
	if len(k.ScrollUp) == 0 {
		k.ScrollUp = d.ScrollUp
	}
	if len(k.NextSlide) == 0 {
		k.NextSlide = d.NextSlide
	}
	if len(k.PreviousSlide) == 0 {
		k.PreviousSlide = d.PreviousSlide
	}
	if len(k.PageDown) == 0 {
		k.PageDown = d.PageDown
	}
	if len(k.PageUp) == 0 {
		k.PageUp = d.PageUp
	}
	if len(k.HalfPageDown) == 0 {
		k.HalfPageDown = d.HalfPageDown
	}
	if len(k.HalfPageUp) == 0 {
		k.HalfPageUp = d.HalfPageUp
	}
	if len(k.JumpToTop) == 0 {
		k.JumpToTop = d.JumpToTop
	}
	if len(k.JumpToBottom) == 0 {
		k.JumpToBottom = d.JumpToBottom
	}
	if len(k.Yank) == 0 {
		k.Yank = d.Yank
	}
	if len(k.Quit) == 0 {
		k.Quit = d.Quit
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		// The logger is not initialized yet during the initial load.
		verbose := false

		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			} else {
				effectivePath = ""
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath, verbose)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.Level != "" {
					cfg.Logger.Level = fileCfg.Logger.Level
				}
				if fileCfg.Logger.File != "" {
					cfg.Logger.File = fileCfg.Logger.File
				}
				if fileCfg.UI.Theme != "" {
					cfg.UI.Theme = fileCfg.UI.Theme
				}
				mergeKeys(&cfg.Keys, &fileCfg.Keys)
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg, verbose)
		}

		cfg.validate()

		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
