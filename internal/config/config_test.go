// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestHelpTextDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	want := "h/l: slides  j/k: scroll  C-d/C-u: half page  C-f/C-b: full page  g/G: top/bottom  y: yank  q: quit"
	if got := cfg.HelpText(); got != want {
		t.Errorf("HelpText() = %q, want %q", got, want)
	}
}

func TestHelpTextUsesFirstBinding(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Keys.Quit = []string{"Esc", "q"}
	if got := cfg.HelpText(); !strings.HasSuffix(got, "Esc: quit") {
		t.Errorf("HelpText() = %q, want it to end with the first quit binding", got)
	}
}

func TestMergeKeys(t *testing.T) {
	dst := NewDefaultConfig().Keys
	src := KeysConfig{ScrollDown: []string{"n"}}
	mergeKeys(&dst, &src)

	if !reflect.DeepEqual(dst.ScrollDown, []string{"n"}) {
		t.Errorf("ScrollDown = %v, want the file's binding", dst.ScrollDown)
	}
	if !reflect.DeepEqual(dst.ScrollUp, NewDefaultConfig().Keys.ScrollUp) {
		t.Errorf("ScrollUp = %v, want the untouched default", dst.ScrollUp)
	}
}

func TestValidateResetsInvalidValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.UI.Theme = ""
	cfg.Logger.Level = "noisy"
	cfg.Keys.Quit = nil
	cfg.validate()

	if cfg.UI.Theme != "default" {
		t.Errorf("Theme = %q, want reset to default", cfg.UI.Theme)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("Level = %q, want reset to info", cfg.Logger.Level)
	}
	if len(cfg.Keys.Quit) == 0 {
		t.Error("empty quit binding list was not reset")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logger]
level = "debug"

[ui]
theme = "solar"

[keys]
quit = ["x"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := loadFromFile(path, false)
	if err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}
	if cfg.UI.Theme != "solar" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logger.Level)
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, []string{"x"}) {
		t.Errorf("Quit = %v", cfg.Keys.Quit)
	}
	if cfg.Keys.ScrollDown != nil {
		t.Errorf("ScrollDown = %v, want nil for an absent key", cfg.Keys.ScrollDown)
	}
}

func TestLoadFromFileMissingIsNotAnError(t *testing.T) {
	cfg, err := loadFromFile(filepath.Join(t.TempDir(), "absent.toml"), false)
	if err != nil {
		t.Fatalf("a missing config file should not error, got: %v", err)
	}
	if cfg.UI.Theme != "" {
		t.Errorf("missing file should produce a zero config, got theme %q", cfg.UI.Theme)
	}
}
