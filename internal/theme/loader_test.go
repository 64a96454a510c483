// internal/theme/loader_test.go
package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func writeThemeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing theme file: %v", err)
	}
	return path
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeThemeFile(t, "solar.toml", `
name = "solar"
is_dark = false

[styles.Default]
fg = "#112233"
bg = "reset"

[styles.heading]
fg = "#445566"
bold = true

[styles.broken]
fg = "not-a-color"
`)

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile failed: %v", err)
	}
	if th.Name != "solar" {
		t.Errorf("Name = %q, want solar", th.Name)
	}
	if th.IsDark {
		t.Error("is_dark = false was not honored")
	}

	// heading inherits Default's bg and adds its own fg and bold.
	fg, bg, attr := th.Styles["heading"].Decompose()
	if fg != tcell.NewHexColor(0x445566) {
		t.Errorf("heading fg = %v", fg)
	}
	if bg != tcell.ColorReset {
		t.Errorf("heading bg = %v, want inherited reset", bg)
	}
	if attr&tcell.AttrBold == 0 {
		t.Error("heading lost its bold attribute")
	}

	if _, ok := th.Styles["broken"]; ok {
		t.Error("style with an unparseable color should be skipped")
	}
}

func TestLoadThemeNameFallsBackToFilename(t *testing.T) {
	path := writeThemeFile(t, "nameless.toml", `
[styles.Default]
fg = "#ffffff"
`)

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile failed: %v", err)
	}
	if th.Name != "nameless" {
		t.Errorf("Name = %q, want the file's base name", th.Name)
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	if _, err := LoadThemeFromFile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for a missing theme file")
	}
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{in: "#ff0000", want: tcell.NewHexColor(0xff0000)},
		{in: "  #00FF7f ", want: tcell.NewHexColor(0x00ff7f)},
		{in: "reset", want: tcell.ColorReset},
		{in: "RESET", want: tcell.ColorReset},
		{in: "default", want: tcell.ColorDefault},
		{in: "#abc", wantErr: true},
		{in: "blurple", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseColorString(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseColorString(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseColorString(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseColorString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
