// internal/theme/theme.go
package theme

import (
	"strings"
	"sync"

	"github.com/bethropolis/deck/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme maps style role names to resolved tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves a role name to a style, falling back from the exact
// name to the part before the first dot, then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	baseName := name
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName = name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			if baseName != name {
				logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			}
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Merge lays a role style over an inherited base style: non-default
// colors in the overlay replace the base's, attribute masks combine.
// This is how style context flows down the render tree.
func Merge(base, overlay tcell.Style) tcell.Style {
	oFg, oBg, oAttr := overlay.Decompose()
	_, _, bAttr := base.Decompose()

	style := base.Attributes(bAttr | oAttr)
	if oFg != tcell.ColorDefault {
		style = style.Foreground(oFg)
	}
	if oBg != tcell.ColorDefault {
		style = style.Background(oBg)
	}
	return style
}

// --- Built-in Theme ---

var DefaultDark Theme

func init() {
	// Palette
	dkForeground := tcell.NewHexColor(0xc5cdd9) // Soft off-white (default text)
	dkBackground := tcell.NewHexColor(0x2a2f38) // Muted dark blue/grey (status bar bg)
	dkGray := tcell.NewHexColor(0x5c6370)       // Muted grey (code blocks, rules)
	dkCyan := tcell.NewHexColor(0x56b6c2)       // Soft cyan (headings)
	dkGreen := tcell.NewHexColor(0x98c379)      // Soft green (inline code)
	dkYellow := tcell.NewHexColor(0xe5c07b)     // Soft yellow (quotes)
	dkBlue := tcell.NewHexColor(0x61afef)       // Soft blue (links)

	// Use the terminal background, keep text readable on it.
	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dkForeground)

	DefaultDark = Theme{
		Name:   "default",
		IsDark: true,
		Styles: map[string]tcell.Style{
			// --- UI Elements ---
			"Default":            baseStyle,
			"StatusBar":          tcell.StyleDefault.Background(dkBackground).Foreground(dkForeground),
			"StatusBarMessage":   tcell.StyleDefault.Background(dkBackground).Foreground(dkForeground).Bold(true),
			"StatusBarIndicator": tcell.StyleDefault.Background(dkBackground).Foreground(dkYellow),

			// --- Markdown Roles ---
			"heading":     baseStyle.Foreground(dkCyan).Bold(true),
			"quote":       baseStyle.Foreground(dkYellow).Italic(true),
			"link":        baseStyle.Foreground(dkBlue).Underline(true),
			"code":        baseStyle.Foreground(dkGray),
			"code.block":  baseStyle.Foreground(dkGray),
			"code.inline": baseStyle.Foreground(dkGreen).Bold(true),
			"rule":        baseStyle.Foreground(dkGray),
		},
	}

	currentTheme = &DefaultDark
}

// --- Active Theme ---

var (
	currentTheme *Theme
	currentMu    sync.RWMutex
)

// Current returns the active theme.
func Current() *Theme {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentTheme == nil {
		return &DefaultDark
	}
	return currentTheme
}

// SetCurrent replaces the active theme.
func SetCurrent(t *Theme) {
	if t == nil {
		return
	}
	currentMu.Lock()
	currentTheme = t
	currentMu.Unlock()
	logger.Infof("Theme set to: %s", t.Name)
}
