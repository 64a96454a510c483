// internal/input/keymap_test.go
package input

import (
	"strings"
	"testing"

	"github.com/bethropolis/deck/internal/config"
	"github.com/gdamore/tcell/v2"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		binding string
		want    Chord
		wantErr bool
	}{
		{binding: "j", want: Chord{Key: tcell.KeyRune, Rune: 'j'}},
		{binding: "G", want: Chord{Key: tcell.KeyRune, Rune: 'G'}},
		{binding: "C-d", want: Chord{Key: tcell.KeyCtrlD}},
		{binding: "C-D", want: Chord{Key: tcell.KeyCtrlD}},
		{binding: "A-x", want: Chord{Key: tcell.KeyRune, Rune: 'x', Mods: tcell.ModAlt}},
		{binding: "Down", want: Chord{Key: tcell.KeyDown}},
		{binding: "Esc", want: Chord{Key: tcell.KeyEscape}},
		{binding: "Backspace", want: Chord{Key: tcell.KeyBackspace2}},
		{binding: "", wantErr: true},
		{binding: "C-", wantErr: true},
		{binding: "C-1", wantErr: true},
		{binding: "xy", wantErr: true},
		{binding: "PageUp", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseChord(tt.binding)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseChord(%q): expected error, got %+v", tt.binding, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseChord(%q): unexpected error: %v", tt.binding, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChord(%q) = %+v, want %+v", tt.binding, got, tt.want)
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	proc, err := NewProcessor(config.NewDefaultConfig().Keys)
	if err != nil {
		t.Fatalf("NewProcessor with default keys failed: %v", err)
	}

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"j scrolls down", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), ActionScrollDown},
		{"Down scrolls down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionScrollDown},
		{"k scrolls up", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), ActionScrollUp},
		{"Up scrolls up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionScrollUp},
		{"l next slide", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), ActionNextSlide},
		{"h previous slide", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), ActionPrevSlide},
		{"ctrl-f page down", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl), ActionPageDown},
		{"ctrl-b page up", tcell.NewEventKey(tcell.KeyCtrlB, 0, tcell.ModCtrl), ActionPageUp},
		{"ctrl-d half page down", tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl), ActionHalfPageDown},
		{"ctrl-u half page up", tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl), ActionHalfPageUp},
		{"g jumps to top", tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), ActionJumpToTop},
		{"G jumps to bottom", tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone), ActionJumpToBottom},
		{"y yanks", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), ActionYank},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"unbound rune is ignored", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
		{"unbound key is ignored", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := proc.Resolve(tt.ev); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewProcessorBadBinding(t *testing.T) {
	keys := config.KeysConfig{
		ScrollDown: []string{"C-1"},
	}
	_, err := NewProcessor(keys)
	if err == nil {
		t.Fatal("expected error for unparseable binding, got nil")
	}
	if !strings.Contains(err.Error(), "scroll_down") {
		t.Errorf("error should name the command, got: %v", err)
	}
}

func TestBackspaceAlias(t *testing.T) {
	keys := config.KeysConfig{
		PreviousSlide: []string{"Backspace"},
	}
	proc, err := NewProcessor(keys)
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}

	// Terminals disagree on which code backspace sends; both forms
	// must resolve.
	for _, key := range []tcell.Key{tcell.KeyBackspace2, tcell.KeyBackspace} {
		ev := tcell.NewEventKey(key, 0, tcell.ModNone)
		if got := proc.Resolve(ev); got != ActionPrevSlide {
			t.Errorf("Resolve(%v) = %v, want %v", key, got, ActionPrevSlide)
		}
	}
}

func TestConflictKeepsFirstBinding(t *testing.T) {
	keys := config.KeysConfig{
		ScrollDown: []string{"j"},
		ScrollUp:   []string{"j", "k"},
	}
	proc, err := NewProcessor(keys)
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}

	if got := proc.Resolve(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)); got != ActionScrollDown {
		t.Errorf("conflicting 'j' should keep first binding, got %v", got)
	}
	if got := proc.Resolve(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone)); got != ActionScrollUp {
		t.Errorf("'k' should still resolve, got %v", got)
	}
}

func TestActionString(t *testing.T) {
	if got := ActionYank.String(); got != "Yank" {
		t.Errorf("ActionYank.String() = %q", got)
	}
	if got := Action(255).String(); got != "Unknown" {
		t.Errorf("unknown action String() = %q", got)
	}
}
