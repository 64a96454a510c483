// internal/input/keymap.go
package input

import (
	"fmt"

	"github.com/bethropolis/deck/internal/config"
	"github.com/bethropolis/deck/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Chord is a normalized key combination. Ctrl+letter collapses into
// tcell's dedicated key constants, so Mods only ever carries Alt.
type Chord struct {
	Key  tcell.Key
	Rune rune
	Mods tcell.ModMask
}

// namedKeys are the non-character keys a binding string may name.
var namedKeys = map[string]tcell.Key{
	"Up":        tcell.KeyUp,
	"Down":      tcell.KeyDown,
	"Left":      tcell.KeyLeft,
	"Right":     tcell.KeyRight,
	"Enter":     tcell.KeyEnter,
	"Esc":       tcell.KeyEscape,
	"Tab":       tcell.KeyTab,
	"Backspace": tcell.KeyBackspace2,
}

// ParseChord parses one binding string: a bare character ("j", "G"),
// "C-x" for Ctrl, "A-x" for Alt, or a named key ("Down", "Esc").
func ParseChord(binding string) (Chord, error) {
	if key, ok := namedKeys[binding]; ok {
		return Chord{Key: key}, nil
	}

	runes := []rune(binding)
	switch {
	case len(runes) == 1:
		return Chord{Key: tcell.KeyRune, Rune: runes[0]}, nil

	case len(runes) == 3 && runes[1] == '-' && (runes[0] == 'C' || runes[0] == 'A'):
		r := runes[2]
		if runes[0] == 'A' {
			return Chord{Key: tcell.KeyRune, Rune: r, Mods: tcell.ModAlt}, nil
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r < 'a' || r > 'z' {
			return Chord{}, fmt.Errorf("ctrl binding needs a letter, got %q", binding)
		}
		// tcell folds Ctrl+letter into its own key constant.
		return Chord{Key: tcell.KeyCtrlA + tcell.Key(r-'a')}, nil
	}

	return Chord{}, fmt.Errorf("unrecognized key %q", binding)
}

// Processor translates tcell key events into Actions using the
// bindings built from the [keys] config table.
type Processor struct {
	bindings map[Chord]Action
}

// NewProcessor builds a processor from the configured bindings. A
// binding string that does not parse fails the whole build, naming
// the command and the offending string.
func NewProcessor(keys config.KeysConfig) (*Processor, error) {
	p := &Processor{bindings: make(map[Chord]Action)}

	entries := []struct {
		action   Action
		command  string
		bindings []string
	}{
		{ActionScrollDown, "scroll_down", keys.ScrollDown},
		{ActionScrollUp, "scroll_up", keys.ScrollUp},
		{ActionNextSlide, "next_slide", keys.NextSlide},
		{ActionPrevSlide, "previous_slide", keys.PreviousSlide},
		{ActionPageDown, "page_down", keys.PageDown},
		{ActionPageUp, "page_up", keys.PageUp},
		{ActionHalfPageDown, "half_page_down", keys.HalfPageDown},
		{ActionHalfPageUp, "half_page_up", keys.HalfPageUp},
		{ActionJumpToTop, "jump_to_top", keys.JumpToTop},
		{ActionJumpToBottom, "jump_to_bottom", keys.JumpToBottom},
		{ActionYank, "yank", keys.Yank},
		{ActionQuit, "quit", keys.Quit},
	}

	for _, e := range entries {
		for _, binding := range e.bindings {
			chord, err := ParseChord(binding)
			if err != nil {
				return nil, fmt.Errorf("binding %q for %s: %w", binding, e.command, err)
			}
			p.add(chord, e.action, binding, e.command)
		}
	}

	return p, nil
}

// add registers a chord, keeping the first registration on conflict.
// "Backspace" also matches the Ctrl-H form terminals send for it.
func (p *Processor) add(chord Chord, action Action, binding, command string) {
	if existing, ok := p.bindings[chord]; ok {
		if existing != action {
			logger.Warnf("Key %q for %s already bound to %s, keeping the first binding", binding, command, existing)
		}
		return
	}
	p.bindings[chord] = action

	if chord.Key == tcell.KeyBackspace2 {
		alias := Chord{Key: tcell.KeyBackspace}
		if _, ok := p.bindings[alias]; !ok {
			p.bindings[alias] = action
		}
	}
}

// Resolve maps a key event to its Action; unmapped input resolves to
// ActionNone.
func (p *Processor) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		// Shift is already folded into the rune; only Alt matters.
		chord := Chord{Key: tcell.KeyRune, Rune: ev.Rune(), Mods: ev.Modifiers() & tcell.ModAlt}
		if action, ok := p.bindings[chord]; ok {
			return action
		}
		return ActionNone
	}

	// Special keys carry Ctrl in the key constant itself, so the
	// modifier mask is ignored here.
	if action, ok := p.bindings[Chord{Key: ev.Key()}]; ok {
		return action
	}
	return ActionNone
}
