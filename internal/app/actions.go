// internal/app/actions.go
package app

import (
	"fmt"

	"github.com/bethropolis/deck/internal/event"
	"github.com/bethropolis/deck/internal/input"
	"github.com/bethropolis/deck/internal/logger"
	"github.com/bethropolis/deck/internal/nav"
	"github.com/bethropolis/deck/internal/render"
	"github.com/gdamore/tcell/v2"
)

// handleKeyEvent resolves a key event into an action and executes it.
// Returns true if the event resulted in a change requiring redraw.
func (a *App) handleKeyEvent(ev *tcell.EventKey) bool {
	action := a.processor.Resolve(ev)
	if action == input.ActionNone {
		return false
	}
	logger.Debugf("App: Handling action %v", action)
	return a.handleAction(action)
}

// handleAction executes one resolved action.
func (a *App) handleAction(action input.Action) bool {
	switch action {
	case input.ActionQuit:
		a.signalQuit()
		return false

	case input.ActionYank:
		a.yankSlide()
		return true // The status message needs to appear

	default:
		cmd, ok := navCommand(action)
		if !ok {
			return false
		}
		return a.applyNav(cmd)
	}
}

// navCommand maps an input action to its navigation command.
func navCommand(action input.Action) (nav.Command, bool) {
	switch action {
	case input.ActionScrollDown:
		return nav.ScrollDown, true
	case input.ActionScrollUp:
		return nav.ScrollUp, true
	case input.ActionPageDown:
		return nav.PageDown, true
	case input.ActionPageUp:
		return nav.PageUp, true
	case input.ActionHalfPageDown:
		return nav.HalfPageDown, true
	case input.ActionHalfPageUp:
		return nav.HalfPageUp, true
	case input.ActionJumpToTop:
		return nav.JumpToTop, true
	case input.ActionJumpToBottom:
		return nav.JumpToBottom, true
	case input.ActionNextSlide:
		return nav.NextSlide, true
	case input.ActionPrevSlide:
		return nav.PrevSlide, true
	}
	return 0, false
}

// applyNav runs one navigation command through the reducer and
// reports whether the state changed.
func (a *App) applyNav(cmd nav.Command) bool {
	a.mu.Lock()
	rows := a.currentRowsLocked()
	before := a.state
	a.state = nav.Apply(a.state, cmd, a.deck.Count(), len(rows))
	after := a.state
	a.mu.Unlock()

	if after.Slide != before.Slide {
		logger.Debugf("App: Moved to slide %s", a.deck.Position(after.Slide))
		a.eventManager.Dispatch(event.TypeSlideChanged, event.SlideChangedData{
			Index: after.Slide,
			Count: a.deck.Count(),
		})
	}
	return after != before
}

// yankSlide copies the current slide's rendered text to the system
// clipboard and reports the result in the status bar.
func (a *App) yankSlide() {
	a.mu.Lock()
	text := render.PlainText(a.currentRowsLocked())
	index := a.state.Slide
	a.mu.Unlock()

	if err := a.clipboard.Copy(text); err != nil {
		logger.Errorf("App: Yank failed: %v", err)
		a.eventManager.Dispatch(event.TypeStatusMessage, event.StatusMessageData{
			Text: "Yank failed: clipboard unavailable",
		})
		return
	}

	a.eventManager.Dispatch(event.TypeStatusMessage, event.StatusMessageData{
		Text: fmt.Sprintf("Copied slide %d to clipboard", index+1),
	})
}
