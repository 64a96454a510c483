// internal/app/events.go
package app

import (
	"time"

	"github.com/bethropolis/deck/internal/config"
	"github.com/bethropolis/deck/internal/event"
)

// handleSlideChangedForStatus updates the position indicator when
// navigation lands on a different slide.
func (a *App) handleSlideChangedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.SlideChangedData); ok {
		a.statusBar.SetPosition(data.Index, data.Count)
	}
	return false // Not consumed
}

// handleStatusMessageForStatus surfaces a transient message in the
// status bar.
func (a *App) handleStatusMessageForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.StatusMessageData); ok {
		a.statusBar.SetTemporaryMessage("%s", data.Text)
		// One deferred redraw so the message also clears on an
		// otherwise idle screen.
		time.AfterFunc(config.MessageTimeout+50*time.Millisecond, a.requestRedraw)
	}
	return false // Not consumed
}
