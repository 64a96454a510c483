// internal/app/ui.go
package app

import (
	"github.com/bethropolis/deck/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	_, _, _, viewHeight := tui.ContentArea(width, height)

	a.mu.Lock()
	// Paging commands size their jumps from the viewport height, so
	// it is refreshed on every draw to track terminal resizes.
	a.state.Height = viewHeight
	rows := a.currentRowsLocked()
	offset := a.state.Offset
	a.mu.Unlock()

	a.tuiManager.Clear()
	tui.DrawSlide(a.tuiManager, rows, offset, a.activeTheme)
	a.statusBar.Draw(screen, width, height, a.activeTheme)
	a.tuiManager.Show()
}
