// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/deck/internal/config"
	"github.com/bethropolis/deck/internal/render"
	"github.com/bethropolis/deck/internal/theme"
	"github.com/rivo/uniseg"
)

const tabWidth = 4

// ContentArea returns the origin and size of the slide drawing region
// for a screen of the given dimensions. The region sits inside the
// configured margins and above the status bar.
func ContentArea(width, height int) (x, y, w, h int) {
	x = config.ContentMarginX
	y = config.ContentMarginY
	w = width - 2*config.ContentMarginX
	h = height - config.StatusBarHeight - 2*config.ContentMarginY
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return x, y, w, h
}

// DrawSlide draws the visible window of flattened slide rows using the
// provided theme, starting scrollOffset rows into the slide. Rows that
// overflow the content area's right edge are truncated, never wrapped.
func DrawSlide(tuiManager *TUI, rows []render.Line, scrollOffset int, activeTheme *theme.Theme) {
	width, height := tuiManager.Size()
	originX, originY, areaW, areaH := ContentArea(width, height)
	if areaW <= 0 || areaH <= 0 {
		return
	}

	defaultStyle := activeTheme.GetStyle("Default")
	screen := tuiManager.screen

	for screenRow := 0; screenRow < areaH; screenRow++ {
		rowIdx := screenRow + scrollOffset
		y := originY + screenRow

		// Fill the full line so no stale cells survive from the
		// previous slide.
		for fillX := 0; fillX < width; fillX++ {
			screen.SetContent(fillX, y, ' ', nil, defaultStyle)
		}

		if rowIdx < 0 || rowIdx >= len(rows) {
			continue
		}

		x := originX
		limit := originX + areaW
		for _, span := range rows[rowIdx].Spans {
			x = drawSpan(tuiManager, x, y, limit, span)
			if x >= limit {
				break
			}
		}
	}
}

// drawSpan draws one styled run cluster by cluster and returns the
// next free column. Tabs expand to the next tab stop relative to the
// content origin.
func drawSpan(tuiManager *TUI, x, y, limit int, span render.Span) int {
	screen := tuiManager.screen
	gr := uniseg.NewGraphemes(span.Text)

	for gr.Next() {
		if x >= limit {
			break
		}

		clusterRunes := gr.Runes()
		if len(clusterRunes) == 1 && clusterRunes[0] == '\t' {
			contentCol := x - config.ContentMarginX
			spaces := tabWidth - (contentCol % tabWidth)
			for i := 0; i < spaces && x < limit; i++ {
				screen.SetContent(x, y, ' ', nil, span.Style)
				x++
			}
			continue
		}

		clusterWidth := gr.Width()
		if x+clusterWidth > limit {
			break // Stop if cluster doesn't fit
		}

		mainRune := clusterRunes[0]
		var combining []rune
		if len(clusterRunes) > 1 {
			combining = clusterRunes[1:]
		}
		screen.SetContent(x, y, mainRune, combining, span.Style)
		// Fill remaining cells for wide characters using the same style
		for cw := 1; cw < clusterWidth; cw++ {
			screen.SetContent(x+cw, y, ' ', nil, span.Style)
		}

		x += clusterWidth
	}

	return x
}
