// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/deck/internal/config"
	"github.com/bethropolis/deck/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the content and behavior of the status bar.
type Config struct {
	HelpText       string        // Shown when no temporary message is active
	MessageTimeout time.Duration // How long temporary messages stay visible
}

// StatusBar is the single line of chrome at the bottom of the screen:
// help text or a temporary message on the left, the slide position
// indicator on the right.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	slideIndex int
	slideCount int

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(cfg Config) *StatusBar {
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = config.MessageTimeout
	}
	return &StatusBar{config: cfg}
}

// SetPosition updates the slide position shown on the right.
func (sb *StatusBar) SetPosition(index, count int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.slideIndex = index
	sb.slideCount = count
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// indicator builds the "current/total" position text.
func (sb *StatusBar) indicator() string {
	if sb.slideCount <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", sb.slideIndex+1, sb.slideCount)
}

// leftText picks the left-hand content, expiring a stale message
// first. Caller must hold the write lock.
func (sb *StatusBar) leftText() (string, bool) {
	active := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if active {
		return sb.tempMessage, true
	}
	return sb.config.HelpText, false
}

// Draw renders the status bar onto the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, activeTheme *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1 // Status bar is always the last line

	sb.mu.Lock() // Lock for potential modification of tempMessageTime
	text, isMessage := sb.leftText()
	position := sb.indicator()
	sb.mu.Unlock()

	barStyle := activeTheme.GetStyle("StatusBar")
	leftStyle := barStyle
	if isMessage {
		leftStyle = activeTheme.GetStyle("StatusBarMessage")
	}

	// Fill background first
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, barStyle)
	}

	indicatorX := width - uniseg.StringWidth(position)
	if indicatorX < 0 {
		indicatorX = 0
	}

	// Leave a gap column so a long message never touches the indicator.
	limit := indicatorX - 1
	if position == "" {
		limit = width
	}
	drawClusters(screen, 0, y, limit, text, leftStyle)
	drawClusters(screen, indicatorX, y, width, position, activeTheme.GetStyle("StatusBarIndicator"))
}

// drawClusters writes text cluster by cluster starting at (x, y),
// stopping before maxX.
func drawClusters(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > maxX {
			break // Stop if cluster doesn't fit
		}

		runes := gr.Runes()
		if len(runes) > 0 {
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(x, y, runes[0], combiningRunes, style)
		}

		x += clusterWidth
	}
}
