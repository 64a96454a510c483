// internal/tui/drawing_test.go
package tui

import (
	"testing"

	"github.com/bethropolis/deck/internal/config"
)

func TestContentArea(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{
			name:  "typical terminal",
			width: 80, height: 24,
			wantW: 80 - 2*config.ContentMarginX,
			wantH: 24 - config.StatusBarHeight - 2*config.ContentMarginY,
		},
		{
			name:  "too small for margins",
			width: 3, height: 2,
			wantW: 0,
			wantH: 0,
		},
		{
			name:  "zero size",
			width: 0, height: 0,
			wantW: 0,
			wantH: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := ContentArea(tt.width, tt.height)
			if x != config.ContentMarginX || y != config.ContentMarginY {
				t.Errorf("origin = (%d, %d), want margins (%d, %d)", x, y, config.ContentMarginX, config.ContentMarginY)
			}
			if w != tt.wantW {
				t.Errorf("w = %d, want %d", w, tt.wantW)
			}
			if h != tt.wantH {
				t.Errorf("h = %d, want %d", h, tt.wantH)
			}
		})
	}
}
