// internal/statusbar/statusbar_test.go
package statusbar

import (
	"testing"
	"time"
)

func TestIndicator(t *testing.T) {
	tests := []struct {
		name  string
		index int
		count int
		want  string
	}{
		{"first slide", 0, 5, "1/5"},
		{"middle slide", 2, 5, "3/5"},
		{"last slide", 4, 5, "5/5"},
		{"single slide", 0, 1, "1/1"},
		{"no deck yet", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := New(Config{HelpText: "help"})
			sb.SetPosition(tt.index, tt.count)
			if got := sb.indicator(); got != tt.want {
				t.Errorf("indicator() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLeftTextShowsHelpByDefault(t *testing.T) {
	sb := New(Config{HelpText: "q: quit"})
	text, isMessage := sb.leftText()
	if text != "q: quit" || isMessage {
		t.Errorf("leftText() = (%q, %v), want help text", text, isMessage)
	}
}

func TestLeftTextPrefersActiveMessage(t *testing.T) {
	sb := New(Config{HelpText: "q: quit", MessageTimeout: time.Minute})
	sb.SetTemporaryMessage("Copied slide %d", 3)

	text, isMessage := sb.leftText()
	if text != "Copied slide 3" || !isMessage {
		t.Errorf("leftText() = (%q, %v), want active message", text, isMessage)
	}
}

func TestLeftTextExpiresMessage(t *testing.T) {
	sb := New(Config{HelpText: "q: quit", MessageTimeout: time.Second})
	sb.SetTemporaryMessage("done")
	sb.tempMessageTime = time.Now().Add(-2 * time.Second)

	text, isMessage := sb.leftText()
	if text != "q: quit" || isMessage {
		t.Errorf("leftText() = (%q, %v), want help text after expiry", text, isMessage)
	}
	if sb.tempMessage != "" || !sb.tempMessageTime.IsZero() {
		t.Error("expired message state was not cleared")
	}
}

func TestResetTemporaryMessage(t *testing.T) {
	sb := New(Config{HelpText: "help"})
	sb.SetTemporaryMessage("transient")
	sb.ResetTemporaryMessage()

	text, isMessage := sb.leftText()
	if text != "help" || isMessage {
		t.Errorf("leftText() after reset = (%q, %v), want help text", text, isMessage)
	}
}

func TestZeroTimeoutFallsBackToDefault(t *testing.T) {
	sb := New(Config{HelpText: "help"})
	if sb.config.MessageTimeout <= 0 {
		t.Errorf("MessageTimeout = %v, want a positive default", sb.config.MessageTimeout)
	}
}
