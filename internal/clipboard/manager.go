// internal/clipboard/manager.go
package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
	"github.com/bethropolis/deck/internal/logger"
)

// Manager handles copying slide text to the system clipboard.
type Manager struct {
	writeAll func(string) error
}

// NewManager creates a manager backed by the system clipboard.
func NewManager() *Manager {
	return &Manager{writeAll: atotto.WriteAll}
}

// Copy places text on the system clipboard.
func (m *Manager) Copy(text string) error {
	if err := m.writeAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	logger.Debugf("ClipboardManager: Copied %d bytes", len(text))
	return nil
}
