// internal/app/app.go
package app

import (
	"fmt"
	"sync"

	"github.com/bethropolis/deck/internal/clipboard"
	"github.com/bethropolis/deck/internal/config"
	"github.com/bethropolis/deck/internal/deck"
	"github.com/bethropolis/deck/internal/event"
	"github.com/bethropolis/deck/internal/input"
	"github.com/bethropolis/deck/internal/logger"
	"github.com/bethropolis/deck/internal/nav"
	"github.com/bethropolis/deck/internal/render"
	"github.com/bethropolis/deck/internal/statusbar"
	"github.com/bethropolis/deck/internal/theme"
	"github.com/bethropolis/deck/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the viewer.
type App struct {
	tuiManager   *tui.TUI
	deck         *deck.Deck
	renderer     *render.Renderer
	processor    *input.Processor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	clipboard    *clipboard.Manager
	activeTheme  *theme.Theme

	// Channels managed by the App
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}

	// Navigation state, shared between the event loop and the draw loop.
	mu        sync.Mutex
	state     nav.State
	rows      []render.Line
	rowsSlide int
}

// NewApp creates and initializes a new application instance for the
// given presentation file. The file is loaded before the terminal is
// touched, so a parse failure reaches stderr cleanly.
func NewApp(filePath string) (*App, error) {
	d, err := deck.Load(filePath)
	if err != nil {
		return nil, err
	}

	cfg := config.Get()

	activeTheme := theme.Resolve(cfg.UI.Theme)
	theme.SetCurrent(activeTheme)

	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	processor, err := input.NewProcessor(cfg.Keys)
	if err != nil {
		logger.Warnf("App: %v; falling back to default key bindings", err)
		processor, err = input.NewProcessor(config.NewDefaultConfig().Keys)
		if err != nil {
			tuiManager.Close()
			return nil, fmt.Errorf("key binding setup failed: %w", err)
		}
	}

	statusBar := statusbar.New(statusbar.Config{
		HelpText:       cfg.HelpText(),
		MessageTimeout: config.MessageTimeout,
	})
	eventManager := event.NewManager()

	appInstance := &App{
		tuiManager:    tuiManager,
		deck:          d,
		renderer:      render.New(activeTheme, d.Source),
		processor:     processor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		clipboard:     clipboard.NewManager(),
		activeTheme:   activeTheme,
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
		rowsSlide:     -1,
	}

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeSlideChanged, appInstance.handleSlideChangedForStatus)
	eventManager.Subscribe(event.TypeStatusMessage, appInstance.handleStatusMessageForStatus)

	statusBar.SetPosition(0, d.Count())

	logger.Debugf("App: Initialized with %d slide(s) from '%s'", d.Count(), filePath)
	return appInstance, nil
}

// Run starts the application's event and drawing loops and blocks
// until the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop() // Start event loop

	a.requestRedraw()

	// --- Main Drawing Loop ---
	for {
		select {
		case <-a.quit:
			logger.Infof("Exiting presentation.")
			return nil
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// eventLoop handles TUI events, delegating key events to the action
// handler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return // Screen was finalized
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true

		case *tcell.EventKey:
			needsRedraw = a.handleKeyEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// currentRowsLocked returns the flattened rows of the current slide,
// rendering and caching them on first use. Caller must hold a.mu.
func (a *App) currentRowsLocked() []render.Line {
	if a.rowsSlide != a.state.Slide {
		slide := a.deck.Slide(a.state.Slide)
		lines := a.renderer.Render(slide.Nodes, a.activeTheme.GetStyle("Default"))
		a.rows = render.Flatten(lines)
		a.rowsSlide = a.state.Slide
	}
	return a.rows
}

// signalQuit closes the quit channel exactly once.
func (a *App) signalQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
