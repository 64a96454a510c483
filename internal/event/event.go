// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeSlideChanged  // Fired when navigation lands on a different slide
	TypeStatusMessage // Fired to surface a transient message in the status bar
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// SlideChangedData carries the new position after a slide change.
type SlideChangedData struct {
	Index int // 0-based slide index
	Count int // Total number of slides
}

// StatusMessageData carries a transient message for display.
type StatusMessageData struct {
	Text string
}
