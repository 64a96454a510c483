// internal/nav/nav.go

// Package nav implements the slide navigation state machine as a pure
// reducer over the current slide index, scroll offset and viewport
// height. Commands are total: at a boundary they reduce to a no-op,
// never an error.
package nav

// Command enumerates the navigation inputs the reducer understands.
// Quit is not a navigation command; the event loop owns it.
type Command int

const (
	ScrollDown Command = iota
	ScrollUp
	PageDown
	PageUp
	HalfPageDown
	HalfPageUp
	JumpToTop
	JumpToBottom
	NextSlide
	PrevSlide
)

// String returns the command name for logging.
func (c Command) String() string {
	switch c {
	case ScrollDown:
		return "ScrollDown"
	case ScrollUp:
		return "ScrollUp"
	case PageDown:
		return "PageDown"
	case PageUp:
		return "PageUp"
	case HalfPageDown:
		return "HalfPageDown"
	case HalfPageUp:
		return "HalfPageUp"
	case JumpToTop:
		return "JumpToTop"
	case JumpToBottom:
		return "JumpToBottom"
	case NextSlide:
		return "NextSlide"
	case PrevSlide:
		return "PrevSlide"
	}
	return "Unknown"
}

// State is the complete navigation state. Height is the viewport
// height in rows, refreshed by the caller on every draw since the
// terminal can resize between commands.
type State struct {
	Slide  int // current slide index
	Offset int // scroll offset in rows
	Height int // viewport height in rows
}

// Apply reduces a command against the current state and returns the
// next one. slideCount is the total number of slides (always >= 1);
// contentRows is the rendered row count of the current slide. The
// offset is clamped into [0, max(contentRows-Height, 0)] after every
// command, so a stale offset left by a resize or a shorter slide heals
// on the next input. Changing slides resets the offset, but only when
// the index actually moves.
func Apply(s State, cmd Command, slideCount, contentRows int) State {
	switch cmd {
	case ScrollDown:
		s.Offset++
	case ScrollUp:
		s.Offset--
	case PageDown:
		s.Offset += s.Height
	case PageUp:
		s.Offset -= s.Height
	case HalfPageDown:
		s.Offset += s.Height / 2
	case HalfPageUp:
		s.Offset -= s.Height / 2
	case JumpToTop:
		s.Offset = 0
	case JumpToBottom:
		s.Offset = maxOffset(contentRows, s.Height)
	case NextSlide:
		if s.Slide+1 < slideCount {
			s.Slide++
			s.Offset = 0
		}
	case PrevSlide:
		if s.Slide > 0 {
			s.Slide--
			s.Offset = 0
		}
	}

	s.Offset = clamp(s.Offset, 0, maxOffset(contentRows, s.Height))
	return s
}

// maxOffset is the largest offset that still shows the last content
// row at the bottom of the viewport.
func maxOffset(contentRows, height int) int {
	if contentRows > height {
		return contentRows - height
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
