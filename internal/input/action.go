// internal/input/action.go
package input

// Action represents an operation requested by the user.
type Action int

const (
	ActionNone Action = iota // Unmapped input

	// --- Navigation ---
	ActionScrollDown
	ActionScrollUp
	ActionPageDown
	ActionPageUp
	ActionHalfPageDown
	ActionHalfPageUp
	ActionJumpToTop
	ActionJumpToBottom
	ActionNextSlide
	ActionPrevSlide

	// --- Application ---
	ActionYank
	ActionQuit
)

// String returns the action name for logging.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionScrollDown:
		return "ScrollDown"
	case ActionScrollUp:
		return "ScrollUp"
	case ActionPageDown:
		return "PageDown"
	case ActionPageUp:
		return "PageUp"
	case ActionHalfPageDown:
		return "HalfPageDown"
	case ActionHalfPageUp:
		return "HalfPageUp"
	case ActionJumpToTop:
		return "JumpToTop"
	case ActionJumpToBottom:
		return "JumpToBottom"
	case ActionNextSlide:
		return "NextSlide"
	case ActionPrevSlide:
		return "PrevSlide"
	case ActionYank:
		return "Yank"
	case ActionQuit:
		return "Quit"
	}
	return "Unknown"
}
