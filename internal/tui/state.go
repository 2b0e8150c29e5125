// Package tui implements the interactive ordered track picker.
package tui

// Event is a user action in the picker.
type Event int

// Picker events.
const (
	EventUp Event = iota
	EventDown
	EventToggle
	EventConfirm
	EventCancel
)

func (e Event) String() string {
	switch e {
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventToggle:
		return "toggle"
	case EventConfirm:
		return "confirm"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// State is the picker's complete state. Selected holds item indices in
// the order they were picked.
type State struct {
	Cursor    int
	Selected  []int
	Total     int
	Confirmed bool
	Cancelled bool
}

// NewState returns the initial state for total items.
func NewState(total int) State {
	return State{Total: total}
}

// Done reports whether the picker has finished.
func (s State) Done() bool {
	return s.Confirmed || s.Cancelled
}

// Order returns the 1-based pick position of item i, or 0 when it is not
// selected.
func (s State) Order(i int) int {
	for pos, idx := range s.Selected {
		if idx == i {
			return pos + 1
		}
	}
	return 0
}

// Transition applies ev to s and returns the new state. s is not modified;
// the returned Selected never shares a backing array with s.Selected.
// Events after the picker finished are ignored.
func Transition(s State, ev Event) State {
	if s.Done() {
		return s
	}

	next := s
	next.Selected = append([]int(nil), s.Selected...)

	switch ev {
	case EventUp:
		if next.Cursor > 0 {
			next.Cursor--
		}
	case EventDown:
		if next.Cursor+1 < next.Total {
			next.Cursor++
		}
	case EventToggle:
		if s.Cursor < 0 || s.Cursor >= s.Total {
			break
		}
		if pos := s.Order(s.Cursor); pos > 0 {
			next.Selected = append(next.Selected[:pos-1], next.Selected[pos:]...)
		} else {
			next.Selected = append(next.Selected, s.Cursor)
		}
	case EventConfirm:
		if len(next.Selected) > 0 {
			next.Confirmed = true
		}
	case EventCancel:
		next.Cancelled = true
		next.Selected = nil
	}
	return next
}
