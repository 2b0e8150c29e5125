package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ErrNoItems is returned by Pick when there is nothing to choose from.
var ErrNoItems = errors.New("no items to select")

// Picker shows a list of items and lets the user choose several of them
// in order.
type Picker struct {
	app    *tview.Application
	list   *tview.TextView
	status *tview.TextView

	items  []string
	state  State
	offset int
}

// NewPicker creates a picker over items.
func NewPicker(items []string) *Picker {
	p := &Picker{
		app:   tview.NewApplication(),
		items: items,
		state: NewState(len(items)),
	}
	p.setupUI()
	return p
}

// SetScreen replaces the terminal screen, for tests.
func (p *Picker) SetScreen(screen tcell.Screen) {
	p.app.SetScreen(screen)
}

func (p *Picker) setupUI() {
	p.list = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	p.list.SetBorder(true).
		SetTitle(" Select tracks ").
		SetTitleAlign(tview.AlignLeft)

	p.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[gray]" + tview.Escape(helpText) + "[-]")

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(p.list, 0, 1, true).
		AddItem(p.status, 1, 1, false)

	p.app.SetInputCapture(p.handleKeyEvent)
	p.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		p.render()
		return false
	})
	p.app.SetRoot(flex, true)
}

// Pick runs the picker until the user confirms or cancels and returns the
// chosen indices in pick order. Cancelling returns an empty slice.
func (p *Picker) Pick() ([]int, error) {
	if len(p.items) == 0 {
		return nil, ErrNoItems
	}
	if err := p.app.Run(); err != nil {
		return nil, fmt.Errorf("picker error: %w", err)
	}
	if !p.state.Confirmed {
		return []int{}, nil
	}
	return append([]int(nil), p.state.Selected...), nil
}

// Pick is NewPicker(items).Pick().
func Pick(items []string) ([]int, error) {
	return NewPicker(items).Pick()
}

// handleKeyEvent processes keyboard input
func (p *Picker) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	ev, ok := eventForKey(event)
	if !ok {
		return event
	}
	p.state = Transition(p.state, ev)
	if p.state.Done() {
		p.app.Stop()
	}
	return nil
}

// eventForKey maps a key press to a picker event.
func eventForKey(event *tcell.EventKey) (Event, bool) {
	switch event.Key() {
	case tcell.KeyUp:
		return EventUp, true
	case tcell.KeyDown:
		return EventDown, true
	case tcell.KeyEnter:
		return EventConfirm, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return EventCancel, true
	case tcell.KeyRune:
		switch event.Rune() {
		case ' ':
			return EventToggle, true
		case 'k':
			return EventUp, true
		case 'j':
			return EventDown, true
		case 'q', 'Q':
			return EventCancel, true
		}
	}
	return 0, false
}

// render redraws the list from the current state.
func (p *Picker) render() {
	_, _, width, height := p.list.GetInnerRect()
	p.offset = scrollOffset(p.state.Cursor, p.offset, height)

	rows := Rows(p.items, p.state, width)
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		row = tview.Escape(row)
		if i == p.state.Cursor {
			row = "[::r]" + row + "[::-]"
		}
		b.WriteString(row)
	}
	p.list.SetText(b.String())
	p.list.ScrollTo(p.offset, 0)

	title := " Select tracks "
	if n := len(p.state.Selected); n > 0 {
		title = fmt.Sprintf(" Select tracks (%d picked) ", n)
	}
	p.list.SetTitle(title)
}
