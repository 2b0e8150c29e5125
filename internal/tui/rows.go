package tui

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

const helpText = "Up/Down to move, Space to toggle (adds/removes in order), Enter to confirm, Esc to cancel"

// Row renders item i as "> [1 ] item". The pointer marks the cursor and
// the bracket shows the pick order.
func Row(item string, i int, s State) string {
	pointer := " "
	if i == s.Cursor {
		pointer = ">"
	}
	marker := "[  ]"
	if pos := s.Order(i); pos > 0 {
		marker = fmt.Sprintf("[%-2d]", pos)
	}
	return pointer + " " + marker + " " + item
}

// Rows renders every item. Lines wider than width cells are truncated;
// width <= 0 disables truncation.
func Rows(items []string, s State, width int) []string {
	rows := make([]string, len(items))
	for i, item := range items {
		rows[i] = fitWidth(Row(item, i, s), width)
	}
	return rows
}

// fitWidth truncates s to width display cells.
func fitWidth(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// scrollOffset returns the first visible row so that cursor stays within
// a window of height rows starting near offset.
func scrollOffset(cursor, offset, height int) int {
	if height <= 0 {
		return 0
	}
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+height {
		return cursor - height + 1
	}
	return offset
}
