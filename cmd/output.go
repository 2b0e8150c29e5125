package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jfmyers9/topsongs/pkg/lastfm"
)

// maxArtistWidth caps the artist column of the track table.
const maxArtistWidth = 28

// printer writes user-facing output. Styles are dropped automatically when
// the writer is not a terminal.
type printer struct {
	w       io.Writer
	heading lipgloss.Style
	faint   lipgloss.Style
	block   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		heading: r.NewStyle().Bold(true),
		faint:   r.NewStyle().Faint(true),
		block:   r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

func (p *printer) Heading(format string, args ...any) {
	fmt.Fprintln(p.w, p.heading.Render(fmt.Sprintf(format, args...)))
}

func (p *printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

func (p *printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Block prints multi-line text such as a bio, styling each line.
func (p *printer) Block(text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(p.w, p.block.Render(line))
	}
}

// Diff prints a unified diff, dimming the file headers.
func (p *printer) Diff(diff string) {
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "@@") {
			line = p.faint.Render(line)
		}
		fmt.Fprintln(p.w, line)
	}
}

// TrackTable prints tracks as a numbered list with the artist column
// aligned.
func (p *printer) TrackTable(tracks []lastfm.Track) {
	width := 0
	for _, t := range tracks {
		if w := runewidth.StringWidth(t.Artist.Name); w > width {
			width = w
		}
	}
	if width > maxArtistWidth {
		width = maxArtistWidth
	}

	for i, t := range tracks {
		fmt.Fprintf(p.w, "%2d. %s — %s (%d plays)\n", i+1, padToWidth(t.Artist.Name, width), t.Name, t.Plays())
	}
}

// pickerItems labels tracks for the interactive picker.
func pickerItems(tracks []lastfm.Track) []string {
	items := make([]string, len(tracks))
	for i, t := range tracks {
		items[i] = fmt.Sprintf("%02d) %s — %s (%d plays)", i+1, t.Artist.Name, t.Name, t.Plays())
	}
	return items
}

// padToWidth pads or truncates text to exactly width display columns.
// Truncated text ends in "...". A width <= 0 leaves text unchanged.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	const ellipsis = "..."
	current := runewidth.StringWidth(text)
	switch {
	case current == width:
		return text
	case current < width:
		return text + strings.Repeat(" ", width-current)
	case width <= len(ellipsis):
		return ellipsis[:width]
	}

	// Wide runes can leave the truncated text a column short.
	truncated := runewidth.Truncate(text, width-len(ellipsis), "") + ellipsis
	return runewidth.FillRight(truncated, width)
}
