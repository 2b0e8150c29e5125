// Package render turns selected tracks into the text block placed in a bio.
package render

import (
	"strings"

	"github.com/jfmyers9/topsongs/pkg/lastfm"
)

// Options controls how a block is rendered. Format, Join, Prefix and Suffix
// may contain backslash escapes such as \n.
type Options struct {
	Format         string // tokens: {artist}, {track}, {playcount}
	Join           string
	Prefix         string
	Suffix         string
	StripFeat      bool
	StripFeatRegex string // optional, used only with StripFeat
}

// Line fills the {artist}, {track} and {playcount} tokens of format.
// Substituted values are not rescanned for tokens.
func Line(format string, track lastfm.Track) string {
	r := strings.NewReplacer(
		"{artist}", track.Artist.Name,
		"{track}", track.Name,
		"{playcount}", track.Playcount,
	)
	return r.Replace(format)
}

// Block renders tracks in the given order as prefix + lines + suffix.
func Block(tracks []lastfm.Track, opts Options) string {
	format := InterpretEscapes(opts.Format)

	var stripper *Stripper
	if opts.StripFeat {
		stripper = NewStripper(opts.StripFeatRegex)
	}

	lines := make([]string, 0, len(tracks))
	for _, t := range tracks {
		if stripper != nil {
			t.Name = stripper.Strip(t.Name)
		}
		lines = append(lines, Line(format, t))
	}

	return InterpretEscapes(opts.Prefix) +
		strings.Join(lines, InterpretEscapes(opts.Join)) +
		InterpretEscapes(opts.Suffix)
}

// InterpretEscapes expands \n, \r, \t, \0, \\, \" and \'. Unknown escapes
// and a trailing backslash are kept as written.
func InterpretEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(s) {
			b.WriteByte('\\')
			break
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		case '\\', '"', '\'':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
