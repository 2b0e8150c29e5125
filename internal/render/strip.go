package render

import (
	"regexp"
	"strings"

	"github.com/jfmyers9/topsongs/internal/bio"
)

// DefaultStripPattern removes "(feat. X)", "[ft. X]", "(with X)" and
// trailing "- feat. X" style annotations.
const DefaultStripPattern = `(?i)\s*(?:[\(\[]\s*(?:feat\.?|ft\.?|with)\b.*?[\)\]]|-\s*(?:feat\.?|ft\.?|with)\b.*)$`

var defaultStripRegexp = regexp.MustCompile(DefaultStripPattern)

// trailing separators left behind once an annotation is gone
const trailingSeparators = "-:–—|/"

// Stripper removes featured-artist annotations from titles.
type Stripper struct {
	re *regexp.Regexp
	// Fallback is set when a custom pattern did not compile and the default
	// is used instead.
	Fallback error
}

// NewStripper compiles custom, or uses DefaultStripPattern when custom is
// empty or invalid. Slash delimiters around custom are removed.
func NewStripper(custom string) *Stripper {
	if strings.TrimSpace(custom) == "" {
		return &Stripper{re: defaultStripRegexp}
	}
	re, err := bio.Compile(custom)
	if err != nil {
		return &Stripper{re: defaultStripRegexp, Fallback: err}
	}
	return &Stripper{re: re}
}

// Strip removes the first match from title and trims leftover whitespace
// and separators.
func (s *Stripper) Strip(title string) string {
	if loc := s.re.FindStringIndex(title); loc != nil {
		title = title[:loc[0]] + title[loc[1]:]
	}
	title = strings.TrimSpace(title)
	title = strings.TrimRight(title, trailingSeparators)
	return strings.TrimSpace(title)
}

// StripTitle is NewStripper(custom).Strip(title).
func StripTitle(title, custom string) string {
	return NewStripper(custom).Strip(title)
}
