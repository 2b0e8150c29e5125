// Package bio replaces a regex-anchored section of a profile bio.
package bio

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// DefaultPattern matches a bold heading followed by one or more list lines,
// e.g. "**Top tracks**:\n  - Artist - Track\n". Letters and digits are
// matched by Unicode class so accented and CJK names count.
const DefaultPattern = `/\*\*[\p{L}\p{M}\p{N}_ ]+\*\*:?\r?(\n[ \p{L}\p{M}\p{N}_-]+)+\n/`

// InvalidPatternError is returned when a pattern does not compile.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid bio pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Result is the outcome of Patch. When Replaced is false Text is the
// unchanged input and there was nothing to update.
type Result struct {
	Text     string
	Replaced bool
	// Start and End delimit the matched span in the original text.
	Start, End int
}

// NormalizePattern trims whitespace and strips a leading and trailing slash
// when both are present.
func NormalizePattern(pattern string) string {
	p := strings.TrimSpace(pattern)
	if len(p) >= 2 && strings.HasPrefix(p, "/") && strings.HasSuffix(p, "/") {
		return p[1 : len(p)-1]
	}
	return p
}

// Compile normalizes and compiles pattern.
func Compile(pattern string) (*regexp.Regexp, error) {
	normalized := NormalizePattern(pattern)
	re, err := regexp.Compile(normalized)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: normalized, Err: err}
	}
	return re, nil
}

// Patch replaces the first match of pattern in current with block plus a
// single trailing newline.
func Patch(current, pattern, block string) (Result, error) {
	re, err := Compile(pattern)
	if err != nil {
		return Result{}, err
	}
	return PatchRegexp(current, re, block), nil
}

// PatchRegexp is Patch with an already compiled pattern.
func PatchRegexp(current string, re *regexp.Regexp, block string) Result {
	loc := re.FindStringIndex(current)
	if loc == nil {
		return Result{Text: current}
	}
	// Sliced rather than re.ReplaceAllString so that '$' in the block stays literal.
	var b strings.Builder
	b.Grow(len(current) - (loc[1] - loc[0]) + len(block) + 1)
	b.WriteString(current[:loc[0]])
	b.WriteString(block)
	b.WriteByte('\n')
	b.WriteString(current[loc[1]:])
	return Result{
		Text:     b.String(),
		Replaced: true,
		Start:    loc[0],
		End:      loc[1],
	}
}

// Diff renders a unified diff between the current and updated bio. It
// returns an empty string when they are equal.
func Diff(current, updated string) (string, error) {
	if current == updated {
		return "", nil
	}
	edits := udiff.Strings(ensureNewline(current), ensureNewline(updated))
	unified, err := udiff.ToUnified("current", "updated", ensureNewline(current), edits, 3)
	if err != nil {
		return "", fmt.Errorf("failed to render bio diff: %w", err)
	}
	return unified, nil
}

// ensureNewline avoids the "\ No newline at end of file" marker on bios.
func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
