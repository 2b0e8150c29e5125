package bio

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestNormalizePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{
			name:    "slash wrapped",
			pattern: `/\*\*Top\*\*:\n(.+\n)+/`,
			want:    `\*\*Top\*\*:\n(.+\n)+`,
		},
		{
			name:    "plain",
			pattern: `\*\*Top\*\*`,
			want:    `\*\*Top\*\*`,
		},
		{
			name:    "surrounding whitespace",
			pattern: "  /abc/  ",
			want:    "abc",
		},
		{
			name:    "leading slash only",
			pattern: "/abc",
			want:    "/abc",
		},
		{
			name:    "single slash",
			pattern: "/",
			want:    "/",
		},
		{
			name:    "empty between slashes",
			pattern: "//",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePattern(tt.pattern); got != tt.want {
				t.Errorf("NormalizePattern(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestPatch(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		pattern  string
		block    string
		want     string
		replaced bool
	}{
		{
			name:     "replaces section in the middle",
			current:  "hello\n**Top**:\n- a\n- b\nbye",
			pattern:  `/\*\*Top\*\*:\n(.+\n)+/`,
			block:    "**Top**:\n- c",
			want:     "hello\n**Top**:\n- c\nbye",
			replaced: true,
		},
		{
			name:     "no match leaves text untouched",
			current:  "just a bio",
			pattern:  `\*\*Top\*\*`,
			block:    "ignored",
			want:     "just a bio",
			replaced: false,
		},
		{
			name:     "only the first match is replaced",
			current:  "[x]\n[y]\n",
			pattern:  `\[\w\]\n`,
			block:    "[z]",
			want:     "[z]\n[y]\n",
			replaced: true,
		},
		{
			name:     "dollar signs in block are literal",
			current:  "price: old",
			pattern:  `old`,
			block:    "$1 ${name}",
			want:     "price: $1 ${name}\n",
			replaced: true,
		},
		{
			name:     "default pattern",
			current:  "about me\n**Top tracks**:\n  - A - B\n  - C - D\nthanks",
			pattern:  DefaultPattern,
			block:    "**Top tracks**:\n  - E - F",
			want:     "about me\n**Top tracks**:\n  - E - F\nthanks",
			replaced: true,
		},
		{
			name:     "default pattern with accented names",
			current:  "hi\n**Top tracks**:\n  - Beyoncé - Halo\n  - Sigur Rós - Hoppípolla\nbye",
			pattern:  DefaultPattern,
			block:    "**Top tracks**:\n  - X - Y",
			want:     "hi\n**Top tracks**:\n  - X - Y\nbye",
			replaced: true,
		},
		{
			name:     "default pattern with CJK names",
			current:  "hi\n**最近**:\n  - 米津玄師 - Lemon\nbye",
			pattern:  DefaultPattern,
			block:    "**最近**:\n  - 宇多田ヒカル - First Love",
			want:     "hi\n**最近**:\n  - 宇多田ヒカル - First Love\nbye",
			replaced: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Patch(tt.current, tt.pattern, tt.block)
			if err != nil {
				t.Fatalf("Patch() error = %v", err)
			}
			if got.Replaced != tt.replaced {
				t.Errorf("Replaced = %v, want %v", got.Replaced, tt.replaced)
			}
			if got.Text != tt.want {
				t.Errorf("Text = %q, want %q", got.Text, tt.want)
			}
		})
	}
}

func TestPatch_SingleMatchSpan(t *testing.T) {
	current := "intro [section] outro"
	re := regexp.MustCompile(`\[section\]`)
	loc := re.FindStringIndex(current)
	block := "NEW"

	got := PatchRegexp(current, re, block)
	want := current[:loc[0]] + block + "\n" + current[loc[1]:]
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
	if got.Start != loc[0] || got.End != loc[1] {
		t.Errorf("span = [%d,%d), want [%d,%d)", got.Start, got.End, loc[0], loc[1])
	}
}

func TestPatch_Idempotent(t *testing.T) {
	current := "hi\n**Top**:\n- a\n- b\nbye"
	pattern := `/\*\*Top\*\*:\n(.+\n)+/`
	block := "**Top**:\n- c\n- d"

	first, err := Patch(current, pattern, block)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	second, err := Patch(first.Text, pattern, block)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if second.Text != first.Text {
		t.Errorf("second patch changed text:\n%q\n%q", first.Text, second.Text)
	}
}

func TestPatch_InvalidPattern(t *testing.T) {
	_, err := Patch("bio", "/(unclosed/", "block")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var patternErr *InvalidPatternError
	if !errors.As(err, &patternErr) {
		t.Fatalf("expected *InvalidPatternError, got %T", err)
	}
	if patternErr.Pattern != "(unclosed" {
		t.Errorf("Pattern = %q, want %q", patternErr.Pattern, "(unclosed")
	}
}

func TestDiff(t *testing.T) {
	diff, err := Diff("a\nb\n", "a\nc\n")
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	for _, want := range []string{"--- current", "+++ updated", "-b", "+c"} {
		if !strings.Contains(diff, want) {
			t.Errorf("diff missing %q:\n%s", want, diff)
		}
	}

	same, err := Diff("x", "x")
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if same != "" {
		t.Errorf("expected empty diff for equal input, got %q", same)
	}
}
