package httptemplate

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Substitute replaces {{NAME}} tokens with their values in a single
// left-to-right pass. Values are inserted verbatim and not scanned again.
// Tokens naming unknown variables are kept, braces included.
func Substitute(text string, vars Vars) string {
	if len(vars) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := token[2 : len(token)-2]
		if value, ok := vars[name]; ok {
			return value
		}
		return token
	})
}
