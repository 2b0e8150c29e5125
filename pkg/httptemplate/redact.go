package httptemplate

import "strings"

// RedactedValue replaces secrets in debug output.
const RedactedValue = "<redacted>"

var secretQueryKeys = []string{"api_key", "apikey", "token", "auth", "authorization"}

// RedactURL hides the values of credential-looking query parameters. Every
// "key=" occurrence of the known names has its value replaced up to the next
// '&' or the end of the string.
func RedactURL(rawURL string) string {
	out := rawURL
	for _, key := range secretQueryKeys {
		needle := key + "="
		pos := 0
		for {
			idx := strings.Index(out[pos:], needle)
			if idx < 0 {
				break
			}
			start := pos + idx + len(needle)
			end := len(out)
			if amp := strings.IndexByte(out[start:], '&'); amp >= 0 {
				end = start + amp
			}
			out = out[:start] + RedactedValue + out[end:]
			pos = start + len(RedactedValue)
		}
	}
	return out
}

// RedactHeader hides Authorization and Cookie values regardless of case.
func RedactHeader(name, value string) string {
	if strings.EqualFold(name, "Authorization") || strings.EqualFold(name, "Cookie") {
		return RedactedValue
	}
	return value
}
