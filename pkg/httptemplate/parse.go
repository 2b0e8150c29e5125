package httptemplate

import (
	"strings"
)

const byteOrderMark = "\ufeff"

// Parse reads a request template.
//
// Blank lines and lines starting with '#' before the request line are
// skipped. The request line must carry a method and a URL; extra tokens are
// ignored. Header lines run until the first blank line and must contain a
// colon. Comment lines are only recognised in the header section.
func Parse(content string) (Spec, error) {
	content = strings.TrimPrefix(content, byteOrderMark)
	lines := splitLines(strings.ReplaceAll(content, "\r\n", "\n"))

	i := 0
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		break
	}
	if i == len(lines) {
		return Spec{}, &ParseError{Err: ErrNoRequestLine}
	}

	requestLine := strings.TrimSpace(lines[i])
	fields := strings.Fields(requestLine)
	if len(fields) == 0 {
		return Spec{}, &ParseError{Line: i + 1, Raw: lines[i], Err: ErrMissingMethod}
	}
	method := strings.TrimPrefix(fields[0], byteOrderMark)
	if method == "" {
		return Spec{}, &ParseError{Line: i + 1, Raw: lines[i], Err: ErrMissingMethod}
	}
	if len(fields) < 2 {
		return Spec{}, &ParseError{Line: i + 1, Raw: lines[i], Err: ErrMissingURL}
	}

	spec := Spec{Method: method, URL: fields[1]}
	var body []string
	inBody := false
	for n := i + 1; n < len(lines); n++ {
		raw := lines[n]
		if inBody {
			body = append(body, raw)
			continue
		}
		if strings.TrimSpace(raw) == "" {
			inBody = true
			continue
		}
		if strings.HasPrefix(strings.TrimLeft(raw, " \t"), "#") {
			continue
		}
		name, value, ok := strings.Cut(raw, ":")
		if !ok {
			return Spec{}, &ParseError{Line: n + 1, Raw: raw, Err: ErrInvalidHeader}
		}
		spec.Headers = append(spec.Headers, Header{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}

	if len(body) > 0 {
		joined := strings.Join(body, "\n")
		spec.Body = &joined
	}
	return spec, nil
}

// splitLines splits on '\n' without producing a trailing empty element for
// a terminating newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
