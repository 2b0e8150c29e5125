package httptemplate

// Header is a single header line. Names may repeat.
type Header struct {
	Name  string
	Value string
}

// Spec is the parsed form of a request template.
type Spec struct {
	Method  string
	URL     string
	Headers []Header
	// Body is nil when the template has no body section at all. A non-nil
	// pointer to "" is an explicitly empty body.
	Body *string
}

// HasBody reports whether the spec carries a body section.
func (s Spec) HasBody() bool {
	return s.Body != nil
}

// Resolve returns a copy of s with placeholders in the URL, header values
// and body replaced from vars. Header names and the method are left as-is.
func (s Spec) Resolve(vars Vars) Spec {
	out := Spec{
		Method: s.Method,
		URL:    Substitute(s.URL, vars),
	}
	if len(s.Headers) > 0 {
		out.Headers = make([]Header, len(s.Headers))
		for i, h := range s.Headers {
			out.Headers[i] = Header{Name: h.Name, Value: Substitute(h.Value, vars)}
		}
	}
	if s.Body != nil {
		body := Substitute(*s.Body, vars)
		out.Body = &body
	}
	return out
}
