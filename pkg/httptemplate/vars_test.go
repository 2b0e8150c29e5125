package httptemplate

import "testing"

func TestBuildVars_ExplicitWins(t *testing.T) {
	env := MapEnv(map[string]string{
		"DISCORD_TOKEN": "from-env",
		"HOME":          "/home/bob",
	})
	vars := BuildVars(env,
		Pair{Name: "DISCORD_TOKEN", Value: "explicit"},
		Pair{Name: "NEW_BIO", Value: "hi"},
	)

	if got := vars["DISCORD_TOKEN"]; got != "explicit" {
		t.Errorf("DISCORD_TOKEN = %q, want explicit", got)
	}
	if got := vars["HOME"]; got != "/home/bob" {
		t.Errorf("HOME = %q, want /home/bob", got)
	}
	if got := vars["NEW_BIO"]; got != "hi" {
		t.Errorf("NEW_BIO = %q, want hi", got)
	}
}

func TestBuildVars_FirstExplicitWins(t *testing.T) {
	vars := BuildVars(nil,
		Pair{Name: "LIMIT", Value: "10"},
		Pair{Name: "LIMIT", Value: "50"},
	)
	if got := vars["LIMIT"]; got != "10" {
		t.Errorf("LIMIT = %q, want 10", got)
	}
}

func TestBuildVars_SkipsMalformedEnvEntries(t *testing.T) {
	env := func() []string {
		return []string{"=C:=C:\\", "NOEQUALS", "EMPTY=", "A=b=c"}
	}
	vars := BuildVars(env)
	if _, ok := vars[""]; ok {
		t.Error("expected empty name to be skipped")
	}
	if _, ok := vars["NOEQUALS"]; ok {
		t.Error("expected entry without '=' to be skipped")
	}
	if v, ok := vars["EMPTY"]; !ok || v != "" {
		t.Errorf("EMPTY = %q, %v; want empty and present", v, ok)
	}
	if got := vars["A"]; got != "b=c" {
		t.Errorf("A = %q, want b=c", got)
	}
}

func TestBuildVars_OSEnv(t *testing.T) {
	t.Setenv("TOPSONGS_TEST_VAR", "from-os")
	vars := BuildVars(OSEnv)
	if got := vars["TOPSONGS_TEST_VAR"]; got != "from-os" {
		t.Errorf("TOPSONGS_TEST_VAR = %q, want from-os", got)
	}
}

func TestSubstitute(t *testing.T) {
	vars := Vars{
		"BASE":     "http://h",
		"USERNAME": "bob",
		"LOOP":     "{{USERNAME}}",
		"EMPTY":    "",
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"round trip url", "{{BASE}}/x?user={{USERNAME}}", "http://h/x?user=bob"},
		{"no placeholders", "plain text { with } braces", "plain text { with } braces"},
		{"unknown kept verbatim", "token={{MISSING}}", "token={{MISSING}}"},
		{"values are not rescanned", "{{LOOP}}", "{{USERNAME}}"},
		{"empty value", "[{{EMPTY}}]", "[]"},
		{"invalid name chars left alone", "{{NOT-VALID}} {{ SPACED }}", "{{NOT-VALID}} {{ SPACED }}"},
		{"empty braces left alone", "{{}}", "{{}}"},
		{"adjacent tokens", "{{USERNAME}}{{USERNAME}}", "bobbob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.input, vars); got != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSpecResolve_DoesNotMutate(t *testing.T) {
	body := `{"bio": "{{NEW_BIO}}"}`
	spec := Spec{
		Method: "PATCH",
		URL:    "{{BASE}}/users/@me",
		Headers: []Header{
			{Name: "Authorization", Value: "{{DISCORD_TOKEN}}"},
			{Name: "X-{{NAME}}", Value: "1"},
		},
		Body: &body,
	}
	vars := Vars{"BASE": "http://h", "DISCORD_TOKEN": "tok", "NEW_BIO": "hi", "NAME": "n"}

	resolved := spec.Resolve(vars)

	if resolved.URL != "http://h/users/@me" {
		t.Errorf("url = %q", resolved.URL)
	}
	if resolved.Headers[0].Value != "tok" {
		t.Errorf("authorization = %q", resolved.Headers[0].Value)
	}
	if resolved.Headers[1].Name != "X-{{NAME}}" {
		t.Errorf("header names must not be substituted, got %q", resolved.Headers[1].Name)
	}
	if *resolved.Body != `{"bio": "hi"}` {
		t.Errorf("body = %q", *resolved.Body)
	}

	if spec.URL != "{{BASE}}/users/@me" || spec.Headers[0].Value != "{{DISCORD_TOKEN}}" || *spec.Body != `{"bio": "{{NEW_BIO}}"}` {
		t.Error("Resolve mutated the original spec")
	}
}

func TestSpecResolve_NoBodyStaysAbsent(t *testing.T) {
	spec := Spec{Method: "GET", URL: "http://x"}
	if spec.Resolve(Vars{"A": "b"}).HasBody() {
		t.Error("expected resolved spec to have no body")
	}
}
