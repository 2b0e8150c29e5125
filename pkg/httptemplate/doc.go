// Package httptemplate turns small, human-authored request descriptions into
// HTTP calls.
//
// # Format
//
// A template describes exactly one request:
//
//	# comments are allowed before the body
//	PATCH https://discord.com/api/v9/users/@me/profile
//	Content-Type: application/json
//	Authorization: {{DISCORD_TOKEN}}
//
//	{"bio": "{{NEW_BIO}}"}
//
// The first significant line holds the method and URL. Header lines follow
// until the first blank line; everything after it is the body, kept verbatim.
//
// # Variables
//
// Placeholders look like {{NAME}} where NAME is made of letters, digits and
// underscores. Values come from explicit pairs first and the process
// environment second:
//
//	vars := httptemplate.BuildVars(httptemplate.OSEnv,
//	    httptemplate.Pair{Name: "USERNAME", Value: "bob"},
//	)
//	resolved := spec.Resolve(vars)
//
// Unknown placeholders are left untouched so a missing variable is visible in
// the emitted request. Substituted values are never re-scanned.
//
// # Execution
//
//	exec := httptemplate.NewExecutor(httptemplate.ExecutorConfig{Debug: true, Logger: &logger})
//	body, err := exec.Execute(ctx, resolved)
//	if err != nil {
//	    var statusErr *httptemplate.StatusError
//	    if errors.As(err, &statusErr) {
//	        fmt.Println(statusErr.Code, statusErr.Body)
//	    }
//	}
//
// With Debug set the request line, headers and body are traced through the
// configured zerolog logger. Credentials in the query string and the
// Authorization and Cookie headers are redacted before they are logged.
package httptemplate
