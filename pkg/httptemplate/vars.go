package httptemplate

import (
	"os"
	"strings"
)

// Vars maps placeholder names to values.
type Vars map[string]string

// Pair is an explicit, call-specific variable.
type Pair struct {
	Name  string
	Value string
}

// Env enumerates ambient variables in KEY=VALUE form, the shape of
// os.Environ.
type Env func() []string

// OSEnv reads the process environment.
func OSEnv() []string {
	return os.Environ()
}

// MapEnv serves a fixed set of variables, mostly for tests.
func MapEnv(values map[string]string) Env {
	return func() []string {
		out := make([]string, 0, len(values))
		for k, v := range values {
			out = append(out, k+"="+v)
		}
		return out
	}
}

// BuildVars collects explicit pairs first, keeping the first value seen for
// a name, then fills in every ambient variable whose name is still unset.
// Explicit values are never shadowed by the environment. A nil env means no
// ambient variables.
func BuildVars(env Env, explicit ...Pair) Vars {
	vars := make(Vars, len(explicit))
	for _, p := range explicit {
		if _, ok := vars[p.Name]; ok {
			continue
		}
		vars[p.Name] = p.Value
	}
	if env == nil {
		return vars
	}
	for _, kv := range env() {
		name, value, ok := strings.Cut(kv, "=")
		// Windows keeps per-drive entries like "=C:=C:\" with an empty name.
		if !ok || name == "" {
			continue
		}
		if _, exists := vars[name]; exists {
			continue
		}
		vars[name] = value
	}
	return vars
}
