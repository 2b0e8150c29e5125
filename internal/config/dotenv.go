package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvFiles returns the .env files loaded at startup, in order.
func DotEnvFiles() []string {
	return []string{".env", filepath.Join(getConfigDir(), ".env")}
}

// LoadDotEnv loads each file that exists into the process environment.
// Variables that are already set keep their values, so earlier files win
// over later ones.
func LoadDotEnv(files ...string) ([]string, error) {
	var loaded []string
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("failed to load %s: %w", f, err)
		}
		loaded = append(loaded, f)
	}
	return loaded, nil
}
