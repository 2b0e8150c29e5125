//go:build integration
// +build integration

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildBinary compiles topsongs into a temporary directory.
func buildBinary(t testing.TB) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "topsongs_test")
	buildCmd := exec.Command("go", "build", "-o", bin, ".")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// isolatedEnv returns the current environment with HOME pointed at home and
// every topsongs related variable removed.
func isolatedEnv(home string) []string {
	var env []string
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		switch {
		case key == "HOME", key == "LASTFM_API_KEY", key == "DISCORD_TOKEN":
			continue
		case strings.HasPrefix(key, "TOPSONGS_"):
			continue
		}
		env = append(env, kv)
	}
	return append(env, "HOME="+home, "NO_COLOR=1")
}

// TestGenerateScaffolding writes the example config and templates into a
// fresh home directory and checks a second run leaves them alone.
func TestGenerateScaffolding(t *testing.T) {
	bin := buildBinary(t)
	home := t.TempDir()
	workDir := t.TempDir()

	run := func(args ...string) string {
		cmd := exec.Command(bin, args...)
		cmd.Dir = workDir
		cmd.Env = isolatedEnv(home)
		output, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("topsongs %v failed: %v\n%s", args, err, output)
		}
		return string(output)
	}

	output := run("--generate-config")
	configFile := filepath.Join(home, ".config", "topsongs", "topsongs.config.yaml")
	if _, err := os.Stat(configFile); err != nil {
		t.Fatalf("Config file not created: %v\n%s", err, output)
	}

	output = run("--generate-http")
	for _, name := range []string{"lastfm_top_tracks.http", "discord_get_me.http", "discord_patch_bio.http"} {
		path := filepath.Join(home, ".config", "topsongs", "http", name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Template not created: %s\n%s", path, output)
		}
	}

	// Edits must survive a second scaffold run
	edited := filepath.Join(home, ".config", "topsongs", "http", "discord_get_me.http")
	if err := os.WriteFile(edited, []byte("GET https://example.invalid/me\n"), 0644); err != nil {
		t.Fatal(err)
	}
	output = run("--generate-http", "discord_get_me")
	if !strings.Contains(output, "Exists, not overwriting") {
		t.Errorf("Expected existing file notice, got:\n%s", output)
	}
	data, err := os.ReadFile(edited)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "GET https://example.invalid/me\n" {
		t.Errorf("Template was overwritten: %q", data)
	}
}

// TestMissingCredentials checks the binary exits non-zero with a hint when
// no API key is configured.
func TestMissingCredentials(t *testing.T) {
	bin := buildBinary(t)

	cmd := exec.Command(bin, "-u", "rj", "-s", "3")
	cmd.Dir = t.TempDir()
	cmd.Env = isolatedEnv(t.TempDir())
	output, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("Expected failure without an API key, got:\n%s", output)
	}
	if !strings.Contains(string(output), "missing Last.fm API key") {
		t.Errorf("Unexpected output:\n%s", output)
	}
}

// TestLiveTopTracks queries the real Last.fm API
func TestLiveTopTracks(t *testing.T) {
	apiKey := os.Getenv("LASTFM_API_KEY")
	user := os.Getenv("LASTFM_TEST_USER")
	if apiKey == "" || user == "" {
		t.Skip("LASTFM_API_KEY and LASTFM_TEST_USER not set - skipping live test")
	}

	bin := buildBinary(t)
	cmd := exec.Command(bin, "-u", user, "-k", apiKey, "-p", "7day", "-n", "5", "--query")
	cmd.Dir = t.TempDir()
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Query failed: %v\n%s", err, output)
	}
	t.Logf("Top tracks:\n%s", output)
}

// BenchmarkHelp measures process start-up cost
func BenchmarkHelp(b *testing.B) {
	bin := buildBinary(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := exec.Command(bin, "--help").Run(); err != nil {
			b.Fatalf("Help failed: %v", err)
		}
	}
}
