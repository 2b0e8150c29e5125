package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jfmyers9/topsongs/internal/discord"
	"github.com/jfmyers9/topsongs/pkg/lastfm"
)

// Request template names, without the .http extension.
const (
	TemplateTopTracks = "lastfm_top_tracks"
	TemplateGetMe     = "discord_get_me"
	TemplatePatchBio  = "discord_patch_bio"
)

const templateExt = ".http"

// ErrTemplateNotFound is returned by LoadTemplate when no candidate
// directory holds the template.
var ErrTemplateNotFound = errors.New("request template not found")

// DefaultTemplates maps template names to the contents --generate-http
// writes.
var DefaultTemplates = map[string]string{
	TemplateTopTracks: lastfm.DefaultTopTracksTemplate,
	TemplateGetMe:     discord.DefaultGetMeTemplate,
	TemplatePatchBio:  discord.DefaultPatchBioTemplate,
}

// TemplateNames returns the known template names, sorted.
func TemplateNames() []string {
	names := make([]string, 0, len(DefaultTemplates))
	for name := range DefaultTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TemplateDir is where --generate-http writes templates.
func TemplateDir() string {
	return filepath.Join(getConfigDir(), "http")
}

// TemplateDirs returns the directories searched for templates, preferred
// first.
func TemplateDirs() []string {
	return []string{TemplateDir(), "http"}
}

// LoadTemplate reads name.http from the first directory in dirs that has
// it and returns its contents and path.
func LoadTemplate(name string, dirs []string) (string, string, error) {
	for _, dir := range dirs {
		path := filepath.Join(dir, name+templateExt)
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data), path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("failed to read template %s: %w", path, err)
		}
	}
	return "", "", fmt.Errorf("%w: %s%s not found in %s; run with --generate-http to create it",
		ErrTemplateNotFound, name, templateExt, strings.Join(dirs, " or "))
}

// Scaffolded reports one file written by a generator.
type Scaffolded struct {
	Path    string
	Created bool // false when the file already existed and was left alone
}

// WriteTemplates writes the named default templates into dir, skipping any
// that already exist. No names means all of them.
func WriteTemplates(dir string, names ...string) ([]Scaffolded, error) {
	if len(names) == 0 {
		names = TemplateNames()
	}
	for _, name := range names {
		if _, ok := DefaultTemplates[name]; !ok {
			return nil, fmt.Errorf("unknown template %q (want one of %s)", name, strings.Join(TemplateNames(), ", "))
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create template directory: %w", err)
	}

	results := make([]Scaffolded, 0, len(names))
	for _, name := range names {
		res, err := writeIfMissing(filepath.Join(dir, name+templateExt), DefaultTemplates[name])
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func writeIfMissing(path, content string) (Scaffolded, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return Scaffolded{Path: path}, nil
		}
		return Scaffolded{}, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return Scaffolded{}, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return Scaffolded{Path: path, Created: true}, nil
}
