package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/takaishi/minigrep/search"
	"gopkg.in/yaml.v3"
)

// SettingsFileName is looked up in the home directory when no path is given
const SettingsFileName = ".minigrep.yaml"

// Settings holds optional settings read from a YAML file
type Settings struct {
	Highlight HighlightSettings `yaml:"highlight"`
}

// HighlightSettings configures how matches are painted with --highlight
type HighlightSettings struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Bold       *bool  `yaml:"bold"`
}

// Style converts the settings to a search.HighlightStyle
func (h HighlightSettings) Style() search.HighlightStyle {
	bold := search.DefaultHighlightStyle.Bold
	if h.Bold != nil {
		bold = *h.Bold
	}
	return search.HighlightStyle{
		Foreground: h.Foreground,
		Background: h.Background,
		Bold:       bold,
	}
}

// ApplyDefaults sets default values for any zero values in s.
func ApplyDefaults(s *Settings) {
	if s.Highlight.Foreground == "" {
		s.Highlight.Foreground = search.DefaultHighlightStyle.Foreground
	}
	if s.Highlight.Background == "" {
		s.Highlight.Background = search.DefaultHighlightStyle.Background
	}
}

// DefaultSettingsPath returns $HOME/.minigrep.yaml, or "" when there is no home directory
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, SettingsFileName)
}

// LoadSettings reads the settings file at path and applies defaults.
// A missing file yields the defaults unless required is set.
func LoadSettings(path string, required bool) (*Settings, error) {
	s := &Settings{}
	if path == "" {
		ApplyDefaults(s)
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			ApplyDefaults(s)
			return s, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		// TypeError lists one problem per line
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("failed to parse config: %s", strings.Join(typeErr.Errors, "; "))
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(s)
	return s, nil
}
