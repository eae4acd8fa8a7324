package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/takaishi/minigrep/search"
)

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
highlight:
  foreground: "196"
  bold: false
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path, true)
	if err != nil {
		t.Fatal(err)
	}
	style := s.Highlight.Style()
	want := search.HighlightStyle{Foreground: "196", Background: "236", Bold: false}
	if style != want {
		t.Errorf("Style() = %+v, want %+v", style, want)
	}
}

func TestLoadSettings_emptyPath(t *testing.T) {
	s, err := LoadSettings("", false)
	if err != nil {
		t.Fatal(err)
	}
	if s.Highlight.Style() != search.DefaultHighlightStyle {
		t.Errorf("Style() = %+v, want defaults", s.Highlight.Style())
	}
}

func TestLoadSettings_missingOptional(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"), false)
	if err != nil {
		t.Fatal(err)
	}
	if s.Highlight.Style() != search.DefaultHighlightStyle {
		t.Errorf("Style() = %+v, want defaults", s.Highlight.Style())
	}
}

func TestLoadSettings_missingRequired(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"), true); err == nil {
		t.Fatal("expected error for missing required config")
	}
}

func TestLoadSettings_invalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("highlight: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path, false); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadSettings_typeErrorsOnOneLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
highlight:
  foreground: [1, 2]
  bold: notabool
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadSettings(path, true)
	if err == nil {
		t.Fatal("expected type error")
	}
	msg := err.Error()
	if strings.Contains(msg, "\n") {
		t.Errorf("error spans several lines: %q", msg)
	}
	if !strings.Contains(msg, "; ") {
		t.Errorf("expected both problems joined, got %q", msg)
	}
}
