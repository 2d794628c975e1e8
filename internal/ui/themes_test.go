package ui

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func TestSetTheme(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) selected %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	t.Run("noColor flag wins", func(t *testing.T) {
		InitTheme("light", true, nil)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("expected none theme, got %q", GetCurrentTheme().Name)
		}
	})

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme("light", false, nil)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("expected none theme, got %q", GetCurrentTheme().Name)
		}
	})

	t.Run("non-terminal writer disables colors", func(t *testing.T) {
		InitTheme("dark", false, &bytes.Buffer{})
		if GetCurrentTheme().Name != "none" {
			t.Errorf("expected none theme, got %q", GetCurrentTheme().Name)
		}
	})
}

func TestNoColorStylesRenderPlainText(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	SetCurrentTheme(NoColorTheme)
	for _, render := range []func(...string) string{
		HeaderStyle().Render,
		NameStyle().Render,
		DurationStyle().Render,
		SuccessStyle().Render,
		ErrorStyle().Render,
		MutedStyle().Render,
	} {
		if got := render("list"); got != "list" {
			t.Errorf("expected plain text, got %q", got)
		}
	}
}

func TestColorsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		noColor bool
		out     io.Writer
	}{
		{"flag", true, os.Stdout},
		{"buffer", false, &bytes.Buffer{}},
		{"nil writer", false, nil},
	}
	for _, tt := range tests {
		if colorsEnabled(tt.noColor, tt.out) {
			t.Errorf("%s: colors should be disabled", tt.name)
		}
	}
}
