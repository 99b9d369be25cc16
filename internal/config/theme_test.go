package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/regatta/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	themeContent := []byte(`theme:
  accent: "#FF0000"
  focus_bg: "#00FF00"
`)
	themePath := filepath.Join(t.TempDir(), "regatta-theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("REGATTA_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.FocusBg != "#00FF00" {
		t.Errorf("Expected focus_bg to be #00FF00, got %s", cfg.ColorScheme.FocusBg)
	}
	// Untouched values keep the default preset
	if cfg.ColorScheme.Paid != colors.Default().Paid {
		t.Errorf("Expected paid to stay %s, got %s", colors.Default().Paid, cfg.ColorScheme.Paid)
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("REGATTA_THEME_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.ColorScheme.Accent != colors.Default().Accent {
		t.Errorf("Expected default accent, got %s", cfg.ColorScheme.Accent)
	}
}

func TestPresetApplyDefaults(t *testing.T) {
	scheme := colors.ColorScheme{Preset: "monochrome", Accent: "#123456"}
	scheme.ApplyDefaults()

	if scheme.Accent != "#123456" {
		t.Errorf("Custom accent overwritten: %s", scheme.Accent)
	}
	if scheme.FocusBg != colors.Monochrome().FocusBg {
		t.Errorf("FocusBg = %s, want monochrome preset %s", scheme.FocusBg, colors.Monochrome().FocusBg)
	}
}

func TestMergeFromPresetSwitch(t *testing.T) {
	scheme := DefaultColorScheme()
	scheme.MergeFrom(colors.ColorScheme{Preset: "monochrome", ErrorFg: "#ABCDEF"})

	if scheme.Preset != "monochrome" {
		t.Errorf("Preset = %s, want monochrome", scheme.Preset)
	}
	if scheme.HeaderBg != MonochromeColorScheme().HeaderBg {
		t.Errorf("HeaderBg = %s, want monochrome value", scheme.HeaderBg)
	}
	if scheme.ErrorFg != "#ABCDEF" {
		t.Errorf("ErrorFg = %s, want #ABCDEF", scheme.ErrorFg)
	}
}
