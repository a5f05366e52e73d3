package ui

import "testing"

func TestSetTheme(t *testing.T) {
	defer SetTheme("dark")

	SetTheme("light")
	if got := GetCurrentTheme().Name; got != "light" {
		t.Errorf("theme = %q, want light", got)
	}

	SetTheme("none")
	if theme := GetCurrentTheme(); theme.Name != "none" || theme.Success != "" || theme.Reset != "" {
		t.Errorf("none theme carries escape codes: %+v", theme)
	}

	SetTheme("unknown")
	if got := GetCurrentTheme().Name; got != "dark" {
		t.Errorf("unknown theme name resolved to %q, want dark fallback", got)
	}
}

func TestInitThemeNoColorFlag(t *testing.T) {
	defer SetTheme("dark")

	InitTheme(true)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("theme = %q, want none when colors disabled", got)
	}
	if ColorGreen() != "" || ColorBold() != "" || ColorReset() != "" {
		t.Error("color accessors return escape codes with colors disabled")
	}
}

func TestInitThemeNoColorEnv(t *testing.T) {
	defer SetTheme("dark")
	t.Setenv("NO_COLOR", "1")

	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("theme = %q, want none with NO_COLOR set", got)
	}
}

func TestColorAccessorsMatchTheme(t *testing.T) {
	defer SetTheme("dark")
	SetTheme("dark")

	theme := GetCurrentTheme()
	if ColorGreen() != theme.Success {
		t.Error("ColorGreen() does not match the theme's success color")
	}
	if ColorCyan() != theme.Info {
		t.Error("ColorCyan() does not match the theme's info color")
	}
	if ColorYellow() != theme.Warning {
		t.Error("ColorYellow() does not match the theme's warning color")
	}
}

func TestGetCurrentTUITheme(t *testing.T) {
	defer SetTheme("dark")

	SetTheme("none")
	if got := GetCurrentTUITheme(); got != NoColorTUITheme {
		t.Error("TUI theme not disabled with none theme active")
	}

	SetTheme("dark")
	if got := GetCurrentTUITheme(); got != DarkTUITheme {
		t.Error("TUI theme not dark with dark theme active")
	}
}
