package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestCookiesFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is anonymous access
	if settings.GetCookiesFile() != "" {
		t.Error("Cookies file should default to empty")
	}

	settings.SetCookiesFile("/home/user/cookies.txt")
	if settings.GetCookiesFile() != "/home/user/cookies.txt" {
		t.Errorf("Expected cookies file path to round-trip, got %s", settings.GetCookiesFile())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRevealOnComplete() != DefaultRevealOnComplete {
		t.Errorf("Expected default reveal %v", DefaultRevealOnComplete)
	}

	settings.SetRevealOnComplete(true)
	if !settings.GetRevealOnComplete() {
		t.Error("Expected reveal-on-complete to be enabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
