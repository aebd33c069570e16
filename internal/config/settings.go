package config

import (
	"fyne.io/fyne/v2"

	"github.com/tubesaver/tubesaver/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir      = "download_directory"
	KeyCookiesFile      = "cookies_file"
	KeyLanguage         = "app_language"
	KeyRevealOnComplete = "reveal_on_complete"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultRevealOnComplete = false
	FallbackDownloadDir     = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetCookiesFile returns the cookies file path for the provider's
// authenticated access mode; empty means anonymous access
func (s *Settings) GetCookiesFile() string {
	return s.app.Preferences().String(KeyCookiesFile)
}

// SetCookiesFile sets the cookies file path
func (s *Settings) SetCookiesFile(path string) {
	s.app.Preferences().SetString(KeyCookiesFile, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealOnComplete returns whether finished downloads are revealed in
// the file manager
func (s *Settings) GetRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnComplete, DefaultRevealOnComplete)
}

// SetRevealOnComplete sets whether to reveal finished downloads
func (s *Settings) SetRevealOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnComplete, reveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
