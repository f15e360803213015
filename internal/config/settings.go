package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyCatalogPath = "catalog_path"
	KeyLanguage    = "app_language"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages user preferences stored by Fyne
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCatalogPath returns the catalog file chosen in the settings dialog,
// or "" when none was chosen
func (s *Settings) GetCatalogPath() string {
	return s.app.Preferences().String(KeyCatalogPath)
}

// SetCatalogPath stores the catalog file; "" clears the override
func (s *Settings) SetCatalogPath(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		s.app.Preferences().RemoveValue(KeyCatalogPath)
		return
	}
	s.app.Preferences().SetString(KeyCatalogPath, ExpandPath(path))
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
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
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
