package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyShowCatalog       = "show_catalog"
	KeyCatalogFile       = "catalog_file"
	KeyCatalogFileHint   = "catalog_file_hint"
	KeyInterface         = "interface"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyPublishedBy       = "published_by"
	KeyDownloadsFormat   = "downloads_format"
	KeySelectAppHint     = "select_app_hint"
	KeyAppCount          = "app_count"
	KeyCatalogLoadFailed = "catalog_load_failed"
	KeyEmbeddedCatalog   = "embedded_catalog"
	KeyNoRating          = "no_rating"
)

// Fallback language used for "system" and unknown codes
const FallbackLanguage = "en"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: FallbackLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = FallbackLanguage
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[FallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetTextf formats the localized text for key with args
func (l *Localization) GetTextf(key string, args ...interface{}) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Eggplanters Store",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyShowCatalog:       "Show Catalog File",
		KeyCatalogFile:       "Catalog File",
		KeyCatalogFileHint:   "Leave empty to use the built-in catalog",
		KeyInterface:         "Interface",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved. A new catalog file is used from the next start.",
		KeyPublishedBy:       "Published by %s",
		KeyDownloadsFormat:   "%s+ downloads",
		KeySelectAppHint:     "Select an app to see its details",
		KeyAppCount:          "%d apps",
		KeyCatalogLoadFailed: "The catalog could not be loaded",
		KeyEmbeddedCatalog:   "The built-in catalog is in use",
		KeyNoRating:          "No rating",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Eggplanters Store",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyShowCatalog:       "Показать файл каталога",
		KeyCatalogFile:       "Файл каталога",
		KeyCatalogFileHint:   "Оставьте пустым для встроенного каталога",
		KeyInterface:         "Интерфейс",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки сохранены. Новый файл каталога будет использован при следующем запуске.",
		KeyPublishedBy:       "Издатель: %s",
		KeyDownloadsFormat:   "%s+ загрузок",
		KeySelectAppHint:     "Выберите приложение, чтобы увидеть подробности",
		KeyAppCount:          "Приложений: %d",
		KeyCatalogLoadFailed: "Не удалось загрузить каталог",
		KeyEmbeddedCatalog:   "Используется встроенный каталог",
		KeyNoRating:          "Нет оценки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Eggplanters Store",
		KeyFile:              "Arquivo",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyShowCatalog:       "Mostrar Arquivo do Catálogo",
		KeyCatalogFile:       "Arquivo do Catálogo",
		KeyCatalogFileHint:   "Deixe vazio para usar o catálogo embutido",
		KeyInterface:         "Interface",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas. Um novo arquivo de catálogo é usado no próximo início.",
		KeyPublishedBy:       "Publicado por %s",
		KeyDownloadsFormat:   "%s+ downloads",
		KeySelectAppHint:     "Selecione um app para ver os detalhes",
		KeyAppCount:          "%d apps",
		KeyCatalogLoadFailed: "Não foi possível carregar o catálogo",
		KeyEmbeddedCatalog:   "O catálogo embutido está em uso",
		KeyNoRating:          "Sem avaliação",
	}
}
