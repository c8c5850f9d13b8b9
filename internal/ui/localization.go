package ui

import "fmt"

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyQueueSize         = "queue_size"
	KeySwipeThreshold    = "swipe_threshold"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyAppliesNextLaunch = "applies_next_launch"
	KeyProgress          = "progress"
	KeyLoading           = "loading"
	KeySummaryHeading    = "summary_heading"
	KeyNoLikes           = "no_likes"
	KeySwipeHint         = "swipe_hint"
	KeyInvalidQueueSize  = "invalid_queue_size"
	KeyInvalidThreshold  = "invalid_threshold"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
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
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
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
		KeyAppTitle:          "Cat Swipe",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyQueueSize:         "Cats per session",
		KeySwipeThreshold:    "Swipe threshold (px)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyAppliesNextLaunch: "Changes apply on next launch",
		KeyProgress:          "Cat %d of %d",
		KeyLoading:           "Fetching cats...",
		KeySummaryHeading:    "You liked %d of %d cats",
		KeyNoLikes:           "No cats liked this time",
		KeySwipeHint:         "Drag right to like, left to pass",
		KeyInvalidQueueSize:  "Enter a whole number of cats",
		KeyInvalidThreshold:  "Enter a threshold in pixels",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Котосвайп",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyQueueSize:         "Котов за сессию",
		KeySwipeThreshold:    "Порог свайпа (пикс.)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyAppliesNextLaunch: "Изменения вступят в силу при следующем запуске",
		KeyProgress:          "Кот %d из %d",
		KeyLoading:           "Загружаем котов...",
		KeySummaryHeading:    "Вам понравились %d из %d котов",
		KeyNoLikes:           "В этот раз ни один кот не понравился",
		KeySwipeHint:         "Вправо - нравится, влево - пропустить",
		KeyInvalidQueueSize:  "Введите целое число котов",
		KeyInvalidThreshold:  "Введите порог в пикселях",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Cat Swipe",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyQueueSize:         "Gatos por sessão",
		KeySwipeThreshold:    "Limite de deslize (px)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyAppliesNextLaunch: "As alterações valem no próximo início",
		KeyProgress:          "Gato %d de %d",
		KeyLoading:           "Buscando gatos...",
		KeySummaryHeading:    "Você curtiu %d de %d gatos",
		KeyNoLikes:           "Nenhum gato curtido desta vez",
		KeySwipeHint:         "Arraste para a direita para curtir, para a esquerda para pular",
		KeyInvalidQueueSize:  "Digite um número inteiro de gatos",
		KeyInvalidThreshold:  "Digite um limite em pixels",
	}
}

// Textf formats localized text for the given key
func (l *Localization) Textf(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}
