package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyQueueSize      = "queue_size"
	KeySwipeThreshold = "swipe_threshold"
	KeyLanguage       = "app_language"
)

// Default values and bounds
const (
	DefaultQueueSize      = 15
	DefaultSwipeThreshold = 100.0
	DefaultLanguage       = "system"

	MinQueueSize      = 1
	MaxQueueSize      = 50
	MinSwipeThreshold = 20.0
	MaxSwipeThreshold = 400.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetQueueSize returns the number of cats fetched per session
func (s *Settings) GetQueueSize() int {
	value := s.app.Preferences().Int(KeyQueueSize)
	if value <= 0 {
		s.SetQueueSize(DefaultQueueSize)
		return DefaultQueueSize
	}
	return value
}

// SetQueueSize sets the number of cats fetched per session
func (s *Settings) SetQueueSize(count int) {
	s.app.Preferences().SetInt(KeyQueueSize, ClampQueueSize(count))
}

// GetSwipeThreshold returns the drag distance needed to commit a swipe
func (s *Settings) GetSwipeThreshold() float32 {
	value := s.app.Preferences().Float(KeySwipeThreshold)
	if value <= 0 {
		s.SetSwipeThreshold(DefaultSwipeThreshold)
		return DefaultSwipeThreshold
	}
	return float32(value)
}

// SetSwipeThreshold sets the drag distance needed to commit a swipe
func (s *Settings) SetSwipeThreshold(threshold float32) {
	s.app.Preferences().SetFloat(KeySwipeThreshold, float64(ClampSwipeThreshold(threshold)))
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

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ClampQueueSize bounds a queue size to the supported range
func ClampQueueSize(count int) int {
	if count < MinQueueSize {
		return MinQueueSize
	}
	if count > MaxQueueSize {
		return MaxQueueSize
	}
	return count
}

// ClampSwipeThreshold bounds a swipe threshold to the supported range
func ClampSwipeThreshold(threshold float32) float32 {
	if threshold < MinSwipeThreshold {
		return MinSwipeThreshold
	}
	if threshold > MaxSwipeThreshold {
		return MaxSwipeThreshold
	}
	return threshold
}
