package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLike     = "♥"
	IconPass     = "×"
	IconLanguage = "🌐"
)

// Card sizing
const (
	MinCardWidth     float32 = 280
	MinCardHeight    float32 = 360
	CardWidth        float32 = 360
	CardHeight       float32 = 480
	CardCornerRadius float32 = 12

	// Mobile-specific sizing
	MobileCardWidth  float32 = 300
	MobileCardHeight float32 = 420

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Summary gallery sizing
const (
	SummaryThumbSize float32 = 140
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)
