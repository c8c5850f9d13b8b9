package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides device-specific sizing
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CardSize returns the preferred card size for the current device
func (m *MobileUI) CardSize() fyne.Size {
	if !m.IsMobileDevice() {
		return fyne.NewSize(CardWidth, CardHeight)
	}
	if m.IsLandscape() {
		// keep the card inside the short side of the screen
		return fyne.NewSize(MobileCardHeight*0.75, MobileCardWidth)
	}
	return fyne.NewSize(MobileCardWidth, MobileCardHeight)
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
