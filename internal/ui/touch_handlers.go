package ui

import (
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
)

// Pointer and touch entry points for SwipeCard. A press starts the drag at
// once so a release without movement is still classified (as a reset).

// MouseDown implements desktop.Mouseable
func (c *SwipeCard) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	c.begin(ev.AbsolutePosition.X)
}

// MouseUp implements desktop.Mouseable
func (c *SwipeCard) MouseUp(ev *desktop.MouseEvent) {
	c.release()
}

// TouchDown implements mobile.Touchable
func (c *SwipeCard) TouchDown(ev *mobile.TouchEvent) {
	c.begin(ev.AbsolutePosition.X)
}

// TouchUp implements mobile.Touchable
func (c *SwipeCard) TouchUp(ev *mobile.TouchEvent) {
	c.release()
}

// TouchCancel implements mobile.Touchable
func (c *SwipeCard) TouchCancel(ev *mobile.TouchEvent) {
	c.cancel()
}
