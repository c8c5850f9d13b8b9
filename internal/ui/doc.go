package ui

// Package ui contains the Fyne-based user interface: the stacked card deck
// with its swipeable front card, the liked-cats summary, settings and menus.
// It wires the prefetch queue and swipe session to the canvas; all UI strings
// are localized via Localization.
