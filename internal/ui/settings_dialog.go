package ui

import (
	"errors"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catswipe/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	queueSizeEntry *widget.Entry
	thresholdEntry *widget.Entry
	languageSelect *widget.Select
	languageCodes  map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the settings dialog; onSaved runs after a successful save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.queueSizeEntry = widget.NewEntry()
	sd.queueSizeEntry.SetPlaceHolder(strconv.Itoa(config.MinQueueSize) + "-" + strconv.Itoa(config.MaxQueueSize))
	sd.queueSizeEntry.Validator = validateWholeNumber(t(KeyInvalidQueueSize))

	sd.thresholdEntry = widget.NewEntry()
	sd.thresholdEntry.SetPlaceHolder(formatThreshold(config.MinSwipeThreshold) + "-" + formatThreshold(config.MaxSwipeThreshold))
	sd.thresholdEntry.Validator = validateNumber(t(KeyInvalidThreshold))

	// Language selection shows display names, stores codes
	options := sd.settings.GetLanguageOptions()
	labels := make([]string, 0, len(options))
	for code, label := range options {
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyQueueSize)+":"),
		sd.queueSizeEntry,

		widget.NewLabel(t(KeySwipeThreshold)+":"),
		sd.thresholdEntry,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyAppliesNextLaunch)),
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.queueSizeEntry.SetText(strconv.Itoa(sd.settings.GetQueueSize()))
	sd.thresholdEntry.SetText(formatThreshold(sd.settings.GetSwipeThreshold()))
	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
			break
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes valid entry values to preferences; invalid values are skipped
func (sd *SettingsDialog) apply() {
	if size, err := strconv.Atoi(sd.queueSizeEntry.Text); err == nil {
		sd.settings.SetQueueSize(size)
	}

	if threshold, err := strconv.ParseFloat(sd.thresholdEntry.Text, 32); err == nil {
		sd.settings.SetSwipeThreshold(float32(threshold))
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}

func validateWholeNumber(message string) fyne.StringValidator {
	return func(s string) error {
		if _, err := strconv.Atoi(s); err != nil {
			return errors.New(message)
		}
		return nil
	}
}

func validateNumber(message string) fyne.StringValidator {
	return func(s string) error {
		if _, err := strconv.ParseFloat(s, 32); err != nil {
			return errors.New(message)
		}
		return nil
	}
}

func formatThreshold(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
