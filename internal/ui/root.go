package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/catswipe/internal/catapi"
	"github.com/ytget/catswipe/internal/config"
	"github.com/ytget/catswipe/internal/deck"
	"github.com/ytget/catswipe/internal/model"
	"github.com/ytget/catswipe/internal/prefetch"
)

// Options overrides stored settings for a single run. Zero values fall back
// to the stored preferences.
type Options struct {
	QueueSize      int
	SwipeThreshold float32
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger
	mobile       *MobileUI

	manager  *prefetch.Manager
	queue    *prefetch.Queue
	session  *deck.Session
	renderer *deck.Renderer

	// Deck
	front         *SwipeCard
	back          *CardLayer
	deckView      *fyne.Container
	progressLabel *widget.Label
	hintLabel     *widget.Label
	frontShown    bool

	summaryView *SummaryView

	// schedule runs f on the UI goroutine after d
	schedule func(d time.Duration, f func())
	cancel   context.CancelFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, source catapi.Source, logger *zap.Logger, opts Options) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	queueSize := settings.GetQueueSize()
	if opts.QueueSize > 0 {
		queueSize = config.ClampQueueSize(opts.QueueSize)
	}
	threshold := settings.GetSwipeThreshold()
	if opts.SwipeThreshold > 0 {
		threshold = config.ClampSwipeThreshold(opts.SwipeThreshold)
	}

	queue := prefetch.NewQueue(queueSize)
	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
		mobile:       NewMobileUI(app),
		queue:        queue,
		manager:      prefetch.NewManager(source, queue, logger.Named("prefetch")),
		session:      deck.NewSession(queue),
		front:        NewSwipeCard(threshold),
		back:         NewCardLayer(),
		schedule:     scheduleOnMain,
	}
	ui.renderer = deck.NewRenderer(queue, ui.front, ui.back)

	logger.Info("session created",
		zap.String("session", ui.session.ID()),
		zap.Int("queue_size", queueSize),
		zap.Float32("threshold", threshold),
	)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Queue callbacks arrive on the fetch goroutine
	ui.manager.SetUpdateCallback(func(index int, _ *model.CatRecord) {
		fyne.Do(func() { ui.handleQueueUpdate(index) })
	})
	ui.manager.SetDoneCallback(func(total int) {
		fyne.Do(func() { ui.handleQueueDone(total) })
	})

	ui.front.OnStart = ui.session.AcceptsInput
	ui.front.OnRelease = ui.handleRelease

	ui.setupUI()
	return ui
}

// Start begins filling the queue in the background. The fill is cancelled
// when ctx is done or the window is closed.
func (ui *RootUI) Start(ctx context.Context) {
	ctx, ui.cancel = context.WithCancel(ctx)
	ui.window.SetOnClosed(ui.Stop)

	go ui.manager.Initialize(ctx)
}

// Stop cancels any outstanding fetches
func (ui *RootUI) Stop() {
	if ui.cancel != nil {
		ui.cancel()
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.progressLabel = widget.NewLabel("")
	ui.progressLabel.Alignment = fyne.TextAlignCenter

	// Create logo
	var left *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSquareSize(32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	} else {
		left = container.NewHBox(settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, nil, ui.progressLabel)

	ui.hintLabel = widget.NewLabel("")
	ui.hintLabel.Alignment = fyne.TextAlignCenter

	// Back card first so the front card draws over it
	cards := container.NewStack(ui.back, ui.front)
	ui.deckView = container.NewCenter(container.NewGridWrap(ui.mobile.CardSize(), cards))

	ui.summaryView = NewSummaryView(ui.localization)

	// Front card waits for the first record
	ui.front.SetLoading(true)

	content := container.NewBorder(
		topPanel,     // top
		ui.hintLabel, // bottom
		nil,          // left
		nil,          // right
		container.NewPadded(container.NewStack(ui.deckView, ui.summaryView.Container())),
	)

	ui.window.SetContent(content)
	ui.refreshUITexts()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(code)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.hintLabel.SetText(IconPass + "  " + ui.localization.GetText(KeySwipeHint) + "  " + IconLike)
	ui.updateProgress()
	ui.summaryView.RefreshTexts()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.logger.Info("settings saved",
			zap.Int("queue_size", ui.settings.GetQueueSize()),
			zap.Float32("threshold", ui.settings.GetSwipeThreshold()),
			zap.String("language", ui.settings.GetLanguage()),
		)
	})
}

// handleQueueUpdate reacts to a record appended at index
func (ui *RootUI) handleQueueUpdate(index int) {
	if ui.session.Terminal() {
		return
	}

	current := ui.session.Index()
	if !ui.frontShown {
		if ui.renderer.Render(current) {
			ui.frontShown = true
			ui.updateProgress()
		}
		return
	}

	if index == current+1 {
		ui.renderer.RenderBack(current)
	}
}

// handleQueueDone reacts to the end of the fill
func (ui *RootUI) handleQueueDone(total int) {
	ui.logger.Debug("queue settled", zap.Int("total", total), zap.Int("index", ui.session.Index()))

	if ui.session.Settle() {
		ui.showSummary()
		return
	}
	if ui.frontShown {
		// the back card may now be known to be empty
		ui.renderer.RenderBack(ui.session.Index())
	}
	ui.updateProgress()
}

// handleRelease animates a released drag back to center or off the deck
func (ui *RootUI) handleRelease(rel deck.Release) {
	if rel.Outcome == deck.OutcomeReset {
		ui.front.AnimateTo(deck.Transform{}, 1, deck.ResetDuration, nil)
		return
	}

	index := ui.session.Index()
	if err := ui.session.BeginCommit(rel.Direction); err != nil {
		ui.logger.Debug("swipe ignored", zap.Error(err))
		ui.front.AnimateTo(deck.Transform{}, 1, deck.ResetDuration, nil)
		return
	}

	fields := []zap.Field{
		zap.Int("index", index),
		zap.Stringer("direction", rel.Direction),
		zap.Float32("delta_x", rel.DeltaX),
	}
	if rec := ui.queue.At(index); rec != nil {
		fields = append(fields, zap.String("cat", rec.ID))
	}
	ui.logger.Info("decision recorded", fields...)

	ui.front.AnimateTo(deck.ExitTransform(rel.Direction, ui.front.Size().Width), 0, deck.ExitDuration, nil)
	ui.schedule(deck.ExitDuration, ui.finishCommit)
}

// finishCommit advances past the swiped card
func (ui *RootUI) finishCommit() {
	ui.front.StopAnimation()

	if ui.session.FinishCommit() {
		ui.showSummary()
		return
	}

	if !ui.renderer.Render(ui.session.Index()) {
		// next card still in flight; the queue update renders it
		ui.frontShown = false
		ui.front.SetRecord(nil)
		ui.front.SetTransform(deck.Transform{})
		ui.front.SetOpacity(1)
		ui.front.SetLoading(true)
		ui.back.SetRecord(nil)
		ui.back.SetLoading(false)
	}
	ui.updateProgress()
}

// showSummary replaces the deck with the liked cats
func (ui *RootUI) showSummary() {
	ui.front.StopAnimation()
	summary := ui.session.Summary()

	ui.logger.Info("session finished",
		zap.String("session", ui.session.ID()),
		zap.Int("liked", summary.Count),
		zap.Int("seen", summary.Seen),
	)

	ui.summaryView.SetSummary(summary)
	ui.deckView.Hide()
	ui.hintLabel.Hide()
	ui.summaryView.Container().Show()
	ui.updateProgress()
}

// updateProgress shows the current card position or the loading note
func (ui *RootUI) updateProgress() {
	switch {
	case ui.session.Terminal():
		ui.progressLabel.SetText("")
	case ui.frontShown:
		ui.progressLabel.SetText(ui.localization.Textf(KeyProgress, ui.session.Index()+1, ui.queue.FinalSize()))
	default:
		ui.progressLabel.SetText(ui.localization.GetText(KeyLoading))
	}
}

// scheduleOnMain runs f on the UI goroutine after d
func scheduleOnMain(d time.Duration, f func()) {
	time.AfterFunc(d, func() { fyne.Do(f) })
}
