package ui

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/catswipe/internal/model"
)

func TestRootUISwipeSession(t *testing.T) {
	ui := newTestUI(t, &listSource{urls: []string{"a.jpg", "b.jpg", "c.jpg"}}, Options{QueueSize: 3})
	ui.manager.Initialize(context.Background())

	q := ui.queue.Snapshot()
	require.Len(t, q, 3)
	require.True(t, ui.frontShown)
	assert.Same(t, q[0], ui.front.Record())
	assert.Same(t, q[1], ui.back.Record())
	assert.Equal(t, "Cat 1 of 3", ui.progressLabel.Text)

	drag(ui.front, 150)
	assert.Same(t, q[1], ui.front.Record())
	assert.Same(t, q[2], ui.back.Record())
	assert.True(t, ui.front.Transform().IsNeutral())
	assert.Equal(t, float32(1), ui.front.Opacity())

	drag(ui.front, -150)
	assert.Same(t, q[2], ui.front.Record())
	assert.Nil(t, ui.back.Record())
	assert.False(t, ui.back.Loading())

	drag(ui.front, 150)
	require.True(t, ui.session.Terminal())
	assert.True(t, ui.summaryView.Container().Visible())
	assert.False(t, ui.deckView.Visible())

	summary := ui.summaryView.Summary()
	assert.Equal(t, []string{q[0].URL, q[2].URL}, summary.URLs())
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 3, summary.Seen)
	assert.Equal(t, 2, ui.summaryView.Thumbnails())
	assert.Equal(t, "You liked 2 of 3 cats", ui.summaryView.heading.Text)
}

func TestRootUIShortDragResets(t *testing.T) {
	ui := newTestUI(t, &listSource{urls: []string{"a.jpg", "b.jpg"}}, Options{QueueSize: 2})
	ui.manager.Initialize(context.Background())
	first := ui.front.Record()

	drag(ui.front, 50)
	drag(ui.front, -100)

	assert.Same(t, first, ui.front.Record())
	assert.Equal(t, 0, ui.session.Index())
	assert.Equal(t, 0, ui.session.Ledger().Len())
	assert.False(t, ui.session.Terminal())
}

func TestRootUIIgnoresInputWhileCommitting(t *testing.T) {
	ui := newTestUI(t, &listSource{urls: []string{"a.jpg", "b.jpg", "c.jpg"}}, Options{QueueSize: 3})
	ui.manager.Initialize(context.Background())

	var pending []func()
	ui.schedule = func(_ time.Duration, f func()) { pending = append(pending, f) }

	drag(ui.front, 150)
	drag(ui.front, -150)
	drag(ui.front, 150)

	require.Len(t, pending, 1)
	assert.Equal(t, []bool{true}, ui.session.Ledger().Decisions())

	pending[0]()
	assert.Equal(t, 1, ui.session.Index())

	drag(ui.front, -150)
	assert.Equal(t, []bool{true, false}, ui.session.Ledger().Decisions())
}

func TestRootUIShortQueueEndsEarly(t *testing.T) {
	ui := newTestUI(t, &listSource{urls: []string{"a.jpg"}}, Options{QueueSize: 4})
	ui.manager.Initialize(context.Background())

	require.Equal(t, 1, ui.queue.FinalSize())
	assert.Nil(t, ui.back.Record())
	assert.False(t, ui.back.Loading())

	drag(ui.front, 150)
	require.True(t, ui.session.Terminal())
	assert.Equal(t, 1, ui.summaryView.Summary().Count)
}

func TestRootUIEmptyQueueShowsSummary(t *testing.T) {
	ui := newTestUI(t, &listSource{}, Options{QueueSize: 3})
	ui.manager.Initialize(context.Background())

	require.True(t, ui.session.Terminal())
	assert.True(t, ui.summaryView.Container().Visible())
	assert.Equal(t, 0, ui.summaryView.Thumbnails())
	assert.True(t, ui.summaryView.emptyNote.Visible())
}

func TestRootUILateRecords(t *testing.T) {
	ui := newTestUI(t, &listSource{}, Options{QueueSize: 3})

	assert.True(t, ui.front.Loading())
	assert.Equal(t, "Fetching cats...", ui.progressLabel.Text)

	// drags before any card arrives are ignored
	drag(ui.front, 150)
	assert.Equal(t, 0, ui.session.Ledger().Len())

	a := model.NewCatRecord("a", "a.jpg")
	a.MarkLoaded(testPNG)
	ui.handleQueueUpdate(ui.queue.Append(a))

	assert.Same(t, a, ui.front.Record())
	assert.False(t, ui.front.Loading())
	assert.True(t, ui.back.Loading())

	b := model.NewCatRecord("b", "b.jpg")
	b.MarkFailed(assert.AnError)
	ui.handleQueueUpdate(ui.queue.Append(b))

	assert.Same(t, b, ui.back.Record())
	assert.False(t, ui.back.Loading())

	// swipe past both, the third card has not arrived yet
	drag(ui.front, 150)
	drag(ui.front, 150)
	assert.False(t, ui.frontShown)
	assert.Nil(t, ui.front.Record())
	assert.True(t, ui.front.Loading())

	c := model.NewCatRecord("c", "c.jpg")
	c.MarkLoaded(testPNG)
	ui.handleQueueUpdate(ui.queue.Append(c))
	assert.Same(t, c, ui.front.Record())
	assert.Nil(t, ui.back.Record())
}

func TestRootUIOptionsOverrideSettings(t *testing.T) {
	ui := newTestUI(t, &listSource{}, Options{QueueSize: 500, SwipeThreshold: 250})

	assert.Equal(t, 50, ui.queue.Target())
	assert.Equal(t, float32(250), ui.front.gesture.Threshold())

	defaults := newTestUI(t, &listSource{}, Options{})
	assert.Equal(t, 15, defaults.queue.Target())
	assert.Equal(t, float32(100), defaults.front.gesture.Threshold())
}

func TestRootUILanguageChange(t *testing.T) {
	ui := newTestUI(t, &listSource{}, Options{QueueSize: 1})

	ui.onLanguageChange("ru")

	assert.Equal(t, "ru", ui.settings.GetLanguage())
	assert.Equal(t, "Котосвайп", ui.window.Title())
	assert.Equal(t, "Загружаем котов...", ui.progressLabel.Text)
}

func TestRootUIStopCancelsFetches(t *testing.T) {
	app := test.NewApp()
	w := app.NewWindow("test")
	source := &blockingSource{started: make(chan struct{})}
	ui := NewRootUI(w, app, source, zaptest.NewLogger(t), Options{QueueSize: 3})

	done := make(chan int, 1)
	ui.manager.SetDoneCallback(func(total int) { done <- total })

	ui.Start(context.Background())
	select {
	case <-source.started:
	case <-time.After(time.Second):
		t.Fatal("fetch never started")
	}

	w.Close()

	select {
	case total := <-done:
		assert.Equal(t, 0, total)
	case <-time.After(time.Second):
		t.Fatal("fill did not stop after window close")
	}
}
