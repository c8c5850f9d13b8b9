package ui

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/catswipe/internal/model"
)

// testPNG is a tiny valid image so canvas decoding succeeds
var testPNG = func() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}()

// listSource hands out one loaded record per URL, then nil
type listSource struct {
	mu   sync.Mutex
	urls []string
	next int
}

func (s *listSource) FetchOne(ctx context.Context) *model.CatRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.urls) {
		return nil
	}
	url := s.urls[s.next]
	s.next++

	rec := model.NewCatRecord(fmt.Sprintf("cat-%d", s.next), url)
	rec.MarkLoaded(testPNG)
	return rec
}

// blockingSource blocks every fetch until ctx is cancelled
type blockingSource struct {
	started chan struct{}
	once    sync.Once
}

func (s *blockingSource) FetchOne(ctx context.Context) *model.CatRecord {
	s.once.Do(func() { close(s.started) })
	<-ctx.Done()
	return nil
}

// newTestUI builds a RootUI on the test driver with commits finishing at once
func newTestUI(t *testing.T, source *listSource, opts Options) *RootUI {
	t.Helper()

	app := test.NewApp()
	w := app.NewWindow("test")
	ui := NewRootUI(w, app, source, zaptest.NewLogger(t), opts)
	ui.schedule = func(_ time.Duration, f func()) { f() }
	return ui
}

// drag simulates a horizontal drag of dx followed by a release
func drag(card *SwipeCard, dx float32) {
	card.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(200+dx, 100)},
		Dragged:    fyne.NewDelta(dx, 0),
	})
	card.DragEnd()
}
