package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catswipe/internal/deck"
	"github.com/ytget/catswipe/internal/model"
)

// CardLayer is one stacked card surface showing a single cat image
type CardLayer struct {
	widget.BaseWidget

	frame    *canvas.Rectangle
	image    *canvas.Image
	activity *widget.Activity

	record    *model.CatRecord
	transform deck.Transform
	opacity   float32
	loading   bool
}

// NewCardLayer creates an empty card layer
func NewCardLayer() *CardLayer {
	l := &CardLayer{}
	l.init()
	l.ExtendBaseWidget(l)
	return l
}

// init sets up the canvas objects; shared by CardLayer and SwipeCard
func (l *CardLayer) init() {
	l.frame = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	l.frame.CornerRadius = CardCornerRadius
	l.frame.StrokeColor = color.NRGBA{A: 40}
	l.frame.StrokeWidth = 1

	l.image = canvas.NewImageFromResource(nil)
	l.image.FillMode = canvas.ImageFillContain
	l.image.ScaleMode = canvas.ImageScaleSmooth

	l.activity = widget.NewActivity()
	l.activity.Hide()

	l.opacity = 1
}

// SetRecord shows the record's image; nil clears the layer
func (l *CardLayer) SetRecord(rec *model.CatRecord) {
	l.record = rec
	l.image.Resource = resourceFor(rec)
	l.Refresh()
}

// SetLoading toggles the loading indicator
func (l *CardLayer) SetLoading(loading bool) {
	if l.loading == loading {
		return
	}
	l.loading = loading
	if loading {
		l.activity.Show()
		l.activity.Start()
	} else {
		l.activity.Stop()
		l.activity.Hide()
	}
	l.Refresh()
}

// SetTransform moves the card horizontally. Rotation is kept for callers but
// not drawn: Fyne canvas objects cannot be rotated.
func (l *CardLayer) SetTransform(t deck.Transform) {
	l.transform = t
	l.Refresh()
}

// SetOpacity sets the card opacity, 1 being fully opaque
func (l *CardLayer) SetOpacity(alpha float32) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	l.opacity = alpha
	l.Refresh()
}

// Record returns the record currently shown
func (l *CardLayer) Record() *model.CatRecord { return l.record }

// Transform returns the current transform
func (l *CardLayer) Transform() deck.Transform { return l.transform }

// Opacity returns the current opacity
func (l *CardLayer) Opacity() float32 { return l.opacity }

// Loading reports whether the loading indicator is shown
func (l *CardLayer) Loading() bool { return l.loading }

// CreateRenderer implements fyne.Widget
func (l *CardLayer) CreateRenderer() fyne.WidgetRenderer {
	return &cardLayerRenderer{layer: l}
}

// resourceFor converts a record into something the canvas can draw
func resourceFor(rec *model.CatRecord) fyne.Resource {
	if rec == nil {
		return nil
	}
	if rec.LoadState.IsUsable() && len(rec.Image) > 0 {
		return fyne.NewStaticResource(rec.ResourceName(), rec.Image)
	}
	return theme.BrokenImageIcon()
}

type cardLayerRenderer struct {
	layer *CardLayer
}

func (r *cardLayerRenderer) Layout(size fyne.Size) {
	l := r.layer
	pos := fyne.NewPos(l.transform.OffsetX, 0)

	l.frame.Resize(size)
	l.frame.Move(pos)

	inset := theme.Padding()
	l.image.Resize(size.SubtractWidthHeight(inset*2, inset*2))
	l.image.Move(pos.AddXY(inset, inset))

	spinner := l.activity.MinSize().Max(fyne.NewSquareSize(MinTouchTargetSize))
	l.activity.Resize(spinner)
	l.activity.Move(fyne.NewPos((size.Width-spinner.Width)/2, (size.Height-spinner.Height)/2))
}

func (r *cardLayerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(MinCardWidth, MinCardHeight)
}

func (r *cardLayerRenderer) Refresh() {
	l := r.layer
	l.image.Translucency = float64(1 - l.opacity)
	l.frame.Hidden = l.record == nil && !l.loading

	r.Layout(l.Size())
	l.frame.Refresh()
	l.image.Refresh()
}

func (r *cardLayerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layer.frame, r.layer.image, r.layer.activity}
}

func (r *cardLayerRenderer) Destroy() {
	r.layer.activity.Stop()
}
