package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catswipe/internal/model"
)

// SummaryView shows the liked cats once a session ends
type SummaryView struct {
	localization *Localization

	heading   *widget.Label
	emptyNote *widget.Label
	gallery   *fyne.Container
	content   *fyne.Container

	summary model.Summary
}

// NewSummaryView creates a hidden summary view
func NewSummaryView(localization *Localization) *SummaryView {
	v := &SummaryView{localization: localization}

	v.heading = widget.NewLabel("")
	v.heading.Alignment = fyne.TextAlignCenter
	v.heading.TextStyle = fyne.TextStyle{Bold: true}

	v.emptyNote = widget.NewLabel(localization.GetText(KeyNoLikes))
	v.emptyNote.Alignment = fyne.TextAlignCenter
	v.emptyNote.Hide()

	v.gallery = container.NewGridWrap(fyne.NewSquareSize(SummaryThumbSize))

	v.content = container.NewBorder(
		v.heading,
		nil,
		nil,
		nil,
		container.NewStack(container.NewVScroll(v.gallery), container.NewCenter(v.emptyNote)),
	)
	v.content.Hide()
	return v
}

// SetSummary replaces the gallery with the liked cats of s
func (v *SummaryView) SetSummary(s model.Summary) {
	v.summary = s

	thumbs := make([]fyne.CanvasObject, 0, len(s.Items))
	for _, item := range s.Items {
		thumbs = append(thumbs, newThumbnail(item))
	}
	v.gallery.Objects = thumbs
	v.gallery.Refresh()

	if s.Count == 0 {
		v.emptyNote.Show()
	} else {
		v.emptyNote.Hide()
	}
	v.RefreshTexts()
}

// Summary returns the summary currently shown
func (v *SummaryView) Summary() model.Summary {
	return v.summary
}

// Thumbnails returns the number of images in the gallery
func (v *SummaryView) Thumbnails() int {
	return len(v.gallery.Objects)
}

// RefreshTexts re-renders localized texts
func (v *SummaryView) RefreshTexts() {
	v.heading.SetText(v.localization.Textf(KeySummaryHeading, v.summary.Count, v.summary.Seen))
	v.emptyNote.SetText(v.localization.GetText(KeyNoLikes))
}

// Container returns the view's root object
func (v *SummaryView) Container() *fyne.Container {
	return v.content
}

func newThumbnail(item model.LikedCat) fyne.CanvasObject {
	img := canvas.NewImageFromResource(resourceFor(item.Record))
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSquareSize(SummaryThumbSize))
	return img
}
