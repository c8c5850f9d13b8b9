package deck

import "github.com/ytget/catswipe/internal/model"

// Layer is one of the two stacked card surfaces
type Layer interface {
	// SetRecord shows the record's image; nil clears the layer
	SetRecord(rec *model.CatRecord)
	SetLoading(loading bool)
	SetTransform(t Transform)
	SetOpacity(alpha float32)
}

// Queue is the read side of the prefetch queue the renderer draws from
type Queue interface {
	At(index int) *model.CatRecord
	Len() int
	FinalSize() int
	Snapshot() []*model.CatRecord
}

// Renderer binds queue entries to the front and back layers
type Renderer struct {
	queue Queue
	front Layer
	back  Layer
}

// NewRenderer creates a renderer for the given queue and layers
func NewRenderer(queue Queue, front, back Layer) *Renderer {
	return &Renderer{queue: queue, front: front, back: back}
}

// Render shows queue[index] on the front layer and queue[index+1] on the
// back layer. It returns false without touching either layer when there is
// no record at index yet.
func (r *Renderer) Render(index int) bool {
	front := r.queue.At(index)
	if front == nil {
		return false
	}

	// every new card starts undragged, whatever the previous card's exit did
	r.front.SetTransform(Transform{})
	r.front.SetOpacity(1)
	r.front.SetLoading(false)
	r.front.SetRecord(front)

	r.RenderBack(index)
	return true
}

// RenderBack updates only the back layer for the card at index
func (r *Renderer) RenderBack(index int) {
	switch r.BackStateFor(index) {
	case BackImage:
		r.back.SetLoading(false)
		r.back.SetRecord(r.queue.At(index + 1))
	case BackEmpty:
		r.back.SetLoading(false)
		r.back.SetRecord(nil)
	default:
		r.back.SetRecord(nil)
		r.back.SetLoading(true)
	}
}

// BackState names what the back layer shows
type BackState int

const (
	BackImage BackState = iota
	BackEmpty
	BackLoading
)

// BackStateFor reports what RenderBack would show for index
func (r *Renderer) BackStateFor(index int) BackState {
	next := r.queue.At(index + 1)
	switch {
	case next != nil && next.Settled():
		return BackImage
	case index+1 >= r.queue.FinalSize():
		return BackEmpty
	default:
		return BackLoading
	}
}
