package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/catswipe/internal/deck"
)

// SwipeCard is the front card: a CardLayer that follows the pointer or finger
// horizontally and reports how the drag ended.
type SwipeCard struct {
	CardLayer

	gesture *deck.Gesture
	anim    *fyne.Animation

	// OnStart is asked before a drag begins; returning false ignores it
	OnStart func() bool
	// OnRelease receives the classified end of every drag
	OnRelease func(deck.Release)
}

// NewSwipeCard creates a swipe card committing past threshold
func NewSwipeCard(threshold float32) *SwipeCard {
	c := &SwipeCard{gesture: deck.NewGesture(threshold)}
	c.init()
	c.ExtendBaseWidget(c)
	return c
}

// Dragging reports whether a drag is in progress
func (c *SwipeCard) Dragging() bool {
	return c.gesture.Active()
}

// Dragged implements fyne.Draggable
func (c *SwipeCard) Dragged(ev *fyne.DragEvent) {
	x := ev.AbsolutePosition.X
	if !c.gesture.Active() {
		// drags that start without a down event (e.g. trackpads) begin where the pointer was
		c.begin(x - ev.Dragged.DX)
	}

	if t, ok := c.gesture.Move(x); ok {
		c.SetTransform(t)
	}
}

// DragEnd implements fyne.Draggable
func (c *SwipeCard) DragEnd() {
	c.release()
}

// begin starts tracking a drag at x unless the owner refuses it
func (c *SwipeCard) begin(x float32) {
	if c.OnStart != nil && !c.OnStart() {
		return
	}
	// the card tracks the pointer with no lag, so any running animation stops
	c.StopAnimation()
	c.gesture.Start(x)
}

// release ends the drag and reports the outcome
func (c *SwipeCard) release() {
	rel, ok := c.gesture.End()
	if !ok {
		return
	}
	c.report(rel)
}

// cancel abandons the drag as a reset
func (c *SwipeCard) cancel() {
	rel, ok := c.gesture.Cancel()
	if !ok {
		return
	}
	c.report(rel)
}

func (c *SwipeCard) report(rel deck.Release) {
	if c.OnRelease != nil {
		c.OnRelease(rel)
	}
}

// AnimateTo moves the card to the target transform and opacity over d.
// done, if set, runs once when the animation reaches its end.
func (c *SwipeCard) AnimateTo(to deck.Transform, alpha float32, d time.Duration, done func()) {
	c.StopAnimation()

	from, fromAlpha := c.transform, c.opacity
	var once sync.Once
	c.anim = fyne.NewAnimation(d, func(p float32) {
		c.SetTransform(deck.Transform{
			OffsetX:  from.OffsetX + (to.OffsetX-from.OffsetX)*p,
			Rotation: from.Rotation + (to.Rotation-from.Rotation)*p,
		})
		c.SetOpacity(fromAlpha + (alpha-fromAlpha)*p)
		if p >= 1 && done != nil {
			once.Do(done)
		}
	})
	c.anim.Curve = fyne.AnimationEaseOut
	c.anim.Start()
}

// StopAnimation halts any running card animation where it is
func (c *SwipeCard) StopAnimation() {
	if c.anim != nil {
		c.anim.Stop()
		c.anim = nil
	}
}
