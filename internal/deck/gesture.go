package deck

import "time"

// Direction is the side a card was swiped to
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// String returns a human-readable direction
func (d Direction) String() string {
	if d == DirectionRight {
		return "right"
	}
	return "left"
}

// Liked maps a swipe direction to a decision: right is like, left is dislike
func (d Direction) Liked() bool {
	return d == DirectionRight
}

// Outcome classifies a released drag
type Outcome int

const (
	OutcomeReset Outcome = iota
	OutcomeCommit
)

// Gesture thresholds and animation constants
const (
	DefaultSwipeThreshold float32 = 100
	RotationFactor        float32 = 10 // degrees = offset / RotationFactor
	ExitRotation          float32 = 30
	ExitOffsetRatio       float32 = 1.5 // of the card width
	ResetDuration                 = 300 * time.Millisecond
	ExitDuration                  = 300 * time.Millisecond
)

// Transform is the visual displacement of the front card
type Transform struct {
	OffsetX  float32
	Rotation float32 // degrees
}

// IsNeutral reports whether the transform is the centered, unrotated state
func (t Transform) IsNeutral() bool {
	return t.OffsetX == 0 && t.Rotation == 0
}

// DragTransform returns the transform for a horizontal drag of deltaX
func DragTransform(deltaX float32) Transform {
	return Transform{OffsetX: deltaX, Rotation: deltaX / RotationFactor}
}

// ExitTransform returns the off-screen transform for a committed swipe
func ExitTransform(dir Direction, cardWidth float32) Transform {
	offset := cardWidth * ExitOffsetRatio
	if dir == DirectionLeft {
		offset = -offset
	}
	return Transform{OffsetX: offset, Rotation: ExitRotation}
}

// Release describes how a drag ended
type Release struct {
	DeltaX    float32
	Outcome   Outcome
	Direction Direction // valid when Outcome is OutcomeCommit
}

// Gesture tracks a single horizontal drag. States are idle and dragging;
// Move and End are no-ops while idle.
type Gesture struct {
	threshold float32
	active    bool
	startX    float32
	currentX  float32
}

// NewGesture creates a gesture with the given commit threshold.
// Non-positive thresholds fall back to DefaultSwipeThreshold.
func NewGesture(threshold float32) *Gesture {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Gesture{threshold: threshold}
}

// Threshold returns the commit threshold
func (g *Gesture) Threshold() float32 {
	return g.threshold
}

// Active reports whether a drag is in progress
func (g *Gesture) Active() bool {
	return g.active
}

// Start begins a drag at x, discarding any previous state
func (g *Gesture) Start(x float32) {
	g.active = true
	g.startX = x
	g.currentX = x
}

// Move updates the drag to x and returns the transform to apply
func (g *Gesture) Move(x float32) (Transform, bool) {
	if !g.active {
		return Transform{}, false
	}
	g.currentX = x
	return DragTransform(g.currentX - g.startX), true
}

// DeltaX returns the current horizontal displacement
func (g *Gesture) DeltaX() float32 {
	return g.currentX - g.startX
}

// End finishes the drag and classifies it
func (g *Gesture) End() (Release, bool) {
	if !g.active {
		return Release{}, false
	}
	g.active = false

	return Classify(g.DeltaX(), g.threshold), true
}

// Cancel abandons the drag; the release is always a reset
func (g *Gesture) Cancel() (Release, bool) {
	if !g.active {
		return Release{}, false
	}
	g.active = false
	return Release{DeltaX: g.DeltaX(), Outcome: OutcomeReset}, true
}

// Classify decides whether a displacement commits a swipe
func Classify(deltaX, threshold float32) Release {
	abs := deltaX
	if abs < 0 {
		abs = -abs
	}

	if abs <= threshold {
		return Release{DeltaX: deltaX, Outcome: OutcomeReset}
	}

	dir := DirectionLeft
	if deltaX > 0 {
		dir = DirectionRight
	}
	return Release{DeltaX: deltaX, Outcome: OutcomeCommit, Direction: dir}
}
