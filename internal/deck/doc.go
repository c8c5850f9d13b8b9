package deck

// Package deck holds the toolkit-independent card deck logic: the drag
// gesture state machine, the front/back card renderer and the swipe session
// that advances through the queue and records decisions.
