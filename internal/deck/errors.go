package deck

import "errors"

var (
	ErrNotSwiping = errors.New("session is not accepting swipes")
	ErrNoCard     = errors.New("no card at current index")
)
