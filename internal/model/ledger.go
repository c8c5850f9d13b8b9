package model

import "fmt"

// Ledger records one like/dislike decision per queue index. Decisions are
// written exactly once each, in increasing index order.
type Ledger struct {
	decisions []bool
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{decisions: make([]bool, 0)}
}

// Record stores the decision for index. The index must be the next undecided one.
func (l *Ledger) Record(index int, liked bool) error {
	if index < len(l.decisions) {
		return fmt.Errorf("%w: index %d", ErrAlreadyDecided, index)
	}
	if index != len(l.decisions) {
		return fmt.Errorf("%w: index %d, expected %d", ErrOutOfOrder, index, len(l.decisions))
	}

	l.decisions = append(l.decisions, liked)
	return nil
}

// Decision returns the stored decision for index and whether one exists
func (l *Ledger) Decision(index int) (liked bool, ok bool) {
	if index < 0 || index >= len(l.decisions) {
		return false, false
	}
	return l.decisions[index], true
}

// Len returns the number of decided cards
func (l *Ledger) Len() int {
	return len(l.decisions)
}

// LikedCount returns the number of liked cards
func (l *Ledger) LikedCount() int {
	count := 0
	for _, liked := range l.decisions {
		if liked {
			count++
		}
	}
	return count
}

// Decisions returns a copy of all decisions in index order
func (l *Ledger) Decisions() []bool {
	out := make([]bool, len(l.decisions))
	copy(out, l.decisions)
	return out
}
