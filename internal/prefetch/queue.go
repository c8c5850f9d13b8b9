package prefetch

import (
	"sync"

	"github.com/ytget/catswipe/internal/model"
)

// Queue is an append-only, fixed-capacity sequence of cat records.
// Index order is display order.
type Queue struct {
	mu      sync.RWMutex
	records []*model.CatRecord
	target  int
	done    bool
}

// NewQueue creates an empty queue with the given target size
func NewQueue(target int) *Queue {
	if target < 1 {
		target = 1
	}
	return &Queue{
		records: make([]*model.CatRecord, 0, target),
		target:  target,
	}
}

// Append adds a record and returns its index. Nil records and appends past
// the target are rejected with -1.
func (q *Queue) Append(rec *model.CatRecord) int {
	if rec == nil {
		return -1
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.done || len(q.records) >= q.target {
		return -1
	}
	q.records = append(q.records, rec)
	return len(q.records) - 1
}

// At returns the record at index, or nil when there is none yet
func (q *Queue) At(index int) *model.CatRecord {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if index < 0 || index >= len(q.records) {
		return nil
	}
	return q.records[index]
}

// Len returns the number of records fetched so far
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.records)
}

// Target returns the intended queue size
func (q *Queue) Target() int {
	return q.target
}

// FinalSize returns the size the queue is expected to reach: the target while
// filling, the actual length once the fill has finished.
func (q *Queue) FinalSize() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.done {
		return len(q.records)
	}
	return q.target
}

// MarkDone closes the queue for further appends
func (q *Queue) MarkDone() {
	q.mu.Lock()
	q.done = true
	q.mu.Unlock()
}

// Done reports whether the fill has finished
func (q *Queue) Done() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.done
}

// Snapshot returns a copy of the current records
func (q *Queue) Snapshot() []*model.CatRecord {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]*model.CatRecord, len(q.records))
	copy(out, q.records)
	return out
}
