package deck

import (
	"fmt"

	"github.com/ytget/catswipe/internal/model"
)

// fakeQueue is an in-memory Queue
type fakeQueue struct {
	records []*model.CatRecord
	target  int
	done    bool
}

func newFakeQueue(target int, urls ...string) *fakeQueue {
	q := &fakeQueue{target: target}
	for _, url := range urls {
		q.add(url, model.LoadStateLoaded)
	}
	return q
}

func (q *fakeQueue) add(url string, state model.LoadState) *model.CatRecord {
	rec := model.NewCatRecord(fmt.Sprintf("cat-%d", len(q.records)), url)
	switch state {
	case model.LoadStateLoaded:
		rec.MarkLoaded([]byte(url))
	case model.LoadStateFailed:
		rec.MarkFailed(fmt.Errorf("decode %s", url))
	}
	q.records = append(q.records, rec)
	return rec
}

func (q *fakeQueue) At(index int) *model.CatRecord {
	if index < 0 || index >= len(q.records) {
		return nil
	}
	return q.records[index]
}

func (q *fakeQueue) Len() int { return len(q.records) }

func (q *fakeQueue) FinalSize() int {
	if q.done {
		return len(q.records)
	}
	return q.target
}

func (q *fakeQueue) Snapshot() []*model.CatRecord {
	return append([]*model.CatRecord(nil), q.records...)
}

// fakeLayer records what the renderer asked it to show
type fakeLayer struct {
	record    *model.CatRecord
	loading   bool
	transform Transform
	opacity   float32
	sets      int
}

func (l *fakeLayer) SetRecord(rec *model.CatRecord) {
	l.record = rec
	l.sets++
}

func (l *fakeLayer) SetLoading(loading bool)  { l.loading = loading }
func (l *fakeLayer) SetTransform(t Transform) { l.transform = t }
func (l *fakeLayer) SetOpacity(alpha float32) { l.opacity = alpha }
