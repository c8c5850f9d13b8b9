package prefetch

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/catswipe/internal/catapi"
	"github.com/ytget/catswipe/internal/model"
)

// SeedFetches is the number of fetches raced to fill the first cards
const SeedFetches = 2

// Manager fills a Queue from a Source
type Manager struct {
	source   catapi.Source
	queue    *Queue
	logger   *zap.Logger
	onUpdate func(index int, rec *model.CatRecord) // called after each append
	onDone   func(total int)                       // called once the fill ends
}

// seedResult pairs a raced fetch with the slot that issued it
type seedResult struct {
	slot int
	rec  *model.CatRecord
}

// NewManager creates a manager filling queue from source
func NewManager(source catapi.Source, queue *Queue, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		source: source,
		queue:  queue,
		logger: logger,
	}
}

// SetUpdateCallback sets the callback invoked after each record is appended
func (m *Manager) SetUpdateCallback(callback func(index int, rec *model.CatRecord)) {
	m.onUpdate = callback
}

// SetDoneCallback sets the callback invoked once the fill has finished
func (m *Manager) SetDoneCallback(callback func(total int)) {
	m.onDone = callback
}

// Queue returns the queue being filled
func (m *Manager) Queue() *Queue {
	return m.queue
}

// Initialize fills the queue up to its target. It blocks until every fetch
// has settled or ctx is cancelled, and always marks the queue done.
func (m *Manager) Initialize(ctx context.Context) {
	target := m.queue.Target()
	defer m.finish()

	seeds := min(SeedFetches, target)
	m.seed(ctx, seeds)

	for i := 0; i < target-seeds; i++ {
		if ctx.Err() != nil {
			m.logger.Info("prefetch cancelled", zap.Int("fetched", m.queue.Len()))
			return
		}
		m.push(m.source.FetchOne(ctx), -1)
	}
}

// seed races n fetches and appends them in the order they settle. The first
// settled record becomes the front card and is published before the others
// finish.
func (m *Manager) seed(ctx context.Context, n int) {
	results := make(chan seedResult, n)

	g, gctx := errgroup.WithContext(ctx)
	for slot := 0; slot < n; slot++ {
		g.Go(func() error {
			results <- seedResult{slot: slot, rec: m.source.FetchOne(gctx)}
			return nil
		})
	}

	for i := 0; i < n; i++ {
		res := <-results
		role := "back"
		if i == 0 {
			role = "front"
		}
		m.logger.Debug("seed settled",
			zap.Int("slot", res.slot),
			zap.String("role", role),
			zap.Bool("usable", res.rec != nil))
		m.push(res.rec, res.slot)
	}

	_ = g.Wait()
}

// push appends a non-nil record and notifies the update callback
func (m *Manager) push(rec *model.CatRecord, slot int) {
	if rec == nil {
		return
	}

	index := m.queue.Append(rec)
	if index < 0 {
		return
	}

	m.logger.Debug("queued cat",
		zap.Int("index", index),
		zap.Int("slot", slot),
		zap.String("id", rec.ID),
		zap.String("state", rec.LoadState.String()))

	if m.onUpdate != nil {
		m.onUpdate(index, rec)
	}
}

// finish marks the queue done and notifies the done callback
func (m *Manager) finish() {
	m.queue.MarkDone()
	total := m.queue.Len()

	m.logger.Info("prefetch finished",
		zap.Int("fetched", total),
		zap.Int("target", m.queue.Target()))

	if m.onDone != nil {
		m.onDone(total)
	}
}
