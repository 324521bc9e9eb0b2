package vrec

import "log/slog"

// updatable is anything the scheduler can flush: class update
// coordinators and function component hook contexts.
type updatable interface {
	update()
}

// Scheduler defers updates while a batch window is open and flushes each
// distinct pending updatable once, in registration order, when the
// outermost window closes.
type Scheduler struct {
	depth   int
	pending []updatable
	queued  map[updatable]struct{}

	logger  *slog.Logger
	onFlush func(updates int)
}

func newScheduler(logger *slog.Logger) *Scheduler {
	return &Scheduler{queued: make(map[updatable]struct{}), logger: logger}
}

// IsBatching reports whether a batch window is open.
func (s *Scheduler) IsBatching() bool {
	return s.depth > 0
}

// BeginBatch opens a batch window. Windows nest.
func (s *Scheduler) BeginBatch() {
	s.depth++
}

// EndBatch closes a batch window and flushes when it was the outermost.
func (s *Scheduler) EndBatch() {
	if s.depth == 0 {
		return
	}
	s.depth--
	if s.depth == 0 {
		s.flush()
	}
}

// Batch runs fn inside a batch window. The flush happens even if fn panics.
//
//	root.Scheduler().Batch(func() {
//	    setA(1)
//	    setB(2)
//	})
//	// one re-render
func (s *Scheduler) Batch(fn func()) {
	s.BeginBatch()
	defer s.EndBatch()
	fn()
}

// Pending returns the number of queued updates.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

func (s *Scheduler) enqueue(u updatable) {
	if _, ok := s.queued[u]; ok {
		return
	}
	s.queued[u] = struct{}{}
	s.pending = append(s.pending, u)
}

func (s *Scheduler) flush() {
	updates := s.pending
	if len(updates) == 0 {
		return
	}
	s.pending = nil
	clear(s.queued)

	s.logger.Debug("batch flush", "updates", len(updates))
	for _, u := range updates {
		u.update()
	}
	if s.onFlush != nil {
		s.onFlush(len(updates))
	}
}
