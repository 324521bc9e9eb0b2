package vrec

import (
	"container/heap"
	"context"
	"log/slog"
	"sync"
	"time"
)

// Loop is a cooperative task loop with a macrotask queue, a microtask
// queue and timers. Passive effects run as tasks, layout effects as
// microtasks. Every task runs on the goroutine driving the loop; Submit is
// the only method safe to call from other goroutines.
type Loop struct {
	mu         sync.Mutex
	tasks      []func()
	microtasks []func()
	timers     timerHeap
	seq        uint64
	wake       chan struct{}

	logger *slog.Logger
	now    func() time.Time
}

// NewLoop creates an idle loop.
func NewLoop(logger *slog.Logger) *Loop {
	if logger == nil {
		logger = newNopLogger()
	}
	return &Loop{
		wake:   make(chan struct{}, 1),
		logger: logger,
		now:    time.Now,
	}
}

type timer struct {
	when time.Time
	seq  uint64
	fn   func()
}

type timerHeap []timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].when.Equal(h[j].when) {
		return h[i].seq < h[j].seq
	}
	return h[i].when.Before(h[j].when)
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) {
	*h = append(*h, x.(timer))
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Post queues fn at the back of the task queue.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
	l.signal()
}

// Microtask queues fn to run before the loop takes its next task.
func (l *Loop) Microtask(fn func()) {
	l.mu.Lock()
	l.microtasks = append(l.microtasks, fn)
	l.mu.Unlock()
	l.signal()
}

// AfterFunc posts fn as a task once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) {
	l.mu.Lock()
	l.seq++
	heap.Push(&l.timers, timer{when: l.now().Add(d), seq: l.seq, fn: fn})
	l.mu.Unlock()
	l.signal()
}

// Submit queues fn from any goroutine.
func (l *Loop) Submit(fn func()) {
	l.Post(fn)
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Pending reports the number of queued tasks, microtasks and timers.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks) + len(l.microtasks) + len(l.timers)
}

// RunUntilIdle runs queued work until nothing is runnable: all microtasks
// first, then one task, repeated. Timers that are due become tasks. Timers
// in the future are left in place.
func (l *Loop) RunUntilIdle() {
	for l.step() {
	}
}

// step runs the microtask queue and at most one task. It reports whether
// anything ran.
func (l *Loop) step() bool {
	ran := l.drainMicrotasks()
	l.promoteTimers()

	l.mu.Lock()
	if len(l.tasks) == 0 {
		l.mu.Unlock()
		return ran
	}
	fn := l.tasks[0]
	l.tasks[0] = nil
	l.tasks = l.tasks[1:]
	l.mu.Unlock()

	l.safeExecute(fn)
	l.drainMicrotasks()
	return true
}

func (l *Loop) drainMicrotasks() bool {
	ran := false
	for {
		l.mu.Lock()
		if len(l.microtasks) == 0 {
			l.mu.Unlock()
			return ran
		}
		fn := l.microtasks[0]
		l.microtasks[0] = nil
		l.microtasks = l.microtasks[1:]
		l.mu.Unlock()

		l.safeExecute(fn)
		ran = true
	}
}

func (l *Loop) promoteTimers() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for len(l.timers) > 0 && !l.timers[0].when.After(now) {
		t := heap.Pop(&l.timers).(timer)
		l.tasks = append(l.tasks, t.fn)
	}
}

// nextTimer returns the delay until the earliest timer.
func (l *Loop) nextTimer() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.timers) == 0 {
		return 0, false
	}
	return l.timers[0].when.Sub(l.now()), true
}

// Run drives the loop until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.RunUntilIdle()

		var t *time.Timer
		var timerC <-chan time.Time
		if d, ok := l.nextTimer(); ok {
			t = time.NewTimer(max(d, 0))
			timerC = t.C
		}

		select {
		case <-ctx.Done():
			if t != nil {
				t.Stop()
			}
			return ctx.Err()
		case <-l.wake:
		case <-timerC:
		}
		if t != nil {
			t.Stop()
		}
	}
}

// safeExecute runs fn and logs a panic instead of propagating it so one
// failing effect does not stop the loop.
func (l *Loop) safeExecute(fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("task panicked", "panic", r)
		}
	}()
	fn()
}
