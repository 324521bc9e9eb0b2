package vrec

import (
	"fmt"
	"log/slog"

	verr "github.com/vango-dev/vrec/internal/errors"
	"github.com/vango-dev/vrec/pkg/surface"
	"github.com/vango-dev/vrec/pkg/vdom"
)

// Root owns a rendered tree inside one container node. A Root and
// everything rendered into it must be driven from a single goroutine; use
// Loop().Submit to hand work over from others.
type Root struct {
	container surface.Node
	surface   surface.Surface
	current   *node

	logger    *slog.Logger
	observer  Observer
	keyed     bool
	scheduler *Scheduler
	loop      *Loop
	events    *eventTable

	didMount    []func()
	commitDepth int
}

// NewRoot creates a Root for container without rendering anything.
func NewRoot(container surface.Node, s surface.Surface, opts ...Option) *Root {
	if s == nil || container == nil {
		verr.Raise(verr.CodeNilSurface, "NewRoot", "surface and container are required")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Root{
		container: container,
		surface:   s,
		logger:    o.logger.With("component", "vrec"),
		keyed:     o.keyed,
		scheduler: newScheduler(o.logger.With("component", "vrec.scheduler")),
		loop:      o.loop,
		events:    newEventTable(),
	}
	if r.loop == nil {
		r.loop = NewLoop(o.logger.With("component", "vrec.loop"))
	}
	switch len(o.observers) {
	case 0:
	case 1:
		r.observer = o.observers[0]
	default:
		r.observer = multiObserver(o.observers)
	}
	if r.observer != nil {
		r.scheduler.onFlush = r.observer.BatchFlushed
	}
	return r
}

// Render mounts elem into container and returns the Root that owns it.
//
//	mem := surface.NewMemory()
//	body := mem.NewContainer("body")
//	root := vrec.Render(App.Element(nil), body, mem)
//	defer root.Unmount()
func Render(elem *vdom.Element, container surface.Node, s surface.Surface, opts ...Option) *Root {
	r := NewRoot(container, s, opts...)
	r.Update(elem)
	return r
}

// Update reconciles the tree against elem. A nil elem unmounts everything.
func (r *Root) Update(elem *vdom.Element) {
	reason := "update"
	if r.current == nil {
		reason = "mount"
	}
	if elem == nil {
		reason = "unmount"
	}
	r.commit(reason, elem.Name(), func() {
		r.current = r.reconcile(r.container, r.current, elem, nil)
	})
}

// Unmount removes the tree and runs every unmount hook and effect cleanup.
func (r *Root) Unmount() {
	if r.current == nil {
		return
	}
	r.Update(nil)
}

// Container returns the container node.
func (r *Root) Container() surface.Node { return r.container }

// Surface returns the surface the Root renders into.
func (r *Root) Surface() surface.Surface { return r.surface }

// Scheduler returns the Root's batch scheduler.
func (r *Root) Scheduler() *Scheduler { return r.scheduler }

// Loop returns the loop running the Root's effects and timers.
func (r *Root) Loop() *Loop { return r.loop }

// Mounted reports whether a tree is currently rendered.
func (r *Root) Mounted() bool { return r.current != nil }

// Handlers returns the number of registered event handlers.
func (r *Root) Handlers() int { return r.events.count() }

// commit runs fn as a reconcile pass. Only the outermost pass is reported
// to the observer; nested passes (a child re-rendering inside its parent's
// pass) are part of it.
func (r *Root) commit(reason, name string, fn func()) {
	r.commitDepth++
	var done func(error)
	if r.commitDepth == 1 {
		r.logger.Debug("commit", "reason", reason, "root", name)
		if r.observer != nil {
			done = r.observer.CommitStarted(reason, name)
		}
	}
	defer func() {
		r.commitDepth--
		if done == nil {
			return
		}
		if p := recover(); p != nil {
			done(panicError(p))
			panic(p)
		}
		done(nil)
	}()
	fn()
}

func panicError(p any) error {
	if f, ok := verr.AsFault(p); ok {
		return f
	}
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("%v", p)
}
