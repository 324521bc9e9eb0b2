package vrec

import (
	verr "github.com/vango-dev/vrec/internal/errors"
	"github.com/vango-dev/vrec/pkg/vdom"
)

// Hooks is the hook context of one function component. The runtime passes
// it to every invocation; hooks are identified by call position, so a
// component must call the same hooks in the same order on every render.
type Hooks struct {
	root   *Root
	n      *node
	slots  []any
	cursor int
}

func newHooks(r *Root, n *node) *Hooks {
	return &Hooks{root: r, n: n}
}

// begin resets the cursor for a new invocation.
func (h *Hooks) begin() {
	h.cursor = 0
}

// Len returns the number of hook slots in use.
func (h *Hooks) Len() int {
	return len(h.slots)
}

// slot returns the value at the cursor, creating it with init on the first
// render, and advances the cursor.
func slot[S any](h *Hooks, init func() S) S {
	idx := h.cursor
	h.cursor++
	if idx < len(h.slots) {
		s, ok := h.slots[idx].(S)
		if !ok {
			verr.Raise(verr.CodeHookOrder, "hooks", "slot %d of %s holds %T", idx, h.n.elem.Name(), h.slots[idx])
		}
		return s
	}
	s := init()
	h.slots = append(h.slots, s)
	return s
}

// schedule re-renders the owning component, deferred when a batch window
// is open.
func (h *Hooks) schedule() {
	if h.n.unmounted {
		h.root.logger.Warn("state update on unmounted component", "component", h.n.elem.Name())
		return
	}
	if h.root.scheduler.IsBatching() {
		h.root.scheduler.enqueue(h)
		return
	}
	h.update()
}

func (h *Hooks) update() {
	if h.n.unmounted {
		return
	}
	h.root.commit("state", h.n.elem.Name(), func() {
		h.root.rerender(h.n)
	})
}

// dispose runs every stored effect cleanup.
func (h *Hooks) dispose() {
	for _, s := range h.slots {
		if e, ok := s.(*effectSlot); ok {
			e.gen++
			if e.cleanup != nil {
				cleanup := e.cleanup
				e.cleanup = nil
				cleanup()
			}
		}
	}
}

type stateSlot[T any] struct {
	value T
	set   func(T)
}

// UseState returns the current value of a state slot and a setter. The
// setter overwrites the slot and re-renders the component.
func UseState[T any](h *Hooks, initial T) (T, func(T)) {
	s := slot(h, func() *stateSlot[T] {
		s := &stateSlot[T]{value: initial}
		s.set = func(v T) {
			s.value = v
			h.schedule()
		}
		return s
	})
	return s.value, s.set
}

type reducerSlot[S, A any] struct {
	value    S
	reducer  func(S, A) S
	dispatch func(A)
}

// UseReducer returns the current state and a dispatch function that
// applies reducer to it. A nil reducer uses the action itself as the new
// state, which requires A to be assignable to S.
func UseReducer[S, A any](h *Hooks, reducer func(S, A) S, initial S) (S, func(A)) {
	s := slot(h, func() *reducerSlot[S, A] {
		s := &reducerSlot[S, A]{value: initial}
		s.dispatch = func(action A) {
			if s.reducer != nil {
				s.value = s.reducer(s.value, action)
			} else {
				s.value = any(action).(S)
			}
			h.schedule()
		}
		return s
	})
	s.reducer = reducer
	return s.value, s.dispatch
}

// UseContext returns the current value of ctx. It does not use a slot.
func UseContext(h *Hooks, ctx *Context) any {
	return ctx.value
}

// UseRef returns a stable Ref whose Current starts nil.
func UseRef(h *Hooks) *vdom.Ref {
	return slot(h, vdom.CreateRef)
}

type memoSlot[T any] struct {
	value T
	deps  []any
}

// UseMemo returns the stored result of factory, recomputing it only when
// deps differ from the previous render by identity. Nil deps recompute on
// every render; an empty slice computes once.
func UseMemo[T any](h *Hooks, factory func() T, deps []any) T {
	fresh := false
	s := slot(h, func() *memoSlot[T] {
		fresh = true
		return &memoSlot[T]{value: factory(), deps: deps}
	})
	if !fresh && !vdom.SameDeps(s.deps, deps) {
		s.value = factory()
		s.deps = deps
	}
	return s.value
}

// UseCallback returns fn, keeping the first instance while deps are
// unchanged.
func UseCallback[F any](h *Hooks, fn F, deps []any) F {
	return UseMemo(h, func() F { return fn }, deps)
}

type effectSlot struct {
	deps    []any
	cleanup func()
	gen     uint64
}

// UseEffect runs fn after the current render commits and the loop reaches
// its next task. fn may return a cleanup, which runs before the effect
// runs again and when the component unmounts.
func UseEffect(h *Hooks, fn func() func(), deps []any) {
	useEffect(h, fn, deps, h.root.loop.Post)
}

// UseLayoutEffect is UseEffect scheduled as a microtask, before the loop
// yields to its next task.
func UseLayoutEffect(h *Hooks, fn func() func(), deps []any) {
	useEffect(h, fn, deps, h.root.loop.Microtask)
}

func useEffect(h *Hooks, fn func() func(), deps []any, post func(func())) {
	fresh := false
	s := slot(h, func() *effectSlot {
		fresh = true
		return &effectSlot{deps: deps}
	})
	if !fresh {
		if vdom.SameDeps(s.deps, deps) {
			return
		}
		if s.cleanup != nil {
			cleanup := s.cleanup
			s.cleanup = nil
			cleanup()
		}
		s.deps = deps
	}

	s.gen++
	gen := s.gen
	n := h.n
	post(func() {
		if n.unmounted || s.gen != gen {
			return
		}
		s.cleanup = fn()
	})
}
