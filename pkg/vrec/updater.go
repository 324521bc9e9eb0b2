package vrec

import (
	"maps"

	verr "github.com/vango-dev/vrec/internal/errors"
	"github.com/vango-dev/vrec/pkg/vdom"
)

// Updater is the update coordinator of one class instance. It queues state
// entries and callbacks, holds incoming props, and runs the update
// pipeline either immediately or from a batch flush.
type Updater struct {
	root *Root
	n    *node
	inst Component

	pending   []any // State or func(State) State
	callbacks []func()
	nextProps vdom.Props
}

func newUpdater(r *Root, n *node, inst Component) *Updater {
	return &Updater{root: r, n: n, inst: inst}
}

// AddState queues entry, which must be a State, a map[string]any, or a
// func(State) State, and emits an update.
func (u *Updater) AddState(entry any, callbacks ...func()) {
	switch entry.(type) {
	case State, map[string]any, func(State) State:
	default:
		verr.Raise(verr.CodeInvalidState, "AddState", "unsupported state entry %T", entry)
	}
	u.pending = append(u.pending, entry)
	u.callbacks = append(u.callbacks, callbacks...)
	u.EmitUpdate(nil)
}

// EmitUpdate records nextProps (when non-nil) and either queues the
// coordinator on an open batch or applies the update now.
func (u *Updater) EmitUpdate(nextProps vdom.Props) {
	if nextProps != nil {
		u.nextProps = nextProps
	}
	if u.root.scheduler.IsBatching() {
		u.root.scheduler.enqueue(u)
		return
	}
	u.UpdateComponent()
}

func (u *Updater) update() { u.UpdateComponent() }

// UpdateComponent applies queued state and props. It does nothing when
// neither is pending.
func (u *Updater) UpdateComponent() {
	if len(u.pending) == 0 && u.nextProps == nil {
		return
	}
	b := u.inst.base()
	if u.n.unmounted {
		u.root.logger.Warn("update on unmounted component", "component", u.n.elem.Name())
		u.pending, u.callbacks, u.nextProps = nil, nil, nil
		return
	}

	u.root.commit("state", u.n.elem.Name(), func() {
		prevProps, prevState := b.Props, b.State
		nextProps := u.nextProps
		u.nextProps = nil
		newState := u.computeState()

		effective := b.Props
		if nextProps != nil {
			effective = nextProps
		}

		willUpdate := true
		if g, ok := u.inst.(UpdateGate); ok && !g.ShouldComponentUpdate(effective, newState) {
			willUpdate = false
		}
		if willUpdate {
			if w, ok := u.inst.(WillUpdater); ok {
				w.ComponentWillUpdate()
			}
		}
		if nextProps != nil {
			b.Props = nextProps
		}
		if derive := u.classType().DeriveStateFromProps; derive != nil {
			if s := derive(b.Props, b.State); s != nil {
				b.State = s
			} else {
				b.State = newState
			}
		} else {
			b.State = newState
		}
		if willUpdate {
			u.forceUpdate(prevProps, prevState)
		}
	})

	callbacks := u.callbacks
	u.callbacks = nil
	for _, cb := range callbacks {
		cb()
	}
}

// ForceUpdate re-renders the instance with its current props and state.
func (u *Updater) ForceUpdate() {
	b := u.inst.base()
	u.root.commit("state", u.n.elem.Name(), func() {
		u.forceUpdate(b.Props, b.State)
	})
}

func (u *Updater) forceUpdate(prevProps vdom.Props, prevState State) {
	n := u.n
	if n.rendered == nil || n.unmounted {
		return
	}
	r := u.root
	b := u.inst.base()
	if ctx := u.classType().ContextType; ctx != nil {
		b.Context = ctx.value
	}

	out := r.renderClass(n)
	var snapshot any
	if sg, ok := u.inst.(SnapshotGetter); ok {
		snapshot = sg.GetSnapshotBeforeUpdate()
	}

	old := n.rendered
	parent := r.surface.ParentNode(r.liveOf(old, "ForceUpdate"))
	n.rendered = r.reconcile(parent, old, out, nil)

	if du, ok := u.inst.(DidUpdater); ok {
		du.ComponentDidUpdate(prevProps, prevState, snapshot)
	}
}

// computeState folds the pending entries over the current state and
// clears the queue.
func (u *Updater) computeState() State {
	s := foldState(u.inst.base().State, u.pending)
	u.pending = nil
	return s
}

func (u *Updater) classType() *ClassType {
	return u.n.elem.Type.(*ClassType)
}

// foldState applies entries left to right. Maps merge shallowly; functions
// receive the accumulated state. The input state is never mutated.
func foldState(state State, entries []any) State {
	next := state.Clone()
	for _, e := range entries {
		switch v := e.(type) {
		case State:
			maps.Copy(next, v)
		case map[string]any:
			maps.Copy(next, v)
		case func(State) State:
			maps.Copy(next, v(next))
		default:
			verr.Raise(verr.CodeInvalidState, "computeState", "unsupported state entry %T", e)
		}
	}
	return next
}
