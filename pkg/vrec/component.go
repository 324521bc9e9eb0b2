package vrec

import (
	"maps"

	"github.com/vango-dev/vrec/pkg/vdom"
)

// State is the state of a class component.
type State map[string]any

// Clone returns a shallow copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	maps.Copy(out, s)
	return out
}

// Component is a class component instance. Implementations embed Base (or
// PureBase) and provide Render.
type Component interface {
	Render() *vdom.Element
	base() *Base
}

// Base carries the instance fields of a class component.
//
//	type Clock struct {
//	    vrec.Base
//	}
//
//	func (c *Clock) Render() *vdom.Element {
//	    return vdom.Span(vdom.Text(c.State["now"].(string)))
//	}
type Base struct {
	Props   vdom.Props
	State   State
	Context any

	updater *Updater
}

func (b *Base) base() *Base { return b }

// Updater returns the instance's update coordinator. It is nil before the
// instance is mounted.
func (b *Base) Updater() *Updater { return b.updater }

// SetState queues a partial state merge. callbacks run once after the
// update commits.
func (b *Base) SetState(partial State, callbacks ...func()) {
	b.addState(partial, callbacks)
}

// UpdateState queues a functional state update that receives the state
// accumulated so far.
func (b *Base) UpdateState(fn func(State) State, callbacks ...func()) {
	b.addState(fn, callbacks)
}

func (b *Base) addState(entry any, callbacks []func()) {
	if b.updater == nil {
		// Not mounted yet: apply in place.
		b.State = foldState(b.State, []any{entry})
		for _, cb := range callbacks {
			cb()
		}
		return
	}
	b.updater.AddState(entry, callbacks...)
}

// ForceUpdate re-renders the instance immediately, skipping
// ShouldComponentUpdate.
func (b *Base) ForceUpdate() {
	if b.updater != nil {
		b.updater.ForceUpdate()
	}
}

// PureBase is a Base whose ShouldComponentUpdate reports a change only
// when props or state differ shallowly.
type PureBase struct {
	Base
}

// ShouldComponentUpdate implements UpdateGate.
func (p *PureBase) ShouldComponentUpdate(nextProps vdom.Props, nextState State) bool {
	return !vdom.ShallowEqual(p.Props, nextProps) ||
		!vdom.ShallowEqual(vdom.Props(p.State), vdom.Props(nextState))
}

// Lifecycle capabilities. A class component implements any subset.
type (
	// WillMounter runs before the first render.
	WillMounter interface{ ComponentWillMount() }

	// DidMounter runs after the instance's subtree is inserted. Nested
	// instances run before their ancestors.
	DidMounter interface{ ComponentDidMount() }

	// UpdateGate can veto a re-render.
	UpdateGate interface {
		ShouldComponentUpdate(nextProps vdom.Props, nextState State) bool
	}

	// WillUpdater runs before an update that will re-render.
	WillUpdater interface{ ComponentWillUpdate() }

	// DidUpdater runs after an update commits.
	DidUpdater interface {
		ComponentDidUpdate(prevProps vdom.Props, prevState State, snapshot any)
	}

	// WillUnmounter runs before the instance is discarded.
	WillUnmounter interface{ ComponentWillUnmount() }

	// PropsReceiver runs when a parent re-renders the instance.
	PropsReceiver interface {
		ComponentWillReceiveProps(nextProps, prevProps vdom.Props)
	}

	// SnapshotGetter captures a value right after Render and before the
	// new output is reconciled. It is passed to ComponentDidUpdate.
	SnapshotGetter interface{ GetSnapshotBeforeUpdate() any }
)
