// Package vrec is a virtual-DOM reconciliation runtime.
//
// Applications describe their UI as trees of immutable vdom.Elements. vrec
// mounts those trees into a surface.Surface and, on every re-render,
// compares the new tree with the one it rendered before and applies the
// smallest set of surface mutations that makes the live tree match.
//
// # Components
//
// Function components receive a *Hooks context and their props:
//
//	var Counter = vrec.Func("Counter", func(h *vrec.Hooks, props vdom.Props) *vdom.Element {
//	    count, setCount := vrec.UseState(h, 0)
//	    return vdom.Button(
//	        vdom.OnClick(func() { setCount(count + 1) }),
//	        vdom.Textf("clicked %d times", count),
//	    )
//	})
//
// Class components embed Base (or PureBase), implement Render, and opt into
// lifecycle methods by implementing the capability interfaces
// (DidMounter, UpdateGate, DidUpdater, WillUnmounter, ...):
//
//	type Timer struct{ vrec.Base }
//
//	func (t *Timer) Render() *vdom.Element {
//	    return vdom.Span(vdom.Textf("%v", t.State["ticks"]))
//	}
//
//	var TimerType = vrec.Class("Timer", func(vdom.Props) vrec.Component { return &Timer{} })
//
// Memo, ForwardRef and CreateContext build the remaining element types.
//
// # Updates and Batching
//
// State updates made outside a batch window apply before the call returns.
// Updates made inside one (every Root.DispatchEvent is a window, and
// Scheduler.Batch opens one explicitly) are deferred and flushed once when
// the window closes: each component renders at most once and class state
// callbacks run after that render, in submission order.
//
// # Effects
//
// UseEffect callbacks run as tasks on the Root's Loop and UseLayoutEffect
// callbacks as microtasks. Hosts drive the loop with Loop.Run or, in tests,
// Loop.RunUntilIdle.
//
// # Children
//
// Children are matched by position. WithKeyedChildren switches host
// children to key-based matching with moves.
//
// # Faults
//
// Programmer errors (unknown element kinds, a provider with several
// children, a consumer without a render function, unsupported handler or
// state types) panic with an *errors.Fault. A fault aborts the pass; the
// surface may be left partially patched.
package vrec
