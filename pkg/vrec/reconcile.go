package vrec

import (
	verr "github.com/vango-dev/vrec/internal/errors"
	"github.com/vango-dev/vrec/pkg/surface"
	"github.com/vango-dev/vrec/pkg/vdom"
)

// reconcile brings the surface under parent from old to elem and returns
// the record for elem. before, when set, is where a newly mounted node is
// inserted; otherwise it is appended.
func (r *Root) reconcile(parent surface.Node, old *node, elem *vdom.Element, before surface.Node) *node {
	switch {
	case old == nil && elem == nil:
		return nil

	case elem == nil:
		r.surface.RemoveChild(parent, r.liveOf(old, "remove"))
		r.unmount(old)
		return nil

	case old == nil:
		mark := len(r.didMount)
		n := r.mount(elem)
		r.insert(parent, r.liveOf(n, "insert"), before)
		r.flushDidMount(mark)
		return n

	case !vdom.SameType(old.elem, elem):
		mark := len(r.didMount)
		n := r.mount(elem)
		r.surface.ReplaceChild(parent, r.liveOf(n, "replace"), r.liveOf(old, "replace"))
		r.unmount(old)
		r.flushDidMount(mark)
		return n
	}

	r.patch(parent, old, elem)
	return old
}

func (r *Root) insert(parent, live, before surface.Node) {
	if before != nil {
		r.surface.InsertBefore(parent, live, before)
		return
	}
	r.surface.AppendChild(parent, live)
}

// liveOf returns the anchor of n or faults when the rendered chain is
// broken.
func (r *Root) liveOf(n *node, op string) surface.Node {
	live := n.anchor()
	if live == nil {
		verr.Raise(verr.CodeMissingLiveNode, op, "no live node for %s", n.elem.Name())
	}
	return live
}

// flushDidMount runs the did-mount callbacks queued since mark. Nested
// instances were queued before their ancestors.
func (r *Root) flushDidMount(mark int) {
	if len(r.didMount) <= mark {
		return
	}
	queued := append([]func(){}, r.didMount[mark:]...)
	r.didMount = r.didMount[:mark]
	for _, fn := range queued {
		fn()
	}
}

// mount creates the record and detached live subtree for elem.
func (r *Root) mount(elem *vdom.Element) *node {
	n := &node{elem: elem}

	switch elem.Kind {
	case vdom.KindText:
		n.live = r.surface.CreateText(elem.Content())

	case vdom.KindHost:
		n.live = r.surface.CreateNode(elem.Tag)
		r.patchProps(n.live, nil, elem.Props)
		children := vdom.Children(elem.Props)
		n.children = make([]*node, len(children))
		for i, c := range children {
			if c == nil {
				continue
			}
			n.children[i] = r.mount(c)
			r.surface.AppendChild(n.live, r.liveOf(n.children[i], "mount"))
		}
		if elem.Ref != nil {
			elem.Ref.Current = n.live
		}

	case vdom.KindFunc, vdom.KindForwardRef:
		n.hooks = newHooks(r, n)
		n.rendered = r.mount(r.renderFunc(n))

	case vdom.KindClass:
		r.mountClass(n)

	case vdom.KindMemo:
		n.prevProps = elem.Props
		n.rendered = r.mount(memoType(elem).child(elem))

	case vdom.KindProvider:
		ctx := providerType(elem).ctx
		ctx.value = elem.Props.Get(vdom.PropValue)
		n.rendered = r.mount(r.providerChild(elem))

	case vdom.KindConsumer:
		n.rendered = r.mount(r.consume(elem))

	default:
		verr.Raise(verr.CodeUnknownKind, "mount", "unknown element kind %s", elem.Kind)
	}

	return n
}

func (r *Root) mountClass(n *node) {
	elem := n.elem
	ct, ok := elem.Type.(*ClassType)
	if !ok {
		verr.Raise(verr.CodeUnknownKind, "mount", "class element with descriptor %T", elem.Type)
	}

	props := ct.props(elem.Props)
	inst := ct.ctor(props)
	b := inst.base()
	b.Props = props
	if b.State == nil {
		b.State = State{}
	}
	if ct.ContextType != nil {
		b.Context = ct.ContextType.value
	}
	if ct.DeriveStateFromProps != nil {
		if s := ct.DeriveStateFromProps(props, b.State); s != nil {
			b.State = s
		}
	}
	n.instance = inst

	if wm, ok := inst.(WillMounter); ok {
		wm.ComponentWillMount()
	}
	// Attached after WillMount so state set there applies in place.
	b.updater = newUpdater(r, n, inst)
	if elem.Ref != nil {
		elem.Ref.Current = inst
	}

	n.rendered = r.mount(r.renderClass(n))

	if dm, ok := inst.(DidMounter); ok {
		r.didMount = append(r.didMount, dm.ComponentDidMount)
	}
}

// patch updates a record whose element kind and type are unchanged.
func (r *Root) patch(parent surface.Node, n *node, elem *vdom.Element) {
	prev := n.elem
	n.elem = elem

	switch elem.Kind {
	case vdom.KindText:
		content := elem.Content()
		switch {
		case isPlaceholder(elem):
			// nil output clears whatever text the component showed before.
			if prev.Content() != "" {
				r.surface.SetText(n.live, "")
			}
		case content != "" && content != prev.Content():
			r.surface.SetText(n.live, content)
		}

	case vdom.KindHost:
		r.patchProps(n.live, prev.Props, elem.Props)
		n.children = r.reconcileChildren(n.live, n.children, vdom.Children(elem.Props))
		if prev.Ref != elem.Ref {
			if prev.Ref != nil {
				prev.Ref.Current = nil
			}
			if elem.Ref != nil {
				elem.Ref.Current = n.live
			}
		}

	case vdom.KindFunc, vdom.KindForwardRef:
		n.rendered = r.reconcile(parent, n.rendered, r.renderFunc(n), nil)

	case vdom.KindClass:
		inst := n.instance
		props := elem.Type.(*ClassType).props(elem.Props)
		if pr, ok := inst.(PropsReceiver); ok {
			pr.ComponentWillReceiveProps(props, inst.base().Props)
		}
		if elem.Ref != nil {
			elem.Ref.Current = inst
		}
		inst.base().updater.EmitUpdate(props)

	case vdom.KindMemo:
		m := memoType(elem)
		if m.compare(n.prevProps, elem.Props) {
			return
		}
		n.prevProps = elem.Props
		n.rendered = r.reconcile(parent, n.rendered, m.child(elem), nil)

	case vdom.KindProvider:
		providerType(elem).ctx.value = elem.Props.Get(vdom.PropValue)
		n.rendered = r.reconcile(parent, n.rendered, r.providerChild(elem), nil)

	case vdom.KindConsumer:
		n.rendered = r.reconcile(parent, n.rendered, r.consume(elem), nil)

	default:
		verr.Raise(verr.CodeUnknownKind, "patch", "unknown element kind %s", elem.Kind)
	}
}

// rerender re-invokes a function component with its current props.
func (r *Root) rerender(n *node) {
	if n.rendered == nil {
		return
	}
	old := n.rendered
	parent := r.surface.ParentNode(r.liveOf(old, "rerender"))
	n.rendered = r.reconcile(parent, old, r.renderFunc(n), nil)
}

// unmount runs teardown for n and its subtree, parent first. The live
// nodes have already been detached by the caller.
func (r *Root) unmount(n *node) {
	if n == nil || n.unmounted {
		return
	}
	n.unmounted = true

	switch n.elem.Kind {
	case vdom.KindClass:
		if wu, ok := n.instance.(WillUnmounter); ok {
			wu.ComponentWillUnmount()
		}
		if ref := n.elem.Ref; ref != nil && ref.Current == any(n.instance) {
			ref.Current = nil
		}
	case vdom.KindFunc, vdom.KindForwardRef:
		n.hooks.dispose()
	case vdom.KindHost:
		r.events.unregisterAll(n.live)
		if ref := n.elem.Ref; ref != nil && ref.Current == any(n.live) {
			ref.Current = nil
		}
	}

	r.unmount(n.rendered)
	for _, c := range n.children {
		r.unmount(c)
	}
}

func (r *Root) renderFunc(n *node) *vdom.Element {
	n.hooks.begin()
	var out *vdom.Element
	switch t := n.elem.Type.(type) {
	case *FuncType:
		out = t.render(n.hooks, n.elem.Props)
	case *ForwardRefType:
		out = t.render(n.hooks, n.elem.Props, n.elem.Ref)
	default:
		verr.Raise(verr.CodeUnknownKind, "render", "function element with descriptor %T", n.elem.Type)
	}
	r.rendered(n.elem)
	if out == nil {
		return placeholder()
	}
	return out
}

func (r *Root) renderClass(n *node) *vdom.Element {
	out := n.instance.Render()
	r.rendered(n.elem)
	if out == nil {
		return placeholder()
	}
	return out
}

func (r *Root) rendered(elem *vdom.Element) {
	if r.observer != nil {
		r.observer.ComponentRendered(elem.Kind, elem.Name())
	}
}

func (r *Root) providerChild(elem *vdom.Element) *vdom.Element {
	child, ok := vdom.OnlyChild(elem.Props)
	if !ok {
		verr.Raise(verr.CodeProviderChildren, "provider", "%s needs exactly one child", elem.Name())
	}
	return child
}

func (r *Root) consume(elem *vdom.Element) *vdom.Element {
	fn, ok := elem.Props.Get(vdom.PropChildren).(func(any) *vdom.Element)
	if !ok {
		verr.Raise(verr.CodeConsumerChildren, "consumer", "%s children must be func(any) *vdom.Element, got %T",
			elem.Name(), elem.Props.Get(vdom.PropChildren))
	}
	r.rendered(elem)
	out := fn(consumerType(elem).ctx.value)
	if out == nil {
		return placeholder()
	}
	return out
}

func memoType(elem *vdom.Element) *MemoType {
	m, ok := elem.Type.(*MemoType)
	if !ok {
		verr.Raise(verr.CodeUnknownKind, "memo", "memo element with descriptor %T", elem.Type)
	}
	return m
}

func providerType(elem *vdom.Element) *ProviderType {
	p, ok := elem.Type.(*ProviderType)
	if !ok {
		verr.Raise(verr.CodeUnknownKind, "provider", "provider element with descriptor %T", elem.Type)
	}
	return p
}

func consumerType(elem *vdom.Element) *ConsumerType {
	c, ok := elem.Type.(*ConsumerType)
	if !ok {
		verr.Raise(verr.CodeUnknownKind, "consumer", "consumer element with descriptor %T", elem.Type)
	}
	return c
}
