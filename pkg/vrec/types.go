package vrec

import "github.com/vango-dev/vrec/pkg/vdom"

// RenderFunc renders a function component.
type RenderFunc func(h *Hooks, props vdom.Props) *vdom.Element

// FuncType describes a function component. Elements compare component
// types by descriptor identity, so a FuncType is created once and reused.
type FuncType struct {
	name   string
	render RenderFunc
}

// Func creates a function component descriptor.
//
//	var Counter = vrec.Func("Counter", func(h *vrec.Hooks, props vdom.Props) *vdom.Element {
//	    count, setCount := vrec.UseState(h, 0)
//	    return vdom.Button(vdom.OnClick(func() { setCount(count + 1) }), vdom.Textf("%d", count))
//	})
func Func(name string, render RenderFunc) *FuncType {
	return &FuncType{name: name, render: render}
}

func (f *FuncType) Kind() vdom.VKind { return vdom.KindFunc }
func (f *FuncType) Name() string     { return f.name }

// Element creates an element of this component type.
func (f *FuncType) Element(props vdom.Props, children ...any) *vdom.Element {
	return vdom.CreateElement(f, props, children...)
}

// ClassType describes a class component.
type ClassType struct {
	name string
	ctor func(props vdom.Props) Component

	// DefaultProps are merged under the element props on every render.
	DefaultProps vdom.Props

	// ContextType, when set, is read into Base.Context at mount and before
	// every update.
	ContextType *Context

	// DeriveStateFromProps runs during every update. A non-nil result
	// replaces the state wholesale.
	DeriveStateFromProps func(props vdom.Props, state State) State
}

// Class creates a class component descriptor. ctor builds a fresh instance;
// the runtime assigns Props and initializes State afterwards if the
// constructor left them empty.
func Class(name string, ctor func(props vdom.Props) Component) *ClassType {
	return &ClassType{name: name, ctor: ctor}
}

func (c *ClassType) Kind() vdom.VKind { return vdom.KindClass }
func (c *ClassType) Name() string     { return c.name }

// Element creates an element of this component type.
func (c *ClassType) Element(props vdom.Props, children ...any) *vdom.Element {
	return vdom.CreateElement(c, props, children...)
}

// props returns p with DefaultProps filled in underneath.
func (c *ClassType) props(p vdom.Props) vdom.Props {
	if len(c.DefaultProps) == 0 {
		return p
	}
	out := make(vdom.Props, len(p)+len(c.DefaultProps))
	for k, v := range c.DefaultProps {
		out[k] = v
	}
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ForwardRefFunc renders a forward-ref component.
type ForwardRefFunc func(h *Hooks, props vdom.Props, ref *vdom.Ref) *vdom.Element

// ForwardRefType describes a function component that receives the ref of
// its element.
type ForwardRefType struct {
	name   string
	render ForwardRefFunc
}

// ForwardRef creates a forward-ref component descriptor.
func ForwardRef(name string, render ForwardRefFunc) *ForwardRefType {
	return &ForwardRefType{name: name, render: render}
}

func (f *ForwardRefType) Kind() vdom.VKind { return vdom.KindForwardRef }
func (f *ForwardRefType) Name() string     { return f.name }

// MemoType wraps a component and skips re-rendering it while its props
// compare equal.
type MemoType struct {
	inner   vdom.Type
	compare func(prev, next vdom.Props) bool
}

// Memo wraps inner. compare reports whether two prop sets are equal; nil
// uses vdom.ShallowEqual.
func Memo(inner vdom.Type, compare func(prev, next vdom.Props) bool) *MemoType {
	if compare == nil {
		compare = vdom.ShallowEqual
	}
	return &MemoType{inner: inner, compare: compare}
}

func (m *MemoType) Kind() vdom.VKind { return vdom.KindMemo }
func (m *MemoType) Name() string     { return "Memo(" + m.inner.Name() + ")" }

// Inner returns the wrapped component type.
func (m *MemoType) Inner() vdom.Type { return m.inner }

// child builds the element for the wrapped component.
func (m *MemoType) child(el *vdom.Element) *vdom.Element {
	return &vdom.Element{
		Kind:  m.inner.Kind(),
		Type:  m.inner,
		Props: el.Props,
		Key:   el.Key,
		Ref:   el.Ref,
	}
}

// Context is a context descriptor holding a single current-value cell.
// Providers overwrite the cell while they render; there is no value stack,
// so sibling providers of the same context observe whichever rendered last.
type Context struct {
	// DisplayName is used in logs and metrics.
	DisplayName string

	// Provider and Consumer are the element types for this context.
	Provider *ProviderType
	Consumer *ConsumerType

	defaultValue any
	value        any
}

// CreateContext creates a context whose cell starts at defaultValue.
func CreateContext(defaultValue any) *Context {
	c := &Context{DisplayName: "Context", defaultValue: defaultValue, value: defaultValue}
	c.Provider = &ProviderType{ctx: c}
	c.Consumer = &ConsumerType{ctx: c}
	return c
}

// Value returns the current cell value.
func (c *Context) Value() any { return c.value }

// Default returns the value the cell was created with.
func (c *Context) Default() any { return c.defaultValue }

// Provide creates a provider element with exactly one child.
func (c *Context) Provide(value any, child *vdom.Element) *vdom.Element {
	return vdom.CreateElement(c.Provider, vdom.Props{vdom.PropValue: value}, child)
}

// Consume creates a consumer element rendering fn with the cell value.
func (c *Context) Consume(fn func(value any) *vdom.Element) *vdom.Element {
	return vdom.CreateElement(c.Consumer, nil, fn)
}

// ProviderType is the provider element type of a Context.
type ProviderType struct{ ctx *Context }

func (p *ProviderType) Kind() vdom.VKind { return vdom.KindProvider }
func (p *ProviderType) Name() string     { return p.ctx.DisplayName + ".Provider" }

// ConsumerType is the consumer element type of a Context.
type ConsumerType struct{ ctx *Context }

func (c *ConsumerType) Kind() vdom.VKind { return vdom.KindConsumer }
func (c *ConsumerType) Name() string     { return c.ctx.DisplayName + ".Consumer" }
